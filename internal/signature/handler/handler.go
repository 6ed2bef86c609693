package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"contractease/internal/signature/device"
	"contractease/internal/signature/models"
	"contractease/internal/signature/service"
	id "contractease/pkg/domain"
	"contractease/pkg/platform/httputil"
	request "contractease/pkg/platform/middleware/request"
)

// Service defines the interface for signing operations.
type Service interface {
	Sign(ctx context.Context, contractID id.ContractID, cmd *service.SignContractCommand) (*service.SignResult, error)
	GetByContract(ctx context.Context, contractID id.ContractID) (*models.Signature, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/contracts/{id}/sign", h.HandleSignContract)
	r.Get("/contracts/{id}/signature", h.HandleGetSignature)
}

// HandleSignContract finalizes a sent contract with the signer's details.
func (h *Handler) HandleSignContract(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := request.GetRequestID(ctx)
	contractID, err := id.ParseContractID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	req, ok := httputil.DecodeAndPrepare[SignContractRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.service.Sign(ctx, contractID, &service.SignContractCommand{
		SignerName:     req.SignerName,
		SignerEmail:    req.SignerEmail,
		SignatureImage: req.SignatureImage,
		SignerDevice:   device.Describe(r.UserAgent()),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "sign contract failed", "error", err, "request_id", requestID, "contract_id", contractID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, toSignatureResponse(result.Signature))
}

// HandleGetSignature returns the signature attached to a signed contract.
func (h *Handler) HandleGetSignature(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	contractID, err := id.ParseContractID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	signature, err := h.service.GetByContract(ctx, contractID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toSignatureResponse(signature))
}
