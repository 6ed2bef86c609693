package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"contractease/internal/contract/models"
	"contractease/internal/contract/service"
	id "contractease/pkg/domain"
	"contractease/pkg/platform/httputil"
	request "contractease/pkg/platform/middleware/request"
)

// Service defines the interface for contract lifecycle operations.
// Returns domain objects, not HTTP response DTOs.
type Service interface {
	Create(ctx context.Context, cmd *service.CreateContractCommand) (*models.Contract, error)
	GetByID(ctx context.Context, contractID id.ContractID) (*models.Contract, error)
	ListByUser(ctx context.Context, userID id.UserID) ([]*models.Contract, error)
	ListByClient(ctx context.Context, clientID id.ClientID) ([]*models.Contract, error)
	UpdateStatus(ctx context.Context, contractID id.ContractID, target models.Status) (*models.Contract, error)
	Send(ctx context.Context, contractID id.ContractID) (*models.Contract, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/contracts", h.HandleCreateContract)
	r.Get("/contracts/{id}", h.HandleGetContract)
	r.Put("/contracts/{id}/send", h.HandleSendContract)
	r.Patch("/contracts/{id}/status", h.HandleUpdateStatus)
	r.Get("/users/{id}/contracts", h.HandleListByUser)
	r.Get("/clients/{id}/contracts", h.HandleListByClient)
}

// HandleCreateContract creates a contract in draft status.
func (h *Handler) HandleCreateContract(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := request.GetRequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[CreateContractRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	// Reference IDs are validated for shape before any store access.
	userID, err := id.ParseUserID(req.UserID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	clientID, err := id.ParseClientID(req.ClientID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	contract, err := h.service.Create(ctx, &service.CreateContractCommand{
		Title:       req.Title,
		Type:        req.Type,
		Description: req.Description,
		Amount:      req.Amount,
		DueDate:     req.DueDate,
		Clauses:     req.ContractClauses(),
		UserID:      userID,
		ClientID:    clientID,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "create contract failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, toContractResponse(contract))
}

// HandleGetContract retrieves a single contract by its ID.
func (h *Handler) HandleGetContract(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	contractID, err := id.ParseContractID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	contract, err := h.service.GetByID(ctx, contractID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toContractResponse(contract))
}

// HandleSendContract marks a draft contract as sent.
func (h *Handler) HandleSendContract(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := request.GetRequestID(ctx)
	contractID, err := id.ParseContractID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	contract, err := h.service.Send(ctx, contractID)
	if err != nil {
		h.logger.WarnContext(ctx, "send contract failed", "error", err, "request_id", requestID, "contract_id", contractID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toContractResponse(contract))
}

// HandleUpdateStatus advances a contract along the workflow. Signing is not
// reachable here; the sign endpoint owns the sent → signed transition.
func (h *Handler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := request.GetRequestID(ctx)
	contractID, err := id.ParseContractID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	req, ok := httputil.DecodeAndPrepare[UpdateStatusRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	target, err := models.ParseStatus(req.Status)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	contract, err := h.service.UpdateStatus(ctx, contractID, target)
	if err != nil {
		h.logger.WarnContext(ctx, "update contract status failed", "error", err, "request_id", requestID, "contract_id", contractID, "target_status", target)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toContractResponse(contract))
}

// HandleListByUser returns all contracts created by a user, most recent first.
func (h *Handler) HandleListByUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, err := id.ParseUserID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	contracts, err := h.service.ListByUser(ctx, userID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toContractListResponse(contracts))
}

// HandleListByClient returns all contracts targeting a client, most recent first.
func (h *Handler) HandleListByClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	clientID, err := id.ParseClientID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	contracts, err := h.service.ListByClient(ctx, clientID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toContractListResponse(contracts))
}
