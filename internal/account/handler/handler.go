package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"contractease/internal/account/models"
	"contractease/internal/account/service"
	id "contractease/pkg/domain"
	dErrors "contractease/pkg/domain-errors"
	"contractease/pkg/platform/httputil"
	request "contractease/pkg/platform/middleware/request"
)

// Service defines the interface for account operations.
type Service interface {
	RegisterUser(ctx context.Context, cmd *service.RegisterCommand) (*models.User, error)
	RegisterClient(ctx context.Context, cmd *service.RegisterCommand) (*models.Client, error)
	LoginUser(ctx context.Context, email, password string) (*service.Session, error)
	LoginClient(ctx context.Context, email, password string) (*service.Session, error)
	GetUser(ctx context.Context, userID id.UserID) (*models.User, error)
	GetClient(ctx context.Context, clientID id.ClientID) (*models.Client, error)
	GetClientByEmail(ctx context.Context, email string) (*models.Client, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/users", h.HandleRegisterUser)
	r.Post("/clients", h.HandleRegisterClient)
	r.Post("/login/user", h.HandleLoginUser)
	r.Post("/login/client", h.HandleLoginClient)
	r.Get("/users/{id}", h.HandleGetUser)
	r.Get("/clients/by-email", h.HandleGetClientByEmail)
	r.Get("/clients/{id}", h.HandleGetClient)
}

func (h *Handler) HandleRegisterUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := request.GetRequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[RegisterRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	user, err := h.service.RegisterUser(ctx, &service.RegisterCommand{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "register user failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, toUserResponse(user))
}

func (h *Handler) HandleRegisterClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := request.GetRequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[RegisterRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	client, err := h.service.RegisterClient(ctx, &service.RegisterCommand{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "register client failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, toClientResponse(client))
}

func (h *Handler) HandleLoginUser(w http.ResponseWriter, r *http.Request) {
	h.handleLogin(w, r, h.service.LoginUser)
}

func (h *Handler) HandleLoginClient(w http.ResponseWriter, r *http.Request) {
	h.handleLogin(w, r, h.service.LoginClient)
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request, login func(context.Context, string, string) (*service.Session, error)) {
	ctx := r.Context()
	requestID := request.GetRequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[LoginRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	session, err := login(ctx, req.Email, req.Password)
	if err != nil {
		h.logger.WarnContext(ctx, "login failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toSessionResponse(session))
}

func (h *Handler) HandleGetUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, err := id.ParseUserID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	user, err := h.service.GetUser(ctx, userID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toUserResponse(user))
}

func (h *Handler) HandleGetClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	clientID, err := id.ParseClientID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	client, err := h.service.GetClient(ctx, clientID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toClientResponse(client))
}

func (h *Handler) HandleGetClientByEmail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	email := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("email")))
	if email == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "email query parameter is required"))
		return
	}

	client, err := h.service.GetClientByEmail(ctx, email)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toClientResponse(client))
}
