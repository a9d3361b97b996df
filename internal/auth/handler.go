package auth

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/go-playground/validator/v10"

	"github.com/verbo-blog/verbo/internal/observability"
	"github.com/verbo-blog/verbo/internal/platform/httpx"
	"github.com/verbo-blog/verbo/internal/shared"
)

// Handler wires HTTP endpoints for authentication flows.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	metrics   *observability.Metrics
	validator *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service, metrics *observability.Metrics) *Handler {
	return &Handler{
		logger:    logger,
		service:   service,
		metrics:   metrics,
		validator: validator.New(),
	}
}

// MountRoutes registers the login route on the provided router. Login gets
// its own, tighter rate limit bucket on top of the global one.
func (h *Handler) MountRoutes(r chi.Router) {
	r.With(httprate.Limit(10, time.Minute, httprate.WithKeyFuncs(httprate.KeyByIP))).
		Post("/login", h.handleLogin)
}

type loginRequest struct {
	Handle   string `json:"handle" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// handleLogin composes ValidateCredentials and Login. Login itself does not
// re-check the password, so the validate call is a required precondition and
// must stay first.
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "malformed JSON body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.RespondError(w, shared.ErrValidation)
		return
	}

	user, err := h.service.ValidateCredentials(r.Context(), req.Handle, req.Password)
	if err != nil {
		h.metrics.RecordLogin("failure")
		httpx.RespondError(w, err)
		return
	}
	if user == nil {
		h.metrics.RecordLogin("failure")
		httpx.RespondError(w, shared.ErrInvalidCredentials)
		return
	}

	resp, err := h.service.Login(r.Context(), req.Handle, req.Password)
	if err != nil {
		h.metrics.RecordLogin("failure")
		httpx.RespondError(w, err)
		return
	}

	h.metrics.RecordLogin("success")
	h.logger.Info("user logged in", slog.String("handle", req.Handle))
	httpx.JSON(w, http.StatusOK, resp)
}
