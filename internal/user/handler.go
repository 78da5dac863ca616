package user

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	errors "github.com/frahmantamala/user-admin/internal"
	"github.com/frahmantamala/user-admin/internal/auth"
	"github.com/frahmantamala/user-admin/internal/transport"
	"github.com/frahmantamala/user-admin/pkg/logger"
)

type ServiceAPI interface {
	FindUser(usernameOrEmail string) (UserPersonDetails, error)
	FindAuthUser(username string) (*AuthUser, error)
	FindAuthUsersByEmail(email string) ([]*AuthUser, error)
	EnableUser(ctx context.Context, username, adminUsername string, adminAuthorities []string) error
	DisableUser(ctx context.Context, username, adminUsername string, adminAuthorities []string) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     svc,
	}
}

// GetUser handles GET /users/{username}: resolves across the native store
// and the NOMIS staff-account store.
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	details, err := h.Service.FindUser(username)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, NewUserDetail(details))
}

// GetCurrentUser handles GET /users/me for the acting administrator.
func (h *Handler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	admin, ok := auth.UserFromContext(r.Context())
	if !ok || admin == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	u, err := h.Service.FindAuthUser(admin.Username)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, NewAuthUserDetail(u))
}

// GetAuthUser handles GET /authusers/{username}: native store only, no
// NOMIS fallback.
func (h *Handler) GetAuthUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	u, err := h.Service.FindAuthUser(username)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, NewAuthUserDetail(u))
}

// SearchAuthUsersByEmail handles GET /authusers?email=...
func (h *Handler) SearchAuthUsersByEmail(w http.ResponseWriter, r *http.Request) {
	dto := EmailSearchDTO{Email: r.URL.Query().Get("email")}
	if appErr := dto.Validate(); appErr != nil {
		status, body := appErr.ToHTTPResponse()
		h.WriteJSON(w, status, body)
		return
	}

	users, err := h.Service.FindAuthUsersByEmail(dto.Email)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, NewAuthUserDetails(users))
}

// EnableUser handles PUT /authusers/{username}/enable.
func (h *Handler) EnableUser(w http.ResponseWriter, r *http.Request) {
	h.changeEnabled(w, r, true)
}

// DisableUser handles PUT /authusers/{username}/disable.
func (h *Handler) DisableUser(w http.ResponseWriter, r *http.Request) {
	h.changeEnabled(w, r, false)
}

func (h *Handler) changeEnabled(w http.ResponseWriter, r *http.Request, enabled bool) {
	admin, ok := auth.UserFromContext(r.Context())
	if !ok || admin == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	username := chi.URLParam(r, "username")

	var err error
	if enabled {
		err = h.Service.EnableUser(r.Context(), username, admin.Username, admin.Authorities)
	} else {
		err = h.Service.DisableUser(r.Context(), username, admin.Username, admin.Authorities)
	}
	if err != nil {
		h.Logger.Error("enabled change failed",
			"error", err,
			"username", username,
			"admin", admin.Username,
			"enabled", enabled)
		h.writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeDomainError(w http.ResponseWriter, err error) {
	var appErr *errors.AppError

	switch e := err.(type) {
	case *NotFoundError:
		appErr = errors.NewNotFoundError(e.Error(), errors.ErrCodeUserNotFound)
	case *GroupRelationshipError:
		appErr = errors.NewForbiddenError(e.Error(), errors.ErrCodeGroupRelationship)
	default:
		h.Logger.Error("unexpected error", "error", err)
		appErr = errors.NewInternalError("internal server error", err)
	}

	status, body := appErr.ToHTTPResponse()
	h.WriteJSON(w, status, body)
}
