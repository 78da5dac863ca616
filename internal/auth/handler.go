package auth

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/frahmantamala/user-admin/internal"
	"github.com/frahmantamala/user-admin/internal/transport"
	"github.com/frahmantamala/user-admin/pkg/logger"
)

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

// AuthMiddleware validates the bearer token and puts the acting
// administrator, with granted authorities, on the request context.
func (h *Handler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := h.ExtractTokenFromHeader(r)
		if token == "" {
			h.Logger.Error("auth middleware: missing authorization token")
			h.WriteError(w, http.StatusUnauthorized, "missing authorization token")
			return
		}

		claims, err := h.Service.ValidateAccessToken(token)
		if err != nil {
			h.Logger.Error("token validation failed", "error", err)
			h.WriteError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		username := strings.ToUpper(strings.TrimSpace(claims.Username()))
		admin, err := h.Service.GetUserWithAuthorities(username)
		if err != nil {
			h.Logger.Error("auth middleware: failed to load admin user", "username", username, "error", err)
			h.WriteError(w, http.StatusUnauthorized, "user not found")
			return
		}

		if !admin.Enabled {
			h.Logger.Warn("auth middleware: disabled admin account", "username", username)
			h.WriteError(w, http.StatusUnauthorized, "user is inactive")
			return
		}

		ctx := ContextWithUser(r.Context(), admin)
		ctx = internal.ContextWithUsername(ctx, admin.Username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
