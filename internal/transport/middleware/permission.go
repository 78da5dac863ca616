package middleware

import (
	"log/slog"
	"net/http"

	"github.com/frahmantamala/user-admin/internal/auth"
)

// RequireAnyAuthority guards a route behind the given authority role
// codes; the acting administrator must hold at least one.
func RequireAnyAuthority(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			admin, ok := auth.UserFromContext(r.Context())
			if !ok || admin == nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			if !admin.HasAnyAuthority(roles) {
				slog.Warn("access denied: missing required authority",
					"username", admin.Username,
					"required_authorities", roles,
					"user_authorities", admin.Authorities)
				http.Error(w, "Forbidden: insufficient authorities", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
