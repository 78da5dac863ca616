package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/user-admin/internal/auth"
	"github.com/frahmantamala/user-admin/internal/transport/middleware"
	"github.com/frahmantamala/user-admin/internal/transport/swagger"
	"github.com/frahmantamala/user-admin/internal/user"
	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
)

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, authHandler *auth.Handler, userHandler *user.Handler, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	// Apply global middleware
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	// Swagger UI route at root
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		// Health check routes
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		if authHandler == nil || userHandler == nil {
			return
		}

		// Everything below requires an authenticated administrator.
		r.Group(func(pr chi.Router) {
			pr.Use(authHandler.AuthMiddleware)

			pr.Get("/users/me", userHandler.GetCurrentUser)
			pr.Get("/users/{username}", userHandler.GetUser)

			pr.Route("/authusers", func(ar chi.Router) {
				ar.Get("/", userHandler.SearchAuthUsersByEmail)
				ar.Get("/{username}", userHandler.GetAuthUser)

				// Enable/disable is restricted to the maintain roles; the
				// group relationship check narrows group managers further.
				ar.Group(func(mr chi.Router) {
					mr.Use(middleware.RequireAnyAuthority(user.RoleMaintainUsers, user.RoleGroupManager))
					mr.Put("/{username}/enable", userHandler.EnableUser)
					mr.Put("/{username}/disable", userHandler.DisableUser)
				})
			})
		})
	})
}
