package wire

import (
	"property-hub/internal/adaptor"
	"property-hub/internal/data/repository"
	"property-hub/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireTenant(
	r chi.Router,
	tenantHandler *adaptor.TenantHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Tenant records hold lease and deposit details, staff only throughout.
	r.Route("/api/tenants", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Staff(log))

		r.Get("/", tenantHandler.List)
		r.Post("/", tenantHandler.Create)
		r.Get("/{id}", tenantHandler.Get)
		r.Put("/{id}", tenantHandler.Update)
		r.Delete("/{id}", tenantHandler.Delete)
	})
}
