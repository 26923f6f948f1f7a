package wire

import (
	"property-hub/internal/adaptor"
	"property-hub/internal/data/repository"
	"property-hub/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMaintenance(
	r chi.Router,
	maintenanceHandler *adaptor.MaintenanceHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.Route("/api/maintenance", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// Any authenticated user can file a request and follow their own
		r.Post("/", maintenanceHandler.Create)
		r.Get("/me", maintenanceHandler.ListMine)
		r.Get("/{id}", maintenanceHandler.Get)

		// Triage and resolution are staff only
		r.Group(func(r chi.Router) {
			r.Use(middleware.Staff(log))

			r.Get("/", maintenanceHandler.List)
			r.Put("/{id}", maintenanceHandler.Update)
		})
	})
}
