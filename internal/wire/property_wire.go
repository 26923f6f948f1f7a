package wire

import (
	"property-hub/internal/adaptor"
	"property-hub/internal/data/repository"
	"property-hub/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireProperty(
	r chi.Router,
	propertyHandler *adaptor.PropertyHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.Route("/api/properties", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// Browsing is open to every authenticated user
		r.Get("/", propertyHandler.List)
		r.Get("/{id}", propertyHandler.Get)

		// Mutations are staff only
		r.Group(func(r chi.Router) {
			r.Use(middleware.Staff(log))

			r.Post("/", propertyHandler.Create)
			r.Put("/{id}", propertyHandler.Update)
			r.Delete("/{id}", propertyHandler.Delete)
		})
	})
}
