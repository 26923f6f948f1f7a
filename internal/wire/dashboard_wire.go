package wire

import (
	"property-hub/internal/adaptor"
	"property-hub/internal/data/repository"
	"property-hub/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireDashboard(
	r chi.Router,
	dashboardHandler *adaptor.DashboardHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.Route("/api/dashboard", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Staff(log))

		r.Get("/stats", dashboardHandler.Stats)
	})
}
