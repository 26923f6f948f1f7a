package wire

import (
	"property-hub/internal/adaptor"
	"property-hub/internal/data/repository"
	"property-hub/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePayment(
	r chi.Router,
	paymentHandler *adaptor.PaymentHandler,
	paystackHandler *adaptor.PaystackHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.Route("/api/payments", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// Checkout flow, reachable by the tenant doing the paying
		r.Post("/initialize", paystackHandler.Initialize)
		r.Post("/verify", paystackHandler.Verify)

		// A tenant's own history
		r.Get("/me", paymentHandler.ListMine)

		// Record keeping is staff only
		r.Group(func(r chi.Router) {
			r.Use(middleware.Staff(log))

			r.Get("/", paymentHandler.List)
			r.Post("/", paymentHandler.Create)
			r.Post("/mark-overdue", paymentHandler.MarkOverdue)
			r.Get("/{id}", paymentHandler.Get)
			r.Put("/{id}", paymentHandler.Update)
		})
	})
}
