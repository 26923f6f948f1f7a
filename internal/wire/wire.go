// internal/wire/wire.go
package wire

import (
	"net/http"

	"property-hub/internal/adaptor"
	"property-hub/internal/data/repository"
	"property-hub/internal/usecase"
	"property-hub/pkg/gateway"
	"property-hub/pkg/middleware"
	"property-hub/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired application.
type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and routes from the repository layer.
func Wiring(repo *repository.Repository, gw gateway.PaystackGateway, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, gw, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireAuth(r, handler.Auth, repo, logger)
	wireProperty(r, handler.Property, repo, logger)
	wireTenant(r, handler.Tenant, repo, logger)
	wirePayment(r, handler.Payment, handler.Paystack, repo, logger)
	wireMaintenance(r, handler.Maintenance, repo, logger)
	wireDashboard(r, handler.Dashboard, repo, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
