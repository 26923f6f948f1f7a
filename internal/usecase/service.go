package usecase

import (
	"property-hub/internal/data/repository"
	"property-hub/pkg/gateway"
	"property-hub/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth        AuthService
	Property    PropertyService
	Tenant      TenantService
	Payment     PaymentService
	Paystack    PaystackService
	Maintenance MaintenanceService
	Dashboard   DashboardService
}

func NewService(repo *repository.Repository, gw gateway.PaystackGateway, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:        NewAuthService(repo, config, log),
		Property:    NewPropertyService(repo, log),
		Tenant:      NewTenantService(repo, log),
		Payment:     NewPaymentService(repo, log),
		Paystack:    NewPaystackService(repo, gw, config, log),
		Maintenance: NewMaintenanceService(repo, log),
		Dashboard:   NewDashboardService(repo, log),
	}
}
