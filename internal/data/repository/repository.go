package repository

import (
	"property-hub/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User        UserRepository
	Session     SessionRepository
	Property    PropertyRepository
	Tenant      TenantRepository
	Payment     PaymentRepository
	Maintenance MaintenanceRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:        NewUserRepository(db, log),
		Session:     NewSessionRepository(db, log),
		Property:    NewPropertyRepository(db, log),
		Tenant:      NewTenantRepository(db, log),
		Payment:     NewPaymentRepository(db, log),
		Maintenance: NewMaintenanceRepository(db, log),
	}
}
