package entity

import (
	"time"

	"github.com/google/uuid"
)

type Tenant struct {
	Base
	UserID          uuid.UUID  `db:"user_id"`
	PropertyID      *uuid.UUID `db:"property_id"`
	LeaseStart      *time.Time `db:"lease_start"`
	LeaseEnd        *time.Time `db:"lease_end"`
	MonthlyRent     *float64   `db:"monthly_rent"`
	SecurityDeposit *float64   `db:"security_deposit"`
	IsActive        bool       `db:"is_active"`
}

// TenantDetail is a tenant row joined with its profile and assigned property.
type TenantDetail struct {
	Tenant
	FullName        *string `db:"full_name"`
	Email           string  `db:"email"`
	Phone           *string `db:"phone"`
	PropertyTitle   *string `db:"property_title"`
	PropertyAddress *string `db:"property_address"`
}
