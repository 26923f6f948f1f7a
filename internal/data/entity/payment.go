package entity

import (
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusOverdue   PaymentStatus = "overdue"
)

type Payment struct {
	Base
	TenantID         uuid.UUID     `db:"tenant_id"`
	PropertyID       *uuid.UUID    `db:"property_id"`
	Amount           float64       `db:"amount"`
	DueDate          time.Time     `db:"due_date"`
	PaymentDate      *time.Time    `db:"payment_date"`
	Status           PaymentStatus `db:"status"`
	PaymentMethod    *string       `db:"payment_method"`
	PaymentReference *string       `db:"payment_reference"`
	Description      *string       `db:"description"`
}

// PaymentDetail is a payment row joined with tenant profile and property info.
type PaymentDetail struct {
	Payment
	TenantName      *string `db:"tenant_name"`
	TenantEmail     *string `db:"tenant_email"`
	PropertyTitle   *string `db:"property_title"`
	PropertyAddress *string `db:"property_address"`
}

// StatusCount is an aggregate bucket used by the dashboard.
type StatusCount struct {
	Status string  `db:"status"`
	Count  int64   `db:"count"`
	Total  float64 `db:"total"`
}
