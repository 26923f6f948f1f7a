package entity

import (
	"github.com/google/uuid"
)

type MaintenancePriority string

const (
	MaintenancePriorityLow    MaintenancePriority = "low"
	MaintenancePriorityMedium MaintenancePriority = "medium"
	MaintenancePriorityHigh   MaintenancePriority = "high"
	MaintenancePriorityUrgent MaintenancePriority = "urgent"
)

type MaintenanceStatus string

const (
	MaintenanceStatusOpen       MaintenanceStatus = "open"
	MaintenanceStatusInProgress MaintenanceStatus = "in_progress"
	MaintenanceStatusResolved   MaintenanceStatus = "resolved"
	MaintenanceStatusCancelled  MaintenanceStatus = "cancelled"
)

type MaintenanceRequest struct {
	Base
	PropertyID  uuid.UUID           `db:"property_id"`
	TenantID    *uuid.UUID          `db:"tenant_id"`
	Title       string              `db:"title"`
	Description *string             `db:"description"`
	Priority    MaintenancePriority `db:"priority"`
	Status      MaintenanceStatus   `db:"status"`
}

// MaintenanceDetail is a maintenance request joined with its property.
type MaintenanceDetail struct {
	MaintenanceRequest
	PropertyTitle   string `db:"property_title"`
	PropertyAddress string `db:"property_address"`
}
