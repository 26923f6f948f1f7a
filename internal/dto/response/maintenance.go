package response

import (
	"time"

	"property-hub/internal/data/entity"
)

type MaintenanceResponse struct {
	ID              string                     `json:"id"`
	PropertyID      string                     `json:"property_id"`
	TenantID        *string                    `json:"tenant_id,omitempty"`
	Title           string                     `json:"title"`
	Description     *string                    `json:"description,omitempty"`
	Priority        entity.MaintenancePriority `json:"priority"`
	Status          entity.MaintenanceStatus   `json:"status"`
	PropertyTitle   string                     `json:"property_title,omitempty"`
	PropertyAddress string                     `json:"property_address,omitempty"`
	CreatedAt       time.Time                  `json:"created_at"`
	UpdatedAt       time.Time                  `json:"updated_at"`
}

func MaintenanceToResponse(request *entity.MaintenanceDetail) MaintenanceResponse {
	resp := MaintenanceResponse{
		ID:              request.ID.String(),
		PropertyID:      request.PropertyID.String(),
		Title:           request.Title,
		Description:     request.Description,
		Priority:        request.Priority,
		Status:          request.Status,
		PropertyTitle:   request.PropertyTitle,
		PropertyAddress: request.PropertyAddress,
		CreatedAt:       request.CreatedAt,
		UpdatedAt:       request.UpdatedAt,
	}

	if request.TenantID != nil {
		id := request.TenantID.String()
		resp.TenantID = &id
	}

	return resp
}
