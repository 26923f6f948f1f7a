package response

import (
	"time"

	"property-hub/internal/data/entity"
)

type TenantResponse struct {
	ID              string     `json:"id"`
	UserID          string     `json:"user_id"`
	PropertyID      *string    `json:"property_id,omitempty"`
	FullName        *string    `json:"full_name,omitempty"`
	Email           string     `json:"email,omitempty"`
	Phone           *string    `json:"phone,omitempty"`
	PropertyTitle   *string    `json:"property_title,omitempty"`
	PropertyAddress *string    `json:"property_address,omitempty"`
	LeaseStart      *time.Time `json:"lease_start,omitempty"`
	LeaseEnd        *time.Time `json:"lease_end,omitempty"`
	MonthlyRent     *float64   `json:"monthly_rent,omitempty"`
	SecurityDeposit *float64   `json:"security_deposit,omitempty"`
	IsActive        bool       `json:"is_active"`
	CreatedAt       time.Time  `json:"created_at"`
}

func TenantToResponse(tenant *entity.TenantDetail) TenantResponse {
	resp := TenantResponse{
		ID:              tenant.ID.String(),
		UserID:          tenant.UserID.String(),
		FullName:        tenant.FullName,
		Email:           tenant.Email,
		Phone:           tenant.Phone,
		PropertyTitle:   tenant.PropertyTitle,
		PropertyAddress: tenant.PropertyAddress,
		LeaseStart:      tenant.LeaseStart,
		LeaseEnd:        tenant.LeaseEnd,
		MonthlyRent:     tenant.MonthlyRent,
		SecurityDeposit: tenant.SecurityDeposit,
		IsActive:        tenant.IsActive,
		CreatedAt:       tenant.CreatedAt,
	}

	if tenant.PropertyID != nil {
		id := tenant.PropertyID.String()
		resp.PropertyID = &id
	}

	return resp
}
