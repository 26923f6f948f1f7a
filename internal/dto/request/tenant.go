package request

type CreateTenantRequest struct {
	UserID          string   `json:"user_id" validate:"required,uuid4"`
	PropertyID      *string  `json:"property_id,omitempty" validate:"omitempty,uuid4"`
	LeaseStart      *string  `json:"lease_start,omitempty" validate:"omitempty,datetime=2006-01-02"`
	LeaseEnd        *string  `json:"lease_end,omitempty" validate:"omitempty,datetime=2006-01-02"`
	MonthlyRent     *float64 `json:"monthly_rent,omitempty" validate:"omitempty,gt=0"`
	SecurityDeposit *float64 `json:"security_deposit,omitempty" validate:"omitempty,min=0"`
}

type UpdateTenantRequest struct {
	PropertyID      *string  `json:"property_id,omitempty" validate:"omitempty,uuid4"`
	LeaseStart      *string  `json:"lease_start,omitempty" validate:"omitempty,datetime=2006-01-02"`
	LeaseEnd        *string  `json:"lease_end,omitempty" validate:"omitempty,datetime=2006-01-02"`
	MonthlyRent     *float64 `json:"monthly_rent,omitempty" validate:"omitempty,gt=0"`
	SecurityDeposit *float64 `json:"security_deposit,omitempty" validate:"omitempty,min=0"`
	IsActive        *bool    `json:"is_active,omitempty"`
}
