package request

type CreatePropertyRequest struct {
	Title        string   `json:"title" validate:"required,min=3,max=200"`
	Description  *string  `json:"description,omitempty"`
	Address      string   `json:"address" validate:"required"`
	City         string   `json:"city" validate:"required"`
	State        *string  `json:"state,omitempty"`
	Country      *string  `json:"country,omitempty"`
	PropertyType string   `json:"property_type" validate:"required"`
	Bedrooms     *int     `json:"bedrooms,omitempty" validate:"omitempty,min=0"`
	Bathrooms    *int     `json:"bathrooms,omitempty" validate:"omitempty,min=0"`
	AreaSqft     *float64 `json:"area_sqft,omitempty" validate:"omitempty,gt=0"`
	RentAmount   float64  `json:"rent_amount" validate:"required,gt=0"`
	Status       string   `json:"status,omitempty" validate:"omitempty,oneof=available occupied maintenance"`
	Amenities    []string `json:"amenities,omitempty"`
	Images       []string `json:"images,omitempty"`
	ManagerID    *string  `json:"manager_id,omitempty" validate:"omitempty,uuid4"`
}

type UpdatePropertyRequest struct {
	CreatePropertyRequest
}

type ListPropertiesRequest struct {
	PaginatedRequest
	Status string `json:"status,omitempty" validate:"omitempty,oneof=available occupied maintenance"`
}
