package response

import (
	"time"

	"property-hub/internal/data/entity"
)

type PropertyResponse struct {
	ID           string                `json:"id"`
	Title        string                `json:"title"`
	Description  *string               `json:"description,omitempty"`
	Address      string                `json:"address"`
	City         string                `json:"city"`
	State        *string               `json:"state,omitempty"`
	Country      *string               `json:"country,omitempty"`
	PropertyType string                `json:"property_type"`
	Bedrooms     *int                  `json:"bedrooms,omitempty"`
	Bathrooms    *int                  `json:"bathrooms,omitempty"`
	AreaSqft     *float64              `json:"area_sqft,omitempty"`
	RentAmount   float64               `json:"rent_amount"`
	Status       entity.PropertyStatus `json:"status"`
	Amenities    []string              `json:"amenities,omitempty"`
	Images       []string              `json:"images,omitempty"`
	ManagerID    *string               `json:"manager_id,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

func PropertyToResponse(property *entity.Property) PropertyResponse {
	resp := PropertyResponse{
		ID:           property.ID.String(),
		Title:        property.Title,
		Description:  property.Description,
		Address:      property.Address,
		City:         property.City,
		State:        property.State,
		Country:      property.Country,
		PropertyType: property.PropertyType,
		Bedrooms:     property.Bedrooms,
		Bathrooms:    property.Bathrooms,
		AreaSqft:     property.AreaSqft,
		RentAmount:   property.RentAmount,
		Status:       property.Status,
		Amenities:    property.Amenities,
		Images:       property.Images,
		CreatedAt:    property.CreatedAt,
		UpdatedAt:    property.UpdatedAt,
	}

	if property.ManagerID != nil {
		id := property.ManagerID.String()
		resp.ManagerID = &id
	}

	return resp
}
