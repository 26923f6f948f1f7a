package entity

import (
	"github.com/google/uuid"
)

type PropertyStatus string

const (
	PropertyStatusAvailable   PropertyStatus = "available"
	PropertyStatusOccupied    PropertyStatus = "occupied"
	PropertyStatusMaintenance PropertyStatus = "maintenance"
)

type Property struct {
	Base
	Title        string         `db:"title"`
	Description  *string        `db:"description"`
	Address      string         `db:"address"`
	City         string         `db:"city"`
	State        *string        `db:"state"`
	Country      *string        `db:"country"`
	PropertyType string         `db:"property_type"`
	Bedrooms     *int           `db:"bedrooms"`
	Bathrooms    *int           `db:"bathrooms"`
	AreaSqft     *float64       `db:"area_sqft"`
	RentAmount   float64        `db:"rent_amount"`
	Status       PropertyStatus `db:"status"`
	Amenities    []string       `db:"amenities"`
	Images       []string       `db:"images"`
	ManagerID    *uuid.UUID     `db:"manager_id"`
}
