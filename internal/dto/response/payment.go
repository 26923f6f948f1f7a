package response

import (
	"time"

	"property-hub/internal/data/entity"
)

type PaymentResponse struct {
	ID               string               `json:"id"`
	TenantID         string               `json:"tenant_id"`
	PropertyID       *string              `json:"property_id,omitempty"`
	TenantName       *string              `json:"tenant_name,omitempty"`
	TenantEmail      *string              `json:"tenant_email,omitempty"`
	PropertyTitle    *string              `json:"property_title,omitempty"`
	PropertyAddress  *string              `json:"property_address,omitempty"`
	Amount           float64              `json:"amount"`
	DueDate          time.Time            `json:"due_date"`
	PaymentDate      *time.Time           `json:"payment_date,omitempty"`
	Status           entity.PaymentStatus `json:"status"`
	PaymentMethod    *string              `json:"payment_method,omitempty"`
	PaymentReference *string              `json:"payment_reference,omitempty"`
	Description      *string              `json:"description,omitempty"`
	CreatedAt        time.Time            `json:"created_at"`
}

func PaymentToResponse(payment *entity.Payment) PaymentResponse {
	resp := PaymentResponse{
		ID:               payment.ID.String(),
		TenantID:         payment.TenantID.String(),
		Amount:           payment.Amount,
		DueDate:          payment.DueDate,
		PaymentDate:      payment.PaymentDate,
		Status:           payment.Status,
		PaymentMethod:    payment.PaymentMethod,
		PaymentReference: payment.PaymentReference,
		Description:      payment.Description,
		CreatedAt:        payment.CreatedAt,
	}

	if payment.PropertyID != nil {
		id := payment.PropertyID.String()
		resp.PropertyID = &id
	}

	return resp
}

func PaymentDetailToResponse(payment *entity.PaymentDetail) PaymentResponse {
	resp := PaymentToResponse(&payment.Payment)
	resp.TenantName = payment.TenantName
	resp.TenantEmail = payment.TenantEmail
	resp.PropertyTitle = payment.PropertyTitle
	resp.PropertyAddress = payment.PropertyAddress
	return resp
}
