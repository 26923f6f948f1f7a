package request

type CreatePaymentRequest struct {
	TenantID    string  `json:"tenant_id" validate:"required,uuid4"`
	PropertyID  *string `json:"property_id,omitempty" validate:"omitempty,uuid4"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	DueDate     string  `json:"due_date" validate:"required,datetime=2006-01-02"`
	Description *string `json:"description,omitempty"`
}

// UpdatePaymentRequest covers staff edits. Amount is deliberately absent:
// a recorded amount is immutable, corrections are new records.
type UpdatePaymentRequest struct {
	DueDate       *string `json:"due_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Status        *string `json:"status,omitempty" validate:"omitempty,oneof=pending completed failed overdue"`
	PaymentMethod *string `json:"payment_method,omitempty"`
	Description   *string `json:"description,omitempty"`
}

type ListPaymentsRequest struct {
	PaginatedRequest
	Status string `json:"status,omitempty" validate:"omitempty,oneof=pending completed failed overdue"`
}
