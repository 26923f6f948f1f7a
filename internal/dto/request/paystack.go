package request

type InitializePaymentRequest struct {
	PaymentID   string  `json:"payment_id" validate:"required,uuid4"`
	Email       string  `json:"email" validate:"required,email"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	CallbackURL string  `json:"callback_url" validate:"required,url"`
}

type VerifyPaymentRequest struct {
	Reference string `json:"reference" validate:"required"`
}
