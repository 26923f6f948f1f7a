package response

// InitializePaymentResponse mirrors what Paystack hands back for a new
// checkout session; the authorization URL is forwarded unmodified.
type InitializePaymentResponse struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

type VerifiedPaymentData struct {
	Amount    float64 `json:"amount"` // major currency unit
	Reference string  `json:"reference"`
	PaidAt    string  `json:"paid_at"`
}

type VerifyPaymentResponse struct {
	Success bool                 `json:"success"`
	Message string               `json:"message"`
	Data    *VerifiedPaymentData `json:"data,omitempty"`
}
