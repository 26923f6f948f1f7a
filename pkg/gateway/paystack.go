package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"property-hub/pkg/utils"

	"go.uber.org/zap"
)

const DefaultBaseURL = "https://api.paystack.co"

const requestTimeout = 10 * time.Second

// Error is a rejection reported by Paystack itself, as opposed to a
// transport failure reaching it.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("paystack: %s", e.Message)
}

// PaystackGateway is the transaction surface the payment service depends on.
type PaystackGateway interface {
	Initialize(ctx context.Context, req InitializeRequest) (*InitializeData, error)
	Verify(ctx context.Context, reference string) (*VerifyResult, error)
}

type InitializeRequest struct {
	Email       string         `json:"email"`
	Amount      int64          `json:"amount"` // minor currency unit (kobo)
	Reference   string         `json:"reference"`
	CallbackURL string         `json:"callback_url"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

type InitializeData struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

type VerifyData struct {
	Status    string `json:"status"`
	Amount    int64  `json:"amount"` // minor currency unit (kobo)
	Reference string `json:"reference"`
	PaidAt    string `json:"paid_at"`
}

// VerifyResult carries the raw gateway answer; the caller applies the
// success rule (Status && Data.Status == "success").
type VerifyResult struct {
	Status  bool
	Message string
	Data    VerifyData
}

type Paystack struct {
	secretKey string
	baseURL   string
	client    *http.Client
	log       *zap.Logger
}

func NewPaystack(config utils.PaystackConfig, log *zap.Logger) *Paystack {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Paystack{
		secretKey: config.SecretKey,
		baseURL:   baseURL,
		client:    &http.Client{Timeout: requestTimeout},
		log:       log.With(zap.String("gateway", "paystack")),
	}
}

// Initialize creates a checkout session for a pending payment. The reference
// doubles as Paystack's idempotency key, so retrying with the same payment ID
// is safe.
func (p *Paystack) Initialize(ctx context.Context, req InitializeRequest) (*InitializeData, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode initialize request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/transaction/initialize", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build initialize request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+p.secretKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(httpReq)
	if err != nil {
		p.log.Error("Paystack initialize call failed",
			zap.Error(err),
			zap.String("reference", req.Reference),
		)
		return nil, fmt.Errorf("call paystack initialize: %w", err)
	}
	defer resp.Body.Close()

	var parsed struct {
		Status  bool           `json:"status"`
		Message string         `json:"message"`
		Data    InitializeData `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode paystack initialize response: %w", err)
	}

	if !parsed.Status {
		p.log.Warn("Paystack rejected transaction initialize",
			zap.String("reference", req.Reference),
			zap.String("message", parsed.Message),
		)
		return nil, &Error{Message: parsed.Message}
	}

	return &parsed.Data, nil
}

// Verify asks Paystack whether the referenced transaction succeeded.
func (p *Paystack) Verify(ctx context.Context, reference string) (*VerifyResult, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/transaction/verify/"+reference, nil)
	if err != nil {
		return nil, fmt.Errorf("build verify request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+p.secretKey)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		p.log.Error("Paystack verify call failed",
			zap.Error(err),
			zap.String("reference", reference),
		)
		return nil, fmt.Errorf("call paystack verify: %w", err)
	}
	defer resp.Body.Close()

	var parsed struct {
		Status  bool       `json:"status"`
		Message string     `json:"message"`
		Data    VerifyData `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode paystack verify response: %w", err)
	}

	return &VerifyResult{
		Status:  parsed.Status,
		Message: parsed.Message,
		Data:    parsed.Data,
	}, nil
}
