package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"property-hub/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestPaystack(t *testing.T, handler http.HandlerFunc) *Paystack {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewPaystack(utils.PaystackConfig{
		SecretKey: "sk_test_abc123",
		BaseURL:   server.URL,
	}, zap.NewNop())
}

func TestInitializeSendsAuthorizedRequest(t *testing.T) {
	var gotAuth, gotPath string
	var gotBody map[string]any

	p := newTestPaystack(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		json.NewEncoder(w).Encode(map[string]any{
			"status":  true,
			"message": "Authorization URL created",
			"data": map[string]any{
				"authorization_url": "https://checkout.paystack.com/xyz",
				"access_code":       "xyz",
				"reference":         "pay-123",
			},
		})
	})

	data, err := p.Initialize(context.Background(), InitializeRequest{
		Email:       "tenant@example.com",
		Amount:      500000,
		Reference:   "pay-123",
		CallbackURL: "https://app.example.com/payments/callback",
		Metadata:    map[string]any{"payment_id": "pay-123"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer sk_test_abc123", gotAuth)
	assert.Equal(t, "/transaction/initialize", gotPath)
	assert.Equal(t, "tenant@example.com", gotBody["email"])
	assert.Equal(t, float64(500000), gotBody["amount"])
	assert.Equal(t, "pay-123", gotBody["reference"])
	assert.Equal(t, "https://checkout.paystack.com/xyz", data.AuthorizationURL)
	assert.Equal(t, "xyz", data.AccessCode)
	assert.Equal(t, "pay-123", data.Reference)
}

func TestInitializeRejectionBecomesGatewayError(t *testing.T) {
	p := newTestPaystack(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"status":  false,
			"message": "Invalid key",
		})
	})

	data, err := p.Initialize(context.Background(), InitializeRequest{
		Email:     "tenant@example.com",
		Amount:    100,
		Reference: "pay-1",
	})
	require.Nil(t, data)

	var gwErr *Error
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, "Invalid key", gwErr.Message)
}

func TestVerifyParsesTransactionState(t *testing.T) {
	var gotPath string

	p := newTestPaystack(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(map[string]any{
			"status":  true,
			"message": "Verification successful",
			"data": map[string]any{
				"status":    "success",
				"amount":    500000,
				"reference": "pay-123",
				"paid_at":   "2026-08-01T10:00:00Z",
			},
		})
	})

	result, err := p.Verify(context.Background(), "pay-123")
	require.NoError(t, err)

	assert.Equal(t, "/transaction/verify/pay-123", gotPath)
	assert.True(t, result.Status)
	assert.Equal(t, "success", result.Data.Status)
	assert.Equal(t, int64(500000), result.Data.Amount)
	assert.Equal(t, "pay-123", result.Data.Reference)
}

func TestVerifyAbandonedTransactionIsNotAnError(t *testing.T) {
	p := newTestPaystack(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"status":  true,
			"message": "Verification successful",
			"data": map[string]any{
				"status":    "abandoned",
				"amount":    500000,
				"reference": "pay-123",
			},
		})
	})

	result, err := p.Verify(context.Background(), "pay-123")
	require.NoError(t, err)

	assert.True(t, result.Status)
	assert.Equal(t, "abandoned", result.Data.Status)
}

func TestNewPaystackDefaultsBaseURL(t *testing.T) {
	p := NewPaystack(utils.PaystackConfig{SecretKey: "sk_test"}, zap.NewNop())
	assert.Equal(t, DefaultBaseURL, p.baseURL)
}
