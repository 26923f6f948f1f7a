package adaptor

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"property-hub/internal/dto/request"
	"property-hub/internal/dto/response"
	"property-hub/internal/usecase"
	"property-hub/pkg/gateway"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var (
	errValidation = errors.New("validation failed: Email is required")
	errTransport  = errors.New("call paystack initialize: connection refused")
)

type mockPaystackService struct {
	mock.Mock
}

func (m *mockPaystackService) InitializePayment(ctx context.Context, req *request.InitializePaymentRequest) (*response.InitializePaymentResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.InitializePaymentResponse), args.Error(1)
}

func (m *mockPaystackService) VerifyPayment(ctx context.Context, req *request.VerifyPaymentRequest) (*response.VerifyPaymentResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.VerifyPaymentResponse), args.Error(1)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestInitializeReturnsFlatCheckoutBody(t *testing.T) {
	svc := new(mockPaystackService)
	svc.On("InitializePayment", mock.Anything, mock.Anything).Return(&response.InitializePaymentResponse{
		AuthorizationURL: "https://checkout.paystack.com/abc",
		AccessCode:       "abc",
		Reference:        "pay-1",
	}, nil)

	h := NewPaystackHandler(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/payments/initialize",
		strings.NewReader(`{"payment_id":"x","email":"t@example.com","amount":50,"callback_url":"https://a.b/c"}`))
	rec := httptest.NewRecorder()
	h.Initialize(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "https://checkout.paystack.com/abc", body["authorization_url"])
	assert.Equal(t, "abc", body["access_code"])
	assert.Equal(t, "pay-1", body["reference"])
	assert.NotContains(t, body, "status")
}

func TestInitializeMalformedBodyIsRejected(t *testing.T) {
	svc := new(mockPaystackService)
	h := NewPaystackHandler(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/payments/initialize", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.Initialize(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Contains(t, body, "error")
	svc.AssertNotCalled(t, "InitializePayment", mock.Anything, mock.Anything)
}

func TestInitializeErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{
			name:     "gateway not configured",
			err:      usecase.ErrGatewayNotConfigured,
			wantCode: http.StatusInternalServerError,
		},
		{
			name:     "paystack rejection",
			err:      &gateway.Error{Message: "Invalid key"},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "validation failure",
			err:      errValidation,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "transport failure",
			err:      errTransport,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockPaystackService)
			svc.On("InitializePayment", mock.Anything, mock.Anything).Return(nil, tt.err)

			h := NewPaystackHandler(svc, zap.NewNop())

			req := httptest.NewRequest(http.MethodPost, "/api/payments/initialize", strings.NewReader(`{}`))
			rec := httptest.NewRecorder()
			h.Initialize(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			body := decodeBody(t, rec)
			assert.Contains(t, body, "error")
		})
	}
}

func TestVerifyNegativeOutcomeStillAnswers200(t *testing.T) {
	svc := new(mockPaystackService)
	svc.On("VerifyPayment", mock.Anything, mock.Anything).Return(&response.VerifyPaymentResponse{
		Success: false,
		Message: "Payment verification failed",
	}, nil)

	h := NewPaystackHandler(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/payments/verify", strings.NewReader(`{"reference":"pay-1"}`))
	rec := httptest.NewRecorder()
	h.Verify(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Payment verification failed", body["message"])
	assert.NotContains(t, body, "data")
}

func TestVerifySuccessShapesBody(t *testing.T) {
	svc := new(mockPaystackService)
	svc.On("VerifyPayment", mock.Anything, mock.Anything).Return(&response.VerifyPaymentResponse{
		Success: true,
		Message: "Payment verified successfully",
		Data: &response.VerifiedPaymentData{
			Amount:    5000,
			Reference: "pay-1",
			PaidAt:    "2026-08-01T10:00:00Z",
		},
	}, nil)

	h := NewPaystackHandler(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/payments/verify", strings.NewReader(`{"reference":"pay-1"}`))
	rec := httptest.NewRecorder()
	h.Verify(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])

	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(5000), data["amount"])
	assert.Equal(t, "pay-1", data["reference"])
}
