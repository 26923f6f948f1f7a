package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"property-hub/internal/data/entity"
	"property-hub/internal/data/repository"
	"property-hub/internal/dto/request"
	"property-hub/pkg/gateway"
	"property-hub/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockGateway struct {
	mock.Mock
}

func (m *mockGateway) Initialize(ctx context.Context, req gateway.InitializeRequest) (*gateway.InitializeData, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.InitializeData), args.Error(1)
}

func (m *mockGateway) Verify(ctx context.Context, reference string) (*gateway.VerifyResult, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.VerifyResult), args.Error(1)
}

type mockPaymentRepo struct {
	mock.Mock
}

func (m *mockPaymentRepo) Create(ctx context.Context, payment *entity.Payment) error {
	return m.Called(ctx, payment).Error(0)
}

func (m *mockPaymentRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Payment), args.Error(1)
}

func (m *mockPaymentRepo) FindAll(ctx context.Context, status *entity.PaymentStatus, limit, offset int) ([]*entity.PaymentDetail, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.PaymentDetail), args.Error(1)
}

func (m *mockPaymentRepo) FindByTenantID(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*entity.PaymentDetail, error) {
	args := m.Called(ctx, tenantID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.PaymentDetail), args.Error(1)
}

func (m *mockPaymentRepo) Count(ctx context.Context, status *entity.PaymentStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockPaymentRepo) CountByTenantID(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockPaymentRepo) Update(ctx context.Context, payment *entity.Payment) error {
	return m.Called(ctx, payment).Error(0)
}

func (m *mockPaymentRepo) MarkCompleted(ctx context.Context, id uuid.UUID, method, reference string) error {
	return m.Called(ctx, id, method, reference).Error(0)
}

func (m *mockPaymentRepo) MarkOverdue(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockPaymentRepo) CountByStatus(ctx context.Context) ([]entity.StatusCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.StatusCount), args.Error(1)
}

func newPaystackService(gw gateway.PaystackGateway, payments repository.PaymentRepository, secret string) PaystackService {
	repo := &repository.Repository{Payment: payments}
	config := &utils.Config{Paystack: utils.PaystackConfig{SecretKey: secret}}
	return NewPaystackService(repo, gw, config, zap.NewNop())
}

func TestInitializePaymentConvertsAmountToKobo(t *testing.T) {
	paymentID := uuid.New().String()

	gw := new(mockGateway)
	gw.On("Initialize", mock.Anything, mock.MatchedBy(func(req gateway.InitializeRequest) bool {
		return req.Amount == 500000 &&
			req.Reference == paymentID &&
			req.Email == "tenant@example.com" &&
			req.Metadata["payment_id"] == paymentID
	})).Return(&gateway.InitializeData{
		AuthorizationURL: "https://checkout.paystack.com/abc",
		AccessCode:       "abc",
		Reference:        paymentID,
	}, nil)

	svc := newPaystackService(gw, new(mockPaymentRepo), "sk_test")

	resp, err := svc.InitializePayment(context.Background(), &request.InitializePaymentRequest{
		PaymentID:   paymentID,
		Email:       "tenant@example.com",
		Amount:      5000.00,
		CallbackURL: "https://app.example.com/callback",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://checkout.paystack.com/abc", resp.AuthorizationURL)
	gw.AssertExpectations(t)
}

func TestInitializePaymentRoundsFractionalKobo(t *testing.T) {
	paymentID := uuid.New().String()

	gw := new(mockGateway)
	gw.On("Initialize", mock.Anything, mock.MatchedBy(func(req gateway.InitializeRequest) bool {
		return req.Amount == 4999
	})).Return(&gateway.InitializeData{Reference: paymentID}, nil)

	svc := newPaystackService(gw, new(mockPaymentRepo), "sk_test")

	_, err := svc.InitializePayment(context.Background(), &request.InitializePaymentRequest{
		PaymentID:   paymentID,
		Email:       "tenant@example.com",
		Amount:      49.99,
		CallbackURL: "https://app.example.com/callback",
	})
	require.NoError(t, err)
	gw.AssertExpectations(t)
}

func TestInitializePaymentValidatesBeforeCallingGateway(t *testing.T) {
	gw := new(mockGateway)
	svc := newPaystackService(gw, new(mockPaymentRepo), "sk_test")

	tests := []struct {
		name string
		req  *request.InitializePaymentRequest
	}{
		{
			name: "missing payment id",
			req: &request.InitializePaymentRequest{
				Email:       "tenant@example.com",
				Amount:      100,
				CallbackURL: "https://app.example.com/callback",
			},
		},
		{
			name: "bad email",
			req: &request.InitializePaymentRequest{
				PaymentID:   uuid.New().String(),
				Email:       "not-an-email",
				Amount:      100,
				CallbackURL: "https://app.example.com/callback",
			},
		},
		{
			name: "zero amount",
			req: &request.InitializePaymentRequest{
				PaymentID:   uuid.New().String(),
				Email:       "tenant@example.com",
				CallbackURL: "https://app.example.com/callback",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.InitializePayment(context.Background(), tt.req)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "validation failed")
		})
	}

	gw.AssertNotCalled(t, "Initialize", mock.Anything, mock.Anything)
}

func TestMissingSecretKeyFailsWithoutGatewayCall(t *testing.T) {
	gw := new(mockGateway)
	payments := new(mockPaymentRepo)
	svc := newPaystackService(gw, payments, "")

	_, err := svc.InitializePayment(context.Background(), &request.InitializePaymentRequest{
		PaymentID:   uuid.New().String(),
		Email:       "tenant@example.com",
		Amount:      5000,
		CallbackURL: "https://app.example.com/callback",
	})
	require.ErrorIs(t, err, ErrGatewayNotConfigured)

	_, err = svc.VerifyPayment(context.Background(), &request.VerifyPaymentRequest{
		Reference: uuid.New().String(),
	})
	require.ErrorIs(t, err, ErrGatewayNotConfigured)

	gw.AssertNotCalled(t, "Initialize", mock.Anything, mock.Anything)
	gw.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
	payments.AssertNotCalled(t, "MarkCompleted", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestVerifyPaymentSuccessMarksCompleted(t *testing.T) {
	paymentID := uuid.New()

	gw := new(mockGateway)
	gw.On("Verify", mock.Anything, paymentID.String()).Return(&gateway.VerifyResult{
		Status:  true,
		Message: "Verification successful",
		Data: gateway.VerifyData{
			Status:    "success",
			Amount:    500000,
			Reference: paymentID.String(),
			PaidAt:    "2026-08-01T10:00:00Z",
		},
	}, nil)

	payments := new(mockPaymentRepo)
	payments.On("FindByID", mock.Anything, paymentID).Return(&entity.Payment{
		Status: entity.PaymentStatusPending,
	}, nil)
	payments.On("MarkCompleted", mock.Anything, paymentID, "paystack", paymentID.String()).Return(nil).Once()

	svc := newPaystackService(gw, payments, "sk_test")

	resp, err := svc.VerifyPayment(context.Background(), &request.VerifyPaymentRequest{
		Reference: paymentID.String(),
	})
	require.NoError(t, err)

	assert.True(t, resp.Success)
	require.NotNil(t, resp.Data)
	assert.Equal(t, 5000.00, resp.Data.Amount)
	assert.Equal(t, paymentID.String(), resp.Data.Reference)
	payments.AssertExpectations(t)
	gw.AssertExpectations(t)
}

func TestVerifyPaymentNegativeOutcomeDoesNotTouchStore(t *testing.T) {
	tests := []struct {
		name   string
		result *gateway.VerifyResult
	}{
		{
			name: "transaction failed",
			result: &gateway.VerifyResult{
				Status: true,
				Data:   gateway.VerifyData{Status: "failed"},
			},
		},
		{
			name: "transaction abandoned",
			result: &gateway.VerifyResult{
				Status: true,
				Data:   gateway.VerifyData{Status: "abandoned"},
			},
		},
		{
			name: "gateway says no",
			result: &gateway.VerifyResult{
				Status:  false,
				Message: "Transaction reference not found",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paymentID := uuid.New()

			gw := new(mockGateway)
			gw.On("Verify", mock.Anything, paymentID.String()).Return(tt.result, nil)

			payments := new(mockPaymentRepo)
			payments.On("FindByID", mock.Anything, paymentID).Return(&entity.Payment{
				Status: entity.PaymentStatusPending,
			}, nil)

			svc := newPaystackService(gw, payments, "sk_test")

			resp, err := svc.VerifyPayment(context.Background(), &request.VerifyPaymentRequest{
				Reference: paymentID.String(),
			})
			require.NoError(t, err)

			assert.False(t, resp.Success)
			assert.NotEmpty(t, resp.Message)
			payments.AssertNotCalled(t, "MarkCompleted", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestVerifyPaymentAlreadyCompletedSkipsGateway(t *testing.T) {
	paymentID := uuid.New()
	paidAt := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	gw := new(mockGateway)

	payments := new(mockPaymentRepo)
	payments.On("FindByID", mock.Anything, paymentID).Return(&entity.Payment{
		Amount:      5000,
		Status:      entity.PaymentStatusCompleted,
		PaymentDate: &paidAt,
	}, nil)

	svc := newPaystackService(gw, payments, "sk_test")

	resp, err := svc.VerifyPayment(context.Background(), &request.VerifyPaymentRequest{
		Reference: paymentID.String(),
	})
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, "Payment already verified", resp.Message)
	require.NotNil(t, resp.Data)
	assert.Equal(t, 5000.00, resp.Data.Amount)
	gw.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
	payments.AssertNotCalled(t, "MarkCompleted", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestVerifyPaymentStoreFailureStillSucceeds(t *testing.T) {
	paymentID := uuid.New()

	gw := new(mockGateway)
	gw.On("Verify", mock.Anything, paymentID.String()).Return(&gateway.VerifyResult{
		Status: true,
		Data: gateway.VerifyData{
			Status:    "success",
			Amount:    250000,
			Reference: paymentID.String(),
		},
	}, nil)

	payments := new(mockPaymentRepo)
	payments.On("FindByID", mock.Anything, paymentID).Return(&entity.Payment{
		Status: entity.PaymentStatusPending,
	}, nil)
	payments.On("MarkCompleted", mock.Anything, paymentID, "paystack", paymentID.String()).
		Return(errors.New("connection reset"))

	svc := newPaystackService(gw, payments, "sk_test")

	resp, err := svc.VerifyPayment(context.Background(), &request.VerifyPaymentRequest{
		Reference: paymentID.String(),
	})
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, 2500.00, resp.Data.Amount)
}

func TestVerifyPaymentRejectsNonUUIDReference(t *testing.T) {
	gw := new(mockGateway)
	svc := newPaystackService(gw, new(mockPaymentRepo), "sk_test")

	_, err := svc.VerifyPayment(context.Background(), &request.VerifyPaymentRequest{
		Reference: "not-a-payment-id",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid payment reference")
	gw.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
}
