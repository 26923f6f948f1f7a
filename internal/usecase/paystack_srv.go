package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"

	"property-hub/internal/data/entity"
	"property-hub/internal/data/repository"
	"property-hub/internal/dto/request"
	"property-hub/internal/dto/response"
	"property-hub/pkg/gateway"
	"property-hub/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrGatewayNotConfigured means the Paystack secret key is absent from the
// environment; online payments cannot work until it is set.
var ErrGatewayNotConfigured = errors.New("payment gateway not configured")

const paystackMethod = "paystack"

type PaystackService interface {
	InitializePayment(ctx context.Context, req *request.InitializePaymentRequest) (*response.InitializePaymentResponse, error)
	VerifyPayment(ctx context.Context, req *request.VerifyPaymentRequest) (*response.VerifyPaymentResponse, error)
}

type paystackService struct {
	repo    *repository.Repository
	gateway gateway.PaystackGateway
	config  *utils.Config
	log     *zap.Logger
}

func NewPaystackService(repo *repository.Repository, gw gateway.PaystackGateway, config *utils.Config, log *zap.Logger) PaystackService {
	return &paystackService{
		repo:    repo,
		gateway: gw,
		config:  config,
		log:     log.With(zap.String("service", "paystack")),
	}
}

// InitializePayment asks Paystack for a checkout session. The payment ID is
// used as the transaction reference, which makes retries idempotent on the
// gateway side. Nothing is written to the store here: the row only changes
// after a successful verification.
func (s *paystackService) InitializePayment(ctx context.Context, req *request.InitializePaymentRequest) (*response.InitializePaymentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Initialize payment validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if s.config.Paystack.SecretKey == "" {
		return nil, ErrGatewayNotConfigured
	}

	// Paystack wants the amount in the minor unit (kobo). Rounding avoids
	// float drift on amounts like 49.99.
	amountKobo := int64(math.Round(req.Amount * 100))

	data, err := s.gateway.Initialize(ctx, gateway.InitializeRequest{
		Email:       req.Email,
		Amount:      amountKobo,
		Reference:   req.PaymentID,
		CallbackURL: req.CallbackURL,
		Metadata: map[string]any{
			"payment_id": req.PaymentID,
		},
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Payment initialized",
		zap.String("payment_id", req.PaymentID),
		zap.Int64("amount_kobo", amountKobo))

	return &response.InitializePaymentResponse{
		AuthorizationURL: data.AuthorizationURL,
		AccessCode:       data.AccessCode,
		Reference:        data.Reference,
	}, nil
}

// VerifyPayment asks Paystack whether the referenced transaction succeeded
// and, when it did, marks the matching payment row completed. The reference
// is the payment's own ID, so the row is matched on its primary key.
//
// A negative gateway answer is a valid outcome, not an error. A store
// failure after a positive answer is logged and the caller still gets a
// success: the money moved, reconciliation is an operator concern.
func (s *paystackService) VerifyPayment(ctx context.Context, req *request.VerifyPaymentRequest) (*response.VerifyPaymentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Verify payment validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if s.config.Paystack.SecretKey == "" {
		return nil, ErrGatewayNotConfigured
	}

	paymentID, err := uuid.Parse(req.Reference)
	if err != nil {
		return nil, fmt.Errorf("invalid payment reference %s: %w", req.Reference, err)
	}

	// Re-verifying an already settled payment is a no-op.
	payment, err := s.repo.Payment.FindByID(ctx, paymentID)
	if err != nil {
		s.log.Error("Failed to load payment before verification",
			zap.Error(err),
			zap.String("reference", req.Reference))
	}
	if payment != nil && payment.Status == entity.PaymentStatusCompleted {
		data := &response.VerifiedPaymentData{
			Amount:    payment.Amount,
			Reference: req.Reference,
		}
		if payment.PaymentDate != nil {
			data.PaidAt = payment.PaymentDate.UTC().Format("2006-01-02T15:04:05Z")
		}
		return &response.VerifyPaymentResponse{
			Success: true,
			Message: "Payment already verified",
			Data:    data,
		}, nil
	}

	result, err := s.gateway.Verify(ctx, req.Reference)
	if err != nil {
		return nil, err
	}

	if !result.Status || result.Data.Status != "success" {
		message := result.Message
		if message == "" {
			message = "Payment verification failed"
		}
		s.log.Info("Payment verification negative",
			zap.String("reference", req.Reference),
			zap.String("transaction_status", result.Data.Status))
		return &response.VerifyPaymentResponse{
			Success: false,
			Message: message,
		}, nil
	}

	if err := s.repo.Payment.MarkCompleted(ctx, paymentID, paystackMethod, result.Data.Reference); err != nil {
		// The gateway confirmed the charge; surfacing a failure here would
		// tell the payer their money vanished. Log loudly instead.
		s.log.Error("Payment verified but store update failed",
			zap.Error(err),
			zap.String("payment_id", paymentID.String()),
			zap.String("reference", result.Data.Reference))
	} else {
		s.log.Info("Payment verified and completed",
			zap.String("payment_id", paymentID.String()),
			zap.String("reference", result.Data.Reference))
	}

	return &response.VerifyPaymentResponse{
		Success: true,
		Message: "Payment verified successfully",
		Data: &response.VerifiedPaymentData{
			Amount:    float64(result.Data.Amount) / 100,
			Reference: result.Data.Reference,
			PaidAt:    result.Data.PaidAt,
		},
	}, nil
}
