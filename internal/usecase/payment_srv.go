package usecase

import (
	"context"
	"fmt"
	"time"

	"property-hub/internal/data/entity"
	"property-hub/internal/data/repository"
	"property-hub/internal/dto/request"
	"property-hub/internal/dto/response"
	"property-hub/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PaymentService interface {
	CreatePayment(ctx context.Context, req *request.CreatePaymentRequest) (*response.PaymentResponse, error)
	GetPayment(ctx context.Context, paymentID string) (*response.PaymentResponse, error)
	ListPayments(ctx context.Context, req *request.ListPaymentsRequest) (*response.PaginatedResponse[response.PaymentResponse], error)
	ListTenantPayments(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.PaymentResponse], error)
	UpdatePayment(ctx context.Context, paymentID string, req *request.UpdatePaymentRequest) (*response.PaymentResponse, error)
	MarkOverduePayments(ctx context.Context) (int64, error)
}

type paymentService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewPaymentService(repo *repository.Repository, log *zap.Logger) PaymentService {
	return &paymentService{
		repo: repo,
		log:  log.With(zap.String("service", "payment")),
	}
}

func (s *paymentService) CreatePayment(ctx context.Context, req *request.CreatePaymentRequest) (*response.PaymentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create payment validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	tenantID, err := uuid.Parse(req.TenantID)
	if err != nil {
		return nil, fmt.Errorf("invalid tenant ID format %s: %w", req.TenantID, err)
	}

	tenant, err := s.repo.Tenant.FindByID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("check tenant: %w", err)
	}
	if tenant == nil {
		return nil, fmt.Errorf("tenant %s not found", req.TenantID)
	}

	var propertyID *uuid.UUID
	if req.PropertyID != nil {
		id, err := uuid.Parse(*req.PropertyID)
		if err != nil {
			return nil, fmt.Errorf("invalid property ID format %s: %w", *req.PropertyID, err)
		}
		propertyID = &id
	}

	dueDate, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		return nil, fmt.Errorf("invalid due date %s: %w", req.DueDate, err)
	}

	now := time.Now()
	payment := &entity.Payment{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		TenantID:    tenantID,
		PropertyID:  propertyID,
		Amount:      req.Amount,
		DueDate:     dueDate,
		Status:      entity.PaymentStatusPending,
		Description: req.Description,
	}

	if err := s.repo.Payment.Create(ctx, payment); err != nil {
		s.log.Error("Failed to create payment",
			zap.Error(err),
			zap.String("tenant_id", req.TenantID))
		return nil, fmt.Errorf("create payment: %w", err)
	}

	s.log.Info("Payment recorded",
		zap.String("payment_id", payment.ID.String()),
		zap.String("tenant_id", req.TenantID),
		zap.Float64("amount", req.Amount))

	resp := response.PaymentToResponse(payment)
	return &resp, nil
}

func (s *paymentService) GetPayment(ctx context.Context, paymentID string) (*response.PaymentResponse, error) {
	id, err := uuid.Parse(paymentID)
	if err != nil {
		return nil, fmt.Errorf("invalid payment ID format %s: %w", paymentID, err)
	}

	payment, err := s.repo.Payment.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}
	if payment == nil {
		return nil, fmt.Errorf("payment %s not found", paymentID)
	}

	resp := response.PaymentToResponse(payment)
	return &resp, nil
}

func (s *paymentService) ListPayments(ctx context.Context, req *request.ListPaymentsRequest) (*response.PaginatedResponse[response.PaymentResponse], error) {
	var status *entity.PaymentStatus
	if req.Status != "" {
		st := entity.PaymentStatus(req.Status)
		status = &st
	}

	payments, err := s.repo.Payment.FindAll(ctx, status, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list payments", zap.Error(err))
		return nil, fmt.Errorf("list payments: %w", err)
	}

	total, err := s.repo.Payment.Count(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("count payments: %w", err)
	}

	items := make([]response.PaymentResponse, len(payments))
	for i, payment := range payments {
		items[i] = response.PaymentDetailToResponse(payment)
	}

	return response.NewPaginatedResponse(items, req.Page, req.PerPage, total), nil
}

func (s *paymentService) ListTenantPayments(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.PaymentResponse], error) {
	tenant, err := s.repo.Tenant.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find tenant: %w", err)
	}
	if tenant == nil {
		return nil, fmt.Errorf("tenant record not found for current user")
	}

	payments, err := s.repo.Payment.FindByTenantID(ctx, tenant.ID, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list tenant payments",
			zap.Error(err),
			zap.String("tenant_id", tenant.ID.String()))
		return nil, fmt.Errorf("list tenant payments: %w", err)
	}

	total, err := s.repo.Payment.CountByTenantID(ctx, tenant.ID)
	if err != nil {
		return nil, fmt.Errorf("count tenant payments: %w", err)
	}

	items := make([]response.PaymentResponse, len(payments))
	for i, payment := range payments {
		items[i] = response.PaymentDetailToResponse(payment)
	}

	return response.NewPaginatedResponse(items, req.Page, req.PerPage, total), nil
}

func (s *paymentService) UpdatePayment(ctx context.Context, paymentID string, req *request.UpdatePaymentRequest) (*response.PaymentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update payment validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(paymentID)
	if err != nil {
		return nil, fmt.Errorf("invalid payment ID format %s: %w", paymentID, err)
	}

	payment, err := s.repo.Payment.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}
	if payment == nil {
		return nil, fmt.Errorf("payment %s not found", paymentID)
	}

	// Completed payments are terminal; only the description may still change.
	if payment.Status == entity.PaymentStatusCompleted {
		if req.Status != nil || req.DueDate != nil || req.PaymentMethod != nil {
			return nil, fmt.Errorf("cannot modify a completed payment")
		}
	}

	if req.Status != nil {
		next := entity.PaymentStatus(*req.Status)
		if payment.Status != next {
			// Only pending payments move; completed/failed/overdue are settled states.
			if payment.Status != entity.PaymentStatusPending {
				return nil, fmt.Errorf("cannot change payment status from %s to %s", payment.Status, next)
			}
			payment.Status = next
			if next == entity.PaymentStatusCompleted {
				now := time.Now()
				payment.PaymentDate = &now
			}
		}
	}

	if req.DueDate != nil {
		dueDate, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			return nil, fmt.Errorf("invalid due date %s: %w", *req.DueDate, err)
		}
		payment.DueDate = dueDate
	}
	if req.PaymentMethod != nil {
		payment.PaymentMethod = req.PaymentMethod
	}
	if req.Description != nil {
		payment.Description = req.Description
	}
	payment.UpdatedAt = time.Now()

	if err := s.repo.Payment.Update(ctx, payment); err != nil {
		s.log.Error("Failed to update payment",
			zap.Error(err),
			zap.String("payment_id", paymentID))
		return nil, fmt.Errorf("update payment: %w", err)
	}

	resp := response.PaymentToResponse(payment)
	return &resp, nil
}

// MarkOverduePayments flips pending payments whose due date has passed.
// Meant to be hit by a scheduler or a staff action.
func (s *paymentService) MarkOverduePayments(ctx context.Context) (int64, error) {
	count, err := s.repo.Payment.MarkOverdue(ctx)
	if err != nil {
		s.log.Error("Failed to mark overdue payments", zap.Error(err))
		return 0, fmt.Errorf("mark overdue payments: %w", err)
	}

	if count > 0 {
		s.log.Info("Payments marked overdue", zap.Int64("count", count))
	}

	return count, nil
}
