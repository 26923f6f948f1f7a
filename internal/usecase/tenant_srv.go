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

type TenantService interface {
	CreateTenant(ctx context.Context, req *request.CreateTenantRequest) (*response.TenantResponse, error)
	GetTenant(ctx context.Context, tenantID string) (*response.TenantResponse, error)
	ListTenants(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.TenantResponse], error)
	UpdateTenant(ctx context.Context, tenantID string, req *request.UpdateTenantRequest) (*response.TenantResponse, error)
	DeleteTenant(ctx context.Context, tenantID string) error
}

type tenantService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewTenantService(repo *repository.Repository, log *zap.Logger) TenantService {
	return &tenantService{
		repo: repo,
		log:  log.With(zap.String("service", "tenant")),
	}
}

func (s *tenantService) CreateTenant(ctx context.Context, req *request.CreateTenantRequest) (*response.TenantResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create tenant validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", req.UserID, err)
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s not found", req.UserID)
	}

	propertyID, err := s.resolveProperty(ctx, req.PropertyID)
	if err != nil {
		return nil, err
	}

	leaseStart, err := parseDate(req.LeaseStart)
	if err != nil {
		return nil, err
	}
	leaseEnd, err := parseDate(req.LeaseEnd)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	tenant := &entity.Tenant{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:          userID,
		PropertyID:      propertyID,
		LeaseStart:      leaseStart,
		LeaseEnd:        leaseEnd,
		MonthlyRent:     req.MonthlyRent,
		SecurityDeposit: req.SecurityDeposit,
		IsActive:        true,
	}

	if err := s.repo.Tenant.Create(ctx, tenant); err != nil {
		s.log.Error("Failed to create tenant", zap.Error(err), zap.String("user_id", req.UserID))
		return nil, fmt.Errorf("create tenant: %w", err)
	}

	s.log.Info("Tenant created",
		zap.String("tenant_id", tenant.ID.String()),
		zap.String("user_id", req.UserID))

	return s.GetTenant(ctx, tenant.ID.String())
}

func (s *tenantService) GetTenant(ctx context.Context, tenantID string) (*response.TenantResponse, error) {
	id, err := uuid.Parse(tenantID)
	if err != nil {
		return nil, fmt.Errorf("invalid tenant ID format %s: %w", tenantID, err)
	}

	tenant, err := s.repo.Tenant.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get tenant: %w", err)
	}
	if tenant == nil {
		return nil, fmt.Errorf("tenant %s not found", tenantID)
	}

	resp := response.TenantToResponse(tenant)
	return &resp, nil
}

func (s *tenantService) ListTenants(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.TenantResponse], error) {
	tenants, err := s.repo.Tenant.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list tenants", zap.Error(err))
		return nil, fmt.Errorf("list tenants: %w", err)
	}

	total, err := s.repo.Tenant.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count tenants: %w", err)
	}

	items := make([]response.TenantResponse, len(tenants))
	for i, tenant := range tenants {
		items[i] = response.TenantToResponse(tenant)
	}

	return response.NewPaginatedResponse(items, req.Page, req.PerPage, total), nil
}

func (s *tenantService) UpdateTenant(ctx context.Context, tenantID string, req *request.UpdateTenantRequest) (*response.TenantResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update tenant validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(tenantID)
	if err != nil {
		return nil, fmt.Errorf("invalid tenant ID format %s: %w", tenantID, err)
	}

	existing, err := s.repo.Tenant.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get tenant: %w", err)
	}
	if existing == nil {
		return nil, fmt.Errorf("tenant %s not found", tenantID)
	}

	tenant := existing.Tenant

	if req.PropertyID != nil {
		propertyID, err := s.resolveProperty(ctx, req.PropertyID)
		if err != nil {
			return nil, err
		}
		tenant.PropertyID = propertyID
	}
	if req.LeaseStart != nil {
		leaseStart, err := parseDate(req.LeaseStart)
		if err != nil {
			return nil, err
		}
		tenant.LeaseStart = leaseStart
	}
	if req.LeaseEnd != nil {
		leaseEnd, err := parseDate(req.LeaseEnd)
		if err != nil {
			return nil, err
		}
		tenant.LeaseEnd = leaseEnd
	}
	if req.MonthlyRent != nil {
		tenant.MonthlyRent = req.MonthlyRent
	}
	if req.SecurityDeposit != nil {
		tenant.SecurityDeposit = req.SecurityDeposit
	}
	if req.IsActive != nil {
		tenant.IsActive = *req.IsActive
	}
	tenant.UpdatedAt = time.Now()

	if err := s.repo.Tenant.Update(ctx, &tenant); err != nil {
		s.log.Error("Failed to update tenant", zap.Error(err), zap.String("tenant_id", tenantID))
		return nil, fmt.Errorf("update tenant: %w", err)
	}

	return s.GetTenant(ctx, tenantID)
}

func (s *tenantService) DeleteTenant(ctx context.Context, tenantID string) error {
	id, err := uuid.Parse(tenantID)
	if err != nil {
		return fmt.Errorf("invalid tenant ID format %s: %w", tenantID, err)
	}

	if err := s.repo.Tenant.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete tenant: %w", err)
	}

	return nil
}

func (s *tenantService) resolveProperty(ctx context.Context, propertyID *string) (*uuid.UUID, error) {
	if propertyID == nil {
		return nil, nil
	}

	id, err := uuid.Parse(*propertyID)
	if err != nil {
		return nil, fmt.Errorf("invalid property ID format %s: %w", *propertyID, err)
	}

	property, err := s.repo.Property.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("check property: %w", err)
	}
	if property == nil {
		return nil, fmt.Errorf("property %s not found", *propertyID)
	}

	return &id, nil
}

func parseDate(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}

	parsed, err := time.Parse("2006-01-02", *value)
	if err != nil {
		return nil, fmt.Errorf("invalid date %s: %w", *value, err)
	}

	return &parsed, nil
}
