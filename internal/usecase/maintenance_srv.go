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

type MaintenanceService interface {
	CreateRequest(ctx context.Context, userID uuid.UUID, req *request.CreateMaintenanceRequest) (*response.MaintenanceResponse, error)
	GetRequest(ctx context.Context, requestID string) (*response.MaintenanceResponse, error)
	ListRequests(ctx context.Context, req *request.ListMaintenanceRequest) (*response.PaginatedResponse[response.MaintenanceResponse], error)
	ListTenantRequests(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.MaintenanceResponse], error)
	UpdateRequest(ctx context.Context, requestID string, req *request.UpdateMaintenanceRequest) (*response.MaintenanceResponse, error)
}

type maintenanceService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMaintenanceService(repo *repository.Repository, log *zap.Logger) MaintenanceService {
	return &maintenanceService{
		repo: repo,
		log:  log.With(zap.String("service", "maintenance")),
	}
}

func (s *maintenanceService) CreateRequest(ctx context.Context, userID uuid.UUID, req *request.CreateMaintenanceRequest) (*response.MaintenanceResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create maintenance validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	propertyID, err := uuid.Parse(req.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("invalid property ID format %s: %w", req.PropertyID, err)
	}

	property, err := s.repo.Property.FindByID(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("check property: %w", err)
	}
	if property == nil {
		return nil, fmt.Errorf("property %s not found", req.PropertyID)
	}

	// Requests raised by tenants carry their tenant record; staff submissions don't.
	var tenantID *uuid.UUID
	tenant, err := s.repo.Tenant.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Warn("Failed to resolve tenant for maintenance request",
			zap.Error(err), zap.String("user_id", userID.String()))
	}
	if tenant != nil {
		tenantID = &tenant.ID
	}

	priority := entity.MaintenancePriorityMedium
	if req.Priority != "" {
		priority = entity.MaintenancePriority(req.Priority)
	}

	now := time.Now()
	maintenanceReq := &entity.MaintenanceRequest{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		PropertyID:  propertyID,
		TenantID:    tenantID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    priority,
		Status:      entity.MaintenanceStatusOpen,
	}

	if err := s.repo.Maintenance.Create(ctx, maintenanceReq); err != nil {
		s.log.Error("Failed to create maintenance request",
			zap.Error(err),
			zap.String("property_id", req.PropertyID))
		return nil, fmt.Errorf("create maintenance request: %w", err)
	}

	s.log.Info("Maintenance request created",
		zap.String("request_id", maintenanceReq.ID.String()),
		zap.String("property_id", req.PropertyID))

	return s.GetRequest(ctx, maintenanceReq.ID.String())
}

func (s *maintenanceService) GetRequest(ctx context.Context, requestID string) (*response.MaintenanceResponse, error) {
	id, err := uuid.Parse(requestID)
	if err != nil {
		return nil, fmt.Errorf("invalid request ID format %s: %w", requestID, err)
	}

	maintenanceReq, err := s.repo.Maintenance.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get maintenance request: %w", err)
	}
	if maintenanceReq == nil {
		return nil, fmt.Errorf("maintenance request %s not found", requestID)
	}

	resp := response.MaintenanceToResponse(maintenanceReq)
	return &resp, nil
}

func (s *maintenanceService) ListRequests(ctx context.Context, req *request.ListMaintenanceRequest) (*response.PaginatedResponse[response.MaintenanceResponse], error) {
	var status *entity.MaintenanceStatus
	if req.Status != "" {
		st := entity.MaintenanceStatus(req.Status)
		status = &st
	}

	requests, err := s.repo.Maintenance.FindAll(ctx, status, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list maintenance requests", zap.Error(err))
		return nil, fmt.Errorf("list maintenance requests: %w", err)
	}

	total, err := s.repo.Maintenance.Count(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("count maintenance requests: %w", err)
	}

	items := make([]response.MaintenanceResponse, len(requests))
	for i, maintenanceReq := range requests {
		items[i] = response.MaintenanceToResponse(maintenanceReq)
	}

	return response.NewPaginatedResponse(items, req.Page, req.PerPage, total), nil
}

func (s *maintenanceService) ListTenantRequests(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.MaintenanceResponse], error) {
	tenant, err := s.repo.Tenant.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find tenant: %w", err)
	}
	if tenant == nil {
		return nil, fmt.Errorf("tenant record not found for current user")
	}

	requests, err := s.repo.Maintenance.FindByTenantID(ctx, tenant.ID, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list tenant maintenance requests",
			zap.Error(err),
			zap.String("tenant_id", tenant.ID.String()))
		return nil, fmt.Errorf("list tenant maintenance requests: %w", err)
	}

	total, err := s.repo.Maintenance.CountByTenantID(ctx, tenant.ID)
	if err != nil {
		return nil, fmt.Errorf("count tenant maintenance requests: %w", err)
	}

	items := make([]response.MaintenanceResponse, len(requests))
	for i, maintenanceReq := range requests {
		items[i] = response.MaintenanceToResponse(maintenanceReq)
	}

	return response.NewPaginatedResponse(items, req.Page, req.PerPage, total), nil
}

func (s *maintenanceService) UpdateRequest(ctx context.Context, requestID string, req *request.UpdateMaintenanceRequest) (*response.MaintenanceResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update maintenance validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(requestID)
	if err != nil {
		return nil, fmt.Errorf("invalid request ID format %s: %w", requestID, err)
	}

	existing, err := s.repo.Maintenance.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get maintenance request: %w", err)
	}
	if existing == nil {
		return nil, fmt.Errorf("maintenance request %s not found", requestID)
	}

	maintenanceReq := existing.MaintenanceRequest

	if req.Title != nil {
		maintenanceReq.Title = *req.Title
	}
	if req.Description != nil {
		maintenanceReq.Description = req.Description
	}
	if req.Priority != nil {
		maintenanceReq.Priority = entity.MaintenancePriority(*req.Priority)
	}
	if req.Status != nil {
		maintenanceReq.Status = entity.MaintenanceStatus(*req.Status)
	}
	maintenanceReq.UpdatedAt = time.Now()

	if err := s.repo.Maintenance.Update(ctx, &maintenanceReq); err != nil {
		s.log.Error("Failed to update maintenance request",
			zap.Error(err),
			zap.String("request_id", requestID))
		return nil, fmt.Errorf("update maintenance request: %w", err)
	}

	return s.GetRequest(ctx, requestID)
}
