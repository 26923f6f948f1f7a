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

type PropertyService interface {
	CreateProperty(ctx context.Context, req *request.CreatePropertyRequest) (*response.PropertyResponse, error)
	GetProperty(ctx context.Context, propertyID string) (*response.PropertyResponse, error)
	ListProperties(ctx context.Context, req *request.ListPropertiesRequest) (*response.PaginatedResponse[response.PropertyResponse], error)
	UpdateProperty(ctx context.Context, propertyID string, req *request.UpdatePropertyRequest) (*response.PropertyResponse, error)
	DeleteProperty(ctx context.Context, propertyID string) error
}

type propertyService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewPropertyService(repo *repository.Repository, log *zap.Logger) PropertyService {
	return &propertyService{
		repo: repo,
		log:  log.With(zap.String("service", "property")),
	}
}

func (s *propertyService) CreateProperty(ctx context.Context, req *request.CreatePropertyRequest) (*response.PropertyResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create property validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	property, err := s.buildProperty(req)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Property.Create(ctx, property); err != nil {
		s.log.Error("Failed to create property", zap.Error(err), zap.String("title", req.Title))
		return nil, fmt.Errorf("create property: %w", err)
	}

	s.log.Info("Property created",
		zap.String("property_id", property.ID.String()),
		zap.String("title", property.Title))

	resp := response.PropertyToResponse(property)
	return &resp, nil
}

func (s *propertyService) GetProperty(ctx context.Context, propertyID string) (*response.PropertyResponse, error) {
	id, err := uuid.Parse(propertyID)
	if err != nil {
		return nil, fmt.Errorf("invalid property ID format %s: %w", propertyID, err)
	}

	property, err := s.repo.Property.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get property: %w", err)
	}
	if property == nil {
		return nil, fmt.Errorf("property %s not found", propertyID)
	}

	resp := response.PropertyToResponse(property)
	return &resp, nil
}

func (s *propertyService) ListProperties(ctx context.Context, req *request.ListPropertiesRequest) (*response.PaginatedResponse[response.PropertyResponse], error) {
	var status *entity.PropertyStatus
	if req.Status != "" {
		st := entity.PropertyStatus(req.Status)
		status = &st
	}

	properties, err := s.repo.Property.FindAll(ctx, status, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list properties", zap.Error(err))
		return nil, fmt.Errorf("list properties: %w", err)
	}

	total, err := s.repo.Property.Count(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("count properties: %w", err)
	}

	items := make([]response.PropertyResponse, len(properties))
	for i, property := range properties {
		items[i] = response.PropertyToResponse(property)
	}

	return response.NewPaginatedResponse(items, req.Page, req.PerPage, total), nil
}

func (s *propertyService) UpdateProperty(ctx context.Context, propertyID string, req *request.UpdatePropertyRequest) (*response.PropertyResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update property validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(propertyID)
	if err != nil {
		return nil, fmt.Errorf("invalid property ID format %s: %w", propertyID, err)
	}

	existing, err := s.repo.Property.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get property: %w", err)
	}
	if existing == nil {
		return nil, fmt.Errorf("property %s not found", propertyID)
	}

	property, err := s.buildProperty(&req.CreatePropertyRequest)
	if err != nil {
		return nil, err
	}
	property.ID = id
	property.CreatedAt = existing.CreatedAt
	property.UpdatedAt = time.Now()

	if err := s.repo.Property.Update(ctx, property); err != nil {
		s.log.Error("Failed to update property",
			zap.Error(err), zap.String("property_id", propertyID))
		return nil, fmt.Errorf("update property: %w", err)
	}

	resp := response.PropertyToResponse(property)
	return &resp, nil
}

func (s *propertyService) DeleteProperty(ctx context.Context, propertyID string) error {
	id, err := uuid.Parse(propertyID)
	if err != nil {
		return fmt.Errorf("invalid property ID format %s: %w", propertyID, err)
	}

	if err := s.repo.Property.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete property: %w", err)
	}

	return nil
}

func (s *propertyService) buildProperty(req *request.CreatePropertyRequest) (*entity.Property, error) {
	status := entity.PropertyStatusAvailable
	if req.Status != "" {
		status = entity.PropertyStatus(req.Status)
	}

	var managerID *uuid.UUID
	if req.ManagerID != nil {
		id, err := uuid.Parse(*req.ManagerID)
		if err != nil {
			return nil, fmt.Errorf("invalid manager ID format %s: %w", *req.ManagerID, err)
		}
		managerID = &id
	}

	now := time.Now()
	return &entity.Property{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:        req.Title,
		Description:  req.Description,
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		Country:      req.Country,
		PropertyType: req.PropertyType,
		Bedrooms:     req.Bedrooms,
		Bathrooms:    req.Bathrooms,
		AreaSqft:     req.AreaSqft,
		RentAmount:   req.RentAmount,
		Status:       status,
		Amenities:    req.Amenities,
		Images:       req.Images,
		ManagerID:    managerID,
	}, nil
}
