package usecase

import (
	"context"
	"fmt"

	"property-hub/internal/data/repository"
	"property-hub/internal/dto/response"

	"go.uber.org/zap"
)

type DashboardService interface {
	GetStats(ctx context.Context) (*response.DashboardStatsResponse, error)
}

type dashboardService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewDashboardService(repo *repository.Repository, log *zap.Logger) DashboardService {
	return &dashboardService{
		repo: repo,
		log:  log.With(zap.String("service", "dashboard")),
	}
}

func (s *dashboardService) GetStats(ctx context.Context) (*response.DashboardStatsResponse, error) {
	propertyCounts, err := s.repo.Property.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("property stats: %w", err)
	}

	paymentCounts, err := s.repo.Payment.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("payment stats: %w", err)
	}

	activeTenants, err := s.repo.Tenant.CountActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("tenant stats: %w", err)
	}

	openMaintenance, err := s.repo.Maintenance.CountOpen(ctx)
	if err != nil {
		return nil, fmt.Errorf("maintenance stats: %w", err)
	}

	stats := &response.DashboardStatsResponse{
		Properties:      make(map[string]response.StatusBucket, len(propertyCounts)),
		Payments:        make(map[string]response.StatusBucket, len(paymentCounts)),
		ActiveTenants:   activeTenants,
		OpenMaintenance: openMaintenance,
	}

	for _, sc := range propertyCounts {
		stats.Properties[sc.Status] = response.StatusBucket{Count: sc.Count, Total: sc.Total}
	}
	for _, sc := range paymentCounts {
		stats.Payments[sc.Status] = response.StatusBucket{Count: sc.Count, Total: sc.Total}
	}

	return stats, nil
}
