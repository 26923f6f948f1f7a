package repository

import (
	"context"
	"fmt"

	"property-hub/internal/data/entity"
	"property-hub/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MaintenanceRepository interface {
	Create(ctx context.Context, request *entity.MaintenanceRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MaintenanceDetail, error)
	FindAll(ctx context.Context, status *entity.MaintenanceStatus, limit, offset int) ([]*entity.MaintenanceDetail, error)
	FindByTenantID(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*entity.MaintenanceDetail, error)
	Count(ctx context.Context, status *entity.MaintenanceStatus) (int64, error)
	CountByTenantID(ctx context.Context, tenantID uuid.UUID) (int64, error)
	Update(ctx context.Context, request *entity.MaintenanceRequest) error

	// Business queries
	CountOpen(ctx context.Context) (int64, error)
}

type maintenanceRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMaintenanceRepository(db database.PgxIface, log *zap.Logger) MaintenanceRepository {
	return &maintenanceRepository{
		db:  db,
		log: log.With(zap.String("repository", "maintenance")),
	}
}

const maintenanceDetailQuery = `
	SELECT m.id, m.property_id, m.tenant_id, m.title, m.description, m.priority, m.status,
	       m.created_at, m.updated_at,
	       p.title AS property_title, p.address AS property_address
	FROM maintenance_requests m
	JOIN properties p ON p.id = m.property_id
`

func (r *maintenanceRepository) Create(ctx context.Context, request *entity.MaintenanceRequest) error {
	query := `
		INSERT INTO maintenance_requests (id, property_id, tenant_id, title, description,
		                                  priority, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		request.ID,
		request.PropertyID,
		request.TenantID,
		request.Title,
		request.Description,
		request.Priority,
		request.Status,
		request.CreatedAt,
		request.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create maintenance request",
			zap.Error(err),
			zap.String("property_id", request.PropertyID.String()),
		)
		return fmt.Errorf("create maintenance request for property %s: %w", request.PropertyID.String(), err)
	}

	return nil
}

func (r *maintenanceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MaintenanceDetail, error) {
	query := maintenanceDetailQuery + ` WHERE m.id = $1`

	request, err := r.scanMaintenanceDetail(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find maintenance request by ID",
			zap.Error(err),
			zap.String("request_id", id.String()),
		)
		return nil, fmt.Errorf("find maintenance request by ID %s: %w", id.String(), err)
	}

	return request, nil
}

func (r *maintenanceRepository) FindAll(ctx context.Context, status *entity.MaintenanceStatus, limit, offset int) ([]*entity.MaintenanceDetail, error) {
	query := maintenanceDetailQuery + `
		WHERE ($1::text IS NULL OR m.status = $1)
		ORDER BY m.created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, status, limit, offset)
	if err != nil {
		r.log.Error("Failed to list maintenance requests", zap.Error(err))
		return nil, fmt.Errorf("list maintenance requests: %w", err)
	}
	defer rows.Close()

	return r.collectMaintenanceDetails(rows)
}

func (r *maintenanceRepository) FindByTenantID(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*entity.MaintenanceDetail, error) {
	query := maintenanceDetailQuery + `
		WHERE m.tenant_id = $1
		ORDER BY m.created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, tenantID, limit, offset)
	if err != nil {
		r.log.Error("Failed to list tenant maintenance requests",
			zap.Error(err),
			zap.String("tenant_id", tenantID.String()),
		)
		return nil, fmt.Errorf("list maintenance requests for tenant %s: %w", tenantID.String(), err)
	}
	defer rows.Close()

	return r.collectMaintenanceDetails(rows)
}

func (r *maintenanceRepository) Count(ctx context.Context, status *entity.MaintenanceStatus) (int64, error) {
	query := `SELECT COUNT(*) FROM maintenance_requests WHERE ($1::text IS NULL OR status = $1)`

	var count int64
	if err := r.db.QueryRow(ctx, query, status).Scan(&count); err != nil {
		r.log.Error("Failed to count maintenance requests", zap.Error(err))
		return 0, fmt.Errorf("count maintenance requests: %w", err)
	}

	return count, nil
}

func (r *maintenanceRepository) CountByTenantID(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM maintenance_requests WHERE tenant_id = $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, tenantID).Scan(&count); err != nil {
		r.log.Error("Failed to count tenant maintenance requests",
			zap.Error(err),
			zap.String("tenant_id", tenantID.String()),
		)
		return 0, fmt.Errorf("count maintenance requests for tenant %s: %w", tenantID.String(), err)
	}

	return count, nil
}

func (r *maintenanceRepository) Update(ctx context.Context, request *entity.MaintenanceRequest) error {
	query := `
		UPDATE maintenance_requests
		SET title = $2, description = $3, priority = $4, status = $5, updated_at = $6
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		request.ID,
		request.Title,
		request.Description,
		request.Priority,
		request.Status,
		request.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update maintenance request",
			zap.Error(err),
			zap.String("request_id", request.ID.String()),
		)
		return fmt.Errorf("update maintenance request %s: %w", request.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("maintenance request %s not found", request.ID.String())
	}

	return nil
}

func (r *maintenanceRepository) CountOpen(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM maintenance_requests WHERE status IN ('open', 'in_progress')`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.log.Error("Failed to count open maintenance requests", zap.Error(err))
		return 0, fmt.Errorf("count open maintenance requests: %w", err)
	}

	return count, nil
}

func (r *maintenanceRepository) scanMaintenanceDetail(row pgx.Row) (*entity.MaintenanceDetail, error) {
	var request entity.MaintenanceDetail
	err := row.Scan(
		&request.ID,
		&request.PropertyID,
		&request.TenantID,
		&request.Title,
		&request.Description,
		&request.Priority,
		&request.Status,
		&request.CreatedAt,
		&request.UpdatedAt,
		&request.PropertyTitle,
		&request.PropertyAddress,
	)
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *maintenanceRepository) collectMaintenanceDetails(rows pgx.Rows) ([]*entity.MaintenanceDetail, error) {
	var requests []*entity.MaintenanceDetail
	for rows.Next() {
		request, err := r.scanMaintenanceDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("scan maintenance row: %w", err)
		}
		requests = append(requests, request)
	}

	return requests, rows.Err()
}
