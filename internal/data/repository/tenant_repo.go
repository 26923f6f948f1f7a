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

type TenantRepository interface {
	Create(ctx context.Context, tenant *entity.Tenant) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.TenantDetail, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Tenant, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.TenantDetail, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, tenant *entity.Tenant) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Business queries
	CountActive(ctx context.Context) (int64, error)
}

type tenantRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTenantRepository(db database.PgxIface, log *zap.Logger) TenantRepository {
	return &tenantRepository{
		db:  db,
		log: log.With(zap.String("repository", "tenant")),
	}
}

const tenantDetailQuery = `
	SELECT t.id, t.user_id, t.property_id, t.lease_start, t.lease_end, t.monthly_rent,
	       t.security_deposit, t.is_active, t.created_at, t.updated_at,
	       u.full_name, u.email, u.phone,
	       p.title AS property_title, p.address AS property_address
	FROM tenants t
	JOIN users u ON u.id = t.user_id
	LEFT JOIN properties p ON p.id = t.property_id
`

func (r *tenantRepository) Create(ctx context.Context, tenant *entity.Tenant) error {
	query := `
		INSERT INTO tenants (id, user_id, property_id, lease_start, lease_end, monthly_rent,
		                     security_deposit, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		tenant.ID,
		tenant.UserID,
		tenant.PropertyID,
		tenant.LeaseStart,
		tenant.LeaseEnd,
		tenant.MonthlyRent,
		tenant.SecurityDeposit,
		tenant.IsActive,
		tenant.CreatedAt,
		tenant.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create tenant",
			zap.Error(err),
			zap.String("user_id", tenant.UserID.String()),
		)
		return fmt.Errorf("create tenant for user %s: %w", tenant.UserID.String(), err)
	}

	return nil
}

func (r *tenantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.TenantDetail, error) {
	query := tenantDetailQuery + ` WHERE t.id = $1`

	tenant, err := r.scanTenantDetail(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find tenant by ID",
			zap.Error(err),
			zap.String("tenant_id", id.String()),
		)
		return nil, fmt.Errorf("find tenant by ID %s: %w", id.String(), err)
	}

	return tenant, nil
}

func (r *tenantRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Tenant, error) {
	query := `
		SELECT id, user_id, property_id, lease_start, lease_end, monthly_rent,
		       security_deposit, is_active, created_at, updated_at
		FROM tenants
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	var tenant entity.Tenant
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&tenant.ID,
		&tenant.UserID,
		&tenant.PropertyID,
		&tenant.LeaseStart,
		&tenant.LeaseEnd,
		&tenant.MonthlyRent,
		&tenant.SecurityDeposit,
		&tenant.IsActive,
		&tenant.CreatedAt,
		&tenant.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find tenant by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find tenant by user ID %s: %w", userID.String(), err)
	}

	return &tenant, nil
}

func (r *tenantRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.TenantDetail, error) {
	query := tenantDetailQuery + `
		ORDER BY t.created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to list tenants", zap.Error(err))
		return nil, fmt.Errorf("list tenants: %w", err)
	}
	defer rows.Close()

	var tenants []*entity.TenantDetail
	for rows.Next() {
		tenant, err := r.scanTenantDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tenant row: %w", err)
		}
		tenants = append(tenants, tenant)
	}

	return tenants, rows.Err()
}

func (r *tenantRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM tenants`).Scan(&count); err != nil {
		r.log.Error("Failed to count tenants", zap.Error(err))
		return 0, fmt.Errorf("count tenants: %w", err)
	}
	return count, nil
}

func (r *tenantRepository) Update(ctx context.Context, tenant *entity.Tenant) error {
	query := `
		UPDATE tenants
		SET property_id = $2, lease_start = $3, lease_end = $4, monthly_rent = $5,
		    security_deposit = $6, is_active = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		tenant.ID,
		tenant.PropertyID,
		tenant.LeaseStart,
		tenant.LeaseEnd,
		tenant.MonthlyRent,
		tenant.SecurityDeposit,
		tenant.IsActive,
		tenant.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update tenant",
			zap.Error(err),
			zap.String("tenant_id", tenant.ID.String()),
		)
		return fmt.Errorf("update tenant %s: %w", tenant.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("tenant %s not found", tenant.ID.String())
	}

	return nil
}

func (r *tenantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM tenants WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete tenant",
			zap.Error(err),
			zap.String("tenant_id", id.String()),
		)
		return fmt.Errorf("delete tenant %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("tenant %s not found", id.String())
	}

	r.log.Info("Tenant deleted", zap.String("tenant_id", id.String()))
	return nil
}

func (r *tenantRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM tenants WHERE is_active`).Scan(&count); err != nil {
		r.log.Error("Failed to count active tenants", zap.Error(err))
		return 0, fmt.Errorf("count active tenants: %w", err)
	}
	return count, nil
}

func (r *tenantRepository) scanTenantDetail(row pgx.Row) (*entity.TenantDetail, error) {
	var tenant entity.TenantDetail
	err := row.Scan(
		&tenant.ID,
		&tenant.UserID,
		&tenant.PropertyID,
		&tenant.LeaseStart,
		&tenant.LeaseEnd,
		&tenant.MonthlyRent,
		&tenant.SecurityDeposit,
		&tenant.IsActive,
		&tenant.CreatedAt,
		&tenant.UpdatedAt,
		&tenant.FullName,
		&tenant.Email,
		&tenant.Phone,
		&tenant.PropertyTitle,
		&tenant.PropertyAddress,
	)
	if err != nil {
		return nil, err
	}
	return &tenant, nil
}
