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

type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)
	FindAll(ctx context.Context, status *entity.PaymentStatus, limit, offset int) ([]*entity.PaymentDetail, error)
	FindByTenantID(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*entity.PaymentDetail, error)
	Count(ctx context.Context, status *entity.PaymentStatus) (int64, error)
	CountByTenantID(ctx context.Context, tenantID uuid.UUID) (int64, error)
	Update(ctx context.Context, payment *entity.Payment) error

	// Business queries
	MarkCompleted(ctx context.Context, id uuid.UUID, method, reference string) error
	MarkOverdue(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context) ([]entity.StatusCount, error)
}

type paymentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPaymentRepository(db database.PgxIface, log *zap.Logger) PaymentRepository {
	return &paymentRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment")),
	}
}

const paymentDetailQuery = `
	SELECT py.id, py.tenant_id, py.property_id, py.amount, py.due_date, py.payment_date,
	       py.status, py.payment_method, py.payment_reference, py.description,
	       py.created_at, py.updated_at,
	       u.full_name AS tenant_name, u.email AS tenant_email,
	       p.title AS property_title, p.address AS property_address
	FROM payments py
	JOIN tenants t ON t.id = py.tenant_id
	JOIN users u ON u.id = t.user_id
	LEFT JOIN properties p ON p.id = py.property_id
`

func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	query := `
		INSERT INTO payments (id, tenant_id, property_id, amount, due_date, payment_date, status,
		                      payment_method, payment_reference, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(ctx, query,
		payment.ID,
		payment.TenantID,
		payment.PropertyID,
		payment.Amount,
		payment.DueDate,
		payment.PaymentDate,
		payment.Status,
		payment.PaymentMethod,
		payment.PaymentReference,
		payment.Description,
		payment.CreatedAt,
		payment.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create payment",
			zap.Error(err),
			zap.String("tenant_id", payment.TenantID.String()),
			zap.Float64("amount", payment.Amount),
		)
		return fmt.Errorf("create payment for tenant %s: %w", payment.TenantID.String(), err)
	}

	return nil
}

func (r *paymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	query := `
		SELECT id, tenant_id, property_id, amount, due_date, payment_date, status,
		       payment_method, payment_reference, description, created_at, updated_at
		FROM payments
		WHERE id = $1
	`

	var payment entity.Payment
	err := r.db.QueryRow(ctx, query, id).Scan(
		&payment.ID,
		&payment.TenantID,
		&payment.PropertyID,
		&payment.Amount,
		&payment.DueDate,
		&payment.PaymentDate,
		&payment.Status,
		&payment.PaymentMethod,
		&payment.PaymentReference,
		&payment.Description,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find payment by ID",
			zap.Error(err),
			zap.String("payment_id", id.String()),
		)
		return nil, fmt.Errorf("find payment by ID %s: %w", id.String(), err)
	}

	return &payment, nil
}

func (r *paymentRepository) FindAll(ctx context.Context, status *entity.PaymentStatus, limit, offset int) ([]*entity.PaymentDetail, error) {
	query := paymentDetailQuery + `
		WHERE ($1::text IS NULL OR py.status = $1)
		ORDER BY py.created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, status, limit, offset)
	if err != nil {
		r.log.Error("Failed to list payments", zap.Error(err))
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	return r.collectPaymentDetails(rows)
}

func (r *paymentRepository) FindByTenantID(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*entity.PaymentDetail, error) {
	query := paymentDetailQuery + `
		WHERE py.tenant_id = $1
		ORDER BY py.created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, tenantID, limit, offset)
	if err != nil {
		r.log.Error("Failed to list tenant payments",
			zap.Error(err),
			zap.String("tenant_id", tenantID.String()),
		)
		return nil, fmt.Errorf("list payments for tenant %s: %w", tenantID.String(), err)
	}
	defer rows.Close()

	return r.collectPaymentDetails(rows)
}

func (r *paymentRepository) Count(ctx context.Context, status *entity.PaymentStatus) (int64, error) {
	query := `SELECT COUNT(*) FROM payments WHERE ($1::text IS NULL OR status = $1)`

	var count int64
	if err := r.db.QueryRow(ctx, query, status).Scan(&count); err != nil {
		r.log.Error("Failed to count payments", zap.Error(err))
		return 0, fmt.Errorf("count payments: %w", err)
	}

	return count, nil
}

func (r *paymentRepository) CountByTenantID(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM payments WHERE tenant_id = $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, tenantID).Scan(&count); err != nil {
		r.log.Error("Failed to count tenant payments",
			zap.Error(err),
			zap.String("tenant_id", tenantID.String()),
		)
		return 0, fmt.Errorf("count payments for tenant %s: %w", tenantID.String(), err)
	}

	return count, nil
}

// Update writes the mutable payment fields. Amount is intentionally absent:
// a recorded amount never changes, corrections are new records.
func (r *paymentRepository) Update(ctx context.Context, payment *entity.Payment) error {
	query := `
		UPDATE payments
		SET property_id = $2, due_date = $3, payment_date = $4, status = $5,
		    payment_method = $6, payment_reference = $7, description = $8, updated_at = $9
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		payment.ID,
		payment.PropertyID,
		payment.DueDate,
		payment.PaymentDate,
		payment.Status,
		payment.PaymentMethod,
		payment.PaymentReference,
		payment.Description,
		payment.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update payment",
			zap.Error(err),
			zap.String("payment_id", payment.ID.String()),
		)
		return fmt.Errorf("update payment %s: %w", payment.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("payment %s not found", payment.ID.String())
	}

	return nil
}

func (r *paymentRepository) MarkCompleted(ctx context.Context, id uuid.UUID, method, reference string) error {
	query := `
		UPDATE payments
		SET status = 'completed', payment_date = NOW(), payment_method = $2,
		    payment_reference = $3, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, id, method, reference)
	if err != nil {
		r.log.Error("Failed to mark payment completed",
			zap.Error(err),
			zap.String("payment_id", id.String()),
			zap.String("reference", reference),
		)
		return fmt.Errorf("mark payment %s completed: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("payment %s not found", id.String())
	}

	return nil
}

func (r *paymentRepository) MarkOverdue(ctx context.Context) (int64, error) {
	query := `
		UPDATE payments
		SET status = 'overdue', updated_at = NOW()
		WHERE status = 'pending' AND due_date < CURRENT_DATE
	`

	result, err := r.db.Exec(ctx, query)
	if err != nil {
		r.log.Error("Failed to mark overdue payments", zap.Error(err))
		return 0, fmt.Errorf("mark overdue payments: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *paymentRepository) CountByStatus(ctx context.Context) ([]entity.StatusCount, error) {
	query := `
		SELECT status, COUNT(*) AS count, COALESCE(SUM(amount), 0) AS total
		FROM payments
		GROUP BY status
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to count payments by status", zap.Error(err))
		return nil, fmt.Errorf("count payments by status: %w", err)
	}
	defer rows.Close()

	var counts []entity.StatusCount
	for rows.Next() {
		var sc entity.StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count, &sc.Total); err != nil {
			return nil, fmt.Errorf("scan payment status count: %w", err)
		}
		counts = append(counts, sc)
	}

	return counts, rows.Err()
}

func (r *paymentRepository) collectPaymentDetails(rows pgx.Rows) ([]*entity.PaymentDetail, error) {
	var payments []*entity.PaymentDetail
	for rows.Next() {
		var payment entity.PaymentDetail
		err := rows.Scan(
			&payment.ID,
			&payment.TenantID,
			&payment.PropertyID,
			&payment.Amount,
			&payment.DueDate,
			&payment.PaymentDate,
			&payment.Status,
			&payment.PaymentMethod,
			&payment.PaymentReference,
			&payment.Description,
			&payment.CreatedAt,
			&payment.UpdatedAt,
			&payment.TenantName,
			&payment.TenantEmail,
			&payment.PropertyTitle,
			&payment.PropertyAddress,
		)
		if err != nil {
			return nil, fmt.Errorf("scan payment row: %w", err)
		}
		payments = append(payments, &payment)
	}

	return payments, rows.Err()
}
