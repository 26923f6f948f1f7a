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

type PropertyRepository interface {
	Create(ctx context.Context, property *entity.Property) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Property, error)
	FindAll(ctx context.Context, status *entity.PropertyStatus, limit, offset int) ([]*entity.Property, error)
	Count(ctx context.Context, status *entity.PropertyStatus) (int64, error)
	Update(ctx context.Context, property *entity.Property) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Business queries
	CountByStatus(ctx context.Context) ([]entity.StatusCount, error)
}

type propertyRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPropertyRepository(db database.PgxIface, log *zap.Logger) PropertyRepository {
	return &propertyRepository{
		db:  db,
		log: log.With(zap.String("repository", "property")),
	}
}

const propertyColumns = `id, title, description, address, city, state, country, property_type,
	       bedrooms, bathrooms, area_sqft, rent_amount, status, amenities, images, manager_id,
	       created_at, updated_at`

func (r *propertyRepository) Create(ctx context.Context, property *entity.Property) error {
	query := `
		INSERT INTO properties (id, title, description, address, city, state, country, property_type,
		                        bedrooms, bathrooms, area_sqft, rent_amount, status, amenities, images,
		                        manager_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`

	_, err := r.db.Exec(ctx, query,
		property.ID,
		property.Title,
		property.Description,
		property.Address,
		property.City,
		property.State,
		property.Country,
		property.PropertyType,
		property.Bedrooms,
		property.Bathrooms,
		property.AreaSqft,
		property.RentAmount,
		property.Status,
		property.Amenities,
		property.Images,
		property.ManagerID,
		property.CreatedAt,
		property.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create property",
			zap.Error(err),
			zap.String("title", property.Title),
		)
		return fmt.Errorf("create property %s: %w", property.Title, err)
	}

	return nil
}

func (r *propertyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE id = $1`

	property, err := r.scanProperty(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find property by ID",
			zap.Error(err),
			zap.String("property_id", id.String()),
		)
		return nil, fmt.Errorf("find property by ID %s: %w", id.String(), err)
	}

	return property, nil
}

func (r *propertyRepository) FindAll(ctx context.Context, status *entity.PropertyStatus, limit, offset int) ([]*entity.Property, error) {
	query := `
		SELECT ` + propertyColumns + `
		FROM properties
		WHERE ($1::text IS NULL OR status = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, status, limit, offset)
	if err != nil {
		r.log.Error("Failed to list properties", zap.Error(err))
		return nil, fmt.Errorf("list properties: %w", err)
	}
	defer rows.Close()

	var properties []*entity.Property
	for rows.Next() {
		property, err := r.scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("scan property row: %w", err)
		}
		properties = append(properties, property)
	}

	return properties, rows.Err()
}

func (r *propertyRepository) Count(ctx context.Context, status *entity.PropertyStatus) (int64, error) {
	query := `SELECT COUNT(*) FROM properties WHERE ($1::text IS NULL OR status = $1)`

	var count int64
	if err := r.db.QueryRow(ctx, query, status).Scan(&count); err != nil {
		r.log.Error("Failed to count properties", zap.Error(err))
		return 0, fmt.Errorf("count properties: %w", err)
	}

	return count, nil
}

func (r *propertyRepository) Update(ctx context.Context, property *entity.Property) error {
	query := `
		UPDATE properties
		SET title = $2, description = $3, address = $4, city = $5, state = $6, country = $7,
		    property_type = $8, bedrooms = $9, bathrooms = $10, area_sqft = $11, rent_amount = $12,
		    status = $13, amenities = $14, images = $15, manager_id = $16, updated_at = $17
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		property.ID,
		property.Title,
		property.Description,
		property.Address,
		property.City,
		property.State,
		property.Country,
		property.PropertyType,
		property.Bedrooms,
		property.Bathrooms,
		property.AreaSqft,
		property.RentAmount,
		property.Status,
		property.Amenities,
		property.Images,
		property.ManagerID,
		property.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update property",
			zap.Error(err),
			zap.String("property_id", property.ID.String()),
		)
		return fmt.Errorf("update property %s: %w", property.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("property %s not found", property.ID.String())
	}

	return nil
}

func (r *propertyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM properties WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete property",
			zap.Error(err),
			zap.String("property_id", id.String()),
		)
		return fmt.Errorf("delete property %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("property %s not found", id.String())
	}

	r.log.Info("Property deleted", zap.String("property_id", id.String()))
	return nil
}

func (r *propertyRepository) CountByStatus(ctx context.Context) ([]entity.StatusCount, error) {
	query := `
		SELECT status, COUNT(*) AS count, COALESCE(SUM(rent_amount), 0) AS total
		FROM properties
		GROUP BY status
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to count properties by status", zap.Error(err))
		return nil, fmt.Errorf("count properties by status: %w", err)
	}
	defer rows.Close()

	var counts []entity.StatusCount
	for rows.Next() {
		var sc entity.StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count, &sc.Total); err != nil {
			return nil, fmt.Errorf("scan property status count: %w", err)
		}
		counts = append(counts, sc)
	}

	return counts, rows.Err()
}

func (r *propertyRepository) scanProperty(row pgx.Row) (*entity.Property, error) {
	var property entity.Property
	err := row.Scan(
		&property.ID,
		&property.Title,
		&property.Description,
		&property.Address,
		&property.City,
		&property.State,
		&property.Country,
		&property.PropertyType,
		&property.Bedrooms,
		&property.Bathrooms,
		&property.AreaSqft,
		&property.RentAmount,
		&property.Status,
		&property.Amenities,
		&property.Images,
		&property.ManagerID,
		&property.CreatedAt,
		&property.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &property, nil
}
