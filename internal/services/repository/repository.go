package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"salon_backoffice_backend/platform/apperr"
)

const serviceNotFoundMessage = "service not found"

// Repo implements the Repository interface with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new services repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

const serviceColumns = `id, name, description, category, duration, price, is_popular, is_active, icon, created_at, updated_at`

// GetByID retrieves a service by ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE id = $1`

	var sv Service
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&sv.ID, &sv.Name, &sv.Description, &sv.Category, &sv.Duration, &sv.Price,
		&sv.IsPopular, &sv.IsActive, &sv.Icon, &sv.CreatedAt, &sv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Service{}, apperr.NotFound(serviceNotFoundMessage)
		}
		return Service{}, fmt.Errorf("get service by id: %w", err)
	}

	return sv, nil
}

// GetByIDs retrieves all services whose ID is in the given set.
// Missing IDs are simply absent from the result; the caller compares counts.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE id = ANY($1)`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("get services by ids: %w", err)
	}
	defer rows.Close()

	return scanServices(rows)
}

// List retrieves all services ordered by category then name.
func (r *Repo) List(ctx context.Context) ([]Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services ORDER BY category ASC, name ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()

	return scanServices(rows)
}

// ListActive retrieves only active services.
func (r *Repo) ListActive(ctx context.Context) ([]Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE is_active = true ORDER BY category ASC, name ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list active services: %w", err)
	}
	defer rows.Close()

	return scanServices(rows)
}

// ListByCategory retrieves active services in a category.
func (r *Repo) ListByCategory(ctx context.Context, category string) ([]Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE category = $1 AND is_active = true ORDER BY name ASC`

	rows, err := r.pool.Query(ctx, query, category)
	if err != nil {
		return nil, fmt.Errorf("list services by category: %w", err)
	}
	defer rows.Close()

	return scanServices(rows)
}

// Create inserts a new service.
func (r *Repo) Create(ctx context.Context, params CreateParams) (Service, error) {
	query := `
		INSERT INTO services (name, description, category, duration, price, is_popular, icon)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + serviceColumns

	var sv Service
	err := r.pool.QueryRow(ctx, query,
		params.Name, params.Description, params.Category, params.Duration, params.Price, params.IsPopular, params.Icon,
	).Scan(
		&sv.ID, &sv.Name, &sv.Description, &sv.Category, &sv.Duration, &sv.Price,
		&sv.IsPopular, &sv.IsActive, &sv.Icon, &sv.CreatedAt, &sv.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return Service{}, apperr.Conflict("a service with this name already exists")
		}
		return Service{}, fmt.Errorf("create service: %w", err)
	}

	return sv, nil
}

// Update applies a partial update; nil fields keep their stored value.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (Service, error) {
	query := `
		UPDATE services SET
			name = COALESCE($2, name),
			description = COALESCE($3, description),
			category = COALESCE($4, category),
			duration = COALESCE($5, duration),
			price = COALESCE($6, price),
			is_popular = COALESCE($7, is_popular),
			is_active = COALESCE($8, is_active),
			icon = COALESCE($9, icon),
			updated_at = now()
		WHERE id = $1
		RETURNING ` + serviceColumns

	var sv Service
	err := r.pool.QueryRow(ctx, query,
		id, params.Name, params.Description, params.Category, params.Duration,
		params.Price, params.IsPopular, params.IsActive, params.Icon,
	).Scan(
		&sv.ID, &sv.Name, &sv.Description, &sv.Category, &sv.Duration, &sv.Price,
		&sv.IsPopular, &sv.IsActive, &sv.Icon, &sv.CreatedAt, &sv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Service{}, apperr.NotFound(serviceNotFoundMessage)
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return Service{}, apperr.Conflict("a service with this name already exists")
		}
		return Service{}, fmt.Errorf("update service: %w", err)
	}

	return sv, nil
}

// Deactivate soft deletes a service so historical appointments keep
// referencing it while new bookings cannot.
func (r *Repo) Deactivate(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE services SET is_active = false, updated_at = now() WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deactivate service: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound(serviceNotFoundMessage)
	}

	return nil
}

// scanServices is a helper to scan multiple rows into a Service slice.
func scanServices(rows pgx.Rows) ([]Service, error) {
	var results []Service

	for rows.Next() {
		var sv Service
		err := rows.Scan(
			&sv.ID, &sv.Name, &sv.Description, &sv.Category, &sv.Duration, &sv.Price,
			&sv.IsPopular, &sv.IsActive, &sv.Icon, &sv.CreatedAt, &sv.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		results = append(results, sv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate services: %w", err)
	}

	return results, nil
}
