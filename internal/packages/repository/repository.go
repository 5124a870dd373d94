package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"salon_backoffice_backend/platform/apperr"
)

const packageNotFoundMessage = "package not found"

// Repo implements the Repository interface with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new packages repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

const packageColumns = `id, name, description, price, duration, image, is_active, created_at, updated_at`

// GetByID retrieves a package with its resolved services.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (Package, error) {
	query := `SELECT ` + packageColumns + ` FROM packages WHERE id = $1`

	var p Package
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Duration, &p.Image,
		&p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Package{}, apperr.NotFound(packageNotFoundMessage)
		}
		return Package{}, fmt.Errorf("get package by id: %w", err)
	}

	services, err := r.loadServices(ctx, []uuid.UUID{p.ID})
	if err != nil {
		return Package{}, err
	}
	p.Services = services[p.ID]

	return p, nil
}

// ListActive retrieves active packages with their resolved services.
func (r *Repo) ListActive(ctx context.Context) ([]Package, error) {
	return r.list(ctx, `SELECT `+packageColumns+` FROM packages WHERE is_active = true ORDER BY created_at DESC`)
}

// List retrieves all packages with their resolved services.
func (r *Repo) List(ctx context.Context) ([]Package, error) {
	return r.list(ctx, `SELECT `+packageColumns+` FROM packages ORDER BY created_at DESC`)
}

func (r *Repo) list(ctx context.Context, query string) ([]Package, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}
	defer rows.Close()

	var results []Package
	var ids []uuid.UUID

	for rows.Next() {
		var p Package
		err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.Price, &p.Duration, &p.Image,
			&p.IsActive, &p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan package: %w", err)
		}
		results = append(results, p)
		ids = append(ids, p.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate packages: %w", err)
	}

	if len(ids) == 0 {
		return results, nil
	}

	services, err := r.loadServices(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range results {
		results[i].Services = services[results[i].ID]
	}

	return results, nil
}

// loadServices resolves the service lines for a set of packages.
func (r *Repo) loadServices(ctx context.Context, packageIDs []uuid.UUID) (map[uuid.UUID][]PackageService, error) {
	query := `
		SELECT ps.package_id, s.id, s.name, s.category, s.duration, s.price
		FROM package_services ps
		JOIN services s ON s.id = ps.service_id
		WHERE ps.package_id = ANY($1)
		ORDER BY ps.package_id, ps.position`

	rows, err := r.pool.Query(ctx, query, packageIDs)
	if err != nil {
		return nil, fmt.Errorf("load package services: %w", err)
	}
	defer rows.Close()

	results := make(map[uuid.UUID][]PackageService)
	for rows.Next() {
		var packageID uuid.UUID
		var ps PackageService
		if err := rows.Scan(&packageID, &ps.ID, &ps.Name, &ps.Category, &ps.Duration, &ps.Price); err != nil {
			return nil, fmt.Errorf("scan package service: %w", err)
		}
		results[packageID] = append(results[packageID], ps)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate package services: %w", err)
	}

	return results, nil
}

// CountServices counts how many of the given service IDs exist.
func (r *Repo) CountServices(ctx context.Context, ids []uuid.UUID) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM services WHERE id = ANY($1)`, ids).Scan(&count); err != nil {
		return 0, fmt.Errorf("count services: %w", err)
	}
	return count, nil
}

// Create inserts a package and its service links in one transaction.
func (r *Repo) Create(ctx context.Context, params CreateParams) (Package, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return Package{}, fmt.Errorf("begin create package: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO packages (name, description, price, duration, image)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + packageColumns

	var p Package
	err = tx.QueryRow(ctx, query,
		params.Name, params.Description, params.Price, params.Duration, params.Image,
	).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Duration, &p.Image,
		&p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return Package{}, fmt.Errorf("create package: %w", err)
	}

	if err := insertServiceLinks(ctx, tx, p.ID, params.ServiceIDs); err != nil {
		return Package{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return Package{}, fmt.Errorf("commit create package: %w", err)
	}

	return r.GetByID(ctx, p.ID)
}

// Update applies a partial update; a non-nil ServiceIDs slice replaces
// the service links atomically.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (Package, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return Package{}, fmt.Errorf("begin update package: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE packages SET
			name = COALESCE($2, name),
			description = COALESCE($3, description),
			price = COALESCE($4, price),
			duration = COALESCE($5, duration),
			image = COALESCE($6, image),
			is_active = COALESCE($7, is_active),
			updated_at = now()
		WHERE id = $1
		RETURNING id`

	var updatedID uuid.UUID
	err = tx.QueryRow(ctx, query,
		id, params.Name, params.Description, params.Price, params.Duration, params.Image, params.IsActive,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Package{}, apperr.NotFound(packageNotFoundMessage)
		}
		return Package{}, fmt.Errorf("update package: %w", err)
	}

	if params.ServiceIDs != nil {
		if _, err := tx.Exec(ctx, `DELETE FROM package_services WHERE package_id = $1`, id); err != nil {
			return Package{}, fmt.Errorf("clear package services: %w", err)
		}
		if err := insertServiceLinks(ctx, tx, id, params.ServiceIDs); err != nil {
			return Package{}, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return Package{}, fmt.Errorf("commit update package: %w", err)
	}

	return r.GetByID(ctx, id)
}

// Delete removes a package and its service links.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM packages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete package: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound(packageNotFoundMessage)
	}

	return nil
}

func insertServiceLinks(ctx context.Context, tx pgx.Tx, packageID uuid.UUID, serviceIDs []uuid.UUID) error {
	for position, serviceID := range serviceIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO package_services (package_id, service_id, position) VALUES ($1, $2, $3)`,
			packageID, serviceID, position,
		)
		if err != nil {
			return fmt.Errorf("link package service: %w", err)
		}
	}
	return nil
}
