package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"salon_backoffice_backend/platform/apperr"
)

const customerNotFoundMessage = "customer not found"

// Repo implements the Repository interface with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new customers repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

const customerColumns = `id, name, phone_number, email, address, notes, total_appointments, total_spent, last_visit, created_at, updated_at`

// GetByID retrieves a customer by ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`

	var c Customer
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.PhoneNumber, &c.Email, &c.Address, &c.Notes,
		&c.TotalAppointments, &c.TotalSpent, &c.LastVisit, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Customer{}, apperr.NotFound(customerNotFoundMessage)
		}
		return Customer{}, fmt.Errorf("get customer by id: %w", err)
	}

	return c, nil
}

// List retrieves customers ordered newest first with pagination.
func (r *Repo) List(ctx context.Context, limit, offset int) ([]Customer, error) {
	query := `
		SELECT ` + customerColumns + `
		FROM customers
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	return scanCustomers(rows)
}

// Count counts all customers.
func (r *Repo) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM customers`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return count, nil
}

// Search retrieves customers whose name, phone, or email matches the query.
func (r *Repo) Search(ctx context.Context, query string) ([]Customer, error) {
	sql := `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE name ILIKE $1 OR phone_number ILIKE $1 OR email ILIKE $1
		ORDER BY name ASC
		LIMIT 50`

	rows, err := r.pool.Query(ctx, sql, "%"+query+"%")
	if err != nil {
		return nil, fmt.Errorf("search customers: %w", err)
	}
	defer rows.Close()

	return scanCustomers(rows)
}

// Create inserts a new customer.
func (r *Repo) Create(ctx context.Context, params CreateParams) (Customer, error) {
	query := `
		INSERT INTO customers (name, phone_number, email, address, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + customerColumns

	var c Customer
	err := r.pool.QueryRow(ctx, query,
		params.Name, params.PhoneNumber, params.Email, params.Address, params.Notes,
	).Scan(
		&c.ID, &c.Name, &c.PhoneNumber, &c.Email, &c.Address, &c.Notes,
		&c.TotalAppointments, &c.TotalSpent, &c.LastVisit, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return Customer{}, apperr.Conflict("a customer with this phone number or email already exists")
		}
		return Customer{}, fmt.Errorf("create customer: %w", err)
	}

	return c, nil
}

// Update applies a partial update; nil fields keep their stored value.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (Customer, error) {
	query := `
		UPDATE customers SET
			name = COALESCE($2, name),
			phone_number = COALESCE($3, phone_number),
			email = COALESCE($4, email),
			address = COALESCE($5, address),
			notes = COALESCE($6, notes),
			updated_at = now()
		WHERE id = $1
		RETURNING ` + customerColumns

	var c Customer
	err := r.pool.QueryRow(ctx, query,
		id, params.Name, params.PhoneNumber, params.Email, params.Address, params.Notes,
	).Scan(
		&c.ID, &c.Name, &c.PhoneNumber, &c.Email, &c.Address, &c.Notes,
		&c.TotalAppointments, &c.TotalSpent, &c.LastVisit, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Customer{}, apperr.NotFound(customerNotFoundMessage)
		}
		if isUniqueViolation(err) {
			return Customer{}, apperr.Conflict("a customer with this phone number or email already exists")
		}
		return Customer{}, fmt.Errorf("update customer: %w", err)
	}

	return c, nil
}

// Delete removes a customer. Historical appointments keep a nulled
// reference via the schema's ON DELETE SET NULL.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound(customerNotFoundMessage)
	}

	return nil
}

// RecordVisit bumps the visit denormalizations after a completed appointment.
func (r *Repo) RecordVisit(ctx context.Context, id uuid.UUID, amount float64, visitedAt time.Time) error {
	query := `
		UPDATE customers SET
			total_appointments = total_appointments + 1,
			total_spent = total_spent + $2,
			last_visit = GREATEST(COALESCE(last_visit, $3::timestamptz), $3::timestamptz),
			updated_at = now()
		WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id, amount, visitedAt)
	if err != nil {
		return fmt.Errorf("record customer visit: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound(customerNotFoundMessage)
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// scanCustomers is a helper to scan multiple rows into a Customer slice.
func scanCustomers(rows pgx.Rows) ([]Customer, error) {
	var results []Customer

	for rows.Next() {
		var c Customer
		err := rows.Scan(
			&c.ID, &c.Name, &c.PhoneNumber, &c.Email, &c.Address, &c.Notes,
			&c.TotalAppointments, &c.TotalSpent, &c.LastVisit, &c.CreatedAt, &c.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		results = append(results, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate customers: %w", err)
	}

	return results, nil
}
