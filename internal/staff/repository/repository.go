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

const staffNotFoundMessage = "staff member not found"

// Repo implements the Repository interface with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new staff repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

// GetByID retrieves a staff member by ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (StaffMember, error) {
	query := `SELECT id, name, phone_number, created_at FROM staff_members WHERE id = $1`

	var st StaffMember
	err := r.pool.QueryRow(ctx, query, id).Scan(&st.ID, &st.Name, &st.PhoneNumber, &st.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return StaffMember{}, apperr.NotFound(staffNotFoundMessage)
		}
		return StaffMember{}, fmt.Errorf("get staff member by id: %w", err)
	}

	return st, nil
}

// List retrieves all staff members, newest first.
func (r *Repo) List(ctx context.Context) ([]StaffMember, error) {
	query := `SELECT id, name, phone_number, created_at FROM staff_members ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list staff members: %w", err)
	}
	defer rows.Close()

	return scanStaffMembers(rows)
}

// ListRecent retrieves the most recently added staff members.
func (r *Repo) ListRecent(ctx context.Context, limit int) ([]StaffMember, error) {
	query := `SELECT id, name, phone_number, created_at FROM staff_members ORDER BY created_at DESC LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent staff members: %w", err)
	}
	defer rows.Close()

	return scanStaffMembers(rows)
}

// Count counts all staff members.
func (r *Repo) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM staff_members`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count staff members: %w", err)
	}
	return count, nil
}

// Create inserts a new staff member.
func (r *Repo) Create(ctx context.Context, name, phoneNumber string) (StaffMember, error) {
	query := `
		INSERT INTO staff_members (name, phone_number)
		VALUES ($1, $2)
		RETURNING id, name, phone_number, created_at`

	var st StaffMember
	err := r.pool.QueryRow(ctx, query, name, phoneNumber).Scan(&st.ID, &st.Name, &st.PhoneNumber, &st.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return StaffMember{}, apperr.Conflict("a staff member with this phone number already exists")
		}
		return StaffMember{}, fmt.Errorf("create staff member: %w", err)
	}

	return st, nil
}

// Update applies a partial update; nil fields keep their stored value.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, name, phoneNumber *string) (StaffMember, error) {
	query := `
		UPDATE staff_members SET
			name = COALESCE($2, name),
			phone_number = COALESCE($3, phone_number)
		WHERE id = $1
		RETURNING id, name, phone_number, created_at`

	var st StaffMember
	err := r.pool.QueryRow(ctx, query, id, name, phoneNumber).Scan(&st.ID, &st.Name, &st.PhoneNumber, &st.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return StaffMember{}, apperr.NotFound(staffNotFoundMessage)
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return StaffMember{}, apperr.Conflict("a staff member with this phone number already exists")
		}
		return StaffMember{}, fmt.Errorf("update staff member: %w", err)
	}

	return st, nil
}

// Delete removes a staff member. Historical appointments keep a nulled
// reference via the schema's ON DELETE SET NULL.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM staff_members WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete staff member: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound(staffNotFoundMessage)
	}

	return nil
}

func scanStaffMembers(rows pgx.Rows) ([]StaffMember, error) {
	var results []StaffMember

	for rows.Next() {
		var st StaffMember
		if err := rows.Scan(&st.ID, &st.Name, &st.PhoneNumber, &st.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan staff member: %w", err)
		}
		results = append(results, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate staff members: %w", err)
	}

	return results, nil
}
