// Package repository implements the dashboard read queries using pgx.
package repository

import (
	"context"
	"errors"

	"salon_backoffice_backend/platform/apperr"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repo is the pgx-backed dashboard repository.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new dashboard repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var _ Repository = (*Repo)(nil)

func (r *Repo) CountStaff(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM staff_members`).Scan(&count)
	return count, err
}

func (r *Repo) CountUsers(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM users`).Scan(&count)
	return count, err
}

func (r *Repo) CountUsersByType(ctx context.Context, userType string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM users WHERE user_type = $1`, userType).Scan(&count)
	return count, err
}

func (r *Repo) RecentStaff(ctx context.Context, limit int) ([]RecentStaffMember, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, phone_number, created_at
		FROM staff_members
		ORDER BY created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []RecentStaffMember
	for rows.Next() {
		var member RecentStaffMember
		if err := rows.Scan(&member.ID, &member.Name, &member.PhoneNumber, &member.CreatedAt); err != nil {
			return nil, err
		}
		results = append(results, member)
	}

	return results, rows.Err()
}

func (r *Repo) UserName(ctx context.Context, id uuid.UUID) (string, error) {
	var name string
	err := r.pool.QueryRow(ctx, `SELECT name FROM users WHERE id = $1`, id).Scan(&name)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", apperr.NotFound("user not found")
	}
	return name, err
}
