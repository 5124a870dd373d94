package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// RecentStaffMember is the slim staff projection the dashboard shows.
type RecentStaffMember struct {
	ID          uuid.UUID
	Name        string
	PhoneNumber string
	CreatedAt   time.Time
}

// Repository defines the read-only queries behind the dashboard. The
// dashboard spans the users and staff tables; keeping the queries here
// avoids coupling it to the auth and staff modules.
type Repository interface {
	CountStaff(ctx context.Context) (int, error)
	CountUsers(ctx context.Context) (int, error)
	CountUsersByType(ctx context.Context, userType string) (int, error)
	RecentStaff(ctx context.Context, limit int) ([]RecentStaffMember, error)
	UserName(ctx context.Context, id uuid.UUID) (string, error)
}
