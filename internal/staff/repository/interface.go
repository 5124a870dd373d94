package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// StaffMember is the persistence model for a staff member.
type StaffMember struct {
	ID          uuid.UUID
	Name        string
	PhoneNumber string
	CreatedAt   time.Time
}

// Repository defines the persistence operations for staff members.
type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (StaffMember, error)
	List(ctx context.Context) ([]StaffMember, error)
	ListRecent(ctx context.Context, limit int) ([]StaffMember, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, name, phoneNumber string) (StaffMember, error)
	Update(ctx context.Context, id uuid.UUID, name, phoneNumber *string) (StaffMember, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
