package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Customer is the persistence model for a customer.
type Customer struct {
	ID                uuid.UUID
	Name              string
	PhoneNumber       string
	Email             *string
	Address           *string
	Notes             *string
	TotalAppointments int
	TotalSpent        float64
	LastVisit         *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// CreateParams are the fields required to create a customer.
type CreateParams struct {
	Name        string
	PhoneNumber string
	Email       *string
	Address     *string
	Notes       *string
}

// UpdateParams are the optional fields for a partial customer update.
// Nil pointers leave the stored value untouched.
type UpdateParams struct {
	Name        *string
	PhoneNumber *string
	Email       *string
	Address     *string
	Notes       *string
}

// Repository defines the persistence operations for customers.
type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (Customer, error)
	List(ctx context.Context, limit, offset int) ([]Customer, error)
	Count(ctx context.Context) (int, error)
	Search(ctx context.Context, query string) ([]Customer, error)
	Create(ctx context.Context, params CreateParams) (Customer, error)
	Update(ctx context.Context, id uuid.UUID, params UpdateParams) (Customer, error)
	Delete(ctx context.Context, id uuid.UUID) error
	RecordVisit(ctx context.Context, id uuid.UUID, amount float64, visitedAt time.Time) error
}
