package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Package is the persistence model for a treatment package.
type Package struct {
	ID          uuid.UUID
	Name        string
	Description *string
	Price       float64
	Duration    int
	Image       string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Services    []PackageService
}

// PackageService is a resolved service line inside a package.
// Deleted services drop out of the join rather than erroring.
type PackageService struct {
	ID       uuid.UUID
	Name     string
	Category string
	Duration int
	Price    float64
}

// CreateParams are the fields required to create a package.
type CreateParams struct {
	Name        string
	Description *string
	ServiceIDs  []uuid.UUID
	Price       float64
	Duration    int
	Image       string
}

// UpdateParams are the optional fields for a partial package update.
// A nil ServiceIDs slice leaves the service links untouched.
type UpdateParams struct {
	Name        *string
	Description *string
	ServiceIDs  []uuid.UUID
	Price       *float64
	Duration    *int
	Image       *string
	IsActive    *bool
}

// Repository defines the persistence operations for packages.
type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (Package, error)
	ListActive(ctx context.Context) ([]Package, error)
	List(ctx context.Context) ([]Package, error)
	CountServices(ctx context.Context, ids []uuid.UUID) (int, error)
	Create(ctx context.Context, params CreateParams) (Package, error)
	Update(ctx context.Context, id uuid.UUID, params UpdateParams) (Package, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
