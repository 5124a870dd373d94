package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Service is the persistence model for a catalog service.
type Service struct {
	ID          uuid.UUID
	Name        string
	Description *string
	Category    string
	Duration    int
	Price       float64
	IsPopular   bool
	IsActive    bool
	Icon        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreateParams are the fields required to create a service.
type CreateParams struct {
	Name        string
	Description *string
	Category    string
	Duration    int
	Price       float64
	IsPopular   bool
	Icon        string
}

// UpdateParams are the optional fields for a partial service update.
type UpdateParams struct {
	Name        *string
	Description *string
	Category    *string
	Duration    *int
	Price       *float64
	IsPopular   *bool
	IsActive    *bool
	Icon        *string
}

// Repository defines the persistence operations for catalog services.
type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (Service, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]Service, error)
	List(ctx context.Context) ([]Service, error)
	ListActive(ctx context.Context) ([]Service, error)
	ListByCategory(ctx context.Context, category string) ([]Service, error)
	Create(ctx context.Context, params CreateParams) (Service, error)
	Update(ctx context.Context, id uuid.UUID, params UpdateParams) (Service, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}
