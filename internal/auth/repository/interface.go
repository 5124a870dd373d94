package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// User is the persistence model for a back-office user.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	UserType     string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CreateParams are the fields required to create a user.
type CreateParams struct {
	Name         string
	Email        string
	PasswordHash string
	UserType     string
}

// Repository defines the persistence operations for users.
type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	Create(ctx context.Context, params CreateParams) (User, error)
	CountByType(ctx context.Context, userType string) (int, error)
	Count(ctx context.Context) (int, error)
}
