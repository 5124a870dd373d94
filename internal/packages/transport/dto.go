package transport

import (
	"time"

	"github.com/google/uuid"
)

// CreatePackageRequest is the request body for POST /packages.
type CreatePackageRequest struct {
	Name        string      `json:"name" validate:"required,min=2,max=100"`
	Description *string     `json:"description" validate:"omitempty,max=500"`
	ServiceIDs  []uuid.UUID `json:"serviceIds" validate:"required,min=1,dive,required"`
	Price       float64     `json:"price" validate:"min=0"`
	Duration    int         `json:"duration" validate:"required,min=15"`
	Image       *string     `json:"image" validate:"omitempty,max=255"`
}

// UpdatePackageRequest is the request body for PUT /packages/:id.
type UpdatePackageRequest struct {
	Name        *string     `json:"name" validate:"omitempty,min=2,max=100"`
	Description *string     `json:"description" validate:"omitempty,max=500"`
	ServiceIDs  []uuid.UUID `json:"serviceIds" validate:"omitempty,min=1,dive,required"`
	Price       *float64    `json:"price" validate:"omitempty,min=0"`
	Duration    *int        `json:"duration" validate:"omitempty,min=15"`
	Image       *string     `json:"image" validate:"omitempty,max=255"`
	IsActive    *bool       `json:"isActive"`
}

// PackageServiceResponse is a resolved service inside a package.
type PackageServiceResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
	Duration int       `json:"duration"`
	Price    float64   `json:"price"`
}

// PackageResponse is the public representation of a package.
type PackageResponse struct {
	ID          uuid.UUID                `json:"id"`
	Name        string                   `json:"name"`
	Description *string                  `json:"description"`
	Services    []PackageServiceResponse `json:"services"`
	Price       float64                  `json:"price"`
	Duration    int                      `json:"duration"`
	Image       string                   `json:"image"`
	IsActive    bool                     `json:"isActive"`
	CreatedAt   time.Time                `json:"createdAt"`
	UpdatedAt   time.Time                `json:"updatedAt"`
}
