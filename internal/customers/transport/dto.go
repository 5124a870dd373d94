package transport

import (
	"time"

	"github.com/google/uuid"

	"salon_backoffice_backend/platform/httpkit"
)

// CreateCustomerRequest is the request body for POST /customers.
type CreateCustomerRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	PhoneNumber string  `json:"phoneNumber" validate:"required,min=7,max=20"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Address     *string `json:"address" validate:"omitempty,max=255"`
	Notes       *string `json:"notes" validate:"omitempty,max=500"`
}

// UpdateCustomerRequest is the request body for PUT /customers/:id.
// Pointer fields distinguish "omitted" from "set to empty".
type UpdateCustomerRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=100"`
	PhoneNumber *string `json:"phoneNumber" validate:"omitempty,min=7,max=20"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Address     *string `json:"address" validate:"omitempty,max=255"`
	Notes       *string `json:"notes" validate:"omitempty,max=500"`
}

// ListCustomersQuery holds the pagination query parameters.
type ListCustomersQuery struct {
	Page  int `form:"page" validate:"omitempty,min=1"`
	Limit int `form:"limit" validate:"omitempty,min=1,max=100"`
}

// SearchCustomersQuery holds the search query parameters.
type SearchCustomersQuery struct {
	Query string `form:"query" validate:"required,min=1,max=100"`
}

// CustomerResponse is the public representation of a customer.
type CustomerResponse struct {
	ID                uuid.UUID  `json:"id"`
	Name              string     `json:"name"`
	PhoneNumber       string     `json:"phoneNumber"`
	Email             *string    `json:"email"`
	Address           *string    `json:"address"`
	Notes             *string    `json:"notes"`
	TotalAppointments int        `json:"totalAppointments"`
	TotalSpent        float64    `json:"totalSpent"`
	LastVisit         *time.Time `json:"lastVisit"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

// CustomerListResponse is the paginated list payload.
type CustomerListResponse struct {
	Customers  []CustomerResponse `json:"customers"`
	Pagination httpkit.Pagination `json:"pagination"`
}
