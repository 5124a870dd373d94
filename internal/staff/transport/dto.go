package transport

import (
	"time"

	"github.com/google/uuid"
)

// CreateStaffRequest is the request body for POST /staff.
type CreateStaffRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	PhoneNumber string `json:"phoneNumber" validate:"required,min=7,max=20"`
}

// UpdateStaffRequest is the request body for PUT /staff/:id.
type UpdateStaffRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=100"`
	PhoneNumber *string `json:"phoneNumber" validate:"omitempty,min=7,max=20"`
}

// StaffResponse is the public representation of a staff member.
type StaffResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	PhoneNumber string    `json:"phoneNumber"`
	CreatedAt   time.Time `json:"createdAt"`
}
