package transport

import (
	"time"

	"github.com/google/uuid"

	"salon_backoffice_backend/platform/httpkit"
)

// CreateAppointmentRequest is the request body for POST /appointments.
type CreateAppointmentRequest struct {
	CustomerID      uuid.UUID   `json:"customerId" validate:"required"`
	StaffID         uuid.UUID   `json:"staffId" validate:"required"`
	ServiceIDs      []uuid.UUID `json:"serviceIds" validate:"required,min=1,dive,required"`
	AppointmentDate time.Time   `json:"appointmentDate" validate:"required"`
	Status          *string     `json:"status" validate:"omitempty,oneof=SCHEDULED CONFIRMED IN_PROGRESS COMPLETED CANCELLED NO_SHOW"`
	Notes           *string     `json:"notes" validate:"omitempty,max=500"`
}

// UpdateAppointmentRequest is the request body for PUT /appointments/:id.
// Every field is optional; only fields present in the request change the
// stored record. A nil ServiceIDs slice means "leave services alone".
type UpdateAppointmentRequest struct {
	CustomerID      *uuid.UUID  `json:"customerId"`
	StaffID         *uuid.UUID  `json:"staffId"`
	ServiceIDs      []uuid.UUID `json:"serviceIds" validate:"omitempty,min=1,dive,required"`
	AppointmentDate *time.Time  `json:"appointmentDate"`
	Status          *string     `json:"status" validate:"omitempty,oneof=SCHEDULED CONFIRMED IN_PROGRESS COMPLETED CANCELLED NO_SHOW"`
	Notes           *string     `json:"notes" validate:"omitempty,max=500"`
}

// ListAppointmentsQuery holds the pagination query parameters.
type ListAppointmentsQuery struct {
	Page  int `form:"page" validate:"omitempty,min=1"`
	Limit int `form:"limit" validate:"omitempty,min=1,max=100"`
}

// CustomerRefResponse is the resolved customer on an appointment.
// Nil on the parent response when the customer was deleted after booking.
type CustomerRefResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	PhoneNumber string    `json:"phoneNumber"`
}

// StaffRefResponse is the resolved staff member on an appointment.
type StaffRefResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// ServiceLineResponse is a resolved service line on an appointment.
type ServiceLineResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
	Duration int       `json:"duration"`
	Price    float64   `json:"price"`
}

// AppointmentResponse is the public representation of an appointment
// with its references resolved where they still exist.
type AppointmentResponse struct {
	ID              uuid.UUID             `json:"id"`
	Customer        *CustomerRefResponse  `json:"customer"`
	Staff           *StaffRefResponse     `json:"staff"`
	Services        []ServiceLineResponse `json:"services"`
	AppointmentDate time.Time             `json:"appointmentDate"`
	Duration        int                   `json:"duration"`
	Price           float64               `json:"price"`
	Status          string                `json:"status"`
	Notes           *string               `json:"notes"`
	CreatedBy       uuid.UUID             `json:"createdBy"`
	CreatedAt       time.Time             `json:"createdAt"`
	UpdatedAt       time.Time             `json:"updatedAt"`
}

// AppointmentListResponse is the paginated list payload.
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Pagination   httpkit.Pagination    `json:"pagination"`
}
