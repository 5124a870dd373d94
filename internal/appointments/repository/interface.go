package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Appointment is the persistence model for a booked appointment.
// CustomerID and StaffID are pointers because the schema nulls them out
// when the referenced row is deleted; historical reads must tolerate that.
type Appointment struct {
	ID              uuid.UUID
	CustomerID      *uuid.UUID
	StaffID         *uuid.UUID
	AppointmentDate time.Time
	Duration        int
	Price           float64
	Status          string
	Notes           *string
	CreatedBy       uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Customer *CustomerRef
	Staff    *StaffRef
	Services []ServiceLine
}

// CustomerRef is the joined customer, nil when the reference dangles.
type CustomerRef struct {
	ID          uuid.UUID
	Name        string
	PhoneNumber string
	Email       *string
}

// StaffRef is the joined staff member, nil when the reference dangles.
type StaffRef struct {
	ID   uuid.UUID
	Name string
}

// ServiceLine is a joined service attached to an appointment. Deleted
// services disappear from the join (the link row cascades away).
type ServiceLine struct {
	ID       uuid.UUID
	Name     string
	Category string
	Duration int
	Price    float64
}

// CatalogService is the subset of a catalog service the booking
// validator needs.
type CatalogService struct {
	ID       uuid.UUID
	Name     string
	Duration int
	Price    float64
	IsActive bool
}

// CreateParams are the fields persisted on appointment creation.
// Duration and Price arrive pre-derived from the selected services.
type CreateParams struct {
	CustomerID      uuid.UUID
	StaffID         uuid.UUID
	ServiceIDs      []uuid.UUID
	AppointmentDate time.Time
	Duration        int
	Price           float64
	Status          string
	Notes           *string
	CreatedBy       uuid.UUID
}

// UpdateParams are the optional fields for a partial appointment update.
// Nil pointers and a nil ServiceIDs slice leave the stored values alone.
// ClearNotes unsets notes entirely; a blank notes string is never stored.
type UpdateParams struct {
	CustomerID      *uuid.UUID
	StaffID         *uuid.UUID
	ServiceIDs      []uuid.UUID
	AppointmentDate *time.Time
	Duration        *int
	Price           *float64
	Status          *string
	Notes           *string
	ClearNotes      bool
}

// Repository defines the persistence operations for appointments and the
// reference lookups the booking validator needs.
type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (Appointment, error)
	List(ctx context.Context, limit, offset int) ([]Appointment, error)
	Count(ctx context.Context) (int, error)
	ListToday(ctx context.Context, dayStart, dayEnd time.Time, limit, offset int) ([]Appointment, error)
	CountToday(ctx context.Context, dayStart, dayEnd time.Time) (int, error)
	Create(ctx context.Context, params CreateParams) (Appointment, error)
	Update(ctx context.Context, id uuid.UUID, params UpdateParams) (Appointment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error

	CustomerExists(ctx context.Context, id uuid.UUID) (bool, error)
	StaffExists(ctx context.Context, id uuid.UUID) (bool, error)
	GetServicesByIDs(ctx context.Context, ids []uuid.UUID) ([]CatalogService, error)
}
