// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"time"

	"salon_backoffice_backend/platform/events"

	"github.com/google/uuid"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// =============================================================================
// Appointment Domain Events
// =============================================================================

// AppointmentBooked is published when a new appointment is created.
type AppointmentBooked struct {
	BaseEvent
	AppointmentID   uuid.UUID `json:"appointmentId"`
	CustomerID      uuid.UUID `json:"customerId"`
	StaffID         uuid.UUID `json:"staffId"`
	AppointmentDate time.Time `json:"appointmentDate"`
	Price           float64   `json:"price"`
	CustomerEmail   *string   `json:"customerEmail,omitempty"`
}

func (e AppointmentBooked) EventName() string { return "appointments.booked" }

// AppointmentCompleted is published when an appointment reaches the
// COMPLETED status, either on creation or via a status update.
type AppointmentCompleted struct {
	BaseEvent
	AppointmentID   uuid.UUID `json:"appointmentId"`
	CustomerID      uuid.UUID `json:"customerId"`
	AppointmentDate time.Time `json:"appointmentDate"`
	Price           float64   `json:"price"`
}

func (e AppointmentCompleted) EventName() string { return "appointments.completed" }

// AppointmentCancelled is published when an appointment is cancelled.
type AppointmentCancelled struct {
	BaseEvent
	AppointmentID uuid.UUID `json:"appointmentId"`
}

func (e AppointmentCancelled) EventName() string { return "appointments.cancelled" }
