package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CompletedAppointment is one row of the completed-appointment ledger
// inside a report window. CustomerID, StaffID, and StaffName are nil
// when the referenced row has been deleted since booking.
type CompletedAppointment struct {
	ID              uuid.UUID
	CustomerID      *uuid.UUID
	StaffID         *uuid.UUID
	StaffName       *string
	AppointmentDate time.Time
	Price           float64
}

// StaffRevenueRow is a database-side staff grouping. The INNER JOIN
// behind it drops appointments whose staff reference dangles.
type StaffRevenueRow struct {
	StaffID      uuid.UUID
	StaffName    string
	Revenue      float64
	Appointments int
}

// CategoryLine is one completed appointment's service line with its
// category. Deleted services drop out of the join.
type CategoryLine struct {
	AppointmentID uuid.UUID
	Category      string
	Price         float64
}

// DailyRow is a database-side calendar-day grouping; only days with at
// least one completed appointment produce a row.
type DailyRow struct {
	Day          time.Time
	Revenue      float64
	Appointments int
}

// Repository defines the read operations over the completed ledger.
type Repository interface {
	ListCompleted(ctx context.Context, start, end time.Time) ([]CompletedAppointment, error)
	ListCompletedForStaff(ctx context.Context, staffID uuid.UUID, start, end time.Time) ([]CompletedAppointment, error)
	GroupByStaff(ctx context.Context, start, end time.Time) ([]StaffRevenueRow, error)
	ListCategoryLines(ctx context.Context, start, end time.Time) ([]CategoryLine, error)
	GroupByDay(ctx context.Context, start, end time.Time) ([]DailyRow, error)
}
