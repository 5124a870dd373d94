// Package domain holds the appointment status vocabulary and the
// transition policy shared by the service layer and its tests.
package domain

// Appointment statuses. SCHEDULED is the initial state; CANCELLED is
// written by the soft-delete path.
const (
	StatusScheduled  = "SCHEDULED"
	StatusConfirmed  = "CONFIRMED"
	StatusInProgress = "IN_PROGRESS"
	StatusCompleted  = "COMPLETED"
	StatusCancelled  = "CANCELLED"
	StatusNoShow     = "NO_SHOW"
)

var statuses = map[string]struct{}{
	StatusScheduled:  {},
	StatusConfirmed:  {},
	StatusInProgress: {},
	StatusCompleted:  {},
	StatusCancelled:  {},
	StatusNoShow:     {},
}

// IsValidStatus reports whether the value is a known status.
func IsValidStatus(status string) bool {
	_, ok := statuses[status]
	return ok
}

// CanTransition reports whether a status change is allowed. The current
// policy accepts every transition between known statuses, including
// reopening a COMPLETED or CANCELLED appointment. All status writes go
// through this single check so a stricter state machine can be
// introduced without touching call sites.
func CanTransition(from, to string) bool {
	return IsValidStatus(from) && IsValidStatus(to)
}
