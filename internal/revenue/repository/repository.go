package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repo implements the Repository interface with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new revenue repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

// ListCompleted retrieves the completed appointments inside the window.
// The staff LEFT JOIN keeps rows whose staff member was deleted; callers
// that skip null staff do so explicitly.
func (r *Repo) ListCompleted(ctx context.Context, start, end time.Time) ([]CompletedAppointment, error) {
	query := `
		SELECT a.id, a.customer_id, a.staff_id, st.name, a.appointment_date, a.price
		FROM appointments a
		LEFT JOIN staff_members st ON st.id = a.staff_id
		WHERE a.status = 'COMPLETED' AND a.appointment_date >= $1 AND a.appointment_date <= $2
		ORDER BY a.appointment_date ASC`

	rows, err := r.pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("list completed appointments: %w", err)
	}
	defer rows.Close()

	return scanCompleted(rows)
}

// ListCompletedForStaff retrieves one staff member's completed
// appointments inside the window.
func (r *Repo) ListCompletedForStaff(ctx context.Context, staffID uuid.UUID, start, end time.Time) ([]CompletedAppointment, error) {
	query := `
		SELECT a.id, a.customer_id, a.staff_id, st.name, a.appointment_date, a.price
		FROM appointments a
		LEFT JOIN staff_members st ON st.id = a.staff_id
		WHERE a.status = 'COMPLETED' AND a.staff_id = $1
			AND a.appointment_date >= $2 AND a.appointment_date <= $3
		ORDER BY a.appointment_date ASC`

	rows, err := r.pool.Query(ctx, query, staffID, start, end)
	if err != nil {
		return nil, fmt.Errorf("list completed appointments for staff: %w", err)
	}
	defer rows.Close()

	return scanCompleted(rows)
}

// GroupByStaff aggregates the window per staff member, highest revenue
// first. The INNER JOIN silently drops appointments whose staff member
// has been deleted; that is this endpoint's documented policy.
func (r *Repo) GroupByStaff(ctx context.Context, start, end time.Time) ([]StaffRevenueRow, error) {
	query := `
		SELECT st.id, st.name, COALESCE(SUM(a.price), 0), COUNT(*)
		FROM appointments a
		JOIN staff_members st ON st.id = a.staff_id
		WHERE a.status = 'COMPLETED' AND a.appointment_date >= $1 AND a.appointment_date <= $2
		GROUP BY st.id, st.name
		ORDER BY SUM(a.price) DESC`

	rows, err := r.pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("group revenue by staff: %w", err)
	}
	defer rows.Close()

	var results []StaffRevenueRow
	for rows.Next() {
		var row StaffRevenueRow
		if err := rows.Scan(&row.StaffID, &row.StaffName, &row.Revenue, &row.Appointments); err != nil {
			return nil, fmt.Errorf("scan staff revenue row: %w", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate staff revenue rows: %w", err)
	}

	return results, nil
}

// ListCategoryLines retrieves the service lines of completed
// appointments in the window. Services deleted since booking vanish
// from the join, so historical reports skip them instead of erroring.
func (r *Repo) ListCategoryLines(ctx context.Context, start, end time.Time) ([]CategoryLine, error) {
	query := `
		SELECT a.id, s.category, s.price
		FROM appointments a
		JOIN appointment_services aps ON aps.appointment_id = a.id
		JOIN services s ON s.id = aps.service_id
		WHERE a.status = 'COMPLETED' AND a.appointment_date >= $1 AND a.appointment_date <= $2`

	rows, err := r.pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("list category lines: %w", err)
	}
	defer rows.Close()

	var results []CategoryLine
	for rows.Next() {
		var line CategoryLine
		if err := rows.Scan(&line.AppointmentID, &line.Category, &line.Price); err != nil {
			return nil, fmt.Errorf("scan category line: %w", err)
		}
		results = append(results, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate category lines: %w", err)
	}

	return results, nil
}

// GroupByDay aggregates the window per calendar day; days with no
// completed appointments produce no row.
func (r *Repo) GroupByDay(ctx context.Context, start, end time.Time) ([]DailyRow, error) {
	query := `
		SELECT date_trunc('day', a.appointment_date), COALESCE(SUM(a.price), 0), COUNT(*)
		FROM appointments a
		WHERE a.status = 'COMPLETED' AND a.appointment_date >= $1 AND a.appointment_date <= $2
		GROUP BY date_trunc('day', a.appointment_date)
		ORDER BY date_trunc('day', a.appointment_date) ASC`

	rows, err := r.pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("group revenue by day: %w", err)
	}
	defer rows.Close()

	var results []DailyRow
	for rows.Next() {
		var row DailyRow
		if err := rows.Scan(&row.Day, &row.Revenue, &row.Appointments); err != nil {
			return nil, fmt.Errorf("scan daily row: %w", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate daily rows: %w", err)
	}

	return results, nil
}

func scanCompleted(rows pgx.Rows) ([]CompletedAppointment, error) {
	var results []CompletedAppointment

	for rows.Next() {
		var row CompletedAppointment
		err := rows.Scan(&row.ID, &row.CustomerID, &row.StaffID, &row.StaffName, &row.AppointmentDate, &row.Price)
		if err != nil {
			return nil, fmt.Errorf("scan completed appointment: %w", err)
		}
		results = append(results, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate completed appointments: %w", err)
	}

	return results, nil
}
