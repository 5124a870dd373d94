package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"salon_backoffice_backend/platform/apperr"
)

const appointmentNotFoundMessage = "appointment not found"

// Repo implements the Repository interface with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new appointments repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

// The LEFT JOINs keep appointments readable after a referenced customer
// or staff member has been deleted; the joined columns come back NULL.
const appointmentSelect = `
	SELECT
		a.id, a.customer_id, a.staff_id, a.appointment_date, a.duration, a.price,
		a.status, a.notes, a.created_by, a.created_at, a.updated_at,
		c.id, c.name, c.phone_number, c.email,
		st.id, st.name
	FROM appointments a
	LEFT JOIN customers c ON c.id = a.customer_id
	LEFT JOIN staff_members st ON st.id = a.staff_id`

// GetByID retrieves a single appointment with resolved references.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (Appointment, error) {
	query := appointmentSelect + ` WHERE a.id = $1`

	appt, err := scanAppointment(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Appointment{}, apperr.NotFound(appointmentNotFoundMessage)
		}
		return Appointment{}, fmt.Errorf("get appointment by id: %w", err)
	}

	if err := r.attachServiceLines(ctx, []*Appointment{&appt}); err != nil {
		return Appointment{}, err
	}

	return appt, nil
}

// List retrieves appointments newest first with pagination.
func (r *Repo) List(ctx context.Context, limit, offset int) ([]Appointment, error) {
	query := appointmentSelect + `
		ORDER BY a.appointment_date DESC
		LIMIT $1 OFFSET $2`

	return r.listQuery(ctx, query, limit, offset)
}

// Count counts all appointments.
func (r *Repo) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM appointments`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count appointments: %w", err)
	}
	return count, nil
}

// ListToday retrieves non-cancelled appointments inside the given day
// window, earliest first.
func (r *Repo) ListToday(ctx context.Context, dayStart, dayEnd time.Time, limit, offset int) ([]Appointment, error) {
	query := appointmentSelect + `
		WHERE a.appointment_date >= $1 AND a.appointment_date <= $2 AND a.status <> 'CANCELLED'
		ORDER BY a.appointment_date ASC
		LIMIT $3 OFFSET $4`

	return r.listQuery(ctx, query, dayStart, dayEnd, limit, offset)
}

// CountToday counts non-cancelled appointments inside the given day window.
func (r *Repo) CountToday(ctx context.Context, dayStart, dayEnd time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM appointments
		WHERE appointment_date >= $1 AND appointment_date <= $2 AND status <> 'CANCELLED'`

	var count int
	if err := r.pool.QueryRow(ctx, query, dayStart, dayEnd).Scan(&count); err != nil {
		return 0, fmt.Errorf("count today appointments: %w", err)
	}
	return count, nil
}

// Create inserts the appointment and its service links in one transaction.
func (r *Repo) Create(ctx context.Context, params CreateParams) (Appointment, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return Appointment{}, fmt.Errorf("begin create appointment: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO appointments (customer_id, staff_id, appointment_date, duration, price, status, notes, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id uuid.UUID
	err = tx.QueryRow(ctx, query,
		params.CustomerID, params.StaffID, params.AppointmentDate, params.Duration,
		params.Price, params.Status, params.Notes, params.CreatedBy,
	).Scan(&id)
	if err != nil {
		return Appointment{}, fmt.Errorf("create appointment: %w", err)
	}

	if err := insertServiceLinks(ctx, tx, id, params.ServiceIDs); err != nil {
		return Appointment{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return Appointment{}, fmt.Errorf("commit create appointment: %w", err)
	}

	return r.GetByID(ctx, id)
}

// Update applies a partial update; a non-nil ServiceIDs slice replaces
// the service links atomically alongside the recomputed totals.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (Appointment, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return Appointment{}, fmt.Errorf("begin update appointment: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE appointments SET
			customer_id = COALESCE($2, customer_id),
			staff_id = COALESCE($3, staff_id),
			appointment_date = COALESCE($4, appointment_date),
			duration = COALESCE($5, duration),
			price = COALESCE($6, price),
			status = COALESCE($7, status),
			notes = CASE WHEN $9 THEN NULL ELSE COALESCE($8, notes) END,
			updated_at = now()
		WHERE id = $1
		RETURNING id`

	var updatedID uuid.UUID
	err = tx.QueryRow(ctx, query,
		id, params.CustomerID, params.StaffID, params.AppointmentDate,
		params.Duration, params.Price, params.Status, params.Notes, params.ClearNotes,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Appointment{}, apperr.NotFound(appointmentNotFoundMessage)
		}
		return Appointment{}, fmt.Errorf("update appointment: %w", err)
	}

	if params.ServiceIDs != nil {
		if _, err := tx.Exec(ctx, `DELETE FROM appointment_services WHERE appointment_id = $1`, id); err != nil {
			return Appointment{}, fmt.Errorf("clear appointment services: %w", err)
		}
		if err := insertServiceLinks(ctx, tx, id, params.ServiceIDs); err != nil {
			return Appointment{}, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return Appointment{}, fmt.Errorf("commit update appointment: %w", err)
	}

	return r.GetByID(ctx, id)
}

// UpdateStatus writes just the status. Used by the cancel path.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	query := `UPDATE appointments SET status = $2, updated_at = now() WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("update appointment status: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound(appointmentNotFoundMessage)
	}

	return nil
}

// CustomerExists checks whether a customer row exists.
func (r *Repo) CustomerExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM customers WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check customer exists: %w", err)
	}
	return exists, nil
}

// StaffExists checks whether a staff member row exists.
func (r *Repo) StaffExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM staff_members WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check staff exists: %w", err)
	}
	return exists, nil
}

// GetServicesByIDs retrieves the catalog services for a set of IDs.
// Missing IDs are absent from the result; the caller compares counts.
func (r *Repo) GetServicesByIDs(ctx context.Context, ids []uuid.UUID) ([]CatalogService, error) {
	query := `SELECT id, name, duration, price, is_active FROM services WHERE id = ANY($1)`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("get services by ids: %w", err)
	}
	defer rows.Close()

	var results []CatalogService
	for rows.Next() {
		var sv CatalogService
		if err := rows.Scan(&sv.ID, &sv.Name, &sv.Duration, &sv.Price, &sv.IsActive); err != nil {
			return nil, fmt.Errorf("scan catalog service: %w", err)
		}
		results = append(results, sv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate catalog services: %w", err)
	}

	return results, nil
}

func (r *Repo) listQuery(ctx context.Context, query string, args ...interface{}) ([]Appointment, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer rows.Close()

	var results []Appointment
	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		results = append(results, appt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate appointments: %w", err)
	}

	refs := make([]*Appointment, len(results))
	for i := range results {
		refs[i] = &results[i]
	}
	if err := r.attachServiceLines(ctx, refs); err != nil {
		return nil, err
	}

	return results, nil
}

// attachServiceLines loads the joined service lines for a batch of
// appointments. Deleted services simply vanish from the join.
func (r *Repo) attachServiceLines(ctx context.Context, appointments []*Appointment) error {
	if len(appointments) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(appointments))
	byID := make(map[uuid.UUID]*Appointment, len(appointments))
	for _, appt := range appointments {
		ids = append(ids, appt.ID)
		byID[appt.ID] = appt
	}

	query := `
		SELECT aps.appointment_id, s.id, s.name, s.category, s.duration, s.price
		FROM appointment_services aps
		JOIN services s ON s.id = aps.service_id
		WHERE aps.appointment_id = ANY($1)
		ORDER BY aps.appointment_id, aps.position`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("load appointment services: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var appointmentID uuid.UUID
		var line ServiceLine
		if err := rows.Scan(&appointmentID, &line.ID, &line.Name, &line.Category, &line.Duration, &line.Price); err != nil {
			return fmt.Errorf("scan appointment service: %w", err)
		}
		if appt, ok := byID[appointmentID]; ok {
			appt.Services = append(appt.Services, line)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate appointment services: %w", err)
	}

	return nil
}

// scanAppointment reads one joined row. The customer/staff join columns
// are nullable because the references may dangle.
func scanAppointment(row pgx.Row) (Appointment, error) {
	var appt Appointment
	var (
		customerID    *uuid.UUID
		customerName  *string
		customerPhone *string
		customerEmail *string
		staffID       *uuid.UUID
		staffName     *string
	)

	err := row.Scan(
		&appt.ID, &appt.CustomerID, &appt.StaffID, &appt.AppointmentDate, &appt.Duration, &appt.Price,
		&appt.Status, &appt.Notes, &appt.CreatedBy, &appt.CreatedAt, &appt.UpdatedAt,
		&customerID, &customerName, &customerPhone, &customerEmail,
		&staffID, &staffName,
	)
	if err != nil {
		return Appointment{}, err
	}

	if customerID != nil {
		appt.Customer = &CustomerRef{
			ID:          *customerID,
			Name:        derefString(customerName),
			PhoneNumber: derefString(customerPhone),
			Email:       customerEmail,
		}
	}
	if staffID != nil {
		appt.Staff = &StaffRef{ID: *staffID, Name: derefString(staffName)}
	}

	return appt, nil
}

func insertServiceLinks(ctx context.Context, tx pgx.Tx, appointmentID uuid.UUID, serviceIDs []uuid.UUID) error {
	for position, serviceID := range serviceIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO appointment_services (appointment_id, service_id, position) VALUES ($1, $2, $3)`,
			appointmentID, serviceID, position,
		)
		if err != nil {
			return fmt.Errorf("link appointment service: %w", err)
		}
	}
	return nil
}

func derefString(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
