// Package service implements the appointment lifecycle: booking with
// reference validation and derived totals, partial updates, soft-delete
// cancellation, and the today/list/get reads.
package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"salon_backoffice_backend/internal/appointments/domain"
	"salon_backoffice_backend/internal/appointments/repository"
	"salon_backoffice_backend/internal/appointments/transport"
	"salon_backoffice_backend/internal/events"
	"salon_backoffice_backend/platform/apperr"
	"salon_backoffice_backend/platform/httpkit"
	"salon_backoffice_backend/platform/logger"
)

// ReminderScheduler enqueues an appointment reminder. Implementations
// decide the lead time; a nil scheduler disables reminders.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, appointmentID uuid.UUID, appointmentDate time.Time) error
}

// ConfirmationMailer sends a booking confirmation. A nil mailer
// disables confirmations.
type ConfirmationMailer interface {
	SendConfirmation(ctx context.Context, to, customerName string, appointmentDate time.Time, serviceNames []string) error
}

// Service handles appointment operations.
type Service struct {
	repo      repository.Repository
	bus       events.Bus
	log       *logger.Logger
	reminders ReminderScheduler
	mailer    ConfirmationMailer
	now       func() time.Time
}

// New creates a new appointments service. reminders and mailer may be
// nil when the corresponding infrastructure is not configured.
func New(repo repository.Repository, bus events.Bus, log *logger.Logger, reminders ReminderScheduler, mailer ConfirmationMailer) *Service {
	return &Service{
		repo:      repo,
		bus:       bus,
		log:       log,
		reminders: reminders,
		mailer:    mailer,
		now:       time.Now,
	}
}

// Create books a new appointment. References are validated first, then
// duration and price are derived from the selected services, then the
// record is persisted in one transaction. Nothing is written when any
// validation step fails.
func (s *Service) Create(ctx context.Context, createdBy uuid.UUID, req transport.CreateAppointmentRequest) (transport.AppointmentResponse, error) {
	services, err := s.resolveServices(ctx, req.ServiceIDs)
	if err != nil {
		return transport.AppointmentResponse{}, err
	}
	if err := s.checkCustomer(ctx, req.CustomerID); err != nil {
		return transport.AppointmentResponse{}, err
	}
	if err := s.checkStaff(ctx, req.StaffID); err != nil {
		return transport.AppointmentResponse{}, err
	}

	duration, price := deriveTotals(services)

	status := domain.StatusScheduled
	if req.Status != nil {
		status = *req.Status
	}

	appt, err := s.repo.Create(ctx, repository.CreateParams{
		CustomerID:      req.CustomerID,
		StaffID:         req.StaffID,
		ServiceIDs:      dedupe(req.ServiceIDs),
		AppointmentDate: req.AppointmentDate,
		Duration:        duration,
		Price:           price,
		Status:          status,
		Notes:           normalizeNotes(req.Notes),
		CreatedBy:       createdBy,
	})
	if err != nil {
		return transport.AppointmentResponse{}, err
	}

	s.publishBooked(ctx, appt)
	if appt.Status == domain.StatusCompleted {
		s.publishCompleted(ctx, appt)
	}
	s.scheduleReminder(ctx, appt)
	s.sendConfirmation(ctx, appt)

	return toAppointmentResponse(appt), nil
}

// Update applies a partial update. Only fields present in the request
// change; a new service list re-derives duration and price.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req transport.UpdateAppointmentRequest) (transport.AppointmentResponse, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.AppointmentResponse{}, err
	}

	params := repository.UpdateParams{
		CustomerID:      req.CustomerID,
		StaffID:         req.StaffID,
		AppointmentDate: req.AppointmentDate,
	}

	if req.CustomerID != nil {
		if err := s.checkCustomer(ctx, *req.CustomerID); err != nil {
			return transport.AppointmentResponse{}, err
		}
	}
	if req.StaffID != nil {
		if err := s.checkStaff(ctx, *req.StaffID); err != nil {
			return transport.AppointmentResponse{}, err
		}
	}

	if req.ServiceIDs != nil {
		services, err := s.resolveServices(ctx, req.ServiceIDs)
		if err != nil {
			return transport.AppointmentResponse{}, err
		}
		duration, price := deriveTotals(services)
		params.ServiceIDs = dedupe(req.ServiceIDs)
		params.Duration = &duration
		params.Price = &price
	}

	if req.Status != nil {
		if !domain.CanTransition(existing.Status, *req.Status) {
			return transport.AppointmentResponse{}, apperr.BadRequest("invalid status transition")
		}
		params.Status = req.Status
	}

	if req.Notes != nil {
		normalized := normalizeNotes(req.Notes)
		if normalized == nil {
			params.ClearNotes = true
		} else {
			params.Notes = normalized
		}
	}

	appt, err := s.repo.Update(ctx, id, params)
	if err != nil {
		return transport.AppointmentResponse{}, err
	}

	if appt.Status == domain.StatusCompleted && existing.Status != domain.StatusCompleted {
		s.publishCompleted(ctx, appt)
	}

	return toAppointmentResponse(appt), nil
}

// Cancel soft deletes an appointment by writing the CANCELLED status.
// Cancelling an already-cancelled appointment succeeds without change.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID) (transport.AppointmentResponse, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.AppointmentResponse{}, err
	}

	if existing.Status == domain.StatusCancelled {
		return toAppointmentResponse(existing), nil
	}

	if !domain.CanTransition(existing.Status, domain.StatusCancelled) {
		return transport.AppointmentResponse{}, apperr.BadRequest("invalid status transition")
	}

	if err := s.repo.UpdateStatus(ctx, id, domain.StatusCancelled); err != nil {
		return transport.AppointmentResponse{}, err
	}

	s.bus.Publish(ctx, events.AppointmentCancelled{
		BaseEvent:     events.NewBaseEvent(),
		AppointmentID: id,
	})

	cancelled, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.AppointmentResponse{}, err
	}
	return toAppointmentResponse(cancelled), nil
}

// Get returns a single appointment with resolved references.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (transport.AppointmentResponse, error) {
	appt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.AppointmentResponse{}, err
	}
	return toAppointmentResponse(appt), nil
}

// List returns a page of appointments, newest appointment date first.
func (s *Service) List(ctx context.Context, query transport.ListAppointmentsQuery) (transport.AppointmentListResponse, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return transport.AppointmentListResponse{}, err
	}

	skip, meta := httpkit.Paginate(query.Page, query.Limit, total)

	appointments, err := s.repo.List(ctx, meta.Limit, skip)
	if err != nil {
		return transport.AppointmentListResponse{}, err
	}

	return transport.AppointmentListResponse{
		Appointments: toAppointmentResponses(appointments),
		Pagination:   meta,
	}, nil
}

// ListToday returns today's non-cancelled appointments, earliest first.
// "Today" is the server's local calendar day.
func (s *Service) ListToday(ctx context.Context, query transport.ListAppointmentsQuery) (transport.AppointmentListResponse, error) {
	now := s.now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1).Add(-time.Nanosecond)

	total, err := s.repo.CountToday(ctx, dayStart, dayEnd)
	if err != nil {
		return transport.AppointmentListResponse{}, err
	}

	skip, meta := httpkit.Paginate(query.Page, query.Limit, total)

	appointments, err := s.repo.ListToday(ctx, dayStart, dayEnd, meta.Limit, skip)
	if err != nil {
		return transport.AppointmentListResponse{}, err
	}

	return transport.AppointmentListResponse{
		Appointments: toAppointmentResponses(appointments),
		Pagination:   meta,
	}, nil
}

func (s *Service) publishBooked(ctx context.Context, appt repository.Appointment) {
	event := events.AppointmentBooked{
		BaseEvent:       events.NewBaseEvent(),
		AppointmentID:   appt.ID,
		AppointmentDate: appt.AppointmentDate,
		Price:           appt.Price,
	}
	if appt.CustomerID != nil {
		event.CustomerID = *appt.CustomerID
	}
	if appt.StaffID != nil {
		event.StaffID = *appt.StaffID
	}
	if appt.Customer != nil {
		event.CustomerEmail = appt.Customer.Email
	}
	s.bus.Publish(ctx, event)
}

func (s *Service) publishCompleted(ctx context.Context, appt repository.Appointment) {
	event := events.AppointmentCompleted{
		BaseEvent:       events.NewBaseEvent(),
		AppointmentID:   appt.ID,
		AppointmentDate: appt.AppointmentDate,
		Price:           appt.Price,
	}
	if appt.CustomerID != nil {
		event.CustomerID = *appt.CustomerID
	}
	s.bus.Publish(ctx, event)
}

// scheduleReminder is best effort. A scheduling failure never fails the
// booking; it is logged and the appointment stands.
func (s *Service) scheduleReminder(ctx context.Context, appt repository.Appointment) {
	if s.reminders == nil || appt.Status == domain.StatusCancelled {
		return
	}

	if err := s.reminders.ScheduleReminder(ctx, appt.ID, appt.AppointmentDate); err != nil {
		s.log.Warn("schedule reminder failed",
			"appointment_id", appt.ID.String(),
			"error", err.Error(),
		)
	}
}

// sendConfirmation is best effort, and only possible when the customer
// reference resolved and has an email address.
func (s *Service) sendConfirmation(ctx context.Context, appt repository.Appointment) {
	if s.mailer == nil || appt.Customer == nil || appt.Customer.Email == nil {
		return
	}

	serviceNames := make([]string, 0, len(appt.Services))
	for _, line := range appt.Services {
		serviceNames = append(serviceNames, line.Name)
	}

	err := s.mailer.SendConfirmation(ctx, *appt.Customer.Email, appt.Customer.Name, appt.AppointmentDate, serviceNames)
	if err != nil {
		s.log.Warn("send confirmation failed",
			"appointment_id", appt.ID.String(),
			"error", err.Error(),
		)
	}
}

// normalizeNotes maps nil or blank notes to nil so the column is NULL,
// never an empty string.
func normalizeNotes(notes *string) *string {
	if notes == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*notes)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func toAppointmentResponse(appt repository.Appointment) transport.AppointmentResponse {
	resp := transport.AppointmentResponse{
		ID:              appt.ID,
		AppointmentDate: appt.AppointmentDate,
		Duration:        appt.Duration,
		Price:           appt.Price,
		Status:          appt.Status,
		Notes:           appt.Notes,
		CreatedBy:       appt.CreatedBy,
		CreatedAt:       appt.CreatedAt,
		UpdatedAt:       appt.UpdatedAt,
		Services:        make([]transport.ServiceLineResponse, 0, len(appt.Services)),
	}

	if appt.Customer != nil {
		resp.Customer = &transport.CustomerRefResponse{
			ID:          appt.Customer.ID,
			Name:        appt.Customer.Name,
			PhoneNumber: appt.Customer.PhoneNumber,
		}
	}
	if appt.Staff != nil {
		resp.Staff = &transport.StaffRefResponse{
			ID:   appt.Staff.ID,
			Name: appt.Staff.Name,
		}
	}
	for _, line := range appt.Services {
		resp.Services = append(resp.Services, transport.ServiceLineResponse{
			ID:       line.ID,
			Name:     line.Name,
			Category: line.Category,
			Duration: line.Duration,
			Price:    line.Price,
		})
	}

	return resp
}

func toAppointmentResponses(appointments []repository.Appointment) []transport.AppointmentResponse {
	results := make([]transport.AppointmentResponse, 0, len(appointments))
	for _, appt := range appointments {
		results = append(results, toAppointmentResponse(appt))
	}
	return results
}
