// Package service implements customer management business logic.
package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"salon_backoffice_backend/internal/customers/repository"
	"salon_backoffice_backend/internal/customers/transport"
	"salon_backoffice_backend/internal/events"
	"salon_backoffice_backend/platform/httpkit"
	"salon_backoffice_backend/platform/logger"
	"salon_backoffice_backend/platform/phone"
)

// Service handles customer operations.
type Service struct {
	repo repository.Repository
	log  *logger.Logger
}

// New creates a new customers service.
func New(repo repository.Repository, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// List returns a page of customers, newest first.
func (s *Service) List(ctx context.Context, query transport.ListCustomersQuery) (transport.CustomerListResponse, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return transport.CustomerListResponse{}, err
	}

	skip, meta := httpkit.Paginate(query.Page, query.Limit, total)

	customers, err := s.repo.List(ctx, meta.Limit, skip)
	if err != nil {
		return transport.CustomerListResponse{}, err
	}

	return transport.CustomerListResponse{
		Customers:  toCustomerResponses(customers),
		Pagination: meta,
	}, nil
}

// Get returns a single customer.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (transport.CustomerResponse, error) {
	customer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.CustomerResponse{}, err
	}
	return toCustomerResponse(customer), nil
}

// Search returns customers matching the free-text query by name, phone, or email.
func (s *Service) Search(ctx context.Context, query string) ([]transport.CustomerResponse, error) {
	customers, err := s.repo.Search(ctx, strings.TrimSpace(query))
	if err != nil {
		return nil, err
	}
	return toCustomerResponses(customers), nil
}

// Create adds a new customer. The phone number is normalized to E.164
// before the uniqueness check so formatting variants collide.
func (s *Service) Create(ctx context.Context, req transport.CreateCustomerRequest) (transport.CustomerResponse, error) {
	customer, err := s.repo.Create(ctx, repository.CreateParams{
		Name:        strings.TrimSpace(req.Name),
		PhoneNumber: phone.NormalizeE164(req.PhoneNumber),
		Email:       normalizeOptional(req.Email),
		Address:     normalizeOptional(req.Address),
		Notes:       normalizeOptional(req.Notes),
	})
	if err != nil {
		return transport.CustomerResponse{}, err
	}

	return toCustomerResponse(customer), nil
}

// Update applies a partial update to a customer.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req transport.UpdateCustomerRequest) (transport.CustomerResponse, error) {
	params := repository.UpdateParams{
		Name:    req.Name,
		Email:   normalizeOptional(req.Email),
		Address: normalizeOptional(req.Address),
		Notes:   normalizeOptional(req.Notes),
	}
	if req.PhoneNumber != nil {
		normalized := phone.NormalizeE164(*req.PhoneNumber)
		params.PhoneNumber = &normalized
	}

	customer, err := s.repo.Update(ctx, id, params)
	if err != nil {
		return transport.CustomerResponse{}, err
	}

	return toCustomerResponse(customer), nil
}

// Delete removes a customer permanently.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// SubscribeToEvents registers the handler that keeps the visit
// denormalizations current when appointments complete.
func (s *Service) SubscribeToEvents(bus events.Bus) {
	bus.Subscribe(events.AppointmentCompleted{}.EventName(), events.HandlerFunc(s.onAppointmentCompleted))
}

func (s *Service) onAppointmentCompleted(ctx context.Context, event events.Event) error {
	completed, ok := event.(events.AppointmentCompleted)
	if !ok {
		return nil
	}

	if completed.CustomerID == uuid.Nil {
		return nil
	}

	// The customer may have been deleted since the appointment was booked;
	// a missing row is not an error here.
	if err := s.repo.RecordVisit(ctx, completed.CustomerID, completed.Price, completed.AppointmentDate); err != nil {
		s.log.Warn("record visit failed",
			"customer_id", completed.CustomerID.String(),
			"appointment_id", completed.AppointmentID.String(),
			"error", err.Error(),
		)
	}

	return nil
}

// normalizeOptional maps nil or blank strings to nil so optional text
// is stored as NULL, never as an empty string.
func normalizeOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func toCustomerResponse(c repository.Customer) transport.CustomerResponse {
	return transport.CustomerResponse{
		ID:                c.ID,
		Name:              c.Name,
		PhoneNumber:       c.PhoneNumber,
		Email:             c.Email,
		Address:           c.Address,
		Notes:             c.Notes,
		TotalAppointments: c.TotalAppointments,
		TotalSpent:        c.TotalSpent,
		LastVisit:         c.LastVisit,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}

func toCustomerResponses(customers []repository.Customer) []transport.CustomerResponse {
	results := make([]transport.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		results = append(results, toCustomerResponse(c))
	}
	return results
}
