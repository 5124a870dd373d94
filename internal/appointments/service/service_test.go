package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"salon_backoffice_backend/internal/appointments/domain"
	"salon_backoffice_backend/internal/appointments/repository"
	"salon_backoffice_backend/internal/appointments/transport"
	"salon_backoffice_backend/internal/events"
	"salon_backoffice_backend/platform/apperr"
	"salon_backoffice_backend/platform/logger"
)

// fakeRepo is an in-memory Repository for service tests.
type fakeRepo struct {
	customers    map[uuid.UUID]bool
	staff        map[uuid.UUID]bool
	services     map[uuid.UUID]repository.CatalogService
	appointments map[uuid.UUID]*repository.Appointment
	links        map[uuid.UUID][]uuid.UUID
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		customers:    make(map[uuid.UUID]bool),
		staff:        make(map[uuid.UUID]bool),
		services:     make(map[uuid.UUID]repository.CatalogService),
		appointments: make(map[uuid.UUID]*repository.Appointment),
		links:        make(map[uuid.UUID][]uuid.UUID),
	}
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (repository.Appointment, error) {
	appt, ok := f.appointments[id]
	if !ok {
		return repository.Appointment{}, apperr.NotFound("appointment not found")
	}
	copied := *appt
	copied.Services = nil
	for _, serviceID := range f.links[id] {
		if sv, ok := f.services[serviceID]; ok {
			copied.Services = append(copied.Services, repository.ServiceLine{
				ID: sv.ID, Name: sv.Name, Duration: sv.Duration, Price: sv.Price,
			})
		}
	}
	return copied, nil
}

func (f *fakeRepo) List(_ context.Context, _, _ int) ([]repository.Appointment, error) {
	var results []repository.Appointment
	for _, appt := range f.appointments {
		results = append(results, *appt)
	}
	return results, nil
}

func (f *fakeRepo) Count(_ context.Context) (int, error) {
	return len(f.appointments), nil
}

func (f *fakeRepo) ListToday(_ context.Context, dayStart, dayEnd time.Time, _, _ int) ([]repository.Appointment, error) {
	var results []repository.Appointment
	for _, appt := range f.appointments {
		if appt.Status == domain.StatusCancelled {
			continue
		}
		if appt.AppointmentDate.Before(dayStart) || appt.AppointmentDate.After(dayEnd) {
			continue
		}
		results = append(results, *appt)
	}
	return results, nil
}

func (f *fakeRepo) CountToday(ctx context.Context, dayStart, dayEnd time.Time) (int, error) {
	results, _ := f.ListToday(ctx, dayStart, dayEnd, 0, 0)
	return len(results), nil
}

func (f *fakeRepo) Create(ctx context.Context, params repository.CreateParams) (repository.Appointment, error) {
	id := uuid.New()
	customerID := params.CustomerID
	staffID := params.StaffID
	f.appointments[id] = &repository.Appointment{
		ID:              id,
		CustomerID:      &customerID,
		StaffID:         &staffID,
		AppointmentDate: params.AppointmentDate,
		Duration:        params.Duration,
		Price:           params.Price,
		Status:          params.Status,
		Notes:           params.Notes,
		CreatedBy:       params.CreatedBy,
	}
	f.links[id] = params.ServiceIDs
	return f.GetByID(ctx, id)
}

func (f *fakeRepo) Update(ctx context.Context, id uuid.UUID, params repository.UpdateParams) (repository.Appointment, error) {
	appt, ok := f.appointments[id]
	if !ok {
		return repository.Appointment{}, apperr.NotFound("appointment not found")
	}
	if params.CustomerID != nil {
		appt.CustomerID = params.CustomerID
	}
	if params.StaffID != nil {
		appt.StaffID = params.StaffID
	}
	if params.AppointmentDate != nil {
		appt.AppointmentDate = *params.AppointmentDate
	}
	if params.Duration != nil {
		appt.Duration = *params.Duration
	}
	if params.Price != nil {
		appt.Price = *params.Price
	}
	if params.Status != nil {
		appt.Status = *params.Status
	}
	if params.ClearNotes {
		appt.Notes = nil
	} else if params.Notes != nil {
		appt.Notes = params.Notes
	}
	if params.ServiceIDs != nil {
		f.links[id] = params.ServiceIDs
	}
	appt.UpdatedAt = time.Now()
	return f.GetByID(ctx, id)
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id uuid.UUID, status string) error {
	appt, ok := f.appointments[id]
	if !ok {
		return apperr.NotFound("appointment not found")
	}
	appt.Status = status
	appt.UpdatedAt = time.Now()
	return nil
}

func (f *fakeRepo) CustomerExists(_ context.Context, id uuid.UUID) (bool, error) {
	return f.customers[id], nil
}

func (f *fakeRepo) StaffExists(_ context.Context, id uuid.UUID) (bool, error) {
	return f.staff[id], nil
}

func (f *fakeRepo) GetServicesByIDs(_ context.Context, ids []uuid.UUID) ([]repository.CatalogService, error) {
	var results []repository.CatalogService
	for _, id := range ids {
		if sv, ok := f.services[id]; ok {
			results = append(results, sv)
		}
	}
	return results, nil
}

// recordingBus captures published events synchronously.
type recordingBus struct {
	published []events.Event
}

func (b *recordingBus) Publish(_ context.Context, event events.Event) {
	b.published = append(b.published, event)
}

func (b *recordingBus) PublishSync(ctx context.Context, event events.Event) error {
	b.Publish(ctx, event)
	return nil
}

func (b *recordingBus) Subscribe(string, events.Handler) {}

func (b *recordingBus) names() []string {
	var names []string
	for _, event := range b.published {
		names = append(names, event.EventName())
	}
	return names
}

func setup() (*Service, *fakeRepo, *recordingBus) {
	repo := newFakeRepo()
	bus := &recordingBus{}
	svc := New(repo, bus, logger.New("development"), nil, nil)
	return svc, repo, bus
}

func seedReferences(repo *fakeRepo) (customerID, staffID uuid.UUID, s1, s2 repository.CatalogService) {
	customerID = uuid.New()
	staffID = uuid.New()
	repo.customers[customerID] = true
	repo.staff[staffID] = true

	s1 = repository.CatalogService{ID: uuid.New(), Name: "Haircut", Duration: 30, Price: 20, IsActive: true}
	s2 = repository.CatalogService{ID: uuid.New(), Name: "Facial", Duration: 45, Price: 35, IsActive: true}
	repo.services[s1.ID] = s1
	repo.services[s2.ID] = s2
	return customerID, staffID, s1, s2
}

func TestCreateDerivesDurationAndPrice(t *testing.T) {
	svc, repo, _ := setup()
	customerID, staffID, s1, s2 := seedReferences(repo)

	resp, err := svc.Create(context.Background(), uuid.New(), transport.CreateAppointmentRequest{
		CustomerID:      customerID,
		StaffID:         staffID,
		ServiceIDs:      []uuid.UUID{s1.ID, s2.ID},
		AppointmentDate: time.Now().Add(24 * time.Hour),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if resp.Duration != 75 {
		t.Errorf("duration = %d, want 75", resp.Duration)
	}
	if resp.Price != 55 {
		t.Errorf("price = %v, want 55", resp.Price)
	}
	if resp.Status != domain.StatusScheduled {
		t.Errorf("status = %q, want %q", resp.Status, domain.StatusScheduled)
	}
}

func TestCreateUnknownServiceFailsWithNotFound(t *testing.T) {
	svc, repo, _ := setup()
	customerID, staffID, s1, _ := seedReferences(repo)

	_, err := svc.Create(context.Background(), uuid.New(), transport.CreateAppointmentRequest{
		CustomerID:      customerID,
		StaffID:         staffID,
		ServiceIDs:      []uuid.UUID{s1.ID, uuid.New()},
		AppointmentDate: time.Now(),
	})
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("err = %v, want NotFound", err)
	}
	if len(repo.appointments) != 0 {
		t.Errorf("appointments persisted = %d, want 0", len(repo.appointments))
	}
}

func TestCreateInactiveServiceFailsWithUnavailable(t *testing.T) {
	svc, repo, _ := setup()
	customerID, staffID, _, _ := seedReferences(repo)

	inactive := repository.CatalogService{ID: uuid.New(), Name: "Retired", Duration: 60, Price: 80, IsActive: false}
	repo.services[inactive.ID] = inactive

	_, err := svc.Create(context.Background(), uuid.New(), transport.CreateAppointmentRequest{
		CustomerID:      customerID,
		StaffID:         staffID,
		ServiceIDs:      []uuid.UUID{inactive.ID},
		AppointmentDate: time.Now(),
	})
	if !apperr.Is(err, apperr.KindUnavailable) {
		t.Fatalf("err = %v, want Unavailable", err)
	}
	if len(repo.appointments) != 0 {
		t.Errorf("appointments persisted = %d, want 0", len(repo.appointments))
	}
}

func TestCreateUnknownCustomerFailsWithNotFound(t *testing.T) {
	svc, repo, _ := setup()
	_, staffID, s1, _ := seedReferences(repo)

	_, err := svc.Create(context.Background(), uuid.New(), transport.CreateAppointmentRequest{
		CustomerID:      uuid.New(),
		StaffID:         staffID,
		ServiceIDs:      []uuid.UUID{s1.ID},
		AppointmentDate: time.Now(),
	})
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("err = %v, want NotFound", err)
	}
}

func TestUpdateNotesOnlyLeavesEverythingElseUnchanged(t *testing.T) {
	svc, repo, _ := setup()
	customerID, staffID, s1, s2 := seedReferences(repo)

	created, err := svc.Create(context.Background(), uuid.New(), transport.CreateAppointmentRequest{
		CustomerID:      customerID,
		StaffID:         staffID,
		ServiceIDs:      []uuid.UUID{s1.ID, s2.ID},
		AppointmentDate: time.Now().Add(24 * time.Hour),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	notes := "prefers window seat"
	updated, err := svc.Update(context.Background(), created.ID, transport.UpdateAppointmentRequest{
		Notes: &notes,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.Notes == nil || *updated.Notes != notes {
		t.Errorf("notes = %v, want %q", updated.Notes, notes)
	}
	if updated.Duration != created.Duration {
		t.Errorf("duration changed: %d -> %d", created.Duration, updated.Duration)
	}
	if updated.Price != created.Price {
		t.Errorf("price changed: %v -> %v", created.Price, updated.Price)
	}
	if updated.Status != created.Status {
		t.Errorf("status changed: %q -> %q", created.Status, updated.Status)
	}
	if len(updated.Services) != 2 {
		t.Errorf("services count = %d, want 2", len(updated.Services))
	}
}

func TestUpdateBlankNotesUnsetsThem(t *testing.T) {
	svc, repo, _ := setup()
	customerID, staffID, s1, _ := seedReferences(repo)

	notes := "original"
	created, err := svc.Create(context.Background(), uuid.New(), transport.CreateAppointmentRequest{
		CustomerID:      customerID,
		StaffID:         staffID,
		ServiceIDs:      []uuid.UUID{s1.ID},
		AppointmentDate: time.Now(),
		Notes:           &notes,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	blank := "   "
	updated, err := svc.Update(context.Background(), created.ID, transport.UpdateAppointmentRequest{
		Notes: &blank,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.Notes != nil {
		t.Errorf("notes = %q, want nil", *updated.Notes)
	}
}

func TestUpdateServicesRederivesTotals(t *testing.T) {
	svc, repo, _ := setup()
	customerID, staffID, s1, s2 := seedReferences(repo)

	created, err := svc.Create(context.Background(), uuid.New(), transport.CreateAppointmentRequest{
		CustomerID:      customerID,
		StaffID:         staffID,
		ServiceIDs:      []uuid.UUID{s1.ID, s2.ID},
		AppointmentDate: time.Now(),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ID, transport.UpdateAppointmentRequest{
		ServiceIDs: []uuid.UUID{s1.ID},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.Duration != s1.Duration {
		t.Errorf("duration = %d, want %d", updated.Duration, s1.Duration)
	}
	if updated.Price != s1.Price {
		t.Errorf("price = %v, want %v", updated.Price, s1.Price)
	}
}

func TestCancelTwiceIsIdempotent(t *testing.T) {
	svc, repo, _ := setup()
	customerID, staffID, s1, _ := seedReferences(repo)

	created, err := svc.Create(context.Background(), uuid.New(), transport.CreateAppointmentRequest{
		CustomerID:      customerID,
		StaffID:         staffID,
		ServiceIDs:      []uuid.UUID{s1.ID},
		AppointmentDate: time.Now(),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	first, err := svc.Cancel(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("first cancel: %v", err)
	}
	if first.Status != domain.StatusCancelled {
		t.Errorf("status = %q, want %q", first.Status, domain.StatusCancelled)
	}

	second, err := svc.Cancel(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("second cancel: %v", err)
	}
	if second.Status != domain.StatusCancelled {
		t.Errorf("status = %q, want %q", second.Status, domain.StatusCancelled)
	}
}

func TestCancelReturnsPersistedRecord(t *testing.T) {
	svc, repo, _ := setup()
	customerID, staffID, s1, _ := seedReferences(repo)

	created, err := svc.Create(context.Background(), uuid.New(), transport.CreateAppointmentRequest{
		CustomerID:      customerID,
		StaffID:         staffID,
		ServiceIDs:      []uuid.UUID{s1.ID},
		AppointmentDate: time.Now(),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	cancelled, err := svc.Cancel(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}

	// The response must reflect the stored row after the status write,
	// including the refreshed updatedAt, not a pre-update snapshot.
	stored, err := repo.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !cancelled.UpdatedAt.Equal(stored.UpdatedAt) {
		t.Errorf("updatedAt = %v, want stored %v", cancelled.UpdatedAt, stored.UpdatedAt)
	}
	if !cancelled.UpdatedAt.After(created.UpdatedAt) {
		t.Errorf("updatedAt %v not refreshed past %v", cancelled.UpdatedAt, created.UpdatedAt)
	}
}

func TestCompletionPublishesEventOnce(t *testing.T) {
	svc, repo, bus := setup()
	customerID, staffID, s1, _ := seedReferences(repo)

	created, err := svc.Create(context.Background(), uuid.New(), transport.CreateAppointmentRequest{
		CustomerID:      customerID,
		StaffID:         staffID,
		ServiceIDs:      []uuid.UUID{s1.ID},
		AppointmentDate: time.Now(),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	status := domain.StatusCompleted
	if _, err := svc.Update(context.Background(), created.ID, transport.UpdateAppointmentRequest{Status: &status}); err != nil {
		t.Fatalf("complete: %v", err)
	}

	// A second write of the same status must not publish again.
	if _, err := svc.Update(context.Background(), created.ID, transport.UpdateAppointmentRequest{Status: &status}); err != nil {
		t.Fatalf("re-complete: %v", err)
	}

	completions := 0
	for _, name := range bus.names() {
		if name == (events.AppointmentCompleted{}).EventName() {
			completions++
		}
	}
	if completions != 1 {
		t.Errorf("completed events = %d, want 1", completions)
	}
}

func TestStatusTransitionsArePermissive(t *testing.T) {
	cases := []struct{ from, to string }{
		{domain.StatusScheduled, domain.StatusCompleted},
		{domain.StatusCompleted, domain.StatusScheduled},
		{domain.StatusCancelled, domain.StatusConfirmed},
		{domain.StatusNoShow, domain.StatusInProgress},
	}

	for _, tc := range cases {
		if !domain.CanTransition(tc.from, tc.to) {
			t.Errorf("CanTransition(%q, %q) = false, want true", tc.from, tc.to)
		}
	}

	if domain.CanTransition(domain.StatusScheduled, "DELETED") {
		t.Error("CanTransition to unknown status = true, want false")
	}
}
