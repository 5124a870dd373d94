// Package service implements staff member management business logic.
package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"salon_backoffice_backend/internal/staff/repository"
	"salon_backoffice_backend/internal/staff/transport"
	"salon_backoffice_backend/platform/phone"
)

// Service handles staff member operations.
type Service struct {
	repo repository.Repository
}

// New creates a new staff service.
func New(repo repository.Repository) *Service {
	return &Service{repo: repo}
}

// List returns all staff members, newest first.
func (s *Service) List(ctx context.Context) ([]transport.StaffResponse, error) {
	members, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toStaffResponses(members), nil
}

// Get returns a single staff member.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (transport.StaffResponse, error) {
	member, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.StaffResponse{}, err
	}
	return toStaffResponse(member), nil
}

// Create adds a new staff member with a normalized phone number.
func (s *Service) Create(ctx context.Context, req transport.CreateStaffRequest) (transport.StaffResponse, error) {
	member, err := s.repo.Create(ctx, strings.TrimSpace(req.Name), phone.NormalizeE164(req.PhoneNumber))
	if err != nil {
		return transport.StaffResponse{}, err
	}
	return toStaffResponse(member), nil
}

// Update applies a partial update to a staff member.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req transport.UpdateStaffRequest) (transport.StaffResponse, error) {
	var phoneNumber *string
	if req.PhoneNumber != nil {
		normalized := phone.NormalizeE164(*req.PhoneNumber)
		phoneNumber = &normalized
	}

	member, err := s.repo.Update(ctx, id, req.Name, phoneNumber)
	if err != nil {
		return transport.StaffResponse{}, err
	}
	return toStaffResponse(member), nil
}

// Delete removes a staff member permanently.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func toStaffResponse(st repository.StaffMember) transport.StaffResponse {
	return transport.StaffResponse{
		ID:          st.ID,
		Name:        st.Name,
		PhoneNumber: st.PhoneNumber,
		CreatedAt:   st.CreatedAt,
	}
}

func toStaffResponses(members []repository.StaffMember) []transport.StaffResponse {
	results := make([]transport.StaffResponse, 0, len(members))
	for _, st := range members {
		results = append(results, toStaffResponse(st))
	}
	return results
}
