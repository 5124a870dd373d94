// Package service implements catalog service management business logic.
package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"salon_backoffice_backend/internal/services/repository"
	"salon_backoffice_backend/internal/services/transport"
	"salon_backoffice_backend/platform/apperr"
)

// Service handles catalog service operations.
type Service struct {
	repo repository.Repository
}

// New creates a new catalog service.
func New(repo repository.Repository) *Service {
	return &Service{repo: repo}
}

// List returns all services including inactive ones.
func (s *Service) List(ctx context.Context) ([]transport.ServiceResponse, error) {
	services, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toServiceResponses(services), nil
}

// ListActive returns only services currently offered.
func (s *Service) ListActive(ctx context.Context) ([]transport.ServiceResponse, error) {
	services, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return toServiceResponses(services), nil
}

// ListByCategory returns active services in one category.
func (s *Service) ListByCategory(ctx context.Context, category string) ([]transport.ServiceResponse, error) {
	if !transport.IsValidCategory(category) {
		return nil, apperr.BadRequest("unknown service category")
	}

	services, err := s.repo.ListByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	return toServiceResponses(services), nil
}

// Get returns a single service.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (transport.ServiceResponse, error) {
	sv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.ServiceResponse{}, err
	}
	return toServiceResponse(sv), nil
}

// Create adds a new service to the catalog.
func (s *Service) Create(ctx context.Context, req transport.CreateServiceRequest) (transport.ServiceResponse, error) {
	params := repository.CreateParams{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Category:    req.Category,
		Duration:    req.Duration,
		Price:       req.Price,
	}
	if req.IsPopular != nil {
		params.IsPopular = *req.IsPopular
	}
	if req.Icon != nil {
		params.Icon = *req.Icon
	}

	sv, err := s.repo.Create(ctx, params)
	if err != nil {
		return transport.ServiceResponse{}, err
	}

	return toServiceResponse(sv), nil
}

// Update applies a partial update to a service.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req transport.UpdateServiceRequest) (transport.ServiceResponse, error) {
	sv, err := s.repo.Update(ctx, id, repository.UpdateParams{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Duration:    req.Duration,
		Price:       req.Price,
		IsPopular:   req.IsPopular,
		IsActive:    req.IsActive,
		Icon:        req.Icon,
	})
	if err != nil {
		return transport.ServiceResponse{}, err
	}

	return toServiceResponse(sv), nil
}

// Delete soft deletes a service. Historical appointments keep their
// link to it; it just stops being bookable.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Deactivate(ctx, id)
}

func toServiceResponse(sv repository.Service) transport.ServiceResponse {
	return transport.ServiceResponse{
		ID:          sv.ID,
		Name:        sv.Name,
		Description: sv.Description,
		Category:    sv.Category,
		Duration:    sv.Duration,
		Price:       sv.Price,
		IsPopular:   sv.IsPopular,
		IsActive:    sv.IsActive,
		Icon:        sv.Icon,
		CreatedAt:   sv.CreatedAt,
		UpdatedAt:   sv.UpdatedAt,
	}
}

func toServiceResponses(services []repository.Service) []transport.ServiceResponse {
	results := make([]transport.ServiceResponse, 0, len(services))
	for _, sv := range services {
		results = append(results, toServiceResponse(sv))
	}
	return results
}
