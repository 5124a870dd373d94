// Package service implements treatment package business logic.
package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"salon_backoffice_backend/internal/packages/repository"
	"salon_backoffice_backend/internal/packages/transport"
	"salon_backoffice_backend/platform/apperr"
)

// Service handles package operations.
type Service struct {
	repo repository.Repository
}

// New creates a new packages service.
func New(repo repository.Repository) *Service {
	return &Service{repo: repo}
}

// List returns all packages including inactive ones.
func (s *Service) List(ctx context.Context) ([]transport.PackageResponse, error) {
	packages, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toPackageResponses(packages), nil
}

// ListActive returns packages currently on offer, services resolved.
func (s *Service) ListActive(ctx context.Context) ([]transport.PackageResponse, error) {
	packages, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return toPackageResponses(packages), nil
}

// Get returns a single package.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (transport.PackageResponse, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.PackageResponse{}, err
	}
	return toPackageResponse(p), nil
}

// Create adds a new package after verifying every referenced service exists.
func (s *Service) Create(ctx context.Context, req transport.CreatePackageRequest) (transport.PackageResponse, error) {
	if err := s.verifyServices(ctx, req.ServiceIDs); err != nil {
		return transport.PackageResponse{}, err
	}

	params := repository.CreateParams{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		ServiceIDs:  req.ServiceIDs,
		Price:       req.Price,
		Duration:    req.Duration,
	}
	if req.Image != nil {
		params.Image = *req.Image
	}

	p, err := s.repo.Create(ctx, params)
	if err != nil {
		return transport.PackageResponse{}, err
	}

	return toPackageResponse(p), nil
}

// Update applies a partial update; a provided service list is re-verified.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req transport.UpdatePackageRequest) (transport.PackageResponse, error) {
	if req.ServiceIDs != nil {
		if err := s.verifyServices(ctx, req.ServiceIDs); err != nil {
			return transport.PackageResponse{}, err
		}
	}

	p, err := s.repo.Update(ctx, id, repository.UpdateParams{
		Name:        req.Name,
		Description: req.Description,
		ServiceIDs:  req.ServiceIDs,
		Price:       req.Price,
		Duration:    req.Duration,
		Image:       req.Image,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return transport.PackageResponse{}, err
	}

	return toPackageResponse(p), nil
}

// Delete removes a package permanently.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) verifyServices(ctx context.Context, ids []uuid.UUID) error {
	unique := dedupe(ids)
	count, err := s.repo.CountServices(ctx, unique)
	if err != nil {
		return err
	}
	if count != len(unique) {
		return apperr.NotFound("one or more services do not exist")
	}
	return nil
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	results := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		results = append(results, id)
	}
	return results
}

func toPackageResponse(p repository.Package) transport.PackageResponse {
	services := make([]transport.PackageServiceResponse, 0, len(p.Services))
	for _, ps := range p.Services {
		services = append(services, transport.PackageServiceResponse{
			ID:       ps.ID,
			Name:     ps.Name,
			Category: ps.Category,
			Duration: ps.Duration,
			Price:    ps.Price,
		})
	}

	return transport.PackageResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Services:    services,
		Price:       p.Price,
		Duration:    p.Duration,
		Image:       p.Image,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toPackageResponses(packages []repository.Package) []transport.PackageResponse {
	results := make([]transport.PackageResponse, 0, len(packages))
	for _, p := range packages {
		results = append(results, toPackageResponse(p))
	}
	return results
}
