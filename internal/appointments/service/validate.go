package service

import (
	"context"

	"github.com/google/uuid"

	"salon_backoffice_backend/internal/appointments/repository"
	"salon_backoffice_backend/platform/apperr"
)

// resolveServices loads the requested services and verifies every ID
// exists and is active. A missing ID is NotFound; an inactive service is
// Unavailable, a distinct error because the ID itself is valid.
func (s *Service) resolveServices(ctx context.Context, ids []uuid.UUID) ([]repository.CatalogService, error) {
	unique := dedupe(ids)

	services, err := s.repo.GetServicesByIDs(ctx, unique)
	if err != nil {
		return nil, err
	}

	if len(services) != len(unique) {
		return nil, apperr.NotFound("one or more services do not exist")
	}

	for _, sv := range services {
		if !sv.IsActive {
			return nil, apperr.Unavailable("service " + sv.Name + " is currently unavailable")
		}
	}

	return services, nil
}

// checkCustomer verifies the customer exists at write time. The check is
// point-in-time only; the customer may be deleted later and historical
// reads tolerate the dangling reference.
func (s *Service) checkCustomer(ctx context.Context, id uuid.UUID) error {
	exists, err := s.repo.CustomerExists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("customer not found")
	}
	return nil
}

// checkStaff verifies the staff member exists at write time.
func (s *Service) checkStaff(ctx context.Context, id uuid.UUID) error {
	exists, err := s.repo.StaffExists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("staff member not found")
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
