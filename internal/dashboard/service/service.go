// Package service assembles the role-specific dashboard payloads.
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"salon_backoffice_backend/internal/dashboard/repository"
	"salon_backoffice_backend/internal/dashboard/transport"
)

const recentStaffLimit = 5

const (
	userTypeOwner        = "OWNER"
	userTypeReceptionist = "RECEPTIONIST"
)

// Service computes the dashboard payloads.
type Service struct {
	repo repository.Repository
}

// New creates a new dashboard service.
func New(repo repository.Repository) *Service {
	return &Service{repo: repo}
}

// Owner returns the full statistics dashboard. The independent count
// queries run concurrently.
func (s *Service) Owner(ctx context.Context, userID uuid.UUID) (transport.OwnerDashboardResponse, error) {
	var (
		stats       transport.OwnerStatisticsResponse
		recentStaff []repository.RecentStaffMember
		userName    string
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() (err error) {
		stats.TotalStaff, err = s.repo.CountStaff(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		stats.TotalUsers, err = s.repo.CountUsers(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		stats.TotalOwners, err = s.repo.CountUsersByType(groupCtx, userTypeOwner)
		return err
	})
	group.Go(func() (err error) {
		stats.TotalReceptionists, err = s.repo.CountUsersByType(groupCtx, userTypeReceptionist)
		return err
	})
	group.Go(func() (err error) {
		recentStaff, err = s.repo.RecentStaff(groupCtx, recentStaffLimit)
		return err
	})
	group.Go(func() (err error) {
		userName, err = s.repo.UserName(groupCtx, userID)
		return err
	})
	if err := group.Wait(); err != nil {
		return transport.OwnerDashboardResponse{}, err
	}

	return transport.OwnerDashboardResponse{
		Statistics:  stats,
		RecentStaff: toRecentStaffResponses(recentStaff, true),
		Greeting:    fmt.Sprintf("Welcome back, %s!", userName),
		UserType:    userTypeOwner,
	}, nil
}

// Receptionist returns the reduced dashboard: the staff count and
// recent staff without creation dates.
func (s *Service) Receptionist(ctx context.Context, userID uuid.UUID) (transport.ReceptionistDashboardResponse, error) {
	var (
		totalStaff  int
		recentStaff []repository.RecentStaffMember
		userName    string
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() (err error) {
		totalStaff, err = s.repo.CountStaff(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		recentStaff, err = s.repo.RecentStaff(groupCtx, recentStaffLimit)
		return err
	})
	group.Go(func() (err error) {
		userName, err = s.repo.UserName(groupCtx, userID)
		return err
	})
	if err := group.Wait(); err != nil {
		return transport.ReceptionistDashboardResponse{}, err
	}

	return transport.ReceptionistDashboardResponse{
		Statistics:  transport.ReceptionistStatisticsResponse{TotalStaff: totalStaff},
		RecentStaff: toRecentStaffResponses(recentStaff, false),
		Greeting:    fmt.Sprintf("Welcome, %s!", userName),
		UserType:    userTypeReceptionist,
	}, nil
}

func toRecentStaffResponses(members []repository.RecentStaffMember, includeCreatedAt bool) []transport.RecentStaffResponse {
	results := make([]transport.RecentStaffResponse, 0, len(members))
	for _, member := range members {
		resp := transport.RecentStaffResponse{
			ID:          member.ID,
			Name:        member.Name,
			PhoneNumber: member.PhoneNumber,
		}
		if includeCreatedAt {
			createdAt := member.CreatedAt
			resp.CreatedAt = &createdAt
		}
		results = append(results, resp)
	}
	return results
}
