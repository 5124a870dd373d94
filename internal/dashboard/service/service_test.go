package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"salon_backoffice_backend/internal/dashboard/repository"
)

type fakeRepo struct {
	staffCount   int
	userCount    int
	countsByType map[string]int
	recent       []repository.RecentStaffMember
	userNames    map[uuid.UUID]string
}

func (f *fakeRepo) CountStaff(context.Context) (int, error) { return f.staffCount, nil }
func (f *fakeRepo) CountUsers(context.Context) (int, error) { return f.userCount, nil }

func (f *fakeRepo) CountUsersByType(_ context.Context, userType string) (int, error) {
	return f.countsByType[userType], nil
}

func (f *fakeRepo) RecentStaff(_ context.Context, limit int) ([]repository.RecentStaffMember, error) {
	if len(f.recent) > limit {
		return f.recent[:limit], nil
	}
	return f.recent, nil
}

func (f *fakeRepo) UserName(_ context.Context, id uuid.UUID) (string, error) {
	return f.userNames[id], nil
}

func TestOwnerDashboardAggregatesStatistics(t *testing.T) {
	userID := uuid.New()
	repo := &fakeRepo{
		staffCount:   8,
		userCount:    3,
		countsByType: map[string]int{"OWNER": 1, "RECEPTIONIST": 2},
		recent: []repository.RecentStaffMember{
			{ID: uuid.New(), Name: "Dana", PhoneNumber: "+15550001", CreatedAt: time.Now()},
		},
		userNames: map[uuid.UUID]string{userID: "Sam"},
	}
	svc := New(repo)

	resp, err := svc.Owner(context.Background(), userID)
	if err != nil {
		t.Fatalf("owner dashboard: %v", err)
	}

	if resp.Statistics.TotalStaff != 8 || resp.Statistics.TotalUsers != 3 {
		t.Errorf("statistics = %+v, want staff 8 users 3", resp.Statistics)
	}
	if resp.Statistics.TotalOwners != 1 || resp.Statistics.TotalReceptionists != 2 {
		t.Errorf("statistics = %+v, want 1 owner 2 receptionists", resp.Statistics)
	}
	if resp.Greeting != "Welcome back, Sam!" {
		t.Errorf("greeting = %q", resp.Greeting)
	}
	if resp.UserType != "OWNER" {
		t.Errorf("userType = %q, want OWNER", resp.UserType)
	}
	if len(resp.RecentStaff) != 1 || resp.RecentStaff[0].CreatedAt == nil {
		t.Errorf("recentStaff = %+v, want one entry with createdAt", resp.RecentStaff)
	}
}

func TestReceptionistDashboardOmitsUserCounts(t *testing.T) {
	userID := uuid.New()
	repo := &fakeRepo{
		staffCount: 8,
		recent: []repository.RecentStaffMember{
			{ID: uuid.New(), Name: "Dana", PhoneNumber: "+15550001", CreatedAt: time.Now()},
		},
		userNames: map[uuid.UUID]string{userID: "Robin"},
	}
	svc := New(repo)

	resp, err := svc.Receptionist(context.Background(), userID)
	if err != nil {
		t.Fatalf("receptionist dashboard: %v", err)
	}

	if resp.Statistics.TotalStaff != 8 {
		t.Errorf("totalStaff = %d, want 8", resp.Statistics.TotalStaff)
	}
	if resp.Greeting != "Welcome, Robin!" {
		t.Errorf("greeting = %q", resp.Greeting)
	}
	if len(resp.RecentStaff) != 1 || resp.RecentStaff[0].CreatedAt != nil {
		t.Errorf("recentStaff = %+v, want one entry without createdAt", resp.RecentStaff)
	}
}

func TestRecentStaffCapped(t *testing.T) {
	userID := uuid.New()
	repo := &fakeRepo{userNames: map[uuid.UUID]string{userID: "Sam"}}
	for i := 0; i < 9; i++ {
		repo.recent = append(repo.recent, repository.RecentStaffMember{ID: uuid.New(), Name: "S", CreatedAt: time.Now()})
	}
	svc := New(repo)

	resp, err := svc.Owner(context.Background(), userID)
	if err != nil {
		t.Fatalf("owner dashboard: %v", err)
	}
	if len(resp.RecentStaff) != recentStaffLimit {
		t.Errorf("recentStaff = %d entries, want %d", len(resp.RecentStaff), recentStaffLimit)
	}
}
