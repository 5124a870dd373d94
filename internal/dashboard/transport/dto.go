// Package transport defines the dashboard response DTOs.
package transport

import (
	"time"

	"github.com/google/uuid"
)

// OwnerStatisticsResponse is the full statistics block on the owner
// dashboard.
type OwnerStatisticsResponse struct {
	TotalStaff         int `json:"totalStaff"`
	TotalUsers         int `json:"totalUsers"`
	TotalOwners        int `json:"totalOwners"`
	TotalReceptionists int `json:"totalReceptionists"`
}

// ReceptionistStatisticsResponse is the reduced statistics block on the
// receptionist dashboard.
type ReceptionistStatisticsResponse struct {
	TotalStaff int `json:"totalStaff"`
}

// RecentStaffResponse is a recently added staff member. CreatedAt is
// only exposed on the owner dashboard.
type RecentStaffResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	PhoneNumber string     `json:"phoneNumber"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
}

// OwnerDashboardResponse is the response for GET /dashboard/owner.
type OwnerDashboardResponse struct {
	Statistics  OwnerStatisticsResponse `json:"statistics"`
	RecentStaff []RecentStaffResponse   `json:"recentStaff"`
	Greeting    string                  `json:"greeting"`
	UserType    string                  `json:"userType"`
}

// ReceptionistDashboardResponse is the response for
// GET /dashboard/receptionist.
type ReceptionistDashboardResponse struct {
	Statistics  ReceptionistStatisticsResponse `json:"statistics"`
	RecentStaff []RecentStaffResponse          `json:"recentStaff"`
	Greeting    string                         `json:"greeting"`
	UserType    string                         `json:"userType"`
}
