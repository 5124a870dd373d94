package transport

import (
	"github.com/google/uuid"
)

// WindowQuery holds the shared report window parameters. Year wins over
// the start/end pair; with neither, reports cover the current year.
type WindowQuery struct {
	Year      *int   `form:"year" validate:"omitempty,min=2000,max=2100"`
	StartDate string `form:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"endDate" validate:"omitempty,datetime=2006-01-02"`
}

// DailyQuery selects the window for the daily breakdown. An explicit
// start/end pair wins over days; with neither, the report covers the
// trailing 30 days.
type DailyQuery struct {
	Days      *int   `form:"days" validate:"omitempty,min=1,max=365"`
	StartDate string `form:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"endDate" validate:"omitempty,datetime=2006-01-02"`
}

// MonthlyQuery selects a single calendar month.
type MonthlyQuery struct {
	Filter string `form:"filter" validate:"omitempty,oneof=current last"`
	Month  *int   `form:"month" validate:"omitempty,min=1,max=12"`
	Year   *int   `form:"year" validate:"omitempty,min=2000,max=2100"`
}

// TrendsQuery selects the year for the 12-month trend report.
type TrendsQuery struct {
	Year *int `form:"year" validate:"omitempty,min=2000,max=2100"`
}

// MetricsResponse is the headline revenue summary for a window.
type MetricsResponse struct {
	TotalRevenue      float64 `json:"totalRevenue"`
	TotalAppointments int     `json:"totalAppointments"`
	AvgTransaction    float64 `json:"avgTransaction"`
	TotalCustomers    int     `json:"totalCustomers"`
}

// StaffRevenueResponse is one staff member's share of the window.
type StaffRevenueResponse struct {
	StaffID       uuid.UUID `json:"staffId"`
	Name          string    `json:"name"`
	Revenue       float64   `json:"revenue"`
	Appointments  int       `json:"appointments"`
	AvgPerBooking float64   `json:"avgPerBooking"`
}

// CategoryRevenueResponse is one service category's share of the window.
type CategoryRevenueResponse struct {
	Category     string  `json:"category"`
	Revenue      float64 `json:"revenue"`
	Appointments int     `json:"appointments"`
}

// TrendPointResponse is one month in the 12-bucket yearly trend.
type TrendPointResponse struct {
	Month        int     `json:"month"`
	Label        string  `json:"label"`
	Revenue      float64 `json:"revenue"`
	Appointments int     `json:"appointments"`
}

// DailyPointResponse is one day with at least one completed appointment.
type DailyPointResponse struct {
	Date         string  `json:"date"`
	Revenue      float64 `json:"revenue"`
	Appointments int     `json:"appointments"`
}

// DailyReportResponse is the daily breakdown plus its summary. AvgPerDay
// averages over days with revenue, not over every calendar day.
type DailyReportResponse struct {
	Days              []DailyPointResponse `json:"days"`
	TotalRevenue      float64              `json:"totalRevenue"`
	TotalAppointments int                  `json:"totalAppointments"`
	AvgPerDay         float64              `json:"avgPerDay"`
}

// MonthlyReportResponse is the single-month report with nested breakdowns.
type MonthlyReportResponse struct {
	Month             int                       `json:"month"`
	Year              int                       `json:"year"`
	TotalRevenue      float64                   `json:"totalRevenue"`
	TotalAppointments int                       `json:"totalAppointments"`
	AvgTransaction    float64                   `json:"avgTransaction"`
	ByStaff           []StaffRevenueResponse    `json:"byStaff"`
	ByCategory        []CategoryRevenueResponse `json:"byCategory"`
}

// StaffSummaryResponse is the revenue summary for one staff member.
// Zero-valued when the staff member had no completed appointments.
type StaffSummaryResponse struct {
	StaffID       uuid.UUID `json:"staffId"`
	Revenue       float64   `json:"revenue"`
	Appointments  int       `json:"appointments"`
	AvgPerBooking float64   `json:"avgPerBooking"`
}
