// Package service implements the revenue aggregator: headline metrics,
// staff/category/day/month groupings, and yearly trends over the
// completed-appointment ledger.
package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"salon_backoffice_backend/internal/revenue/repository"
	"salon_backoffice_backend/internal/revenue/transport"
)

const dateLayout = "2006-01-02"

// Service computes revenue reports.
type Service struct {
	repo repository.Repository
	now  func() time.Time
}

// New creates a new revenue service.
func New(repo repository.Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Metrics returns the headline summary for the resolved window. The
// distinct-customer count excludes appointments whose customer
// reference has dangled; a deleted customer is not counted as a group.
func (s *Service) Metrics(ctx context.Context, query transport.WindowQuery) (transport.MetricsResponse, error) {
	window, err := s.window(query)
	if err != nil {
		return transport.MetricsResponse{}, err
	}

	completed, err := s.repo.ListCompleted(ctx, window.Start, window.End)
	if err != nil {
		return transport.MetricsResponse{}, err
	}

	return computeMetrics(completed), nil
}

// ByStaff returns the per-staff breakdown for the resolved window,
// highest revenue first. This endpoint's database join drops
// appointments whose staff member has been deleted.
func (s *Service) ByStaff(ctx context.Context, query transport.WindowQuery) ([]transport.StaffRevenueResponse, error) {
	window, err := s.window(query)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.GroupByStaff(ctx, window.Start, window.End)
	if err != nil {
		return nil, err
	}

	results := make([]transport.StaffRevenueResponse, 0, len(rows))
	for _, row := range rows {
		results = append(results, transport.StaffRevenueResponse{
			StaffID:       row.StaffID,
			Name:          row.StaffName,
			Revenue:       row.Revenue,
			Appointments:  row.Appointments,
			AvgPerBooking: safeDivide(row.Revenue, row.Appointments),
		})
	}

	return results, nil
}

// ByCategory explodes each completed appointment into its service lines
// and groups by category. Lines whose service has been deleted are
// already absent from the join and therefore skipped.
func (s *Service) ByCategory(ctx context.Context, query transport.WindowQuery) ([]transport.CategoryRevenueResponse, error) {
	window, err := s.window(query)
	if err != nil {
		return nil, err
	}

	lines, err := s.repo.ListCategoryLines(ctx, window.Start, window.End)
	if err != nil {
		return nil, err
	}

	return groupByCategory(lines), nil
}

// Trends returns exactly twelve buckets, January through December, for
// the requested year. Months without activity report zeros.
func (s *Service) Trends(ctx context.Context, query transport.TrendsQuery) ([]transport.TrendPointResponse, error) {
	year := s.now().Year()
	if query.Year != nil {
		year = *query.Year
	}

	window := yearWindow(year, s.now().Location())
	completed, err := s.repo.ListCompleted(ctx, window.Start, window.End)
	if err != nil {
		return nil, err
	}

	return computeTrends(completed), nil
}

// Daily returns the per-day breakdown for the resolved window: an
// explicit start/end pair wins, then a trailing number of days, then
// the 30-day default. Only days with at least one completed appointment
// appear; the average divides by those days, not by every calendar day
// in the window.
func (s *Service) Daily(ctx context.Context, query transport.DailyQuery) (transport.DailyReportResponse, error) {
	window, err := s.dailyWindow(query)
	if err != nil {
		return transport.DailyReportResponse{}, err
	}

	rows, err := s.repo.GroupByDay(ctx, window.Start, window.End)
	if err != nil {
		return transport.DailyReportResponse{}, err
	}

	report := transport.DailyReportResponse{
		Days: make([]transport.DailyPointResponse, 0, len(rows)),
	}
	for _, row := range rows {
		report.Days = append(report.Days, transport.DailyPointResponse{
			Date:         row.Day.Format(dateLayout),
			Revenue:      row.Revenue,
			Appointments: row.Appointments,
		})
		report.TotalRevenue += row.Revenue
		report.TotalAppointments += row.Appointments
	}
	report.AvgPerDay = safeDivide(report.TotalRevenue, len(rows))

	return report, nil
}

// Monthly returns the single-month report with nested staff and
// category breakdowns. The two underlying queries run concurrently.
// Unlike the by-staff endpoint, the nested staff breakdown walks the
// ledger rows and explicitly skips appointments whose staff reference
// dangles; the two policies are intentionally separate.
func (s *Service) Monthly(ctx context.Context, query transport.MonthlyQuery) (transport.MonthlyReportResponse, error) {
	window := resolveMonthWindow(s.now(), query.Filter, query.Month, query.Year)

	var (
		completed []repository.CompletedAppointment
		lines     []repository.CategoryLine
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		completed, err = s.repo.ListCompleted(groupCtx, window.Start, window.End)
		return err
	})
	group.Go(func() error {
		var err error
		lines, err = s.repo.ListCategoryLines(groupCtx, window.Start, window.End)
		return err
	})
	if err := group.Wait(); err != nil {
		return transport.MonthlyReportResponse{}, err
	}

	metrics := computeMetrics(completed)

	return transport.MonthlyReportResponse{
		Month:             int(window.Start.Month()),
		Year:              window.Start.Year(),
		TotalRevenue:      metrics.TotalRevenue,
		TotalAppointments: metrics.TotalAppointments,
		AvgTransaction:    metrics.AvgTransaction,
		ByStaff:           groupByStaffSkippingNull(completed),
		ByCategory:        groupByCategory(lines),
	}, nil
}

// StaffSummary returns one staff member's totals for the resolved
// window. A window with no completed appointments yields a zero-valued
// summary, not an error.
func (s *Service) StaffSummary(ctx context.Context, staffID uuid.UUID, query transport.WindowQuery) (transport.StaffSummaryResponse, error) {
	window, err := s.window(query)
	if err != nil {
		return transport.StaffSummaryResponse{}, err
	}

	completed, err := s.repo.ListCompletedForStaff(ctx, staffID, window.Start, window.End)
	if err != nil {
		return transport.StaffSummaryResponse{}, err
	}

	summary := transport.StaffSummaryResponse{StaffID: staffID}
	for _, appt := range completed {
		summary.Revenue += appt.Price
		summary.Appointments++
	}
	summary.AvgPerBooking = safeDivide(summary.Revenue, summary.Appointments)

	return summary, nil
}

func (s *Service) window(query transport.WindowQuery) (Window, error) {
	startDate, endDate, err := s.parseDatePair(query.StartDate, query.EndDate)
	if err != nil {
		return Window{}, err
	}
	return resolveWindow(s.now(), query.Year, startDate, endDate), nil
}

func (s *Service) dailyWindow(query transport.DailyQuery) (Window, error) {
	startDate, endDate, err := s.parseDatePair(query.StartDate, query.EndDate)
	if err != nil {
		return Window{}, err
	}
	if startDate != nil && endDate != nil {
		return Window{Start: *startDate, End: *endDate}, nil
	}

	days := 0
	if query.Days != nil {
		days = *query.Days
	}
	return resolveDailyWindow(s.now(), days), nil
}

// parseDatePair parses the optional start/end date strings. The end
// date is made inclusive by covering the whole end day.
func (s *Service) parseDatePair(start, end string) (*time.Time, *time.Time, error) {
	var startDate, endDate *time.Time

	if start != "" {
		parsed, err := time.ParseInLocation(dateLayout, start, s.now().Location())
		if err != nil {
			return nil, nil, err
		}
		startDate = &parsed
	}
	if end != "" {
		parsed, err := time.ParseInLocation(dateLayout, end, s.now().Location())
		if err != nil {
			return nil, nil, err
		}
		inclusive := parsed.AddDate(0, 0, 1).Add(-time.Millisecond)
		endDate = &inclusive
	}

	return startDate, endDate, nil
}

func computeMetrics(completed []repository.CompletedAppointment) transport.MetricsResponse {
	metrics := transport.MetricsResponse{}
	customers := make(map[uuid.UUID]struct{})

	for _, appt := range completed {
		metrics.TotalRevenue += appt.Price
		metrics.TotalAppointments++
		if appt.CustomerID != nil {
			customers[*appt.CustomerID] = struct{}{}
		}
	}

	metrics.AvgTransaction = safeDivide(metrics.TotalRevenue, metrics.TotalAppointments)
	metrics.TotalCustomers = len(customers)

	return metrics
}

func computeTrends(completed []repository.CompletedAppointment) []transport.TrendPointResponse {
	points := make([]transport.TrendPointResponse, 12)
	for i := range points {
		points[i].Month = i + 1
		points[i].Label = time.Month(i + 1).String()[:3]
	}

	for _, appt := range completed {
		bucket := int(appt.AppointmentDate.Month()) - 1
		points[bucket].Revenue += appt.Price
		points[bucket].Appointments++
	}

	return points
}

// groupByStaffSkippingNull groups ledger rows per staff member and
// skips rows whose staff reference has dangled.
func groupByStaffSkippingNull(completed []repository.CompletedAppointment) []transport.StaffRevenueResponse {
	type bucket struct {
		name         string
		revenue      float64
		appointments int
	}
	buckets := make(map[uuid.UUID]*bucket)

	for _, appt := range completed {
		if appt.StaffID == nil {
			continue
		}
		b, ok := buckets[*appt.StaffID]
		if !ok {
			b = &bucket{}
			if appt.StaffName != nil {
				b.name = *appt.StaffName
			}
			buckets[*appt.StaffID] = b
		}
		b.revenue += appt.Price
		b.appointments++
	}

	results := make([]transport.StaffRevenueResponse, 0, len(buckets))
	for staffID, b := range buckets {
		results = append(results, transport.StaffRevenueResponse{
			StaffID:       staffID,
			Name:          b.name,
			Revenue:       b.revenue,
			Appointments:  b.appointments,
			AvgPerBooking: safeDivide(b.revenue, b.appointments),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Revenue > results[j].Revenue
	})

	return results
}

func groupByCategory(lines []repository.CategoryLine) []transport.CategoryRevenueResponse {
	type bucket struct {
		revenue      float64
		appointments map[uuid.UUID]struct{}
	}
	buckets := make(map[string]*bucket)

	for _, line := range lines {
		b, ok := buckets[line.Category]
		if !ok {
			b = &bucket{appointments: make(map[uuid.UUID]struct{})}
			buckets[line.Category] = b
		}
		b.revenue += line.Price
		b.appointments[line.AppointmentID] = struct{}{}
	}

	results := make([]transport.CategoryRevenueResponse, 0, len(buckets))
	for category, b := range buckets {
		results = append(results, transport.CategoryRevenueResponse{
			Category:     category,
			Revenue:      b.revenue,
			Appointments: len(b.appointments),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Revenue > results[j].Revenue
	})

	return results
}

func safeDivide(total float64, count int) float64 {
	if count == 0 {
		return 0
	}
	return total / float64(count)
}
