package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"salon_backoffice_backend/internal/revenue/repository"
	"salon_backoffice_backend/internal/revenue/transport"
)

// fakeRepo serves canned ledger rows filtered by window, the way the
// real repository filters in SQL.
type fakeRepo struct {
	completed []repository.CompletedAppointment
	lines     []repository.CategoryLine
	byStaff   []repository.StaffRevenueRow
	daily     []repository.DailyRow
}

func (f *fakeRepo) ListCompleted(_ context.Context, start, end time.Time) ([]repository.CompletedAppointment, error) {
	var results []repository.CompletedAppointment
	for _, appt := range f.completed {
		if appt.AppointmentDate.Before(start) || appt.AppointmentDate.After(end) {
			continue
		}
		results = append(results, appt)
	}
	return results, nil
}

func (f *fakeRepo) ListCompletedForStaff(ctx context.Context, staffID uuid.UUID, start, end time.Time) ([]repository.CompletedAppointment, error) {
	all, _ := f.ListCompleted(ctx, start, end)
	var results []repository.CompletedAppointment
	for _, appt := range all {
		if appt.StaffID != nil && *appt.StaffID == staffID {
			results = append(results, appt)
		}
	}
	return results, nil
}

func (f *fakeRepo) GroupByStaff(_ context.Context, _, _ time.Time) ([]repository.StaffRevenueRow, error) {
	return f.byStaff, nil
}

func (f *fakeRepo) ListCategoryLines(_ context.Context, _, _ time.Time) ([]repository.CategoryLine, error) {
	return f.lines, nil
}

func (f *fakeRepo) GroupByDay(_ context.Context, start, end time.Time) ([]repository.DailyRow, error) {
	var results []repository.DailyRow
	for _, row := range f.daily {
		if row.Day.Before(start) || row.Day.After(end) {
			continue
		}
		results = append(results, row)
	}
	return results, nil
}

func fixedNow(svc *Service, at time.Time) *Service {
	svc.now = func() time.Time { return at }
	return svc
}

func completedAt(at time.Time, price float64, customerID, staffID *uuid.UUID) repository.CompletedAppointment {
	return repository.CompletedAppointment{
		ID:              uuid.New(),
		CustomerID:      customerID,
		StaffID:         staffID,
		AppointmentDate: at,
		Price:           price,
	}
}

func TestMetricsForYearWindow(t *testing.T) {
	// Ledger: A 100 completed March 2024, C 200 completed April 2024.
	// A SCHEDULED appointment never reaches this repository; the status
	// filter lives in the query.
	customer1 := uuid.New()
	customer2 := uuid.New()
	repo := &fakeRepo{
		completed: []repository.CompletedAppointment{
			completedAt(date(2024, time.March, 5), 100, &customer1, nil),
			completedAt(date(2024, time.April, 1), 200, &customer2, nil),
			completedAt(date(2025, time.January, 10), 999, &customer1, nil),
		},
	}
	svc := fixedNow(New(repo), date(2026, time.June, 1))

	year := 2024
	metrics, err := svc.Metrics(context.Background(), transport.WindowQuery{Year: &year})
	if err != nil {
		t.Fatalf("metrics: %v", err)
	}

	if metrics.TotalRevenue != 300 {
		t.Errorf("totalRevenue = %v, want 300", metrics.TotalRevenue)
	}
	if metrics.TotalAppointments != 2 {
		t.Errorf("totalAppointments = %d, want 2", metrics.TotalAppointments)
	}
	if metrics.AvgTransaction != 150 {
		t.Errorf("avgTransaction = %v, want 150", metrics.AvgTransaction)
	}
	if metrics.TotalCustomers != 2 {
		t.Errorf("totalCustomers = %d, want 2", metrics.TotalCustomers)
	}
}

func TestMetricsEmptyWindowIsAllZeros(t *testing.T) {
	svc := fixedNow(New(&fakeRepo{}), date(2026, time.June, 1))

	metrics, err := svc.Metrics(context.Background(), transport.WindowQuery{})
	if err != nil {
		t.Fatalf("metrics: %v", err)
	}

	if metrics.TotalRevenue != 0 || metrics.TotalAppointments != 0 || metrics.AvgTransaction != 0 || metrics.TotalCustomers != 0 {
		t.Errorf("metrics = %+v, want all zeros", metrics)
	}
}

func TestMetricsExcludesDanglingCustomersFromDistinctCount(t *testing.T) {
	customer := uuid.New()
	repo := &fakeRepo{
		completed: []repository.CompletedAppointment{
			completedAt(date(2024, time.March, 5), 100, &customer, nil),
			completedAt(date(2024, time.March, 6), 50, nil, nil),
			completedAt(date(2024, time.March, 7), 25, nil, nil),
		},
	}
	svc := fixedNow(New(repo), date(2026, time.June, 1))

	year := 2024
	metrics, err := svc.Metrics(context.Background(), transport.WindowQuery{Year: &year})
	if err != nil {
		t.Fatalf("metrics: %v", err)
	}

	if metrics.TotalCustomers != 1 {
		t.Errorf("totalCustomers = %d, want 1 (dangling references excluded)", metrics.TotalCustomers)
	}
	if metrics.TotalAppointments != 3 {
		t.Errorf("totalAppointments = %d, want 3", metrics.TotalAppointments)
	}
}

func TestTrendsAlwaysReturnsTwelveBuckets(t *testing.T) {
	customer := uuid.New()
	repo := &fakeRepo{
		completed: []repository.CompletedAppointment{
			completedAt(date(2024, time.March, 5), 100, &customer, nil),
			completedAt(date(2024, time.April, 1), 200, &customer, nil),
		},
	}
	svc := fixedNow(New(repo), date(2026, time.June, 1))

	year := 2024
	trends, err := svc.Trends(context.Background(), transport.TrendsQuery{Year: &year})
	if err != nil {
		t.Fatalf("trends: %v", err)
	}

	if len(trends) != 12 {
		t.Fatalf("buckets = %d, want 12", len(trends))
	}

	for i, point := range trends {
		if point.Month != i+1 {
			t.Errorf("bucket %d month = %d, want %d", i, point.Month, i+1)
		}
		switch point.Month {
		case 3:
			if point.Revenue != 100 {
				t.Errorf("March revenue = %v, want 100", point.Revenue)
			}
		case 4:
			if point.Revenue != 200 {
				t.Errorf("April revenue = %v, want 200", point.Revenue)
			}
		default:
			if point.Revenue != 0 || point.Appointments != 0 {
				t.Errorf("month %d = %+v, want zeros", point.Month, point)
			}
		}
	}
}

func TestMonthlySkipsNullStaffInNestedBreakdown(t *testing.T) {
	staffID := uuid.New()
	staffName := "Dana"
	customer := uuid.New()

	withStaff := completedAt(date(2026, time.June, 3), 120, &customer, &staffID)
	withStaff.StaffName = &staffName

	repo := &fakeRepo{
		completed: []repository.CompletedAppointment{
			withStaff,
			completedAt(date(2026, time.June, 4), 80, &customer, nil),
		},
	}
	svc := fixedNow(New(repo), date(2026, time.June, 15))

	report, err := svc.Monthly(context.Background(), transport.MonthlyQuery{})
	if err != nil {
		t.Fatalf("monthly: %v", err)
	}

	// Totals include the null-staff row; the nested breakdown skips it.
	if report.TotalRevenue != 200 {
		t.Errorf("totalRevenue = %v, want 200", report.TotalRevenue)
	}
	if report.TotalAppointments != 2 {
		t.Errorf("totalAppointments = %d, want 2", report.TotalAppointments)
	}
	if len(report.ByStaff) != 1 {
		t.Fatalf("byStaff groups = %d, want 1", len(report.ByStaff))
	}
	if report.ByStaff[0].StaffID != staffID || report.ByStaff[0].Revenue != 120 {
		t.Errorf("byStaff[0] = %+v, want staff %v revenue 120", report.ByStaff[0], staffID)
	}
}

func TestByCategoryGroupsServiceLines(t *testing.T) {
	apptA := uuid.New()
	apptB := uuid.New()
	repo := &fakeRepo{
		lines: []repository.CategoryLine{
			{AppointmentID: apptA, Category: "MASSAGE", Price: 60},
			{AppointmentID: apptA, Category: "FACIAL", Price: 40},
			{AppointmentID: apptB, Category: "MASSAGE", Price: 60},
		},
	}
	svc := fixedNow(New(repo), date(2026, time.June, 1))

	results, err := svc.ByCategory(context.Background(), transport.WindowQuery{})
	if err != nil {
		t.Fatalf("by category: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("categories = %d, want 2", len(results))
	}
	if results[0].Category != "MASSAGE" || results[0].Revenue != 120 || results[0].Appointments != 2 {
		t.Errorf("results[0] = %+v, want MASSAGE/120/2", results[0])
	}
	if results[1].Category != "FACIAL" || results[1].Revenue != 40 || results[1].Appointments != 1 {
		t.Errorf("results[1] = %+v, want FACIAL/40/1", results[1])
	}
}

func TestDailyAveragesOverDaysWithRevenue(t *testing.T) {
	repo := &fakeRepo{
		daily: []repository.DailyRow{
			{Day: date(2026, time.June, 1), Revenue: 100, Appointments: 2},
			{Day: date(2026, time.June, 5), Revenue: 50, Appointments: 1},
		},
	}
	svc := fixedNow(New(repo), date(2026, time.June, 15))

	report, err := svc.Daily(context.Background(), transport.DailyQuery{})
	if err != nil {
		t.Fatalf("daily: %v", err)
	}

	if len(report.Days) != 2 {
		t.Fatalf("days = %d, want 2 (quiet days omitted)", len(report.Days))
	}
	if report.TotalRevenue != 150 {
		t.Errorf("totalRevenue = %v, want 150", report.TotalRevenue)
	}
	if report.AvgPerDay != 75 {
		t.Errorf("avgPerDay = %v, want 75 (150 over 2 active days)", report.AvgPerDay)
	}
}

func TestDailyExplicitDateRangeWinsOverDays(t *testing.T) {
	repo := &fakeRepo{
		daily: []repository.DailyRow{
			{Day: date(2024, time.March, 1), Revenue: 100, Appointments: 2},
			{Day: date(2024, time.March, 31), Revenue: 50, Appointments: 1},
			{Day: date(2024, time.June, 10), Revenue: 999, Appointments: 3},
		},
	}
	svc := fixedNow(New(repo), date(2024, time.June, 15))

	days := 7
	report, err := svc.Daily(context.Background(), transport.DailyQuery{
		Days:      &days,
		StartDate: "2024-03-01",
		EndDate:   "2024-03-31",
	})
	if err != nil {
		t.Fatalf("daily: %v", err)
	}

	// The explicit range wins over days; the end date is inclusive.
	if len(report.Days) != 2 {
		t.Fatalf("days = %d, want 2 (March only)", len(report.Days))
	}
	if report.Days[1].Date != "2024-03-31" {
		t.Errorf("days[1].date = %s, want 2024-03-31", report.Days[1].Date)
	}
	if report.TotalRevenue != 150 {
		t.Errorf("totalRevenue = %v, want 150", report.TotalRevenue)
	}
}

func TestDailyInvalidDateIsRejected(t *testing.T) {
	svc := fixedNow(New(&fakeRepo{}), date(2024, time.June, 15))

	_, err := svc.Daily(context.Background(), transport.DailyQuery{
		StartDate: "not-a-date",
		EndDate:   "2024-03-31",
	})
	if err == nil {
		t.Fatal("expected parse error for malformed startDate")
	}
}

func TestStaffSummaryZeroWhenNoAppointments(t *testing.T) {
	svc := fixedNow(New(&fakeRepo{}), date(2026, time.June, 1))
	staffID := uuid.New()

	summary, err := svc.StaffSummary(context.Background(), staffID, transport.WindowQuery{})
	if err != nil {
		t.Fatalf("staff summary: %v", err)
	}

	if summary.StaffID != staffID {
		t.Errorf("staffID = %v, want %v", summary.StaffID, staffID)
	}
	if summary.Revenue != 0 || summary.Appointments != 0 || summary.AvgPerBooking != 0 {
		t.Errorf("summary = %+v, want zero values", summary)
	}
}

func TestStaffSummaryAggregatesWindow(t *testing.T) {
	staffID := uuid.New()
	customer := uuid.New()
	repo := &fakeRepo{
		completed: []repository.CompletedAppointment{
			completedAt(date(2024, time.February, 1), 100, &customer, &staffID),
			completedAt(date(2024, time.February, 10), 60, &customer, &staffID),
			completedAt(date(2024, time.February, 12), 999, &customer, nil),
		},
	}
	svc := fixedNow(New(repo), date(2026, time.June, 1))

	year := 2024
	summary, err := svc.StaffSummary(context.Background(), staffID, transport.WindowQuery{Year: &year})
	if err != nil {
		t.Fatalf("staff summary: %v", err)
	}

	if summary.Revenue != 160 {
		t.Errorf("revenue = %v, want 160", summary.Revenue)
	}
	if summary.Appointments != 2 {
		t.Errorf("appointments = %d, want 2", summary.Appointments)
	}
	if summary.AvgPerBooking != 80 {
		t.Errorf("avgPerBooking = %v, want 80", summary.AvgPerBooking)
	}
}
