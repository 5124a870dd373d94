package service

import (
	"testing"
	"time"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
}

func TestResolveWindowExplicitYearWins(t *testing.T) {
	now := date(2026, time.June, 15)
	year := 2024
	start := date(2026, time.January, 1)
	end := date(2026, time.February, 1)

	window := resolveWindow(now, &year, &start, &end)

	if window.Start.Year() != 2024 || window.Start.Month() != time.January || window.Start.Day() != 1 {
		t.Errorf("start = %v, want 2024-01-01", window.Start)
	}
	if window.End.Year() != 2024 || window.End.Month() != time.December || window.End.Day() != 31 {
		t.Errorf("end = %v, want 2024-12-31", window.End)
	}
}

func TestResolveWindowStartEndPair(t *testing.T) {
	now := date(2026, time.June, 15)
	start := date(2025, time.March, 1)
	end := date(2025, time.March, 31)

	window := resolveWindow(now, nil, &start, &end)

	if !window.Start.Equal(start) {
		t.Errorf("start = %v, want %v", window.Start, start)
	}
	if !window.End.Equal(end) {
		t.Errorf("end = %v, want %v", window.End, end)
	}
}

func TestResolveWindowDefaultsToCurrentYear(t *testing.T) {
	now := date(2026, time.June, 15)

	window := resolveWindow(now, nil, nil, nil)

	if window.Start.Year() != 2026 || window.Start.Month() != time.January {
		t.Errorf("start = %v, want start of 2026", window.Start)
	}
	if window.End.Year() != 2026 || window.End.Month() != time.December {
		t.Errorf("end = %v, want end of 2026", window.End)
	}
}

func TestResolveDailyWindowTrailingDays(t *testing.T) {
	now := date(2026, time.June, 15)

	window := resolveDailyWindow(now, 7)

	if window.Start.Day() != 9 || window.Start.Month() != time.June {
		t.Errorf("start = %v, want 2026-06-09", window.Start)
	}
	if window.End.Day() != 15 || window.End.Hour() != 23 {
		t.Errorf("end = %v, want end of 2026-06-15", window.End)
	}
}

func TestResolveDailyWindowDefaultsToThirtyDays(t *testing.T) {
	now := date(2026, time.June, 30)

	window := resolveDailyWindow(now, 0)

	if window.Start.Month() != time.June || window.Start.Day() != 1 {
		t.Errorf("start = %v, want 2026-06-01", window.Start)
	}
}

func TestResolveMonthWindow(t *testing.T) {
	now := date(2026, time.March, 31)

	t.Run("current month by default", func(t *testing.T) {
		window := resolveMonthWindow(now, "", nil, nil)
		if window.Start.Month() != time.March || window.Start.Year() != 2026 {
			t.Errorf("start = %v, want March 2026", window.Start)
		}
		if window.End.Month() != time.March || window.End.Day() != 31 {
			t.Errorf("end = %v, want 2026-03-31", window.End)
		}
	})

	t.Run("last month handles day-of-month overflow", func(t *testing.T) {
		window := resolveMonthWindow(now, "last", nil, nil)
		if window.Start.Month() != time.February || window.Start.Year() != 2026 {
			t.Errorf("start = %v, want February 2026", window.Start)
		}
		if window.End.Day() != 28 {
			t.Errorf("end day = %d, want 28", window.End.Day())
		}
	})

	t.Run("explicit month and year", func(t *testing.T) {
		month, year := 11, 2024
		window := resolveMonthWindow(now, "", &month, &year)
		if window.Start.Month() != time.November || window.Start.Year() != 2024 {
			t.Errorf("start = %v, want November 2024", window.Start)
		}
		if window.End.Day() != 30 {
			t.Errorf("end day = %d, want 30", window.End.Day())
		}
	})
}
