package service

import "time"

// Window is a closed date interval used to filter completed appointments.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether the timestamp falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// yearWindow spans one calendar year.
func yearWindow(year int, loc *time.Location) Window {
	return Window{
		Start: time.Date(year, time.January, 1, 0, 0, 0, 0, loc),
		End:   time.Date(year, time.December, 31, 23, 59, 59, 999000000, loc),
	}
}

// monthWindow spans one calendar month.
func monthWindow(year int, month time.Month, loc *time.Location) Window {
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return Window{
		Start: start,
		End:   start.AddDate(0, 1, 0).Add(-time.Millisecond),
	}
}

// resolveWindow applies the report window precedence: an explicit year
// wins, then an explicit start/end pair, then the current calendar year.
func resolveWindow(now time.Time, year *int, startDate, endDate *time.Time) Window {
	if year != nil {
		return yearWindow(*year, now.Location())
	}
	if startDate != nil && endDate != nil {
		return Window{Start: *startDate, End: *endDate}
	}
	return yearWindow(now.Year(), now.Location())
}

// resolveDailyWindow selects a trailing window of the given number of
// days ending today; days <= 0 falls back to the 30-day default.
func resolveDailyWindow(now time.Time, days int) Window {
	if days <= 0 {
		days = 30
	}
	dayEnd := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 999000000, now.Location())
	return Window{
		Start: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, -(days - 1)),
		End:   dayEnd,
	}
}

// resolveMonthWindow selects a single calendar month: "current", "last",
// or an explicit month+year pair. The default is the current month.
func resolveMonthWindow(now time.Time, filter string, month, year *int) Window {
	loc := now.Location()

	switch {
	case month != nil && year != nil:
		return monthWindow(*year, time.Month(*month), loc)
	case filter == "last":
		// Last day of the previous month, immune to day-of-month overflow.
		previous := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc).AddDate(0, 0, -1)
		return monthWindow(previous.Year(), previous.Month(), loc)
	default:
		return monthWindow(now.Year(), now.Month(), loc)
	}
}
