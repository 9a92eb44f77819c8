package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateKeyLayout is the canonical format of a log book key: one calendar day.
const DateKeyLayout = "2006-01-02"

// DateKey formats t as a canonical log book key.
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// ParseDateKey parses a canonical YYYY-MM-DD date key.
func ParseDateKey(s string) (time.Time, error) {
	t, err := time.Parse(DateKeyLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date key %q (expected YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

// MonthKey formats t's year and month, the prefix shared by all date keys
// of that month.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// LogBook maps date keys to log entries for a single account.
type LogBook map[string]LogEntry

// DayHours is one day's worked hours within a monthly trend series.
type DayHours struct {
	Day   int
	Hours float64
}

// MonthlySummary aggregates a log book over one calendar month.
type MonthlySummary struct {
	Month      time.Time
	TotalHours float64
	ActiveDays int
	OfficeDays int
	// Daily covers every day of the month in order; days without an
	// entry report 0.
	Daily []DayHours
}

// MonthlyAggregate filters entries whose date key falls in the month of the
// given reference time and sums their durations. The Daily series spans the
// whole month so trend displays need no gap handling.
func (b LogBook) MonthlyAggregate(month time.Time) MonthlySummary {
	prefix := MonthKey(month) + "-"
	s := MonthlySummary{Month: month}

	for key, entry := range b {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		s.TotalHours += entry.Duration
		s.ActiveDays++
		if entry.IsOffice {
			s.OfficeDays++
		}
	}

	days := daysInMonth(month)
	s.Daily = make([]DayHours, 0, days)
	for day := 1; day <= days; day++ {
		key := fmt.Sprintf("%s%02d", prefix, day)
		s.Daily = append(s.Daily, DayHours{Day: day, Hours: b[key].Duration})
	}
	return s
}

// ProgressFraction returns the fraction of the monthly target band consumed,
// capped at 1.0 for display. A non-positive maximum yields 0; the underlying
// total is never clamped.
func ProgressFraction(totalHours, maxHours float64) float64 {
	if maxHours <= 0 {
		return 0
	}
	f := totalHours / maxHours
	if f > 1 {
		return 1
	}
	return f
}

func daysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}
