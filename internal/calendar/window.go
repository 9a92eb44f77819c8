// Package calendar generates the ordered day sequences behind month and
// week views and answers date framing questions for them.
package calendar

import "time"

// Mode selects the span of a calendar window.
type Mode int

const (
	Month Mode = iota
	Week
)

func (m Mode) String() string {
	if m == Week {
		return "week"
	}
	return "month"
}

// HolidayFunc resolves a date to a public-holiday label. The second return
// value is false when the date is a regular day.
type HolidayFunc func(time.Time) (string, bool)

// NoHolidays is a HolidayFunc that never reports a holiday.
func NoHolidays(time.Time) (string, bool) { return "", false }

// StartOfMonth returns midnight on the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns midnight on the last day of t's month.
func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, -1)
}

// StartOfWeek returns midnight on the Sunday of the week containing t.
func StartOfWeek(t time.Time) time.Time {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// Window returns the ordered dates a calendar view displays for ref.
//
// Month mode spans complete weeks: from the Sunday of the week containing
// the first of the month through the Saturday of the week containing the
// last, so the grid includes days from adjacent months and its length is
// always a multiple of 7. Week mode is the 7 days of ref's week.
func Window(ref time.Time, mode Mode) []time.Time {
	var first, last time.Time
	switch mode {
	case Week:
		first = StartOfWeek(ref)
		last = first.AddDate(0, 0, 6)
	default:
		first = StartOfWeek(StartOfMonth(ref))
		last = StartOfWeek(EndOfMonth(ref)).AddDate(0, 0, 6)
	}

	var days []time.Time
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// Next advances ref by one month or one week depending on mode. Months are
// advanced without clamping the day of month, so stepping from a long
// month's last day may shift the day number.
func Next(ref time.Time, mode Mode) time.Time {
	if mode == Week {
		return ref.AddDate(0, 0, 7)
	}
	return ref.AddDate(0, 1, 0)
}

// Previous steps ref back by one month or one week depending on mode.
func Previous(ref time.Time, mode Mode) time.Time {
	if mode == Week {
		return ref.AddDate(0, 0, -7)
	}
	return ref.AddDate(0, -1, 0)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// SameMonth reports whether a and b fall in the same calendar month.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
