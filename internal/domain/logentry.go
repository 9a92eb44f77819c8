package domain

import (
	"math"
	"strconv"
	"strings"
)

// LogEntry is one day's recorded working time. Duration is derived from
// Start, End and BreakMinutes and recomputed on every save; it is never
// authored independently.
type LogEntry struct {
	Start        string  `json:"start"`
	End          string  `json:"end"`
	BreakMinutes int     `json:"breakTime"`
	IsOffice     bool    `json:"isOffice"`
	Duration     float64 `json:"duration"`
}

// clockToMinutes parses an HH:MM clock value into minutes since midnight.
// The second return value is false for empty or malformed input.
func clockToMinutes(s string) (int, bool) {
	h, m, ok := strings.Cut(s, ":")
	if !ok {
		return 0, false
	}
	hours, err := strconv.Atoi(h)
	if err != nil || hours < 0 || hours > 23 {
		return 0, false
	}
	minutes, err := strconv.Atoi(m)
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, false
	}
	return hours*60 + minutes, true
}

// ValidClock reports whether s is a well-formed HH:MM time of day.
func ValidClock(s string) bool {
	_, ok := clockToMinutes(s)
	return ok
}

// ComputeDuration derives worked hours from start/end clock values and a
// break in minutes. An absent or malformed start or end yields 0. An end
// earlier than the start is treated as crossing midnight exactly once.
// The result is floored at 0 and rounded to 2 decimal places.
func ComputeDuration(start, end string, breakMinutes int) float64 {
	startMin, ok := clockToMinutes(start)
	if !ok {
		return 0
	}
	endMin, ok := clockToMinutes(end)
	if !ok {
		return 0
	}
	if endMin < startMin {
		endMin += 24 * 60
	}
	worked := endMin - startMin - breakMinutes
	if worked < 0 {
		worked = 0
	}
	return math.Round(float64(worked)/60*100) / 100
}

// NewLogEntry builds a LogEntry with its Duration derived from the inputs.
func NewLogEntry(start, end string, breakMinutes int, isOffice bool) LogEntry {
	return LogEntry{
		Start:        start,
		End:          end,
		BreakMinutes: breakMinutes,
		IsOffice:     isOffice,
		Duration:     ComputeDuration(start, end, breakMinutes),
	}
}
