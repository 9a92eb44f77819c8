package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeDuration_StandardDay(t *testing.T) {
	assert.Equal(t, 8.0, ComputeDuration("09:00", "18:00", 60))
}

func TestComputeDuration_OvernightShift(t *testing.T) {
	// End earlier than start wraps exactly one day.
	assert.Equal(t, 7.5, ComputeDuration("22:00", "06:00", 30))
}

func TestComputeDuration_AbsentTimes(t *testing.T) {
	assert.Equal(t, 0.0, ComputeDuration("", "18:00", 60))
	assert.Equal(t, 0.0, ComputeDuration("09:00", "", 60))
	assert.Equal(t, 0.0, ComputeDuration("", "", 0))
}

func TestComputeDuration_MalformedTimesDegradeToZero(t *testing.T) {
	assert.Equal(t, 0.0, ComputeDuration("nine", "18:00", 0))
	assert.Equal(t, 0.0, ComputeDuration("09:00", "25:00", 0))
	assert.Equal(t, 0.0, ComputeDuration("09:61", "18:00", 0))
}

func TestComputeDuration_BreakExceedsInterval(t *testing.T) {
	// Floored at zero, never negative.
	assert.Equal(t, 0.0, ComputeDuration("09:00", "09:30", 60))
}

func TestComputeDuration_RoundsToTwoDecimals(t *testing.T) {
	// 8h25m worked = 8.4166... -> 8.42
	assert.Equal(t, 8.42, ComputeDuration("09:00", "17:25", 0))
	// 20 minutes = 0.3333... -> 0.33
	assert.Equal(t, 0.33, ComputeDuration("09:00", "09:20", 0))
}

func TestNewLogEntry_DerivesDuration(t *testing.T) {
	e := NewLogEntry("09:00", "17:30", 45, true)
	assert.Equal(t, 7.75, e.Duration)
	assert.True(t, e.IsOffice)
	assert.Equal(t, 45, e.BreakMinutes)
}

func TestValidClock(t *testing.T) {
	assert.True(t, ValidClock("00:00"))
	assert.True(t, ValidClock("23:59"))
	assert.False(t, ValidClock(""))
	assert.False(t, ValidClock("24:00"))
	assert.False(t, ValidClock("12"))
}
