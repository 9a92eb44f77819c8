package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ykohira/worktime/internal/domain"
)

func TestJSONBackup_RoundTrip(t *testing.T) {
	book := domain.LogBook{
		"2024-06-03": domain.NewLogEntry("09:00", "18:00", 60, true),
		"2024-06-04": domain.NewLogEntry("22:00", "06:00", 30, false),
	}
	settings := domain.DefaultSettings()
	settings.MaxHours = 160

	data, err := JSONBackup(book, settings, "acc1")
	require.NoError(t, err)

	parsed, err := ParseBackup(data)
	require.NoError(t, err)
	assert.Equal(t, book, parsed.Logs)
	require.NotNil(t, parsed.Settings)
	assert.Equal(t, settings, *parsed.Settings)
	assert.Equal(t, "acc1", parsed.AccountID)
}

func TestParseBackup_RecomputesDuration(t *testing.T) {
	// A tampered duration must not survive import.
	data := []byte(`{"logs":{"2024-06-03":{"start":"09:00","end":"18:00","breakTime":60,"isOffice":false,"duration":99}},"accountId":"a"}`)

	parsed, err := ParseBackup(data)
	require.NoError(t, err)
	assert.Equal(t, 8.0, parsed.Logs["2024-06-03"].Duration)
}

func TestParseBackup_MalformedJSON(t *testing.T) {
	_, err := ParseBackup([]byte(`{"logs": [not json`))
	assert.Error(t, err)
}

func TestParseBackup_RejectsBadEntries(t *testing.T) {
	cases := map[string]string{
		"bad date key":   `{"logs":{"June 3rd":{"start":"09:00","end":"18:00","breakTime":0}}}`,
		"negative break": `{"logs":{"2024-06-03":{"start":"09:00","end":"18:00","breakTime":-10}}}`,
		"bad start":      `{"logs":{"2024-06-03":{"start":"9am","end":"18:00","breakTime":0}}}`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseBackup([]byte(payload))
			assert.Error(t, err)
		})
	}
}

func TestParseBackup_RejectsBadSettings(t *testing.T) {
	cases := map[string]string{
		"bad default start":    `{"logs":{},"settings":{"defaultStart":"25:99"}}`,
		"bad default end":      `{"logs":{},"settings":{"defaultEnd":"6pm"}}`,
		"negative break":       `{"settings":{"defaultBreak":-5}}`,
		"negative target band": `{"settings":{"minHours":-1}}`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseBackup([]byte(payload))
			assert.Error(t, err)
		})
	}
}

func TestParseBackup_PartialDocuments(t *testing.T) {
	// Logs without settings, and settings without logs, are both valid.
	parsed, err := ParseBackup([]byte(`{"logs":{},"accountId":"a"}`))
	require.NoError(t, err)
	assert.Nil(t, parsed.Settings)

	parsed, err = ParseBackup([]byte(`{"settings":{"defaultStart":"10:00"},"accountId":"a"}`))
	require.NoError(t, err)
	assert.Nil(t, parsed.Logs)
	assert.Equal(t, "10:00", parsed.Settings.DefaultStart)
}

func TestJSONFilename(t *testing.T) {
	now := time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "backup_20240615.json", JSONFilename(now))
}
