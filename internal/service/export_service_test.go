package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ykohira/worktime/internal/calendar"
	"github.com/ykohira/worktime/internal/domain"
	"github.com/ykohira/worktime/internal/testutil"
)

func newExportFixture(t *testing.T) (AccountService, LogService, SettingsService, ExportService) {
	t.Helper()
	syncer := testutil.NewTestSyncer(t)
	accounts := NewAccountService(syncer)
	logs := NewLogService(syncer, accounts, calendar.JapaneseHolidays)
	settings := NewSettingsService(syncer)
	exports := NewExportService(accounts, logs, settings, calendar.JapaneseHolidays)
	return accounts, logs, settings, exports
}

func TestExportService_CSV(t *testing.T) {
	_, logs, _, exports := newExportFixture(t)
	ctx := context.Background()

	_, err := logs.Upsert(ctx, "default", "2024-06-03", "09:00", "18:00", 60, true)
	require.NoError(t, err)

	data, filename, err := exports.CSV(ctx, "default", time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "work_log_メイン案件_202406.csv", filename)
	assert.True(t, bytes.Contains(data, []byte("09:00")))
}

func TestExportService_JSONRoundTripAcrossAccounts(t *testing.T) {
	accounts, logs, settings, exports := newExportFixture(t)
	ctx := context.Background()

	_, err := logs.Upsert(ctx, "default", "2024-06-03", "09:00", "18:00", 60, true)
	require.NoError(t, err)
	custom := domain.DefaultSettings()
	custom.MinHours = 100
	require.NoError(t, settings.Put(ctx, "default", custom))

	data, filename, err := exports.JSON(ctx, "default")
	require.NoError(t, err)
	assert.Contains(t, filename, "backup_")

	// Restoring into a fresh account reproduces book and settings.
	other, err := accounts.Create(ctx, "Restored")
	require.NoError(t, err)
	require.NoError(t, exports.Import(ctx, other.ID, data))

	book, err := logs.Book(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, 8.0, book["2024-06-03"].Duration)

	restored, err := settings.Get(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, custom, restored)
}

func TestExportService_ImportMalformedLeavesStateUntouched(t *testing.T) {
	_, logs, _, exports := newExportFixture(t)
	ctx := context.Background()

	_, err := logs.Upsert(ctx, "default", "2024-06-03", "09:00", "18:00", 60, false)
	require.NoError(t, err)

	err = exports.Import(ctx, "default", []byte(`{"logs": {"2024-06-04": {"breakTime": -1}}}`))
	require.Error(t, err)

	book, err := logs.Book(ctx, "default")
	require.NoError(t, err)
	require.Len(t, book, 1)
	assert.Contains(t, book, "2024-06-03")
}

func TestExportService_ImportBadSettingsLeavesBookUntouched(t *testing.T) {
	// Valid logs with settings the apply step would reject must fail at
	// parse time; the log book must never be replaced first.
	_, logs, settings, exports := newExportFixture(t)
	ctx := context.Background()

	_, err := logs.Upsert(ctx, "default", "2024-06-03", "09:00", "18:00", 60, false)
	require.NoError(t, err)

	err = exports.Import(ctx, "default", []byte(`{"logs":{},"settings":{"defaultStart":"25:99"}}`))
	require.Error(t, err)

	book, err := logs.Book(ctx, "default")
	require.NoError(t, err)
	require.Len(t, book, 1)
	assert.Contains(t, book, "2024-06-03")

	current, err := settings.Get(ctx, "default")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), current)
}

func TestExportService_ImportReplacesWholeBook(t *testing.T) {
	_, logs, _, exports := newExportFixture(t)
	ctx := context.Background()

	_, err := logs.Upsert(ctx, "default", "2024-05-01", "09:00", "18:00", 60, false)
	require.NoError(t, err)

	payload := []byte(`{"logs":{"2024-06-10":{"start":"10:00","end":"15:00","breakTime":0,"isOffice":true,"duration":0}},"accountId":"default"}`)
	require.NoError(t, exports.Import(ctx, "default", payload))

	book, err := logs.Book(ctx, "default")
	require.NoError(t, err)
	require.Len(t, book, 1, "import replaces the entire mapping")
	assert.Equal(t, 5.0, book["2024-06-10"].Duration)
}
