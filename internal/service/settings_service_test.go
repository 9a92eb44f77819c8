package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ykohira/worktime/internal/domain"
	"github.com/ykohira/worktime/internal/store"
	"github.com/ykohira/worktime/internal/testutil"
)

func TestSettingsService_DefaultsWhenAbsent(t *testing.T) {
	svc := NewSettingsService(testutil.NewTestSyncer(t))

	settings, err := svc.Get(context.Background(), "default")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), settings)
}

func TestSettingsService_PutGetRoundTrip(t *testing.T) {
	svc := NewSettingsService(testutil.NewTestSyncer(t))
	ctx := context.Background()

	want := domain.Settings{
		DefaultStart: "10:00",
		DefaultEnd:   "19:00",
		DefaultBreak: 45,
		MinHours:     120,
		MaxHours:     160,
		ThemeColor:   "#22c55e",
	}
	require.NoError(t, svc.Put(ctx, "default", want))

	got, err := svc.Get(ctx, "default")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSettingsService_PartialDocumentKeepsDefaults(t *testing.T) {
	syncer := testutil.NewTestSyncer(t)
	svc := NewSettingsService(syncer)
	ctx := context.Background()

	// An older stored document missing newer fields.
	syncer.Save(ctx, store.SettingsResource("default"), []byte(`{"defaultBreak": 30}`))

	settings, err := svc.Get(ctx, "default")
	require.NoError(t, err)
	assert.Equal(t, 30, settings.DefaultBreak)
	assert.Equal(t, "09:00", settings.DefaultStart)
	assert.Equal(t, 180.0, settings.MaxHours)
}

func TestSettingsService_PutValidates(t *testing.T) {
	svc := NewSettingsService(testutil.NewTestSyncer(t))
	ctx := context.Background()

	bad := domain.DefaultSettings()
	bad.DefaultStart = "25:00"
	assert.Error(t, svc.Put(ctx, "default", bad))

	bad = domain.DefaultSettings()
	bad.DefaultBreak = -1
	assert.Error(t, svc.Put(ctx, "default", bad))

	bad = domain.DefaultSettings()
	bad.MaxHours = -10
	assert.Error(t, svc.Put(ctx, "default", bad))
}

func TestSettingsService_ScopedByAccount(t *testing.T) {
	svc := NewSettingsService(testutil.NewTestSyncer(t))
	ctx := context.Background()

	changed := domain.DefaultSettings()
	changed.MaxHours = 100
	require.NoError(t, svc.Put(ctx, "acc-a", changed))

	other, err := svc.Get(ctx, "acc-b")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), other)
}
