package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteStore_SaveAndLoad(t *testing.T) {
	s := newTestSQLiteStore(t)
	ctx := context.Background()
	res := LogsResource("acc1")

	require.NoError(t, s.Save(ctx, res, []byte(`{"x":1}`)))
	got, err := s.Load(ctx, res)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"x":1}`), got)
}

func TestSQLiteStore_UpsertReplaces(t *testing.T) {
	s := newTestSQLiteStore(t)
	ctx := context.Background()
	res := SettingsResource("acc1")

	require.NoError(t, s.Save(ctx, res, []byte("one")))
	require.NoError(t, s.Save(ctx, res, []byte("two")))

	got, err := s.Load(ctx, res)
	require.NoError(t, err)
	assert.Equal(t, []byte("two"), got)
}

func TestSQLiteStore_LoadMissing(t *testing.T) {
	s := newTestSQLiteStore(t)
	_, err := s.Load(context.Background(), LogsResource("ghost"))
	assert.ErrorIs(t, err, ErrNotExist)
}

func TestSQLiteStore_KeysAreIsolated(t *testing.T) {
	s := newTestSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, LogsResource("a"), []byte("logs-a")))
	require.NoError(t, s.Save(ctx, LogsResource("b"), []byte("logs-b")))
	require.NoError(t, s.Save(ctx, SettingsResource("a"), []byte("settings-a")))

	got, err := s.Load(ctx, LogsResource("a"))
	require.NoError(t, err)
	assert.Equal(t, []byte("logs-a"), got)
}
