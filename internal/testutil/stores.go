// Package testutil provides shared helpers for wiring stores in tests.
package testutil

import (
	"testing"

	"github.com/ykohira/worktime/internal/store"
)

// NewTestSyncer creates a Syncer over a fresh in-memory cache and an
// in-memory SQLite durable tier. The database is closed when the test
// completes.
func NewTestSyncer(t *testing.T) *store.Syncer {
	t.Helper()
	durable, err := store.NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	t.Cleanup(func() {
		durable.Close()
	})
	return store.NewSyncer(store.NewMemoryCache(), durable, nil)
}

// NewCacheOnlySyncer creates a Syncer with no durable tier, for exercising
// degraded-mode behavior.
func NewCacheOnlySyncer(t *testing.T) *store.Syncer {
	t.Helper()
	return store.NewSyncer(store.NewMemoryCache(), nil, nil)
}
