package store

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDurable is an in-memory Durable whose saves can be gated to simulate
// a slow tier.
type fakeDurable struct {
	mu     sync.Mutex
	values map[string][]byte
	saves  int
	gate   chan struct{} // when non-nil, Save blocks until a token arrives
}

func newFakeDurable() *fakeDurable {
	return &fakeDurable{values: make(map[string][]byte)}
}

func (d *fakeDurable) Save(ctx context.Context, res Resource, data []byte) error {
	if d.gate != nil {
		<-d.gate
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.saves++
	d.values[res.Key] = append([]byte(nil), data...)
	return nil
}

func (d *fakeDurable) Load(ctx context.Context, res Resource) ([]byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	v, ok := d.values[res.Key]
	if !ok {
		return nil, fmt.Errorf("%s: %w", res.Key, ErrNotExist)
	}
	return v, nil
}

type failingDurable struct{}

func (failingDurable) Save(context.Context, Resource, []byte) error {
	return fmt.Errorf("disk on fire")
}

func (failingDurable) Load(context.Context, Resource) ([]byte, error) {
	return nil, fmt.Errorf("disk on fire")
}

func TestSyncer_SaveWritesBothTiers(t *testing.T) {
	durable := newFakeDurable()
	s := NewSyncer(NewMemoryCache(), durable, nil)
	res := LogsResource("acc1")

	s.Save(context.Background(), res, []byte(`{"a":1}`))

	// Cache is written synchronously.
	cached, ok := s.cache.Get(res.Key)
	require.True(t, ok)
	assert.Equal(t, `{"a":1}`, cached)

	s.Flush()
	got, err := durable.Load(context.Background(), res)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":1}`), got)
}

func TestSyncer_RapidSavesCoalesce(t *testing.T) {
	durable := newFakeDurable()
	durable.gate = make(chan struct{})
	s := NewSyncer(NewMemoryCache(), durable, nil)
	res := SettingsResource("acc1")

	s.Save(context.Background(), res, []byte("v1"))
	s.Save(context.Background(), res, []byte("v2"))
	s.Save(context.Background(), res, []byte("v3"))

	durable.gate <- struct{}{} // release v1
	durable.gate <- struct{}{} // release the coalesced tail
	s.Flush()

	assert.Equal(t, 2, durable.saves, "intermediate write should be superseded")
	got, err := durable.Load(context.Background(), res)
	require.NoError(t, err)
	assert.Equal(t, []byte("v3"), got, "last mutation wins")
}

func TestSyncer_LoadPrefersDurable(t *testing.T) {
	durable := newFakeDurable()
	durable.values["logs-acc1"] = []byte("durable")
	s := NewSyncer(NewMemoryCache(), durable, nil)
	res := LogsResource("acc1")
	s.cache.Set(res.Key, "cached")

	data, ok := s.Load(context.Background(), res)
	require.True(t, ok)
	assert.Equal(t, []byte("durable"), data)

	// The durable value is now the cache's last known good.
	cached, _ := s.cache.Get(res.Key)
	assert.Equal(t, "durable", cached)
}

func TestSyncer_LoadFallsBackToCache(t *testing.T) {
	s := NewSyncer(NewMemoryCache(), newFakeDurable(), nil)
	res := LogsResource("acc1")
	s.cache.Set(res.Key, "cached")

	data, ok := s.Load(context.Background(), res)
	require.True(t, ok)
	assert.Equal(t, []byte("cached"), data, "absent durable value leaves the cache standing")
}

func TestSyncer_LoadAbsentEverywhere(t *testing.T) {
	s := NewSyncer(NewMemoryCache(), newFakeDurable(), nil)
	_, ok := s.Load(context.Background(), LogsResource("missing"))
	assert.False(t, ok)
}

func TestSyncer_DegradesWithoutDurableTier(t *testing.T) {
	s := NewSyncer(NewMemoryCache(), nil, nil)
	res := AccountsResource()

	s.Save(context.Background(), res, []byte("only-cache"))
	s.Flush()

	data, ok := s.Load(context.Background(), res)
	require.True(t, ok)
	assert.Equal(t, []byte("only-cache"), data)
}

func TestSyncer_DurableFailureNeverAbortsMutation(t *testing.T) {
	s := NewSyncer(NewMemoryCache(), failingDurable{}, nil)
	res := LogsResource("acc1")

	s.Save(context.Background(), res, []byte("value"))
	s.Flush()

	data, ok := s.Load(context.Background(), res)
	require.True(t, ok)
	assert.Equal(t, []byte("value"), data)
}

func TestSyncer_CacheWinsWhileWriteInFlight(t *testing.T) {
	durable := newFakeDurable()
	durable.values["logs-acc1"] = []byte("stale")
	durable.gate = make(chan struct{})
	s := NewSyncer(NewMemoryCache(), durable, nil)
	res := LogsResource("acc1")

	s.Save(context.Background(), res, []byte("fresh"))

	data, ok := s.Load(context.Background(), res)
	require.True(t, ok)
	assert.Equal(t, []byte("fresh"), data, "a queued write means the cache is newer than the durable tier")

	durable.gate <- struct{}{}
	s.Flush()
}

func TestSyncer_SaveBackupBypassesCache(t *testing.T) {
	durable := newFakeDurable()
	s := NewSyncer(NewMemoryCache(), durable, nil)
	res := BackupResource("acc1")

	s.SaveBackup(context.Background(), res, []byte("csv,data"))
	s.Flush()

	_, inCache := s.cache.Get(res.Key)
	assert.False(t, inCache)
	got, err := durable.Load(context.Background(), res)
	require.NoError(t, err)
	assert.Equal(t, []byte("csv,data"), got)
}

func TestSyncer_JSONHelpers(t *testing.T) {
	s := NewSyncer(NewMemoryCache(), newFakeDurable(), nil)
	res := SettingsResource("acc1")

	in := map[string]int{"defaultBreak": 45}
	require.NoError(t, s.SaveJSON(context.Background(), res, in))
	s.Flush()

	var out map[string]int
	ok, err := s.LoadJSON(context.Background(), res, &out)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, in, out)
}
