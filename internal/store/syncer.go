package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// Syncer keeps the two tiers consistent. Every save writes the cache tier
// synchronously, then hands the payload to a per-resource background writer
// for the durable tier. Durable writes for one resource never run
// concurrently; a write issued while another is in flight replaces any
// queued payload, so the last mutation wins.
type Syncer struct {
	cache   Cache
	durable Durable // nil when running without a durable host
	logger  *slog.Logger

	mu      sync.Mutex
	writers map[string]*resourceWriter
	wg      sync.WaitGroup
}

type resourceWriter struct {
	busy       bool
	pending    []byte
	hasPending bool
}

// NewSyncer creates a Syncer over the given tiers. durable may be nil, in
// which case all operations degrade to the cache tier alone. A nil logger
// discards diagnostics.
func NewSyncer(cache Cache, durable Durable, logger *slog.Logger) *Syncer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Syncer{
		cache:   cache,
		durable: durable,
		logger:  logger,
		writers: make(map[string]*resourceWriter),
	}
}

// Save writes the cache tier synchronously and queues a best-effort durable
// write. By the time Save returns, any read through the cache observes the
// new value.
func (s *Syncer) Save(ctx context.Context, res Resource, data []byte) {
	s.cache.Set(res.Key, string(data))
	s.enqueue(res, data)
}

// SaveJSON marshals v and saves it under res.
func (s *Syncer) SaveJSON(ctx context.Context, res Resource, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", res.Key, err)
	}
	s.Save(ctx, res, data)
	return nil
}

// SaveBackup queues a durable-only write, bypassing the cache tier. It is
// used for side-effect exports like the CSV backup and never blocks or
// fails the primary save.
func (s *Syncer) SaveBackup(ctx context.Context, res Resource, data []byte) {
	s.enqueue(res, data)
}

// Load resolves a resource per the activation protocol: the cache value is
// the immediate candidate, and the durable tier, when it has the resource,
// overwrites it as the authoritative copy. While a durable write for the
// same resource is still queued the cache is newer and wins.
func (s *Syncer) Load(ctx context.Context, res Resource) ([]byte, bool) {
	cached, hasCached := s.cache.Get(res.Key)
	if hasCached && s.writePending(res.Key) {
		return []byte(cached), true
	}

	if s.durable != nil {
		data, err := s.durable.Load(ctx, res)
		switch {
		case err == nil:
			s.cache.Set(res.Key, string(data))
			return data, true
		case errors.Is(err, ErrNotExist):
			// fall through to the cache value
		default:
			s.logger.Warn("durable read failed", "resource", res.Key, "error", err)
		}
	}

	if hasCached {
		return []byte(cached), true
	}
	return nil, false
}

// LoadJSON loads res and unmarshals it into v. The boolean reports whether
// a value was found in either tier.
func (s *Syncer) LoadJSON(ctx context.Context, res Resource, v any) (bool, error) {
	data, ok := s.Load(ctx, res)
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("decoding %s: %w", res.Key, err)
	}
	return true, nil
}

// Flush blocks until every queued durable write has completed.
func (s *Syncer) Flush() {
	s.wg.Wait()
}

func (s *Syncer) enqueue(res Resource, data []byte) {
	if s.durable == nil {
		return
	}
	s.mu.Lock()
	w := s.writers[res.Key]
	if w == nil {
		w = &resourceWriter{}
		s.writers[res.Key] = w
	}
	if w.busy {
		w.pending = data
		w.hasPending = true
		s.mu.Unlock()
		return
	}
	w.busy = true
	s.wg.Add(1)
	s.mu.Unlock()
	go s.drain(res, w, data)
}

func (s *Syncer) drain(res Resource, w *resourceWriter, data []byte) {
	defer s.wg.Done()
	for {
		if err := s.durable.Save(context.Background(), res, data); err != nil {
			s.logger.Warn("durable write failed", "resource", res.Key, "error", err)
		}
		s.mu.Lock()
		if w.hasPending {
			data = w.pending
			w.pending = nil
			w.hasPending = false
			s.mu.Unlock()
			continue
		}
		w.busy = false
		s.mu.Unlock()
		return
	}
}

func (s *Syncer) writePending(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	w := s.writers[key]
	return w != nil && (w.busy || w.hasPending)
}
