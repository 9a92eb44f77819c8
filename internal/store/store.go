// Package store implements the dual-tier persistence discipline: a fast
// always-available cache tier plus a slower durable tier, reconciled by a
// Syncer on every mutation and on account activation.
package store

import (
	"context"
	"errors"
)

// ErrNotExist reports that a resource has no value in the durable tier.
var ErrNotExist = errors.New("resource does not exist")

// Cache is the fast key-value tier, scoped to the process/session. It is
// written synchronously on every mutation and is the fallback of record
// when the durable tier is unavailable.
type Cache interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// Durable is the slower, authoritative-when-present tier. Load returns an
// error wrapping ErrNotExist when the resource has never been saved.
type Durable interface {
	Save(ctx context.Context, res Resource, data []byte) error
	Load(ctx context.Context, res Resource) ([]byte, error)
}
