package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore implements Durable with one file per resource under a data
// directory.
type FileStore struct {
	dir string
}

// NewFileStore creates a FileStore rooted at dir, creating it if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Save atomically writes the resource: the payload lands in a temp file
// first and is renamed over the target.
func (f *FileStore) Save(ctx context.Context, res Resource, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path := filepath.Join(f.dir, res.Filename())
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", res.Key, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replacing %s: %w", res.Key, err)
	}
	return nil
}

func (f *FileStore) Load(ctx context.Context, res Resource) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(f.dir, res.Filename()))
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%s: %w", res.Key, ErrNotExist)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", res.Key, err)
	}
	return data, nil
}
