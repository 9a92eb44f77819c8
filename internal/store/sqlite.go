package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements Durable with a single key-value table in a SQLite
// database. If path is ":memory:", an in-memory database is used.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (and if necessary creates) the database at path.
// Sets WAL mode for better concurrent read performance.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	schema := `CREATE TABLE IF NOT EXISTS resources (
		key        TEXT PRIMARY KEY,
		value      BLOB NOT NULL,
		updated_at TEXT NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating resources table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Save(ctx context.Context, res Resource, data []byte) error {
	query := `INSERT INTO resources (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	_, err := s.db.ExecContext(ctx, query, res.Key, data, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("saving %s: %w", res.Key, err)
	}
	return nil
}

func (s *SQLiteStore) Load(ctx context.Context, res Resource) ([]byte, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM resources WHERE key = ?`, res.Key).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%s: %w", res.Key, ErrNotExist)
	}
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", res.Key, err)
	}
	return data, nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
