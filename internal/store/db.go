// Package store provides the local SQLite page cache.
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

// DB wraps the SQLite connection pool.
type DB struct {
	Pool *sql.DB
}

// DefaultPath returns the cache database location under the user cache
// directory, creating the parent directory as needed.
func DefaultPath() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user cache directory: %w", err)
	}
	dir := filepath.Join(base, "apply-agent")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create cache directory: %w", err)
	}
	return filepath.Join(dir, "pages.db"), nil
}

// Open opens (or creates) the cache database at path and applies the schema.
func Open(path string) (*DB, error) {
	// modernc sqlite uses DSN like: file:foo.db?_pragma=busy_timeout(5000)
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", path)

	pool, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	pool.SetMaxOpenConns(1) // sqlite wants a single writer
	pool.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := pool.PingContext(ctx); err != nil {
		_ = pool.Close()
		return nil, err
	}

	db := &DB{Pool: pool}
	if err := db.migrate(ctx); err != nil {
		_ = pool.Close()
		return nil, err
	}

	return db, nil
}

// Close closes the underlying pool.
func (d *DB) Close() error {
	if d == nil || d.Pool == nil {
		return nil
	}
	return d.Pool.Close()
}

func (d *DB) migrate(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS page_cache (
	id          TEXT PRIMARY KEY,
	url         TEXT NOT NULL UNIQUE,
	html        TEXT NOT NULL,
	fetched_at  INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS fetch_failures (
	url          TEXT PRIMARY KEY,
	failures     INTEGER NOT NULL DEFAULT 1,
	last_error   TEXT,
	last_attempt INTEGER NOT NULL
);
`
	if _, err := d.Pool.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply cache schema: %w", err)
	}
	return nil
}
