package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DefaultPageCacheTTL is how long cached pages stay fresh.
const DefaultPageCacheTTL = 7 * 24 * time.Hour

// failureBackoff is how long a URL is skipped after repeated fetch failures.
const failureBackoff = 1 * time.Hour

// maxFailures is the failure count at which a URL enters backoff.
const maxFailures = 3

// CachedPage is a cached page row.
type CachedPage struct {
	ID        uuid.UUID
	URL       string
	HTML      string
	FetchedAt time.Time
}

// GetPage returns the cached page for url when it exists and is younger than
// ttl. Returns (nil, nil) on a cache miss.
func (d *DB) GetPage(ctx context.Context, url string, ttl time.Duration) (*CachedPage, error) {
	if ttl <= 0 {
		ttl = DefaultPageCacheTTL
	}

	row := d.Pool.QueryRowContext(ctx,
		`SELECT id, url, html, fetched_at FROM page_cache WHERE url = ?`, url)

	var page CachedPage
	var id string
	var fetchedAt int64
	if err := row.Scan(&id, &page.URL, &page.HTML, &fetchedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read page cache: %w", err)
	}

	page.FetchedAt = time.Unix(fetchedAt, 0)
	if time.Since(page.FetchedAt) > ttl {
		return nil, nil // stale
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("corrupt page cache id %q: %w", id, err)
	}
	page.ID = parsed

	return &page, nil
}

// PutPage stores (or replaces) the cached HTML for url and clears any failure
// record.
func (d *DB) PutPage(ctx context.Context, url, html string) (uuid.UUID, error) {
	id := uuid.New()
	_, err := d.Pool.ExecContext(ctx,
		`INSERT INTO page_cache (id, url, html, fetched_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(url) DO UPDATE SET html = excluded.html, fetched_at = excluded.fetched_at`,
		id.String(), url, html, time.Now().Unix())
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to write page cache: %w", err)
	}

	if _, err := d.Pool.ExecContext(ctx, `DELETE FROM fetch_failures WHERE url = ?`, url); err != nil {
		return uuid.Nil, fmt.Errorf("failed to clear failure record: %w", err)
	}

	return id, nil
}

// RecordFailure bumps the failure counter for url.
func (d *DB) RecordFailure(ctx context.Context, url string, cause error) error {
	msg := ""
	if cause != nil {
		msg = cause.Error()
	}
	_, err := d.Pool.ExecContext(ctx,
		`INSERT INTO fetch_failures (url, failures, last_error, last_attempt) VALUES (?, 1, ?, ?)
		 ON CONFLICT(url) DO UPDATE SET
			failures = fetch_failures.failures + 1,
			last_error = excluded.last_error,
			last_attempt = excluded.last_attempt`,
		url, msg, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("failed to record fetch failure: %w", err)
	}
	return nil
}

// ShouldSkip reports whether url is in failure backoff, with the reason.
func (d *DB) ShouldSkip(ctx context.Context, url string) (bool, string, error) {
	row := d.Pool.QueryRowContext(ctx,
		`SELECT failures, last_error, last_attempt FROM fetch_failures WHERE url = ?`, url)

	var failures int
	var lastError sql.NullString
	var lastAttempt int64
	if err := row.Scan(&failures, &lastError, &lastAttempt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, "", nil
		}
		return false, "", fmt.Errorf("failed to read failure record: %w", err)
	}

	if failures >= maxFailures && time.Since(time.Unix(lastAttempt, 0)) < failureBackoff {
		reason := fmt.Sprintf("%d consecutive fetch failures, backing off", failures)
		if lastError.Valid && lastError.String != "" {
			reason += ": " + lastError.String
		}
		return true, reason, nil
	}

	return false, "", nil
}
