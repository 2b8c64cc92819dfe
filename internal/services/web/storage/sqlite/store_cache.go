package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/louisbranch/translating.space/internal/services/web/storage"
)

// GetCacheEntry loads a cache payload by key. Expired entries are reported
// as missing.
func (s *Store) GetCacheEntry(ctx context.Context, cacheKey string) (storage.CacheEntry, bool, error) {
	if err := s.ready(ctx); err != nil {
		return storage.CacheEntry{}, false, err
	}
	cacheKey = strings.TrimSpace(cacheKey)
	if cacheKey == "" {
		return storage.CacheEntry{}, false, fmt.Errorf("cache key is required")
	}

	var entry storage.CacheEntry
	var createdAt, expiresAt int64
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT cache_key, payload, created_at, expires_at FROM cache_entries WHERE cache_key = ?`,
		cacheKey,
	).Scan(&entry.CacheKey, &entry.Payload, &createdAt, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.CacheEntry{}, false, nil
	}
	if err != nil {
		return storage.CacheEntry{}, false, fmt.Errorf("get cache entry: %w", err)
	}
	entry.CreatedAt = fromMillis(createdAt)
	entry.ExpiresAt = fromMillis(expiresAt)
	if entry.Expired(s.clock()) {
		return storage.CacheEntry{}, false, nil
	}
	return entry, true, nil
}

// PutCacheEntry upserts a cache payload by key.
func (s *Store) PutCacheEntry(ctx context.Context, entry storage.CacheEntry) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	entry.CacheKey = strings.TrimSpace(entry.CacheKey)
	if entry.CacheKey == "" {
		return fmt.Errorf("cache key is required")
	}
	if entry.Payload == nil {
		entry.Payload = []byte{}
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = s.clock()
	}
	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO cache_entries (cache_key, payload, created_at, expires_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(cache_key) DO UPDATE SET
		   payload = excluded.payload,
		   created_at = excluded.created_at,
		   expires_at = excluded.expires_at`,
		entry.CacheKey, entry.Payload, toMillis(entry.CreatedAt), toMillis(entry.ExpiresAt),
	)
	if err != nil {
		return fmt.Errorf("put cache entry: %w", err)
	}
	return nil
}

// DeleteExpiredCacheEntries removes entries whose expiry passed at now.
func (s *Store) DeleteExpiredCacheEntries(ctx context.Context, now time.Time) (int64, error) {
	if err := s.ready(ctx); err != nil {
		return 0, err
	}
	res, err := s.sqlDB.ExecContext(ctx,
		`DELETE FROM cache_entries WHERE expires_at > 0 AND expires_at <= ?`,
		toMillis(now),
	)
	if err != nil {
		return 0, fmt.Errorf("delete expired cache entries: %w", err)
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return deleted, nil
}
