package mt

import (
	"context"
	"encoding/json"
	"time"

	"github.com/louisbranch/translating.space/internal/platform/checksum"
	"github.com/louisbranch/translating.space/internal/services/web/storage"
	"go.uber.org/zap"
)

// CacheStore persists cached suggestion lists.
type CacheStore interface {
	GetCacheEntry(ctx context.Context, cacheKey string) (storage.CacheEntry, bool, error)
	PutCacheEntry(ctx context.Context, entry storage.CacheEntry) error
}

// CachedService wraps a remote service with a persistent result cache.
type CachedService struct {
	next   Service
	store  CacheStore
	ttl    time.Duration
	now    func() time.Time
	logger *zap.Logger
}

// Cached wraps next so results are reused for ttl. Cache failures never fail
// a translation.
func Cached(next Service, store CacheStore, ttl time.Duration, logger *zap.Logger) Service {
	if next == nil || store == nil || ttl <= 0 {
		return next
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedService{next: next, store: store, ttl: ttl, now: time.Now, logger: logger}
}

// ID returns the wrapped service id.
func (c *CachedService) ID() string { return c.next.ID() }

// Name returns the wrapped service name.
func (c *CachedService) Name() string { return c.next.Name() }

// Supports defers to the wrapped service.
func (c *CachedService) Supports(source, target string) bool {
	return Supports(c.next, source, target)
}

// Translate serves from cache when possible.
func (c *CachedService) Translate(ctx context.Context, req Request) ([]Suggestion, error) {
	key := CacheKey(c.next.ID(), req)
	if entry, ok, err := c.store.GetCacheEntry(ctx, key); err != nil {
		c.logger.Warn("read machine translation cache", zap.String("key", key), zap.Error(err))
	} else if ok {
		var cached []Suggestion
		if err := json.Unmarshal(entry.Payload, &cached); err == nil {
			return cached, nil
		}
	}

	suggestions, err := c.next.Translate(ctx, req)
	if err != nil {
		return nil, err
	}
	payload, err := json.Marshal(suggestions)
	if err != nil {
		return suggestions, nil
	}
	now := c.now().UTC()
	if err := c.store.PutCacheEntry(ctx, storage.CacheEntry{
		CacheKey:  key,
		Payload:   payload,
		CreatedAt: now,
		ExpiresAt: now.Add(c.ttl),
	}); err != nil {
		c.logger.Warn("write machine translation cache", zap.String("key", key), zap.Error(err))
	}
	return suggestions, nil
}

// CacheKey identifies a request to one service.
func CacheKey(serviceID string, req Request) string {
	return "mt:" + serviceID + ":" + NormalizeLanguage(req.SourceLanguage) + ":" + NormalizeLanguage(req.TargetLanguage) + ":" + checksum.Unit(req.Text, "")
}
