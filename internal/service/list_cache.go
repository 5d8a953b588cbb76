package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/Abdulrahman-PROG/Containerized-Web-App/internal/domain"
	"github.com/Abdulrahman-PROG/Containerized-Web-App/internal/platform/logger"
	"github.com/Abdulrahman-PROG/Containerized-Web-App/internal/store"
)

const (
	// TasksCacheKey is the single key holding the serialized task list.
	TasksCacheKey = "tasks"

	// DefaultListTTL bounds how stale a cached list may be.
	DefaultListTTL = 60 * time.Second
)

// ListCache applies the cache-aside policy to the full task list.
// All methods are best-effort: cache errors are logged and absorbed.
// A nil backing cache behaves as a cache that always misses.
type ListCache struct {
	cache  store.KeyValueCache
	ttl    time.Duration
	logger *slog.Logger
}

// NewListCache creates a ListCache over cache. A non-positive ttl selects DefaultListTTL.
func NewListCache(cache store.KeyValueCache, ttl time.Duration, logger *slog.Logger) *ListCache {
	if ttl <= 0 {
		ttl = DefaultListTTL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ListCache{
		cache:  cache,
		ttl:    ttl,
		logger: logger.With(slog.String("component", "list_cache")),
	}
}

// TTL returns the expiry applied to stored lists.
func (c *ListCache) TTL() time.Duration {
	return c.ttl
}

// Load returns the cached task list and true on a hit.
// A missing key, an unreachable cache or an undecodable blob is a miss.
func (c *ListCache) Load(ctx context.Context) ([]domain.Task, bool) {
	if c.cache == nil {
		return nil, false
	}
	log := logger.FromContextOrDefault(ctx, c.logger)

	data, err := c.cache.Get(ctx, TasksCacheKey)
	if err != nil {
		if !errors.Is(err, store.ErrCacheMiss) {
			log.Warn("task list cache read failed",
				slog.String("key", TasksCacheKey),
				slog.String("error", err.Error()))
		}
		return nil, false
	}

	var tasks []domain.Task
	if err := json.Unmarshal(data, &tasks); err != nil || tasks == nil {
		log.Warn("discarding undecodable task list cache entry",
			slog.String("key", TasksCacheKey),
			slog.Int("bytes", len(data)))
		c.Invalidate(ctx)
		return nil, false
	}

	log.Debug("task list cache hit", slog.Int("count", len(tasks)))
	return tasks, true
}

// Store writes tasks under TasksCacheKey with the configured TTL.
func (c *ListCache) Store(ctx context.Context, tasks []domain.Task) {
	if c.cache == nil {
		return
	}
	log := logger.FromContextOrDefault(ctx, c.logger)

	if tasks == nil {
		tasks = []domain.Task{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		log.Warn("failed to encode task list for cache", slog.String("error", err.Error()))
		return
	}

	if err := c.cache.Set(ctx, TasksCacheKey, data, c.ttl); err != nil {
		log.Warn("task list cache write failed",
			slog.String("key", TasksCacheKey),
			slog.String("error", err.Error()))
	}
}

// Invalidate removes the cached list.
func (c *ListCache) Invalidate(ctx context.Context) {
	if c.cache == nil {
		return
	}

	if err := c.cache.Delete(ctx, TasksCacheKey); err != nil {
		logger.FromContextOrDefault(ctx, c.logger).Warn("task list cache invalidation failed",
			slog.String("key", TasksCacheKey),
			slog.String("error", err.Error()))
	}
}
