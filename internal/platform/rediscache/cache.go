package rediscache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Abdulrahman-PROG/Containerized-Web-App/internal/config"
	"github.com/Abdulrahman-PROG/Containerized-Web-App/internal/store"
)

const (
	dialTimeout  = 2 * time.Second
	readTimeout  = time.Second
	writeTimeout = time.Second
)

// Cache is a Redis-backed store.KeyValueCache.
type Cache struct {
	client redis.UniversalClient
}

// Ensure Cache implements store.KeyValueCache interface
var _ store.KeyValueCache = (*Cache)(nil)

// New wraps an existing Redis client. The caller owns the client and closes it.
func New(client redis.UniversalClient) *Cache {
	if client == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("rediscache.New: client is nil")
	}
	return &Cache{client: client}
}

// NewClient builds a Redis client from configuration. It does not connect;
// the first command dials lazily.
func NewClient(cfg config.CacheConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  dialTimeout,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	})
}

// Get implements store.KeyValueCache.Get.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, store.ErrCacheMiss
		}
		return nil, fmt.Errorf("%w: get %q: %v", store.ErrCacheUnavailable, key, err)
	}
	return data, nil
}

// Set implements store.KeyValueCache.Set. Redis expires the key after ttl.
func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("%w: set %q: %v", store.ErrCacheUnavailable, key, err)
	}
	return nil
}

// Delete implements store.KeyValueCache.Delete. DEL on an absent key is a no-op.
func (c *Cache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("%w: delete %q: %v", store.ErrCacheUnavailable, key, err)
	}
	return nil
}

// Ping checks that Redis answers.
func (c *Cache) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: ping: %v", store.ErrCacheUnavailable, err)
	}
	return nil
}
