// Package rediscache implements store.KeyValueCache on top of Redis using
// github.com/redis/go-redis/v9. A missing key maps to store.ErrCacheMiss;
// every other failure is reported as store.ErrCacheUnavailable so callers
// can degrade to the source of truth.
package rediscache
