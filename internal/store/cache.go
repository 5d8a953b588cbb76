package store

import (
	"context"
	"time"
)

// KeyValueCache is the narrow contract the list cache needs from a
// key-value cache. Expiry is enforced by the cache itself.
type KeyValueCache interface {
	// Get returns the value stored under key.
	// Returns ErrCacheMiss if the key is absent or expired.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key for ttl.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
