package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/Abdulrahman-PROG/Containerized-Web-App/internal/store"
)

// MockCache implements store.KeyValueCache for testing.
// Without overrides it behaves as an in-memory cache that ignores TTLs.
type MockCache struct {
	callCounter

	GetFn    func(ctx context.Context, key string) ([]byte, error)
	SetFn    func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeleteFn func(ctx context.Context, key string) error

	mu      sync.Mutex
	entries map[string][]byte
	// LastTTL is the ttl passed to the most recent Set.
	LastTTL time.Duration
}

var _ store.KeyValueCache = (*MockCache)(nil)

// Get implements the KeyValueCache.Get method
func (m *MockCache) Get(ctx context.Context, key string) ([]byte, error) {
	m.record("Get")
	if m.GetFn != nil {
		return m.GetFn(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.entries[key]
	if !ok {
		return nil, store.ErrCacheMiss
	}
	return value, nil
}

// Set implements the KeyValueCache.Set method
func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.record("Set")
	if m.SetFn != nil {
		return m.SetFn(ctx, key, value, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.entries == nil {
		m.entries = make(map[string][]byte)
	}
	m.entries[key] = value
	m.LastTTL = ttl
	return nil
}

// Delete implements the KeyValueCache.Delete method
func (m *MockCache) Delete(ctx context.Context, key string) error {
	m.record("Delete")
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}

// Has reports whether key currently holds a value.
func (m *MockCache) Has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.entries[key]
	return ok
}
