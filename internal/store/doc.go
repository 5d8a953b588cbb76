// Package store defines the persistence and caching contracts used by the
// task service. The interfaces keep the cache-aside policy independent of
// PostgreSQL and Redis, which live under internal/platform.
package store
