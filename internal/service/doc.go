// Package service contains the task use cases. It orchestrates the task store
// (defined in internal/store) and the list cache so the HTTP layer only deals
// with five operations: create, get, list, update and delete.
//
// Reads of the full list go through ListCache using a cache-aside policy:
// a hit is served without touching the store, a miss reads the store and
// repopulates the cache. Every successful mutation invalidates the cached
// list. Cache failures never leave this package; they are logged and the
// request falls back to the store.
//
// The service layer depends on domain entities and store interfaces, never on
// the Postgres or Redis implementations.
package service
