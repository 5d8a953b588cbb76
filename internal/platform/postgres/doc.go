// Package postgres provides the PostgreSQL implementation of store.TaskStore.
// It handles per-operation connection scoping, query execution, mapping
// between rows and domain.Task, and applying the embedded schema with goose.
package postgres
