package postgres

import (
	"testing"

	"github.com/Abdulrahman-PROG/Containerized-Web-App/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlogGooseLogger(t *testing.T) {
	l, buf := logger.NewTestLogger()
	gooseLogger := &slogGooseLogger{logger: l}

	gooseLogger.Printf("OK   %s (%s)\n", "00001_create_tasks_table.sql", "3ms")
	gooseLogger.Fatalf("failed to run migration %d", 2)

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "OK   00001_create_tasks_table.sql (3ms)", entries[0]["msg"])
	assert.Equal(t, "INFO", entries[0]["level"])
	assert.Equal(t, "failed to run migration 2", entries[1]["msg"])
	assert.Equal(t, "ERROR", entries[1]["level"])

	// A zero value falls back to the default logger instead of panicking.
	assert.NotPanics(t, func() { (&slogGooseLogger{}).Printf("hello") })
}

func TestEmbeddedMigrations(t *testing.T) {
	entries, err := embeddedMigrations.ReadDir(migrationsDir)
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, "00001_create_tasks_table.sql", entries[0].Name())

	content, err := embeddedMigrations.ReadFile(migrationsDir + "/" + entries[0].Name())
	require.NoError(t, err)
	schema := string(content)
	assert.Contains(t, schema, "-- +goose Up")
	assert.Contains(t, schema, "CREATE TABLE IF NOT EXISTS tasks")
	// Task ids are int64 end to end; an int4 column makes larger path ids fail to encode.
	assert.Contains(t, schema, "id BIGSERIAL PRIMARY KEY")
}
