package postgres

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
)

// migrationsDir is the directory inside the embedded filesystem holding the schema files.
const migrationsDir = "migrations"

//go:embed migrations/*.sql
var embeddedMigrations embed.FS

// slogGooseLogger adapts goose's logger interface to slog.
type slogGooseLogger struct {
	logger *slog.Logger
}

// Printf implements goose.Logger.
func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	l.log().Info(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// Fatalf implements goose.Logger. It logs at error level and does not exit;
// Migrate reports the failure through its returned error.
func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	l.log().Error(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l *slogGooseLogger) log() *slog.Logger {
	if l.logger == nil {
		return slog.Default()
	}
	return l.logger
}

// Migrate applies every embedded schema migration that has not run yet.
// It is safe to call on every start; applied versions are skipped.
func Migrate(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	migrationLogger := logger.With(
		"correlation_id", uuid.New().String(),
		"component", "migrations",
	)

	startTime := time.Now()
	migrationLogger.Info("Applying database schema")

	goose.SetBaseFS(embeddedMigrations)
	goose.SetLogger(&slogGooseLogger{logger: migrationLogger})
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, migrationsDir); err != nil {
		migrationLogger.Error("Schema migration failed",
			"error", err,
			"duration_ms", time.Since(startTime).Milliseconds())
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	migrationLogger.Info("Database schema up to date",
		"version", version,
		"duration_ms", time.Since(startTime).Milliseconds())
	return nil
}
