package testdb

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver

	"github.com/Abdulrahman-PROG/Containerized-Web-App/internal/ciutil"
	"github.com/Abdulrahman-PROG/Containerized-Web-App/internal/platform/logger"
	"github.com/Abdulrahman-PROG/Containerized-Web-App/internal/platform/postgres"
)

const connectTimeout = 5 * time.Second

// Open returns a migrated connection pool for the test database.
// The pool is closed when the test finishes.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	l, _ := logger.NewTestLogger()
	dbURL := ciutil.GetTestDatabaseURL(l)
	if dbURL == "" {
		if ciutil.IsCI() {
			t.Fatalf("%s must be set in CI", ciutil.EnvTestDatabaseURL)
		}
		t.Skipf("%s not set; skipping database test", ciutil.EnvTestDatabaseURL)
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		t.Fatalf("open test database %s: %v", ciutil.MaskSensitiveValue(dbURL), err)
	}
	t.Cleanup(func() { _ = db.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		t.Fatalf("ping test database %s: %v", ciutil.MaskSensitiveValue(dbURL), err)
	}

	if err := postgres.Migrate(context.Background(), db, l); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

// ResetTasks empties the tasks table and restarts its id sequence.
func ResetTasks(t *testing.T, db *sql.DB) {
	t.Helper()

	if _, err := db.ExecContext(context.Background(), "TRUNCATE TABLE tasks RESTART IDENTITY"); err != nil {
		t.Fatalf("reset tasks table: %v", err)
	}
}
