// Package main implements the entry point for the To-Do API server.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver

	"github.com/Abdulrahman-PROG/Containerized-Web-App/internal/config"
	"github.com/Abdulrahman-PROG/Containerized-Web-App/internal/platform/logger"
	"github.com/Abdulrahman-PROG/Containerized-Web-App/internal/platform/postgres"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

// run wires the process: configuration, logging, database, schema, cache,
// application and HTTP server. It returns once ctx is cancelled and the
// server has shut down.
func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("Server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.Bool("auto_migrate", cfg.Database.AutoMigrate),
		slog.Int("cache_ttl_seconds", cfg.Cache.TTLSeconds))

	db, err := setupAppDatabase(ctx, cfg, l)
	if err != nil {
		return err
	}

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, db, l); err != nil {
			_ = db.Close()
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}

	redisClient := setupAppCache(ctx, cfg, l)

	app, err := newApplication(cfg, l, db, redisClient)
	if err != nil {
		_ = redisClient.Close()
		_ = db.Close()
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.startHTTPServer(ctx, app.setupRouter())
}
