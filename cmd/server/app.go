package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Abdulrahman-PROG/Containerized-Web-App/internal/config"
	"github.com/Abdulrahman-PROG/Containerized-Web-App/internal/platform/postgres"
	"github.com/Abdulrahman-PROG/Containerized-Web-App/internal/platform/rediscache"
	"github.com/Abdulrahman-PROG/Containerized-Web-App/internal/service"
	"github.com/Abdulrahman-PROG/Containerized-Web-App/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config

	logger *slog.Logger
	db     *sql.DB
	redis  redis.UniversalClient

	taskStore   store.TaskStore
	listCache   *service.ListCache
	taskService service.TaskService
}

// newApplication creates a new application instance with all dependencies initialized.
// The database and Redis clients are created by the caller; the application
// takes ownership and closes them in cleanup.
func newApplication(
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
	redisClient redis.UniversalClient,
) (*application, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is required")
	}

	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
		redis:  redisClient,
	}

	app.taskStore = postgres.NewPostgresTaskStore(db, logger)

	var cache store.KeyValueCache
	if redisClient != nil {
		cache = rediscache.New(redisClient)
	}
	app.listCache = service.NewListCache(cache, time.Duration(cfg.Cache.TTLSeconds)*time.Second, logger)

	var err error
	app.taskService, err = service.NewTaskService(app.taskStore, app.listCache, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	return app, nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.redis != nil {
		if err := app.redis.Close(); err != nil {
			app.logger.Error("Error closing Redis client", slog.String("error", err.Error()))
		}
	}

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", slog.String("error", err.Error()))
		}
	}

	app.logger.Info("Application shutdown completed")
}
