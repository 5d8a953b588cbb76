package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Abdulrahman-PROG/Containerized-Web-App/internal/config"
	"github.com/Abdulrahman-PROG/Containerized-Web-App/internal/platform/rediscache"
	"github.com/Abdulrahman-PROG/Containerized-Web-App/internal/redact"
)

const cachePingTimeout = 2 * time.Second

// setupAppCache creates the Redis client. An unreachable Redis is not fatal:
// the list cache then misses on every read until Redis comes back.
func setupAppCache(ctx context.Context, cfg *config.Config, logger *slog.Logger) *redis.Client {
	client := rediscache.NewClient(cfg.Cache)

	pingCtx, cancel := context.WithTimeout(ctx, cachePingTimeout)
	defer cancel()

	if err := rediscache.New(client).Ping(pingCtx); err != nil {
		logger.Warn("Redis unavailable, task list cache disabled until it recovers",
			slog.String("error", redact.Error(err)))
		return client
	}

	logger.Info("Redis connection established", slog.Int("db", cfg.Cache.DB))
	return client
}
