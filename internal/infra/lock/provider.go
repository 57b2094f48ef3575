package lock

import (
	"context"
	"log/slog"

	"reminder/config"
	"reminder/internal/domain/lifecycle"
	"reminder/internal/domain/service"
	"reminder/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// LockerParams holds dependencies for RunLocker, injected by Fx
type LockerParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewRunLocker creates a Redis-backed locker when redis is configured, otherwise a process-local one
func NewRunLocker(params LockerParams) service.RunLocker {
	cfg := params.Config.Redis
	logger := params.Logger

	if cfg == nil || cfg.Addr == "" {
		logger.Info("Redis not configured, using process-local run lock")

		return NewLocalLocker()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			logger.Info("Connection to Redis successful", slog.String("addr", cfg.Addr))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return errors.Wrap(client.Close(), "close Redis client")
		},
	})

	return NewRedisLocker(client, cfg.KeyPrefix)
}
