// Package redis stores the token blacklist in Redis, letting key expiry do the cleanup.
package redis

import (
	"context"
	"log/slog"

	"wellness/config"
	"wellness/internal/domain/lifecycle"
	"wellness/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the Redis client, pings it on start and closes it on stop.
func New(params Params) (*redis.Client, error) {
	cfg := params.Config.Redis
	if cfg == nil {
		return nil, errors.New("redis config is missing")
	}

	client := NewClient(cfg)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}
			params.Logger.Info("Redis connected", slog.String("addr", cfg.Addr))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

// NewClient builds a client from config without lifecycle hooks.
func NewClient(cfg *config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}
