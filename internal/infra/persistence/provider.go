// Package persistence selects the storage drivers named in the config and exposes
// their repositories to the fx graph.
package persistence

import (
	"log/slog"

	"wellness/config"
	"wellness/internal/domain/repository"
	"wellness/internal/errors"
	"wellness/internal/infra/persistence/firestore"
	"wellness/internal/infra/persistence/memory"
	"wellness/internal/infra/persistence/postgres"
	"wellness/internal/infra/persistence/redis"

	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Repositories is the set of repositories provided to the use cases.
type Repositories struct {
	fx.Out

	Users     repository.UserRepository
	Moods     repository.MoodRepository
	Blacklist repository.TokenBlacklistRepository
}

// New opens the configured driver and, when the blacklist lives in Redis, swaps
// in the Redis blacklist. Clients are closed through the fx lifecycle.
func New(params Params) (Repositories, error) {
	cfg := params.Config

	var repos Repositories
	switch cfg.Storage.Driver {
	case config.DriverFirestore:
		client, err := firestore.New(firestore.Params{
			Lifecycle: params.Lifecycle,
			Config:    cfg,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}
		repos.Users = firestore.NewUserRepository(client)
		repos.Moods = firestore.NewMoodRepository(client)
		repos.Blacklist = firestore.NewTokenBlacklistRepository(client)
	case config.DriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    cfg,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}
		repos.Users = postgres.NewUserRepository(db)
		repos.Moods = postgres.NewMoodRepository(db)
		repos.Blacklist = postgres.NewTokenBlacklistRepository(db)
	case config.DriverMemory:
		store := memory.NewStore()
		repos.Users = memory.NewUserRepository(store)
		repos.Moods = memory.NewMoodRepository(store)
		repos.Blacklist = memory.NewTokenBlacklistRepository(store)
	default:
		return Repositories{}, errors.Errorf("unknown storage driver: %s", cfg.Storage.Driver)
	}

	if cfg.BlacklistDriver() == config.DriverRedis {
		client, err := redis.New(redis.Params{
			Lifecycle: params.Lifecycle,
			Config:    cfg,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}
		repos.Blacklist = redis.NewTokenBlacklistRepository(client, cfg.Redis.KeyPrefix)
	}

	params.Logger.Info("Storage configured",
		slog.String("driver", cfg.Storage.Driver),
		slog.String("blacklistDriver", cfg.BlacklistDriver()),
	)

	return repos, nil
}
