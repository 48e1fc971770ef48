// Package session selects the SessionStore backend from configuration.
package session

import (
	"context"
	"log/slog"

	"drivematch/config"
	"drivematch/internal/domain/repository"
	memorystore "drivematch/internal/infra/session/memory"
	redisstore "drivematch/internal/infra/session/redis"

	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	// StoreMemory keeps histories in process memory (default; lost on restart).
	StoreMemory = "memory"
	// StoreRedis keeps histories in Redis, surviving restarts and shared
	// across instances.
	StoreRedis = "redis"
)

// StoreParams holds dependencies for the SessionStore, injected by Fx.
type StoreParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewSessionStore creates a SessionStore based on configuration.
func NewSessionStore(params StoreParams) (repository.SessionStore, error) {
	chatCfg := params.Config.Chat

	switch chatCfg.Store {
	case "", StoreMemory:
		params.Logger.Info("Using in-memory session store",
			slog.Int("maxHistory", chatCfg.MaxHistory),
		)

		return memorystore.NewStore(chatCfg.MaxHistory), nil

	case StoreRedis:
		redisCfg := params.Config.Redis
		if redisCfg == nil || redisCfg.Addr == "" {
			return nil, errors.New("redis configuration is required for the redis session store")
		}

		client := goredis.NewClient(&goredis.Options{
			Addr:     redisCfg.Addr,
			Password: redisCfg.Password,
			DB:       redisCfg.DB,
		})

		params.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				return errors.Wrap(client.Ping(ctx).Err(), "failed to ping redis")
			},
			OnStop: func(_ context.Context) error {
				return errors.WithStack(client.Close())
			},
		})

		params.Logger.Info("Using Redis session store",
			slog.String("addr", redisCfg.Addr),
			slog.Int("maxHistory", chatCfg.MaxHistory),
		)

		return redisstore.NewStore(client, chatCfg.MaxHistory), nil

	default:
		return nil, errors.Errorf("unknown session store backend: %s", chatCfg.Store)
	}
}
