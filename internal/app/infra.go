package app

import (
	"github.com/Vindyani1999/snaplytics-auth-backend/internal/authstate"
	"github.com/Vindyani1999/snaplytics-auth-backend/internal/config"
	"github.com/Vindyani1999/snaplytics-auth-backend/internal/logger"
	"github.com/Vindyani1999/snaplytics-auth-backend/internal/redis"
)

// setupStateStore builds the transient login-correlation store. The
// in-memory store is the default; Redis is for multi-instance
// deployments.
func setupStateStore(cfg config.Config) (authstate.Store, func() error, error) {
	switch cfg.StateStore {
	case config.StateStoreRedis:
		client, err := redis.New(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			return nil, nil, err
		}

		logger.Info("redis ready", nil)

		return authstate.NewRedisStore(client.Client), client.Close, nil

	default:
		store := authstate.NewMemoryStore()
		return store, func() error {
			store.Close()
			return nil
		}, nil
	}
}
