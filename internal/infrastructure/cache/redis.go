package cache

import (
	"context"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"

	"campusfix/internal/shared/config"
	appLogger "campusfix/internal/shared/logger"
)

var (
	client   *redis.Client
	clientMu sync.RWMutex
)

// InitRedis initializes the shared redis client used by the draft cache and
// the rate limiter.
func InitRedis(cfg *config.RedisConfig) error {
	c := redis.NewClient(&redis.Options{
		Addr:     cfg.GetAddr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := c.Ping(context.Background()).Err(); err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}

	clientMu.Lock()
	client = c
	clientMu.Unlock()

	appLogger.Info("redis connection established", "addr", cfg.GetAddr())

	return nil
}

// GetRedis returns the shared redis client
func GetRedis() *redis.Client {
	clientMu.RLock()
	defer clientMu.RUnlock()
	return client
}

// CloseRedis closes the shared redis client
func CloseRedis() error {
	clientMu.RLock()
	currentClient := client
	clientMu.RUnlock()

	if currentClient == nil {
		return nil
	}

	if err := currentClient.Close(); err != nil {
		return fmt.Errorf("failed to close redis connection: %w", err)
	}

	appLogger.Info("redis connection closed")
	return nil
}
