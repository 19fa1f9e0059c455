package recipe

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"nutrition-estimator/internal/infrastructure/config"
	"nutrition-estimator/internal/pkg/common"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RedisCache stores ingredient lists in redis, for deployments where several
// instances should share one recipe cache.
type RedisCache struct {
	client *redis.Client
	config *config.CacheConfig
}

// NewRedisCache connects to redis and verifies the connection.
func NewRedisCache(cfg *config.CacheConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	common.LogInfo("redis cache initialized", zap.String("addr", cfg.RedisAddr))

	return &RedisCache{
		client: client,
		config: cfg,
	}, nil
}

// Get returns the cached ingredient list for a dish, if present.
func (c *RedisCache) Get(ctx context.Context, dishName string) ([]common.IngredientLine, bool) {
	data, err := c.client.Get(ctx, c.key(dishName)).Bytes()
	if err != nil {
		if err != redis.Nil {
			common.LogWarn("redis get failed", zap.Error(err), zap.String("dish", dishName))
		}
		return nil, false
	}

	var lines []common.IngredientLine
	if err := json.Unmarshal(data, &lines); err != nil {
		common.LogWarn("failed to unmarshal cached recipe", zap.Error(err), zap.String("dish", dishName))
		return nil, false
	}
	return lines, true
}

// Set stores the ingredient list with the configured TTL. Best-effort.
func (c *RedisCache) Set(ctx context.Context, dishName string, lines []common.IngredientLine) {
	data, err := json.Marshal(lines)
	if err != nil {
		common.LogWarn("failed to marshal recipe for cache", zap.Error(err), zap.String("dish", dishName))
		return
	}

	if err := c.client.Set(ctx, c.key(dishName), data, c.config.TTL).Err(); err != nil {
		common.LogWarn("redis set failed", zap.Error(err), zap.String("dish", dishName))
	}
}

// Close releases the redis connection.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

func (c *RedisCache) key(dishName string) string {
	hash := sha256.Sum256([]byte(dishName))
	return "recipe:" + hex.EncodeToString(hash[:])
}
