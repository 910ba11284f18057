package imagestore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const imageCacheKeyPrefix = "image:"

// RedisCache кэширует байты снимков по ключу объекта
type RedisCache struct {
	redisClient *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{redisClient: client}
}

// Get возвращает (nil, false, nil) при промахе
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := c.redisClient.Get(ctx, imageCacheKeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get image from cache: %w", err)
	}
	return val, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if err := c.redisClient.Set(ctx, imageCacheKeyPrefix+key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set image in cache: %w", err)
	}
	return nil
}
