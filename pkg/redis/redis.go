package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient создает и возвращает новый клиент Redis
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
		PoolSize: 10,
	})

	// Проверяем соединение с Redis
	_, err := rdb.Ping(ctx).Result()
	if err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", addr, err)
	}

	return rdb, nil
}

// NewRedisClientWithFallback перебирает адреса по порядку и возвращает клиент
// для первого, ответившего на PING, вместе с его адресом.
func NewRedisClientWithFallback(ctx context.Context, addrs []string, password string, db int) (*redis.Client, string, error) {
	if len(addrs) == 0 {
		return nil, "", errors.New("no Redis addresses configured")
	}

	var errs []error
	for _, addr := range addrs {
		rdb, err := NewRedisClient(ctx, addr, password, db)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		return rdb, addr, nil
	}
	return nil, "", fmt.Errorf("all Redis hosts are unreachable: %w", errors.Join(errs...))
}
