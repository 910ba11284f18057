package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisPublisher публикует сообщения в списки Redis, которые читают конвейеры моделей
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish кладет сообщение в очередь. Потребитель забирает его с правого конца (BRPOP).
func (p *RedisPublisher) Publish(ctx context.Context, queue string, message any) error {
	payload, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal queue message: %w", err)
	}

	if err := p.redisClient.LPush(ctx, queue, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish message to %s: %w", queue, err)
	}
	return nil
}
