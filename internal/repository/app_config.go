package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shenikar/agency_dispatch_system/internal/service"
	"github.com/shenikar/agency_dispatch_system/pkg/postgres"
)

// ConfigRepository хранит настройки приложения в таблице app_config (ключ -> jsonb)
type ConfigRepository struct {
	db postgres.Pool
}

func NewConfigRepository(db postgres.Pool) service.ConfigRepository {
	return &ConfigRepository{db: db}
}

func (r *ConfigRepository) GetValue(ctx context.Context, key string) (json.RawMessage, time.Time, error) {
	var (
		value     []byte
		updatedAt time.Time
	)
	err := r.db.QueryRow(ctx, `SELECT value, updated_at FROM app_config WHERE key = $1;`, key).Scan(&value, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, time.Time{}, service.ErrConfigNotFound
		}
		return nil, time.Time{}, fmt.Errorf("failed to get config %s: %w", key, err)
	}
	return json.RawMessage(value), updatedAt, nil
}

// SetValue сохраняет значение ключа (upsert) и возвращает время обновления
func (r *ConfigRepository) SetValue(ctx context.Context, key string, value any) (time.Time, error) {
	payload, err := json.Marshal(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to encode config %s: %w", key, err)
	}

	query := `
		INSERT INTO app_config (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
		RETURNING updated_at;
	`
	var updatedAt time.Time
	if err := r.db.QueryRow(ctx, query, key, payload).Scan(&updatedAt); err != nil {
		return time.Time{}, fmt.Errorf("failed to set config %s: %w", key, err)
	}
	return updatedAt, nil
}
