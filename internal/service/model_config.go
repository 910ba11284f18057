package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shenikar/agency_dispatch_system/internal/apperror"
	"github.com/shenikar/agency_dispatch_system/internal/config"
	"github.com/shenikar/agency_dispatch_system/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=model_config.go -destination=mocks/model_config_mock.go -package=mocks

const (
	KeyActiveModel   = "ACTIVE_MODEL"
	KeyModelQueueMap = "MODEL_QUEUE_MAP"

	ModelYOLO = "YOLO"
	ModelVLM  = "VLM"
)

// ConfigRepository - хранилище ключ-значение {key, value, updatedAt}
type ConfigRepository interface {
	GetValue(ctx context.Context, key string) (json.RawMessage, time.Time, error)
	SetValue(ctx context.Context, key string, value any) (time.Time, error)
}

// ModelConfigService определяет контракт переключателя активной модели
type ModelConfigService interface {
	ActiveModel(ctx context.Context) (*models.ModelSetting, error)
	SetActiveModel(ctx context.Context, model string) (*models.ModelSetting, error)
	ActiveQueue(ctx context.Context) (*models.ModelSetting, error)
}

type modelConfigService struct {
	repo   ConfigRepository
	cfg    *config.Config
	logger *logrus.Logger
}

func NewModelConfigService(repo ConfigRepository, cfg *config.Config, logger *logrus.Logger) ModelConfigService {
	return &modelConfigService{
		repo:   repo,
		cfg:    cfg,
		logger: logger,
	}
}

func normalizeModel(model string) (string, error) {
	switch m := strings.ToUpper(strings.TrimSpace(model)); m {
	case ModelYOLO, ModelVLM:
		return m, nil
	default:
		return "", apperror.Validation("Invalid model. Must be %s or %s", ModelYOLO, ModelVLM)
	}
}

// ActiveModel возвращает текущую модель или значение по умолчанию
func (s *modelConfigService) ActiveModel(ctx context.Context) (*models.ModelSetting, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "model_config",
		"method":  "ActiveModel",
	})

	raw, updatedAt, err := s.repo.GetValue(ctx, KeyActiveModel)
	if err != nil {
		if errors.Is(err, ErrConfigNotFound) {
			model, err := normalizeModel(s.cfg.DefaultActiveModel)
			if err != nil {
				model = ModelYOLO
			}
			log.WithField("model", model).Info("Active model not set, using default")
			return &models.ModelSetting{Model: model}, nil
		}
		log.WithError(err).Error("Failed to read active model")
		return nil, storageError("could not read active model", err)
	}

	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, apperror.Persistence("service: active model has unexpected format", err)
	}
	model, err := normalizeModel(value)
	if err != nil {
		return nil, apperror.Persistence("service: stored active model is invalid", err)
	}
	return &models.ModelSetting{Model: model, UpdatedAt: &updatedAt}, nil
}

// SetActiveModel сохраняет выбор модели
func (s *modelConfigService) SetActiveModel(ctx context.Context, model string) (*models.ModelSetting, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "model_config",
		"method":  "SetActiveModel",
		"model":   model,
	})
	log.Info("Switching active model")

	normalized, err := normalizeModel(model)
	if err != nil {
		return nil, err
	}

	updatedAt, err := s.repo.SetValue(ctx, KeyActiveModel, normalized)
	if err != nil {
		log.WithError(err).Error("Failed to store active model")
		return nil, storageError("could not switch model", err)
	}

	log.Info("Active model switched successfully")
	return &models.ModelSetting{Model: normalized, UpdatedAt: &updatedAt}, nil
}

// ActiveQueue возвращает активную модель вместе с именем ее очереди.
// Карта очередей берется из хранилища, а при ее отсутствии из конфигурации.
func (s *modelConfigService) ActiveQueue(ctx context.Context) (*models.ModelSetting, error) {
	setting, err := s.ActiveModel(ctx)
	if err != nil {
		return nil, err
	}

	queues := s.cfg.ModelQueues
	raw, _, err := s.repo.GetValue(ctx, KeyModelQueueMap)
	switch {
	case err == nil:
		stored := make(map[string]string)
		if err := json.Unmarshal(raw, &stored); err != nil {
			return nil, apperror.Persistence("service: model queue map has unexpected format", err)
		}
		queues = stored
	case !errors.Is(err, ErrConfigNotFound):
		return nil, storageError("could not read model queue map", err)
	}

	queue, ok := queues[setting.Model]
	if !ok || queue == "" {
		return nil, apperror.Dependency("service: queue lookup", fmt.Errorf("no queue configured for model %s", setting.Model))
	}
	setting.Queue = queue
	return setting, nil
}
