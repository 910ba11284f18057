package queue

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/agency_dispatch_system/internal/apperror"
	"github.com/shenikar/agency_dispatch_system/internal/config"
	"github.com/shenikar/agency_dispatch_system/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	deadLetterSuffix = ":failed"
	popTimeout       = time.Second
)

// DetectionHandler обрабатывает одну детекцию модели
type DetectionHandler interface {
	HandleDetection(ctx context.Context, detection models.Detection) (*models.DispatchResult, error)
}

// DetectionWorker читает результаты моделей из очереди и передает их в диспетчер
type DetectionWorker struct {
	redisClient *redis.Client
	handler     DetectionHandler
	logger      *logrus.Logger
	queue       string
	maxRetries  int
	baseDelay   time.Duration
}

// NewDetectionWorker создает новый DetectionWorker
func NewDetectionWorker(redisClient *redis.Client, handler DetectionHandler, logger *logrus.Logger, cfg *config.Config) *DetectionWorker {
	return &DetectionWorker{
		redisClient: redisClient,
		handler:     handler,
		logger:      logger,
		queue:       cfg.DetectionQueue,
		maxRetries:  cfg.WorkerMaxRetries,
		baseDelay:   cfg.WorkerBaseDelay,
	}
}

// DeadLetterQueue - очередь для сообщений, которые не удалось обработать
func (w *DetectionWorker) DeadLetterQueue() string {
	return w.queue + deadLetterSuffix
}

// Start запускает горутину обработки очереди. Канал закрывается после остановки.
func (w *DetectionWorker) Start(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	w.logger.WithField("queue", w.queue).Info("Starting detection worker...")

	go func() {
		defer close(done)
		for {
			if ctx.Err() != nil {
				w.logger.Info("Stopping detection worker.")
				return
			}

			result, err := w.redisClient.BRPop(ctx, popTimeout, w.queue).Result()
			if err != nil {
				if errors.Is(err, redis.Nil) || ctx.Err() != nil {
					continue
				}
				w.logger.WithError(err).Error("Failed to pop detection from Redis")
				w.wait(ctx, w.baseDelay)
				continue
			}

			// result[0] - ключ, result[1] - значение
			w.process(ctx, result[1])
		}
	}()

	return done
}

func (w *DetectionWorker) process(ctx context.Context, payload string) {
	var detection models.Detection
	if err := json.Unmarshal([]byte(payload), &detection); err != nil {
		w.logger.WithError(err).Error("Failed to unmarshal detection from Redis")
		w.deadLetter(ctx, payload)
		return
	}

	log := w.logger.WithFields(logrus.Fields{
		"incident_id": detection.IncidentID,
		"category":    detection.DetectedObject,
	})
	log.Debug("Processing detection...")

	delay := w.baseDelay
	for attempt := 0; ; attempt++ {
		result, err := w.handler.HandleDetection(ctx, detection)
		if err == nil {
			log.WithFields(logrus.Fields{
				"event_id": result.EventID,
				"created":  result.Created,
			}).Info("Detection dispatched.")
			return
		}

		if !retryable(err) || attempt >= w.maxRetries {
			log.WithError(err).Errorf("Failed to dispatch detection after %d retries.", attempt)
			w.deadLetter(ctx, payload)
			return
		}

		log.WithError(err).Warnf("Failed to dispatch detection. Retrying in %v. Retries left: %d", delay, w.maxRetries-attempt)
		if !w.wait(ctx, delay) {
			w.requeue(payload)
			return
		}
		delay *= 2 // Экспоненциальная задержка
	}
}

// retryable - повторяем только сбои хранилища и зависимостей
func retryable(err error) bool {
	switch apperror.KindOf(err) {
	case apperror.KindPersistence, apperror.KindDependency, apperror.KindInternal:
		return true
	default:
		return false
	}
}

func (w *DetectionWorker) wait(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func (w *DetectionWorker) deadLetter(ctx context.Context, payload string) {
	if err := w.redisClient.LPush(ctx, w.DeadLetterQueue(), payload).Err(); err != nil {
		w.logger.WithError(err).Error("Failed to move detection to dead letter queue")
	}
}

// requeue возвращает сообщение в голову очереди при остановке воркера
func (w *DetectionWorker) requeue(payload string) {
	ctx, cancel := context.WithTimeout(context.Background(), popTimeout)
	defer cancel()
	if err := w.redisClient.RPush(ctx, w.queue, payload).Err(); err != nil {
		w.logger.WithError(err).Error("Failed to requeue detection on shutdown")
	}
}
