package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/agency_dispatch_system/internal/apperror"
	"github.com/shenikar/agency_dispatch_system/internal/config"
	"github.com/shenikar/agency_dispatch_system/internal/geo"
	"github.com/shenikar/agency_dispatch_system/internal/models"
	"github.com/shenikar/agency_dispatch_system/pkg/objectstore"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=image.go -destination=mocks/image_mock.go -package=mocks

const defaultLatestImages = 3

// ImageRepository определяет контракт для работы с бд загруженных снимков
type ImageRepository interface {
	Create(ctx context.Context, image *models.Image) error
	LinkEvent(ctx context.Context, incidentID uuid.UUID, eventID string) (bool, error)
	ListLatest(ctx context.Context, limit int) ([]*models.Image, error)
}

// QueuePublisher публикует сообщение в именованную очередь
type QueuePublisher interface {
	Publish(ctx context.Context, queue string, message any) error
}

// ObjectStore - объектное хранилище снимков
type ObjectStore interface {
	GetObject(ctx context.Context, bucket, key string) ([]byte, error)
	PutObject(ctx context.Context, bucket, key string, data []byte, contentType string) error
}

// ImageService определяет контракт приема и выдачи снимков
type ImageService interface {
	Upload(ctx context.Context, input models.UploadInput) (*models.UploadResult, error)
	GetObject(ctx context.Context, bucket, key string) ([]byte, error)
	Latest(ctx context.Context, limit int) ([]*models.Image, error)
}

type imageService struct {
	images    ImageRepository
	modelCfg  ModelConfigService
	publisher QueuePublisher
	store     ObjectStore
	cfg       *config.Config
	logger    *logrus.Logger
	now       func() time.Time
}

func NewImageService(images ImageRepository, modelConfig ModelConfigService, publisher QueuePublisher, store ObjectStore, cfg *config.Config, logger *logrus.Logger) ImageService {
	return &imageService{
		images:    images,
		modelCfg:  modelConfig,
		publisher: publisher,
		store:     store,
		cfg:       cfg,
		logger:    logger,
		now:       time.Now,
	}
}

// Upload принимает снимок: сохраняет байты, публикует сообщение в очередь
// активной модели и записывает ожидающую обработки запись Image.
// Ошибка публикации фатальна, ошибка загрузки в хранилище нет.
func (s *imageService) Upload(ctx context.Context, input models.UploadInput) (*models.UploadResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "image",
		"method":  "Upload",
		"user_id": input.UserID,
	})
	log.Info("Receiving image upload")

	if err := validateRequired(input.UserID, "userId"); err != nil {
		return nil, err
	}
	point, err := input.Location.Point()
	if err != nil {
		return nil, apperror.Validation("location: %v", err)
	}
	payload, data, err := s.decodeImage(input.Base64)
	if err != nil {
		return nil, err
	}

	timestamp := input.Timestamp
	if timestamp.IsZero() {
		timestamp = s.now()
	}
	incidentID := uuid.New()
	log = log.WithField("incident_id", incidentID)

	setting, err := s.modelCfg.ActiveQueue(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to resolve active queue")
		return nil, err
	}

	imageURL := s.storeImage(ctx, log, incidentID, timestamp, data)

	message := models.IngestionMessage{
		IncidentID:   incidentID.String(),
		UserID:       input.UserID,
		Location:     geo.NewGeoJSONPoint(point),
		Timestamp:    timestamp,
		Base64String: payload,
		ImageURL:     imageURL,
		Model:        setting.Model,
	}
	if err := s.publisher.Publish(ctx, setting.Queue, message); err != nil {
		log.WithError(err).WithField("queue", setting.Queue).Error("Failed to publish image to queue")
		return nil, apperror.Dependency("service: could not publish image", err)
	}

	image := &models.Image{
		IncidentID: incidentID,
		UserID:     input.UserID,
		Location:   point,
		Timestamp:  timestamp,
		ImageURL:   imageURL,
		Exif:       input.Exif,
		Status:     models.ImageStatusPending,
	}
	if err := s.images.Create(ctx, image); err != nil {
		log.WithError(err).Error("Failed to save image record")
		return nil, storageError("could not save image record", err)
	}

	log.WithFields(logrus.Fields{"image_id": image.ID, "queue": setting.Queue}).Info("Image accepted")
	return &models.UploadResult{
		ImageID:    image.ID,
		IncidentID: incidentID,
		Model:      setting.Model,
		Queue:      setting.Queue,
	}, nil
}

// decodeImage снимает префикс data URI и проверяет содержимое
func (s *imageService) decodeImage(raw string) (string, []byte, error) {
	payload := strings.TrimSpace(raw)
	if i := strings.Index(payload, ";base64,"); strings.HasPrefix(payload, "data:") && i >= 0 {
		payload = payload[i+len(";base64,"):]
	}
	if payload == "" {
		return "", nil, apperror.Validation("base64String is required")
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, apperror.Validation("base64String is not valid base64")
	}
	if s.cfg.MaxUploadBytes > 0 && len(data) > s.cfg.MaxUploadBytes {
		return "", nil, apperror.Validation("image exceeds %d bytes", s.cfg.MaxUploadBytes)
	}
	return payload, data, nil
}

func (s *imageService) storeImage(ctx context.Context, log *logrus.Entry, incidentID uuid.UUID, ts time.Time, data []byte) string {
	key := fmt.Sprintf("%d/%s.jpg", ts.Year(), incidentID)
	if err := s.store.PutObject(ctx, s.cfg.ImageBucket, key, data, "image/jpeg"); err != nil {
		log.WithError(err).Warn("Failed to store image bytes, continuing without image url")
		return ""
	}
	return strings.TrimRight(s.cfg.ImagePublicBaseURL, "/") + "/" + s.cfg.ImageBucket + "/" + key
}

// GetObject читает байты снимка из хранилища
func (s *imageService) GetObject(ctx context.Context, bucket, key string) ([]byte, error) {
	data, err := s.store.GetObject(ctx, bucket, key)
	if err != nil {
		if errors.Is(err, objectstore.ErrObjectNotFound) {
			return nil, apperror.NotFound("image not found")
		}
		s.logger.WithFields(logrus.Fields{
			"service": "image",
			"method":  "GetObject",
			"bucket":  bucket,
			"key":     key,
		}).WithError(err).Error("Failed to get image from object store")
		return nil, apperror.Dependency("service: could not read image", err)
	}
	return data, nil
}

// Latest возвращает последние загруженные снимки
func (s *imageService) Latest(ctx context.Context, limit int) ([]*models.Image, error) {
	if limit <= 0 || limit > 100 {
		limit = defaultLatestImages
	}
	images, err := s.images.ListLatest(ctx, limit)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "image",
			"method":  "Latest",
		}).WithError(err).Error("Failed to list latest images")
		return nil, storageError("could not list images", err)
	}
	return images, nil
}
