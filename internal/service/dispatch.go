package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/agency_dispatch_system/internal/apperror"
	"github.com/shenikar/agency_dispatch_system/internal/config"
	"github.com/shenikar/agency_dispatch_system/internal/geo"
	"github.com/shenikar/agency_dispatch_system/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=dispatch.go -destination=mocks/dispatch_mock.go -package=mocks

// DispatchService превращает результаты модели в события и выбирает агентства-кандидаты
type DispatchService interface {
	HandleDetection(ctx context.Context, detection models.Detection) (*models.DispatchResult, error)
}

type dispatchService struct {
	events   EventRepository
	agencies AgencyRepository
	images   ImageRepository
	cfg      *config.Config
	logger   *logrus.Logger
	now      func() time.Time
}

func NewDispatchService(events EventRepository, agencies AgencyRepository, images ImageRepository, cfg *config.Config, logger *logrus.Logger) DispatchService {
	return &dispatchService{
		events:   events,
		agencies: agencies,
		images:   images,
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
	}
}

// HandleDetection присоединяет инцидент к открытому событию той же категории
// поблизости или создает новое событие со списком кандидатов.
// Критичные события получают всех ближайших агентств в радиусе,
// остальные одно агентство, в юрисдикцию которого попадает точка.
func (s *dispatchService) HandleDetection(ctx context.Context, detection models.Detection) (*models.DispatchResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "dispatch",
		"method":      "HandleDetection",
		"incident_id": detection.IncidentID,
		"category":    detection.DetectedObject,
		"critical":    detection.Critical,
	})
	log.Info("Processing detection")

	if err := validateRequired(detection.IncidentID, "incident_id"); err != nil {
		return nil, err
	}
	category := strings.TrimSpace(detection.DetectedObject)
	if category == "" {
		return nil, apperror.Validation("detected_object is required")
	}
	point, err := detection.Location.Point()
	if err != nil {
		return nil, apperror.Validation("location: %v", err)
	}
	if detection.Timestamp.IsZero() {
		detection.Timestamp = s.now()
	}
	if detection.Location.Type == "" {
		detection.Location.Type = geo.TypePoint
	}

	result, err := s.mergeIntoOpenEvent(ctx, log, category, point, detection)
	if err != nil {
		return nil, err
	}
	if result == nil {
		result, err = s.createEvent(ctx, log, category, point, detection)
		if err != nil {
			return nil, err
		}
	}

	s.linkImage(ctx, log, detection.IncidentID, result.EventID)
	return result, nil
}

func (s *dispatchService) mergeIntoOpenEvent(ctx context.Context, log *logrus.Entry, category string, point geo.Point, detection models.Detection) (*models.DispatchResult, error) {
	if s.cfg.DedupWindow <= 0 || s.cfg.DedupRadiusMeters <= 0 {
		return nil, nil
	}

	since := s.now().Add(-s.cfg.DedupWindow)
	existing, err := s.events.FindOpenNearby(ctx, category, point, s.cfg.DedupRadiusMeters, since)
	if err != nil {
		log.WithError(err).Error("Failed to look up open events nearby")
		return nil, storageError("could not look up open events", err)
	}
	if existing == nil {
		return nil, nil
	}

	if err := s.events.AppendIncident(ctx, existing.EventID, detection.Incident()); err != nil {
		log.WithError(err).Error("Failed to append incident to event")
		return nil, storageError("could not append incident", err)
	}

	log.WithField("event_id", existing.EventID).Info("Incident merged into open event")
	return &models.DispatchResult{
		EventID:    existing.EventID,
		Candidates: existing.CandidateAgencies(),
	}, nil
}

func (s *dispatchService) createEvent(ctx context.Context, log *logrus.Entry, category string, point geo.Point, detection models.Detection) (*models.DispatchResult, error) {
	candidates, err := s.allocate(ctx, category, point, detection.Critical)
	if err != nil {
		log.WithError(err).Error("Failed to allocate candidate agencies")
		return nil, storageError("could not allocate agencies", err)
	}
	if len(candidates) == 0 {
		log.Warn("No agency covers the incident location")
	}

	description := strings.TrimSpace(detection.Description)
	if description == "" {
		description = category
	}

	event := &models.Event{
		EventID:        uuid.NewString(),
		Description:    description,
		Category:       category,
		Critical:       detection.Critical,
		Status:         models.StatusPending,
		Location:       point,
		Timestamp:      detection.Timestamp,
		Incidents:      []models.Incident{detection.Incident()},
		AssignedAgency: &models.AgencySet{Agencies: candidates},
	}
	if err := s.events.Create(ctx, event); err != nil {
		log.WithError(err).Error("Failed to create event in repository")
		return nil, storageError("could not create event", err)
	}

	log.WithFields(logrus.Fields{
		"event_id":   event.EventID,
		"candidates": len(candidates),
	}).Info("Event created")
	return &models.DispatchResult{EventID: event.EventID, Created: true, Candidates: candidates}, nil
}

func (s *dispatchService) allocate(ctx context.Context, category string, point geo.Point, critical bool) ([]string, error) {
	search := models.PointSearch{
		Point: point,
		Tag:   category,
		Mode:  models.SearchModeJurisdiction,
		Limit: 1,
	}
	if critical {
		search.Mode = models.SearchModeLocation
		search.RadiusMeters = s.cfg.DispatchRadiusMeters
		search.Limit = s.cfg.DispatchMaxCandidates
	}

	matches, err := s.agencies.FindByPoint(ctx, search)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.AgencyID)
	}
	return ids, nil
}

// linkImage отмечает снимок обработанным; сбой не прерывает обработку
func (s *dispatchService) linkImage(ctx context.Context, log *logrus.Entry, rawIncidentID, eventID string) {
	incidentID, err := uuid.Parse(rawIncidentID)
	if err != nil {
		log.Debug("Incident id is not an uploaded image id, skipping link")
		return
	}
	linked, err := s.images.LinkEvent(ctx, incidentID, eventID)
	if err != nil {
		log.WithError(err).Warn("Failed to link image to event")
		return
	}
	if !linked {
		log.Debug("No uploaded image for incident")
	}
}
