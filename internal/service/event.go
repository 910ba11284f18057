package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/agency_dispatch_system/internal/apperror"
	"github.com/shenikar/agency_dispatch_system/internal/geo"
	"github.com/shenikar/agency_dispatch_system/internal/imagestore"
	"github.com/shenikar/agency_dispatch_system/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=event.go -destination=mocks/event_mock.go -package=mocks

// EventRepository определяет контракт для работы с бд событий
type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	GetByID(ctx context.Context, eventID string) (*models.Event, error)
	ListByAgency(ctx context.Context, agencyID string) ([]*models.Event, error)
	ListByGroundStaff(ctx context.Context, agencyID, groundStaffID string) ([]*models.Event, error)
	TransitionStatus(ctx context.Context, transition models.StatusTransition) (bool, error)
	FindOpenNearby(ctx context.Context, category string, point geo.Point, radiusMeters float64, since time.Time) (*models.Event, error)
	AppendIncident(ctx context.Context, eventID string, incident models.Incident) error
}

// ImageResolver разрешает ссылки на снимки в data URI
type ImageResolver interface {
	Resolve(ctx context.Context, rawURL string) imagestore.Result
	ResolveAll(ctx context.Context, urls []string) map[string]imagestore.Result
}

// EventService определяет контракт хранилища событий
type EventService interface {
	GetByID(ctx context.Context, eventID string, fields []string, includeImageURL bool) (map[string]any, error)
	UpdateStatus(ctx context.Context, update models.StatusUpdate) (int64, error)
	GetReport(ctx context.Context, eventID string, fields []string, includeImageURL bool, currentAgencyID string) (*models.EventReport, error)
	Dashboard(ctx context.Context, agencyID string) (*models.Dashboard, error)
	ListIncidentImages(ctx context.Context, eventID string) ([]models.IncidentView, error)
}

type eventService struct {
	events   EventRepository
	agencies AgencyRepository
	staff    GroundStaffRepository
	resolver ImageResolver
	logger   *logrus.Logger
	now      func() time.Time
}

func NewEventService(events EventRepository, agencies AgencyRepository, staff GroundStaffRepository, resolver ImageResolver, logger *logrus.Logger) EventService {
	return &eventService{
		events:   events,
		agencies: agencies,
		staff:    staff,
		resolver: resolver,
		logger:   logger,
		now:      time.Now,
	}
}

// GetByID возвращает проекцию события
func (s *eventService) GetByID(ctx context.Context, eventID string, fields []string, includeImageURL bool) (map[string]any, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "event",
		"method":   "GetByID",
		"event_id": eventID,
	})
	log.Info("Fetching event by ID")

	if err := models.ValidateEventFields(fields); err != nil {
		return nil, apperror.Validation("%v", err)
	}

	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		log.WithError(err).Warn("Failed to get event from repository")
		return nil, storageError("could not get event", err)
	}

	out, err := event.Project(fields)
	if err != nil {
		return nil, apperror.Validation("%v", err)
	}

	if includeImageURL {
		var imageURL any
		if first := event.FirstIncident(); first != nil && first.ImageURL != "" {
			imageURL = s.resolver.Resolve(ctx, first.ImageURL).Value()
		}
		out["image_url"] = imageURL
	}

	log.Info("Event fetched successfully")
	return out, nil
}

// UpdateStatus переводит событие в новый статус по таблице переходов.
// Обновление условное: если статус успел измениться, возвращается ErrStatusConflict.
func (s *eventService) UpdateStatus(ctx context.Context, update models.StatusUpdate) (int64, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "event",
		"method":    "UpdateStatus",
		"event_id":  update.EventID,
		"status":    update.Status,
		"agency_id": update.AgencyID,
	})
	log.Info("Attempting to update event status")

	next, err := models.ParseEventStatus(update.Status)
	if err != nil {
		return 0, apperror.Validation("%v", err)
	}

	event, err := s.events.GetByID(ctx, update.EventID)
	if err != nil {
		log.WithError(err).Warn("Attempted to update status of a non-existent event")
		return 0, storageError("could not update event status", err)
	}

	if !event.Status.CanTransitionTo(next) {
		log.WithField("current", event.Status).Warn("Illegal status transition")
		return 0, apperror.New(apperror.KindConflict, "cannot change status from "+event.Status.String()+" to "+next.String())
	}

	transition := models.StatusTransition{
		EventID: event.EventID,
		From:    event.Status,
		To:      next,
	}
	now := s.now()

	switch next {
	case models.StatusAccepted:
		// принять событие может любое существующее агентство, не только кандидат
		if err := validateRequired(update.AgencyID, "agencyId"); err != nil {
			return 0, err
		}
		if _, err := s.agencies.GetByAgencyID(ctx, update.AgencyID); err != nil {
			log.WithError(err).Warn("Accepting agency lookup failed")
			return 0, storageError("could not accept event", err)
		}
		transition.Agencies = []string{update.AgencyID}

	case models.StatusAssigned:
		if err := validateRequired(update.GroundStaffName, "groundStaffName"); err != nil {
			return 0, err
		}
		if update.AgencyID != "" && update.AgencyID != event.PrimaryAgency() {
			return 0, ErrAgencyMismatch
		}
		name := update.GroundStaffName
		transition.GroundStaff = &name
		if update.GroundStaffID != "" {
			if err := s.checkStaffBelongs(ctx, update.GroundStaffID, event.PrimaryAgency()); err != nil {
				log.WithError(err).Warn("Ground staff check failed")
				return 0, err
			}
			staffID := update.GroundStaffID
			transition.GroundStaffID = &staffID
		}
		transition.AssignmentTime = &now

	case models.StatusResolved:
		if update.AgencyID != "" && update.AgencyID != event.PrimaryAgency() {
			return 0, ErrAgencyMismatch
		}
		transition.ResolvedAt = &now
	}

	applied, err := s.events.TransitionStatus(ctx, transition)
	if err != nil {
		log.WithError(err).Error("Failed to update event status in repository")
		return 0, storageError("could not update event status", err)
	}
	if !applied {
		log.Warn("Event status changed concurrently")
		return 0, ErrStatusConflict
	}

	log.Info("Event status updated successfully")
	return 1, nil
}

func (s *eventService) checkStaffBelongs(ctx context.Context, rawID, agencyID string) error {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return apperror.Validation("groundStaffId must be a valid UUID")
	}
	staff, err := s.staff.GetByID(ctx, id)
	if err != nil {
		return storageError("could not load ground staff", err)
	}
	if staff.AgencyID != agencyID {
		return apperror.Validation("ground staff does not belong to the agency handling this event")
	}
	return nil
}

// GetReport собирает отчет по событию с названием назначенного агентства
func (s *eventService) GetReport(ctx context.Context, eventID string, fields []string, includeImageURL bool, currentAgencyID string) (*models.EventReport, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "event",
		"method":    "GetReport",
		"event_id":  eventID,
		"agency_id": currentAgencyID,
	})
	log.Info("Building event report")

	if err := models.ValidateEventFields(fields); err != nil {
		return nil, apperror.Validation("%v", err)
	}

	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		log.WithError(err).Warn("Failed to get event from repository")
		return nil, storageError("could not get event report", err)
	}

	if currentAgencyID != "" && !event.IsAssignedTo(currentAgencyID) {
		log.Warn("Report requested by an agency outside the assigned set")
		return nil, ErrAgencyMismatch
	}

	report := &models.EventReport{
		EventID:         event.EventID,
		Description:     event.Description,
		Status:          event.Status,
		AssignmentsTime: event.AssignmentTime,
		GroundStaff:     event.GroundStaff,
	}

	if agencyID := event.PrimaryAgency(); agencyID != "" {
		agency, err := s.agencies.GetByAgencyID(ctx, agencyID)
		switch {
		case err == nil:
			report.AssignedAgency = &agency.AgencyName
			report.AgencyID = &agency.AgencyID
		case errors.Is(err, ErrAgencyNotFound):
			log.WithField("assigned_agency", agencyID).Warn("Assigned agency no longer exists")
		default:
			log.WithError(err).Error("Failed to look up assigned agency")
			return nil, storageError("could not get event report", err)
		}
	}

	var results map[string]imagestore.Result
	if includeImageURL {
		results = s.resolver.ResolveAll(ctx, event.ImageURLs())
	}
	report.Incidents = buildIncidentViews(event.Incidents, results)

	if first := event.FirstIncident(); first != nil {
		if p, ok := first.Point(); ok {
			report.Latitude, report.Longitude = &p.Latitude, &p.Longitude
		}
		if report.AssignmentsTime == nil && !first.Timestamp.IsZero() {
			ts := first.Timestamp
			report.AssignmentsTime = &ts
		}
		report.BoundingBoxes = first.BoundingBoxes
		if includeImageURL && first.ImageURL != "" {
			v := results[first.ImageURL].Value()
			report.ImageURL = &v
		}
	}

	if len(fields) > 0 {
		extra, err := event.Project(fields)
		if err != nil {
			return nil, apperror.Validation("%v", err)
		}
		report.Extra = make(map[string]any, len(fields))
		for _, f := range fields {
			report.Extra[f] = extra[f]
		}
	}

	log.Info("Event report built successfully")
	return report, nil
}

// Dashboard возвращает события агентства; все снимки разрешаются одним пакетом
func (s *eventService) Dashboard(ctx context.Context, agencyID string) (*models.Dashboard, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "event",
		"method":    "Dashboard",
		"agency_id": agencyID,
	})
	log.Info("Building agency dashboard")

	agency, err := s.agencies.GetByAgencyID(ctx, agencyID)
	if err != nil {
		log.WithError(err).Warn("Failed to get agency for dashboard")
		return nil, storageError("could not build dashboard", err)
	}

	events, err := s.events.ListByAgency(ctx, agencyID)
	if err != nil {
		log.WithError(err).Error("Failed to list agency events")
		return nil, storageError("could not build dashboard", err)
	}

	urls := make([]string, 0)
	for _, e := range events {
		urls = append(urls, e.ImageURLs()...)
	}
	results := s.resolver.ResolveAll(ctx, urls)

	dashboard := &models.Dashboard{
		AgencyName:     agency.AgencyName,
		AgencyID:       agency.AgencyID,
		AssignedEvents: make([]models.DashboardEvent, 0, len(events)),
	}
	for _, e := range events {
		dashboard.AssignedEvents = append(dashboard.AssignedEvents, buildDashboardEvent(e, results))
	}

	log.WithField("count", len(events)).Info("Dashboard built successfully")
	return dashboard, nil
}

func buildDashboardEvent(e *models.Event, results map[string]imagestore.Result) models.DashboardEvent {
	item := models.DashboardEvent{
		EventID:        e.EventID,
		Description:    e.Description,
		Status:         e.Status,
		AssignmentTime: e.AssignmentTime,
		GroundStaff:    e.GroundStaff,
		Timestamp:      e.Timestamp,
		AssignedAgency: e.CandidateAgencies(),
		BoundingBoxes:  []models.BoundingBox{},
		AllIncidents:   buildIncidentViews(e.Incidents, results),
	}

	lat, lng := e.Location.Latitude, e.Location.Longitude
	item.Latitude, item.Longitude = &lat, &lng

	if first := e.FirstIncident(); first != nil {
		if p, ok := first.Point(); ok {
			item.Latitude, item.Longitude = &p.Latitude, &p.Longitude
		}
		if first.ImageURL != "" {
			v := results[first.ImageURL].Value()
			item.ImageURL = &v
		}
		if first.BoundingBoxes != nil {
			item.BoundingBoxes = first.BoundingBoxes
		}
		item.X1, item.Y1, item.X2, item.Y2 = splitBox(first)
	}
	return item
}

// ListIncidentImages возвращает снимки всех инцидентов события
func (s *eventService) ListIncidentImages(ctx context.Context, eventID string) ([]models.IncidentView, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "event",
		"method":   "ListIncidentImages",
		"event_id": eventID,
	})
	log.Info("Listing incident images")

	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		log.WithError(err).Warn("Failed to get event from repository")
		return nil, storageError("could not list incident images", err)
	}

	views := buildIncidentViews(event.Incidents, s.resolver.ResolveAll(ctx, event.ImageURLs()))
	log.WithField("count", len(views)).Info("Incident images listed successfully")
	return views, nil
}

// buildIncidentViews; results == nil означает, что снимки не разрешались
func buildIncidentViews(incidents []models.Incident, results map[string]imagestore.Result) []models.IncidentView {
	views := make([]models.IncidentView, 0, len(incidents))
	for i := range incidents {
		inc := &incidents[i]
		view := models.IncidentView{
			Timestamp:     inc.Timestamp,
			ImageURL:      inc.ImageURL,
			BoundingBoxes: inc.BoundingBoxes,
		}
		if view.BoundingBoxes == nil {
			view.BoundingBoxes = []models.BoundingBox{}
		}
		if p, ok := inc.Point(); ok {
			view.Latitude, view.Longitude = &p.Latitude, &p.Longitude
		}
		if res, ok := results[inc.ImageURL]; ok && inc.ImageURL != "" {
			view.ImageURL = res.Value()
			view.Base64Image = res.DataURI()
		}
		view.X1, view.Y1, view.X2, view.Y2 = splitBox(inc)
		views = append(views, view)
	}
	return views
}

func splitBox(inc *models.Incident) (x1, y1, x2, y2 *float64) {
	box, ok := inc.FirstBox()
	if !ok {
		return nil, nil, nil, nil
	}
	return &box[0], &box[1], &box[2], &box[3]
}
