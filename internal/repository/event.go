package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shenikar/agency_dispatch_system/internal/geo"
	"github.com/shenikar/agency_dispatch_system/internal/models"
	"github.com/shenikar/agency_dispatch_system/internal/service"
	"github.com/shenikar/agency_dispatch_system/pkg/postgres"
)

const eventColumns = `
	event_id,
	description,
	category,
	critical,
	status,
	ST_Y(location::geometry) AS latitude,
	ST_X(location::geometry) AS longitude,
	"timestamp",
	incidents,
	assigned_agency,
	assigned_agencies,
	ground_staff,
	ground_staff_id::text,
	assignment_time,
	resolved_at,
	created_at,
	updated_at`

// candidateFilter - агентство присутствует в одном из полей назначения
const candidateFilter = `(assigned_agency->'agencies' @> jsonb_build_array($1::text)
		OR assigned_agencies->'agencies' @> jsonb_build_array($1::text))`

type EventRepository struct {
	db postgres.Pool
}

func NewEventRepository(db postgres.Pool) service.EventRepository {
	return &EventRepository{db: db}
}

// Create сохраняет новое событие вместе с первым инцидентом
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	location, err := event.Location.EWKB()
	if err != nil {
		return err
	}
	incidents, err := json.Marshal(incidentsOrEmpty(event.Incidents))
	if err != nil {
		return fmt.Errorf("failed to encode incidents: %w", err)
	}
	assigned, err := marshalAgencySet(event.AssignedAgency)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO events (event_id, description, category, critical, status, location, "timestamp", incidents, assigned_agency)
		VALUES ($1, $2, $3, $4, $5, ST_GeomFromEWKB($6)::geography, $7, $8, $9)
		RETURNING created_at, updated_at;
	`
	err = r.db.QueryRow(ctx, query,
		event.EventID,
		event.Description,
		event.Category,
		event.Critical,
		string(event.Status),
		location,
		event.Timestamp,
		incidents,
		assigned,
	).Scan(&event.CreatedAt, &event.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

// GetByID возвращает событие по его event_id
func (r *EventRepository) GetByID(ctx context.Context, eventID string) (*models.Event, error) {
	query := `SELECT` + eventColumns + ` FROM events WHERE event_id = $1;`

	event, err := scanEvent(r.db.QueryRow(ctx, query, eventID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event by id: %w", err)
	}
	return event, nil
}

// ListByAgency возвращает события, где агентство указано кандидатом, новые первыми
func (r *EventRepository) ListByAgency(ctx context.Context, agencyID string) ([]*models.Event, error) {
	query := `SELECT` + eventColumns + `
		FROM events
		WHERE ` + candidateFilter + `
		ORDER BY "timestamp" DESC;`

	return r.queryEvents(ctx, query, agencyID)
}

// ListByGroundStaff возвращает события агентства, назначенные сотруднику
func (r *EventRepository) ListByGroundStaff(ctx context.Context, agencyID, groundStaffID string) ([]*models.Event, error) {
	query := `SELECT` + eventColumns + `
		FROM events
		WHERE ` + candidateFilter + `
		  AND ground_staff_id::text = $2
		ORDER BY "timestamp" DESC;`

	return r.queryEvents(ctx, query, agencyID, groundStaffID)
}

// TransitionStatus меняет статус, только если текущий статус равен transition.From.
// Возвращает false, если событие успели изменить (или его нет).
// При непустом Agencies поле assigned_agency заменяется, а устаревшее
// assigned_agencies очищается.
func (r *EventRepository) TransitionStatus(ctx context.Context, transition models.StatusTransition) (bool, error) {
	var agencies []byte
	if transition.Agencies != nil {
		var err error
		agencies, err = marshalAgencySet(&models.AgencySet{Agencies: transition.Agencies})
		if err != nil {
			return false, err
		}
	}

	query := `
		UPDATE events SET
			status = $3,
			assigned_agency = COALESCE($4::jsonb, assigned_agency),
			assigned_agencies = CASE WHEN $4::jsonb IS NULL THEN assigned_agencies ELSE NULL END,
			ground_staff = COALESCE($5, ground_staff),
			ground_staff_id = COALESCE($6::uuid, ground_staff_id),
			assignment_time = COALESCE($7, assignment_time),
			resolved_at = COALESCE($8, resolved_at),
			updated_at = NOW()
		WHERE event_id = $1 AND status = $2;
	`
	tag, err := r.db.Exec(ctx, query,
		transition.EventID,
		string(transition.From),
		string(transition.To),
		agencies,
		transition.GroundStaff,
		transition.GroundStaffID,
		transition.AssignmentTime,
		transition.ResolvedAt,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update event status: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// FindOpenNearby ищет ближайшее нерешенное событие той же категории в радиусе,
// обновлявшееся не раньше since. Если такого нет, возвращает nil без ошибки.
func (r *EventRepository) FindOpenNearby(ctx context.Context, category string, point geo.Point, radiusMeters float64, since time.Time) (*models.Event, error) {
	location, err := point.EWKB()
	if err != nil {
		return nil, err
	}

	query := `SELECT` + eventColumns + `
		FROM events
		WHERE lower(category) = lower($1)
		  AND status <> $5
		  AND ST_DWithin(location, ST_GeomFromEWKB($2)::geography, $3)
		  AND updated_at >= $4
		ORDER BY ST_Distance(location, ST_GeomFromEWKB($2)::geography)
		LIMIT 1;`

	event, err := scanEvent(r.db.QueryRow(ctx, query, category, location, radiusMeters, since, string(models.StatusResolved)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find open event nearby: %w", err)
	}
	return event, nil
}

// AppendIncident добавляет снимок в конец списка инцидентов события
func (r *EventRepository) AppendIncident(ctx context.Context, eventID string, incident models.Incident) error {
	payload, err := json.Marshal(incident)
	if err != nil {
		return fmt.Errorf("failed to encode incident: %w", err)
	}

	query := `
		UPDATE events
		SET incidents = incidents || jsonb_build_array($2::jsonb), updated_at = NOW()
		WHERE event_id = $1;
	`
	tag, err := r.db.Exec(ctx, query, eventID, payload)
	if err != nil {
		return fmt.Errorf("failed to append incident: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return service.ErrEventNotFound
	}
	return nil
}

func (r *EventRepository) queryEvents(ctx context.Context, query string, args ...any) ([]*models.Event, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	events := make([]*models.Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}
	return events, nil
}

func scanEvent(row pgx.Row) (*models.Event, error) {
	event := &models.Event{}
	var (
		status                         string
		incidents                      []byte
		assignedAgency, legacyAgencies []byte
	)

	err := row.Scan(
		&event.EventID,
		&event.Description,
		&event.Category,
		&event.Critical,
		&status,
		&event.Location.Latitude,
		&event.Location.Longitude,
		&event.Timestamp,
		&incidents,
		&assignedAgency,
		&legacyAgencies,
		&event.GroundStaff,
		&event.GroundStaffID,
		&event.AssignmentTime,
		&event.ResolvedAt,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	event.Status = models.EventStatus(status)

	event.Incidents = make([]models.Incident, 0)
	if len(incidents) > 0 {
		if err := json.Unmarshal(incidents, &event.Incidents); err != nil {
			return nil, fmt.Errorf("failed to decode incidents: %w", err)
		}
	}
	if event.AssignedAgency, err = unmarshalAgencySet(assignedAgency); err != nil {
		return nil, err
	}
	if event.AssignedAgencies, err = unmarshalAgencySet(legacyAgencies); err != nil {
		return nil, err
	}
	return event, nil
}

func marshalAgencySet(set *models.AgencySet) ([]byte, error) {
	if set == nil {
		return nil, nil
	}
	if set.Agencies == nil {
		set = &models.AgencySet{Agencies: []string{}}
	}
	data, err := json.Marshal(set)
	if err != nil {
		return nil, fmt.Errorf("failed to encode agency set: %w", err)
	}
	return data, nil
}

func unmarshalAgencySet(data []byte) (*models.AgencySet, error) {
	if len(data) == 0 {
		return nil, nil
	}
	set := &models.AgencySet{}
	if err := json.Unmarshal(data, set); err != nil {
		return nil, fmt.Errorf("failed to decode agency set: %w", err)
	}
	return set, nil
}

func incidentsOrEmpty(incidents []models.Incident) []models.Incident {
	if incidents == nil {
		return []models.Incident{}
	}
	return incidents
}
