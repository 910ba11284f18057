package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/shenikar/agency_dispatch_system/internal/geo"
	"github.com/shenikar/agency_dispatch_system/internal/models"
	"github.com/shenikar/agency_dispatch_system/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var eventRowColumns = []string{
	"event_id", "description", "category", "critical", "status",
	"latitude", "longitude", "timestamp", "incidents",
	"assigned_agency", "assigned_agencies", "ground_staff", "ground_staff_id",
	"assignment_time", "resolved_at", "created_at", "updated_at",
}

func testIncident() models.Incident {
	return models.Incident{
		IncidentID:    "0b4a1c4e-8b7d-4a8e-9f0a-3f1f3a1c2d10",
		ImageURL:      "http://minio:9000/images/2024/a.jpg",
		Location:      geo.GeoJSONPoint{Type: geo.TypePoint, Coordinates: []float64{77.59, 12.97}},
		Timestamp:     testCreatedAt,
		BoundingBoxes: []models.BoundingBox{{1, 2, 3, 4}},
	}
}

func eventRow(t *testing.T, rows *pgxmock.Rows, status models.EventStatus, assigned, legacy any) *pgxmock.Rows {
	t.Helper()
	incidents, err := json.Marshal([]models.Incident{testIncident()})
	require.NoError(t, err)
	return rows.AddRow(
		"ev-1", "fire", "fire", true, string(status),
		12.97, 77.59, testCreatedAt, incidents,
		assigned, legacy, nil, nil,
		nil, nil, testCreatedAt, testCreatedAt,
	)
}

func TestEventRepository_Create(t *testing.T) {
	mock := newMockPool(t)
	repo := NewEventRepository(mock)

	event := &models.Event{
		EventID:        "ev-1",
		Description:    "fire",
		Category:       "fire",
		Critical:       true,
		Status:         models.StatusPending,
		Location:       geo.Point{Latitude: 12.97, Longitude: 77.59},
		Timestamp:      testCreatedAt,
		Incidents:      []models.Incident{testIncident()},
		AssignedAgency: &models.AgencySet{Agencies: []string{"AGFIR1234"}},
	}
	incidents, err := json.Marshal(event.Incidents)
	require.NoError(t, err)

	mock.ExpectQuery("INSERT INTO events").
		WithArgs("ev-1", "fire", "fire", true, "pending", mustEWKB(t, event.Location), testCreatedAt,
			incidents, []byte(`{"agencies":["AGFIR1234"]}`)).
		WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at"}).AddRow(testCreatedAt, testCreatedAt))

	require.NoError(t, repo.Create(context.Background(), event))
	assert.Equal(t, testCreatedAt, event.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_GetByID(t *testing.T) {
	mock := newMockPool(t)
	repo := NewEventRepository(mock)

	mock.ExpectQuery("FROM events WHERE event_id = \\$1").
		WithArgs("ev-1").
		WillReturnRows(eventRow(t, pgxmock.NewRows(eventRowColumns), models.StatusPending,
			[]byte(`{"agencies":["AGFIR1234"]}`), []byte(`{"agencies":["AGFIR1234","AGFIR5678"]}`)))

	event, err := repo.GetByID(context.Background(), "ev-1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, event.Status)
	require.Len(t, event.Incidents, 1)
	assert.Equal(t, testIncident().ImageURL, event.Incidents[0].ImageURL)
	assert.Equal(t, []string{"AGFIR1234", "AGFIR5678"}, event.CandidateAgencies())
	assert.Nil(t, event.GroundStaff)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_GetByID_NotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewEventRepository(mock)

	mock.ExpectQuery("FROM events WHERE event_id = \\$1").
		WithArgs("missing").
		WillReturnRows(pgxmock.NewRows(eventRowColumns))

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, service.ErrEventNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_ListByAgency(t *testing.T) {
	mock := newMockPool(t)
	repo := NewEventRepository(mock)

	rows := pgxmock.NewRows(eventRowColumns)
	eventRow(t, rows, models.StatusAccepted, []byte(`{"agencies":["AGFIR1234"]}`), nil)

	mock.ExpectQuery("assigned_agency->'agencies' @>").
		WithArgs("AGFIR1234").
		WillReturnRows(rows)

	events, err := repo.ListByAgency(context.Background(), "AGFIR1234")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, models.StatusAccepted, events[0].Status)
	assert.Nil(t, events[0].AssignedAgencies)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_ListByGroundStaff_Empty(t *testing.T) {
	mock := newMockPool(t)
	repo := NewEventRepository(mock)

	mock.ExpectQuery("ground_staff_id::text = \\$2").
		WithArgs("AGFIR1234", "5f0c9a52-4d3e-4b8a-9d1f-2a7b6c8e9f01").
		WillReturnRows(pgxmock.NewRows(eventRowColumns))

	events, err := repo.ListByGroundStaff(context.Background(), "AGFIR1234", "5f0c9a52-4d3e-4b8a-9d1f-2a7b6c8e9f01")
	require.NoError(t, err)
	assert.Empty(t, events)
	assert.NotNil(t, events)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_TransitionStatus(t *testing.T) {
	now := time.Date(2024, 3, 1, 11, 0, 0, 0, time.UTC)

	t.Run("accept collapses candidates", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewEventRepository(mock)

		mock.ExpectExec("UPDATE events SET").
			WithArgs("ev-1", "pending", "Accepted", []byte(`{"agencies":["AGFIR1234"]}`),
				(*string)(nil), (*string)(nil), &now, (*time.Time)(nil)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		applied, err := repo.TransitionStatus(context.Background(), models.StatusTransition{
			EventID:        "ev-1",
			From:           models.StatusPending,
			To:             models.StatusAccepted,
			Agencies:       []string{"AGFIR1234"},
			AssignmentTime: &now,
		})
		require.NoError(t, err)
		assert.True(t, applied)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("status changed concurrently", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewEventRepository(mock)

		mock.ExpectExec("WHERE event_id = \\$1 AND status = \\$2").
			WithArgs("ev-1", "Assigned", "Resolved", []byte(nil),
				(*string)(nil), (*string)(nil), (*time.Time)(nil), &now).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		applied, err := repo.TransitionStatus(context.Background(), models.StatusTransition{
			EventID:    "ev-1",
			From:       models.StatusAssigned,
			To:         models.StatusResolved,
			ResolvedAt: &now,
		})
		require.NoError(t, err)
		assert.False(t, applied)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEventRepository_FindOpenNearby(t *testing.T) {
	point := geo.Point{Latitude: 12.97, Longitude: 77.59}
	since := testCreatedAt.Add(-10 * time.Minute)

	t.Run("found", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewEventRepository(mock)

		mock.ExpectQuery("ST_DWithin").
			WithArgs("fire", mustEWKB(t, point), 50.0, since, "Resolved").
			WillReturnRows(eventRow(t, pgxmock.NewRows(eventRowColumns), models.StatusPending,
				[]byte(`{"agencies":["AGFIR1234"]}`), nil))

		event, err := repo.FindOpenNearby(context.Background(), "fire", point, 50, since)
		require.NoError(t, err)
		require.NotNil(t, event)
		assert.Equal(t, "ev-1", event.EventID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("none", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewEventRepository(mock)

		mock.ExpectQuery("ST_DWithin").
			WithArgs("fire", mustEWKB(t, point), 50.0, since, "Resolved").
			WillReturnRows(pgxmock.NewRows(eventRowColumns))

		event, err := repo.FindOpenNearby(context.Background(), "fire", point, 50, since)
		require.NoError(t, err)
		assert.Nil(t, event)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEventRepository_AppendIncident(t *testing.T) {
	incident := testIncident()
	payload, err := json.Marshal(incident)
	require.NoError(t, err)

	t.Run("appended", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewEventRepository(mock)

		mock.ExpectExec("SET incidents = incidents \\|\\| jsonb_build_array").
			WithArgs("ev-1", payload).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, repo.AppendIncident(context.Background(), "ev-1", incident))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("event missing", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewEventRepository(mock)

		mock.ExpectExec("SET incidents").
			WithArgs("missing", payload).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := repo.AppendIncident(context.Background(), "missing", incident)
		assert.ErrorIs(t, err, service.ErrEventNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
