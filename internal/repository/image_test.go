package repository

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shenikar/agency_dispatch_system/internal/geo"
	"github.com/shenikar/agency_dispatch_system/internal/models"
	"github.com/shenikar/agency_dispatch_system/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageRepository_Create(t *testing.T) {
	mock := newMockPool(t)
	repo := NewImageRepository(mock)

	image := &models.Image{
		IncidentID: uuid.MustParse("0b4a1c4e-8b7d-4a8e-9f0a-3f1f3a1c2d10"),
		UserID:     "user-1",
		Location:   geo.Point{Latitude: 12.97, Longitude: 77.59},
		Timestamp:  testCreatedAt,
		Exif:       json.RawMessage(`{"Make":"Canon"}`),
		Status:     models.ImageStatusPending,
	}

	mock.ExpectQuery("INSERT INTO images").
		WithArgs(image.IncidentID, "user-1", mustEWKB(t, image.Location), testCreatedAt, "",
			[]byte(`{"Make":"Canon"}`), models.ImageStatusPending).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), testCreatedAt))

	require.NoError(t, repo.Create(context.Background(), image))
	assert.Equal(t, int64(7), image.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestImageRepository_LinkEvent(t *testing.T) {
	mock := newMockPool(t)
	repo := NewImageRepository(mock)
	incidentID := uuid.New()

	mock.ExpectExec("UPDATE images SET event_id").
		WithArgs(incidentID, "ev-1", models.ImageStatusProcessed).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	linked, err := repo.LinkEvent(context.Background(), incidentID, "ev-1")
	require.NoError(t, err)
	assert.True(t, linked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestImageRepository_LinkEventUnknownEvent(t *testing.T) {
	mock := newMockPool(t)
	repo := NewImageRepository(mock)
	incidentID := uuid.New()

	mock.ExpectExec("UPDATE images SET event_id").
		WithArgs(incidentID, "ev-missing", models.ImageStatusProcessed).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "images_event_id_fkey"})

	linked, err := repo.LinkEvent(context.Background(), incidentID, "ev-missing")
	require.Error(t, err)
	assert.False(t, linked)
	assert.ErrorIs(t, err, service.ErrEventNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestImageRepository_ListLatest(t *testing.T) {
	mock := newMockPool(t)
	repo := NewImageRepository(mock)
	eventID := "ev-1"

	mock.ExpectQuery("FROM images").
		WithArgs(3).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "incident_id", "user_id", "latitude", "longitude", "timestamp",
			"image_url", "exif", "status", "event_id", "created_at",
		}).
			AddRow(int64(2), uuid.New(), "user-1", 12.97, 77.59, testCreatedAt, "http://minio:9000/images/2024/b.jpg", nil, models.ImageStatusProcessed, &eventID, testCreatedAt).
			AddRow(int64(1), uuid.New(), "user-2", 12.98, 77.60, testCreatedAt, "", []byte(`{"Make":"Nikon"}`), models.ImageStatusPending, nil, testCreatedAt))

	images, err := repo.ListLatest(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, images, 2)
	require.NotNil(t, images[0].EventID)
	assert.Equal(t, "ev-1", *images[0].EventID)
	assert.Nil(t, images[0].Exif)
	assert.JSONEq(t, `{"Make":"Nikon"}`, string(images[1].Exif))
	assert.Nil(t, images[1].EventID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
