package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/agency_dispatch_system/internal/apperror"
	"github.com/shenikar/agency_dispatch_system/internal/config"
	"github.com/shenikar/agency_dispatch_system/internal/geo"
	"github.com/shenikar/agency_dispatch_system/internal/models"
	"github.com/shenikar/agency_dispatch_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type dispatchMocks struct {
	events   *mocks.MockEventRepository
	agencies *mocks.MockAgencyRepository
	images   *mocks.MockImageRepository
}

func newTestDispatchService(t *testing.T) (*dispatchService, dispatchMocks) {
	ctrl := gomock.NewController(t)
	m := dispatchMocks{
		events:   mocks.NewMockEventRepository(ctrl),
		agencies: mocks.NewMockAgencyRepository(ctrl),
		images:   mocks.NewMockImageRepository(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		DispatchRadiusMeters:  5000,
		DispatchMaxCandidates: 3,
		DedupWindow:           30 * time.Minute,
		DedupRadiusMeters:     100,
	}
	service := NewDispatchService(m.events, m.agencies, m.images, cfg, logger).(*dispatchService)
	service.now = func() time.Time { return fixedNow }
	return service, m
}

func sampleDetection(critical bool) models.Detection {
	return models.Detection{
		IncidentID:     uuid.NewString(),
		DetectedObject: "fire",
		Critical:       critical,
		Location:       geo.GeoJSONPoint{Type: "Point", Coordinates: []float64{77.59, 12.97}},
		Timestamp:      fixedNow.Add(-time.Minute),
		ImageURL:       "https://s3.example.com/images/2024/a.jpg",
		BoundingBoxes:  []models.BoundingBox{{10, 20, 30, 40}},
	}
}

func TestHandleDetection_CriticalFansOutByDistance(t *testing.T) {
	service, m := newTestDispatchService(t)
	ctx := context.Background()
	det := sampleDetection(true)
	point := geo.Point{Latitude: 12.97, Longitude: 77.59}

	m.events.EXPECT().FindOpenNearby(ctx, "fire", point, 100.0, fixedNow.Add(-30*time.Minute)).Return(nil, nil).Times(1)
	m.agencies.EXPECT().
		FindByPoint(ctx, models.PointSearch{
			Point:        point,
			RadiusMeters: 5000,
			Mode:         models.SearchModeLocation,
			Tag:          "fire",
			Limit:        3,
		}).
		Return([]*models.AgencyMatch{
			{Agency: models.Agency{AgencyID: "agency-1"}},
			{Agency: models.Agency{AgencyID: "agency-2"}},
		}, nil).
		Times(1)
	m.events.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, e *models.Event) error {
			assert.Equal(t, models.StatusPending, e.Status)
			assert.Equal(t, "fire", e.Description)
			assert.Equal(t, []string{"agency-1", "agency-2"}, e.AssignedAgency.Agencies)
			require.Len(t, e.Incidents, 1)
			assert.Equal(t, det.ImageURL, e.Incidents[0].ImageURL)
			_, err := uuid.Parse(e.EventID)
			assert.NoError(t, err)
			return nil
		}).
		Times(1)
	m.images.EXPECT().LinkEvent(ctx, uuid.MustParse(det.IncidentID), gomock.Any()).Return(true, nil).Times(1)

	res, err := service.HandleDetection(ctx, det)

	require.NoError(t, err)
	assert.True(t, res.Created)
	assert.Equal(t, []string{"agency-1", "agency-2"}, res.Candidates)
}

func TestHandleDetection_NonCriticalUsesJurisdiction(t *testing.T) {
	service, m := newTestDispatchService(t)
	ctx := context.Background()
	det := sampleDetection(false)

	m.events.EXPECT().FindOpenNearby(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)
	m.agencies.EXPECT().
		FindByPoint(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, s models.PointSearch) ([]*models.AgencyMatch, error) {
			assert.Equal(t, models.SearchModeJurisdiction, s.Mode)
			assert.Equal(t, 1, s.Limit)
			return nil, nil
		}).
		Times(1)
	m.events.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, e *models.Event) error {
			assert.Empty(t, e.AssignedAgency.Agencies)
			return nil
		}).
		Times(1)
	m.images.EXPECT().LinkEvent(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil).Times(1)

	res, err := service.HandleDetection(ctx, det)

	require.NoError(t, err)
	assert.True(t, res.Created)
	assert.Empty(t, res.Candidates)
}

func TestHandleDetection_MergesIntoOpenEvent(t *testing.T) {
	service, m := newTestDispatchService(t)
	ctx := context.Background()
	det := sampleDetection(true)

	open := &models.Event{EventID: "evt-1", Status: models.StatusAccepted, AssignedAgency: &models.AgencySet{Agencies: []string{"agency-1"}}}
	m.events.EXPECT().FindOpenNearby(gomock.Any(), "fire", gomock.Any(), gomock.Any(), gomock.Any()).Return(open, nil).Times(1)
	m.events.EXPECT().AppendIncident(ctx, "evt-1", det.Incident()).Return(nil).Times(1)
	m.agencies.EXPECT().FindByPoint(gomock.Any(), gomock.Any()).Times(0)
	m.events.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
	m.images.EXPECT().LinkEvent(ctx, gomock.Any(), "evt-1").Return(true, nil).Times(1)

	res, err := service.HandleDetection(ctx, det)

	require.NoError(t, err)
	assert.False(t, res.Created)
	assert.Equal(t, "evt-1", res.EventID)
	assert.Equal(t, []string{"agency-1"}, res.Candidates)
}

func TestHandleDetection_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(d *models.Detection)
	}{
		{"no incident id", func(d *models.Detection) { d.IncidentID = "" }},
		{"no category", func(d *models.Detection) { d.DetectedObject = " " }},
		{"bad location", func(d *models.Detection) { d.Location.Coordinates = []float64{1} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newTestDispatchService(t)
			m.events.EXPECT().FindOpenNearby(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			det := sampleDetection(true)
			tt.mutate(&det)
			_, err := service.HandleDetection(context.Background(), det)

			require.Error(t, err)
			assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
		})
	}
}

func TestHandleDetection_CreateFailure(t *testing.T) {
	service, m := newTestDispatchService(t)
	ctx := context.Background()

	m.events.EXPECT().FindOpenNearby(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)
	m.agencies.EXPECT().FindByPoint(gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)
	m.events.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("disk full")).Times(1)
	m.images.EXPECT().LinkEvent(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := service.HandleDetection(ctx, sampleDetection(false))

	require.Error(t, err)
	assert.Equal(t, apperror.KindPersistence, apperror.KindOf(err))
}
