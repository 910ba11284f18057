package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shenikar/agency_dispatch_system/internal/geo"
	"github.com/shenikar/agency_dispatch_system/internal/models"
	"github.com/shenikar/agency_dispatch_system/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var agencyRowColumns = []string{
	"agency_id", "agency_name", "mobile_number", "password_hash",
	"latitude", "longitude", "jurisdiction", "event_responsible_for",
	"created_at", "updated_at",
}

var testCreatedAt = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func mustEWKB(t *testing.T, p geo.Point) []byte {
	t.Helper()
	data, err := p.EWKB()
	require.NoError(t, err)
	return data
}

func testJurisdiction(t *testing.T) *geo.Jurisdiction {
	t.Helper()
	j, err := geo.NewJurisdiction(geo.PolygonInput{
		Type:        geo.TypePolygon,
		Coordinates: [][]float64{{12.9, 77.5}, {12.9, 77.7}, {13.1, 77.7}, {13.1, 77.5}},
	})
	require.NoError(t, err)
	return j
}

func TestAgencyRepository_Create(t *testing.T) {
	mock := newMockPool(t)
	repo := NewAgencyRepository(mock)

	agency := &models.Agency{
		AgencyID:            "AGFIR1234",
		AgencyName:          "Fire Station 1",
		MobileNumber:        "9990001111",
		PasswordHash:        "hash",
		Location:            geo.Point{Latitude: 12.97, Longitude: 77.59},
		EventResponsibleFor: []string{"fire"},
	}

	mock.ExpectQuery("INSERT INTO agencies").
		WithArgs("AGFIR1234", "Fire Station 1", "9990001111", "hash",
			mustEWKB(t, agency.Location), []byte(nil), []string{"fire"}).
		WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at"}).AddRow(testCreatedAt, testCreatedAt))

	err := repo.Create(context.Background(), agency)
	require.NoError(t, err)
	assert.Equal(t, testCreatedAt, agency.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAgencyRepository_Create_UniqueViolations(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
		want       error
	}{
		{"mobile taken", "agencies_mobile_number_key", service.ErrMobileTaken},
		{"agency id taken", "agencies_agency_id_key", service.ErrAgencyIDTaken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMockPool(t)
			repo := NewAgencyRepository(mock)

			mock.ExpectQuery("INSERT INTO agencies").
				WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
					pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
				WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: tt.constraint})

			err := repo.Create(context.Background(), &models.Agency{AgencyID: "AGFIR1234"})
			assert.ErrorIs(t, err, tt.want)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAgencyRepository_GetByAgencyID(t *testing.T) {
	mock := newMockPool(t)
	repo := NewAgencyRepository(mock)

	j := testJurisdiction(t)
	jurisdiction, err := j.EWKB()
	require.NoError(t, err)

	mock.ExpectQuery("FROM agencies WHERE agency_id = \\$1").
		WithArgs("AGFIR1234").
		WillReturnRows(pgxmock.NewRows(agencyRowColumns).AddRow(
			"AGFIR1234", "Fire Station 1", "9990001111", "hash",
			12.97, 77.59, jurisdiction, []string{"fire", "smoke"},
			testCreatedAt, testCreatedAt,
		))

	agency, err := repo.GetByAgencyID(context.Background(), "AGFIR1234")
	require.NoError(t, err)
	assert.Equal(t, "Fire Station 1", agency.AgencyName)
	assert.Equal(t, geo.Point{Latitude: 12.97, Longitude: 77.59}, agency.Location)
	require.NotNil(t, agency.Jurisdiction)
	assert.Equal(t, j.Ring(), agency.Jurisdiction.Ring())
	assert.Equal(t, models.AgencyTypeJurisdiction, agency.Type())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAgencyRepository_GetByMobile_NotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewAgencyRepository(mock)

	mock.ExpectQuery("FROM agencies WHERE mobile_number = \\$1").
		WithArgs("0000000000").
		WillReturnRows(pgxmock.NewRows(agencyRowColumns))

	_, err := repo.GetByMobile(context.Background(), "0000000000")
	assert.ErrorIs(t, err, service.ErrAgencyNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAgencyRepository_UpdatePassword(t *testing.T) {
	mock := newMockPool(t)
	repo := NewAgencyRepository(mock)

	mock.ExpectExec("UPDATE agencies SET password_hash").
		WithArgs("AGFIR1234", "new-hash").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	updated, err := repo.UpdatePassword(context.Background(), "AGFIR1234", "new-hash")
	require.NoError(t, err)
	assert.True(t, updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAgencyRepository_Update(t *testing.T) {
	name := "Fire Station 2"

	t.Run("modified", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewAgencyRepository(mock)

		mock.ExpectExec(regexp.QuoteMeta(
			"UPDATE agencies SET agency_name = $2, jurisdiction = NULL, updated_at = NOW() " +
				"WHERE agency_id = $1 AND (agency_name IS DISTINCT FROM $2 OR jurisdiction IS NOT NULL)")).
			WithArgs("AGFIR1234", name).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		modified, err := repo.Update(context.Background(), "AGFIR1234", models.AgencyUpdate{
			AgencyName:         &name,
			RemoveJurisdiction: true,
		})
		require.NoError(t, err)
		assert.True(t, modified)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nothing changed", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewAgencyRepository(mock)

		mock.ExpectExec("UPDATE agencies SET agency_name").
			WithArgs("AGFIR1234", name).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs("AGFIR1234").
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

		modified, err := repo.Update(context.Background(), "AGFIR1234", models.AgencyUpdate{AgencyName: &name})
		require.NoError(t, err)
		assert.False(t, modified)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("agency missing", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewAgencyRepository(mock)

		mock.ExpectExec("UPDATE agencies SET agency_name").
			WithArgs("AGNONE000", name).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs("AGNONE000").
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

		_, err := repo.Update(context.Background(), "AGNONE000", models.AgencyUpdate{AgencyName: &name})
		assert.ErrorIs(t, err, service.ErrAgencyNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("mobile conflict", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewAgencyRepository(mock)
		mobile := "9990002222"

		mock.ExpectExec("UPDATE agencies SET mobile_number").
			WithArgs("AGFIR1234", mobile).
			WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "agencies_mobile_number_key"})

		_, err := repo.Update(context.Background(), "AGFIR1234", models.AgencyUpdate{MobileNumber: &mobile})
		assert.ErrorIs(t, err, service.ErrMobileTaken)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty update", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewAgencyRepository(mock)

		modified, err := repo.Update(context.Background(), "AGFIR1234", models.AgencyUpdate{})
		require.NoError(t, err)
		assert.False(t, modified)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAgencyRepository_Delete(t *testing.T) {
	mock := newMockPool(t)
	repo := NewAgencyRepository(mock)

	mock.ExpectExec("DELETE FROM agencies").
		WithArgs("AGNONE000").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	deleted, err := repo.Delete(context.Background(), "AGNONE000")
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAgencyRepository_List(t *testing.T) {
	mock := newMockPool(t)
	repo := NewAgencyRepository(mock)

	mock.ExpectQuery("FROM agencies").
		WithArgs("fire", models.AgencyTypeLocation).
		WillReturnRows(pgxmock.NewRows(agencyRowColumns).
			AddRow("AGFIR1234", "Fire Station 1", "9990001111", "hash", 12.97, 77.59, nil, []string{"fire"}, testCreatedAt, testCreatedAt).
			AddRow("AGFIR5678", "Fire Station 2", "9990002222", "hash", 12.98, 77.60, nil, nil, testCreatedAt, testCreatedAt))

	agencies, err := repo.List(context.Background(), models.AgencyFilter{Tag: "fire", Type: models.AgencyTypeLocation})
	require.NoError(t, err)
	require.Len(t, agencies, 2)
	assert.Nil(t, agencies[0].Jurisdiction)
	assert.Equal(t, []string{}, agencies[1].EventResponsibleFor)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAgencyRepository_FindByPoint(t *testing.T) {
	point := geo.Point{Latitude: 12.97, Longitude: 77.59}

	t.Run("location mode", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewAgencyRepository(mock)

		mock.ExpectQuery("ST_DWithin").
			WithArgs(mustEWKB(t, point), 5000.0, "fire", 10).
			WillReturnRows(pgxmock.NewRows(append(append([]string{}, agencyRowColumns...), "distance")).
				AddRow("AGFIR1234", "Fire Station 1", "9990001111", "hash", 12.971, 77.591, nil, []string{"fire"}, testCreatedAt, testCreatedAt, 145.2))

		matches, err := repo.FindByPoint(context.Background(), models.PointSearch{
			Point:        point,
			RadiusMeters: 5000,
			Mode:         models.SearchModeLocation,
			Tag:          "fire",
			Limit:        10,
		})
		require.NoError(t, err)
		require.Len(t, matches, 1)
		require.NotNil(t, matches[0].DistanceMeters)
		assert.InDelta(t, 145.2, *matches[0].DistanceMeters, 0.001)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("jurisdiction mode", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewAgencyRepository(mock)

		jurisdiction, err := testJurisdiction(t).EWKB()
		require.NoError(t, err)

		mock.ExpectQuery("ST_Covers").
			WithArgs(mustEWKB(t, point), "", 1).
			WillReturnRows(pgxmock.NewRows(agencyRowColumns).
				AddRow("AGPOL0001", "Police", "9990003333", "hash", 13.0, 77.6, jurisdiction, []string{"crime"}, testCreatedAt, testCreatedAt))

		matches, err := repo.FindByPoint(context.Background(), models.PointSearch{
			Point: point,
			Mode:  models.SearchModeJurisdiction,
			Limit: 1,
		})
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Nil(t, matches[0].DistanceMeters)
		assert.Equal(t, "AGPOL0001", matches[0].AgencyID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
