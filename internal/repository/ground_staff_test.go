package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shenikar/agency_dispatch_system/internal/models"
	"github.com/shenikar/agency_dispatch_system/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var groundStaffRowColumns = []string{"id", "name", "number", "address", "agency_id", "password_hash", "created_at"}

func TestGroundStaffRepository_Create(t *testing.T) {
	staff := &models.GroundStaff{
		ID:           uuid.MustParse("5f0c9a52-4d3e-4b8a-9d1f-2a7b6c8e9f01"),
		Name:         "Ravi",
		Number:       "8880001111",
		Address:      "MG Road",
		AgencyID:     "AGFIR1234",
		PasswordHash: "hash",
	}

	t.Run("created", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewGroundStaffRepository(mock)

		mock.ExpectQuery("INSERT INTO ground_staff").
			WithArgs(staff.ID, "Ravi", "8880001111", "MG Road", "AGFIR1234", "hash").
			WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(testCreatedAt))

		require.NoError(t, repo.Create(context.Background(), staff))
		assert.Equal(t, testCreatedAt, staff.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("number taken", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewGroundStaffRepository(mock)

		mock.ExpectQuery("INSERT INTO ground_staff").
			WithArgs(staff.ID, "Ravi", "8880001111", "MG Road", "AGFIR1234", "hash").
			WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "ground_staff_number_key"})

		err := repo.Create(context.Background(), staff)
		assert.ErrorIs(t, err, service.ErrMobileTaken)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("agency deleted", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewGroundStaffRepository(mock)

		mock.ExpectQuery("INSERT INTO ground_staff").
			WithArgs(staff.ID, "Ravi", "8880001111", "MG Road", "AGFIR1234", "hash").
			WillReturnError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "ground_staff_agency_id_fkey"})

		err := repo.Create(context.Background(), staff)
		assert.ErrorIs(t, err, service.ErrAgencyNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGroundStaffRepository_GetByNumber(t *testing.T) {
	id := uuid.New()

	t.Run("found", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewGroundStaffRepository(mock)

		mock.ExpectQuery("FROM ground_staff WHERE number = \\$1").
			WithArgs("8880001111").
			WillReturnRows(pgxmock.NewRows(groundStaffRowColumns).
				AddRow(id, "Ravi", "8880001111", "MG Road", "AGFIR1234", "hash", testCreatedAt))

		staff, err := repo.GetByNumber(context.Background(), "8880001111")
		require.NoError(t, err)
		assert.Equal(t, id, staff.ID)
		assert.Equal(t, "AGFIR1234", staff.AgencyID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewGroundStaffRepository(mock)

		mock.ExpectQuery("FROM ground_staff WHERE number = \\$1").
			WithArgs("0000000000").
			WillReturnRows(pgxmock.NewRows(groundStaffRowColumns))

		_, err := repo.GetByNumber(context.Background(), "0000000000")
		assert.ErrorIs(t, err, service.ErrGroundStaffNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGroundStaffRepository_GetByID_NotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewGroundStaffRepository(mock)
	id := uuid.New()

	mock.ExpectQuery("FROM ground_staff WHERE id = \\$1").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(groundStaffRowColumns))

	_, err := repo.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, service.ErrGroundStaffNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGroundStaffRepository_ListByAgency(t *testing.T) {
	mock := newMockPool(t)
	repo := NewGroundStaffRepository(mock)

	mock.ExpectQuery("FROM ground_staff WHERE agency_id = \\$1").
		WithArgs("AGFIR1234").
		WillReturnRows(pgxmock.NewRows(groundStaffRowColumns).
			AddRow(uuid.New(), "Ravi", "8880001111", "MG Road", "AGFIR1234", "hash", testCreatedAt).
			AddRow(uuid.New(), "Asha", "8880002222", "Brigade Road", "AGFIR1234", "hash", testCreatedAt))

	staff, err := repo.ListByAgency(context.Background(), "AGFIR1234")
	require.NoError(t, err)
	require.Len(t, staff, 2)
	assert.Equal(t, "Asha", staff[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
