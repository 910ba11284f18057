package repository

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/shenikar/agency_dispatch_system/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigRepository_GetValue(t *testing.T) {
	mock := newMockPool(t)
	repo := NewConfigRepository(mock)

	mock.ExpectQuery("SELECT value, updated_at FROM app_config").
		WithArgs(service.KeyActiveModel).
		WillReturnRows(pgxmock.NewRows([]string{"value", "updated_at"}).AddRow([]byte(`"VLM"`), testCreatedAt))

	value, updatedAt, err := repo.GetValue(context.Background(), service.KeyActiveModel)
	require.NoError(t, err)
	assert.JSONEq(t, `"VLM"`, string(value))
	assert.Equal(t, testCreatedAt, updatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConfigRepository_GetValue_Missing(t *testing.T) {
	mock := newMockPool(t)
	repo := NewConfigRepository(mock)

	mock.ExpectQuery("FROM app_config").
		WithArgs(service.KeyModelQueueMap).
		WillReturnRows(pgxmock.NewRows([]string{"value", "updated_at"}))

	_, _, err := repo.GetValue(context.Background(), service.KeyModelQueueMap)
	assert.ErrorIs(t, err, service.ErrConfigNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConfigRepository_SetValue(t *testing.T) {
	mock := newMockPool(t)
	repo := NewConfigRepository(mock)

	mock.ExpectQuery("ON CONFLICT \\(key\\) DO UPDATE").
		WithArgs(service.KeyActiveModel, []byte(`"YOLO"`)).
		WillReturnRows(pgxmock.NewRows([]string{"updated_at"}).AddRow(testCreatedAt))

	updatedAt, err := repo.SetValue(context.Background(), service.KeyActiveModel, "YOLO")
	require.NoError(t, err)
	assert.Equal(t, testCreatedAt, updatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}
