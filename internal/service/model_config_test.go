package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shenikar/agency_dispatch_system/internal/apperror"
	"github.com/shenikar/agency_dispatch_system/internal/config"
	"github.com/shenikar/agency_dispatch_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestModelConfigService(t *testing.T) (ModelConfigService, *mocks.MockConfigRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockConfigRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		DefaultActiveModel: "YOLO",
		ModelQueues:        map[string]string{"YOLO": "yolo_queue", "VLM": "vlm_queue"},
	}
	return NewModelConfigService(repo, cfg, logger), repo
}

func TestActiveModel_DefaultsWhenUnset(t *testing.T) {
	service, repo := newTestModelConfigService(t)
	ctx := context.Background()

	repo.EXPECT().GetValue(ctx, KeyActiveModel).Return(nil, time.Time{}, ErrConfigNotFound).Times(1)

	setting, err := service.ActiveModel(ctx)

	require.NoError(t, err)
	assert.Equal(t, ModelYOLO, setting.Model)
	assert.Nil(t, setting.UpdatedAt)
}

func TestActiveModel_Stored(t *testing.T) {
	service, repo := newTestModelConfigService(t)
	ctx := context.Background()
	updated := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().GetValue(ctx, KeyActiveModel).Return(json.RawMessage(`"vlm"`), updated, nil).Times(1)

	setting, err := service.ActiveModel(ctx)

	require.NoError(t, err)
	assert.Equal(t, ModelVLM, setting.Model)
	require.NotNil(t, setting.UpdatedAt)
	assert.Equal(t, updated, *setting.UpdatedAt)
}

func TestSetActiveModel(t *testing.T) {
	service, repo := newTestModelConfigService(t)
	ctx := context.Background()
	updated := time.Now()

	repo.EXPECT().SetValue(ctx, KeyActiveModel, ModelVLM).Return(updated, nil).Times(1)

	setting, err := service.SetActiveModel(ctx, " vlm ")
	require.NoError(t, err)
	assert.Equal(t, ModelVLM, setting.Model)

	_, err = service.SetActiveModel(ctx, "GPT")
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestActiveQueue_StoredMapOverridesConfig(t *testing.T) {
	service, repo := newTestModelConfigService(t)
	ctx := context.Background()

	repo.EXPECT().GetValue(ctx, KeyActiveModel).Return(json.RawMessage(`"VLM"`), time.Now(), nil).Times(1)
	repo.EXPECT().GetValue(ctx, KeyModelQueueMap).
		Return(json.RawMessage(`{"YOLO":"detections_yolo","VLM":"detections_vlm"}`), time.Now(), nil).Times(1)

	setting, err := service.ActiveQueue(ctx)

	require.NoError(t, err)
	assert.Equal(t, "detections_vlm", setting.Queue)
}

func TestActiveQueue_FallsBackToConfig(t *testing.T) {
	service, repo := newTestModelConfigService(t)
	ctx := context.Background()

	repo.EXPECT().GetValue(ctx, KeyActiveModel).Return(nil, time.Time{}, ErrConfigNotFound).Times(1)
	repo.EXPECT().GetValue(ctx, KeyModelQueueMap).Return(nil, time.Time{}, ErrConfigNotFound).Times(1)

	setting, err := service.ActiveQueue(ctx)

	require.NoError(t, err)
	assert.Equal(t, ModelYOLO, setting.Model)
	assert.Equal(t, "yolo_queue", setting.Queue)
}

func TestActiveQueue_StorageFailure(t *testing.T) {
	service, repo := newTestModelConfigService(t)
	ctx := context.Background()

	repo.EXPECT().GetValue(ctx, KeyActiveModel).Return(nil, time.Time{}, errors.New("db down")).Times(1)

	_, err := service.ActiveQueue(ctx)

	require.Error(t, err)
	assert.Equal(t, apperror.KindPersistence, apperror.KindOf(err))
}
