package queue

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/agency_dispatch_system/internal/apperror"
	"github.com/shenikar/agency_dispatch_system/internal/config"
	"github.com/shenikar/agency_dispatch_system/internal/geo"
	"github.com/shenikar/agency_dispatch_system/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHandler struct {
	mu    sync.Mutex
	calls []models.Detection
	errs  []error
}

func (f *fakeHandler) HandleDetection(_ context.Context, d models.Detection) (*models.DispatchResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, d)
	if len(f.errs) > 0 {
		err := f.errs[0]
		f.errs = f.errs[1:]
		if err != nil {
			return nil, err
		}
	}
	return &models.DispatchResult{EventID: "evt-1", Created: true}, nil
}

func (f *fakeHandler) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func newTestWorker(t *testing.T, handler DetectionHandler) (*DetectionWorker, *redis.Client, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		DetectionQueue:   "detected_objects_queue",
		WorkerMaxRetries: 2,
		WorkerBaseDelay:  time.Millisecond,
	}
	return NewDetectionWorker(client, handler, logger, cfg), client, mr
}

func detectionPayload(t *testing.T) string {
	data, err := json.Marshal(models.Detection{
		IncidentID:     "inc-1",
		DetectedObject: "fire",
		Critical:       true,
		Location:       geo.GeoJSONPoint{Type: "Point", Coordinates: []float64{77.59, 12.97}},
	})
	require.NoError(t, err)
	return string(data)
}

func TestRedisPublisher_Publish(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	publisher := NewRedisPublisher(client)
	err := publisher.Publish(context.Background(), "yolo_queue", map[string]string{"incident_id": "inc-1"})
	require.NoError(t, err)

	items, err := mr.List("yolo_queue")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.JSONEq(t, `{"incident_id":"inc-1"}`, items[0])
}

func TestRedisPublisher_Unreachable(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	defer client.Close()

	err := NewRedisPublisher(client).Publish(context.Background(), "yolo_queue", "x")
	assert.Error(t, err)
}

func TestDetectionWorker_ConsumesQueue(t *testing.T) {
	handler := &fakeHandler{}
	worker, client, _ := newTestWorker(t, handler)

	ctx, cancel := context.WithCancel(context.Background())
	done := worker.Start(ctx)

	require.NoError(t, client.LPush(ctx, "detected_objects_queue", detectionPayload(t)).Err())

	assert.Eventually(t, func() bool { return handler.count() == 1 }, 3*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("worker did not stop")
	}

	assert.Equal(t, "fire", handler.calls[0].DetectedObject)
}

func TestDetectionWorker_RetriesTransientErrors(t *testing.T) {
	handler := &fakeHandler{errs: []error{
		apperror.Persistence("create event", errors.New("timeout")),
		apperror.Dependency("object store", errors.New("timeout")),
	}}
	worker, _, mr := newTestWorker(t, handler)

	worker.process(context.Background(), detectionPayload(t))

	assert.Equal(t, 3, handler.count())
	assert.False(t, mr.Exists(worker.DeadLetterQueue()))
}

func TestDetectionWorker_DeadLettersAfterRetries(t *testing.T) {
	transient := apperror.Persistence("create event", errors.New("timeout"))
	handler := &fakeHandler{errs: []error{transient, transient, transient}}
	worker, _, mr := newTestWorker(t, handler)

	worker.process(context.Background(), detectionPayload(t))

	assert.Equal(t, 3, handler.count())
	items, err := mr.List(worker.DeadLetterQueue())
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestDetectionWorker_ValidationErrorIsNotRetried(t *testing.T) {
	handler := &fakeHandler{errs: []error{apperror.Validation("detected_object is required")}}
	worker, _, mr := newTestWorker(t, handler)

	worker.process(context.Background(), detectionPayload(t))

	assert.Equal(t, 1, handler.count())
	items, err := mr.List(worker.DeadLetterQueue())
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestDetectionWorker_MalformedPayload(t *testing.T) {
	handler := &fakeHandler{}
	worker, _, mr := newTestWorker(t, handler)

	worker.process(context.Background(), "{not json")

	assert.Zero(t, handler.count())
	items, err := mr.List(worker.DeadLetterQueue())
	require.NoError(t, err)
	assert.Equal(t, []string{"{not json"}, items)
}

func TestDetectionWorker_ShutdownDuringBackoffRequeues(t *testing.T) {
	handler := &fakeHandler{errs: []error{apperror.Persistence("create event", errors.New("timeout"))}}
	worker, _, mr := newTestWorker(t, handler)
	worker.baseDelay = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	payload := detectionPayload(t)
	worker.process(ctx, payload)

	assert.Equal(t, 1, handler.count())
	items, err := mr.List("detected_objects_queue")
	require.NoError(t, err)
	assert.Equal(t, []string{payload}, items)
	assert.False(t, mr.Exists(worker.DeadLetterQueue()))
}
