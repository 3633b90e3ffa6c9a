package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"places/internal/domain/service"
	"places/internal/infra/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleEvent() *service.PlaceEvent {
	return &service.PlaceEvent{
		RequestID:  "req-1",
		Type:       service.PlaceCreated,
		PlaceID:    "ola-42",
		Name:       "Cubbon Park",
		Types:      "park",
		Latitude:   12.9763,
		Longitude:  77.5929,
		Pincode:    "560001",
		OccurredAt: time.Date(2024, 5, 10, 8, 0, 0, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PushesEnvelope(t *testing.T) {
	var push PubSubPushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&push))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	require.NoError(t, publisher.PublishPlaceEvent(context.Background(), sampleEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, push.Subscription)
	assert.NotEmpty(t, push.Message.MessageID)
	assert.Equal(t, map[string]string{
		"event_type": "place.created",
		"place_id":   "ola-42",
		"request_id": "req-1",
	}, push.Message.Attributes)

	data, err := base64.StdEncoding.DecodeString(push.Message.Data)
	require.NoError(t, err)

	var event service.PlaceEvent
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, *sampleEvent(), event)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	err := publisher.PublishPlaceEvent(context.Background(), sampleEvent())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestInstrumentedPublisher_CountsOutcomes(t *testing.T) {
	registry := metrics.NewRegistry()
	m := metrics.NewMetrics(registry)

	okServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer okServer.Close()

	publisher := &instrumentedPublisher{next: NewLocalHTTPPublisher(okServer.URL, discardLogger()), metrics: m}
	require.NoError(t, publisher.PublishPlaceEvent(context.Background(), sampleEvent()))

	failing := &instrumentedPublisher{next: NewLocalHTTPPublisher("http://127.0.0.1:1", discardLogger()), metrics: m}
	require.Error(t, failing.PublishPlaceEvent(context.Background(), sampleEvent()))

	count, err := testutil.GatherAndCount(registry, "places_events_published_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	require.NoError(t, publisher.Close())
}

func TestNoopPublisher(t *testing.T) {
	publisher := NewNoopPublisher(discardLogger())

	require.NoError(t, publisher.PublishPlaceEvent(context.Background(), sampleEvent()))
	require.NoError(t, publisher.Close())
}
