package pubsub

import (
	"context"
	"encoding/base64"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tether/internal/domain/service"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishPresenceEvent(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.NoError(t, json.Unmarshal(body, &received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	arrivedAt := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	event := &service.PresenceEvent{
		RequestID:  "req-1",
		EventID:    "evt-1",
		UserID:     "user-1",
		Kind:       service.PresenceArrived,
		Latitude:   25.03,
		Longitude:  121.56,
		ArrivedAt:  &arrivedAt,
		OccurredAt: arrivedAt.Add(5 * time.Minute),
	}

	require.NoError(t, publisher.PublishPresenceEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, "user-1", received.Message.Attributes["user_id"])
	assert.Equal(t, "arrived", received.Message.Attributes["kind"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded service.PresenceEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, event.UserID, decoded.UserID)
	assert.Equal(t, event.Kind, decoded.Kind)
	require.NotNil(t, decoded.ArrivedAt)
	assert.True(t, arrivedAt.Equal(*decoded.ArrivedAt))
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	err := publisher.PublishPresenceEvent(context.Background(), &service.PresenceEvent{EventID: "evt-1", UserID: "user-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestNoopPublisher(t *testing.T) {
	publisher := NewNoopPublisher(newDiscardLogger())
	assert.NoError(t, publisher.PublishPresenceEvent(context.Background(), &service.PresenceEvent{EventID: "evt-1"}))
	assert.NoError(t, publisher.Close())
}
