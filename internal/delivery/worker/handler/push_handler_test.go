package handler

import (
	"context"
	"encoding/base64"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tether/internal/domain/constants"
	domainerrors "tether/internal/domain/errors"
	"tether/internal/domain/service"
	"tether/internal/infra/metrics"
	"tether/internal/infra/pubsub"
	mockSvc "tether/internal/mocks/service"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func pushBody(t *testing.T, event *service.PresenceEvent, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg pubsub.PushMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = event.EventID
	msg.Message.Attributes = attributes
	msg.Subscription = "projects/test/subscriptions/presence"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = h.HandlePush(c)

	return rec
}

func arrivalEvent() *service.PresenceEvent {
	arrivedAt := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	return &service.PresenceEvent{
		EventID:    "evt-1",
		UserID:     "user-1",
		Kind:       service.PresenceArrived,
		Latitude:   25.033,
		Longitude:  121.5654,
		Address:    "Taipei 101",
		ArrivedAt:  &arrivedAt,
		OccurredAt: arrivedAt.Add(5 * time.Minute),
	}
}

func TestPushHandler_SendsToPresenceTopic(t *testing.T) {
	pushSvc := mockSvc.NewMockPushService(t)
	h := newPushHandler(nil, pushSvc, newDiscardLogger())
	before := testutil.ToFloat64(metrics.PresencePushes.WithLabelValues(pushResultSent))

	pushSvc.EXPECT().
		SendToTopic(mock.Anything, constants.PresenceTopicPrefix+"user-1", "Arrived", "Arrived at Taipei 101", mock.Anything).
		RunAndReturn(func(_ context.Context, _, _, _ string, data map[string]string) error {
			assert.Equal(t, "evt-1", data["event_id"])
			assert.Equal(t, "arrived", data["kind"])
			assert.Equal(t, "2026-03-14T09:00:00Z", data["arrived_at"])

			return nil
		}).Once()

	rec := servePush(h, pushBody(t, arrivalEvent(), map[string]string{"request_id": "req-1"}), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.InDelta(t, before+1, testutil.ToFloat64(metrics.PresencePushes.WithLabelValues(pushResultSent)), 0.001)
}

func TestPushHandler_DepartureWithoutAddress(t *testing.T) {
	pushSvc := mockSvc.NewMockPushService(t)
	h := newPushHandler(nil, pushSvc, newDiscardLogger())

	event := arrivalEvent()
	event.Kind = service.PresenceDeparted
	event.Address = ""
	event.ArrivedAt = nil

	pushSvc.EXPECT().
		SendToTopic(mock.Anything, "presence_user-1", "Departed", "Left 25.03300, 121.56540", mock.Anything).
		Return(nil).Once()

	rec := servePush(h, pushBody(t, event, nil), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_RetryableFailureRequestsRedelivery(t *testing.T) {
	pushSvc := mockSvc.NewMockPushService(t)
	h := newPushHandler(nil, pushSvc, newDiscardLogger())

	pushSvc.EXPECT().SendToTopic(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(domainerrors.NewTransientError(errors.New("fcm unavailable"), "push")).Once()

	rec := servePush(h, pushBody(t, arrivalEvent(), nil), nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_PermanentFailureIsAcked(t *testing.T) {
	pushSvc := mockSvc.NewMockPushService(t)
	h := newPushHandler(nil, pushSvc, newDiscardLogger())

	pushSvc.EXPECT().SendToTopic(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("invalid topic")).Once()

	rec := servePush(h, pushBody(t, arrivalEvent(), nil), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_UnknownKindIsSkipped(t *testing.T) {
	pushSvc := mockSvc.NewMockPushService(t)
	h := newPushHandler(nil, pushSvc, newDiscardLogger())

	event := arrivalEvent()
	event.Kind = "teleported"

	rec := servePush(h, pushBody(t, event, nil), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	pushSvc.AssertNotCalled(t, "SendToTopic", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPushHandler_MalformedMessages(t *testing.T) {
	pushSvc := mockSvc.NewMockPushService(t)
	h := newPushHandler(nil, pushSvc, newDiscardLogger())

	noUser := arrivalEvent()
	noUser.UserID = ""

	cases := map[string]string{
		"invalid json":   `{"message":`,
		"invalid base64": `{"message":{"data":"%%%"}}`,
		"invalid event":  `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("not json")) + `"}}`,
		"missing user":   pushBody(t, noUser, nil),
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rec := servePush(h, body, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestPushHandler_RejectsUnverifiedRequests(t *testing.T) {
	pushSvc := mockSvc.NewMockPushService(t)
	h := newPushHandler(verifyPubSubToken, pushSvc, newDiscardLogger())

	rec := servePush(h, pushBody(t, arrivalEvent(), nil), nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = servePush(h, pushBody(t, arrivalEvent(), nil), http.Header{"Authorization": []string{"Basic abc"}})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPushHandler_ExtractRequestID(t *testing.T) {
	h := newPushHandler(nil, nil, newDiscardLogger())
	ctx := context.Background()

	var msg pubsub.PushMessage
	msg.Message.Attributes = map[string]string{"request_id": "from-attributes"}
	event := &service.PresenceEvent{RequestID: "from-event"}
	assert.Equal(t, "from-attributes", h.extractRequestID(ctx, &msg, event))

	msg.Message.Attributes = nil
	assert.Equal(t, "from-event", h.extractRequestID(ctx, &msg, event))

	event.RequestID = ""
	assert.NotEmpty(t, h.extractRequestID(ctx, &msg, event))
}
