package handler

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"tether/config"
	deliverycontext "tether/internal/delivery/context"
	"tether/internal/domain/constants"
	domainerrors "tether/internal/domain/errors"
	"tether/internal/domain/service"
	"tether/internal/infra/metrics"
	"tether/internal/infra/pubsub"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

const (
	pushResultSent    = "sent"
	pushResultFailed  = "failed"
	pushResultRetry   = "retry"
	pushResultSkipped = "skipped"
)

// TokenVerifier validates the bearer token of a push request
type TokenVerifier func(req *http.Request) error

// PushHandler fans presence events out to the watchers of a user
type PushHandler struct {
	verify  TokenVerifier
	logger  *slog.Logger
	pushSvc service.PushService
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	PushSvc service.PushService
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	var verify TokenVerifier
	if params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop {
		verify = verifyPubSubToken
	}

	return newPushHandler(verify, params.PushSvc, params.Logger)
}

func newPushHandler(verify TokenVerifier, pushSvc service.PushService, logger *slog.Logger) *PushHandler {
	return &PushHandler{
		verify:  verify,
		logger:  logger,
		pushSvc: pushSvc,
	}
}

// HandlePush handles incoming Pub/Sub push messages.
// Retryable failures answer 503 so Pub/Sub redelivers; anything else is acked.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verify != nil {
		if err := h.verify(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.PresenceEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse presence event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}
	if event.UserID == "" {
		h.logger.Error("[Worker] Presence event without user", slog.String("event_id", event.EventID))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	ctx, reqLogger := deliverycontext.WithRequest(ctx, requestID, h.logger)

	reqLogger.Info("[Worker] Processing presence event",
		slog.String("event_id", event.EventID),
		slog.String("user_id", event.UserID),
		slog.String("kind", string(event.Kind)),
	)

	if err := h.processPresence(ctx, &event); err != nil {
		retryable := domainerrors.IsRetryable(err)
		reqLogger.Error("[Worker] Failed to push presence event",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		if retryable {
			metrics.RecordPresencePush(pushResultRetry)

			return c.NoContent(http.StatusServiceUnavailable)
		}
		metrics.RecordPresencePush(pushResultFailed)

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers message attributes, then the payload, then the inbound request
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *pubsub.PushMessage, event *service.PresenceEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

func (h *PushHandler) processPresence(ctx context.Context, event *service.PresenceEvent) error {
	title, body, ok := presenceContent(event)
	if !ok {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("[Worker] Unknown presence kind, skipping",
			slog.String("kind", string(event.Kind)),
		)
		metrics.RecordPresencePush(pushResultSkipped)

		return nil
	}

	data := map[string]string{
		"event_id":  event.EventID,
		"user_id":   event.UserID,
		"kind":      string(event.Kind),
		"latitude":  fmt.Sprintf("%f", event.Latitude),
		"longitude": fmt.Sprintf("%f", event.Longitude),
	}
	if event.ArrivedAt != nil {
		data["arrived_at"] = event.ArrivedAt.UTC().Format("2006-01-02T15:04:05Z07:00")
	}

	if err := h.pushSvc.SendToTopic(ctx, constants.PresenceTopicPrefix+event.UserID, title, body, data); err != nil {
		return errors.Wrap(err, "send presence push")
	}
	metrics.RecordPresencePush(pushResultSent)

	return nil
}

func presenceContent(event *service.PresenceEvent) (title, body string, ok bool) {
	place := event.Address
	if place == "" {
		place = fmt.Sprintf("%.5f, %.5f", event.Latitude, event.Longitude)
	}

	switch event.Kind {
	case service.PresenceArrived:
		return "Arrived", "Arrived at " + place, true
	case service.PresenceDeparted:
		return "Departed", "Left " + place, true
	default:
		return "", "", false
	}
}

// verifyPubSubToken verifies the OIDC token Google Pub/Sub attaches to push requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
