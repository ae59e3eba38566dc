package notification

import (
	"context"
	"log/slog"

	"tether/config"
	domainerrors "tether/internal/domain/errors"
	"tether/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// NewFirebaseApp initializes the Firebase app shared by Firestore and messaging.
// An empty credentials path falls back to application default credentials.
func NewFirebaseApp(ctx context.Context, cfg *config.FirebaseConfig) (*firebase.App, error) {
	if cfg == nil {
		return nil, errors.New("firebase is not configured")
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	var appCfg *firebase.Config
	if cfg.ProjectID != "" {
		appCfg = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appCfg, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	return app, nil
}

type firebaseService struct {
	client *messaging.Client
	logger *slog.Logger
}

// NewFirebaseService creates a push service backed by Firebase Cloud Messaging
func NewFirebaseService(ctx context.Context, app *firebase.App, logger *slog.Logger) (service.PushService, error) {
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{
		client: client,
		logger: logger,
	}, nil
}

// SendToTopic sends a push notification to every device subscribed to topic
func (s *firebaseService) SendToTopic(ctx context.Context, topic, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	messageID, err := s.client.Send(ctx, message)
	if err != nil {
		if messaging.IsUnavailable(err) || messaging.IsInternal(err) || messaging.IsQuotaExceeded(err) {
			return domainerrors.NewTransientError(err, "push to topic "+topic)
		}

		return errors.Wrapf(err, "failed to send notification to topic %s", topic)
	}

	s.logger.Debug("[FCM] Notification sent",
		slog.String("topic", topic),
		slog.String("message_id", messageID),
	)

	return nil
}

type noopPushService struct {
	logger *slog.Logger
}

// NewNoopPushService returns a PushService that only logs
func NewNoopPushService(logger *slog.Logger) service.PushService {
	return &noopPushService{logger: logger}
}

func (s *noopPushService) SendToTopic(_ context.Context, topic, title, _ string, _ map[string]string) error {
	s.logger.Info("[NoopPush] Push disabled, skipping",
		slog.String("topic", topic),
		slog.String("title", title),
	)

	return nil
}
