package service

import (
	"context"
)

// PushService dispatches push notifications. Sends are fire-and-forget:
// callers log failures and do not retry them.
type PushService interface {
	// SendToTopic sends a notification to every device subscribed to topic
	SendToTopic(ctx context.Context, topic, title, body string, data map[string]string) error
}
