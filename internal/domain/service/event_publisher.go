package service

import (
	"context"
	"time"
)

// PresenceKind is the presence transition carried by a PresenceEvent
type PresenceKind string

const (
	PresenceArrived  PresenceKind = "arrived"
	PresenceDeparted PresenceKind = "departed"
)

// PresenceEvent is published when a user's geofence activates or clears
type PresenceEvent struct {
	RequestID  string       `json:"request_id,omitempty"` // For distributed tracing
	EventID    string       `json:"event_id"`
	UserID     string       `json:"user_id"`
	Kind       PresenceKind `json:"kind"`
	Latitude   float64      `json:"latitude"`
	Longitude  float64      `json:"longitude"`
	Address    string       `json:"address,omitempty"`
	ArrivedAt  *time.Time   `json:"arrived_at,omitempty"` // Geofence entry time for arrivals
	OccurredAt time.Time    `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishPresenceEvent publishes a presence transition for async fan-out
	PublishPresenceEvent(ctx context.Context, event *PresenceEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
