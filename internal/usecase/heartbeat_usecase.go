package usecase

import (
	"context"
	"time"
)

// HeartbeatStatus describes the scheduler at one instant
type HeartbeatStatus struct {
	Running             bool          `json:"running"`
	UserID              string        `json:"user_id,omitempty"`
	ConsecutiveFailures int           `json:"consecutive_failures"`
	FallbackMode        bool          `json:"fallback_mode"`
	Interval            time.Duration `json:"interval"`
	LastBeat            *time.Time    `json:"last_beat,omitempty"`
	NextDue             *time.Time    `json:"next_due,omitempty"`
}

// HeartbeatUsecase sends liveness pings while a user is inside a geofence
type HeartbeatUsecase interface {
	// Start schedules beats for userID, replacing any running schedule
	Start(userID string)

	// Stop cancels every pending timer
	Stop()

	// Reset reschedules the next beat a full interval from now
	Reset()

	// ForceHeartbeat sends a beat immediately
	ForceHeartbeat(ctx context.Context) error

	// FlushQueued writes the newest queued beat and drops the queue
	FlushQueued(ctx context.Context, userID string) error

	Status() HeartbeatStatus
}
