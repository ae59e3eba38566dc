package repository

import (
	"context"

	"tether/internal/domain/entity"
)

// HeartbeatQueueRepository keeps heartbeats that could not be sent.
type HeartbeatQueueRepository interface {
	// Enqueue stores a heartbeat for a later flush.
	Enqueue(ctx context.Context, heartbeat *entity.QueuedHeartbeat) error

	// ListPending returns queued heartbeats of a user, oldest first.
	ListPending(ctx context.Context, userID string) ([]*entity.QueuedHeartbeat, error)

	// Delete removes flushed heartbeats.
	Delete(ctx context.Context, ids []int64) error
}
