// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"tether/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for location persistence.
var (
	// ErrRecordNotFound is returned when no location record matches.
	ErrRecordNotFound = errors.New("location record not found")
)

// LocationRepository stores the projection of every ingested sample.
type LocationRepository interface {
	// SaveRecord appends a record; the generated ID is written back.
	SaveRecord(ctx context.Context, record *entity.LocationRecord) error

	// LatestRecord returns the newest record of a user.
	LatestRecord(ctx context.Context, userID string) (*entity.LocationRecord, error)

	// FindUnsynced returns unsynced records of a user, oldest first.
	FindUnsynced(ctx context.Context, userID string, limit int) ([]*entity.LocationRecord, error)

	// CountUnsynced counts unsynced records of a user.
	CountUnsynced(ctx context.Context, userID string) (int64, error)

	// MarkSynced flips the synced flag of the given records.
	MarkSynced(ctx context.Context, ids []int64, syncedAt time.Time) error

	// UpdateHeartbeat stamps the heartbeat time on a record.
	UpdateHeartbeat(ctx context.Context, id int64, heartbeatAt time.Time) error

	// DeleteOlderThan removes records sampled before cutoff and returns the count.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
