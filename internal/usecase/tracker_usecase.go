package usecase

import (
	"context"
	"time"

	"tether/internal/domain/entity"

	"github.com/google/uuid"
)

// TrackerState is the position of a user in the geofence state machine
type TrackerState string

const (
	TrackerMoving              TrackerState = "moving"
	TrackerStationaryPending   TrackerState = "stationary_pending"
	TrackerStationaryGeofenced TrackerState = "stationary_geofenced"
)

// TrackerSnapshot is a read-only copy of a user's tracking state
type TrackerSnapshot struct {
	UserID       string                 `json:"user_id"`
	State        TrackerState           `json:"state"`
	Geofence     *entity.Geofence       `json:"geofence,omitempty"`
	DwellStart   *time.Time             `json:"dwell_start,omitempty"`
	ExitStreak   int                    `json:"exit_streak"`
	ActiveTripID *uuid.UUID             `json:"active_trip_id,omitempty"`
	LastRecord   *entity.LocationRecord `json:"last_record,omitempty"`
}

// TrackerUsecase turns device state samples into records, geofences and trips
type TrackerUsecase interface {
	// ProcessSample ingests one sample. Only validation errors are returned;
	// local and remote failures are logged and ingestion completes.
	ProcessSample(ctx context.Context, sample *entity.DeviceStateSample) error

	// Hydrate restores a user's state from the local store
	Hydrate(ctx context.Context, userID string) error

	// SyncPending pushes the newest unsynced record and marks the backlog synced
	SyncPending(ctx context.Context, userID string) error

	// Snapshot returns the current state of a user
	Snapshot(userID string) TrackerSnapshot

	// Reset drops all in-memory state
	Reset()
}
