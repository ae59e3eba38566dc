package usecase

import (
	"context"

	"tether/internal/domain/entity"
)

// EngineUsecase is the API exposed to the host application
type EngineUsecase interface {
	// Initialize starts a session for userID and restores local state
	Initialize(ctx context.Context, userID string) error

	IsInitialized() bool

	ProcessDeviceStateUpdate(ctx context.Context, sample *entity.DeviceStateSample) error

	RefreshSubscriptions(ctx context.Context, opts RefreshOptions) error

	ForceSync(ctx context.Context) error

	GetSyncState() entity.SyncState

	IsSyncHealthy() bool

	// SetOnlineStatus publishes a network change
	SetOnlineStatus(ctx context.Context, online bool, connectionType string) error

	// SetAppState publishes a lifecycle change
	SetAppState(ctx context.Context, state entity.AppState) error

	// NotifyConnectionChange publishes a social graph change
	NotifyConnectionChange(ctx context.Context, connectionID string, kind entity.ConnectionChangeKind) error

	// Watch subscribes to a connection's remote document
	Watch(ctx context.Context, entityID string, callback entity.EntityCallback) (func(), error)

	ForceHeartbeat(ctx context.Context) error

	HeartbeatStatus() HeartbeatStatus

	TrackerState() TrackerSnapshot

	LatestLocation(ctx context.Context) (*entity.LocationRecord, error)

	RecentTrips(ctx context.Context, limit int) ([]*entity.Trip, error)

	// Cleanup cancels every timer and ends the session
	Cleanup(ctx context.Context)
}
