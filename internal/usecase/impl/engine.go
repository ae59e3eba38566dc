package impl

import (
	"context"
	"log/slog"
	"sync"

	"tether/internal/domain/entity"
	domainerrors "tether/internal/domain/errors"
	"tether/internal/domain/repository"
	"tether/internal/eventbus"
	"tether/internal/infra/metrics"
	"tether/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultRecentTrips = 20

type engine struct {
	mu          sync.Mutex
	initialized bool
	userID      string

	sync          usecase.SyncUsecase
	tracker       usecase.TrackerUsecase
	heartbeat     usecase.HeartbeatUsecase
	subscriptions usecase.SubscriptionUsecase
	retention     usecase.RetentionUsecase
	locationRepo  repository.LocationRepository
	tripRepo      repository.TripRepository
	settingsRepo  repository.SettingsRepository
	bus           *eventbus.Bus
	logger        *slog.Logger
}

// EngineParams holds dependencies for the engine facade, injected by Fx
type EngineParams struct {
	fx.In

	Sync          usecase.SyncUsecase
	Tracker       usecase.TrackerUsecase
	Heartbeat     usecase.HeartbeatUsecase
	Subscriptions usecase.SubscriptionUsecase
	Retention     usecase.RetentionUsecase
	LocationRepo  repository.LocationRepository
	TripRepo      repository.TripRepository
	SettingsRepo  repository.SettingsRepository
	Bus           *eventbus.Bus
	Logger        *slog.Logger
}

// NewEngine creates the facade the host application talks to
func NewEngine(params EngineParams) usecase.EngineUsecase {
	return &engine{
		sync:          params.Sync,
		tracker:       params.Tracker,
		heartbeat:     params.Heartbeat,
		subscriptions: params.Subscriptions,
		retention:     params.Retention,
		locationRepo:  params.LocationRepo,
		tripRepo:      params.TripRepo,
		settingsRepo:  params.SettingsRepo,
		bus:           params.Bus,
		logger:        params.Logger,
	}
}

// Initialize starts a session. Repeating it for the same user is a no-op.
func (e *engine) Initialize(ctx context.Context, userID string) error {
	if userID == "" {
		return domainerrors.NewValidationError(domainerrors.ErrInvalidInput, "user id is required")
	}

	e.mu.Lock()
	initialized, current := e.initialized, e.userID
	e.mu.Unlock()

	if initialized && current == userID {
		return nil
	}
	if initialized {
		e.Cleanup(ctx)
	}

	if err := e.sync.InitializeSync(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to initialize sync")
	}
	if err := e.tracker.Hydrate(ctx, userID); err != nil {
		e.sync.Cleanup()

		return errors.Wrap(err, "failed to restore tracker state")
	}

	if e.tracker.Snapshot(userID).State == usecase.TrackerStationaryGeofenced {
		e.heartbeat.Start(userID)
	}
	e.retention.Start()

	if err := e.settingsRepo.Set(ctx, repository.SettingLastUserID, userID); err != nil {
		e.logger.Warn("[Engine] Failed to store last user id", slog.Any("error", err))
	}
	if pending, err := e.locationRepo.CountUnsynced(ctx, userID); err == nil {
		metrics.PendingSyncRecords.Set(float64(pending))
	}

	e.mu.Lock()
	e.initialized = true
	e.userID = userID
	e.mu.Unlock()

	e.logger.Info("[Engine] Initialized", slog.String("user_id", userID))

	return nil
}

func (e *engine) IsInitialized() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.initialized
}

func (e *engine) sessionUser() (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return "", domainerrors.NewNotInitializedError("engine")
	}

	return e.userID, nil
}

// ProcessDeviceStateUpdate ingests a sample for the session user. An empty user id defaults to the session user.
func (e *engine) ProcessDeviceStateUpdate(ctx context.Context, sample *entity.DeviceStateSample) error {
	userID, err := e.sessionUser()
	if err != nil {
		return err
	}
	if sample == nil {
		return domainerrors.NewValidationError(domainerrors.ErrInvalidSample, "sample is required")
	}

	owned := *sample
	if owned.UserID == "" {
		owned.UserID = userID
	}
	if owned.UserID != userID {
		return domainerrors.NewValidationError(domainerrors.ErrInvalidSample, "sample belongs to another user")
	}

	return e.tracker.ProcessSample(ctx, &owned)
}

func (e *engine) RefreshSubscriptions(ctx context.Context, opts usecase.RefreshOptions) error {
	if _, err := e.sessionUser(); err != nil {
		return err
	}

	return e.sync.RefreshSubscriptions(ctx, opts)
}

func (e *engine) ForceSync(ctx context.Context) error {
	if _, err := e.sessionUser(); err != nil {
		return err
	}

	return e.sync.ForceSync(ctx)
}

func (e *engine) GetSyncState() entity.SyncState {
	return e.sync.GetSyncState()
}

func (e *engine) IsSyncHealthy() bool {
	return e.sync.IsSyncHealthy()
}

func (e *engine) SetOnlineStatus(ctx context.Context, online bool, connectionType string) error {
	if _, err := e.sessionUser(); err != nil {
		return err
	}

	eventbus.Publish(ctx, e.bus, eventbus.TopicNetworkChanged, eventbus.NetworkChanged{
		IsConnected: online,
		Type:        connectionType,
	})

	return nil
}

func (e *engine) SetAppState(ctx context.Context, state entity.AppState) error {
	if _, err := e.sessionUser(); err != nil {
		return err
	}
	if !state.IsValid() {
		return domainerrors.NewValidationError(domainerrors.ErrInvalidInput, "unknown app state "+string(state))
	}

	eventbus.Publish(ctx, e.bus, eventbus.TopicAppStateChanged, eventbus.AppStateChanged{State: state})

	return nil
}

// NotifyConnectionChange publishes the change; a failing coordinator listener is logged by the bus
func (e *engine) NotifyConnectionChange(ctx context.Context, connectionID string, kind entity.ConnectionChangeKind) error {
	if _, err := e.sessionUser(); err != nil {
		return err
	}
	if connectionID == "" || !kind.IsValid() {
		return domainerrors.NewValidationError(domainerrors.ErrInvalidInput, "connection id and a known change kind are required")
	}

	eventbus.Publish(ctx, e.bus, eventbus.ConnectionTopic(kind), eventbus.ConnectionChanged{ID: connectionID, Kind: kind})

	return nil
}

func (e *engine) Watch(ctx context.Context, entityID string, callback entity.EntityCallback) (func(), error) {
	if _, err := e.sessionUser(); err != nil {
		return nil, err
	}

	return e.subscriptions.Subscribe(ctx, entityID, callback)
}

func (e *engine) ForceHeartbeat(ctx context.Context) error {
	if _, err := e.sessionUser(); err != nil {
		return err
	}

	return e.heartbeat.ForceHeartbeat(ctx)
}

func (e *engine) HeartbeatStatus() usecase.HeartbeatStatus {
	return e.heartbeat.Status()
}

func (e *engine) TrackerState() usecase.TrackerSnapshot {
	e.mu.Lock()
	userID := e.userID
	e.mu.Unlock()

	return e.tracker.Snapshot(userID)
}

func (e *engine) LatestLocation(ctx context.Context) (*entity.LocationRecord, error) {
	userID, err := e.sessionUser()
	if err != nil {
		return nil, err
	}

	return e.locationRepo.LatestRecord(ctx, userID)
}

func (e *engine) RecentTrips(ctx context.Context, limit int) ([]*entity.Trip, error) {
	userID, err := e.sessionUser()
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultRecentTrips
	}

	return e.tripRepo.ListTrips(ctx, userID, limit)
}

// Cleanup stops every timer and forgets the session
func (e *engine) Cleanup(ctx context.Context) {
	e.mu.Lock()
	userID := e.userID
	e.initialized = false
	e.userID = ""
	e.mu.Unlock()

	e.heartbeat.Stop()
	e.retention.Stop()
	e.sync.Cleanup()
	e.tracker.Reset()

	e.logger.InfoContext(ctx, "[Engine] Cleaned up", slog.String("user_id", userID))
}
