package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"tether/config"
	"tether/internal/cache"
	"tether/internal/domain/entity"
	domainerrors "tether/internal/domain/errors"
	"tether/internal/domain/service"
	"tether/internal/eventbus"
	"tether/internal/infra/metrics"
	"tether/internal/usecase"

	"go.uber.org/fx"
)

const (
	operationRefresh         = "refresh-subscriptions"
	operationForceSync       = "force-sync"
	operationNetworkRecovery = "network-recovery"
	operationForeground      = "app-foreground"

	reasonManual = "manual"
)

// Social graph cache keys, one set per user
func socialGraphKeys(userID string) []string {
	return []string{
		"connections:" + userID,
		"connection-locations:" + userID,
		"map-markers:" + userID,
	}
}

type syncCoordinator struct {
	mu sync.Mutex

	state     entity.SyncState
	listeners []func()

	// session counts InitializeSync/Cleanup transitions; sessionCtx is
	// cancelled when the session it belongs to ends.
	session       uint64
	sessionCtx    context.Context
	cancelSession context.CancelFunc

	subs      usecase.SubscriptionUsecase
	tracker   usecase.TrackerUsecase
	heartbeat usecase.HeartbeatUsecase
	cache     *cache.Cache
	bus       *eventbus.Bus
	clock     service.Clock
	cfg       *config.SyncConfig
	logger    *slog.Logger
}

// SyncParams holds dependencies for the sync coordinator, injected by Fx
type SyncParams struct {
	fx.In

	Subscriptions usecase.SubscriptionUsecase
	Tracker       usecase.TrackerUsecase
	Heartbeat     usecase.HeartbeatUsecase
	Cache         *cache.Cache
	Bus           *eventbus.Bus
	Clock         service.Clock
	Config        *config.Config
	Logger        *slog.Logger
}

// NewSyncCoordinator creates the coordinator. The device starts connected and in the foreground.
func NewSyncCoordinator(params SyncParams) usecase.SyncUsecase {
	return &syncCoordinator{
		state:     initialSyncState(true, entity.AppStateActive),
		subs:      params.Subscriptions,
		tracker:   params.Tracker,
		heartbeat: params.Heartbeat,
		cache:     params.Cache,
		bus:       params.Bus,
		clock:     params.Clock,
		cfg:       params.Config.Sync,
		logger:    params.Logger,
	}
}

func initialSyncState(connected bool, appState entity.AppState) entity.SyncState {
	return entity.SyncState{
		ActiveSubscriptionIDs: []string{},
		IsConnected:           connected,
		AppState:              appState,
	}
}

func (c *syncCoordinator) InitializeSync(ctx context.Context, userID string) error {
	if userID == "" {
		return domainerrors.NewValidationError(domainerrors.ErrInvalidInput, "user id is required")
	}

	c.mu.Lock()
	initialized, current := c.state.IsInitialized, c.state.UserID
	c.mu.Unlock()

	if initialized && current == userID {
		return nil
	}
	if initialized {
		c.logger.Info("[Sync] Switching user, cleaning up previous session",
			slog.String("previous_user_id", current),
			slog.String("user_id", userID),
		)
		c.Cleanup()
	}

	if err := c.subs.Initialize(userID); err != nil {
		return err
	}

	listeners := []func(){
		eventbus.Subscribe(c.bus, eventbus.TopicConnectionAdded, c.onConnectionEvent(entity.ConnectionAdded)),
		eventbus.Subscribe(c.bus, eventbus.TopicConnectionRemoved, c.onConnectionEvent(entity.ConnectionRemoved)),
		eventbus.Subscribe(c.bus, eventbus.TopicConnectionUpdated, c.onConnectionEvent(entity.ConnectionUpdated)),
		eventbus.Subscribe(c.bus, eventbus.TopicNetworkChanged, func(ctx context.Context, event eventbus.NetworkChanged) error {
			c.SetOnlineStatus(ctx, event.IsConnected)

			return nil
		}),
		eventbus.Subscribe(c.bus, eventbus.TopicAppStateChanged, func(ctx context.Context, event eventbus.AppStateChanged) error {
			c.HandleAppStateChange(ctx, event.State)

			return nil
		}),
	}

	sessionCtx, cancel := context.WithCancel(context.Background())

	c.mu.Lock()
	c.state.IsInitialized = true
	c.state.UserID = userID
	c.listeners = listeners
	c.session++
	c.sessionCtx, c.cancelSession = sessionCtx, cancel
	c.mu.Unlock()

	c.logger.Info("[Sync] Initialized", slog.String("user_id", userID))

	return nil
}

func (c *syncCoordinator) onConnectionEvent(kind entity.ConnectionChangeKind) eventbus.Listener[eventbus.ConnectionChanged] {
	return func(ctx context.Context, event eventbus.ConnectionChanged) error {
		return c.OnConnectionChange(ctx, event.ID, kind)
	}
}

func (c *syncCoordinator) userID() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.IsInitialized {
		return "", domainerrors.NewNotInitializedError("sync coordinator")
	}

	return c.state.UserID, nil
}

func (c *syncCoordinator) RefreshSubscriptions(ctx context.Context, opts usecase.RefreshOptions) error {
	return c.refresh(ctx, opts, operationRefresh)
}

// refresh runs one refresh pass. With RetryOnFailure set, exhausting the
// retries publishes an error event named after operation.
func (c *syncCoordinator) refresh(ctx context.Context, opts usecase.RefreshOptions, operation string) error {
	c.mu.Lock()
	if !c.state.IsInitialized {
		c.mu.Unlock()

		return domainerrors.NewNotInitializedError("sync coordinator")
	}
	acquired := !c.state.PendingRefresh
	if !acquired && !opts.ForceRefresh {
		c.mu.Unlock()
		metrics.RecordSyncRefresh("skipped", 0)
		c.logger.Debug("[Sync] Refresh already pending, skipping", slog.String("operation", operation))

		return nil
	}
	c.state.PendingRefresh = true
	session, sessionCtx := c.session, c.sessionCtx
	c.mu.Unlock()

	if acquired {
		defer func() {
			c.mu.Lock()
			if c.session == session {
				c.state.PendingRefresh = false
			}
			c.mu.Unlock()
		}()
	}

	// Ending the session aborts the pass and any backoff wait in progress.
	runCtx, stop := context.WithCancel(ctx)
	defer stop()
	defer context.AfterFunc(sessionCtx, stop)()

	eventbus.Publish(ctx, c.bus, eventbus.TopicLoadingStateChanged, eventbus.LoadingStateChanged{IsLoading: true, Operation: operation})
	defer eventbus.Publish(ctx, c.bus, eventbus.TopicLoadingStateChanged, eventbus.LoadingStateChanged{IsLoading: false, Operation: operation})

	pass := func(ctx context.Context) error {
		_, err := c.subs.RefreshAll(ctx, opts.ForceRefresh)

		return err
	}

	started := c.clock.Now()
	var err error
	if opts.RetryOnFailure {
		err = withRetry(runCtx, resolveRetryPolicy(opts, c.cfg), c.logger, operation, pass)
	} else {
		err = pass(runCtx)
	}
	elapsed := c.clock.Now().Sub(started)

	if err != nil {
		metrics.RecordSyncRefresh("failure", elapsed)

		c.mu.Lock()
		if c.session != session {
			c.mu.Unlock()
			c.logger.Debug("[Sync] Session ended during refresh, discarding failure", slog.String("operation", operation))

			return err
		}
		c.state.ErrorCount++
		c.state.LastError = err.Error()
		connected := c.state.IsConnected
		errorCount := c.state.ErrorCount
		c.mu.Unlock()

		c.logger.Error("[Sync] Refresh failed",
			slog.String("operation", operation),
			slog.Int("error_count", errorCount),
			slog.Any("error", err),
		)

		if opts.RetryOnFailure {
			eventbus.Publish(ctx, c.bus, eventbus.TopicError, eventbus.Error{
				Operation: operation,
				Message:   err.Error(),
				Retryable: domainerrors.IsRetryable(err) && connected,
			})
		}

		return err
	}

	metrics.RecordSyncRefresh("success", elapsed)

	now := c.clock.Now()
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session != session {
		c.logger.Debug("[Sync] Session ended during refresh, discarding result", slog.String("operation", operation))

		return nil
	}
	c.state.ErrorCount = 0
	c.state.LastError = ""
	c.state.LastSyncTime = &now

	return nil
}

func (c *syncCoordinator) OnConnectionChange(ctx context.Context, connectionID string, kind entity.ConnectionChangeKind) error {
	if connectionID == "" || !kind.IsValid() {
		return domainerrors.NewValidationError(domainerrors.ErrInvalidInput,
			fmt.Sprintf("invalid connection change %q for %q", kind, connectionID))
	}

	userID, err := c.userID()
	if err != nil {
		return err
	}

	err = c.cache.BatchInvalidateWithRefresh(ctx, socialGraphKeys(userID), func(ctx context.Context) error {
		eventbus.Publish(ctx, c.bus, eventbus.TopicSyncRefreshRequired, eventbus.SyncRefreshRequired{
			Reason:      "connection-" + string(kind),
			AffectedIDs: []string{connectionID},
		})

		return nil
	})
	if err != nil {
		return err
	}

	if kind == entity.ConnectionRemoved {
		if err := c.subs.Unsubscribe(connectionID); err != nil {
			return err
		}
	}

	c.logger.Info("[Sync] Connection changed",
		slog.String("connection_id", connectionID),
		slog.String("kind", string(kind)),
	)

	return nil
}

func (c *syncCoordinator) ForceSync(ctx context.Context) error {
	if _, err := c.userID(); err != nil {
		return err
	}

	eventbus.Publish(ctx, c.bus, eventbus.TopicSyncRefreshRequired, eventbus.SyncRefreshRequired{Reason: reasonManual})

	if err := c.refresh(ctx, usecase.RefreshOptions{ForceRefresh: true, RetryOnFailure: true}, operationForceSync); err != nil {
		return err
	}

	eventbus.Publish(ctx, c.bus, eventbus.TopicSuccess, eventbus.Success{
		Operation: operationForceSync,
		Message:   "sync completed",
	})

	return nil
}

func (c *syncCoordinator) IsSyncHealthy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.IsInitialized || c.state.ErrorCount >= c.cfg.MaxErrorCount || c.state.LastSyncTime == nil {
		return false
	}

	return c.clock.Now().Sub(*c.state.LastSyncTime) <= c.cfg.HealthyWindow
}

func (c *syncCoordinator) GetSyncState() entity.SyncState {
	c.mu.Lock()
	state := c.state.Clone()
	c.mu.Unlock()

	if state.IsInitialized {
		state.ActiveSubscriptionIDs = c.subs.WatchedIDs()
	}

	return state
}

// SetOnlineStatus records connectivity. Coming back online syncs pending
// records, flushes queued heartbeats and forces a refresh.
func (c *syncCoordinator) SetOnlineStatus(ctx context.Context, online bool) {
	c.mu.Lock()
	wasConnected := c.state.IsConnected
	c.state.IsConnected = online
	initialized, userID := c.state.IsInitialized, c.state.UserID
	c.mu.Unlock()

	c.logger.Info("[Sync] Connectivity changed", slog.Bool("is_connected", online))

	if !online || wasConnected || !initialized {
		return
	}

	if err := c.tracker.SyncPending(ctx, userID); err != nil {
		c.logger.Warn("[Sync] Failed to sync pending records", slog.Any("error", err))
	}
	if err := c.heartbeat.FlushQueued(ctx, userID); err != nil {
		c.logger.Warn("[Sync] Failed to flush queued heartbeats", slog.Any("error", err))
	}

	opts := usecase.RefreshOptions{ForceRefresh: true, RetryOnFailure: true}
	if err := c.refresh(ctx, opts, operationNetworkRecovery); err != nil {
		c.logger.Warn("[Sync] Recovery refresh failed", slog.Any("error", err))
	}
}

// HandleAppStateChange forces a refresh when the app returns to the foreground while online
func (c *syncCoordinator) HandleAppStateChange(ctx context.Context, state entity.AppState) {
	if !state.IsValid() {
		c.logger.Warn("[Sync] Ignoring unknown app state", slog.String("state", string(state)))

		return
	}

	c.mu.Lock()
	previous := c.state.AppState
	c.state.AppState = state
	connected, initialized := c.state.IsConnected, c.state.IsInitialized
	c.mu.Unlock()

	if state != entity.AppStateActive || previous == entity.AppStateActive || !connected || !initialized {
		return
	}

	if err := c.refresh(ctx, usecase.RefreshOptions{ForceRefresh: true}, operationForeground); err != nil {
		c.logger.Warn("[Sync] Foreground refresh failed", slog.Any("error", err))
	}
}

// Cleanup drops bus listeners, subscriptions and cached social graph data.
// Connectivity and app state survive because they describe the device.
func (c *syncCoordinator) Cleanup() {
	c.mu.Lock()
	listeners := c.listeners
	c.listeners = nil
	c.state = initialSyncState(c.state.IsConnected, c.state.AppState)
	c.session++
	cancel := c.cancelSession
	c.sessionCtx, c.cancelSession = nil, nil
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}

	for _, unsubscribe := range listeners {
		unsubscribe()
	}
	c.subs.Cleanup()
	c.cache.Clear()

	c.logger.Info("[Sync] Cleaned up")
}
