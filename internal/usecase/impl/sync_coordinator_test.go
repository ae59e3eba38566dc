package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"tether/config"
	"tether/internal/cache"
	"tether/internal/domain/entity"
	domainerrors "tether/internal/domain/errors"
	"tether/internal/eventbus"
	"tether/internal/infra/scheduler"
	mockUsecase "tether/internal/mocks/usecase"
	"tether/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type syncFixture struct {
	coordinator usecase.SyncUsecase
	subs        *mockUsecase.MockSubscriptionUsecase
	tracker     *mockUsecase.MockTrackerUsecase
	heartbeat   *mockUsecase.MockHeartbeatUsecase
	cache       *cache.Cache
	bus         *eventbus.Bus
	clock       *scheduler.ManualClock
}

func newSyncFixture(t *testing.T) *syncFixture {
	t.Helper()

	cfg := newTestConfig()
	cfg.Sync.BaseDelay = time.Millisecond
	cfg.Sync.MaxDelay = 4 * time.Millisecond

	return newSyncFixtureWithConfig(t, cfg)
}

func newSyncFixtureWithConfig(t *testing.T, cfg *config.Config) *syncFixture {
	t.Helper()

	logger := newDiscardLogger()
	f := &syncFixture{
		subs:      mockUsecase.NewMockSubscriptionUsecase(t),
		tracker:   mockUsecase.NewMockTrackerUsecase(t),
		heartbeat: mockUsecase.NewMockHeartbeatUsecase(t),
		bus:       eventbus.New(logger),
		clock:     scheduler.NewManualClock(baseTime),
	}
	f.cache = cache.NewCache(f.clock, cfg.Cache.DefaultTTL, logger)
	f.coordinator = NewSyncCoordinator(SyncParams{
		Subscriptions: f.subs,
		Tracker:       f.tracker,
		Heartbeat:     f.heartbeat,
		Cache:         f.cache,
		Bus:           f.bus,
		Clock:         f.clock,
		Config:        cfg,
		Logger:        logger,
	})

	return f
}

// newInitializedSyncFixture returns a fixture already bound to testUserID
func newInitializedSyncFixture(t *testing.T) *syncFixture {
	t.Helper()

	f := newSyncFixture(t)
	f.subs.EXPECT().Initialize(testUserID).Return(nil).Once()
	require.NoError(t, f.coordinator.InitializeSync(context.Background(), testUserID))

	return f
}

type topicRecorder[T any] struct {
	mu     sync.Mutex
	events []T
}

func recordTopic[T any](bus *eventbus.Bus, topic eventbus.Topic[T]) *topicRecorder[T] {
	r := &topicRecorder[T]{}
	eventbus.Subscribe(bus, topic, func(_ context.Context, event T) error {
		r.mu.Lock()
		r.events = append(r.events, event)
		r.mu.Unlock()

		return nil
	})

	return r
}

func (r *topicRecorder[T]) all() []T {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]T(nil), r.events...)
}

func TestSyncCoordinator_InitializeSyncIsIdempotent(t *testing.T) {
	f := newSyncFixture(t)
	ctx := context.Background()

	f.subs.EXPECT().Initialize("u1").Return(nil).Once()

	require.NoError(t, f.coordinator.InitializeSync(ctx, "u1"))
	require.NoError(t, f.coordinator.InitializeSync(ctx, "u1"))

	assert.Equal(t, 1, f.bus.ListenerCount(eventbus.TopicNetworkChanged.Name()))
	assert.Equal(t, 1, f.bus.ListenerCount(eventbus.TopicConnectionAdded.Name()))
}

func TestSyncCoordinator_SwitchingUserCleansUpFirst(t *testing.T) {
	f := newSyncFixture(t)
	ctx := context.Background()

	f.subs.EXPECT().Initialize("u1").Return(nil).Once()
	f.subs.EXPECT().Initialize("u2").Return(nil).Once()
	f.subs.EXPECT().Cleanup().Return().Once()
	f.subs.EXPECT().WatchedIDs().Return([]string{}).Maybe()

	require.NoError(t, f.coordinator.InitializeSync(ctx, "u1"))
	f.cache.Set("connections:u1", []string{"friend-1"}, 0)

	require.NoError(t, f.coordinator.InitializeSync(ctx, "u2"))

	state := f.coordinator.GetSyncState()
	assert.True(t, state.IsInitialized)
	assert.Equal(t, "u2", state.UserID)
	assert.Equal(t, 1, f.bus.ListenerCount(eventbus.TopicAppStateChanged.Name()))
	_, ok := f.cache.Get("connections:u1")
	assert.False(t, ok)
}

func TestSyncCoordinator_RequiresInitialize(t *testing.T) {
	f := newSyncFixture(t)
	ctx := context.Background()

	err := f.coordinator.RefreshSubscriptions(ctx, usecase.RefreshOptions{})
	assert.Equal(t, domainerrors.KindInvariant, domainerrors.KindOf(err))

	err = f.coordinator.ForceSync(ctx)
	assert.Equal(t, domainerrors.KindInvariant, domainerrors.KindOf(err))

	err = f.coordinator.OnConnectionChange(ctx, "friend-1", entity.ConnectionAdded)
	assert.Equal(t, domainerrors.KindInvariant, domainerrors.KindOf(err))

	assert.False(t, f.coordinator.IsSyncHealthy())
	assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(f.coordinator.InitializeSync(ctx, "")))
}

func TestSyncCoordinator_RefreshSuccessUpdatesHealth(t *testing.T) {
	f := newInitializedSyncFixture(t)
	ctx := context.Background()
	loading := recordTopic(f.bus, eventbus.TopicLoadingStateChanged)

	f.subs.EXPECT().RefreshAll(mock.Anything, false).Return(true, nil).Once()
	f.subs.EXPECT().WatchedIDs().Return([]string{"friend-1"})

	require.NoError(t, f.coordinator.RefreshSubscriptions(ctx, usecase.RefreshOptions{}))

	assert.Equal(t, []eventbus.LoadingStateChanged{
		{IsLoading: true, Operation: operationRefresh},
		{IsLoading: false, Operation: operationRefresh},
	}, loading.all())

	state := f.coordinator.GetSyncState()
	require.NotNil(t, state.LastSyncTime)
	assert.Equal(t, baseTime, *state.LastSyncTime)
	assert.Zero(t, state.ErrorCount)
	assert.False(t, state.PendingRefresh)
	assert.Equal(t, []string{"friend-1"}, state.ActiveSubscriptionIDs)

	assert.True(t, f.coordinator.IsSyncHealthy())
	f.clock.Advance(5 * time.Minute)
	assert.True(t, f.coordinator.IsSyncHealthy())
	f.clock.Advance(time.Second)
	assert.False(t, f.coordinator.IsSyncHealthy(), "the last sync fell out of the healthy window")
}

func TestSyncCoordinator_RetryExhaustionPublishesRetryableError(t *testing.T) {
	f := newInitializedSyncFixture(t)
	ctx := context.Background()
	reported := recordTopic(f.bus, eventbus.TopicError)

	unavailable := domainerrors.NewTransientError(errors.New("unavailable"), "listen")
	f.subs.EXPECT().RefreshAll(mock.Anything, true).Return(true, unavailable).Times(3)

	err := f.coordinator.RefreshSubscriptions(ctx, usecase.RefreshOptions{
		ForceRefresh:   true,
		RetryOnFailure: true,
		MaxRetries:     2,
	})
	require.Error(t, err)
	assert.True(t, domainerrors.IsRetryable(err))

	events := reported.all()
	require.Len(t, events, 1)
	assert.Equal(t, operationRefresh, events[0].Operation)
	assert.True(t, events[0].Retryable)

	f.subs.EXPECT().WatchedIDs().Return([]string{})
	state := f.coordinator.GetSyncState()
	assert.Equal(t, 1, state.ErrorCount)
	assert.NotEmpty(t, state.LastError)
	assert.Nil(t, state.LastSyncTime)
}

func TestSyncCoordinator_PermanentErrorIsNotRetried(t *testing.T) {
	f := newInitializedSyncFixture(t)
	ctx := context.Background()
	reported := recordTopic(f.bus, eventbus.TopicError)

	denied := domainerrors.NewPermanentError(errors.New("permission denied"), "listen")
	f.subs.EXPECT().RefreshAll(mock.Anything, true).Return(true, denied).Once()

	err := f.coordinator.RefreshSubscriptions(ctx, usecase.RefreshOptions{ForceRefresh: true, RetryOnFailure: true})
	require.Error(t, err)
	assert.Equal(t, domainerrors.KindPermanent, domainerrors.KindOf(err))

	events := reported.all()
	require.Len(t, events, 1)
	assert.False(t, events[0].Retryable)
}

func TestSyncCoordinator_FailureWithoutRetryIsSilent(t *testing.T) {
	f := newInitializedSyncFixture(t)
	ctx := context.Background()
	reported := recordTopic(f.bus, eventbus.TopicError)

	unavailable := domainerrors.NewTransientError(errors.New("unavailable"), "listen")
	f.subs.EXPECT().RefreshAll(mock.Anything, false).Return(true, unavailable).Once()

	require.Error(t, f.coordinator.RefreshSubscriptions(ctx, usecase.RefreshOptions{}))
	assert.Empty(t, reported.all())
}

func TestSyncCoordinator_OfflineFailureIsNotRetryable(t *testing.T) {
	f := newInitializedSyncFixture(t)
	ctx := context.Background()
	reported := recordTopic(f.bus, eventbus.TopicError)

	f.coordinator.SetOnlineStatus(ctx, false)

	unavailable := domainerrors.NewTransientError(errors.New("unavailable"), "listen")
	f.subs.EXPECT().RefreshAll(mock.Anything, true).Return(true, unavailable).Times(2)

	err := f.coordinator.RefreshSubscriptions(ctx, usecase.RefreshOptions{ForceRefresh: true, RetryOnFailure: true, MaxRetries: 1})
	require.Error(t, err)

	events := reported.all()
	require.Len(t, events, 1)
	assert.False(t, events[0].Retryable)
}

func TestSyncCoordinator_ConcurrentRefreshIsSkipped(t *testing.T) {
	f := newInitializedSyncFixture(t)
	ctx := context.Background()

	entered := make(chan struct{})
	release := make(chan struct{})
	f.subs.EXPECT().RefreshAll(mock.Anything, false).
		RunAndReturn(func(context.Context, bool) (bool, error) {
			close(entered)
			<-release

			return true, nil
		}).Once()
	f.subs.EXPECT().WatchedIDs().Return([]string{})

	done := make(chan error)
	go func() { done <- f.coordinator.RefreshSubscriptions(ctx, usecase.RefreshOptions{}) }()
	<-entered

	assert.True(t, f.coordinator.GetSyncState().PendingRefresh)
	require.NoError(t, f.coordinator.RefreshSubscriptions(ctx, usecase.RefreshOptions{}), "a skipped refresh is not an error")

	close(release)
	require.NoError(t, <-done)
	assert.False(t, f.coordinator.GetSyncState().PendingRefresh)
}

func TestSyncCoordinator_ConnectionChangeInvalidatesAndRequestsRefresh(t *testing.T) {
	f := newInitializedSyncFixture(t)
	ctx := context.Background()
	required := recordTopic(f.bus, eventbus.TopicSyncRefreshRequired)

	for _, key := range socialGraphKeys(testUserID) {
		f.cache.Set(key, []string{"friend-1"}, 0)
	}
	f.cache.Set("profile:"+testUserID, "kept", 0)

	require.NoError(t, f.coordinator.OnConnectionChange(ctx, "friend-2", entity.ConnectionAdded))

	assert.Equal(t, []eventbus.SyncRefreshRequired{
		{Reason: "connection-added", AffectedIDs: []string{"friend-2"}},
	}, required.all())
	for _, key := range socialGraphKeys(testUserID) {
		_, ok := f.cache.Get(key)
		assert.False(t, ok, key)
	}
	_, ok := f.cache.Get("profile:" + testUserID)
	assert.True(t, ok)

	err := f.coordinator.OnConnectionChange(ctx, "", entity.ConnectionAdded)
	assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))
	err = f.coordinator.OnConnectionChange(ctx, "friend-2", "blocked")
	assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))
}

func TestSyncCoordinator_RemovedConnectionIsUnsubscribedViaBus(t *testing.T) {
	f := newInitializedSyncFixture(t)
	ctx := context.Background()
	required := recordTopic(f.bus, eventbus.TopicSyncRefreshRequired)

	f.subs.EXPECT().Unsubscribe("friend-2").Return(nil).Once()

	failed := eventbus.Publish(ctx, f.bus, eventbus.TopicConnectionRemoved, eventbus.ConnectionChanged{
		ID:   "friend-2",
		Kind: entity.ConnectionRemoved,
	})
	assert.Zero(t, failed)

	events := required.all()
	require.Len(t, events, 1)
	assert.Equal(t, "connection-removed", events[0].Reason)
}

func TestSyncCoordinator_ForceSync(t *testing.T) {
	f := newInitializedSyncFixture(t)
	ctx := context.Background()
	required := recordTopic(f.bus, eventbus.TopicSyncRefreshRequired)
	succeeded := recordTopic(f.bus, eventbus.TopicSuccess)
	reported := recordTopic(f.bus, eventbus.TopicError)

	f.subs.EXPECT().RefreshAll(mock.Anything, true).Return(true, nil).Once()

	require.NoError(t, f.coordinator.ForceSync(ctx))

	assert.Equal(t, []eventbus.SyncRefreshRequired{{Reason: reasonManual}}, required.all())
	assert.Equal(t, []eventbus.Success{{Operation: operationForceSync, Message: "sync completed"}}, succeeded.all())
	assert.Empty(t, reported.all())
}

func TestSyncCoordinator_ForceSyncFailureReportsOnce(t *testing.T) {
	f := newInitializedSyncFixture(t)
	ctx := context.Background()
	succeeded := recordTopic(f.bus, eventbus.TopicSuccess)
	reported := recordTopic(f.bus, eventbus.TopicError)

	unavailable := domainerrors.NewTransientError(errors.New("unavailable"), "listen")
	f.subs.EXPECT().RefreshAll(mock.Anything, true).Return(true, unavailable).Times(4)

	require.Error(t, f.coordinator.ForceSync(ctx))

	assert.Empty(t, succeeded.all())
	events := reported.all()
	require.Len(t, events, 1)
	assert.Equal(t, operationForceSync, events[0].Operation)
	assert.True(t, events[0].Retryable)
}

func TestSyncCoordinator_NetworkRecovery(t *testing.T) {
	f := newInitializedSyncFixture(t)
	ctx := context.Background()

	eventbus.Publish(ctx, f.bus, eventbus.TopicNetworkChanged, eventbus.NetworkChanged{IsConnected: false, Type: "none"})

	f.tracker.EXPECT().SyncPending(mock.Anything, testUserID).Return(nil).Once()
	f.heartbeat.EXPECT().FlushQueued(mock.Anything, testUserID).Return(nil).Once()
	f.subs.EXPECT().RefreshAll(mock.Anything, true).Return(true, nil).Once()

	eventbus.Publish(ctx, f.bus, eventbus.TopicNetworkChanged, eventbus.NetworkChanged{IsConnected: true, Type: "wifi"})
	// Already online, nothing to recover
	eventbus.Publish(ctx, f.bus, eventbus.TopicNetworkChanged, eventbus.NetworkChanged{IsConnected: true, Type: "wifi"})

	f.subs.EXPECT().WatchedIDs().Return([]string{})
	state := f.coordinator.GetSyncState()
	assert.True(t, state.IsConnected)
	require.NotNil(t, state.LastSyncTime)
}

func TestSyncCoordinator_NetworkRecoveryContinuesPastFailures(t *testing.T) {
	f := newInitializedSyncFixture(t)
	ctx := context.Background()

	f.coordinator.SetOnlineStatus(ctx, false)

	f.tracker.EXPECT().SyncPending(mock.Anything, testUserID).Return(errors.New("disk full")).Once()
	f.heartbeat.EXPECT().FlushQueued(mock.Anything, testUserID).Return(errors.New("disk full")).Once()
	f.subs.EXPECT().RefreshAll(mock.Anything, true).Return(true, nil).Once()

	f.coordinator.SetOnlineStatus(ctx, true)
}

func TestSyncCoordinator_ForegroundRefreshesOnlyWhileOnline(t *testing.T) {
	f := newInitializedSyncFixture(t)
	ctx := context.Background()

	f.subs.EXPECT().RefreshAll(mock.Anything, true).Return(true, nil).Once()

	// Already active
	f.coordinator.HandleAppStateChange(ctx, entity.AppStateActive)

	eventbus.Publish(ctx, f.bus, eventbus.TopicAppStateChanged, eventbus.AppStateChanged{State: entity.AppStateBackground})
	eventbus.Publish(ctx, f.bus, eventbus.TopicAppStateChanged, eventbus.AppStateChanged{State: entity.AppStateActive})

	f.coordinator.SetOnlineStatus(ctx, false)
	f.coordinator.HandleAppStateChange(ctx, entity.AppStateBackground)
	f.coordinator.HandleAppStateChange(ctx, entity.AppStateActive)

	f.subs.EXPECT().WatchedIDs().Return([]string{})
	assert.Equal(t, entity.AppStateActive, f.coordinator.GetSyncState().AppState)
}

func TestSyncCoordinator_Cleanup(t *testing.T) {
	f := newInitializedSyncFixture(t)
	ctx := context.Background()

	f.coordinator.SetOnlineStatus(ctx, false)
	f.cache.Set("connections:"+testUserID, []string{"friend-1"}, 0)
	f.subs.EXPECT().Cleanup().Return().Once()

	f.coordinator.Cleanup()

	state := f.coordinator.GetSyncState()
	assert.False(t, state.IsInitialized)
	assert.Empty(t, state.UserID)
	assert.False(t, state.IsConnected, "connectivity describes the device and survives cleanup")
	assert.Zero(t, f.bus.ListenerCount(eventbus.TopicNetworkChanged.Name()))
	assert.Zero(t, f.cache.Stats().Entries)
}

func TestSyncCoordinator_RefreshOutlivingItsSessionLeavesNextSessionUntouched(t *testing.T) {
	tests := []struct {
		name   string
		result error
	}{
		{name: "success", result: nil},
		{name: "failure", result: domainerrors.NewTransientError(errors.New("unavailable"), "listen")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newInitializedSyncFixture(t)
			ctx := context.Background()
			reported := recordTopic(f.bus, eventbus.TopicError)

			f.subs.EXPECT().Cleanup().Return().Once()
			f.subs.EXPECT().Initialize("user-2").Return(nil).Once()
			f.subs.EXPECT().RefreshAll(mock.Anything, true).
				RunAndReturn(func(context.Context, bool) (bool, error) {
					f.coordinator.Cleanup()
					require.NoError(t, f.coordinator.InitializeSync(ctx, "user-2"))

					return true, tt.result
				}).Once()

			_ = f.coordinator.RefreshSubscriptions(ctx, usecase.RefreshOptions{ForceRefresh: true, RetryOnFailure: true, MaxRetries: 1})

			f.subs.EXPECT().WatchedIDs().Return([]string{})
			state := f.coordinator.GetSyncState()
			assert.Equal(t, "user-2", state.UserID)
			assert.Nil(t, state.LastSyncTime)
			assert.Zero(t, state.ErrorCount)
			assert.Empty(t, state.LastError)
			assert.False(t, state.PendingRefresh)
			assert.False(t, f.coordinator.IsSyncHealthy())
			assert.Empty(t, reported.all())
		})
	}
}

func TestSyncCoordinator_CleanupStopsRetryBackoff(t *testing.T) {
	cfg := newTestConfig()
	cfg.Sync.BaseDelay = time.Hour
	cfg.Sync.MaxDelay = time.Hour
	f := newSyncFixtureWithConfig(t, cfg)
	ctx := context.Background()

	f.subs.EXPECT().Initialize(testUserID).Return(nil).Once()
	require.NoError(t, f.coordinator.InitializeSync(ctx, testUserID))

	entered := make(chan struct{})
	unavailable := domainerrors.NewTransientError(errors.New("unavailable"), "listen")
	f.subs.EXPECT().RefreshAll(mock.Anything, true).
		RunAndReturn(func(context.Context, bool) (bool, error) {
			close(entered)

			return true, unavailable
		}).Once()
	f.subs.EXPECT().Cleanup().Return().Once()

	done := make(chan error, 1)
	go func() {
		done <- f.coordinator.RefreshSubscriptions(ctx, usecase.RefreshOptions{ForceRefresh: true, RetryOnFailure: true, MaxRetries: 5})
	}()
	<-entered

	f.coordinator.Cleanup()

	select {
	case err := <-done:
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("refresh kept waiting on its backoff after cleanup")
	}
	assert.False(t, f.coordinator.IsSyncHealthy())
}
