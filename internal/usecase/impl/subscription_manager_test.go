package impl

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"tether/internal/domain/entity"
	domainerrors "tether/internal/domain/errors"
	"tether/internal/domain/service"
	mockSvc "tether/internal/mocks/service"
	"tether/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// listenRecorder backs a mock RemoteStore and counts the stop calls of every listener it hands out
type listenRecorder struct {
	mu        sync.Mutex
	refs      []service.DocumentRef
	stops     []*atomic.Int32
	onChanges []func(*entity.RemoteDocument)
}

func (r *listenRecorder) listen(_ context.Context, ref service.DocumentRef, onChange func(*entity.RemoteDocument), _ func(error)) (func(), error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stopped := &atomic.Int32{}
	r.refs = append(r.refs, ref)
	r.stops = append(r.stops, stopped)
	r.onChanges = append(r.onChanges, onChange)

	return func() { stopped.Add(1) }, nil
}

func (r *listenRecorder) stopCounts() []int32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	counts := make([]int32, 0, len(r.stops))
	for _, stop := range r.stops {
		counts = append(counts, stop.Load())
	}

	return counts
}

func newMockedSubscriptionManager(t *testing.T) (usecase.SubscriptionUsecase, *mockSvc.MockRemoteStore) {
	t.Helper()

	env := newTestEnv(t)
	store := mockSvc.NewMockRemoteStore(t)
	subs := NewSubscriptionManager(store, env.clock, env.cfg, newDiscardLogger())
	require.NoError(t, subs.Initialize(testUserID))

	return subs, store
}

func TestSubscriptionManager_RequiresInitialize(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.subs.Subscribe(ctx, "friend-1", func(*entity.RemoteDocument) {})
	require.Error(t, err)
	assert.Equal(t, domainerrors.KindInvariant, domainerrors.KindOf(err))

	_, err = env.subs.RefreshAll(ctx, false)
	assert.Equal(t, domainerrors.KindInvariant, domainerrors.KindOf(err))

	err = env.subs.Initialize("")
	assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))
	assert.False(t, env.subs.IsInitialized())
}

func TestSubscriptionManager_SubscribeDeliversChanges(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	require.NoError(t, env.subs.Initialize(testUserID))

	var received []*entity.RemoteDocument
	unsubscribe, err := env.subs.Subscribe(ctx, "friend-1", func(doc *entity.RemoteDocument) {
		received = append(received, doc)
	})
	require.NoError(t, err)
	assert.Equal(t, 1, env.remote.ListenerCount(userRef("friend-1")))

	env.remote.Put(userRef("friend-1"), map[string]any{fieldBattery: map[string]any{"level": 30}})

	require.Len(t, received, 1)
	assert.Equal(t, "friend-1", received[0].ID)
	subscriptions := env.subs.Subscriptions()
	require.Len(t, subscriptions, 1)
	assert.True(t, subscriptions[0].Live)
	assert.NotNil(t, subscriptions[0].LastUpdate)

	unsubscribe()
	assert.Zero(t, env.remote.ListenerCount(userRef("friend-1")))
	assert.Empty(t, env.subs.WatchedIDs())
}

func TestSubscriptionManager_CallbackPanicIsContained(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	require.NoError(t, env.subs.Initialize(testUserID))

	calls := 0
	_, err := env.subs.Subscribe(ctx, "friend-1", func(*entity.RemoteDocument) {
		calls++
		panic("boom")
	})
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		env.remote.Put(userRef("friend-1"), map[string]any{})
		env.remote.Put(userRef("friend-1"), map[string]any{})
	})
	assert.Equal(t, 2, calls)
}

func TestSubscriptionManager_SubscribeReplacesExisting(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	require.NoError(t, env.subs.Initialize(testUserID))

	var first, second int
	unsubscribeFirst, err := env.subs.Subscribe(ctx, "friend-1", func(*entity.RemoteDocument) { first++ })
	require.NoError(t, err)
	_, err = env.subs.Subscribe(ctx, "friend-1", func(*entity.RemoteDocument) { second++ })
	require.NoError(t, err)

	assert.Equal(t, 1, env.remote.ListenerCount(userRef("friend-1")))

	// A stale closure must not tear down its replacement
	unsubscribeFirst()
	assert.Equal(t, []string{"friend-1"}, env.subs.WatchedIDs())

	env.remote.Put(userRef("friend-1"), map[string]any{})
	assert.Zero(t, first)
	assert.Equal(t, 1, second)
}

func TestSubscriptionManager_RefreshTearsDownEachListenerOnce(t *testing.T) {
	subs, store := newMockedSubscriptionManager(t)
	ctx := context.Background()

	recorder := &listenRecorder{}
	store.EXPECT().Listen(mock.Anything, mock.Anything, mock.Anything, mock.Anything).RunAndReturn(recorder.listen)

	var delivered []string
	for _, id := range []string{"friend-b", "friend-a"} {
		_, err := subs.Subscribe(ctx, id, func(doc *entity.RemoteDocument) { delivered = append(delivered, doc.ID) })
		require.NoError(t, err)
	}

	refreshed, err := subs.RefreshAll(ctx, false)
	require.NoError(t, err)
	assert.True(t, refreshed)

	assert.Equal(t, []int32{1, 1, 0, 0}, recorder.stopCounts(), "every prior listener is stopped exactly once and the new ones stay live")
	assert.Equal(t, "friend-a", recorder.refs[2].ID, "refresh walks entities in sorted order")
	assert.NotNil(t, subs.LastRefresh())

	// The recreated listener keeps the original callback
	recorder.onChanges[2](&entity.RemoteDocument{ID: "friend-a"})
	assert.Equal(t, []string{"friend-a"}, delivered)

	subs.Cleanup()
	assert.Equal(t, []int32{1, 1, 1, 1}, recorder.stopCounts())
	assert.False(t, subs.IsInitialized())
}

func TestSubscriptionManager_ConcurrentRefreshRunsOnePass(t *testing.T) {
	subs, store := newMockedSubscriptionManager(t)
	ctx := context.Background()

	entered := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int32
	store.EXPECT().Listen(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, service.DocumentRef, func(*entity.RemoteDocument), func(error)) (func(), error) {
			if calls.Add(1) == 2 {
				close(entered)
				<-release
			}

			return func() {}, nil
		})

	_, err := subs.Subscribe(ctx, "friend-1", func(*entity.RemoteDocument) {})
	require.NoError(t, err)

	done := make(chan bool)
	go func() {
		refreshed, err := subs.RefreshAll(ctx, false)
		assert.NoError(t, err)
		done <- refreshed
	}()
	<-entered

	refreshed, err := subs.RefreshAll(ctx, false)
	require.NoError(t, err)
	assert.False(t, refreshed, "a second pass is skipped while one is in flight")

	close(release)
	assert.True(t, <-done)
	assert.Equal(t, int32(2), calls.Load())

	refreshed, err = subs.RefreshAll(ctx, false)
	require.NoError(t, err)
	assert.True(t, refreshed, "the flag is released after the pass")
	assert.Equal(t, int32(3), calls.Load())
}

func TestSubscriptionManager_RefreshFailureKeepsEntry(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	require.NoError(t, env.subs.Initialize(testUserID))

	for _, id := range []string{"friend-a", "friend-b"} {
		_, err := env.subs.Subscribe(ctx, id, func(*entity.RemoteDocument) {})
		require.NoError(t, err)
	}

	env.remote.FailNext(domainerrors.NewTransientError(errors.New("unavailable"), "listen"))
	refreshed, err := env.subs.RefreshAll(ctx, false)
	require.Error(t, err)
	assert.True(t, refreshed)
	assert.True(t, domainerrors.IsRetryable(err))
	assert.Nil(t, env.subs.LastRefresh())

	subscriptions := env.subs.Subscriptions()
	require.Len(t, subscriptions, 2)
	assert.False(t, subscriptions[0].Live, "friend-a failed to re-listen")
	assert.True(t, subscriptions[1].Live, "friend-b was still refreshed")
	assert.Zero(t, env.remote.ListenerCount(userRef("friend-a")))
	assert.Equal(t, 1, env.remote.ListenerCount(userRef("friend-b")))

	_, err = env.subs.RefreshAll(ctx, false)
	require.NoError(t, err)
	assert.True(t, env.subs.Subscriptions()[0].Live)
	assert.Equal(t, 1, env.remote.ListenerCount(userRef("friend-a")))
}

func TestSubscriptionManager_RefreshForTargetsEntities(t *testing.T) {
	subs, store := newMockedSubscriptionManager(t)
	ctx := context.Background()

	recorder := &listenRecorder{}
	store.EXPECT().Listen(mock.Anything, mock.Anything, mock.Anything, mock.Anything).RunAndReturn(recorder.listen)

	for _, id := range []string{"friend-a", "friend-b"} {
		_, err := subs.Subscribe(ctx, id, func(*entity.RemoteDocument) {})
		require.NoError(t, err)
	}

	refreshed, err := subs.RefreshFor(ctx, []string{"friend-b", "stranger"}, false)
	require.NoError(t, err)
	assert.True(t, refreshed)

	assert.Equal(t, []int32{0, 1, 0}, recorder.stopCounts())
	assert.Equal(t, "friend-b", recorder.refs[2].ID)
}

func TestSubscriptionManager_ListenerErrorMarksNotLive(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	require.NoError(t, env.subs.Initialize(testUserID))

	_, err := env.subs.Subscribe(ctx, "friend-1", func(*entity.RemoteDocument) {})
	require.NoError(t, err)

	env.remote.EmitError(userRef("friend-1"), errors.New("stream reset"))

	subscriptions := env.subs.Subscriptions()
	require.Len(t, subscriptions, 1)
	assert.False(t, subscriptions[0].Live)
	assert.Equal(t, []string{"friend-1"}, env.subs.WatchedIDs(), "the entry stays so the next refresh can restore it")
}

func TestSubscriptionManager_UnsubscribeAndCleanup(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	require.NoError(t, env.subs.Initialize(testUserID))

	for _, id := range []string{"friend-a", "friend-b"} {
		_, err := env.subs.Subscribe(ctx, id, func(*entity.RemoteDocument) {})
		require.NoError(t, err)
	}

	require.NoError(t, env.subs.Unsubscribe("friend-a"))
	require.NoError(t, env.subs.Unsubscribe("unknown"))
	assert.Equal(t, []string{"friend-b"}, env.subs.WatchedIDs())
	assert.Zero(t, env.remote.ListenerCount(userRef("friend-a")))

	env.subs.Cleanup()
	assert.Zero(t, env.remote.ListenerCount(userRef("friend-b")))
	assert.Empty(t, env.subs.WatchedIDs())
	assert.False(t, env.subs.IsInitialized())
}

func TestSubscriptionManager_UnsubscribeAfterRefresh(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	require.NoError(t, env.subs.Initialize(testUserID))

	var received int
	unsubscribe, err := env.subs.Subscribe(ctx, "friend-1", func(*entity.RemoteDocument) { received++ })
	require.NoError(t, err)
	id := env.subs.Subscriptions()[0].ID

	for range 2 {
		_, err = env.subs.RefreshAll(ctx, false)
		require.NoError(t, err)
	}
	require.Len(t, env.subs.Subscriptions(), 1)
	assert.Equal(t, id, env.subs.Subscriptions()[0].ID, "refresh keeps the subscription id")
	assert.Equal(t, 1, env.remote.ListenerCount(userRef("friend-1")))

	unsubscribe()
	assert.Empty(t, env.subs.WatchedIDs())
	assert.Zero(t, env.remote.ListenerCount(userRef("friend-1")))

	env.remote.Put(userRef("friend-1"), map[string]any{fieldBattery: map[string]any{"level": 30}})
	assert.Zero(t, received)
}

func TestSubscriptionManager_UnsubscribeAfterRefreshStopsEveryListener(t *testing.T) {
	subs, store := newMockedSubscriptionManager(t)
	ctx := context.Background()
	recorder := &listenRecorder{}
	store.EXPECT().Listen(mock.Anything, mock.Anything, mock.Anything, mock.Anything).RunAndReturn(recorder.listen)

	unsubscribe, err := subs.Subscribe(ctx, "friend-1", func(*entity.RemoteDocument) {})
	require.NoError(t, err)
	_, err = subs.RefreshAll(ctx, false)
	require.NoError(t, err)

	unsubscribe()
	unsubscribe()

	assert.Equal(t, []int32{1, 1}, recorder.stopCounts())
	assert.Empty(t, subs.WatchedIDs())
}

func TestSubscriptionManager_SubscriptionOutlivesRequestContext(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.subs.Initialize(testUserID))

	ctx, cancel := context.WithCancel(context.Background())
	var received []string
	_, err := env.subs.Subscribe(ctx, "friend-1", func(doc *entity.RemoteDocument) { received = append(received, doc.ID) })
	require.NoError(t, err)
	cancel()

	env.remote.Put(userRef("friend-1"), map[string]any{fieldBattery: map[string]any{"level": 30}})
	assert.Equal(t, []string{"friend-1"}, received)

	refreshCtx, cancelRefresh := context.WithCancel(context.Background())
	_, err = env.subs.RefreshAll(refreshCtx, false)
	require.NoError(t, err)
	cancelRefresh()

	env.remote.Put(userRef("friend-1"), map[string]any{fieldBattery: map[string]any{"level": 29}})
	assert.Equal(t, []string{"friend-1", "friend-1"}, received)
	assert.Equal(t, 1, env.remote.ListenerCount(userRef("friend-1")))
}
