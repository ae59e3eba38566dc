package cache

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	domainerrors "tether/internal/domain/errors"
	"tether/internal/infra/scheduler"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestCache() (*Cache, *scheduler.ManualClock) {
	clock := scheduler.NewManualClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	return NewCache(clock, time.Minute, newDiscardLogger()), clock
}

func TestCache_GetReturnsLiveValue(t *testing.T) {
	c, _ := newTestCache()

	c.Set("connections:u1", []string{"a", "b"}, 0)

	value, ok := GetAs[[]string](c, "connections:u1")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, value)

	entry, ok := c.Entry("connections:u1")
	require.True(t, ok)
	assert.Equal(t, int64(1), entry.AccessCount)
	assert.Equal(t, time.Minute, entry.TTL)
}

func TestCache_ExpiredEntryIsAMissAndEvicted(t *testing.T) {
	c, clock := newTestCache()

	var changes []Change
	c.Subscribe(func(change Change) { changes = append(changes, change) })

	c.Set("k", "v", 30*time.Second)
	clock.Advance(30 * time.Second)

	_, ok := c.Get("k")
	assert.False(t, ok)

	stats := c.Stats()
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, int64(1), stats.Evictions)
	assert.Zero(t, stats.Entries)
	require.Len(t, changes, 2)
	assert.Equal(t, ChangeExpired, changes[1].Kind)
}

func TestCache_SetReplacesEntry(t *testing.T) {
	c, clock := newTestCache()

	c.Set("k", 1, 10*time.Second)
	clock.Advance(8 * time.Second)
	c.Set("k", 2, 10*time.Second)
	clock.Advance(8 * time.Second)

	value, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, 2, value)
	assert.Equal(t, 1, c.Stats().Entries)
}

func TestCache_RemoveNotifiesOnlyWhenPresent(t *testing.T) {
	c, _ := newTestCache()

	var kinds []ChangeKind
	c.Subscribe(func(change Change) { kinds = append(kinds, change.Kind) })

	assert.False(t, c.Remove("missing"))
	c.Set("k", "v", 0)
	assert.True(t, c.Remove("k"))

	assert.Equal(t, []ChangeKind{ChangeSet, ChangeRemoved}, kinds)
}

func TestCache_InvalidateNotifiesBeforeRefresh(t *testing.T) {
	c, _ := newTestCache()
	ctx := context.Background()
	c.Set("k", "v", 0)

	var events []string
	c.Subscribe(func(change Change) {
		if change.Kind == ChangeInvalidated {
			events = append(events, "invalidated:"+change.Key)
		}
	})

	err := c.InvalidateWithRefresh(ctx, "k", func(context.Context) error {
		_, present := c.Get("k")
		events = append(events, "refresh")
		assert.False(t, present)

		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"invalidated:k", "refresh"}, events)
}

func TestCache_InvalidateSurvivesFailingCallback(t *testing.T) {
	tests := []struct {
		name    string
		refresh RefreshFunc
	}{
		{
			name:    "callback returns error",
			refresh: func(context.Context) error { return errors.New("backend down") },
		},
		{
			name:    "callback panics",
			refresh: func(context.Context) error { panic("boom") },
		},
		{
			name:    "no callback",
			refresh: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestCache()
			c.Set("k", "v", 0)

			err := c.InvalidateWithRefresh(context.Background(), "k", tt.refresh)

			require.NoError(t, err)
			_, ok := c.Get("k")
			assert.False(t, ok)
		})
	}
}

func TestCache_BatchInvalidateValidatesAllKeysFirst(t *testing.T) {
	c, _ := newTestCache()
	c.Set("a", 1, 0)
	c.Set("b", 2, 0)

	refreshed := false
	err := c.BatchInvalidateWithRefresh(context.Background(), []string{"a", "bad key", "b"}, func(context.Context) error {
		refreshed = true

		return nil
	})

	require.Error(t, err)
	assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCacheKey))
	assert.False(t, refreshed)

	_, okA := c.Get("a")
	_, okB := c.Get("b")
	assert.True(t, okA)
	assert.True(t, okB)
}

func TestCache_BatchInvalidateRejectsMalformedKeys(t *testing.T) {
	c, _ := newTestCache()
	ctx := context.Background()

	for _, keys := range [][]string{nil, {""}, {strings.Repeat("x", 257)}, {"tab\tkey"}} {
		assert.Error(t, c.BatchInvalidateWithRefresh(ctx, keys, nil))
	}
}

func TestCache_BatchInvalidateEmitsOneNotificationPerKeyAndRefreshesOnce(t *testing.T) {
	c, _ := newTestCache()
	c.Set("a", 1, 0)

	var invalidated []string
	c.Subscribe(func(change Change) {
		if change.Kind == ChangeInvalidated {
			invalidated = append(invalidated, change.Key)
		}
	})

	calls := 0
	err := c.BatchInvalidateWithRefresh(context.Background(), []string{"a", "b", "c"}, func(context.Context) error {
		calls++

		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, invalidated)
	assert.Equal(t, 1, calls)
	assert.Equal(t, int64(3), c.Stats().Invalidations)
}

func TestCache_PanickingListenerDoesNotBreakCache(t *testing.T) {
	c, _ := newTestCache()
	c.Subscribe(func(Change) { panic("listener") })

	c.Set("k", "v", 0)

	value, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", value)
}

func TestCache_PurgeExpired(t *testing.T) {
	c, clock := newTestCache()

	c.Set("short", 1, 10*time.Second)
	c.Set("long", 2, time.Hour)
	clock.Advance(time.Minute)

	assert.Equal(t, 1, c.PurgeExpired())
	assert.Equal(t, 1, c.Stats().Entries)
}

func TestCache_UnsubscribeStopsNotifications(t *testing.T) {
	c, _ := newTestCache()

	count := 0
	unsubscribe := c.Subscribe(func(Change) { count++ })
	c.Set("a", 1, 0)
	unsubscribe()
	c.Set("b", 2, 0)

	assert.Equal(t, 1, count)
}
