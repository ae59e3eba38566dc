// Package cache is a TTL key/value store with lazy expiry, change
// notifications and an invalidate-with-refresh protocol.
package cache

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
	"unicode"

	"tether/config"
	domainerrors "tether/internal/domain/errors"
	"tether/internal/domain/service"
	"tether/internal/infra/metrics"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const maxKeyLength = 256

// ChangeKind describes what happened to a key
type ChangeKind string

const (
	ChangeSet         ChangeKind = "set"
	ChangeRemoved     ChangeKind = "removed"
	ChangeExpired     ChangeKind = "expired"
	ChangeInvalidated ChangeKind = "invalidated"
)

// Change is delivered to listeners after the cache mutated
type Change struct {
	Key  string
	Kind ChangeKind
	At   time.Time
}

// Listener receives change notifications synchronously
type Listener func(change Change)

// RefreshFunc repopulates invalidated keys. Errors and panics are logged and swallowed.
type RefreshFunc func(ctx context.Context) error

// Entry is a cached value with its write time, TTL and access metadata
type Entry struct {
	Value       any
	WrittenAt   time.Time
	TTL         time.Duration
	AccessCount int64
	LastAccess  time.Time
}

func (e *Entry) expired(now time.Time) bool {
	return e.TTL > 0 && !now.Before(e.WrittenAt.Add(e.TTL))
}

// Stats holds cache counters
type Stats struct {
	Hits          int64
	Misses        int64
	Evictions     int64
	Invalidations int64
	Entries       int
}

// Cache is safe for concurrent use
type Cache struct {
	mu         sync.Mutex
	entries    map[string]*Entry
	listeners  map[uint64]Listener
	nextID     uint64
	defaultTTL time.Duration
	clock      service.Clock
	logger     *slog.Logger
	stats      Stats
}

// Params holds dependencies for the cache, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Clock  service.Clock
	Logger *slog.Logger
}

// New creates the cache from configuration
func New(params Params) *Cache {
	ttl := 5 * time.Minute
	if params.Config.Cache != nil && params.Config.Cache.DefaultTTL > 0 {
		ttl = params.Config.Cache.DefaultTTL
	}

	return NewCache(params.Clock, ttl, params.Logger)
}

// NewCache creates a cache whose entries default to defaultTTL
func NewCache(clock service.Clock, defaultTTL time.Duration, logger *slog.Logger) *Cache {
	return &Cache{
		entries:    make(map[string]*Entry),
		listeners:  make(map[uint64]Listener),
		defaultTTL: defaultTTL,
		clock:      clock,
		logger:     logger,
	}
}

// Set stores value under key. A non-positive ttl uses the default TTL.
func (c *Cache) Set(key string, value any, ttl time.Duration) {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}
	now := c.clock.Now()

	c.mu.Lock()
	c.entries[key] = &Entry{
		Value:      value,
		WrittenAt:  now,
		TTL:        ttl,
		LastAccess: now,
	}
	c.mu.Unlock()

	c.notify(Change{Key: key, Kind: ChangeSet, At: now})
}

// Get returns the live value of key. An expired entry is evicted and reported as a miss.
func (c *Cache) Get(key string) (any, bool) {
	now := c.clock.Now()

	c.mu.Lock()
	entry, ok := c.entries[key]
	if !ok {
		c.stats.Misses++
		c.mu.Unlock()
		metrics.CacheOperations.WithLabelValues("miss").Inc()

		return nil, false
	}
	if entry.expired(now) {
		delete(c.entries, key)
		c.stats.Misses++
		c.stats.Evictions++
		c.mu.Unlock()
		metrics.CacheOperations.WithLabelValues("miss").Inc()
		metrics.CacheOperations.WithLabelValues("eviction").Inc()
		c.notify(Change{Key: key, Kind: ChangeExpired, At: now})

		return nil, false
	}
	entry.AccessCount++
	entry.LastAccess = now
	c.stats.Hits++
	value := entry.Value
	c.mu.Unlock()
	metrics.CacheOperations.WithLabelValues("hit").Inc()

	return value, true
}

// GetAs returns the live value of key when it holds a T
func GetAs[T any](c *Cache, key string) (T, bool) {
	var zero T
	value, ok := c.Get(key)
	if !ok {
		return zero, false
	}
	typed, ok := value.(T)
	if !ok {
		return zero, false
	}

	return typed, true
}

// Entry returns a copy of the entry metadata without counting an access
func (c *Cache) Entry(key string) (Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok || entry.expired(c.clock.Now()) {
		return Entry{}, false
	}

	return *entry, true
}

// Remove deletes key and reports whether it was present
func (c *Cache) Remove(key string) bool {
	c.mu.Lock()
	_, ok := c.entries[key]
	delete(c.entries, key)
	c.mu.Unlock()

	if ok {
		c.notify(Change{Key: key, Kind: ChangeRemoved, At: c.clock.Now()})
	}

	return ok
}

// InvalidateWithRefresh removes key, notifies listeners, then runs refresh.
// Only a malformed key is reported; refresh failures are logged.
func (c *Cache) InvalidateWithRefresh(ctx context.Context, key string, refresh RefreshFunc) error {
	return c.BatchInvalidateWithRefresh(ctx, []string{key}, refresh)
}

// BatchInvalidateWithRefresh validates every key before removing any, emits one
// invalidated notification per key, then runs refresh once.
func (c *Cache) BatchInvalidateWithRefresh(ctx context.Context, keys []string, refresh RefreshFunc) error {
	if len(keys) == 0 {
		return domainerrors.NewValidationError(domainerrors.ErrInvalidCacheKey, "no keys given")
	}
	for _, key := range keys {
		if err := validateKey(key); err != nil {
			return err
		}
	}

	now := c.clock.Now()
	c.mu.Lock()
	for _, key := range keys {
		delete(c.entries, key)
	}
	c.stats.Invalidations += int64(len(keys))
	c.mu.Unlock()
	metrics.CacheOperations.WithLabelValues("invalidation").Add(float64(len(keys)))

	for _, key := range keys {
		c.notify(Change{Key: key, Kind: ChangeInvalidated, At: now})
	}

	if refresh != nil {
		c.runRefresh(ctx, keys, refresh)
	}

	return nil
}

func (c *Cache) runRefresh(ctx context.Context, keys []string, refresh RefreshFunc) {
	err := func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("refresh callback panicked: %v", r)
			}
		}()

		return refresh(ctx)
	}()
	if err != nil {
		c.logger.Warn("[Cache] Refresh callback failed",
			slog.Any("keys", keys),
			slog.Any("error", domainerrors.ErrRefreshCallback.WithCause(err)),
		)
	}
}

// Subscribe registers a change listener and returns a func that removes it
func (c *Cache) Subscribe(listener Listener) func() {
	c.mu.Lock()
	c.nextID++
	id := c.nextID
	c.listeners[id] = listener
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.listeners, id)
		c.mu.Unlock()
	}
}

// PurgeExpired evicts every expired entry and returns how many were removed
func (c *Cache) PurgeExpired() int {
	now := c.clock.Now()

	c.mu.Lock()
	var expired []string
	for key, entry := range c.entries {
		if entry.expired(now) {
			expired = append(expired, key)
			delete(c.entries, key)
		}
	}
	c.stats.Evictions += int64(len(expired))
	c.mu.Unlock()

	if len(expired) > 0 {
		metrics.CacheOperations.WithLabelValues("eviction").Add(float64(len(expired)))
	}
	for _, key := range expired {
		c.notify(Change{Key: key, Kind: ChangeExpired, At: now})
	}

	return len(expired)
}

// Stats returns a snapshot of the counters
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	stats := c.stats
	stats.Entries = len(c.entries)

	return stats
}

// Clear drops every entry without notifications
func (c *Cache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]*Entry)
	c.mu.Unlock()
}

func (c *Cache) notify(change Change) {
	c.mu.Lock()
	listeners := make([]Listener, 0, len(c.listeners))
	for _, l := range c.listeners {
		listeners = append(listeners, l)
	}
	c.mu.Unlock()

	for _, l := range listeners {
		func() {
			defer func() {
				if r := recover(); r != nil {
					c.logger.Warn("[Cache] Change listener panicked",
						slog.String("key", change.Key),
						slog.Any("panic", r),
					)
				}
			}()
			l(change)
		}()
	}
}

func validateKey(key string) error {
	switch {
	case key == "":
		return domainerrors.NewValidationError(domainerrors.ErrInvalidCacheKey, "empty key")
	case len(key) > maxKeyLength:
		return domainerrors.NewValidationError(domainerrors.ErrInvalidCacheKey, "key exceeds 256 bytes")
	case strings.IndexFunc(key, unicode.IsSpace) >= 0:
		return errors.WithMessagef(
			domainerrors.NewValidationError(domainerrors.ErrInvalidCacheKey, "key contains whitespace"),
			"key %q", key,
		)
	}

	return nil
}
