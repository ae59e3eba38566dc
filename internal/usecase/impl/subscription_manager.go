package impl

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"tether/config"
	"tether/internal/domain/entity"
	domainerrors "tether/internal/domain/errors"
	"tether/internal/domain/service"
	"tether/internal/infra/metrics"
	"tether/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type subscriptionManager struct {
	mu sync.Mutex

	initialized       bool
	userID            string
	subscriptions     map[string]*entity.SubscriptionInfo
	refreshInProgress bool
	lastRefresh       *time.Time

	remote     service.RemoteStore
	clock      service.Clock
	collection string
	logger     *slog.Logger
}

// NewSubscriptionManager creates the remote listener registry
func NewSubscriptionManager(
	remote service.RemoteStore,
	clock service.Clock,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.SubscriptionUsecase {
	return &subscriptionManager{
		subscriptions: make(map[string]*entity.SubscriptionInfo),
		remote:        remote,
		clock:         clock,
		collection:    cfg.Remote.UsersCollection,
		logger:        logger,
	}
}

func (m *subscriptionManager) Initialize(userID string) error {
	if userID == "" {
		return domainerrors.NewValidationError(domainerrors.ErrInvalidInput, "user id is required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.initialized = true
	m.userID = userID

	return nil
}

func (m *subscriptionManager) IsInitialized() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.initialized
}

func (m *subscriptionManager) checkInitializedLocked() error {
	if !m.initialized {
		return domainerrors.NewNotInitializedError("subscription manager")
	}

	return nil
}

// Subscribe replaces any live listener for entityID with a new one
func (m *subscriptionManager) Subscribe(ctx context.Context, entityID string, callback entity.EntityCallback) (func(), error) {
	if entityID == "" || callback == nil {
		return nil, domainerrors.NewValidationError(domainerrors.ErrInvalidInput, "entity id and callback are required")
	}

	m.mu.Lock()
	if err := m.checkInitializedLocked(); err != nil {
		m.mu.Unlock()

		return nil, err
	}
	existing := m.subscriptions[entityID]
	delete(m.subscriptions, entityID)
	m.mu.Unlock()

	if existing != nil {
		existing.Unsubscribe()
	}

	info, err := m.listen(ctx, entityID, callback)
	if err != nil {
		m.updateGauge()

		return nil, err
	}

	m.mu.Lock()
	// Last writer wins when two subscribes for the same entity race
	replaced := m.subscriptions[entityID]
	m.subscriptions[entityID] = info
	m.mu.Unlock()

	if replaced != nil {
		replaced.Unsubscribe()
	}
	m.updateGauge()

	m.logger.Debug("[SubscriptionManager] Subscribed",
		slog.String("entity_id", entityID),
		slog.String("subscription_id", info.ID.String()),
	)

	// Refresh swaps the registered listener but keeps its ID, so the entry
	// matched here may be a newer listener than info.
	return func() {
		m.mu.Lock()
		current, ok := m.subscriptions[entityID]
		owned := ok && current.ID == info.ID
		if owned {
			delete(m.subscriptions, entityID)
		}
		m.mu.Unlock()

		info.Unsubscribe()
		if owned {
			current.Unsubscribe()
		}
		m.updateGauge()
	}, nil
}

// listen creates a remote listener; the returned Unsubscribe is safe to call more than once
func (m *subscriptionManager) listen(ctx context.Context, entityID string, callback entity.EntityCallback) (*entity.SubscriptionInfo, error) {
	info := &entity.SubscriptionInfo{
		ID:        uuid.New(),
		EntityID:  entityID,
		Callback:  callback,
		Live:      true,
		CreatedAt: m.clock.Now(),
	}

	ref := service.DocumentRef{Collection: m.collection, ID: entityID}
	stop, err := m.remote.Listen(ctx, ref,
		func(doc *entity.RemoteDocument) {
			m.deliver(info, doc)
		},
		func(err error) {
			m.logger.Warn("[SubscriptionManager] Listener failed",
				slog.String("entity_id", entityID),
				slog.Any("error", err),
			)
			m.mu.Lock()
			info.Live = false
			m.mu.Unlock()
		},
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to listen to %s", ref.Path())
	}

	var once sync.Once
	info.Unsubscribe = func() {
		once.Do(stop)
	}

	return info, nil
}

// deliver hands a change to the callback; a panicking callback must not kill the stream
func (m *subscriptionManager) deliver(info *entity.SubscriptionInfo, doc *entity.RemoteDocument) {
	m.mu.Lock()
	now := m.clock.Now()
	info.LastUpdate = &now
	m.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("[SubscriptionManager] Callback panicked",
				slog.String("entity_id", info.EntityID),
				slog.Any("panic", r),
			)
		}
	}()

	info.Callback(doc)
}

func (m *subscriptionManager) Unsubscribe(entityID string) error {
	m.mu.Lock()
	if err := m.checkInitializedLocked(); err != nil {
		m.mu.Unlock()

		return err
	}
	existing := m.subscriptions[entityID]
	delete(m.subscriptions, entityID)
	m.mu.Unlock()

	if existing != nil {
		existing.Unsubscribe()
		m.updateGauge()
	}

	return nil
}

func (m *subscriptionManager) RefreshAll(ctx context.Context, force bool) (bool, error) {
	return m.refresh(ctx, nil, force)
}

func (m *subscriptionManager) RefreshFor(ctx context.Context, entityIDs []string, force bool) (bool, error) {
	return m.refresh(ctx, entityIDs, force)
}

// refresh recreates the listeners of entityIDs, or of every entity when nil.
// Only the call that raised refreshInProgress lowers it.
func (m *subscriptionManager) refresh(ctx context.Context, entityIDs []string, force bool) (bool, error) {
	m.mu.Lock()
	if err := m.checkInitializedLocked(); err != nil {
		m.mu.Unlock()

		return false, err
	}

	acquired := !m.refreshInProgress
	if !acquired && !force {
		m.mu.Unlock()
		m.logger.Debug("[SubscriptionManager] Refresh already in progress, skipping")

		return false, nil
	}
	if acquired {
		m.refreshInProgress = true
	}

	targets := entityIDs
	if targets == nil {
		targets = m.watchedIDsLocked()
	}
	m.mu.Unlock()

	if acquired {
		defer func() {
			m.mu.Lock()
			m.refreshInProgress = false
			m.mu.Unlock()
		}()
	}

	var firstErr error
	for _, entityID := range targets {
		if err := m.recreate(ctx, entityID); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	m.updateGauge()
	if firstErr != nil {
		return true, firstErr
	}

	m.mu.Lock()
	now := m.clock.Now()
	m.lastRefresh = &now
	m.mu.Unlock()

	m.logger.Debug("[SubscriptionManager] Refreshed subscriptions", slog.Int("count", len(targets)))

	return true, nil
}

// recreate tears down and re-listens one entity with the same callback.
// On failure the entry stays registered but not live, so the next refresh retries it.
func (m *subscriptionManager) recreate(ctx context.Context, entityID string) error {
	m.mu.Lock()
	current, ok := m.subscriptions[entityID]
	m.mu.Unlock()
	if !ok {
		return nil
	}

	current.Unsubscribe()

	next, err := m.listen(ctx, entityID, current.Callback)
	if err == nil {
		next.ID = current.ID
	}

	m.mu.Lock()
	stillCurrent := m.subscriptions[entityID] == current
	switch {
	case !stillCurrent:
	case err != nil:
		current.Live = false
	default:
		m.subscriptions[entityID] = next
	}
	m.mu.Unlock()

	if err != nil {
		m.logger.Warn("[SubscriptionManager] Failed to recreate listener",
			slog.String("entity_id", entityID),
			slog.Any("error", err),
		)

		return err
	}
	if !stillCurrent {
		// Replaced or removed while we were re-listening
		next.Unsubscribe()
	}

	return nil
}

func (m *subscriptionManager) WatchedIDs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.watchedIDsLocked()
}

func (m *subscriptionManager) watchedIDsLocked() []string {
	ids := make([]string, 0, len(m.subscriptions))
	for id := range m.subscriptions {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}

func (m *subscriptionManager) Subscriptions() []entity.SubscriptionInfo {
	m.mu.Lock()
	defer m.mu.Unlock()

	infos := make([]entity.SubscriptionInfo, 0, len(m.subscriptions))
	for _, id := range m.watchedIDsLocked() {
		info := *m.subscriptions[id]
		if info.LastUpdate != nil {
			last := *info.LastUpdate
			info.LastUpdate = &last
		}
		infos = append(infos, info)
	}

	return infos
}

func (m *subscriptionManager) LastRefresh() *time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.lastRefresh == nil {
		return nil
	}
	last := *m.lastRefresh

	return &last
}

func (m *subscriptionManager) Cleanup() {
	m.mu.Lock()
	subscriptions := m.subscriptions
	m.subscriptions = make(map[string]*entity.SubscriptionInfo)
	m.initialized = false
	m.userID = ""
	m.lastRefresh = nil
	m.mu.Unlock()

	for _, info := range subscriptions {
		info.Unsubscribe()
	}
	m.updateGauge()

	m.logger.Info("[SubscriptionManager] Cleaned up", slog.Int("released", len(subscriptions)))
}

func (m *subscriptionManager) updateGauge() {
	m.mu.Lock()
	live := 0
	for _, info := range m.subscriptions {
		if info.Live {
			live++
		}
	}
	m.mu.Unlock()

	metrics.ActiveSubscriptions.Set(float64(live))
}
