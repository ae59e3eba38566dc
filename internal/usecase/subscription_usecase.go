package usecase

import (
	"context"
	"time"

	"tether/internal/domain/entity"
)

// SubscriptionUsecase keeps exactly one live remote listener per watched entity
type SubscriptionUsecase interface {
	// Initialize binds the manager to the signed-in user
	Initialize(userID string) error

	IsInitialized() bool

	// Subscribe replaces any live listener for entityID. The returned func
	// tears down only the listener created by this call.
	Subscribe(ctx context.Context, entityID string, callback entity.EntityCallback) (func(), error)

	// Unsubscribe tears down the listener of entityID, if any
	Unsubscribe(entityID string) error

	// RefreshAll recreates every listener. It returns false without work
	// when another refresh is in flight and force is not set.
	RefreshAll(ctx context.Context, force bool) (bool, error)

	// RefreshFor is RefreshAll scoped to entityIDs
	RefreshFor(ctx context.Context, entityIDs []string, force bool) (bool, error)

	// WatchedIDs returns the watched entity ids, sorted
	WatchedIDs() []string

	// Subscriptions returns a copy of every registration
	Subscriptions() []entity.SubscriptionInfo

	LastRefresh() *time.Time

	// Cleanup tears down every listener and forgets the user
	Cleanup()
}
