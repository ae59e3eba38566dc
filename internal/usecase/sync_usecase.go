package usecase

import (
	"context"
	"time"

	"tether/internal/domain/entity"
)

// RefreshOptions tunes one RefreshSubscriptions pass. Zero retry values use the configured defaults.
type RefreshOptions struct {
	ForceRefresh      bool          `json:"forceRefresh"`
	RetryOnFailure    bool          `json:"retryOnFailure"`
	MaxRetries        int           `json:"maxRetries,omitempty"`
	BaseDelay         time.Duration `json:"baseDelay,omitempty"`
	MaxDelay          time.Duration `json:"maxDelay,omitempty"`
	BackoffMultiplier float64       `json:"backoffMultiplier,omitempty"`
}

// SyncUsecase coordinates caches and subscriptions with connectivity,
// lifecycle and social graph changes
type SyncUsecase interface {
	// InitializeSync is idempotent per user; a new user triggers a full cleanup first
	InitializeSync(ctx context.Context, userID string) error

	RefreshSubscriptions(ctx context.Context, opts RefreshOptions) error

	// OnConnectionChange invalidates social graph caches and requests a refresh
	OnConnectionChange(ctx context.Context, connectionID string, kind entity.ConnectionChangeKind) error

	// ForceSync refreshes with retry and reports the outcome on the bus
	ForceSync(ctx context.Context) error

	IsSyncHealthy() bool

	GetSyncState() entity.SyncState

	// SetOnlineStatus records connectivity; going online runs recovery
	SetOnlineStatus(ctx context.Context, online bool)

	HandleAppStateChange(ctx context.Context, state entity.AppState)

	Cleanup()
}
