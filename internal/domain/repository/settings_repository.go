package repository

import (
	"context"

	"github.com/pkg/errors"
)

// ErrSettingNotFound is returned when a key has no value.
var ErrSettingNotFound = errors.New("setting not found")

// Well-known setting keys.
const (
	SettingPendingSyncCount = "pending_sync_count"
	SettingLastSyncTime     = "last_sync_time"
	SettingLastUserID       = "last_user_id"
)

// SettingsRepository is a durable key/value store for app settings.
type SettingsRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error

	// IncrementCounter adds delta to an integer setting, creating it at zero, and returns the new value.
	IncrementCounter(ctx context.Context, key string, delta int64) (int64, error)
}
