package entity

import "time"

// AppState is the foreground/background state of the host application
type AppState string

const (
	AppStateActive     AppState = "active"
	AppStateBackground AppState = "background"
	AppStateInactive   AppState = "inactive"
)

// IsValid reports whether s is a known lifecycle state
func (s AppState) IsValid() bool {
	return s == AppStateActive || s == AppStateBackground || s == AppStateInactive
}

// ConnectionChangeKind describes a change in the social graph
type ConnectionChangeKind string

const (
	ConnectionAdded   ConnectionChangeKind = "added"
	ConnectionRemoved ConnectionChangeKind = "removed"
	ConnectionUpdated ConnectionChangeKind = "updated"
)

// IsValid reports whether k is a known change kind
func (k ConnectionChangeKind) IsValid() bool {
	return k == ConnectionAdded || k == ConnectionRemoved || k == ConnectionUpdated
}

// SyncState is the coordinator's view of synchronization health.
type SyncState struct {
	IsInitialized         bool       `json:"is_initialized"`
	UserID                string     `json:"user_id,omitempty"`
	LastSyncTime          *time.Time `json:"last_sync_time,omitempty"`
	ActiveSubscriptionIDs []string   `json:"active_subscription_ids"`
	PendingRefresh        bool       `json:"pending_refresh"`
	ErrorCount            int        `json:"error_count"`
	IsConnected           bool       `json:"is_connected"`
	AppState              AppState   `json:"app_state"`
	LastError             string     `json:"last_error,omitempty"`
}

// Clone returns a deep copy safe to hand to readers
func (s SyncState) Clone() SyncState {
	cloned := s
	cloned.ActiveSubscriptionIDs = append([]string(nil), s.ActiveSubscriptionIDs...)
	if s.LastSyncTime != nil {
		t := *s.LastSyncTime
		cloned.LastSyncTime = &t
	}

	return cloned
}
