package eventbus

import (
	"time"

	"tether/internal/domain/entity"
)

// SyncRefreshRequired asks collaborators to reload data derived from the social graph
type SyncRefreshRequired struct {
	Reason      string   `json:"reason"`
	AffectedIDs []string `json:"affected_ids,omitempty"`
}

// LoadingStateChanged brackets long-running coordinator operations
type LoadingStateChanged struct {
	IsLoading bool   `json:"is_loading"`
	Operation string `json:"operation"`
}

// Success reports a completed user-visible operation
type Success struct {
	Operation string `json:"operation"`
	Message   string `json:"message"`
}

// Error reports a failed operation; Retryable tells whether another automatic attempt is sensible
type Error struct {
	Operation string `json:"operation"`
	Message   string `json:"message"`
	Retryable bool   `json:"retryable"`
}

// ConnectionChanged reports a social graph membership change
type ConnectionChanged struct {
	ID   string                      `json:"id"`
	Kind entity.ConnectionChangeKind `json:"kind"`
}

// NetworkChanged reports a connectivity change
type NetworkChanged struct {
	IsConnected bool   `json:"is_connected"`
	Type        string `json:"type"`
}

// AppStateChanged reports a foreground/background transition
type AppStateChanged struct {
	State entity.AppState `json:"state"`
}

// GeofenceChanged reports a geofence activation or exit
type GeofenceChanged struct {
	UserID    string             `json:"user_id"`
	Active    bool               `json:"active"`
	Center    *entity.Coordinate `json:"center,omitempty"`
	EntryTime *time.Time         `json:"entry_time,omitempty"`
}

//nolint:gochecknoglobals
var (
	TopicSyncRefreshRequired = NewTopic[SyncRefreshRequired]("sync-refresh-required")
	TopicLoadingStateChanged = NewTopic[LoadingStateChanged]("loading-state-changed")
	TopicSuccess             = NewTopic[Success]("success")
	TopicError               = NewTopic[Error]("error")
	TopicConnectionAdded     = NewTopic[ConnectionChanged]("connection-added")
	TopicConnectionRemoved   = NewTopic[ConnectionChanged]("connection-removed")
	TopicConnectionUpdated   = NewTopic[ConnectionChanged]("connection-updated")
	TopicNetworkChanged      = NewTopic[NetworkChanged]("network-changed")
	TopicAppStateChanged     = NewTopic[AppStateChanged]("app-state-changed")
	TopicGeofenceChanged     = NewTopic[GeofenceChanged]("geofence-changed")
)

// ConnectionTopic returns the topic for a connection change kind
func ConnectionTopic(kind entity.ConnectionChangeKind) Topic[ConnectionChanged] {
	switch kind {
	case entity.ConnectionRemoved:
		return TopicConnectionRemoved
	case entity.ConnectionUpdated:
		return TopicConnectionUpdated
	default:
		return TopicConnectionAdded
	}
}
