package entity

import (
	"time"

	"github.com/google/uuid"
)

// RemoteDocument is a snapshot of a document in the remote store
type RemoteDocument struct {
	Collection string         `json:"collection"`
	ID         string         `json:"id"`
	Exists     bool           `json:"exists"`
	Fields     map[string]any `json:"fields,omitempty"`
	UpdateTime time.Time      `json:"update_time"`
}

// EntityCallback receives every change to a watched entity
type EntityCallback func(doc *RemoteDocument)

// SubscriptionInfo tracks the single live remote listener of a watched entity.
type SubscriptionInfo struct {
	ID          uuid.UUID      `json:"id"`        // Identifies this listener instance
	EntityID    string         `json:"entity_id"` // The watched entity (e.g. a tracked person)
	Callback    EntityCallback `json:"-"`
	Unsubscribe func()         `json:"-"` // Tears down the remote listener
	Live        bool           `json:"live"`
	CreatedAt   time.Time      `json:"created_at"`
	LastUpdate  *time.Time     `json:"last_update,omitempty"`
}
