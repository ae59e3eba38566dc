// Package service declares the external collaborators the engine depends on.
package service

import (
	"context"

	"tether/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrDocumentNotFound is returned by Read when the document is absent.
var ErrDocumentNotFound = errors.New("remote document not found")

// WriteMode selects which fields of the user document a write may touch
type WriteMode string

const (
	// WriteModeFull replaces position, battery and geofence fields
	WriteModeFull WriteMode = "full"
	// WriteModeBatteryOnly updates battery fields and preserves the position
	WriteModeBatteryOnly WriteMode = "battery-only"
	// WriteModeHeartbeatOnly updates the heartbeat timestamp and battery
	WriteModeHeartbeatOnly WriteMode = "heartbeat-only"
)

// DocumentRef addresses a document in the remote store
type DocumentRef struct {
	Collection string
	ID         string
}

// Path returns "collection/id"
func (r DocumentRef) Path() string {
	return r.Collection + "/" + r.ID
}

// RemoteStore is the cloud document store. Errors are classified with
// domain error kinds: transient failures are retryable, permanent ones are not.
type RemoteStore interface {
	// Read fetches a document, returning ErrDocumentNotFound when absent.
	Read(ctx context.Context, ref DocumentRef) (*entity.RemoteDocument, error)

	// Write merges fields into a document according to mode.
	Write(ctx context.Context, ref DocumentRef, fields map[string]any, mode WriteMode) error

	// Listen streams document changes to onChange until the returned stop func is called.
	// onError receives stream failures; the stream ends after an error.
	// ctx bounds the set-up only; cancelling it later does not end the stream.
	Listen(ctx context.Context, ref DocumentRef, onChange func(*entity.RemoteDocument), onError func(error)) (stop func(), err error)

	// Close releases client resources
	Close() error
}
