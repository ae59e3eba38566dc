// Package remote implements the cloud document store behind a circuit breaker.
package remote

import (
	"context"

	domainerrors "tether/internal/domain/errors"
	"tether/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// classify maps a client error onto the domain error kinds.
func classify(err error, details string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, service.ErrDocumentNotFound) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return domainerrors.NewTransientError(err, details)
	}

	switch status.Code(err) {
	case codes.NotFound:
		return errors.Wrap(service.ErrDocumentNotFound, details)
	case codes.Unavailable, codes.DeadlineExceeded, codes.ResourceExhausted, codes.Aborted, codes.Internal:
		return domainerrors.NewTransientError(err, details)
	default:
		return domainerrors.NewPermanentError(err, details)
	}
}

// allowedFields lists the top-level document fields each write mode may touch.
// A nil set means any field.
var allowedFields = map[service.WriteMode]map[string]struct{}{
	service.WriteModeFull: nil,
	service.WriteModeBatteryOnly: {
		"battery":   {},
		"updatedAt": {},
	},
	service.WriteModeHeartbeatOnly: {
		"battery":            {},
		"heartbeatTimestamp": {},
		"updatedAt":          {},
	},
}

// checkFields rejects writes that touch fields outside their mode.
func checkFields(mode service.WriteMode, fields map[string]any) error {
	allowed, ok := allowedFields[mode]
	if !ok {
		return domainerrors.NewValidationError(domainerrors.ErrInvalidInput, "unknown write mode "+string(mode))
	}
	if len(fields) == 0 {
		return domainerrors.NewValidationError(domainerrors.ErrInvalidInput, "empty write")
	}
	if allowed == nil {
		return nil
	}
	for key := range fields {
		if _, ok := allowed[key]; !ok {
			return domainerrors.NewValidationError(domainerrors.ErrInvalidInput, "field "+key+" not allowed in "+string(mode)+" write")
		}
	}

	return nil
}
