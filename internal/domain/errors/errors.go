package errors

import (
	"github.com/pkg/errors"
)

// Kind classifies an error by how callers should react to it
type Kind string

const (
	// KindTransient is a network or timeout failure, retryable with backoff
	KindTransient Kind = "transient"
	// KindPermanent is a remote rejection (auth, validation), never retried
	KindPermanent Kind = "permanent"
	// KindLocalStore is a local persistence failure, logged without aborting ingestion
	KindLocalStore Kind = "local_store"
	// KindCallback is a refresh callback failure, swallowed at the cache boundary
	KindCallback Kind = "callback"
	// KindInvariant is a misuse such as calling a component before initialization
	KindInvariant Kind = "invariant"
	// KindValidation is malformed input
	KindValidation Kind = "validation"
	// KindInternal is anything unclassified
	KindInternal Kind = "internal"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind        // Error classification
	ErrorCode() string // Business error code
	Message() string   // Human readable error message
	Details() string   // Detailed error information (optional)
	Retryable() bool   // Whether an automatic retry is sensible
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	errorCode string
	message   string
	details   string
	cause     error
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kind,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.cause != nil {
		return e.message + ": " + e.cause.Error()
	}

	return e.message
}

// Unwrap exposes the underlying cause
func (e *BaseError) Unwrap() error {
	return e.cause
}

// Is matches any BaseError carrying the same error code
func (e *BaseError) Is(target error) bool {
	var other *BaseError
	if !errors.As(target, &other) {
		return false
	}

	return e.errorCode == other.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Kind returns the error classification
func (e *BaseError) Kind() Kind {
	return e.kind
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the human readable error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Retryable reports whether the error is worth retrying
func (e *BaseError) Retryable() bool {
	return e.kind == KindTransient
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		kind:      e.kind,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
		cause:     e.cause,
	}
}

// WithCause attaches the underlying error
func (e *BaseError) WithCause(cause error) *BaseError {
	return &BaseError{
		kind:      e.kind,
		errorCode: e.errorCode,
		message:   e.message,
		details:   e.details,
		cause:     cause,
	}
}

// Predefined error types
var (
	ErrNotInitialized = NewBaseError(
		KindInvariant,
		"NOT_INITIALIZED",
		"component used before initialize",
		"",
	)

	ErrRemoteUnavailable = NewBaseError(
		KindTransient,
		"REMOTE_UNAVAILABLE",
		"remote store unavailable",
		"",
	)

	ErrRemoteRejected = NewBaseError(
		KindPermanent,
		"REMOTE_REJECTED",
		"remote store rejected the request",
		"",
	)

	ErrLocalStore = NewBaseError(
		KindLocalStore,
		"LOCAL_STORE_FAILED",
		"local store operation failed",
		"",
	)

	ErrInvalidSample = NewBaseError(
		KindValidation,
		"INVALID_SAMPLE",
		"invalid device state sample",
		"",
	)

	ErrInvalidCacheKey = NewBaseError(
		KindValidation,
		"INVALID_CACHE_KEY",
		"invalid cache key",
		"",
	)

	ErrRefreshCallback = NewBaseError(
		KindCallback,
		"REFRESH_CALLBACK_FAILED",
		"refresh callback failed",
		"",
	)

	ErrInvalidInput = NewBaseError(
		KindValidation,
		"INVALID_INPUT",
		"invalid input",
		"",
	)
)

// NewTransientError wraps a remote failure that may succeed on retry
func NewTransientError(err error, details string) error {
	return errors.WithStack(ErrRemoteUnavailable.WithDetails(details).WithCause(err))
}

// NewPermanentError wraps a remote failure that will not succeed on retry
func NewPermanentError(err error, details string) error {
	return errors.WithStack(ErrRemoteRejected.WithDetails(details).WithCause(err))
}

// NewLocalStoreError wraps a local persistence failure
func NewLocalStoreError(err error, details string) error {
	return errors.WithStack(ErrLocalStore.WithDetails(details).WithCause(err))
}

// NewValidationError reports malformed input
func NewValidationError(base *BaseError, details string) error {
	return errors.WithStack(base.WithDetails(details))
}

// NewNotInitializedError reports use of a component before initialize
func NewNotInitializedError(component string) error {
	return errors.WithStack(ErrNotInitialized.WithDetails(component))
}

// KindOf returns the classification of err, or KindInternal when unclassified
func KindOf(err error) Kind {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}

	return KindInternal
}

// IsRetryable reports whether err is classified as transient
func IsRetryable(err error) bool {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Retryable()
	}

	return false
}
