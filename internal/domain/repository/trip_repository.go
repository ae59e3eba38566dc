package repository

import (
	"context"
	"time"

	"tether/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrTripNotFound is returned when a trip is not found.
	ErrTripNotFound = errors.New("trip not found")
	// ErrDuplicateWaypoint is returned when a waypoint sequence is reused.
	ErrDuplicateWaypoint = errors.New("waypoint sequence already exists")
)

// TripRepository stores trips and their waypoints.
type TripRepository interface {
	// CreateTrip persists a new trip.
	CreateTrip(ctx context.Context, trip *entity.Trip) error

	// UpdateTrip saves the totals, status and end of a trip.
	UpdateTrip(ctx context.Context, trip *entity.Trip) error

	// FindActiveTrip returns the open trip of a user.
	FindActiveTrip(ctx context.Context, userID string) (*entity.Trip, error)

	// ListTrips returns the newest trips of a user.
	ListTrips(ctx context.Context, userID string, limit int) ([]*entity.Trip, error)

	// AppendWaypoint adds a waypoint; sequences are unique per trip.
	AppendWaypoint(ctx context.Context, waypoint *entity.TripWaypoint) error

	// ListWaypoints returns the waypoints of a trip ordered by sequence.
	ListWaypoints(ctx context.Context, tripID uuid.UUID) ([]*entity.TripWaypoint, error)

	// DeleteCompletedBefore removes completed trips that ended before cutoff, with their waypoints.
	DeleteCompletedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
