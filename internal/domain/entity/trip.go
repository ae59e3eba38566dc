package entity

import (
	"time"

	"github.com/google/uuid"
)

// TripStatus is the lifecycle state of a trip
type TripStatus string

const (
	TripStatusActive    TripStatus = "active"
	TripStatusCompleted TripStatus = "completed"
)

// Trip is a movement between two geofences.
type Trip struct {
	ID             uuid.UUID   `json:"id"`
	UserID         string      `json:"user_id"`
	Status         TripStatus  `json:"status"`
	StartTime      time.Time   `json:"start_time"`
	EndTime        *time.Time  `json:"end_time,omitempty"`
	Start          Coordinate  `json:"start"`
	End            *Coordinate `json:"end,omitempty"`
	DistanceMeters float64     `json:"distance_meters"` // Haversine sum over consecutive waypoints
	MaxSpeed       float64     `json:"max_speed"`       // Meters per second
	AvgSpeed       float64     `json:"avg_speed"`       // Distance over elapsed seconds
	WaypointCount  int         `json:"waypoint_count"`
	Synced         bool        `json:"synced"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// IsActive reports whether the trip is still open
func (t *Trip) IsActive() bool {
	return t.Status == TripStatusActive
}

// TripWaypoint is an append-only point on a trip, ordered by Sequence.
type TripWaypoint struct {
	ID         int64     `json:"id"`
	TripID     uuid.UUID `json:"trip_id"`
	Sequence   int       `json:"sequence"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Speed      *float64  `json:"speed,omitempty"`
	Accuracy   *float64  `json:"accuracy,omitempty"`
	RecordedAt time.Time `json:"recorded_at"`
}

// Coordinate returns the waypoint position
func (w *TripWaypoint) Coordinate() Coordinate {
	return Coordinate{Latitude: w.Latitude, Longitude: w.Longitude}
}
