package model

import (
	"time"

	"github.com/google/uuid"
)

// TripModel is the GORM-specific struct for the 'trips' table.
type TripModel struct {
	ID             uuid.UUID  `gorm:"type:text;primaryKey"`
	UserID         string     `gorm:"type:text;not null;index:idx_trip_user_status,priority:1"`
	Status         string     `gorm:"type:text;not null;index:idx_trip_user_status,priority:2"`
	StartTime      time.Time  `gorm:"not null"`
	EndTime        *time.Time `gorm:"type:datetime;index"`
	StartLatitude  float64    `gorm:"not null"`
	StartLongitude float64    `gorm:"not null"`
	EndLatitude    *float64   `gorm:"type:real"`
	EndLongitude   *float64   `gorm:"type:real"`
	DistanceMeters float64    `gorm:"not null"`
	MaxSpeed       float64    `gorm:"not null"`
	AvgSpeed       float64    `gorm:"not null"`
	WaypointCount  int        `gorm:"not null"`
	Synced         bool       `gorm:"not null"`
	CreatedAt      time.Time  `gorm:"not null"`
	UpdatedAt      time.Time  `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (TripModel) TableName() string {
	return "trips"
}

// TripWaypointModel is the GORM-specific struct for the 'trip_waypoints' table.
// Sequences are unique per trip.
type TripWaypointModel struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	TripID     uuid.UUID `gorm:"type:text;not null;uniqueIndex:idx_waypoint_trip_seq,priority:1"`
	Sequence   int       `gorm:"not null;uniqueIndex:idx_waypoint_trip_seq,priority:2"`
	Latitude   float64   `gorm:"not null"`
	Longitude  float64   `gorm:"not null"`
	Speed      *float64  `gorm:"type:real"`
	Accuracy   *float64  `gorm:"type:real"`
	RecordedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (TripWaypointModel) TableName() string {
	return "trip_waypoints"
}
