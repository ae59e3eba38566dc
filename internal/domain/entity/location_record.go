package entity

import (
	"time"
)

// Coordinate is a WGS84 position
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// LocationRecord is the persisted projection of a DeviceStateSample.
type LocationRecord struct {
	ID                 int64       `json:"id"`
	UserID             string      `json:"user_id"`
	Latitude           float64     `json:"latitude"`
	Longitude          float64     `json:"longitude"`
	Address            *string     `json:"address,omitempty"`
	Accuracy           *float64    `json:"accuracy,omitempty"`
	Speed              *float64    `json:"speed,omitempty"`
	BatteryLevel       int         `json:"battery_level"`
	IsCharging         bool        `json:"is_charging"`
	Motion             MotionState `json:"motion"`
	LocationEnabled    bool        `json:"location_enabled"`
	SampleTime         time.Time   `json:"sample_time"`
	ArrivalTimestamp   time.Time   `json:"arrival_timestamp"`             // When the current dwell began
	HeartbeatTimestamp *time.Time  `json:"heartbeat_timestamp,omitempty"` // Last liveness ping
	Geofence           *Geofence   `json:"geofence,omitempty"`            // Snapshot at ingestion time
	IsStationary       bool        `json:"is_stationary"`
	Synced             bool        `json:"synced"`
	SyncedAt           *time.Time  `json:"synced_at,omitempty"`
	CreatedAt          time.Time   `json:"created_at"`
}

// Coordinate returns the record position
func (r *LocationRecord) Coordinate() Coordinate {
	return Coordinate{Latitude: r.Latitude, Longitude: r.Longitude}
}

// NewLocationRecord projects a sample into an unsynced record.
func NewLocationRecord(sample *DeviceStateSample, arrival time.Time, geofence *Geofence) *LocationRecord {
	record := &LocationRecord{
		UserID:           sample.UserID,
		Latitude:         sample.Latitude,
		Longitude:        sample.Longitude,
		Address:          sample.Address,
		Accuracy:         sample.Accuracy,
		Speed:            sample.Speed,
		BatteryLevel:     sample.BatteryLevel,
		IsCharging:       sample.IsCharging,
		Motion:           sample.Motion,
		LocationEnabled:  sample.LocationEnabled,
		SampleTime:       sample.Timestamp,
		ArrivalTimestamp: arrival,
		IsStationary:     sample.IsStationary(),
	}
	if geofence != nil {
		snapshot := *geofence
		record.Geofence = &snapshot
	}

	return record
}
