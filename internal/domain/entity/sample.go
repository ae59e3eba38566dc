// Package entity contains the core business objects of the project.
package entity

import (
	"fmt"
	"strings"
	"time"
)

// MotionState is the motion classification reported by the device
type MotionState string

const (
	MotionStationary MotionState = "stationary"
	MotionWalking    MotionState = "walking"
	MotionRunning    MotionState = "running"
	MotionDriving    MotionState = "driving"
	MotionUnknown    MotionState = "unknown"
)

// IsValid reports whether m is one of the known classifications
func (m MotionState) IsValid() bool {
	switch m {
	case MotionStationary, MotionWalking, MotionRunning, MotionDriving, MotionUnknown:
		return true
	default:
		return false
	}
}

// DeviceStateSample is one reading of the device produced by the sensor layer.
// It is consumed once per ingestion call and never mutated.
type DeviceStateSample struct {
	UserID          string      `json:"user_id"`           // Owner of the device
	Latitude        float64     `json:"latitude"`          // WGS84 latitude
	Longitude       float64     `json:"longitude"`         // WGS84 longitude
	Address         *string     `json:"address,omitempty"` // Reverse-geocoded address, when known
	Accuracy        *float64    `json:"accuracy,omitempty"`
	Speed           *float64    `json:"speed,omitempty"` // Meters per second
	BatteryLevel    int         `json:"battery_level"`   // 0-100
	IsCharging      bool        `json:"is_charging"`
	Motion          MotionState `json:"motion"`
	Timestamp       time.Time   `json:"timestamp"`
	LocationEnabled bool        `json:"location_enabled"`
}

// Coordinate returns the sample position
func (s *DeviceStateSample) Coordinate() Coordinate {
	return Coordinate{Latitude: s.Latitude, Longitude: s.Longitude}
}

// IsStationary reports whether the device classified itself as not moving
func (s *DeviceStateSample) IsStationary() bool {
	return s.Motion == MotionStationary
}

// Validate returns a description of the first invalid field, or nil
func (s *DeviceStateSample) Validate() error {
	switch {
	case strings.TrimSpace(s.UserID) == "":
		return fmt.Errorf("user id is required")
	case s.Latitude < -90 || s.Latitude > 90:
		return fmt.Errorf("latitude %f out of range", s.Latitude)
	case s.Longitude < -180 || s.Longitude > 180:
		return fmt.Errorf("longitude %f out of range", s.Longitude)
	case s.BatteryLevel < 0 || s.BatteryLevel > 100:
		return fmt.Errorf("battery level %d out of range", s.BatteryLevel)
	case !s.Motion.IsValid():
		return fmt.Errorf("unknown motion classification %q", s.Motion)
	case s.Timestamp.IsZero():
		return fmt.Errorf("timestamp is required")
	}

	return nil
}
