package entity

import "time"

// Geofence is the circular region around a dwell point.
// At most one is active per user; it is replaced wholesale on activation.
type Geofence struct {
	Center       Coordinate `json:"center"`
	RadiusMeters float64    `json:"radius_meters"`
	EntryTime    time.Time  `json:"entry_time"` // Backdated to the dwell start
}
