package impl

import (
	"time"

	"tether/internal/domain/entity"
)

// Field names of the user document in the remote store
const (
	fieldLocation           = "location"
	fieldBattery            = "battery"
	fieldMotion             = "motion"
	fieldArrivalTimestamp   = "arrivalTimestamp"
	fieldHeartbeatTimestamp = "heartbeatTimestamp"
	fieldGeofence           = "geofence"
	fieldLocationEnabled    = "locationEnabled"
	fieldUpdatedAt          = "updatedAt"
)

// fullFields is the complete document projection of a record
func fullFields(record *entity.LocationRecord, now time.Time) map[string]any {
	fields := map[string]any{
		fieldLocation: map[string]any{
			"latitude":  record.Latitude,
			"longitude": record.Longitude,
			"address":   derefOrNil(record.Address),
			"accuracy":  derefOrNil(record.Accuracy),
			"speed":     derefOrNil(record.Speed),
		},
		fieldBattery:          batteryFields(record.BatteryLevel, record.IsCharging),
		fieldMotion:           string(record.Motion),
		fieldArrivalTimestamp: record.ArrivalTimestamp,
		fieldLocationEnabled:  record.LocationEnabled,
		fieldUpdatedAt:        now,
	}

	// Cleared explicitly so a merge write does not leave a stale center behind
	geofence := map[string]any{
		"active":    false,
		"latitude":  nil,
		"longitude": nil,
		"radius":    nil,
		"entryTime": nil,
	}
	if g := record.Geofence; g != nil {
		geofence["active"] = true
		geofence["latitude"] = g.Center.Latitude
		geofence["longitude"] = g.Center.Longitude
		geofence["radius"] = g.RadiusMeters
		geofence["entryTime"] = g.EntryTime
	}
	fields[fieldGeofence] = geofence

	return fields
}

func batteryOnlyFields(level int, charging bool, now time.Time) map[string]any {
	return map[string]any{
		fieldBattery:   batteryFields(level, charging),
		fieldUpdatedAt: now,
	}
}

func heartbeatFields(level int, charging bool, at time.Time) map[string]any {
	return map[string]any{
		fieldBattery:            batteryFields(level, charging),
		fieldHeartbeatTimestamp: at,
		fieldUpdatedAt:          at,
	}
}

// minimalHeartbeatFields carries only the liveness timestamp
func minimalHeartbeatFields(at time.Time) map[string]any {
	return map[string]any{
		fieldHeartbeatTimestamp: at,
	}
}

func batteryFields(level int, charging bool) map[string]any {
	return map[string]any{
		"level":      level,
		"isCharging": charging,
	}
}

func derefOrNil[T any](v *T) any {
	if v == nil {
		return nil
	}

	return *v
}
