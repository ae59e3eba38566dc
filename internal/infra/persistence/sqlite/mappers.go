package sqlite

import (
	"tether/internal/domain/entity"
	"tether/internal/infra/persistence/model"
)

func fromLocationRecordDomain(record *entity.LocationRecord) *model.LocationRecordModel {
	recordM := &model.LocationRecordModel{
		ID:                 record.ID,
		UserID:             record.UserID,
		Latitude:           record.Latitude,
		Longitude:          record.Longitude,
		Address:            record.Address,
		Accuracy:           record.Accuracy,
		Speed:              record.Speed,
		BatteryLevel:       record.BatteryLevel,
		IsCharging:         record.IsCharging,
		Motion:             string(record.Motion),
		LocationEnabled:    record.LocationEnabled,
		SampleTime:         record.SampleTime,
		ArrivalTimestamp:   record.ArrivalTimestamp,
		HeartbeatTimestamp: record.HeartbeatTimestamp,
		IsStationary:       record.IsStationary,
		Synced:             record.Synced,
		SyncedAt:           record.SyncedAt,
		CreatedAt:          record.CreatedAt,
	}
	if g := record.Geofence; g != nil {
		lat, lng, radius, entry := g.Center.Latitude, g.Center.Longitude, g.RadiusMeters, g.EntryTime
		recordM.GeofenceActive = true
		recordM.GeofenceLatitude = &lat
		recordM.GeofenceLongitude = &lng
		recordM.GeofenceRadius = &radius
		recordM.GeofenceEntryTime = &entry
	}

	return recordM
}

func toLocationRecordDomain(recordM *model.LocationRecordModel) *entity.LocationRecord {
	record := &entity.LocationRecord{
		ID:                 recordM.ID,
		UserID:             recordM.UserID,
		Latitude:           recordM.Latitude,
		Longitude:          recordM.Longitude,
		Address:            recordM.Address,
		Accuracy:           recordM.Accuracy,
		Speed:              recordM.Speed,
		BatteryLevel:       recordM.BatteryLevel,
		IsCharging:         recordM.IsCharging,
		Motion:             entity.MotionState(recordM.Motion),
		LocationEnabled:    recordM.LocationEnabled,
		SampleTime:         recordM.SampleTime,
		ArrivalTimestamp:   recordM.ArrivalTimestamp,
		HeartbeatTimestamp: recordM.HeartbeatTimestamp,
		IsStationary:       recordM.IsStationary,
		Synced:             recordM.Synced,
		SyncedAt:           recordM.SyncedAt,
		CreatedAt:          recordM.CreatedAt,
	}
	if recordM.GeofenceActive && recordM.GeofenceLatitude != nil && recordM.GeofenceLongitude != nil {
		geofence := &entity.Geofence{
			Center: entity.Coordinate{Latitude: *recordM.GeofenceLatitude, Longitude: *recordM.GeofenceLongitude},
		}
		if recordM.GeofenceRadius != nil {
			geofence.RadiusMeters = *recordM.GeofenceRadius
		}
		if recordM.GeofenceEntryTime != nil {
			geofence.EntryTime = *recordM.GeofenceEntryTime
		}
		record.Geofence = geofence
	}

	return record
}

func fromTripDomain(trip *entity.Trip) *model.TripModel {
	tripM := &model.TripModel{
		ID:             trip.ID,
		UserID:         trip.UserID,
		Status:         string(trip.Status),
		StartTime:      trip.StartTime,
		EndTime:        trip.EndTime,
		StartLatitude:  trip.Start.Latitude,
		StartLongitude: trip.Start.Longitude,
		DistanceMeters: trip.DistanceMeters,
		MaxSpeed:       trip.MaxSpeed,
		AvgSpeed:       trip.AvgSpeed,
		WaypointCount:  trip.WaypointCount,
		Synced:         trip.Synced,
		CreatedAt:      trip.CreatedAt,
		UpdatedAt:      trip.UpdatedAt,
	}
	if trip.End != nil {
		lat, lng := trip.End.Latitude, trip.End.Longitude
		tripM.EndLatitude = &lat
		tripM.EndLongitude = &lng
	}

	return tripM
}

func toTripDomain(tripM *model.TripModel) *entity.Trip {
	trip := &entity.Trip{
		ID:             tripM.ID,
		UserID:         tripM.UserID,
		Status:         entity.TripStatus(tripM.Status),
		StartTime:      tripM.StartTime,
		EndTime:        tripM.EndTime,
		Start:          entity.Coordinate{Latitude: tripM.StartLatitude, Longitude: tripM.StartLongitude},
		DistanceMeters: tripM.DistanceMeters,
		MaxSpeed:       tripM.MaxSpeed,
		AvgSpeed:       tripM.AvgSpeed,
		WaypointCount:  tripM.WaypointCount,
		Synced:         tripM.Synced,
		CreatedAt:      tripM.CreatedAt,
		UpdatedAt:      tripM.UpdatedAt,
	}
	if tripM.EndLatitude != nil && tripM.EndLongitude != nil {
		trip.End = &entity.Coordinate{Latitude: *tripM.EndLatitude, Longitude: *tripM.EndLongitude}
	}

	return trip
}

func fromWaypointDomain(waypoint *entity.TripWaypoint) *model.TripWaypointModel {
	return &model.TripWaypointModel{
		ID:         waypoint.ID,
		TripID:     waypoint.TripID,
		Sequence:   waypoint.Sequence,
		Latitude:   waypoint.Latitude,
		Longitude:  waypoint.Longitude,
		Speed:      waypoint.Speed,
		Accuracy:   waypoint.Accuracy,
		RecordedAt: waypoint.RecordedAt,
	}
}

func toWaypointDomain(waypointM *model.TripWaypointModel) *entity.TripWaypoint {
	return &entity.TripWaypoint{
		ID:         waypointM.ID,
		TripID:     waypointM.TripID,
		Sequence:   waypointM.Sequence,
		Latitude:   waypointM.Latitude,
		Longitude:  waypointM.Longitude,
		Speed:      waypointM.Speed,
		Accuracy:   waypointM.Accuracy,
		RecordedAt: waypointM.RecordedAt,
	}
}

func fromQueuedHeartbeatDomain(heartbeat *entity.QueuedHeartbeat) *model.HeartbeatQueueModel {
	return &model.HeartbeatQueueModel{
		ID:           heartbeat.ID,
		UserID:       heartbeat.UserID,
		BatteryLevel: heartbeat.BatteryLevel,
		IsCharging:   heartbeat.IsCharging,
		HeartbeatAt:  heartbeat.HeartbeatAt,
		Minimal:      heartbeat.Minimal,
		Attempts:     heartbeat.Attempts,
		CreatedAt:    heartbeat.CreatedAt,
	}
}

func toQueuedHeartbeatDomain(heartbeatM *model.HeartbeatQueueModel) *entity.QueuedHeartbeat {
	return &entity.QueuedHeartbeat{
		ID:           heartbeatM.ID,
		UserID:       heartbeatM.UserID,
		BatteryLevel: heartbeatM.BatteryLevel,
		IsCharging:   heartbeatM.IsCharging,
		HeartbeatAt:  heartbeatM.HeartbeatAt,
		Minimal:      heartbeatM.Minimal,
		Attempts:     heartbeatM.Attempts,
		CreatedAt:    heartbeatM.CreatedAt,
	}
}
