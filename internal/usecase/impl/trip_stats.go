package impl

import (
	"time"

	"tether/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// distanceMeters is the great-circle distance on a spherical earth
func distanceMeters(a, b entity.Coordinate) float64 {
	return geo.DistanceHaversine(toPoint(a), toPoint(b))
}

func toPoint(c entity.Coordinate) orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// newTrip opens a trip at the sample that left the geofence
func newTrip(sample *entity.DeviceStateSample) (*entity.Trip, *entity.TripWaypoint) {
	trip := &entity.Trip{
		ID:        uuid.New(),
		UserID:    sample.UserID,
		Status:    entity.TripStatusActive,
		StartTime: sample.Timestamp,
		Start:     sample.Coordinate(),
	}
	first := waypointFromSample(trip.ID, 1, sample)
	trip.WaypointCount = 1
	if sample.Speed != nil {
		trip.MaxSpeed = *sample.Speed
	}

	return trip, first
}

func waypointFromSample(tripID uuid.UUID, sequence int, sample *entity.DeviceStateSample) *entity.TripWaypoint {
	return &entity.TripWaypoint{
		TripID:     tripID,
		Sequence:   sequence,
		Latitude:   sample.Latitude,
		Longitude:  sample.Longitude,
		Speed:      sample.Speed,
		Accuracy:   sample.Accuracy,
		RecordedAt: sample.Timestamp,
	}
}

// appendWaypoint extends the trip with next and recomputes its totals.
// The max speed uses the reported speed, or the segment speed when none was reported.
func appendWaypoint(trip *entity.Trip, prev, next *entity.TripWaypoint) {
	segment := 0.0
	segmentSpeed := 0.0
	if prev != nil {
		segment = distanceMeters(prev.Coordinate(), next.Coordinate())
		if dt := next.RecordedAt.Sub(prev.RecordedAt).Seconds(); dt > 0 {
			segmentSpeed = segment / dt
		}
	}

	trip.DistanceMeters += segment
	trip.WaypointCount++

	speed := segmentSpeed
	if next.Speed != nil {
		speed = *next.Speed
	}
	if speed > trip.MaxSpeed {
		trip.MaxSpeed = speed
	}

	trip.AvgSpeed = averageSpeed(trip.DistanceMeters, trip.StartTime, next.RecordedAt)
}

// closeTrip completes the trip at the given point and time
func closeTrip(trip *entity.Trip, end entity.Coordinate, at time.Time) {
	trip.Status = entity.TripStatusCompleted
	endTime := at
	trip.EndTime = &endTime
	trip.End = &end
	trip.AvgSpeed = averageSpeed(trip.DistanceMeters, trip.StartTime, at)
}

func averageSpeed(distance float64, start, end time.Time) float64 {
	elapsed := end.Sub(start).Seconds()
	if elapsed <= 0 {
		return 0
	}

	return distance / elapsed
}
