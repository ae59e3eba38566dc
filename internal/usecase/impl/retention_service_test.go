package impl

import (
	"context"
	"testing"
	"time"

	"tether/internal/domain/entity"
	"tether/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day = 24 * time.Hour

func seedTrip(t *testing.T, env *testEnv, start time.Time, end *time.Time) *entity.Trip {
	t.Helper()

	trip := &entity.Trip{
		ID:        uuid.New(),
		UserID:    testUserID,
		Status:    entity.TripStatusActive,
		StartTime: start,
		Start:     entity.Coordinate{Latitude: 25.0330, Longitude: 121.5654},
		CreatedAt: start,
		UpdatedAt: start,
	}
	if end != nil {
		trip.Status = entity.TripStatusCompleted
		trip.EndTime = end
		trip.End = &entity.Coordinate{Latitude: 25.0340, Longitude: 121.5654}
	}
	require.NoError(t, env.tripRepo.CreateTrip(context.Background(), trip))
	require.NoError(t, env.tripRepo.AppendWaypoint(context.Background(), &entity.TripWaypoint{
		TripID:     trip.ID,
		Sequence:   0,
		Latitude:   trip.Start.Latitude,
		Longitude:  trip.Start.Longitude,
		RecordedAt: start,
	}))

	return trip
}

func TestRetentionService_RunOnceDeletesExpiredHistory(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	old := baseTime.Add(-30 * day)
	require.NoError(t, env.locationRepo.SaveRecord(ctx, entity.NewLocationRecord(newSample(old), old, nil)))
	require.NoError(t, env.locationRepo.SaveRecord(ctx, entity.NewLocationRecord(newSample(baseTime), baseTime, nil)))

	oldEnd := old.Add(time.Hour)
	expired := seedTrip(t, env, old, &oldEnd)
	stillOpen := seedTrip(t, env, old, nil)
	recentEnd := baseTime.Add(-time.Hour)
	recent := seedTrip(t, env, baseTime.Add(-2*time.Hour), &recentEnd)

	env.cache.Set("connections:"+testUserID, []string{"friend-1"}, time.Minute)
	env.cache.Set("map-markers:"+testUserID, []string{"friend-1"}, time.Hour)
	env.clock.Advance(2 * time.Minute)

	result, err := env.retention.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.LocationRecords)
	assert.Equal(t, int64(1), result.Trips)
	assert.Equal(t, 1, result.CacheEntries)

	latest, err := env.locationRepo.LatestRecord(ctx, testUserID)
	require.NoError(t, err)
	assert.True(t, latest.SampleTime.Equal(baseTime))

	trips, err := env.tripRepo.ListTrips(ctx, testUserID, 10)
	require.NoError(t, err)
	ids := make([]uuid.UUID, 0, len(trips))
	for _, trip := range trips {
		ids = append(ids, trip.ID)
	}
	assert.ElementsMatch(t, []uuid.UUID{stillOpen.ID, recent.ID}, ids, "active trips survive regardless of age")

	waypoints, err := env.tripRepo.ListWaypoints(ctx, expired.ID)
	require.NoError(t, err)
	assert.Empty(t, waypoints)

	_, ok := env.cache.Get("map-markers:" + testUserID)
	assert.True(t, ok)
}

func TestRetentionService_RunsOnSchedule(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// Inside the window at start, outside it one cleanup interval later
	borderline := baseTime.Add(-20*day + time.Hour)
	require.NoError(t, env.locationRepo.SaveRecord(ctx, entity.NewLocationRecord(newSample(borderline), borderline, nil)))

	env.retention.Start()
	env.retention.Start()
	assert.Equal(t, 1, env.clock.Pending())

	env.clock.Advance(23 * time.Hour)
	_, err := env.locationRepo.LatestRecord(ctx, testUserID)
	require.NoError(t, err)

	env.clock.Advance(time.Hour)
	_, err = env.locationRepo.LatestRecord(ctx, testUserID)
	assert.ErrorIs(t, err, repository.ErrRecordNotFound)
	assert.Equal(t, 1, env.clock.Pending(), "the next pass is scheduled")

	env.retention.Stop()
	assert.Zero(t, env.clock.Pending())
}
