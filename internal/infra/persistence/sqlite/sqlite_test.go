package sqlite

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"tether/internal/domain/entity"
	domainerrors "tether/internal/domain/errors"
	"tether/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var baseTime = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := Open(memoryPath, newDiscardLogger(), false)
	require.NoError(t, err)

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func newRecord(userID string, at time.Time) *entity.LocationRecord {
	accuracy := 5.0

	return &entity.LocationRecord{
		UserID:           userID,
		Latitude:         25.0330,
		Longitude:        121.5654,
		Accuracy:         &accuracy,
		BatteryLevel:     80,
		Motion:           entity.MotionStationary,
		LocationEnabled:  true,
		SampleTime:       at,
		ArrivalTimestamp: at,
		IsStationary:     true,
	}
}

func TestBuildDSN(t *testing.T) {
	assert.Equal(t, "file::memory:?_pragma=foreign_keys(ON)&_pragma=busy_timeout(5000)", buildDSN(""))
	assert.Equal(t, "file:/data/tether.db?_pragma=foreign_keys(ON)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", buildDSN("/data/tether.db"))
	assert.Equal(t, buildDSN("/data/tether.db"), buildDSN("file:/data/tether.db"))
}

func TestLocationRepository_SaveAndLatest(t *testing.T) {
	ctx := context.Background()
	repo := NewLocationRepository(newTestDB(t))

	_, err := repo.LatestRecord(ctx, "user-1")
	assert.ErrorIs(t, err, repository.ErrRecordNotFound)

	first := newRecord("user-1", baseTime)
	second := newRecord("user-1", baseTime.Add(time.Minute))
	second.Geofence = &entity.Geofence{
		Center:       entity.Coordinate{Latitude: 25.0330, Longitude: 121.5654},
		RadiusMeters: 10,
		EntryTime:    baseTime,
	}
	other := newRecord("user-2", baseTime.Add(time.Hour))

	for _, record := range []*entity.LocationRecord{first, second, other} {
		require.NoError(t, repo.SaveRecord(ctx, record))
		assert.NotZero(t, record.ID)
	}

	latest, err := repo.LatestRecord(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, second.ID, latest.ID)
	require.NotNil(t, latest.Geofence)
	assert.InDelta(t, 10.0, latest.Geofence.RadiusMeters, 1e-9)
	assert.WithinDuration(t, baseTime, latest.Geofence.EntryTime, time.Millisecond)
	require.NotNil(t, latest.Accuracy)
	assert.InDelta(t, 5.0, *latest.Accuracy, 1e-9)
	assert.Nil(t, latest.Speed)
	assert.Equal(t, entity.MotionStationary, latest.Motion)
}

func TestLocationRepository_UnsyncedLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewLocationRepository(newTestDB(t))

	var ids []int64
	for i := range 3 {
		record := newRecord("user-1", baseTime.Add(time.Duration(i)*time.Minute))
		require.NoError(t, repo.SaveRecord(ctx, record))
		ids = append(ids, record.ID)
	}

	count, err := repo.CountUnsynced(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	limited, err := repo.FindUnsynced(ctx, "user-1", 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, ids[0], limited[0].ID)

	require.NoError(t, repo.MarkSynced(ctx, ids[:2], baseTime.Add(time.Hour)))
	require.NoError(t, repo.MarkSynced(ctx, nil, baseTime))

	remaining, err := repo.FindUnsynced(ctx, "user-1", 0)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, ids[2], remaining[0].ID)

	latest, err := repo.LatestRecord(ctx, "user-1")
	require.NoError(t, err)
	assert.False(t, latest.Synced)

	require.NoError(t, repo.UpdateHeartbeat(ctx, ids[2], baseTime.Add(30*time.Minute)))
	latest, err = repo.LatestRecord(ctx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, latest.HeartbeatTimestamp)
	assert.WithinDuration(t, baseTime.Add(30*time.Minute), *latest.HeartbeatTimestamp, time.Millisecond)

	assert.ErrorIs(t, repo.UpdateHeartbeat(ctx, 9999, baseTime), repository.ErrRecordNotFound)
}

func TestLocationRepository_DeleteOlderThan(t *testing.T) {
	ctx := context.Background()
	repo := NewLocationRepository(newTestDB(t))

	old := newRecord("user-1", baseTime.Add(-30*24*time.Hour))
	fresh := newRecord("user-1", baseTime)
	require.NoError(t, repo.SaveRecord(ctx, old))
	require.NoError(t, repo.SaveRecord(ctx, fresh))

	deleted, err := repo.DeleteOlderThan(ctx, baseTime.Add(-20*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	remaining, err := repo.FindUnsynced(ctx, "user-1", 0)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, fresh.ID, remaining[0].ID)
}

func TestTripRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewTripRepository(newTestDB(t))

	_, err := repo.FindActiveTrip(ctx, "user-1")
	assert.ErrorIs(t, err, repository.ErrTripNotFound)

	trip := &entity.Trip{
		UserID:    "user-1",
		Status:    entity.TripStatusActive,
		StartTime: baseTime,
		Start:     entity.Coordinate{Latitude: 25.0, Longitude: 121.0},
	}
	require.NoError(t, repo.CreateTrip(ctx, trip))
	assert.NotEqual(t, uuid.Nil, trip.ID)

	active, err := repo.FindActiveTrip(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, trip.ID, active.ID)
	assert.Nil(t, active.End)

	for seq := 1; seq <= 3; seq++ {
		waypoint := &entity.TripWaypoint{
			TripID:     trip.ID,
			Sequence:   seq,
			Latitude:   25.0 + float64(seq)*0.001,
			Longitude:  121.0,
			RecordedAt: baseTime.Add(time.Duration(seq) * time.Minute),
		}
		require.NoError(t, repo.AppendWaypoint(ctx, waypoint))
	}

	err = repo.AppendWaypoint(ctx, &entity.TripWaypoint{TripID: trip.ID, Sequence: 2, RecordedAt: baseTime})
	assert.ErrorIs(t, err, repository.ErrDuplicateWaypoint)

	waypoints, err := repo.ListWaypoints(ctx, trip.ID)
	require.NoError(t, err)
	require.Len(t, waypoints, 3)
	for i, waypoint := range waypoints {
		assert.Equal(t, i+1, waypoint.Sequence)
	}

	end := baseTime.Add(10 * time.Minute)
	trip.Status = entity.TripStatusCompleted
	trip.EndTime = &end
	trip.End = &entity.Coordinate{Latitude: 25.003, Longitude: 121.0}
	trip.DistanceMeters = 333.6
	trip.WaypointCount = 3
	require.NoError(t, repo.UpdateTrip(ctx, trip))

	_, err = repo.FindActiveTrip(ctx, "user-1")
	assert.ErrorIs(t, err, repository.ErrTripNotFound)

	trips, err := repo.ListTrips(ctx, "user-1", 10)
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, entity.TripStatusCompleted, trips[0].Status)
	require.NotNil(t, trips[0].End)
	assert.InDelta(t, 333.6, trips[0].DistanceMeters, 1e-9)
	assert.Equal(t, 3, trips[0].WaypointCount)

	missing := &entity.Trip{ID: uuid.New(), UserID: "user-1", Status: entity.TripStatusActive, StartTime: baseTime}
	assert.ErrorIs(t, repo.UpdateTrip(ctx, missing), repository.ErrTripNotFound)
}

func TestTripRepository_DeleteCompletedBefore(t *testing.T) {
	ctx := context.Background()
	repo := NewTripRepository(newTestDB(t))

	oldEnd := baseTime.Add(-30 * 24 * time.Hour)
	oldTrip := &entity.Trip{UserID: "user-1", Status: entity.TripStatusCompleted, StartTime: oldEnd.Add(-time.Hour), EndTime: &oldEnd}
	activeTrip := &entity.Trip{UserID: "user-1", Status: entity.TripStatusActive, StartTime: oldEnd}
	require.NoError(t, repo.CreateTrip(ctx, oldTrip))
	require.NoError(t, repo.CreateTrip(ctx, activeTrip))
	require.NoError(t, repo.AppendWaypoint(ctx, &entity.TripWaypoint{TripID: oldTrip.ID, Sequence: 1, RecordedAt: oldEnd}))

	deleted, err := repo.DeleteCompletedBefore(ctx, baseTime.Add(-20*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	waypoints, err := repo.ListWaypoints(ctx, oldTrip.ID)
	require.NoError(t, err)
	assert.Empty(t, waypoints)

	active, err := repo.FindActiveTrip(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, activeTrip.ID, active.ID)

	deleted, err = repo.DeleteCompletedBefore(ctx, baseTime)
	require.NoError(t, err)
	assert.Zero(t, deleted)
}

func TestSettingsRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewSettingsRepository(newTestDB(t))

	_, err := repo.Get(ctx, repository.SettingLastUserID)
	assert.ErrorIs(t, err, repository.ErrSettingNotFound)

	require.NoError(t, repo.Set(ctx, repository.SettingLastUserID, "user-1"))
	require.NoError(t, repo.Set(ctx, repository.SettingLastUserID, "user-2"))

	value, err := repo.Get(ctx, repository.SettingLastUserID)
	require.NoError(t, err)
	assert.Equal(t, "user-2", value)

	count, err := repo.IncrementCounter(ctx, repository.SettingPendingSyncCount, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = repo.IncrementCounter(ctx, repository.SettingPendingSyncCount, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	require.NoError(t, repo.Set(ctx, "garbage", "not-a-number"))
	count, err = repo.IncrementCounter(ctx, "garbage", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	require.NoError(t, repo.Delete(ctx, repository.SettingLastUserID))
	_, err = repo.Get(ctx, repository.SettingLastUserID)
	assert.ErrorIs(t, err, repository.ErrSettingNotFound)
}

func TestHeartbeatQueueRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewHeartbeatQueueRepository(newTestDB(t))

	later := &entity.QueuedHeartbeat{UserID: "user-1", BatteryLevel: 50, HeartbeatAt: baseTime.Add(time.Hour), Minimal: true}
	earlier := &entity.QueuedHeartbeat{UserID: "user-1", BatteryLevel: 60, HeartbeatAt: baseTime}
	other := &entity.QueuedHeartbeat{UserID: "user-2", HeartbeatAt: baseTime}
	for _, heartbeat := range []*entity.QueuedHeartbeat{later, earlier, other} {
		require.NoError(t, repo.Enqueue(ctx, heartbeat))
	}

	pending, err := repo.ListPending(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, earlier.ID, pending[0].ID)
	assert.True(t, pending[1].Minimal)

	require.NoError(t, repo.Delete(ctx, []int64{earlier.ID, later.ID}))
	pending, err = repo.ListPending(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	txManager := NewTransactionManager(db)
	errBoom := errors.New("boom")

	err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewLocationRepository().SaveRecord(ctx, newRecord("user-1", baseTime)); err != nil {
			return err
		}

		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	_, err = NewLocationRepository(db).LatestRecord(ctx, "user-1")
	assert.ErrorIs(t, err, repository.ErrRecordNotFound)

	err = txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewLocationRepository().SaveRecord(ctx, newRecord("user-1", baseTime)); err != nil {
			return err
		}

		return factory.NewTripRepository().CreateTrip(ctx, &entity.Trip{UserID: "user-1", Status: entity.TripStatusActive, StartTime: baseTime})
	})
	require.NoError(t, err)

	_, err = NewTripRepository(db).FindActiveTrip(ctx, "user-1")
	assert.NoError(t, err)
}

func TestLocalStoreErrorsAreClassified(t *testing.T) {
	db := newTestDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = NewLocationRepository(db).CountUnsynced(context.Background(), "user-1")
	require.Error(t, err)
	assert.Equal(t, domainerrors.KindLocalStore, domainerrors.KindOf(err))
}
