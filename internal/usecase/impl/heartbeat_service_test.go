package impl

import (
	"context"
	"testing"
	"time"

	"tether/internal/domain/entity"
	domainerrors "tether/internal/domain/errors"
	"tether/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedRecord(t *testing.T, env *testEnv, battery int) *entity.LocationRecord {
	t.Helper()

	record := entity.NewLocationRecord(newSample(baseTime, withBattery(battery, false)), baseTime, nil)
	require.NoError(t, env.locationRepo.SaveRecord(context.Background(), record))

	return record
}

func TestHeartbeatService_BeatsOnInterval(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	seedRecord(t, env, 64)

	env.heartbeat.Start(testUserID)

	env.clock.Advance(29 * time.Minute)
	assert.Empty(t, env.remote.Writes())

	env.clock.Advance(time.Minute)
	beatAt := baseTime.Add(30 * time.Minute)

	writes := env.remote.Writes()
	require.Len(t, writes, 1)
	assert.Equal(t, service.WriteModeHeartbeatOnly, writes[0].Mode)
	assert.Equal(t, beatAt, writes[0].Fields[fieldHeartbeatTimestamp])
	assert.Equal(t, map[string]any{"level": 64, "isCharging": false}, writes[0].Fields[fieldBattery])

	latest, err := env.locationRepo.LatestRecord(ctx, testUserID)
	require.NoError(t, err)
	require.NotNil(t, latest.HeartbeatTimestamp)
	assert.True(t, latest.HeartbeatTimestamp.Equal(beatAt))

	status := env.heartbeat.Status()
	assert.True(t, status.Running)
	assert.Zero(t, status.ConsecutiveFailures)
	require.NotNil(t, status.LastBeat)
	assert.Equal(t, beatAt, *status.LastBeat)
	require.NotNil(t, status.NextDue)
	assert.Equal(t, beatAt.Add(30*time.Minute), *status.NextDue)
}

func TestHeartbeatService_NoBeatAfterStop(t *testing.T) {
	env := newTestEnv(t)
	seedRecord(t, env, 64)

	env.heartbeat.Start(testUserID)
	env.clock.Advance(10 * time.Minute)
	env.heartbeat.Stop()

	env.clock.Advance(2 * time.Hour)

	assert.Empty(t, env.remote.Writes())
	assert.Zero(t, env.clock.Pending())
	assert.False(t, env.heartbeat.Status().Running)
	assert.Nil(t, env.heartbeat.Status().NextDue)
}

func TestHeartbeatService_ResetPostponesBeat(t *testing.T) {
	env := newTestEnv(t)
	seedRecord(t, env, 64)

	env.heartbeat.Start(testUserID)
	env.clock.Advance(20 * time.Minute)
	env.heartbeat.Reset()

	env.clock.Advance(10 * time.Minute)
	assert.Empty(t, env.remote.Writes(), "the original deadline was cancelled")

	env.clock.Advance(20 * time.Minute)
	assert.Len(t, env.remote.Writes(), 1)
	assert.Equal(t, 1, env.clock.Pending())
}

func TestHeartbeatService_RetriesThenFallsBackAndQueues(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	seedRecord(t, env, 64)

	env.heartbeat.Start(testUserID)
	env.remote.SetOffline(true)

	env.clock.Advance(30 * time.Minute)
	status := env.heartbeat.Status()
	assert.Equal(t, 1, status.ConsecutiveFailures)
	assert.False(t, status.FallbackMode)
	require.NotNil(t, status.NextDue)
	assert.Equal(t, baseTime.Add(30*time.Minute+30*time.Second), *status.NextDue, "first retry after the base delay")

	env.clock.Advance(30 * time.Second)
	status = env.heartbeat.Status()
	assert.Equal(t, 2, status.ConsecutiveFailures)
	require.NotNil(t, status.NextDue)
	assert.Equal(t, baseTime.Add(31*time.Minute+30*time.Second), *status.NextDue, "retry delay doubles")

	env.clock.Advance(time.Minute)
	status = env.heartbeat.Status()
	assert.Equal(t, 3, status.ConsecutiveFailures)
	assert.True(t, status.FallbackMode)
	assert.Equal(t, time.Hour, status.Interval)
	require.NotNil(t, status.NextDue)
	assert.Equal(t, baseTime.Add(91*time.Minute+30*time.Second), *status.NextDue)

	queued, err := env.queueRepo.ListPending(ctx, testUserID)
	require.NoError(t, err)
	require.Len(t, queued, 1)
	assert.False(t, queued[0].Minimal)
	assert.Equal(t, 64, queued[0].BatteryLevel)
	assert.Empty(t, env.remote.Writes())

	env.remote.SetOffline(false)
	require.NoError(t, env.heartbeat.FlushQueued(ctx, testUserID))

	writes := env.remote.Writes()
	require.Len(t, writes, 1)
	assert.Equal(t, service.WriteModeHeartbeatOnly, writes[0].Mode)
	assert.Equal(t, queued[0].HeartbeatAt, writes[0].Fields[fieldHeartbeatTimestamp])

	queued, err = env.queueRepo.ListPending(ctx, testUserID)
	require.NoError(t, err)
	assert.Empty(t, queued)

	env.clock.Advance(time.Hour)
	status = env.heartbeat.Status()
	assert.False(t, status.FallbackMode, "a successful beat leaves fallback mode")
	assert.Zero(t, status.ConsecutiveFailures)
	assert.Equal(t, 30*time.Minute, status.Interval)
	assert.Len(t, env.remote.Writes(), 2)
}

func TestHeartbeatService_MinimalBeatWithoutRecord(t *testing.T) {
	env := newTestEnv(t)

	env.heartbeat.Start(testUserID)
	env.clock.Advance(30 * time.Minute)

	writes := env.remote.Writes()
	require.Len(t, writes, 1)
	assert.Equal(t, map[string]any{fieldHeartbeatTimestamp: baseTime.Add(30 * time.Minute)}, writes[0].Fields)
}

func TestHeartbeatService_ForceHeartbeat(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	seedRecord(t, env, 64)

	err := env.heartbeat.ForceHeartbeat(ctx)
	require.Error(t, err)
	assert.Equal(t, domainerrors.KindInvariant, domainerrors.KindOf(err))

	env.heartbeat.Start(testUserID)
	env.clock.Advance(10 * time.Minute)
	require.NoError(t, env.heartbeat.ForceHeartbeat(ctx))

	assert.Len(t, env.remote.Writes(), 1)
	status := env.heartbeat.Status()
	require.NotNil(t, status.NextDue)
	assert.Equal(t, baseTime.Add(40*time.Minute), *status.NextDue, "a forced beat restarts the interval")
}

func TestHeartbeatService_FlushQueuedWithEmptyQueue(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, env.heartbeat.FlushQueued(context.Background(), testUserID))
	assert.Empty(t, env.remote.Writes())
}
