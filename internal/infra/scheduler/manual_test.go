package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManualClock_AdvanceFiresDueTasksInOrder(t *testing.T) {
	start := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	clock := NewManualClock(start)

	var fired []string
	clock.AfterFunc(2*time.Minute, func() { fired = append(fired, "b") })
	clock.AfterFunc(time.Minute, func() { fired = append(fired, "a") })
	clock.AfterFunc(10*time.Minute, func() { fired = append(fired, "late") })

	clock.Advance(5 * time.Minute)

	assert.Equal(t, []string{"a", "b"}, fired)
	assert.Equal(t, start.Add(5*time.Minute), clock.Now())
	assert.Equal(t, 1, clock.Pending())
}

func TestManualClock_CancelPreventsFiring(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))

	fired := false
	task := clock.AfterFunc(time.Second, func() { fired = true })

	require.True(t, task.Cancel())
	assert.False(t, task.Cancel())

	clock.Advance(time.Minute)
	assert.False(t, fired)
	assert.Zero(t, clock.Pending())
}

func TestManualClock_TasksScheduledWhileFiringRunWhenDue(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))

	count := 0
	var tick func()
	tick = func() {
		count++
		clock.AfterFunc(time.Minute, tick)
	}
	clock.AfterFunc(time.Minute, tick)

	clock.Advance(3 * time.Minute)

	assert.Equal(t, 3, count)
	due, ok := clock.NextDue()
	require.True(t, ok)
	assert.Equal(t, time.Unix(0, 0).Add(4*time.Minute), due)
}
