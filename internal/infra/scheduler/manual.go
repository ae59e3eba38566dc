package scheduler

import (
	"sort"
	"sync"
	"time"

	"tether/internal/domain/service"
)

// ManualClock is a Clock whose time only moves when Advance is called.
// Due callbacks run synchronously on the goroutine calling Advance, in due order.
type ManualClock struct {
	mu    sync.Mutex
	now   time.Time
	seq   uint64
	tasks []*manualTask
}

type manualTask struct {
	clock *ManualClock
	at    time.Time
	seq   uint64
	f     func()
	done  bool
}

// NewManualClock creates a clock frozen at start
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *ManualClock) AfterFunc(d time.Duration, f func()) service.Task {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	task := &manualTask{clock: c, at: c.now.Add(d), seq: c.seq, f: f}
	c.tasks = append(c.tasks, task)

	return task
}

// Advance moves the clock forward by d, firing every task that becomes due
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)
	c.mu.Unlock()

	for {
		c.mu.Lock()
		task := c.nextDueLocked(target)
		if task == nil {
			c.now = target
			c.mu.Unlock()

			return
		}
		c.now = task.at
		task.done = true
		c.removeLocked(task)
		c.mu.Unlock()

		task.f()
	}
}

// Pending returns the number of scheduled tasks that have neither fired nor been cancelled
func (c *ManualClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.tasks)
}

// NextDue returns the due time of the earliest pending task
func (c *ManualClock) NextDue() (time.Time, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.tasks) == 0 {
		return time.Time{}, false
	}
	c.sortLocked()

	return c.tasks[0].at, true
}

func (c *ManualClock) nextDueLocked(target time.Time) *manualTask {
	if len(c.tasks) == 0 {
		return nil
	}
	c.sortLocked()
	if c.tasks[0].at.After(target) {
		return nil
	}

	return c.tasks[0]
}

func (c *ManualClock) sortLocked() {
	sort.Slice(c.tasks, func(i, j int) bool {
		if c.tasks[i].at.Equal(c.tasks[j].at) {
			return c.tasks[i].seq < c.tasks[j].seq
		}

		return c.tasks[i].at.Before(c.tasks[j].at)
	})
}

func (c *ManualClock) removeLocked(task *manualTask) {
	for i, t := range c.tasks {
		if t == task {
			c.tasks = append(c.tasks[:i], c.tasks[i+1:]...)

			return
		}
	}
}

func (t *manualTask) Cancel() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()

	if t.done {
		return false
	}
	t.done = true
	t.clock.removeLocked(t)

	return true
}
