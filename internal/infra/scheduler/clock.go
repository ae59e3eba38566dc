// Package scheduler provides the wall clock and a manually advanced clock for tests.
package scheduler

import (
	"time"

	"tether/internal/domain/service"
)

type systemClock struct{}

// NewSystemClock returns a Clock backed by the time package
func NewSystemClock() service.Clock {
	return systemClock{}
}

// Now is always UTC so stored timestamps compare lexically
func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

func (systemClock) AfterFunc(d time.Duration, f func()) service.Task {
	return &systemTask{timer: time.AfterFunc(d, f)}
}

type systemTask struct {
	timer *time.Timer
}

func (t *systemTask) Cancel() bool {
	return t.timer.Stop()
}
