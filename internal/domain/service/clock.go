package service

import "time"

// Task is a scheduled callback that can be cancelled.
type Task interface {
	// Cancel prevents the callback from running; it reports whether the task was still pending.
	Cancel() bool
}

// Clock abstracts time so timers can be driven deterministically.
type Clock interface {
	Now() time.Time
	// AfterFunc runs f once d has elapsed; callers must not assume which goroutine runs it.
	AfterFunc(d time.Duration, f func()) Task
}
