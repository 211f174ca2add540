package booth

import "time"

// Clock schedules the booth's waits.
type Clock interface {
	After(d time.Duration) <-chan time.Time
	Now() time.Time
}

type systemClock struct{}

func (systemClock) After(d time.Duration) <-chan time.Time { return time.After(d) }
func (systemClock) Now() time.Time                         { return time.Now() }

// SystemClock returns a clock backed by real timers.
func SystemClock() Clock { return systemClock{} }
