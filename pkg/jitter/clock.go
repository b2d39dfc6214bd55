package jitter

import "time"

// Clock is a monotonic millisecond-resolution clock. It is not required
// to track wall time, only to be non-decreasing across the process
// lifetime — Go's time.Time already carries a monotonic reading, so the
// default implementation needs no extra plumbing.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }
