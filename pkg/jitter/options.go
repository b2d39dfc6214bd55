package jitter

import "time"

// Option configures a Buffer at construction time. Depth and sample rate
// are positional constructor arguments; anything else the caller may want
// to override goes through an Option instead of growing the constructor
// signature.
type Option func(*Buffer)

// WithClock overrides the Buffer's time source. Tests use this to supply
// a deterministic fake clock.
func WithClock(c Clock) Option {
	return func(b *Buffer) { b.clock = c }
}

// WithLogger attaches a structured logging sink for overflow and
// out-of-order trace lines.
func WithLogger(l Logger) Option {
	return func(b *Buffer) { b.logger = l }
}

// WithListener attaches an event listener for buffering/playout
// transitions and loss/overflow notifications.
func WithListener(l Listener) Option {
	return func(b *Buffer) { b.listener = l }
}

// WithHistoryWindow sets the retention window of the diagnostics ledger
// exposed via Buffer.RecentArrivals.
func WithHistoryWindow(window time.Duration) Option {
	return func(b *Buffer) { b.history = newArrivalLedger(window) }
}
