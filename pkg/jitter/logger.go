package jitter

import "github.com/rs/zerolog"

// Logger emits trace lines for overflow and out-of-order arrival via a
// caller-supplied zerolog sink. Logging is not part of correctness; an
// unset Logger is a no-op.
type Logger struct {
	log zerolog.Logger
}

// NewLogger wraps an existing zerolog.Logger for use as a Buffer's
// logging sink.
func NewLogger(log zerolog.Logger) Logger {
	return Logger{log: log}
}

func (l Logger) overflow(seq uint16, depthMs, maxDepthMs int64) {
	l.log.Trace().
		Uint16("seq", seq).
		Int64("depth_ms", depthMs).
		Int64("max_depth_ms", maxDepthMs).
		Msg("jitter buffer overflow")
}

func (l Logger) outOfOrder(seq, firstSeq uint16) {
	l.log.Trace().
		Uint16("seq", seq).
		Uint16("first_seq", firstSeq).
		Msg("out of order arrival")
}
