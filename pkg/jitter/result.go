package jitter

// Result is the closed outcome taxonomy for Push and Pop. The set is small
// and fixed enough that plain values, not error wrapping, are the
// idiomatic fit.
type Result int

const (
	// Success indicates a normal push, or a pop that delivered a packet.
	Success Result = iota
	// Buffering indicates a pop was refused: warmup is not complete, or
	// the queue is empty (see BufferEmpty).
	Buffering
	// BadPacket indicates a null/undecodable packet on push, or a push
	// whose sequence number is too old to place in the queue.
	BadPacket
	// BufferOverflow indicates depth_ms exceeded max_buffer_depth_ms and
	// the head carrier was evicted; the push that triggered it still
	// completes.
	BufferOverflow
	// DroppedPacket indicates a pop detected a gap between last_pop_seq
	// and first_buf_seq; the consumer should conceal and retry.
	DroppedPacket
	// BufferEmpty is reserved by the result taxonomy but never returned;
	// Pop returns Buffering for an empty queue instead.
	BufferEmpty
)

func (r Result) String() string {
	switch r {
	case Success:
		return "success"
	case Buffering:
		return "buffering"
	case BadPacket:
		return "bad_packet"
	case BufferOverflow:
		return "buffer_overflow"
	case DroppedPacket:
		return "dropped_packet"
	case BufferEmpty:
		return "buffer_empty"
	default:
		return "unknown"
	}
}
