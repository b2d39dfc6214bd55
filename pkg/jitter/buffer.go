// Package jitter implements a real-time jitter buffer for RTP media
// streams: it absorbs arrival-time variance, reorders out-of-sequence
// packets, detects loss, and maintains RFC 3550 §6.4.1 statistics,
// between a network-facing producer calling Push and a playout consumer
// calling Pop.
package jitter

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

const defaultSampleRateHz int64 = 8000

// Buffer is the ordered buffer, state machine, and statistics block that
// sits between a network-facing producer and a playout consumer. A single
// mutex serializes all public operations; no method re-enters another
// while holding it, so a recursive lock is unnecessary.
type Buffer struct {
	mu sync.Mutex

	queue *carrierQueue

	nominalDepthMs   int64
	maxBufferDepthMs int64
	depthMs          int64
	sampleRateHz     int64

	firstBufSeq uint16
	lastBufSeq  uint16
	lastPopSeq  uint16

	buffering           bool
	bufferingStartedAt  time.Time
	bufferingStartedSet bool

	stats     Stats
	estimator jitterEstimator

	clock    Clock
	logger   Logger
	listener Listener
	history  *arrivalLedger
}

// NewBuffer constructs a Buffer in the Buffering state with the given
// nominal (warmup/playout) depth and sample rate. sampleRateHz defaults
// to 8000 when zero.
func NewBuffer(nominalDepthMs, sampleRateHz int64, opts ...Option) *Buffer {
	b := &Buffer{
		clock:    systemClock{},
		logger:   NewLogger(zerolog.Nop()),
		listener: NopListener{},
		history:  newArrivalLedger(defaultHistoryWindow),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.Init(nominalDepthMs, sampleRateHz)
	return b
}

// Init (re-)configures the depth/sample rate and idempotently returns the
// buffer to its cleared Buffering state.
func (b *Buffer) Init(nominalDepthMs, sampleRateHz int64) {
	b.mu.Lock()
	if sampleRateHz <= 0 {
		sampleRateHz = defaultSampleRateHz
	}
	b.sampleRateHz = sampleRateHz
	b.nominalDepthMs = nominalDepthMs
	b.maxBufferDepthMs = 2 * nominalDepthMs
	b.mu.Unlock()

	b.Reset()
}

// Reset clears the queue and statistics and returns to Buffering.
func (b *Buffer) Reset() Result {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.queue = &carrierQueue{}
	b.depthMs = 0
	b.firstBufSeq = 0
	b.lastBufSeq = 0
	b.lastPopSeq = 0
	b.buffering = true
	b.bufferingStartedSet = false
	b.stats = Stats{}
	b.estimator.reset(b.sampleRateHz)
	return Success
}

// SetDepth reconfigures the nominal and maximum depth. maxMs is raised to
// 2*nominalMs when it is smaller than nominalMs.
func (b *Buffer) SetDepth(nominalMs, maxMs int64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	maxMs = lo.Ternary(maxMs < nominalMs, 2*nominalMs, maxMs)
	b.nominalDepthMs = nominalMs
	b.maxBufferDepthMs = maxMs
}

// GetDepth returns the number of carriers currently queued.
func (b *Buffer) GetDepth() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.queue.Len()
}

// GetDepthMs returns the current queued depth in milliseconds.
func (b *Buffer) GetDepthMs() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.depthMs
}

// GetNominalDepth returns the configured nominal depth in milliseconds.
func (b *Buffer) GetNominalDepth() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.nominalDepthMs
}

// Buffering reports whether Pop currently refuses delivery.
func (b *Buffer) Buffering() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buffering
}

// EOTDetected zeroes the sequence trackers on a caller-asserted
// end-of-transmission signal, without touching the queue or statistics.
func (b *Buffer) EOTDetected() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.firstBufSeq = 0
	b.lastBufSeq = 0
	b.lastPopSeq = 0
}

// Push inserts carrier into the ordered buffer: it evicts the head on
// overflow, updates the jitter estimate, then classifies the carrier as an
// append, a too-old rejection, a precede-head insertion, or a middle
// insertion by sequence number. Sequence comparisons use raw unsigned
// 16-bit arithmetic with explicit wraparound clauses rather than serial-
// number (RFC 1982) comparisons, and that raw-arithmetic behavior at
// sequence boundaries other than the explicit 0xFFFF→0x0000 clause below
// is preserved as-is rather than generalized.
func (b *Buffer) Push(pkt *Packet) Result {
	if pkt == nil || !pkt.decode() {
		return BadPacket
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.clock.Now()
	result := Success

	if b.depthMs > b.maxBufferDepthMs {
		if evicted := b.queue.PopFront(); evicted != nil {
			b.depthMs -= evicted.pkt.PayloadMs
			b.stats.overflowCount++
			result = BufferOverflow
			b.logger.overflow(evicted.seq, b.depthMs, b.maxBufferDepthMs)
			b.listener.OnOverflow(evicted.seq, b.depthMs, b.maxBufferDepthMs)
			if front := b.queue.Front(); front != nil {
				b.firstBufSeq = front.seq
			}
		}
	}

	if b.buffering && !b.bufferingStartedSet {
		b.bufferingStartedAt = now
		b.bufferingStartedSet = true
	}

	b.estimator.update(pkt.ts, now)
	b.history.record(now, pkt.seq)

	s := pkt.seq
	wasEmpty := b.queue.Len() == 0

	switch {
	// first_buf_seq is only meaningful once the queue holds something, so
	// an empty queue always takes the append branch regardless of s.
	case s >= b.lastBufSeq || (s == 0 && b.lastBufSeq == 0xFFFF) || wasEmpty:
		b.queue.PushBack(pkt, s)
		b.lastBufSeq = s
		b.depthMs += pkt.PayloadMs
		if wasEmpty {
			b.firstBufSeq = s
			b.lastPopSeq = s
		}

	case s < b.firstBufSeq-1:
		result = BadPacket
		b.stats.outOfOrderCount++

	case s == b.firstBufSeq-1:
		b.queue.PushFront(pkt, s)
		b.firstBufSeq = s
		b.depthMs += pkt.PayloadMs
		b.stats.outOfOrderCount++
		b.logger.outOfOrder(s, b.firstBufSeq)
		b.listener.OnOutOfOrder(s)

	default:
		b.queue.InsertBeforeFirstGreater(pkt, s)
		b.depthMs += pkt.PayloadMs
		b.stats.outOfOrderCount++
		b.logger.outOfOrder(s, b.firstBufSeq)
		b.listener.OnOutOfOrder(s)
	}

	return result
}

// Pop delivers the next carrier in playout order, or reports buffering or
// loss. It first updates the buffering↔playout gate, then classifies the
// head against last_pop_seq/first_buf_seq as a normal delivery, a
// dynamic-payload redundancy recovery (one packet lost but the head
// carries a redundant copy of it), or a gap to report as dropped.
func (b *Buffer) Pop() (Result, *Packet) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.clock.Now()

	if b.queue.Len() == 0 {
		b.stats.emptyCount++
		if !b.buffering {
			b.buffering = true
			b.listener.OnBufferingStarted()
		}
	} else if b.buffering {
		elapsedMs := now.Sub(b.bufferingStartedAt).Milliseconds()
		if elapsedMs >= b.nominalDepthMs || b.depthMs >= b.nominalDepthMs {
			b.buffering = false
			b.bufferingStartedSet = false
			b.listener.OnPlayoutStarted()
		}
	}

	if b.buffering || b.queue.Len() == 0 {
		return Buffering, nil
	}

	head := b.queue.Front()
	sH := head.seq

	normalDeliver := b.lastPopSeq == b.firstBufSeq ||
		b.lastPopSeq == b.firstBufSeq-1 ||
		(b.lastPopSeq == 0xFFFF && b.firstBufSeq == 0)
	redundancyDeliver := !normalDeliver &&
		head.pkt.PayloadType == dynamicPayloadType &&
		b.lastPopSeq == b.firstBufSeq-2

	if !normalDeliver && !redundancyDeliver {
		b.lastPopSeq++
		b.listener.OnPacketLoss(b.lastPopSeq)
		return DroppedPacket, nil
	}

	var delivered *Packet
	if redundancyDeliver {
		head.pkt.UseRedundantPayload = true
		delivered = head.pkt
	} else {
		head.pkt.UseRedundantPayload = false
		b.queue.PopFront()
		b.depthMs -= head.pkt.PayloadMs
		delivered = head.pkt
	}

	b.lastPopSeq = sH
	if b.queue.Len() == 0 {
		b.firstBufSeq = b.lastPopSeq
	} else {
		b.firstBufSeq = b.queue.Front().seq
	}

	return Success, delivered
}
