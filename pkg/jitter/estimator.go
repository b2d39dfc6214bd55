package jitter

import (
	"time"

	"github.com/samber/lo"
)

// jitterEstimator is RFC 3550 Appendix A.8's interarrival jitter running
// estimate, driven once per Push of a decodable packet, including one
// then rejected as too old. It is never reset across
// packet losses, only by init/reset.
//
// Deviation from RFC 3550: prev_arrival advances to the packet's own
// timestamp rather than to the synthesized arrival value.
type jitterEstimator struct {
	tsUnitsPerMs float64

	prevArrival int64
	prevTransit int64
	prevRxSet   bool
	prevRx      time.Time

	jitter    float64
	maxJitter float64
}

func (e *jitterEstimator) reset(sampleRateHz int64) {
	e.tsUnitsPerMs = float64(sampleRateHz) / 1000.0
	e.prevArrival = 0
	e.prevTransit = 0
	e.prevRxSet = false
	e.jitter = 0
	e.maxJitter = 0
}

func (e *jitterEstimator) update(ts uint32, now time.Time) {
	if !e.prevRxSet {
		e.prevRx = now
		e.prevRxSet = true
	}

	interarrivalMs := now.Sub(e.prevRx).Milliseconds()

	var arrival int64
	if e.prevArrival == 0 {
		arrival = int64(ts)
	} else {
		arrival = e.prevArrival + int64(float64(interarrivalMs)*e.tsUnitsPerMs)
	}

	transit := arrival - int64(ts)
	d := transit - e.prevTransit
	if d < 0 {
		d = -d
	}

	e.jitter += (float64(d) - e.jitter) / 16
	e.maxJitter = lo.Max([]float64{e.maxJitter, e.jitter})

	e.prevTransit = transit
	e.prevArrival = int64(ts)
	e.prevRx = now
}
