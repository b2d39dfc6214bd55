package jitter

import (
	"testing"
	"time"

	"github.com/huandu/go-assert"
)

func Test_jitterEstimator_zeroAfterFirstPacket(t *testing.T) {
	var e jitterEstimator
	e.reset(testSampleRateHz)

	e.update(160000, time.Unix(0, 0))
	assert.Equal(t, e.jitter, float64(0))
	assert.Equal(t, e.maxJitter, float64(0))
}

func Test_jitterEstimator_nonNegativeAndMaxTracks(t *testing.T) {
	var e jitterEstimator
	e.reset(testSampleRateHz)

	base := time.Unix(0, 0)
	ts := uint32(160000)
	for i, delayMs := range []int64{20, 25, 15, 60, 20} {
		now := base.Add(time.Duration(int64(i)*20+delayMs) * time.Millisecond)
		e.update(ts+uint32(i)*160, now)
		if e.jitter < 0 {
			t.Fatalf("jitter went negative: %v", e.jitter)
		}
		if e.maxJitter < e.jitter {
			t.Fatalf("maxJitter %v fell behind jitter %v", e.maxJitter, e.jitter)
		}
	}
}

func Test_jitterEstimator_resetClears(t *testing.T) {
	var e jitterEstimator
	e.reset(testSampleRateHz)
	e.update(160000, time.Unix(0, 0))
	e.update(160160, time.Unix(0, 0).Add(50*time.Millisecond))
	assert.Assert(t, e.jitter != 0)

	e.reset(testSampleRateHz)
	assert.Equal(t, e.jitter, float64(0))
	assert.Equal(t, e.maxJitter, float64(0))
	assert.Equal(t, e.prevArrival, int64(0))
}
