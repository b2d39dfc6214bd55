package jitter

import (
	"time"

	"github.com/huandu/skiplist"
)

// defaultHistoryWindow bounds how far back the diagnostics ledger keeps
// arrival records.
const defaultHistoryWindow = 5 * time.Second

// arrivalLedger is a bounded, time-ordered record of recently observed
// sequence numbers for duplicate and replay diagnostics. It never
// influences Push/Pop decisions.
type arrivalLedger struct {
	entries *skiplist.SkipList // key: arrival UnixNano, value: uint16 seq
	window  time.Duration
}

func newArrivalLedger(window time.Duration) *arrivalLedger {
	if window <= 0 {
		window = defaultHistoryWindow
	}
	return &arrivalLedger{
		entries: skiplist.New(skiplist.Int64),
		window:  window,
	}
}

// record inserts seq under a key derived from now. Bursts that land within
// the same clock tick would collide on a bare UnixNano key and silently
// overwrite one another in the skiplist, so the key is nudged forward by
// one nanosecond at a time until it lands on an empty slot.
func (l *arrivalLedger) record(now time.Time, seq uint16) {
	key := now.UnixNano()
	for l.entries.Get(key) != nil {
		key++
	}
	l.entries.Set(key, seq)
	l.removeOlderThan(now.Add(-l.window).UnixNano())
}

func (l *arrivalLedger) removeOlderThan(cutoff int64) {
	for {
		front := l.entries.Front()
		if front == nil || front.Key().(int64) >= cutoff {
			break
		}
		l.entries.RemoveFront()
	}
}

func (l *arrivalLedger) recent() []uint16 {
	out := make([]uint16, 0, l.entries.Len())
	for el := l.entries.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value.(uint16))
	}
	return out
}

// RecentArrivals returns the sequence numbers observed by Push within the
// ledger's retention window, oldest first. It is a diagnostics aid only.
func (b *Buffer) RecentArrivals() []uint16 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.history.recent()
}
