//go:build !tinygo

package hal

import "time"

// hostTime publishes milliseconds since the first advance. The channel
// holds only the newest value; consumers treat the sequence as monotonic
// and tolerate gaps.
type hostTime struct {
	ch    chan uint64
	start time.Time
	seq   uint64
}

func newHostTime() *hostTime {
	return &hostTime{ch: make(chan uint64, 1)}
}

func (t *hostTime) Ticks() <-chan uint64 { return t.ch }

func (t *hostTime) advance() { t.advanceTo(time.Now()) }

func (t *hostTime) advanceTo(now time.Time) {
	if t.start.IsZero() {
		t.start = now
	}
	seq := uint64(now.Sub(t.start)/time.Millisecond) + 1
	if seq <= t.seq {
		return
	}
	t.seq = seq
	select {
	case <-t.ch:
	default:
	}
	t.ch <- seq
}
