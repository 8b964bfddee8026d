package core

import (
	"math"
	"time"
)

// FrameThrottle drops host frames that arrive before the target interval has
// elapsed since the last accepted one. It does not catch up on missed frames.
type FrameThrottle struct {
	interval time.Duration
	last     time.Duration
}

// NewFrameThrottle constructs a FrameThrottle targeting the given rate.
func NewFrameThrottle(perSecond float64) *FrameThrottle {
	ft := &FrameThrottle{}
	ft.SetRate(perSecond)
	return ft
}

// SetRate changes the target rate. Non-positive rates fall back to 60/s.
// Rates too small to represent saturate at the longest Duration.
func (f *FrameThrottle) SetRate(perSecond float64) {
	if !(perSecond > 0) {
		perSecond = 60
	}
	ns := float64(time.Second) / perSecond
	if ns >= math.MaxInt64 {
		f.interval = time.Duration(math.MaxInt64)
		return
	}
	f.interval = time.Duration(ns)
}

// Interval reports the minimum spacing between accepted frames.
func (f *FrameThrottle) Interval() time.Duration { return f.interval }

// Accept reports whether the frame stamped ts should be processed and, if so,
// records it as the last accepted frame.
func (f *FrameThrottle) Accept(ts time.Duration) bool {
	if ts-f.last < f.interval {
		return false
	}
	f.last = ts
	return true
}

// Reset forgets the last accepted timestamp.
func (f *FrameThrottle) Reset() { f.last = 0 }
