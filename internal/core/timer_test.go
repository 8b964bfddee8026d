package core

import (
	"math"
	"testing"
	"time"
)

func TestFrameThrottleSkipsEarlyFrames(t *testing.T) {
	ft := NewFrameThrottle(20)
	if got := ft.Interval(); got != 50*time.Millisecond {
		t.Fatalf("expected 50ms interval, got %v", got)
	}
	if ft.Accept(49 * time.Millisecond) {
		t.Fatal("frame before first interval should be skipped")
	}
	if !ft.Accept(50 * time.Millisecond) {
		t.Fatal("frame at interval should be accepted")
	}
	if ft.Accept(99 * time.Millisecond) {
		t.Fatal("frame 49ms after last accepted should be skipped")
	}
	if !ft.Accept(130 * time.Millisecond) {
		t.Fatal("late frame should be accepted")
	}
	// Spacing restarts from the late frame, no catch-up.
	if ft.Accept(150 * time.Millisecond) {
		t.Fatal("throttle must not catch up on missed frames")
	}
}

func TestFrameThrottleRateFallback(t *testing.T) {
	ft := NewFrameThrottle(0)
	if got := ft.Interval(); got != time.Second/60 {
		t.Fatalf("expected 60/s fallback, got %v", got)
	}
	ft.SetRate(40)
	if got := ft.Interval(); got != 25*time.Millisecond {
		t.Fatalf("expected 25ms, got %v", got)
	}
}

func TestFrameThrottleReset(t *testing.T) {
	ft := NewFrameThrottle(20)
	ft.Accept(time.Second)
	ft.Reset()
	if !ft.Accept(60 * time.Millisecond) {
		t.Fatal("reset throttle should measure from zero")
	}
}

func TestFrameThrottleTinyRateSaturates(t *testing.T) {
	ft := NewFrameThrottle(1e-300)
	if got := ft.Interval(); got != time.Duration(math.MaxInt64) {
		t.Fatalf("expected saturated interval, got %v", got)
	}
	for ts := time.Millisecond; ts <= time.Hour; ts += time.Minute {
		if ft.Accept(ts) {
			t.Fatalf("frame at %v should be skipped", ts)
		}
	}
}
