package core

import (
	"testing"
	"time"
)

func TestLoopDriverFirstFrameIsZero(t *testing.T) {
	l := NewLoopDriver()
	t0 := time.Unix(1000, 0)

	if dt := l.Advance(t0, true); dt != 0 {
		t.Errorf("first frame dt = %v, expected 0", dt)
	}
	if dt := l.Advance(t0.Add(16*time.Millisecond), true); dt != 0.016 {
		t.Errorf("second frame dt = %v, expected 0.016", dt)
	}
}

func TestLoopDriverNotRunning(t *testing.T) {
	l := NewLoopDriver()
	t0 := time.Unix(1000, 0)
	l.Advance(t0, true)

	if dt := l.Advance(t0.Add(time.Second), false); dt != 0 {
		t.Errorf("paused frame dt = %v, expected 0", dt)
	}

	// Resuming starts over with a zero frame, not the 2s gap
	if dt := l.Advance(t0.Add(2*time.Second), true); dt != 0 {
		t.Errorf("resume frame dt = %v, expected 0", dt)
	}
	if dt := l.Advance(t0.Add(2*time.Second+20*time.Millisecond), true); dt != 0.02 {
		t.Errorf("frame after resume dt = %v, expected 0.02", dt)
	}
}

func TestLoopDriverClampsStall(t *testing.T) {
	l := NewLoopDriver()
	t0 := time.Unix(1000, 0)
	l.Advance(t0, true)

	if dt := l.Advance(t0.Add(3*time.Second), true); dt != DefaultMaxDelta.Seconds() {
		t.Errorf("stalled frame dt = %v, expected %v", dt, DefaultMaxDelta.Seconds())
	}

	// Clock going backwards never produces negative time
	if dt := l.Advance(t0, true); dt != 0 {
		t.Errorf("backwards frame dt = %v, expected 0", dt)
	}
}

func TestInterval(t *testing.T) {
	iv := NewInterval(150 * time.Millisecond)

	if n := iv.Add(0.1); n != 0 {
		t.Errorf("Add(0.1) = %d, expected 0", n)
	}
	if n := iv.Add(0.1); n != 1 {
		t.Errorf("Add(0.1) again = %d, expected 1", n)
	}
	if n := iv.Add(0.5); n != 3 {
		t.Errorf("Add(0.5) = %d, expected 3", n)
	}
	if n := iv.Add(0); n != 0 {
		t.Errorf("Add(0) = %d, expected 0", n)
	}

	iv.Reset()
	iv.SetPeriod(50 * time.Millisecond)
	if n := iv.Add(0.12); n != 2 {
		t.Errorf("Add(0.12) with 50ms period = %d, expected 2", n)
	}
	if iv.Period() != 50*time.Millisecond {
		t.Errorf("Period() = %v, expected 50ms", iv.Period())
	}
}
