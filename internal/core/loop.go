package core

import "time"

// DefaultMaxDelta caps a single frame's elapsed time.
const DefaultMaxDelta = 100 * time.Millisecond

// LoopDriver turns frame timestamps into elapsed seconds.
//
// The first running frame after construction, Reset or a stopped frame yields
// zero, so starting or resuming never produces a large jump. Frames taken
// while not running yield zero and change nothing.
type LoopDriver struct {
	MaxDelta time.Duration // <= 0 disables clamping

	last    time.Time
	started bool
}

// NewLoopDriver creates a driver with DefaultMaxDelta.
func NewLoopDriver() *LoopDriver {
	return &LoopDriver{MaxDelta: DefaultMaxDelta}
}

// Advance returns the seconds elapsed since the previous running frame.
func (l *LoopDriver) Advance(now time.Time, running bool) float64 {
	if !running {
		l.started = false
		return 0
	}
	if !l.started {
		l.last = now
		l.started = true
		return 0
	}

	d := now.Sub(l.last)
	l.last = now
	if d < 0 {
		d = 0
	}
	if l.MaxDelta > 0 && d > l.MaxDelta {
		d = l.MaxDelta
	}
	return d.Seconds()
}

// Reset forgets the previous frame.
func (l *LoopDriver) Reset() {
	l.started = false
	l.last = time.Time{}
}

// Interval accumulates elapsed time and reports whole periods for grid games
// that move on a fixed beat (snake moves, tetris gravity).
type Interval struct {
	period float64 // seconds
	acc    float64
}

// NewInterval creates an accumulator with the given period.
func NewInterval(period time.Duration) *Interval {
	return &Interval{period: period.Seconds()}
}

// SetPeriod changes the period, keeping accumulated time.
func (iv *Interval) SetPeriod(period time.Duration) {
	iv.period = period.Seconds()
}

// Period returns the current period.
func (iv *Interval) Period() time.Duration {
	return time.Duration(iv.period * float64(time.Second))
}

// Add accumulates dt seconds and returns how many periods elapsed.
func (iv *Interval) Add(dt float64) int {
	if iv.period <= 0 || dt <= 0 {
		return 0
	}
	iv.acc += dt
	n := 0
	for iv.acc >= iv.period {
		iv.acc -= iv.period
		n++
	}
	return n
}

// Reset drops accumulated time.
func (iv *Interval) Reset() {
	iv.acc = 0
}
