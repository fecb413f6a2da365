package core

import "time"

// Reference frame length: dt is 1.0 when a frame takes this long (60 fps).
const (
	DefaultFrameUnit = 16666 * time.Microsecond
	DefaultMaxFrame  = 40 * time.Millisecond
)

// FrameClock converts scheduler timestamps into the dt factor the
// simulation scales by. Elapsed time is capped so a stalled terminal or
// a slow SSH link never produces one huge physics jump.
type FrameClock struct {
	unit    time.Duration
	max     time.Duration
	last    time.Time
	started bool
}

// NewFrameClock creates a clock; non-positive arguments fall back to the defaults.
func NewFrameClock(unit, max time.Duration) *FrameClock {
	if unit <= 0 {
		unit = DefaultFrameUnit
	}
	if max <= 0 {
		max = DefaultMaxFrame
	}
	return &FrameClock{unit: unit, max: max}
}

// Reset forgets the previous timestamp; the next Advance returns 0.
func (c *FrameClock) Reset() {
	c.started = false
}

// Advance records now and returns the capped elapsed time in frame units.
// The first call after construction or Reset returns 0.
func (c *FrameClock) Advance(now time.Time) float64 {
	if !c.started {
		c.last = now
		c.started = true
		return 0
	}

	elapsed := now.Sub(c.last)
	c.last = now
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > c.max {
		elapsed = c.max
	}
	return float64(elapsed) / float64(c.unit)
}
