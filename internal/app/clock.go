package app

import "time"

// Clock is a simulated clock that advances by one tick per host update.
// ebiten calls Update at a fixed TPS, so reading the wall clock there would
// let scheduler jitter push frames under the frame gate's interval.
type Clock struct {
	now  time.Time
	step time.Duration
}

// NewClock starts a clock at start that advances 1/tps per tick.
func NewClock(start time.Time, tps int) *Clock {
	if tps <= 0 {
		tps = 60
	}
	return &Clock{now: start, step: time.Second / time.Duration(tps)}
}

// Advance moves the clock one tick forward and returns the new time.
func (c *Clock) Advance() time.Time {
	c.now = c.now.Add(c.step)
	return c.now
}

// Now returns the current simulated time.
func (c *Clock) Now() time.Time { return c.now }

// Step returns the tick length.
func (c *Clock) Step() time.Duration { return c.step }
