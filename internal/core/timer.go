package core

import "time"

// Gate admits at most one call per interval. It stores the timestamp of the
// last admitted call and compares every new call against it.
type Gate struct {
	interval time.Duration
	last     time.Time
	primed   bool
}

// NewGate constructs a Gate with the given minimum interval. Non-positive
// intervals admit every call.
func NewGate(interval time.Duration) *Gate {
	if interval < 0 {
		interval = 0
	}
	return &Gate{interval: interval}
}

// NewRateGate constructs a Gate admitting roughly hz calls per second.
func NewRateGate(hz int) *Gate {
	if hz <= 0 {
		hz = 60
	}
	return NewGate(time.Second / time.Duration(hz))
}

// Interval returns the configured minimum interval.
func (g *Gate) Interval() time.Duration { return g.interval }

// SetInterval changes the minimum interval. It is safe to call from the main loop.
func (g *Gate) SetInterval(d time.Duration) {
	if d < 0 {
		d = 0
	}
	g.interval = d
}

// Allow reports whether a call at now should run. The first call always runs.
func (g *Gate) Allow(now time.Time) bool {
	if g.primed && now.Sub(g.last) < g.interval {
		return false
	}
	g.last = now
	g.primed = true
	return true
}

// Reset forgets the last admitted call.
func (g *Gate) Reset() {
	g.last = time.Time{}
	g.primed = false
}
