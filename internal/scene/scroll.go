package scene

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Scroller eases the page scroll offset toward an anchor with a critically
// damped spring.
type Scroller struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
	active bool
}

// NewScroller builds a scroller stepped fps times per second.
func NewScroller(fps int) *Scroller {
	if fps <= 0 {
		fps = 60
	}
	return &Scroller{spring: harmonica.NewSpring(harmonica.FPS(fps), 6.0, 1.0)}
}

// Start begins easing from the current offset toward target.
func (s *Scroller) Start(from, target float64) {
	if !s.active {
		s.vel = 0
	}
	s.pos = from
	s.target = target
	s.active = true
}

// Cancel stops any scroll in progress.
func (s *Scroller) Cancel() {
	s.active = false
	s.vel = 0
}

// Active reports whether a scroll is in progress.
func (s *Scroller) Active() bool { return s.active }

// Target returns the offset being eased toward.
func (s *Scroller) Target() float64 { return s.target }

// Update advances the spring one step and returns the new offset. It snaps
// to the target once both distance and speed fall below half a pixel.
func (s *Scroller) Update() float64 {
	if !s.active {
		return s.pos
	}
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.target)
	if math.Abs(s.pos-s.target) < 0.5 && math.Abs(s.vel) < 0.5 {
		s.pos = s.target
		s.vel = 0
		s.active = false
	}
	return s.pos
}
