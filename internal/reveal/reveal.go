// Package reveal computes scroll-driven fade and slide values for page
// elements.
package reveal

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// Trigger lines as fractions of the viewport height, measured from the top.
const (
	DefaultStart = 0.8
	DefaultEnd   = 0.5
)

// Power2Out eases quickly then settles (cubic ease-out).
func Power2Out(x float64) float64 {
	x = clamp01(x)
	inv := 1 - x
	return 1 - inv*inv*inv
}

// ScrubProgress maps an element's viewport top to [0, 1]: 0 while the top is
// below the start line, 1 once it passes the end line.
func ScrubProgress(top, viewportH, start, end float64) float64 {
	span := (start - end) * viewportH
	if span <= 0 {
		if top <= end*viewportH {
			return 1
		}
		return 0
	}
	return clamp01((start*viewportH - top) / span)
}

// Scrub follows ScrubProgress with spring smoothing, so fast scrolling
// catches up over roughly a second instead of jumping.
type Scrub struct {
	Start, End float64
	Distance   float64 // slide-in distance in pixels

	spring harmonica.Spring
	pos    float64
	vel    float64
}

// NewScrub builds a scrub trigger updated fps times per second.
func NewScrub(fps int) *Scrub {
	if fps <= 0 {
		fps = 60
	}
	return &Scrub{
		Start:    DefaultStart,
		End:      DefaultEnd,
		Distance: 50,
		spring:   harmonica.NewSpring(harmonica.FPS(fps), 5.0, 1.0),
	}
}

// Update eases toward the progress for an element whose top is at top and
// returns the smoothed progress.
func (s *Scrub) Update(top, viewportH float64) float64 {
	target := ScrubProgress(top, viewportH, s.Start, s.End)
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, target)
	if math.Abs(s.pos-target) < 1e-3 && math.Abs(s.vel) < 1e-3 {
		s.pos, s.vel = target, 0
	}
	return s.Progress()
}

// Snap jumps straight to the progress for top.
func (s *Scrub) Snap(top, viewportH float64) {
	s.pos = ScrubProgress(top, viewportH, s.Start, s.End)
	s.vel = 0
}

// Progress returns the smoothed progress in [0, 1].
func (s *Scrub) Progress() float64 { return clamp01(s.pos) }

// Opacity returns the element opacity.
func (s *Scrub) Opacity() float64 { return s.Progress() }

// Offset returns the remaining downward slide in pixels.
func (s *Scrub) Offset() float64 { return s.Distance * (1 - s.Progress()) }

// Toggle plays forward once an element's top passes the start line and
// reverses when it drops back below it. Delay staggers groups of elements.
type Toggle struct {
	Start    float64
	Duration time.Duration
	Delay    time.Duration
	Ease     func(float64) float64

	head    time.Duration
	forward bool
	last    time.Time
	primed  bool
}

// NewToggle builds a toggle trigger with power2.out easing.
func NewToggle(duration, delay time.Duration) *Toggle {
	return &Toggle{Start: DefaultStart, Duration: duration, Delay: delay, Ease: Power2Out}
}

// Stagger builds n toggles whose delays grow by step.
func Stagger(n int, duration, step time.Duration) []*Toggle {
	out := make([]*Toggle, n)
	for i := range out {
		out[i] = NewToggle(duration, time.Duration(i)*step)
	}
	return out
}

// Update moves the playhead by the time since the previous call and returns
// the eased progress.
func (t *Toggle) Update(now time.Time, top, viewportH float64) float64 {
	t.forward = top <= t.Start*viewportH
	var dt time.Duration
	if t.primed {
		dt = now.Sub(t.last)
		if dt < 0 {
			dt = 0
		}
	}
	t.last, t.primed = now, true

	total := t.Delay + t.Duration
	if t.forward {
		t.head += dt
		if t.head > total {
			t.head = total
		}
	} else {
		t.head -= dt
		if t.head < 0 {
			t.head = 0
		}
	}
	return t.Value()
}

// Value returns the eased progress at the current playhead.
func (t *Toggle) Value() float64 {
	if t.Duration <= 0 {
		if t.head >= t.Delay && t.forward {
			return 1
		}
		return 0
	}
	x := float64(t.head-t.Delay) / float64(t.Duration)
	ease := t.Ease
	if ease == nil {
		ease = clamp01
	}
	return ease(clamp01(x))
}

// Playing reports whether the trigger is currently running forward.
func (t *Toggle) Playing() bool { return t.forward }

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
