package reveal

import (
	"math"
	"time"
)

// StatRadius is the radius of a stat circle's ring.
const StatRadius = 45

// Circumference returns the ring length for radius r.
func Circumference(r float64) float64 { return 2 * math.Pi * r }

// DashOffset returns the stroke dash offset that fills value percent of a
// stat ring.
func DashOffset(value float64) float64 {
	c := Circumference(StatRadius)
	v := math.Max(0, math.Min(100, value))
	return c - v/100*c
}

// SkillFill returns the filled fraction of a skill bar at level percent.
func SkillFill(level float64) float64 {
	return clamp01(level / 100)
}

// StatCircle animates a ring from empty to its value when scrolled into view.
type StatCircle struct {
	Value  float64
	toggle *Toggle
}

// NewStatCircle builds a stat ring that fills over 1.5s.
func NewStatCircle(value float64) *StatCircle {
	return &StatCircle{Value: value, toggle: NewToggle(1500*time.Millisecond, 0)}
}

// Update advances the animation and returns the current dash offset.
func (s *StatCircle) Update(now time.Time, top, viewportH float64) float64 {
	p := s.toggle.Update(now, top, viewportH)
	c := Circumference(StatRadius)
	return c + (DashOffset(s.Value)-c)*p
}

// Filled returns the fraction of the ring currently drawn.
func (s *StatCircle) Filled() float64 {
	return s.toggle.Value() * clamp01(s.Value/100)
}
