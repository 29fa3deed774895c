package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGateAdmitsFirstCall(t *testing.T) {
	g := NewGate(100 * time.Millisecond)
	assert.True(t, g.Allow(time.Unix(0, 0)), "first call must pass")
}

func TestGateMinimumInterval(t *testing.T) {
	base := time.Unix(1000, 0)
	g := NewRateGate(60)

	assert.True(t, g.Allow(base))
	assert.False(t, g.Allow(base.Add(10*time.Millisecond)), "10ms is below the 60Hz interval")
	assert.False(t, g.Allow(base.Add(16*time.Millisecond)))
	assert.True(t, g.Allow(base.Add(17*time.Millisecond)))
	// The interval is measured from the last admitted call, not the last attempt.
	assert.False(t, g.Allow(base.Add(30*time.Millisecond)))
	assert.True(t, g.Allow(base.Add(34*time.Millisecond)))
}

func TestGateReset(t *testing.T) {
	base := time.Unix(0, 0)
	g := NewGate(time.Second)
	assert.True(t, g.Allow(base))
	assert.False(t, g.Allow(base.Add(time.Millisecond)))
	g.Reset()
	assert.True(t, g.Allow(base.Add(time.Millisecond)))
}

func TestGateZeroIntervalAdmitsEverything(t *testing.T) {
	g := NewGate(-time.Second)
	now := time.Unix(0, 0)
	for i := 0; i < 5; i++ {
		assert.True(t, g.Allow(now))
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	assert.Equal(t, Vec3{0, 0, 1}, x.Cross(y))
	assert.InDelta(t, 1.0, Vec3{3, 4, 0}.Normalize().Length(), 1e-12)
	assert.Equal(t, Vec3{}, Vec3{}.Normalize())
}
