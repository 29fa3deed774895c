package scene

import (
	"testing"
	"time"

	"driftfield/internal/core"
	"driftfield/internal/field"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDriver() *Driver {
	size := core.Size{W: 800, H: 600}
	f := field.New(field.DefaultConfig())
	return NewDriver(f, NewCamera(DefaultCameraConfig(), size), testPage(), DefaultDriverConfig())
}

func TestFrameGateLimitsTicks(t *testing.T) {
	d := testDriver()
	base := time.Unix(100, 0)

	res := d.Frame(base)
	require.True(t, res.Ran)
	assert.True(t, res.Updated)

	assert.False(t, d.Frame(base.Add(5*time.Millisecond)).Ran)
	assert.True(t, d.Frame(base.Add(17*time.Millisecond)).Ran)
	assert.Equal(t, uint64(2), d.Field().Ticks())
}

func TestShortViewportTicksFromLaunch(t *testing.T) {
	size := core.Size{W: 640, H: 384}
	page := NewPage(size, 64,
		Section{ID: SectionHome, Height: 720},
		Section{ID: SectionAbout, Height: 640},
	)
	d := NewDriver(field.New(field.DefaultConfig()), NewCamera(DefaultCameraConfig(), size), page, DefaultDriverConfig())
	now := time.Unix(100, 0)

	for i := 0; i < 10; i++ {
		d.Frame(now)
		now = now.Add(20 * time.Millisecond)
	}
	assert.Equal(t, uint64(10), d.Field().Ticks())

	d.Resize(now, core.Size{W: 640, H: 300})
	for i := 0; i < 10; i++ {
		now = now.Add(20 * time.Millisecond)
		d.Frame(now)
	}
	assert.True(t, d.Page().HomeVisible())
	assert.Equal(t, uint64(20), d.Field().Ticks())
}

func TestFieldPausesWhenSectionsScrolledAway(t *testing.T) {
	d := testDriver()
	base := time.Unix(100, 0)

	d.Scroll(base, 1800)
	require.False(t, d.Page().HomeVisible())

	res := d.Frame(base)
	assert.True(t, res.Ran)
	assert.False(t, res.Updated)
	assert.Zero(t, d.Field().Ticks())
}

func TestPausedDriverSkipsTicks(t *testing.T) {
	d := testDriver()
	d.SetPaused(true)
	res := d.Frame(time.Unix(0, 0))
	assert.True(t, res.Ran)
	assert.False(t, res.Updated)
	d.Step()
	assert.Equal(t, uint64(1), d.Field().Ticks())
}

func TestScrollToEasesBackHome(t *testing.T) {
	d := testDriver()
	now := time.Unix(100, 0)
	d.Scroll(now, 1800)
	require.False(t, d.Page().HomeVisible())

	require.True(t, d.ScrollTo(SectionHome))
	require.False(t, d.ScrollTo("missing"))

	for i := 0; i < 2000 && d.Scrolling(); i++ {
		now = now.Add(20 * time.Millisecond)
		d.Frame(now)
	}
	require.False(t, d.Scrolling(), "scroll should settle")
	assert.Zero(t, d.Page().ScrollY())

	// The deferred visibility check lands on a later frame once the scroll gate opens.
	now = now.Add(200 * time.Millisecond)
	res := d.Frame(now)
	assert.True(t, d.Page().HomeVisible())
	assert.True(t, res.Updated)
}

func TestPointerFollowIsRateLimited(t *testing.T) {
	d := testDriver()
	base := time.Unix(100, 0)

	d.Pointer(base, 800, 0)
	assert.InDelta(t, 10, d.Camera().Pos.X, 1e-9)

	d.Pointer(base.Add(5*time.Millisecond), 800, 0)
	assert.InDelta(t, 10, d.Camera().Pos.X, 1e-9, "second move inside the interval is dropped")

	d.Pointer(base.Add(20*time.Millisecond), 800, 0)
	assert.InDelta(t, 19.5, d.Camera().Pos.X, 1e-9)
}

func TestPointerOutsideHomeHoldsCamera(t *testing.T) {
	d := testDriver()
	base := time.Unix(100, 0)
	d.Scroll(base, 700)

	d.Pointer(base, 800, 0)
	assert.False(t, d.Page().PointerInHome())
	assert.Zero(t, d.Camera().Pos.X)
}

func TestResizeIsDeferredWithinInterval(t *testing.T) {
	d := testDriver()
	base := time.Unix(100, 0)

	d.Resize(base, core.Size{W: 400, H: 300})
	assert.Equal(t, core.Size{W: 400, H: 300}, d.Camera().Size())

	d.Resize(base.Add(10*time.Millisecond), core.Size{W: 500, H: 300})
	assert.Equal(t, core.Size{W: 400, H: 300}, d.Camera().Size())

	d.Frame(base.Add(200 * time.Millisecond))
	assert.Equal(t, core.Size{W: 500, H: 300}, d.Camera().Size())
	assert.Equal(t, core.Size{W: 500, H: 300}, d.Page().Viewport())
}
