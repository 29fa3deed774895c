package scene

import (
	"time"

	"driftfield/internal/core"
	"driftfield/internal/field"
)

// DriverConfig sets the rate limits for the frame loop and input handlers.
type DriverConfig struct {
	FrameRate       int
	PointerInterval time.Duration
	ScrollInterval  time.Duration
	ResizeInterval  time.Duration
}

// DefaultDriverConfig returns the standard rate limits.
func DefaultDriverConfig() DriverConfig {
	return DriverConfig{
		FrameRate:       60,
		PointerInterval: 16 * time.Millisecond,
		ScrollInterval:  100 * time.Millisecond,
		ResizeInterval:  100 * time.Millisecond,
	}
}

// FrameResult reports what a call to Frame did.
type FrameResult struct {
	// Ran is false when the frame gate dropped the call.
	Ran bool
	// Updated is true when the field ticked.
	Updated bool
	Tick    field.TickResult
}

// Driver binds a field to the camera and page and routes host callbacks to
// them, each through its own minimum-interval gate.
type Driver struct {
	field    *field.Field
	camera   *Camera
	page     *Page
	scroller *Scroller

	frameGate   *core.Gate
	pointerGate *core.Gate
	scrollGate  *core.Gate
	resizeGate  *core.Gate

	pendingVisibility bool
	pendingSize       *core.Size
	paused            bool
}

// NewDriver constructs a driver. The page's visibility flag keeps its initial
// value until the first scroll or resize.
func NewDriver(f *field.Field, cam *Camera, page *Page, cfg DriverConfig) *Driver {
	d := &Driver{
		field:       f,
		camera:      cam,
		page:        page,
		scroller:    NewScroller(cfg.FrameRate),
		frameGate:   core.NewRateGate(cfg.FrameRate),
		pointerGate: core.NewGate(cfg.PointerInterval),
		scrollGate:  core.NewGate(cfg.ScrollInterval),
		resizeGate:  core.NewGate(cfg.ResizeInterval),
	}
	return d
}

// Field returns the driven field.
func (d *Driver) Field() *field.Field { return d.field }

// Camera returns the camera.
func (d *Driver) Camera() *Camera { return d.camera }

// Page returns the page layout.
func (d *Driver) Page() *Page { return d.page }

// SetPaused stops or resumes field updates. Input keeps being processed.
func (d *Driver) SetPaused(p bool) { d.paused = p }

// Paused reports whether field updates are suspended.
func (d *Driver) Paused() bool { return d.paused }

// Frame runs one host frame: it applies deferred resizes and visibility
// checks, eases any anchor scroll and ticks the field while the hero or
// about section is on screen.
func (d *Driver) Frame(now time.Time) FrameResult {
	if !d.frameGate.Allow(now) {
		return FrameResult{}
	}
	res := FrameResult{Ran: true}

	if d.pendingSize != nil && d.resizeGate.Allow(now) {
		d.applySize(*d.pendingSize)
		d.pendingSize = nil
	}
	if d.scroller.Active() {
		d.page.SetScroll(d.scroller.Update())
		d.pendingVisibility = true
	}
	if d.pendingVisibility && d.scrollGate.Allow(now) {
		d.page.CheckVisibility()
		d.pendingVisibility = false
	}

	if d.paused || !d.page.HomeVisible() {
		return res
	}
	res.Tick = d.field.Tick()
	res.Updated = true
	return res
}

// Step forces a single field tick, bypassing gates and visibility.
func (d *Driver) Step() field.TickResult {
	return d.field.Tick()
}

// Pointer handles a pointer move in viewport pixels. The hero hit test runs
// on every event; the camera follows at most once per pointer interval.
func (d *Driver) Pointer(now time.Time, x, y float64) {
	d.page.CheckPointer(x, y)
	if !d.pointerGate.Allow(now) {
		return
	}
	mx, my := PointerNDC(d.camera.Size(), x, y)
	d.camera.Follow(mx, my, d.page.PointerInHome())
}

// Scroll handles a wheel or key scroll of dy pixels. It cancels any anchor
// scroll in progress.
func (d *Driver) Scroll(now time.Time, dy float64) {
	d.scroller.Cancel()
	d.page.ScrollBy(dy)
	d.checkVisibility(now)
}

// ScrollTo starts a smooth scroll to the named section. It returns false when
// the section does not exist.
func (d *Driver) ScrollTo(id string) bool {
	y, ok := d.page.AnchorOffset(id)
	if !ok {
		return false
	}
	d.scroller.Start(d.page.ScrollY(), y)
	return true
}

// Scrolling reports whether an anchor scroll is in progress.
func (d *Driver) Scrolling() bool { return d.scroller.Active() }

// Resize handles a viewport size change.
func (d *Driver) Resize(now time.Time, size core.Size) {
	if !d.resizeGate.Allow(now) {
		d.pendingSize = &size
		return
	}
	d.pendingSize = nil
	d.applySize(size)
}

func (d *Driver) applySize(size core.Size) {
	d.camera.Resize(size)
	d.page.Resize(size)
	d.pendingVisibility = true
}

func (d *Driver) checkVisibility(now time.Time) {
	if !d.scrollGate.Allow(now) {
		d.pendingVisibility = true
		return
	}
	d.page.CheckVisibility()
	d.pendingVisibility = false
}
