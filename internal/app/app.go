//go:build ebiten

package app

import (
	"log"
	"time"

	"driftfield/internal/core"
	"driftfield/internal/render"
	"driftfield/internal/stage"
	"driftfield/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// wheelStep is the scroll distance in pixels per wheel notch.
const wheelStep = 60

var anchorKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// Game adapts a stage to the ebiten.Game interface.
type Game struct {
	stage   *stage.Stage
	painter *render.FieldPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	size     core.Size
	cursorX  int
	cursorY  int
	tickOnce bool
	seed     int64
	clock    *Clock
}

// New constructs a Game for the provided stage.
func New(st *stage.Stage, debug bool) *Game {
	return &Game{
		stage:   st,
		painter: render.NewFieldPainter(st.Builder.Style()),
		hud:     ui.NewHUD(st),
		overlay: ui.NewOverlay(st, debug),
		size:    st.Driver.Camera().Size(),
		cursorX: -1,
		cursorY: -1,
		seed:    st.Settings.Field.Seed,
		clock:   NewClock(time.Now(), st.Settings.Driver.FrameRate),
	}
}

// Reset reinitializes the field with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.stage.Reset(seed)
	g.tickOnce = false
}

// Update handles input and advances the stage.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	d := g.stage.Driver
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		d.SetPaused(!d.Paused())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		seed := time.Now().UnixNano()
		log.Printf("reseeding field with %d", seed)
		g.Reset(seed)
	}

	sections := d.Page().Sections()
	for i, k := range anchorKeys {
		if i < len(sections) && inpututil.IsKeyJustPressed(k) {
			d.ScrollTo(sections[i].ID)
		}
	}

	now := g.clock.Advance()
	if d.Camera().Size() != g.size {
		d.Resize(now, g.size)
	}
	if x, y := ebiten.CursorPosition(); x != g.cursorX || y != g.cursorY {
		g.cursorX, g.cursorY = x, y
		d.Pointer(now, float64(x), float64(y))
	}
	if _, wy := ebiten.Wheel(); wy != 0 {
		d.Scroll(now, -wy*wheelStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) {
		d.Scroll(now, float64(g.size.H)*0.9)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		d.Scroll(now, -float64(g.size.H)*0.9)
	}

	g.overlay.Update()

	if g.tickOnce {
		if d.Paused() {
			d.Step()
		}
		g.tickOnce = false
	}
	g.stage.Frame(now)
	return nil
}

// Draw renders the field and the page on top of it.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.stage.Builder.Style().Background)
	g.painter.Draw(screen, g.stage.Render())
	g.hud.Draw(screen)
	g.overlay.Draw(screen)
}

// Layout tracks the window size so the camera and page follow resizes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.size = core.Size{W: outsideWidth, H: outsideHeight}
	}
	return g.size.W, g.size.H
}
