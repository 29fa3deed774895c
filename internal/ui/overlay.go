//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"driftfield/internal/core"
	"driftfield/internal/stage"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	overlayWidth = 300
	overlayLine  = 15
)

var (
	overlayBg   = color.RGBA{R: 16, G: 16, B: 20, A: 200}
	cellColor   = color.RGBA{R: 255, G: 120, B: 40, A: 160}
	groupColor  = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	paramColor  = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	statusColor = color.RGBA{R: 0, G: 170, B: 255, A: 255}
)

// Overlay draws debugging visuals: a parameter panel and the occupied cells
// of the spatial grid.
type Overlay struct {
	st        *stage.Stage
	showPanel bool
	showCells bool
}

// NewOverlay constructs an overlay. debug opens the panel immediately.
func NewOverlay(st *stage.Stage, debug bool) *Overlay {
	return &Overlay{st: st, showPanel: debug}
}

// Update toggles the panel with D and the grid cells with G.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		o.showPanel = !o.showPanel
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showCells = !o.showCells
	}
}

// Draw renders the enabled layers onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o == nil || o.st == nil {
		return
	}
	if o.showCells {
		o.drawCells(screen)
	}
	if o.showPanel {
		o.drawPanel(screen)
	}
}

func (o *Overlay) drawCells(screen *ebiten.Image) {
	g := o.st.Field.Grid()
	cam := o.st.Driver.Camera()
	cs := g.CellSize()
	for _, k := range g.Keys() {
		center := core.Vec3{
			X: (float64(k.X) + 0.5) * cs,
			Y: (float64(k.Y) + 0.5) * cs,
			Z: (float64(k.Z) + 0.5) * cs,
		}
		p, ok := cam.Project(center)
		if !ok {
			continue
		}
		r := float32(cam.PointScale(cs/2, p.Depth))
		if r < 1 {
			r = 1
		}
		vector.StrokeRect(screen, float32(p.X)-r, float32(p.Y)-r, 2*r, 2*r, 1, cellColor, false)
	}
}

func (o *Overlay) drawPanel(screen *ebiten.Image) {
	snap := o.st.Field.Parameters()
	lines := 4
	for _, grp := range snap.Groups {
		lines += 1 + len(grp.Params)
	}
	h := float32(lines*overlayLine + 16)
	top := float32(o.st.Driver.Page().Header()) + 8
	vector.DrawFilledRect(screen, 8, top, overlayWidth, h, overlayBg, false)

	face := basicfont.Face7x13
	x := 20
	y := int(top) + 12 + overlayLine/2
	text.Draw(screen, o.st.Status(), face, x, y, statusColor)
	y += overlayLine
	cam := o.st.Driver.Camera()
	text.Draw(screen, fmt.Sprintf("camera %.0f %.0f %.0f", cam.Pos.X, cam.Pos.Y, cam.Pos.Z), face, x, y, paramColor)
	y += overlayLine
	text.Draw(screen, fmt.Sprintf("tps %.0f  fps %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()), face, x, y, paramColor)
	y += overlayLine * 2
	for _, grp := range snap.Groups {
		text.Draw(screen, grp.Name, face, x, y, groupColor)
		y += overlayLine
		for _, p := range grp.Params {
			text.Draw(screen, fmt.Sprintf("  %-20s %s", p.Label, p.Value), face, x, y, paramColor)
			y += overlayLine
		}
	}
}
