//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"math"

	"driftfield/internal/reveal"
	"driftfield/internal/scene"
	"driftfield/internal/stage"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding   = 24
	lineHeight     = 18
	navGap         = 18
	barWidth       = 260
	barHeight      = 6
	ringSegments   = 64
	ringSpacing    = 140
	techColumns    = 3
	techCellWidth  = 160
	techCellHeight = 28
	slideDistance  = 30
)

var (
	textColor   = color.RGBA{R: 220, G: 224, B: 235, A: 255}
	dimColor    = color.RGBA{R: 140, G: 146, B: 160, A: 255}
	accentColor = color.RGBA{R: 0, G: 170, B: 255, A: 255}
	trackColor  = color.RGBA{R: 40, G: 44, B: 56, A: 255}
	headerColor = color.RGBA{R: 10, G: 12, B: 20, A: 220}
)

// HUD draws the page content over the field: the fixed header with its
// section links and every section scrolled into view.
type HUD struct {
	st *stage.Stage
}

// NewHUD builds a HUD for st.
func NewHUD(st *stage.Stage) *HUD {
	return &HUD{st: st}
}

// Draw paints the visible sections and then the header on top.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || h.st == nil {
		return
	}
	page := h.st.Driver.Page()
	vh := float64(page.Viewport().H)
	for _, s := range page.Sections() {
		r, ok := page.Rect(s.ID)
		if !ok || r.Bottom < 0 || r.Top > vh {
			continue
		}
		alpha, shift := 1.0, 0.0
		if sc, ok := h.st.Effects.Sections[s.ID]; ok {
			alpha, shift = sc.Opacity(), sc.Offset()
		}
		if alpha <= 0 {
			continue
		}
		top := int(r.Top + shift)
		h.drawTitle(screen, s, top, alpha)
		body := top + panelPadding + 2*lineHeight
		switch s.ID {
		case scene.SectionHome:
			h.drawHome(screen, body, alpha)
		case scene.SectionAbout:
			h.drawAbout(screen, body, alpha)
		case "skills":
			h.drawSkills(screen, body, alpha)
		case "stats":
			h.drawStats(screen, body, alpha)
		case "tech":
			h.drawTech(screen, body, alpha)
		}
	}
	h.drawHeader(screen)
}

func (h *HUD) drawHeader(screen *ebiten.Image) {
	page := h.st.Driver.Page()
	w := float32(page.Viewport().W)
	vector.DrawFilledRect(screen, 0, 0, w, float32(page.Header()), headerColor, false)
	face := basicfont.Face7x13
	y := int(page.Header()/2) + 4
	text.Draw(screen, "driftfield", face, panelPadding, y, accentColor)
	x := int(w) - panelPadding
	sections := page.Sections()
	for i := len(sections) - 1; i >= 0; i-- {
		label := fmt.Sprintf("%d %s", i+1, sections[i].Title)
		x -= text.BoundString(face, label).Dx()
		clr := dimColor
		if r, ok := page.Rect(sections[i].ID); ok && r.Top <= page.Header() && r.Bottom > page.Header() {
			clr = textColor
		}
		text.Draw(screen, label, face, x, y, clr)
		x -= navGap
	}
}

func (h *HUD) drawTitle(screen *ebiten.Image, s scene.Section, top int, alpha float64) {
	if s.ID == scene.SectionHome {
		return
	}
	a := alpha
	if t, ok := h.st.Effects.Titles[s.ID]; ok {
		a *= t.Value()
	}
	y := top + panelPadding + lineHeight + int(slideDistance*(1-a))
	text.Draw(screen, s.Title, basicfont.Face7x13, panelPadding, y, fade(accentColor, a))
}

func (h *HUD) drawHome(screen *ebiten.Image, top int, alpha float64) {
	vw := h.st.Driver.Page().Viewport().W
	line := "Hi, I'm " + h.st.Title() + "_"
	face := basicfont.Face7x13
	x := (vw - text.BoundString(face, line).Dx()) / 2
	text.Draw(screen, line, face, x, top+4*lineHeight, fade(textColor, alpha))
	hint := "scroll or press 2 for more"
	x = (vw - text.BoundString(face, hint).Dx()) / 2
	text.Draw(screen, hint, face, x, top+6*lineHeight, fade(dimColor, alpha))
}

func (h *HUD) drawAbout(screen *ebiten.Image, top int, alpha float64) {
	about := h.st.Settings.Site.About
	for i, p := range about {
		a := alpha
		if i < len(h.st.Effects.About) {
			a *= h.st.Effects.About[i].Value()
		}
		y := top + i*2*lineHeight + int(slideDistance*(1-a))
		text.Draw(screen, p, basicfont.Face7x13, panelPadding, y, fade(textColor, a))
	}
}

func (h *HUD) drawSkills(screen *ebiten.Image, top int, alpha float64) {
	for i, sk := range h.st.Settings.Site.Skills {
		y := top + i*3*lineHeight
		label := fmt.Sprintf("%s  %.0f%%", sk.Name, sk.Level)
		text.Draw(screen, label, basicfont.Face7x13, panelPadding, y, fade(textColor, alpha))
		by := float32(y + lineHeight/2)
		vector.DrawFilledRect(screen, panelPadding, by, barWidth, barHeight, fade(trackColor, alpha), false)
		fill := float32(barWidth * reveal.SkillFill(sk.Level) * alpha)
		vector.DrawFilledRect(screen, panelPadding, by, fill, barHeight, fade(accentColor, alpha), false)
	}
}

func (h *HUD) drawStats(screen *ebiten.Image, top int, alpha float64) {
	stats := h.st.Settings.Site.Stats
	cy := float64(top + reveal.StatRadius + lineHeight)
	for i, s := range stats {
		cx := float64(panelPadding + reveal.StatRadius + i*ringSpacing)
		drawArc(screen, cx, cy, reveal.StatRadius, 1, fade(trackColor, alpha))
		filled := 0.0
		if i < len(h.st.Effects.Stats) {
			filled = h.st.Effects.Stats[i].Filled()
		}
		drawArc(screen, cx, cy, reveal.StatRadius, filled, fade(accentColor, alpha))
		face := basicfont.Face7x13
		value := fmt.Sprintf("%.0f", s.Value)
		text.Draw(screen, value, face, int(cx)-text.BoundString(face, value).Dx()/2, int(cy)+4, fade(textColor, alpha))
		text.Draw(screen, s.Label, face, int(cx)-text.BoundString(face, s.Label).Dx()/2, int(cy)+reveal.StatRadius+lineHeight, fade(dimColor, alpha))
	}
}

func (h *HUD) drawTech(screen *ebiten.Image, top int, alpha float64) {
	for i, name := range h.st.Settings.Site.Tech {
		a := alpha
		if i < len(h.st.Effects.Tech) {
			a *= h.st.Effects.Tech[i].Value()
		}
		col, row := i%techColumns, i/techColumns
		x := float32(panelPadding + col*techCellWidth)
		y := float32(top+row*(techCellHeight+8)) + float32(slideDistance*(1-a))
		vector.StrokeRect(screen, x, y, techCellWidth-12, techCellHeight, 1, fade(accentColor, a), false)
		text.Draw(screen, name, basicfont.Face7x13, int(x)+10, int(y)+techCellHeight/2+4, fade(textColor, a))
	}
}

// drawArc strokes the first frac of a ring starting at twelve o'clock.
func drawArc(dst *ebiten.Image, cx, cy, r, frac float64, clr color.Color) {
	if frac <= 0 {
		return
	}
	n := int(math.Ceil(ringSegments * math.Min(frac, 1)))
	step := 2 * math.Pi * math.Min(frac, 1) / float64(n)
	a0 := -math.Pi / 2
	for i := 0; i < n; i++ {
		a1 := a0 + step
		vector.StrokeLine(dst,
			float32(cx+r*math.Cos(a0)), float32(cy+r*math.Sin(a0)),
			float32(cx+r*math.Cos(a1)), float32(cy+r*math.Sin(a1)),
			4, clr, true)
		a0 = a1
	}
}

// fade scales a colour to premultiplied alpha a.
func fade(c color.RGBA, a float64) color.RGBA {
	a = math.Max(0, math.Min(1, a))
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}
