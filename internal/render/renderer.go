//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// FieldPainter draws frames onto an offscreen layer and composites it onto
// the screen with additive blending.
type FieldPainter struct {
	style Style
	layer *ebiten.Image
}

// NewFieldPainter allocates a painter for the given style.
func NewFieldPainter(style Style) *FieldPainter {
	return &FieldPainter{style: style}
}

// Draw renders fr onto dst.
func (fp *FieldPainter) Draw(dst *ebiten.Image, fr *Frame) {
	w, h := fr.Size.W, fr.Size.H
	if w <= 0 || h <= 0 {
		return
	}
	if fp.layer == nil || fp.layer.Bounds().Dx() != w || fp.layer.Bounds().Dy() != h {
		if fp.layer != nil {
			fp.layer.Dispose()
		}
		fp.layer = ebiten.NewImage(w, h)
	}
	fp.layer.Clear()

	lc := fp.style.Premultiplied(fp.style.LineOpacity)
	lw := float32(fp.style.LineWidth)
	for _, l := range fr.Lines {
		vector.StrokeLine(fp.layer, float32(l.X0), float32(l.Y0), float32(l.X1), float32(l.Y1), lw, lc, true)
	}
	pc := fp.style.Premultiplied(fp.style.PointOpacity)
	for _, d := range fr.Dots {
		r := d.Radius
		if r < 0.75 {
			r = 0.75
		}
		vector.DrawFilledCircle(fp.layer, float32(d.X), float32(d.Y), float32(r), pc, true)
	}

	op := &ebiten.DrawImageOptions{}
	op.Blend = ebiten.BlendLighter
	dst.DrawImage(fp.layer, op)
}
