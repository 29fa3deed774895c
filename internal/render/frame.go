package render

import (
	"image/color"

	"driftfield/internal/core"
	"driftfield/internal/field"
	"driftfield/internal/scene"
)

// Style sets the colours and sizes of the field.
type Style struct {
	Color        color.RGBA
	PointSize    float64 // world units, attenuated by depth
	PointOpacity float64
	LineOpacity  float64
	LineWidth    float64
	Background   color.RGBA
}

// DefaultStyle returns the neon-blue look.
func DefaultStyle() Style {
	return Style{
		Color:        color.RGBA{R: 0x00, G: 0xaa, B: 0xff, A: 0xff},
		PointSize:    3,
		PointOpacity: 0.8,
		LineOpacity:  0.3,
		LineWidth:    1,
		Background:   color.RGBA{R: 0x05, G: 0x07, B: 0x10, A: 0xff},
	}
}

// Premultiplied returns Color scaled by opacity, as premultiplied RGBA.
func (s Style) Premultiplied(opacity float64) color.RGBA {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	return color.RGBA{
		R: uint8(float64(s.Color.R)*opacity + 0.5),
		G: uint8(float64(s.Color.G)*opacity + 0.5),
		B: uint8(float64(s.Color.B)*opacity + 0.5),
		A: uint8(float64(s.Color.A)*opacity + 0.5),
	}
}

// Dot is a projected particle.
type Dot struct {
	X, Y   float64
	Radius float64
	Depth  float64
}

// Line is a projected connection segment.
type Line struct {
	X0, Y0 float64
	X1, Y1 float64
}

// Frame holds everything needed to draw one field image, in viewport pixels.
type Frame struct {
	Size  core.Size
	Dots  []Dot
	Lines []Line
}

// Builder projects fields into frames, reusing its buffers between calls.
type Builder struct {
	style Style
	frame Frame
}

// NewBuilder constructs a builder for the given style.
func NewBuilder(style Style) *Builder { return &Builder{style: style} }

// Style returns the builder's style.
func (b *Builder) Style() Style { return b.style }

// Build projects every particle and visible segment through cam. Points and
// segments with an endpoint outside the clip range are skipped. The returned
// frame is reused by the next Build call.
func (b *Builder) Build(cam *scene.Camera, f *field.Field) *Frame {
	fr := &b.frame
	fr.Size = cam.Size()
	fr.Dots = fr.Dots[:0]
	fr.Lines = fr.Lines[:0]

	ps := f.Particles()
	for i := 0; i < ps.Len(); i++ {
		p, ok := cam.Project(vec(ps.Position(i)))
		if !ok {
			continue
		}
		r := cam.PointScale(b.style.PointSize, p.Depth) / 2
		fr.Dots = append(fr.Dots, Dot{X: p.X, Y: p.Y, Radius: r, Depth: p.Depth})
	}
	ps.MarkClean()

	pool := f.Pool()
	for _, s := range pool.Segments()[:pool.Used()] {
		if !s.Visible {
			continue
		}
		a, ok := cam.Project(vec(s.A))
		if !ok {
			continue
		}
		c, ok := cam.Project(vec(s.B))
		if !ok {
			continue
		}
		fr.Lines = append(fr.Lines, Line{X0: a.X, Y0: a.Y, X1: c.X, Y1: c.Y})
	}
	pool.MarkClean()
	return fr
}

func vec(p [3]float32) core.Vec3 {
	return core.Vec3{X: float64(p[0]), Y: float64(p[1]), Z: float64(p[2])}
}
