// Package capture runs stages headless: it records animated GIFs, sweeps
// presets and seeds on a worker pool, and formats run summaries.
package capture

import (
	"image"
	"image/color"
	"image/gif"
	"time"

	"driftfield/internal/field"
	"driftfield/internal/render"
	"driftfield/internal/stage"
)

// Options controls a recording.
type Options struct {
	Frames int       // frames written to the GIF
	Every  int       // stage frames per GIF frame
	Delay  int       // GIF frame delay in 1/100 s
	Start  time.Time // simulated clock origin
}

// DefaultOptions records four seconds at 30 fps from a 60 fps stage.
func DefaultOptions() Options {
	return Options{Frames: 120, Every: 2, Delay: 3, Start: time.Unix(0, 0)}
}

// Summary describes a headless run.
type Summary struct {
	Name        string
	Seed        int64
	Frames      int
	Ticks       uint64
	MeanVisible float64
	PeakVisible int
	Cells       int
}

// Palette returns a 256 entry ramp of the style colour added onto the
// background, matching what additive rasterization produces.
func Palette(st render.Style) color.Palette {
	pal := make(color.Palette, 256)
	bg := st.Background
	for i := range pal {
		k := 3 * float64(i) / 255
		pal[i] = color.RGBA{
			R: ramp(bg.R, st.Color.R, k),
			G: ramp(bg.G, st.Color.G, k),
			B: ramp(bg.B, st.Color.B, k),
			A: 0xff,
		}
	}
	return pal
}

func ramp(base, add uint8, k float64) uint8 {
	v := float64(base) + float64(add)*k
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// Record drives st on a simulated clock and returns the animation together
// with a summary of the run.
func Record(st *stage.Stage, opts Options) (*gif.GIF, Summary) {
	if opts.Frames <= 0 {
		opts.Frames = 1
	}
	if opts.Every <= 0 {
		opts.Every = 1
	}
	fps := st.Settings.Driver.FrameRate
	if fps <= 0 {
		fps = 60
	}
	dt := time.Second / time.Duration(fps)

	style := st.Builder.Style()
	pal := Palette(style)
	size := st.Driver.Camera().Size()
	rgba := image.NewRGBA(image.Rect(0, 0, size.W, size.H))
	idx := make(map[color.RGBA]uint8)
	out := &gif.GIF{LoopCount: 0}

	var acc visibleStats
	now := opts.Start
	for frame := 0; frame < opts.Frames; frame++ {
		for i := 0; i < opts.Every; i++ {
			now = now.Add(dt)
			if st.Frame(now).Ran {
				acc.add(st.Field.Stats().Visible)
			}
		}
		render.Rasterize(rgba, st.Render(), style)
		out.Image = append(out.Image, toPaletted(rgba, pal, idx))
		out.Delay = append(out.Delay, opts.Delay)
	}

	sum := acc.summary(st.Field)
	sum.Name = st.Settings.Preset
	sum.Frames = opts.Frames
	return out, sum
}

// toPaletted converts an RGBA image into a paletted image using pal. The
// nearest-colour lookups are cached in idx across calls.
func toPaletted(img *image.RGBA, pal color.Palette, idx map[color.RGBA]uint8) *image.Paletted {
	bounds := img.Bounds()
	p := image.NewPaletted(bounds, pal)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.RGBAAt(x, y)
			i, ok := idx[c]
			if !ok {
				i = uint8(pal.Index(c))
				idx[c] = i
			}
			p.SetColorIndex(x, y, i)
		}
	}
	return p
}

type visibleStats struct {
	samples int
	total   int
	peak    int
}

func (v *visibleStats) add(n int) {
	v.samples++
	v.total += n
	if n > v.peak {
		v.peak = n
	}
}

func (v *visibleStats) summary(f *field.Field) Summary {
	fs := f.Stats()
	s := Summary{
		Seed:        f.Config().Seed,
		Ticks:       fs.Ticks,
		PeakVisible: v.peak,
		Cells:       fs.OccupiedCells,
	}
	if v.samples > 0 {
		s.MeanVisible = float64(v.total) / float64(v.samples)
	}
	return s
}
