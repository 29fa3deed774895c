package render

import (
	"image"
	"image/color"
	"math"
)

// fillRGBA paints every pixel of buf with c.
func fillRGBA(buf []byte, c color.RGBA) {
	for i := 0; i+3 < len(buf); i += 4 {
		buf[i+0] = c.R
		buf[i+1] = c.G
		buf[i+2] = c.B
		buf[i+3] = c.A
	}
}

// addRGBA adds premultiplied colour c scaled by cover to the pixel at (x, y),
// saturating each channel at 255. Out-of-bounds pixels are ignored.
func addRGBA(img *image.RGBA, x, y int, c color.RGBA, cover float64) {
	if !(image.Point{X: x, Y: y}.In(img.Rect)) || cover <= 0 {
		return
	}
	i := img.PixOffset(x, y)
	px := img.Pix[i : i+4 : i+4]
	px[0] = addSat(px[0], float64(c.R)*cover)
	px[1] = addSat(px[1], float64(c.G)*cover)
	px[2] = addSat(px[2], float64(c.B)*cover)
	px[3] = addSat(px[3], float64(c.A)*cover)
}

func addSat(v uint8, add float64) uint8 {
	s := float64(v) + add + 0.5
	if s >= 255 {
		return 255
	}
	return uint8(s)
}

// Rasterize draws fr into img with additive blending over the style's
// background. img is cleared first.
func Rasterize(img *image.RGBA, fr *Frame, st Style) {
	fillRGBA(img.Pix, st.Background)

	lc := st.Premultiplied(st.LineOpacity)
	for _, l := range fr.Lines {
		drawLine(img, l, lc)
	}
	pc := st.Premultiplied(st.PointOpacity)
	for _, d := range fr.Dots {
		drawDot(img, d, pc)
	}
}

// drawLine steps along the major axis one pixel at a time.
func drawLine(img *image.RGBA, l Line, c color.RGBA) {
	dx, dy := l.X1-l.X0, l.Y1-l.Y0
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps == 0 {
		addRGBA(img, int(math.Floor(l.X0)), int(math.Floor(l.Y0)), c, 1)
		return
	}
	// Segments far outside the viewport are clipped by step count alone.
	if steps > 8*(img.Rect.Dx()+img.Rect.Dy()) {
		return
	}
	sx, sy := dx/float64(steps), dy/float64(steps)
	x, y := l.X0, l.Y0
	for i := 0; i <= steps; i++ {
		addRGBA(img, int(math.Floor(x)), int(math.Floor(y)), c, 1)
		x += sx
		y += sy
	}
}

// drawDot fills a disc, with at least a single pixel for tiny radii.
func drawDot(img *image.RGBA, d Dot, c color.RGBA) {
	r := math.Max(d.Radius, 0.5)
	minX, maxX := int(math.Floor(d.X-r)), int(math.Ceil(d.X+r))
	minY, maxY := int(math.Floor(d.Y-r)), int(math.Ceil(d.Y+r))
	r2 := r * r
	hit := false
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			cx, cy := float64(x)+0.5-d.X, float64(y)+0.5-d.Y
			if cx*cx+cy*cy <= r2 {
				addRGBA(img, x, y, c, 1)
				hit = true
			}
		}
	}
	if !hit {
		addRGBA(img, int(math.Floor(d.X)), int(math.Floor(d.Y)), c, 1)
	}
}
