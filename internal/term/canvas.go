// Package term renders the field into a character grid and drives it from a
// tcell screen.
package term

import (
	"math"

	"driftfield/internal/core"
	"driftfield/internal/render"
)

// Virtual pixel size of one terminal cell. The stage is laid out in these
// pixels so the camera keeps the aspect of the terminal window.
const (
	CellW = 8
	CellH = 16
)

const (
	// RuneLine marks a cell crossed by a connection.
	RuneLine = '·'
	// RuneDot marks a cell holding a particle.
	RuneDot = '•'
)

// Cell is one character of the canvas. Glow accumulates the opacity of
// everything drawn into it and is clamped to 1 when read.
type Cell struct {
	Rune rune
	Glow float64
}

// Canvas is a row-major grid of cells.
type Canvas struct {
	cols, rows int
	cells      []Cell
}

// NewCanvas allocates a canvas of cols by rows cells.
func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{}
	c.Resize(cols, rows)
	return c
}

// PixelSize returns the viewport size matching a terminal of cols by rows.
func PixelSize(cols, rows int) core.Size {
	return core.Size{W: cols * CellW, H: rows * CellH}
}

// Size returns the canvas dimensions in cells.
func (c *Canvas) Size() (int, int) { return c.cols, c.rows }

// Resize reallocates the canvas when the dimensions change.
func (c *Canvas) Resize(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	c.cols, c.rows = cols, rows
	n := cols * rows
	if cap(c.cells) < n {
		c.cells = make([]Cell, n)
	}
	c.cells = c.cells[:n]
	c.Clear()
}

// Clear blanks every cell.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = Cell{Rune: ' '}
	}
}

// At returns the cell at (col, row). Out of range positions read as blank.
func (c *Canvas) At(col, row int) Cell {
	if !c.inside(col, row) {
		return Cell{Rune: ' '}
	}
	cell := c.cells[row*c.cols+col]
	cell.Glow = math.Min(cell.Glow, 1)
	return cell
}

// CellOf maps a viewport pixel to the cell containing it.
func CellOf(x, y float64) (int, int) {
	return int(math.Floor(x / CellW)), int(math.Floor(y / CellH))
}

// CenterOf returns the viewport pixel at the centre of a cell.
func CenterOf(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * CellW, (float64(row) + 0.5) * CellH
}

// Paint clears the canvas and draws fr into it, lines first so that
// particles stay on top.
func (c *Canvas) Paint(fr *render.Frame, st render.Style) {
	c.Clear()
	if fr == nil {
		return
	}
	for _, l := range fr.Lines {
		c.line(l, st.LineOpacity)
	}
	for _, d := range fr.Dots {
		col, row := CellOf(d.X, d.Y)
		c.plot(col, row, RuneDot, st.PointOpacity)
	}
}

func (c *Canvas) line(l render.Line, opacity float64) {
	c0, r0 := CellOf(l.X0, l.Y0)
	c1, r1 := CellOf(l.X1, l.Y1)
	dc, dr := c1-c0, r1-r0
	steps := max(abs(dc), abs(dr))
	if steps == 0 {
		c.plot(c0, r0, RuneLine, opacity)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		col := c0 + int(math.Round(float64(dc)*t))
		row := r0 + int(math.Round(float64(dr)*t))
		c.plot(col, row, RuneLine, opacity)
	}
}

func (c *Canvas) plot(col, row int, r rune, opacity float64) {
	if !c.inside(col, row) {
		return
	}
	cell := &c.cells[row*c.cols+col]
	if cell.Rune != RuneDot {
		cell.Rune = r
	}
	cell.Glow += opacity
}

func (c *Canvas) inside(col, row int) bool {
	return col >= 0 && row >= 0 && col < c.cols && row < c.rows
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
