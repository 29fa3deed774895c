package term

import (
	"testing"
	"time"

	"driftfield/internal/config"
	"driftfield/internal/core"
	"driftfield/internal/render"
	"driftfield/internal/stage"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellMapping(t *testing.T) {
	col, row := CellOf(17, 33)
	assert.Equal(t, 2, col)
	assert.Equal(t, 2, row)

	col, row = CellOf(-1, -1)
	assert.Equal(t, -1, col)
	assert.Equal(t, -1, row)

	x, y := CenterOf(2, 2)
	assert.Equal(t, 20.0, x)
	assert.Equal(t, 40.0, y)

	assert.Equal(t, core.Size{W: 640, H: 384}, PixelSize(80, 24))
}

func TestPaintDrawsLinesUnderDots(t *testing.T) {
	c := NewCanvas(10, 4)
	fr := &render.Frame{
		Size:  PixelSize(10, 4),
		Lines: []render.Line{{X0: 4, Y0: 8, X1: 76, Y1: 8}},
		Dots:  []render.Dot{{X: 4, Y: 8, Radius: 2}},
	}
	c.Paint(fr, render.DefaultStyle())

	assert.Equal(t, RuneDot, c.At(0, 0).Rune)
	for col := 1; col < 10; col++ {
		assert.Equal(t, RuneLine, c.At(col, 0).Rune, "col %d", col)
	}
	assert.Equal(t, ' ', c.At(0, 1).Rune)
	assert.InDelta(t, 1.0, c.At(0, 0).Glow, 1e-9, "line and dot glow add up and clamp")
	assert.InDelta(t, 0.3, c.At(5, 0).Glow, 1e-9)
}

func TestPaintClipsOutsideCanvas(t *testing.T) {
	c := NewCanvas(4, 2)
	fr := &render.Frame{
		Lines: []render.Line{{X0: -100, Y0: 8, X1: 100, Y1: 8}},
		Dots:  []render.Dot{{X: 500, Y: 500}},
	}
	assert.NotPanics(t, func() { c.Paint(fr, render.DefaultStyle()) })
	for col := 0; col < 4; col++ {
		assert.Equal(t, RuneLine, c.At(col, 0).Rune)
	}
	assert.Equal(t, ' ', c.At(99, 99).Rune)

	c.Paint(nil, render.DefaultStyle())
	assert.Equal(t, ' ', c.At(0, 0).Rune)
}

func TestCanvasResize(t *testing.T) {
	c := NewCanvas(4, 2)
	c.Resize(8, 3)
	cols, rows := c.Size()
	assert.Equal(t, 8, cols)
	assert.Equal(t, 3, rows)
	assert.Equal(t, ' ', c.At(7, 2).Rune)

	c.Resize(-1, 5)
	cols, _ = c.Size()
	assert.Zero(t, cols)
}

func newTestSession(t *testing.T) (*Session, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	s, err := config.Resolve("", nil, nil)
	require.NoError(t, err)
	st := stage.New(s, PixelSize(80, 24))
	return NewSession(screen, st), screen
}

func TestSessionResizeAndScroll(t *testing.T) {
	sess, _ := newTestSession(t)
	now := time.Unix(10, 0)

	assert.True(t, sess.Handle(now, tcell.NewEventResize(100, 30)))
	cols, rows := sess.canvas.Size()
	assert.Equal(t, 100, cols)
	assert.Equal(t, 30, rows)
	assert.Equal(t, PixelSize(100, 30), sess.st.Driver.Camera().Size())

	assert.True(t, sess.Handle(now, tcell.NewEventMouse(3, 3, tcell.WheelDown, tcell.ModNone)))
	assert.Equal(t, float64(wheelStep), sess.st.Driver.Page().ScrollY())
}

func TestSessionDrawWritesTitleAndStatus(t *testing.T) {
	sess, screen := newTestSession(t)
	now := time.Unix(10, 0)
	for i := 0; i < 5; i++ {
		sess.st.Frame(now)
		now = now.Add(20 * time.Millisecond)
	}
	sess.Draw()

	assert.Equal(t, uint64(5), sess.st.Field.Ticks())
	dots := 0
	cols, rows := sess.canvas.Size()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if sess.canvas.At(col, row).Rune == RuneDot {
				dots++
			}
		}
	}
	assert.Positive(t, dots)

	r, _, _, _ := screen.GetContent(0, 0)
	assert.Equal(t, 'H', r)
	r, _, _, _ = screen.GetContent(0, 23)
	assert.Equal(t, '[', r)
}

func TestDefaultTerminalStageTicks(t *testing.T) {
	s, err := config.Resolve("", nil, nil)
	require.NoError(t, err)
	st := stage.New(s, PixelSize(80, 24))

	now := time.Unix(10, 0)
	for i := 0; i < 30; i++ {
		st.Frame(now)
		now = now.Add(20 * time.Millisecond)
	}
	assert.True(t, st.Driver.Page().HomeVisible())
	assert.Equal(t, uint64(30), st.Field.Ticks())
	assert.Positive(t, st.Field.Stats().Visible)
	assert.Contains(t, st.Status(), "live | tick 30")
}
