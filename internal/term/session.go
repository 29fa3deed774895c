package term

import (
	"context"
	"fmt"
	"time"

	"driftfield/internal/render"
	"driftfield/internal/stage"

	"github.com/gdamore/tcell/v2"
)

const (
	wheelStep = 60
	arrowStep = 40
	frameTick = 16 * time.Millisecond
)

// Session drives a stage from a tcell screen: input events feed the scene
// driver and a ticker paints the canvas.
type Session struct {
	screen tcell.Screen
	st     *stage.Stage
	canvas *Canvas
	style  render.Style
	bg     tcell.Style
}

// NewSession binds st to an initialised screen.
func NewSession(screen tcell.Screen, st *stage.Stage) *Session {
	cols, rows := screen.Size()
	style := st.Builder.Style()
	return &Session{
		screen: screen,
		st:     st,
		canvas: NewCanvas(cols, rows),
		style:  style,
		bg:     tcell.StyleDefault.Background(rgb(style.Background.R, style.Background.G, style.Background.B)),
	}
}

// Run polls events and paints until ctx is done or the user quits.
func (s *Session) Run(ctx context.Context) error {
	s.screen.EnableMouse(tcell.MouseMotionEvents)
	defer s.screen.DisableMouse()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frameTick)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !s.Handle(time.Now(), ev) {
				return nil
			}
		case now := <-ticker.C:
			if s.st.Frame(now).Ran {
				s.Draw()
			}
		}
	}
}

// Handle applies one input event. It returns false when the user asked to
// quit.
func (s *Session) Handle(now time.Time, ev tcell.Event) bool {
	d := s.st.Driver
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return s.key(now, ev)
	case *tcell.EventMouse:
		x, y := ev.Position()
		px, py := CenterOf(x, y)
		d.Pointer(now, px, py)
		switch btn := ev.Buttons(); {
		case btn&tcell.WheelUp != 0:
			d.Scroll(now, -wheelStep)
		case btn&tcell.WheelDown != 0:
			d.Scroll(now, wheelStep)
		}
	case *tcell.EventResize:
		cols, rows := ev.Size()
		s.canvas.Resize(cols, rows)
		d.Resize(now, PixelSize(cols, rows))
		s.screen.Sync()
	}
	return true
}

func (s *Session) key(now time.Time, ev *tcell.EventKey) bool {
	d := s.st.Driver
	page := d.Page()
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		d.Scroll(now, -arrowStep)
	case tcell.KeyDown:
		d.Scroll(now, arrowStep)
	case tcell.KeyPgUp:
		d.Scroll(now, -float64(page.Viewport().H)*0.9)
	case tcell.KeyPgDn:
		d.Scroll(now, float64(page.Viewport().H)*0.9)
	case tcell.KeyRune:
		r := ev.Rune()
		switch {
		case r == 'q':
			return false
		case r == ' ':
			d.SetPaused(!d.Paused())
		case r == 'n':
			if d.Paused() {
				d.Step()
			}
		case r == 'r':
			s.st.Reset(0)
		case r >= '1' && r <= '9':
			sections := page.Sections()
			if i := int(r - '1'); i < len(sections) {
				d.ScrollTo(sections[i].ID)
			}
		}
	}
	return true
}

// Draw paints the canvas and the two text rows onto the screen.
func (s *Session) Draw() {
	s.canvas.Paint(s.st.Render(), s.style)
	cols, rows := s.canvas.Size()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			cell := s.canvas.At(col, row)
			st := s.bg
			if cell.Rune != ' ' {
				st = st.Foreground(s.shade(cell.Glow))
			}
			s.screen.SetContent(col, row, cell.Rune, nil, st)
		}
	}
	fg := s.bg.Foreground(rgb(s.style.Color.R, s.style.Color.G, s.style.Color.B))
	s.text(0, 0, "Hi, I'm "+s.st.Title()+"_", fg.Bold(true))
	if rows > 1 {
		s.text(0, rows-1, s.status(), fg)
	}
	s.screen.Show()
}

func (s *Session) status() string {
	page := s.st.Driver.Page()
	current := ""
	for _, sec := range page.Sections() {
		if r, ok := page.Rect(sec.ID); ok && r.Top <= page.Header() && r.Bottom > page.Header() {
			current = sec.Title
		}
	}
	return fmt.Sprintf("[%s] %s", current, s.st.Status())
}

func (s *Session) text(col, row int, str string, st tcell.Style) {
	cols, _ := s.canvas.Size()
	for _, r := range str {
		if col >= cols {
			return
		}
		s.screen.SetContent(col, row, r, nil, st)
		col++
	}
}

// shade scales the field colour by a cell's glow over the background.
func (s *Session) shade(glow float64) tcell.Color {
	c := s.style.Premultiplied(glow)
	bg := s.style.Background
	return rgb(satAdd(c.R, bg.R), satAdd(c.G, bg.G), satAdd(c.B, bg.B))
}

func satAdd(a, b uint8) uint8 {
	if v := int(a) + int(b); v < 255 {
		return uint8(v)
	}
	return 255
}

func rgb(r, g, b uint8) tcell.Color {
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
