package scene

import "driftfield/internal/core"

// Well-known section identifiers. The background animates while either of
// them is on screen and the camera follows the pointer only over home.
const (
	SectionHome  = "home"
	SectionAbout = "about"
)

// Section is a vertical band of the page.
type Section struct {
	ID     string
	Title  string
	Height float64

	// Top is the document offset, assigned by NewPage.
	Top float64
}

// Rect is a viewport-relative bounding box.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// Contains reports whether (x, y) lies inside r, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x <= r.Right && y >= r.Top && y <= r.Bottom
}

// Page is a single scrolling column of sections under a fixed header.
type Page struct {
	sections []Section
	index    map[string]int
	viewport core.Size
	header   float64
	scrollY  float64

	homeVisible   bool
	pointerInHome bool
}

// NewPage stacks sections top to bottom from the document origin; the header
// is fixed and overlays the page. Sections with a duplicate ID shadow earlier
// ones for lookups.
func NewPage(viewport core.Size, header float64, sections ...Section) *Page {
	p := &Page{
		index:         make(map[string]int, len(sections)),
		viewport:      viewport,
		header:        header,
		homeVisible:   true,
		pointerInHome: true,
	}
	top := 0.0
	for _, s := range sections {
		if s.Height < 0 {
			s.Height = 0
		}
		s.Top = top
		top += s.Height
		p.index[s.ID] = len(p.sections)
		p.sections = append(p.sections, s)
	}
	return p
}

// Sections returns the sections in document order.
func (p *Page) Sections() []Section { return p.sections }

// Section looks up a section by ID.
func (p *Page) Section(id string) (Section, bool) {
	i, ok := p.index[id]
	if !ok {
		return Section{}, false
	}
	return p.sections[i], true
}

// Header returns the fixed header height.
func (p *Page) Header() float64 { return p.header }

// Viewport returns the viewport size.
func (p *Page) Viewport() core.Size { return p.viewport }

// Resize changes the viewport and re-clamps the scroll offset.
func (p *Page) Resize(size core.Size) {
	p.viewport = size
	p.SetScroll(p.scrollY)
}

// Height returns the full document height.
func (p *Page) Height() float64 {
	if len(p.sections) == 0 {
		return 0
	}
	last := p.sections[len(p.sections)-1]
	return last.Top + last.Height
}

// MaxScroll returns the largest valid scroll offset.
func (p *Page) MaxScroll() float64 {
	m := p.Height() - float64(p.viewport.H)
	if m < 0 {
		return 0
	}
	return m
}

// ScrollY returns the current scroll offset.
func (p *Page) ScrollY() float64 { return p.scrollY }

// SetScroll moves to y, clamped to the document.
func (p *Page) SetScroll(y float64) {
	if y < 0 {
		y = 0
	}
	if m := p.MaxScroll(); y > m {
		y = m
	}
	p.scrollY = y
}

// ScrollBy moves the scroll offset by dy.
func (p *Page) ScrollBy(dy float64) { p.SetScroll(p.scrollY + dy) }

// Rect returns the viewport-relative bounding box of a section.
func (p *Page) Rect(id string) (Rect, bool) {
	s, ok := p.Section(id)
	if !ok {
		return Rect{}, false
	}
	top := s.Top - p.scrollY
	return Rect{Left: 0, Top: top, Right: float64(p.viewport.W), Bottom: top + s.Height}, true
}

// AnchorOffset returns the scroll offset that brings a section into view.
// The about section is aligned under the header, the others to the top.
func (p *Page) AnchorOffset(id string) (float64, bool) {
	s, ok := p.Section(id)
	if !ok {
		return 0, false
	}
	y := s.Top
	if id == SectionAbout {
		y -= p.header
	}
	if y < 0 {
		y = 0
	}
	if m := p.MaxScroll(); y > m {
		y = m
	}
	return y, true
}

// CheckVisibility recomputes whether the background should animate. It
// returns false and leaves the flag untouched when home or about is missing.
func (p *Page) CheckVisibility() bool {
	home, ok := p.Rect(SectionHome)
	if !ok {
		return false
	}
	about, ok := p.Rect(SectionAbout)
	if !ok {
		return false
	}
	// Any overlap with the viewport counts. Requiring a section to fit
	// entirely would stop the field at the top of the page whenever the
	// viewport is shorter than the home section.
	vh := float64(p.viewport.H)
	p.homeVisible = overlaps(home, vh) || overlaps(about, vh)
	return true
}

func overlaps(r Rect, vh float64) bool {
	return r.Top < vh && r.Bottom > 0
}

// CheckPointer records whether the pointer is over the home section. It
// returns false and leaves the flag untouched when home is missing.
func (p *Page) CheckPointer(x, y float64) bool {
	home, ok := p.Rect(SectionHome)
	if !ok {
		return false
	}
	p.pointerInHome = home.Contains(x, y)
	return true
}

// HomeVisible reports the result of the last visibility check.
func (p *Page) HomeVisible() bool { return p.homeVisible }

// PointerInHome reports the result of the last pointer check.
func (p *Page) PointerInHome() bool { return p.pointerInHome }
