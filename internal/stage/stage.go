// Package stage assembles a field, its scene and the page effects into the
// object every host drives once per frame.
package stage

import (
	"fmt"
	"time"

	"driftfield/internal/config"
	"driftfield/internal/core"
	"driftfield/internal/field"
	"driftfield/internal/render"
	"driftfield/internal/reveal"
	"driftfield/internal/scene"
	"driftfield/internal/typewriter"
)

// Section IDs whose content gets dedicated reveal effects.
const (
	sectionStats = "stats"
	sectionTech  = "tech"
)

// Effects holds the scroll-driven animation state for the page content.
type Effects struct {
	Sections map[string]*reveal.Scrub
	Titles   map[string]*reveal.Toggle
	About    []*reveal.Toggle
	Stats    []*reveal.StatCircle
	Tech     []*reveal.Toggle
}

func newEffects(site config.Site, fps int) *Effects {
	e := &Effects{
		Sections: make(map[string]*reveal.Scrub, len(site.Sections)),
		Titles:   make(map[string]*reveal.Toggle, len(site.Sections)),
		About:    reveal.Stagger(len(site.About), 800*time.Millisecond, 200*time.Millisecond),
		Tech:     reveal.Stagger(len(site.Tech), 600*time.Millisecond, 100*time.Millisecond),
	}
	for _, s := range site.Sections {
		e.Sections[s.ID] = reveal.NewScrub(fps)
		e.Titles[s.ID] = reveal.NewToggle(800*time.Millisecond, 0)
	}
	for _, st := range site.Stats {
		e.Stats = append(e.Stats, reveal.NewStatCircle(st.Value))
	}
	return e
}

// Update advances every effect from the current section positions. Effects
// whose section is missing are left as they are.
func (e *Effects) Update(now time.Time, page *scene.Page) {
	vh := float64(page.Viewport().H)
	for id, s := range e.Sections {
		if r, ok := page.Rect(id); ok {
			s.Update(r.Top, vh)
		}
	}
	for id, t := range e.Titles {
		if r, ok := page.Rect(id); ok {
			t.Update(now, r.Top, vh)
		}
	}
	if r, ok := page.Rect(scene.SectionAbout); ok {
		for _, t := range e.About {
			t.Update(now, r.Top, vh)
		}
	}
	if r, ok := page.Rect(sectionStats); ok {
		for _, s := range e.Stats {
			s.Update(now, r.Top, vh)
		}
	}
	if r, ok := page.Rect(sectionTech); ok {
		for _, t := range e.Tech {
			t.Update(now, r.Top, vh)
		}
	}
}

// Stage bundles the objects a host drives every frame.
type Stage struct {
	Settings   config.Settings
	Field      *field.Field
	Driver     *scene.Driver
	Builder    *render.Builder
	Typewriter *typewriter.Typewriter
	Effects    *Effects

	title string
	last  scene.FrameResult
}

// New assembles a field, camera, page and effects for a viewport.
func New(s config.Settings, size core.Size) *Stage {
	f := field.New(s.Field)
	cam := scene.NewCamera(s.Camera, size)
	page := s.Site.Page(size)
	return &Stage{
		Settings:   s,
		Field:      f,
		Driver:     scene.NewDriver(f, cam, page, s.Driver),
		Builder:    render.NewBuilder(render.DefaultStyle()),
		Typewriter: typewriter.New(s.Site.Words, s.Timing),
		Effects:    newEffects(s.Site, s.Driver.FrameRate),
	}
}

// Frame runs the driver and, when the frame gate admitted the call, the page
// effects and the typewriter.
func (st *Stage) Frame(now time.Time) scene.FrameResult {
	res := st.Driver.Frame(now)
	if !res.Ran {
		return res
	}
	st.last = res
	st.Effects.Update(now, st.Driver.Page())
	st.title = st.Typewriter.Update(now)
	return res
}

// Title returns the current typewriter text.
func (st *Stage) Title() string { return st.title }

// Last returns the result of the last admitted frame.
func (st *Stage) Last() scene.FrameResult { return st.last }

// Reset reseeds the field. A zero seed uses the configured seed.
func (st *Stage) Reset(seed int64) {
	st.Field.Reset(seed)
}

// Render projects the field for the current camera.
func (st *Stage) Render() *render.Frame {
	return st.Builder.Build(st.Driver.Camera(), st.Field)
}

// Status returns a one-line summary for status bars and logs.
func (st *Stage) Status() string {
	fs := st.Field.Stats()
	state := "live"
	switch {
	case st.Driver.Paused():
		state = "paused"
	case !st.Driver.Page().HomeVisible():
		state = "idle"
	}
	return fmt.Sprintf("%s | tick %d | %d/%d links | %d cells | scroll %.0f",
		state, fs.Ticks, fs.Visible, fs.PoolSize, fs.OccupiedCells, st.Driver.Page().ScrollY())
}
