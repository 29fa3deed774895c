package config

import (
	"driftfield/internal/core"
	"driftfield/internal/scene"
)

// Skill is a labelled bar filled to Level percent.
type Skill struct {
	Name  string
	Level float64
}

// Stat is a labelled ring filled to Value percent.
type Stat struct {
	Label string
	Value float64
}

// Site is the page content shown over the background.
type Site struct {
	Header   float64
	Sections []scene.Section
	Words    []string
	About    []string
	Skills   []Skill
	Stats    []Stat
	Tech     []string
}

// DefaultSite returns the stock portfolio layout.
func DefaultSite() Site {
	return Site{
		Header: 64,
		Sections: []scene.Section{
			{ID: scene.SectionHome, Title: "Home", Height: 720},
			{ID: scene.SectionAbout, Title: "About", Height: 640},
			{ID: "skills", Title: "Skills", Height: 520},
			{ID: "stats", Title: "Stats", Height: 420},
			{ID: "tech", Title: "Tech", Height: 480},
		},
		Words: []string{"Vorizon", "8140", "Mishapolk"},
		About: []string{
			"Backend engineer who likes small binaries and fast feedback loops.",
			"Most days are spent on services, build tooling and the odd visualisation.",
		},
		Skills: []Skill{
			{Name: "Go", Level: 90},
			{Name: "Distributed systems", Level: 75},
			{Name: "Graphics", Level: 60},
		},
		Stats: []Stat{
			{Label: "Uptime", Value: 99},
			{Label: "Coverage", Value: 82},
			{Label: "Coffee", Value: 64},
		},
		Tech: []string{"Go", "ebiten", "tcell", "PostgreSQL", "Kubernetes", "Linux"},
	}
}

// Page builds the scrollable layout for a viewport.
func (s Site) Page(viewport core.Size) *scene.Page {
	return scene.NewPage(viewport, s.Header, s.Sections...)
}
