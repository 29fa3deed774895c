// Package config reads the optional INI-style scene file and merges it with
// presets and command-line overrides.
package config

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"driftfield/internal/field"
	"driftfield/internal/scene"
	"driftfield/internal/typewriter"

	"gopkg.in/gcfg.v1"
)

var (
	// ErrUnknownPreset is returned when a preset name is not registered.
	ErrUnknownPreset = errors.New("unknown preset")
	// ErrInvalidSection is returned for a section without a positive height.
	ErrInvalidSection = errors.New("invalid section")
)

// Example is a complete scene file with every supported key.
const Example = `[field]
# One of classic, dense, sparse.
preset = classic
# Overrides; zero or absent keeps the preset value.
# particles = 300
# segments = 400
# connection-distance = 200
# nearest-candidates = 5
# max-per-particle = 4
# max-speed = 0.8
# seed = 1337

[camera]
# fov = 75
# distance = 750
# follow-range = 200

[page]
header = 64
about = Backend engineer who likes small binaries.
tech = Go
tech = ebiten

[typewriter]
word = Vorizon
word = 8140
word = Mishapolk
# type-ms = 100
# delete-ms = 50
# hold-ms = 2000
# next-ms = 500

[section "home"]
title = Home
height = 720
order = 1

[section "about"]
title = About
height = 640
order = 2

[skill "Go"]
level = 90

[stat "Coverage"]
value = 82
`

// File mirrors the scene file layout.
type File struct {
	Field struct {
		Preset             string
		Particles          int
		Segments           int
		ConnectionDistance float64 `gcfg:"connection-distance"`
		NearestCandidates  int     `gcfg:"nearest-candidates"`
		MaxPerParticle     int     `gcfg:"max-per-particle"`
		MaxSpeed           float64 `gcfg:"max-speed"`
		Seed               int64
	}
	Camera struct {
		Fov         float64
		Distance    float64
		FollowRange float64 `gcfg:"follow-range"`
	}
	Page struct {
		Header float64
		About  []string
		Tech   []string
	}
	Typewriter struct {
		Word     []string
		TypeMs   int `gcfg:"type-ms"`
		DeleteMs int `gcfg:"delete-ms"`
		HoldMs   int `gcfg:"hold-ms"`
		NextMs   int `gcfg:"next-ms"`
	}
	Section map[string]*SectionConfig
	Skill   map[string]*struct{ Level float64 }
	Stat    map[string]*struct{ Value float64 }
}

// SectionConfig describes one page section.
type SectionConfig struct {
	Title  string
	Height float64
	Order  int
}

// Load reads and validates a scene file.
func Load(path string) (*File, error) {
	var f File
	if err := gcfg.ReadFileInto(&f, path); err != nil {
		return nil, fmt.Errorf("reading scene file %s: %w", path, err)
	}
	if err := f.validate(); err != nil {
		return nil, fmt.Errorf("scene file %s: %w", path, err)
	}
	return &f, nil
}

// Parse reads a scene file from a string.
func Parse(text string) (*File, error) {
	var f File
	if err := gcfg.ReadStringInto(&f, text); err != nil {
		return nil, fmt.Errorf("parsing scene file: %w", err)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *File) validate() error {
	if f.Field.Preset != "" {
		if _, ok := field.Presets()[f.Field.Preset]; !ok {
			return fmt.Errorf("%w %q", ErrUnknownPreset, f.Field.Preset)
		}
	}
	for id, s := range f.Section {
		if s == nil || s.Height <= 0 {
			return fmt.Errorf("%w %q: height must be positive", ErrInvalidSection, id)
		}
	}
	return nil
}

// Preset returns the preset named in the file, or "".
func (f *File) Preset() string {
	if f == nil {
		return ""
	}
	return f.Field.Preset
}

// ApplyField overrides the non-zero field keys onto c.
func (f *File) ApplyField(c field.Config) field.Config {
	if f == nil {
		return c
	}
	fc := f.Field
	if fc.Particles > 0 {
		c.Particles = fc.Particles
	}
	if fc.Segments > 0 {
		c.Segments = fc.Segments
	}
	if fc.ConnectionDistance > 0 {
		c.ConnectionDistance = fc.ConnectionDistance
	}
	if fc.NearestCandidates > 0 {
		c.NearestCandidates = fc.NearestCandidates
	}
	if fc.MaxPerParticle > 0 {
		c.MaxPerParticle = fc.MaxPerParticle
	}
	if fc.MaxSpeed > 0 {
		c.MaxSpeed = fc.MaxSpeed
	}
	if fc.Seed != 0 {
		c.Seed = fc.Seed
	}
	return c
}

// ApplyCamera overrides the non-zero camera keys onto c.
func (f *File) ApplyCamera(c scene.CameraConfig) scene.CameraConfig {
	if f == nil {
		return c
	}
	if f.Camera.Fov > 0 {
		c.FOV = f.Camera.Fov
	}
	if f.Camera.Distance > 0 {
		c.Distance = f.Camera.Distance
	}
	if f.Camera.FollowRange > 0 {
		c.FollowRange = f.Camera.FollowRange
	}
	return c
}

// ApplyTiming overrides the non-zero typewriter delays onto t.
func (f *File) ApplyTiming(t typewriter.Timing) typewriter.Timing {
	if f == nil {
		return t
	}
	tw := f.Typewriter
	if tw.TypeMs > 0 {
		t.Type = time.Duration(tw.TypeMs) * time.Millisecond
	}
	if tw.DeleteMs > 0 {
		t.Delete = time.Duration(tw.DeleteMs) * time.Millisecond
	}
	if tw.HoldMs > 0 {
		t.Hold = time.Duration(tw.HoldMs) * time.Millisecond
	}
	if tw.NextMs > 0 {
		t.Next = time.Duration(tw.NextMs) * time.Millisecond
	}
	return t
}

// ApplySite replaces the parts of s the file defines. Sections are ordered by
// their order key, then by ID.
func (f *File) ApplySite(s Site) Site {
	if f == nil {
		return s
	}
	if f.Page.Header > 0 {
		s.Header = f.Page.Header
	}
	if len(f.Page.About) > 0 {
		s.About = append([]string(nil), f.Page.About...)
	}
	if len(f.Page.Tech) > 0 {
		s.Tech = append([]string(nil), f.Page.Tech...)
	}
	if len(f.Typewriter.Word) > 0 {
		s.Words = append([]string(nil), f.Typewriter.Word...)
	}
	if len(f.Section) > 0 {
		ids := make([]string, 0, len(f.Section))
		for id := range f.Section {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool {
			a, b := f.Section[ids[i]], f.Section[ids[j]]
			if a.Order != b.Order {
				return a.Order < b.Order
			}
			return ids[i] < ids[j]
		})
		s.Sections = s.Sections[:0:0]
		for _, id := range ids {
			sc := f.Section[id]
			title := sc.Title
			if title == "" {
				title = id
			}
			s.Sections = append(s.Sections, scene.Section{ID: id, Title: title, Height: sc.Height})
		}
	}
	if len(f.Skill) > 0 {
		s.Skills = s.Skills[:0:0]
		for _, name := range sortedKeys(f.Skill) {
			s.Skills = append(s.Skills, Skill{Name: name, Level: f.Skill[name].Level})
		}
	}
	if len(f.Stat) > 0 {
		s.Stats = s.Stats[:0:0]
		for _, label := range sortedKeys(f.Stat) {
			s.Stats = append(s.Stats, Stat{Label: label, Value: f.Stat[label].Value})
		}
	}
	return s
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
