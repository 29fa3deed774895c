package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"driftfield/internal/field"
	"driftfield/internal/scene"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExampleParses(t *testing.T) {
	f, err := Parse(Example)
	require.NoError(t, err)
	assert.Equal(t, "classic", f.Preset())
	assert.Equal(t, []string{"Vorizon", "8140", "Mishapolk"}, f.Typewriter.Word)
	require.Contains(t, f.Section, "about")
	assert.Equal(t, 640.0, f.Section["about"].Height)
}

func TestResolveDefaults(t *testing.T) {
	s, err := Resolve("", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultPreset, s.Preset)
	assert.Equal(t, field.DefaultConfig(), s.Field)
	assert.Equal(t, scene.DefaultCameraConfig(), s.Camera)
	assert.Equal(t, DefaultSite(), s.Site)
}

func TestResolvePrecedence(t *testing.T) {
	f, err := Parse(`[field]
preset = sparse
particles = 90
connection-distance = 180
`)
	require.NoError(t, err)

	s, err := Resolve("", f, map[string]string{"connection_distance": "220"})
	require.NoError(t, err)
	assert.Equal(t, "sparse", s.Preset)
	assert.Equal(t, 90, s.Field.Particles, "file overrides the preset")
	assert.Equal(t, 220.0, s.Field.ConnectionDistance, "flags override the file")
	assert.Equal(t, 160, s.Field.Segments, "untouched keys keep the preset value")

	s, err = Resolve("dense", f, nil)
	require.NoError(t, err)
	assert.Equal(t, "dense", s.Preset)
	assert.Equal(t, 900, s.Field.Segments)
}

func TestResolveUnknownPreset(t *testing.T) {
	_, err := Resolve("nebula", nil, nil)
	assert.ErrorIs(t, err, ErrUnknownPreset)

	_, err = Parse("[field]\npreset = nebula\n")
	assert.ErrorIs(t, err, ErrUnknownPreset)
}

func TestSectionsOrderedAndValidated(t *testing.T) {
	f, err := Parse(`[section "work"]
height = 300
order = 3

[section "home"]
title = Start
height = 500
order = 1

[section "about"]
height = 400
order = 2

[skill "Rust"]
level = 40

[skill "Go"]
level = 95
`)
	require.NoError(t, err)
	site := f.ApplySite(DefaultSite())

	var ids []string
	for _, s := range site.Sections {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"home", "about", "work"}, ids)
	assert.Equal(t, "Start", site.Sections[0].Title)
	assert.Equal(t, "about", site.Sections[1].Title, "title falls back to the ID")
	assert.Equal(t, []Skill{{"Go", 95}, {"Rust", 40}}, site.Skills)
	assert.Equal(t, DefaultSite().Stats, site.Stats)

	_, err = Parse("[section \"home\"]\ntitle = Home\n")
	assert.ErrorIs(t, err, ErrInvalidSection)
}

func TestTimingAndCameraOverrides(t *testing.T) {
	f, err := Parse(`[camera]
fov = 60
[typewriter]
type-ms = 80
hold-ms = 1000
`)
	require.NoError(t, err)
	s, err := Resolve("", f, nil)
	require.NoError(t, err)
	assert.Equal(t, 60.0, s.Camera.FOV)
	assert.Equal(t, 750.0, s.Camera.Distance)
	assert.Equal(t, 80*time.Millisecond, s.Timing.Type)
	assert.Equal(t, 50*time.Millisecond, s.Timing.Delete)
	assert.Equal(t, time.Second, s.Timing.Hold)
}

func TestLoadFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.ini")
	require.NoError(t, os.WriteFile(path, []byte(Example), 0o644))

	f, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 64.0, f.Page.Header)

	_, err = Load(filepath.Join(t.TempDir(), "missing.ini"))
	assert.Error(t, err)
}
