package field

import "sort"

// Factory returns the configuration of a named preset.
type Factory func() Config

var presets = map[string]Factory{}

// Register adds a preset under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	presets[name] = f
}

// Presets exposes the registry of available presets.
func Presets() map[string]Factory {
	return presets
}

// PresetNames returns the registered preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register("classic", DefaultConfig)
	Register("dense", func() Config {
		c := DefaultConfig()
		c.Particles = 600
		c.Segments = 900
		c.ConnectionDistance = 150
		return c
	})
	Register("sparse", func() Config {
		c := DefaultConfig()
		c.Particles = 120
		c.Segments = 160
		c.ConnectionDistance = 260
		c.MaxSpeed = 1.2
		return c
	})
}
