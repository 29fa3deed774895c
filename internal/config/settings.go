package config

import (
	"fmt"

	"driftfield/internal/field"
	"driftfield/internal/scene"
	"driftfield/internal/typewriter"
)

// DefaultPreset is used when neither the flags nor the file name one.
const DefaultPreset = "classic"

// Settings is everything a host needs to assemble a scene.
type Settings struct {
	Preset string
	Field  field.Config
	Camera scene.CameraConfig
	Driver scene.DriverConfig
	Timing typewriter.Timing
	Site   Site
}

// Resolve merges, in increasing precedence, the preset, the scene file and
// the key=value overrides. A non-empty preset argument wins over the file's.
func Resolve(preset string, file *File, overrides map[string]string) (Settings, error) {
	if preset == "" {
		preset = file.Preset()
	}
	if preset == "" {
		preset = DefaultPreset
	}
	factory, ok := field.Presets()[preset]
	if !ok {
		return Settings{}, fmt.Errorf("%w %q (have %v)", ErrUnknownPreset, preset, field.PresetNames())
	}

	fc := file.ApplyField(factory())
	fc = field.ApplyMap(fc, overrides)

	return Settings{
		Preset: preset,
		Field:  fc,
		Camera: file.ApplyCamera(scene.DefaultCameraConfig()),
		Driver: scene.DefaultDriverConfig(),
		Timing: file.ApplyTiming(typewriter.DefaultTiming()),
		Site:   file.ApplySite(DefaultSite()),
	}, nil
}
