package app

import (
	"flag"
	"strings"

	"driftfield/internal/config"
)

// KVList collects repeatable key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

func (l *KVList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Map returns the pairs as a map. Entries without '=' are skipped.
func (l KVList) Map() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		out[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return out
}

// Config represents the command-line parameters shared by every host.
type Config struct {
	Preset string
	File   string
	TPS    int
	Seed   int64
	Width  int
	Height int
	Debug  bool
	Set    KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{TPS: 60, Width: 1280, Height: 720}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Preset, "preset", c.Preset, "field preset (classic, dense, sparse); overrides the scene file")
	fs.StringVar(&c.File, "config", c.File, "optional scene file (INI)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "particle seed; 0 keeps the preset seed")
	fs.IntVar(&c.Width, "width", c.Width, "viewport width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "viewport height in pixels")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "start with the debug overlay visible")
	fs.Var(&c.Set, "set", "field parameter override in key=value form (repeatable)")
}

// Settings loads the scene file, if any, and resolves the final settings.
func (c *Config) Settings() (config.Settings, error) {
	var file *config.File
	if c.File != "" {
		f, err := config.Load(c.File)
		if err != nil {
			return config.Settings{}, err
		}
		file = f
	}
	s, err := config.Resolve(c.Preset, file, c.Set.Map())
	if err != nil {
		return config.Settings{}, err
	}
	if c.Seed != 0 {
		s.Field.Seed = c.Seed
	}
	if c.TPS > 0 {
		s.Driver.FrameRate = c.TPS
	}
	return s, nil
}
