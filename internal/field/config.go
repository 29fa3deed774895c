package field

import "strconv"

// Config controls the particle field dimensions and connection tuning.
type Config struct {
	Particles int
	Segments  int

	// Bound is the half-width of the cube particles bounce inside.
	Bound float64
	// Spread is the edge length of the cube particles are seeded in.
	Spread float64
	// MaxSpeed is the width of the per-axis velocity range, centred on zero.
	MaxSpeed float64

	ConnectionDistance float64
	ScanRadius         int
	NearestCandidates  int
	MaxPerParticle     int

	MotionEvery  int
	ConnectEvery int

	Seed int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Particles:          300,
		Segments:           400,
		Bound:              500,
		Spread:             1000,
		MaxSpeed:           0.8,
		ConnectionDistance: 200,
		ScanRadius:         2,
		NearestCandidates:  5,
		MaxPerParticle:     4,
		MotionEvery:        2,
		ConnectEvery:       3,
		Seed:               1337,
	}
}

// CellSize returns the spatial grid cell edge length.
func (c Config) CellSize() float64 { return c.ConnectionDistance / 2 }

// FromMap populates a Config from a string map, starting from DefaultConfig.
func FromMap(cfg map[string]string) Config {
	return ApplyMap(DefaultConfig(), cfg)
}

// ApplyMap overrides fields of c from flag-style key/value pairs. Values that
// fail to parse or are out of range are ignored.
func ApplyMap(c Config, cfg map[string]string) Config {
	if cfg == nil {
		return c
	}
	if v, ok := cfg["particles"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Particles = parsed
		}
	}
	if v, ok := cfg["segments"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Segments = parsed
		}
	}
	if v, ok := cfg["bound"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Bound = parsed
		}
	}
	if v, ok := cfg["spread"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Spread = parsed
		}
	}
	if v, ok := cfg["max_speed"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.MaxSpeed = parsed
		}
	}
	if v, ok := cfg["connection_distance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.ConnectionDistance = parsed
		}
	}
	if v, ok := cfg["scan_radius"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.ScanRadius = parsed
		}
	}
	if v, ok := cfg["nearest_candidates"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.NearestCandidates = parsed
		}
	}
	if v, ok := cfg["max_per_particle"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.MaxPerParticle = parsed
		}
	}
	if v, ok := cfg["motion_every"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.MotionEvery = parsed
		}
	}
	if v, ok := cfg["connect_every"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.ConnectEvery = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

func (c Config) sanitized() Config {
	d := DefaultConfig()
	if c.Particles <= 0 {
		c.Particles = d.Particles
	}
	if c.Segments < 0 {
		c.Segments = 0
	}
	if c.Bound <= 0 {
		c.Bound = d.Bound
	}
	if c.ConnectionDistance <= 0 {
		c.ConnectionDistance = d.ConnectionDistance
	}
	if c.ScanRadius < 0 {
		c.ScanRadius = 0
	}
	if c.MotionEvery <= 0 {
		c.MotionEvery = 1
	}
	if c.ConnectEvery <= 0 {
		c.ConnectEvery = 1
	}
	return c
}
