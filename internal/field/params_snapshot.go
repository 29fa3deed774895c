package field

import (
	"strconv"

	"driftfield/internal/core"
)

// Parameters reports the effective configuration grouped for display.
func (f *Field) Parameters() core.ParameterSnapshot {
	c := f.cfg
	groups := []core.ParameterGroup{
		{
			Name: "Particles",
			Params: []core.Parameter{
				intParam("particles", "Particles", c.Particles),
				floatParam("bound", "Bound", c.Bound),
				floatParam("spread", "Seed spread", c.Spread),
				floatParam("max_speed", "Max speed", c.MaxSpeed),
				int64Param("seed", "Seed", c.Seed),
			},
		},
		{
			Name: "Connections",
			Params: []core.Parameter{
				intParam("segments", "Segment pool", c.Segments),
				floatParam("connection_distance", "Connection distance", c.ConnectionDistance),
				intParam("scan_radius", "Scan radius (cells)", c.ScanRadius),
				intParam("nearest_candidates", "Nearest candidates", c.NearestCandidates),
				intParam("max_per_particle", "Max per particle", c.MaxPerParticle),
			},
		},
		{
			Name: "Cadence",
			Params: []core.Parameter{
				intParam("motion_every", "Motion every N ticks", c.MotionEvery),
				intParam("connect_every", "Connect every N ticks", c.ConnectEvery),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
