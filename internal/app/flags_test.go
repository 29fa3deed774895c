package app

import (
	"flag"
	"testing"

	"driftfield/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindAndResolve(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("field", flag.ContinueOnError)
	cfg.Bind(fs)

	require.NoError(t, fs.Parse([]string{
		"-preset", "sparse",
		"-seed", "9",
		"-tps", "30",
		"-set", "max_per_particle=2",
		"-set", "broken",
	}))

	s, err := cfg.Settings()
	require.NoError(t, err)
	assert.Equal(t, "sparse", s.Preset)
	assert.Equal(t, int64(9), s.Field.Seed)
	assert.Equal(t, 2, s.Field.MaxPerParticle)
	assert.Equal(t, 30, s.Driver.FrameRate)
}

func TestSettingsReportsBadInput(t *testing.T) {
	cfg := NewConfig()
	cfg.Preset = "nebula"
	_, err := cfg.Settings()
	assert.ErrorIs(t, err, config.ErrUnknownPreset)

	cfg = NewConfig()
	cfg.File = "does-not-exist.ini"
	_, err = cfg.Settings()
	assert.Error(t, err)
}

func TestKVListMap(t *testing.T) {
	l := KVList{"a=1", " b = two ", "c", "d=x=y"}
	assert.Equal(t, map[string]string{"a": "1", "b": "two", "d": "x=y"}, l.Map())
	assert.Equal(t, "a=1, b = two ,c,d=x=y", l.String())
}
