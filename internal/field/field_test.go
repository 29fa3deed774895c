package field

import (
	"cmp"
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pair struct{ a, b int }

func newPlaced(t *testing.T, cfg Config, pos ...[3]float32) *Field {
	t.Helper()
	cfg.Particles = len(pos)
	f := New(cfg)
	for i, p := range pos {
		f.Particles().Set(i, p, [3]float32{})
	}
	return f
}

func visiblePairs(p *Pool) []pair {
	var out []pair
	for _, s := range p.Segments() {
		if s.Visible {
			out = append(out, pair{s.From, s.To})
		}
	}
	return out
}

func TestTwoCloseParticlesConnectOnce(t *testing.T) {
	f := newPlaced(t, DefaultConfig(), [3]float32{0, 0, 0}, [3]float32{50, 0, 0})

	n := f.Connect()

	require.Equal(t, 1, n)
	assert.Equal(t, []pair{{0, 1}}, visiblePairs(f.Pool()))
	seg := f.Pool().At(0)
	assert.Equal(t, [3]float32{0, 0, 0}, seg.A)
	assert.Equal(t, [3]float32{50, 0, 0}, seg.B)
}

func TestDistantParticlesDoNotConnect(t *testing.T) {
	f := newPlaced(t, DefaultConfig(), [3]float32{0, 0, 0}, [3]float32{1000, 0, 0})

	assert.Equal(t, 0, f.Connect())
	assert.Empty(t, visiblePairs(f.Pool()))
}

func TestConnectionDistanceIsExclusive(t *testing.T) {
	f := newPlaced(t, DefaultConfig(), [3]float32{0, 0, 0}, [3]float32{200, 0, 0})
	assert.Equal(t, 0, f.Connect(), "pairs exactly at the connection distance are rejected")

	f = newPlaced(t, DefaultConfig(), [3]float32{0, 0, 0}, [3]float32{199.5, 0, 0})
	assert.Equal(t, 1, f.Connect())
}

func TestConnectionDistanceUsesWidenedDifferences(t *testing.T) {
	// One ULP above -100 and two ULPs below 100: the true gap is just under
	// 200 but the float32 difference rounds up to exactly 200.
	a := -math.Nextafter32(100, 101)
	b := math.Nextafter32(math.Nextafter32(100, 0), 0)
	require.Equal(t, float32(200), b-a)
	require.Less(t, float64(b)-float64(a), 200.0)

	f := newPlaced(t, DefaultConfig(), [3]float32{a, 0, 0}, [3]float32{b, 0, 0})
	assert.Equal(t, 1, f.Connect())
	assert.Equal(t, []pair{{0, 1}}, visiblePairs(f.Pool()))
}

func TestBounceInvertsVelocity(t *testing.T) {
	f := newPlaced(t, DefaultConfig(), [3]float32{499, 0, 0})
	f.Particles().Set(0, [3]float32{499, 0, 0}, [3]float32{10, 0, 0})

	f.Step()
	assert.Equal(t, [3]float32{509, 0, 0}, f.Particles().Position(0))
	assert.Equal(t, [3]float32{-10, 0, 0}, f.Particles().Velocity(0))

	f.Step()
	assert.Equal(t, [3]float32{499, 0, 0}, f.Particles().Position(0))
	assert.Equal(t, [3]float32{-10, 0, 0}, f.Particles().Velocity(0))
}

func TestMotionStepBounceProperty(t *testing.T) {
	f := New(DefaultConfig())
	ps := f.Particles()
	// Push a share of the particles right up to the walls.
	for i := 0; i < ps.Len(); i += 7 {
		p := ps.Position(i)
		v := ps.Velocity(i)
		p[i%3] = 499.9
		v[i%3] = 0.35
		ps.Set(i, p, v)
	}

	for step := 0; step < 50; step++ {
		before := append([]float32(nil), ps.Velocities...)
		f.Step()
		for k, pos := range ps.Positions {
			if pos > 500 || pos < -500 {
				if ps.Velocities[k] != -before[k] {
					t.Fatalf("step %d axis %d: position %v outside bound but velocity %v -> %v", step, k, pos, before[k], ps.Velocities[k])
				}
			} else if ps.Velocities[k] != before[k] {
				t.Fatalf("step %d axis %d: velocity changed inside bound", step, k)
			}
		}
	}
	assert.True(t, ps.Dirty())
}

func TestConnectionInvariantsOnRandomField(t *testing.T) {
	cfg := DefaultConfig()
	for _, seed := range []int64{1, 2, 3, 42, 1337} {
		f := New(cfg)
		f.Reset(seed)
		for tick := 0; tick < 30; tick++ {
			f.Tick()
			pool := f.Pool()
			perNear := map[int]int{}
			visible := 0
			for i, s := range pool.Segments() {
				if !s.Visible {
					continue
				}
				visible++
				if i >= pool.Used() {
					t.Fatalf("segment %d visible beyond claimed range %d", i, pool.Used())
				}
				if s.From >= s.To {
					t.Fatalf("pair (%d,%d) not ordered", s.From, s.To)
				}
				perNear[s.From]++
				if perNear[s.From] > cfg.MaxPerParticle {
					t.Fatalf("particle %d is near endpoint of %d segments", s.From, perNear[s.From])
				}
				if d2 := distSquared(append(s.A[:], s.B[:]...), 0, 1); d2 >= 200*200 {
					t.Fatalf("pair (%d,%d) at squared distance %v", s.From, s.To, d2)
				}
			}
			if visible > cfg.Segments {
				t.Fatalf("%d visible segments exceed pool", visible)
			}
			assert.Equal(t, pool.Used(), visible)
		}
	}
}

func TestNearestNeighboursWinAndPerParticleCap(t *testing.T) {
	pos := make([][3]float32, 8)
	for i := range pos {
		pos[i] = [3]float32{float32(10 * i), 0, 0}
	}
	f := newPlaced(t, DefaultConfig(), pos...)
	f.Connect()

	got := visiblePairs(f.Pool())
	require.GreaterOrEqual(t, len(got), 4)
	assert.Equal(t, []pair{{0, 1}, {0, 2}, {0, 3}, {0, 4}}, got[:4])
}

func TestGlobalCapStopsAtPoolSize(t *testing.T) {
	cfg := DefaultConfig()
	pos := make([][3]float32, cfg.Particles)
	for i := range pos {
		// All particles inside a 30-unit cube so every pair qualifies.
		pos[i] = [3]float32{float32(i % 30), float32((i / 30) % 10), float32(i % 7)}
	}
	f := newPlaced(t, cfg, pos...)

	assert.Equal(t, cfg.Segments, f.Connect())
	for _, s := range f.Pool().Segments() {
		assert.True(t, s.Visible)
	}
}

func TestConnectMatchesBruteForce(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Segments = 5000
	f := New(cfg)
	f.Reset(99)
	f.Connect()

	want := bruteForcePairs(f.Particles().Positions, cfg)
	assert.Equal(t, want, visiblePairs(f.Pool()))
}

func bruteForcePairs(pos []float32, cfg Config) []pair {
	n := len(pos) / 3
	max2 := cfg.ConnectionDistance * cfg.ConnectionDistance
	var out []pair
	for i := 0; i < n; i++ {
		var cands []candidate
		for j := i + 1; j < n; j++ {
			if d2 := distSquared(pos, i, j); d2 < max2 {
				cands = append(cands, candidate{index: j, d2: d2})
			}
		}
		slices.SortFunc(cands, func(a, b candidate) int {
			if r := cmp.Compare(a.d2, b.d2); r != 0 {
				return r
			}
			return cmp.Compare(a.index, b.index)
		})
		if len(cands) > cfg.NearestCandidates {
			cands = cands[:cfg.NearestCandidates]
		}
		for k, c := range cands {
			if k >= cfg.MaxPerParticle {
				break
			}
			out = append(out, pair{i, c.index})
		}
	}
	return out
}

func TestConnectIsDeterministic(t *testing.T) {
	f := New(DefaultConfig())
	f.Reset(5)
	f.Connect()
	first := visiblePairs(f.Pool())
	f.Connect()
	assert.Equal(t, first, visiblePairs(f.Pool()))
}

func TestConnectHidesStaleSegments(t *testing.T) {
	f := newPlaced(t, DefaultConfig(), [3]float32{0, 0, 0}, [3]float32{50, 0, 0})
	require.Equal(t, 1, f.Connect())

	f.Particles().Set(1, [3]float32{900, 0, 0}, [3]float32{})
	assert.Equal(t, 0, f.Connect())
	assert.False(t, f.Pool().At(0).Visible)
}

func TestTickCadence(t *testing.T) {
	f := New(DefaultConfig())
	want := []TickResult{
		{},
		{Moved: true},
		{Connected: true},
		{Moved: true},
		{},
		{Moved: true, Connected: true},
	}
	for i, w := range want {
		got := f.Tick()
		got.Visible = 0
		assert.Equal(t, w, got, "tick %d", i+1)
	}
	assert.Equal(t, uint64(6), f.Ticks())
}

func TestResetDeterministic(t *testing.T) {
	f := New(DefaultConfig())
	initial := append([]float32(nil), f.Particles().Positions...)
	for i := 0; i < 12; i++ {
		f.Tick()
	}
	f.Reset(0)
	if !slices.Equal(initial, f.Particles().Positions) {
		t.Fatal("Reset with config seed not deterministic")
	}
	assert.Equal(t, uint64(0), f.Ticks())
	assert.Equal(t, 0, f.Pool().Used())

	f.Reset(777)
	if slices.Equal(initial, f.Particles().Positions) {
		t.Fatal("explicit seed should differ from config seed")
	}
	for _, v := range f.Particles().Velocities {
		if v < -0.4 || v >= 0.4 {
			t.Fatalf("velocity %v outside seeded range", v)
		}
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"particles":           "120",
		"connection_distance": "150",
		"max_per_particle":    "2",
		"segments":            "-4",
		"motion_every":        "zero",
	})
	assert.Equal(t, 120, c.Particles)
	assert.Equal(t, 150.0, c.ConnectionDistance)
	assert.Equal(t, 75.0, c.CellSize())
	assert.Equal(t, 2, c.MaxPerParticle)
	assert.Equal(t, 400, c.Segments, "negative values are ignored")
	assert.Equal(t, 2, c.MotionEvery, "unparsable values are ignored")
	assert.Equal(t, DefaultConfig(), FromMap(nil))
}

func TestPresetsAndParameters(t *testing.T) {
	assert.Equal(t, []string{"classic", "dense", "sparse"}, PresetNames())
	assert.Equal(t, DefaultConfig(), Presets()["classic"]())

	f := New(Presets()["sparse"]())
	p, ok := f.Parameters().Lookup("particles")
	require.True(t, ok)
	assert.Equal(t, "120", p.Value)
	assert.Equal(t, 120, f.Stats().Particles)
}
