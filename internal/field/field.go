package field

import "driftfield/pkg/core"

// Field owns the particle set, the connection pool and the connector for one
// animated background.
type Field struct {
	cfg Config

	particles *ParticleSet
	pool      *Pool
	conn      *Connector

	ticks uint64
}

// TickResult reports which phases ran during a tick.
type TickResult struct {
	Moved     bool
	Connected bool
	Visible   int
}

// Stats summarises the current state for HUDs and run summaries.
type Stats struct {
	Ticks         uint64
	Particles     int
	Visible       int
	PoolSize      int
	OccupiedCells int
}

// New returns a Field configured from cfg and seeded with cfg.Seed.
func New(cfg Config) *Field {
	cfg = cfg.sanitized()
	f := &Field{
		cfg:       cfg,
		particles: NewParticleSet(cfg.Particles),
		pool:      NewPool(cfg.Segments),
		conn:      NewConnector(cfg),
	}
	f.Reset(0)
	return f
}

// Config returns the effective configuration.
func (f *Field) Config() Config { return f.cfg }

// Particles exposes the particle buffers.
func (f *Field) Particles() *ParticleSet { return f.particles }

// Pool exposes the connection segments.
func (f *Field) Pool() *Pool { return f.pool }

// Grid exposes the spatial index from the last connection cycle.
func (f *Field) Grid() *Grid { return f.conn.Grid() }

// Ticks returns the number of ticks since the last Reset.
func (f *Field) Ticks() uint64 { return f.ticks }

// Reset reseeds positions and velocities, hides every segment and restarts
// the tick counter. A zero seed falls back to the configured seed.
func (f *Field) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = f.cfg.Seed
	}
	rng := core.NewRNG(effective)
	rng.FillCentered(f.particles.Positions, f.cfg.Spread)
	rng.FillCentered(f.particles.Velocities, f.cfg.MaxSpeed)
	f.particles.dirty = true
	f.pool.HideAll()
	f.ticks = 0
}

// Tick advances the tick counter and runs the motion step and the connection
// cycle when their cadence is due.
func (f *Field) Tick() TickResult {
	f.ticks++
	var res TickResult
	if f.ticks%uint64(f.cfg.MotionEvery) == 0 {
		f.Step()
		res.Moved = true
	}
	if f.ticks%uint64(f.cfg.ConnectEvery) == 0 {
		f.Connect()
		res.Connected = true
	}
	res.Visible = f.pool.Used()
	return res
}

// Step runs one motion step regardless of cadence.
func (f *Field) Step() {
	f.particles.Advance(float32(f.cfg.Bound))
}

// Connect recomputes the segments regardless of cadence.
func (f *Field) Connect() int {
	return f.conn.Connect(f.particles, f.pool)
}

// Stats returns a snapshot of counters.
func (f *Field) Stats() Stats {
	return Stats{
		Ticks:         f.ticks,
		Particles:     f.particles.Len(),
		Visible:       f.pool.Used(),
		PoolSize:      f.pool.Len(),
		OccupiedCells: f.conn.Grid().Occupied(),
	}
}
