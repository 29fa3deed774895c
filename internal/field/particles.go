package field

// ParticleSet stores particle positions and velocities in flat xyz buffers.
// Both buffers have length 3*Len() and are never resized.
type ParticleSet struct {
	Positions  []float32
	Velocities []float32
	dirty      bool
}

// NewParticleSet allocates buffers for n particles.
func NewParticleSet(n int) *ParticleSet {
	if n < 0 {
		n = 0
	}
	return &ParticleSet{
		Positions:  make([]float32, 3*n),
		Velocities: make([]float32, 3*n),
	}
}

// Len returns the number of particles.
func (p *ParticleSet) Len() int { return len(p.Positions) / 3 }

// Position returns the position of particle i.
func (p *ParticleSet) Position(i int) [3]float32 {
	b := i * 3
	return [3]float32{p.Positions[b], p.Positions[b+1], p.Positions[b+2]}
}

// Velocity returns the velocity of particle i.
func (p *ParticleSet) Velocity(i int) [3]float32 {
	b := i * 3
	return [3]float32{p.Velocities[b], p.Velocities[b+1], p.Velocities[b+2]}
}

// Set overwrites the position and velocity of particle i.
func (p *ParticleSet) Set(i int, pos, vel [3]float32) {
	b := i * 3
	copy(p.Positions[b:b+3], pos[:])
	copy(p.Velocities[b:b+3], vel[:])
	p.dirty = true
}

// Dirty reports whether positions changed since the last MarkClean.
func (p *ParticleSet) Dirty() bool { return p.dirty }

// MarkClean clears the dirty flag once a renderer consumed the positions.
func (p *ParticleSet) MarkClean() { p.dirty = false }

// Advance adds velocity to position for every particle and negates the
// velocity on each axis whose new coordinate lies outside [-bound, bound].
func (p *ParticleSet) Advance(bound float32) {
	pos, vel := p.Positions, p.Velocities
	for i := range pos {
		pos[i] += vel[i]
		if pos[i] > bound || pos[i] < -bound {
			vel[i] = -vel[i]
		}
	}
	p.dirty = true
}

func distSquared(pos []float32, a, b int) float64 {
	ai, bi := a*3, b*3
	dx := float64(pos[bi]) - float64(pos[ai])
	dy := float64(pos[bi+1]) - float64(pos[ai+1])
	dz := float64(pos[bi+2]) - float64(pos[ai+2])
	return dx*dx + dy*dy + dz*dz
}
