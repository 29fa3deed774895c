package field

// Segment is a pre-allocated line between two particles.
type Segment struct {
	A, B     [3]float32
	From, To int
	Visible  bool
}

// Pool is a fixed-size set of segments claimed in order each cycle.
type Pool struct {
	segs  []Segment
	used  int
	dirty bool
}

// NewPool allocates n hidden segments.
func NewPool(n int) *Pool {
	if n < 0 {
		n = 0
	}
	return &Pool{segs: make([]Segment, n)}
}

// Len returns the pool capacity.
func (p *Pool) Len() int { return len(p.segs) }

// Used returns how many segments were claimed since the last HideAll.
func (p *Pool) Used() int { return p.used }

// Full reports whether every segment is claimed.
func (p *Pool) Full() bool { return p.used >= len(p.segs) }

// Segments exposes the backing slice. Hidden segments keep their last
// endpoints; callers must check Visible.
func (p *Pool) Segments() []Segment { return p.segs }

// At returns segment i.
func (p *Pool) At(i int) *Segment { return &p.segs[i] }

// HideAll marks every segment invisible and releases all claims.
func (p *Pool) HideAll() {
	for i := range p.segs {
		p.segs[i].Visible = false
	}
	p.used = 0
	p.dirty = true
}

// Dirty reports whether segments changed since the last MarkClean.
func (p *Pool) Dirty() bool { return p.dirty }

// MarkClean clears the dirty flag.
func (p *Pool) MarkClean() { p.dirty = false }

func (p *Pool) claim() (*Segment, bool) {
	if p.Full() {
		return nil, false
	}
	s := &p.segs[p.used]
	p.used++
	return s, true
}

func (s *Segment) link(pos []float32, from, to int) {
	a, b := from*3, to*3
	s.A = [3]float32{pos[a], pos[a+1], pos[a+2]}
	s.B = [3]float32{pos[b], pos[b+1], pos[b+2]}
	s.From, s.To = from, to
	s.Visible = true
}
