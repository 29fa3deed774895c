package field

import (
	"cmp"
	"slices"
)

type candidate struct {
	index int
	d2    float64
}

// Connector selects which particle pairs to join with segments. Its scratch
// buffers are reused across cycles; no state carries over between cycles.
type Connector struct {
	grid        *Grid
	radius      int
	maxDist2    float64
	nearest     int
	perParticle int

	neighbors []int
	cands     []candidate
}

// NewConnector builds a connector and its grid from cfg.
func NewConnector(cfg Config) *Connector {
	return &Connector{
		grid:        NewGrid(cfg.CellSize()),
		radius:      cfg.ScanRadius,
		maxDist2:    cfg.ConnectionDistance * cfg.ConnectionDistance,
		nearest:     cfg.NearestCandidates,
		perParticle: cfg.MaxPerParticle,
	}
}

// Grid exposes the spatial index built by the last Connect.
func (c *Connector) Grid() *Grid { return c.grid }

// Connect hides every segment, rebuilds the grid from the current positions
// and claims segments for the selected pairs. It returns the number of
// visible segments.
//
// Particles are visited in ascending index order. Each considers only
// neighbours with a greater index within the connection distance, keeps the
// nearest few and accepts at most perParticle of them, until the pool runs out.
func (c *Connector) Connect(ps *ParticleSet, pool *Pool) int {
	pool.HideAll()
	pos := ps.Positions
	c.grid.Rebuild(pos)

	n := ps.Len()
	for i := 0; i < n && !pool.Full(); i++ {
		b := i * 3
		key := c.grid.KeyOf(pos[b], pos[b+1], pos[b+2])
		c.neighbors = c.grid.Gather(key, c.radius, c.neighbors[:0])

		c.cands = c.cands[:0]
		for _, j := range c.neighbors {
			if j <= i {
				continue
			}
			d2 := distSquared(pos, i, j)
			if d2 >= c.maxDist2 {
				continue
			}
			c.cands = append(c.cands, candidate{index: j, d2: d2})
		}
		if len(c.cands) == 0 {
			continue
		}
		slices.SortFunc(c.cands, func(a, b candidate) int {
			if r := cmp.Compare(a.d2, b.d2); r != 0 {
				return r
			}
			return cmp.Compare(a.index, b.index)
		})
		if len(c.cands) > c.nearest {
			c.cands = c.cands[:c.nearest]
		}

		accepted := 0
		for _, cand := range c.cands {
			if accepted >= c.perParticle {
				break
			}
			seg, ok := pool.claim()
			if !ok {
				break
			}
			seg.link(pos, i, cand.index)
			accepted++
		}
	}
	return pool.Used()
}
