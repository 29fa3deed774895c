package field

import (
	"cmp"
	"math"
	"slices"
)

// CellKey identifies a grid cell by its integer coordinates.
type CellKey struct {
	X, Y, Z int32
}

// Grid is a spatial hash mapping occupied cells to the ascending indices of
// the particles inside them. It only holds state for the cycle it was last
// rebuilt in.
type Grid struct {
	cellSize float64
	cells    map[CellKey][]int
}

// NewGrid constructs an empty grid with the given cell edge length.
func NewGrid(cellSize float64) *Grid {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &Grid{cellSize: cellSize, cells: make(map[CellKey][]int)}
}

// CellSize returns the cell edge length.
func (g *Grid) CellSize() float64 { return g.cellSize }

// KeyOf returns the cell containing the point (x, y, z).
func (g *Grid) KeyOf(x, y, z float32) CellKey {
	return CellKey{
		X: int32(math.Floor(float64(x) / g.cellSize)),
		Y: int32(math.Floor(float64(y) / g.cellSize)),
		Z: int32(math.Floor(float64(z) / g.cellSize)),
	}
}

// Rebuild clears the grid and inserts every particle of the flat xyz buffer.
// Cell slices keep their capacity between rebuilds; cells left empty are
// dropped so only occupied cells remain.
func (g *Grid) Rebuild(positions []float32) {
	for k, v := range g.cells {
		g.cells[k] = v[:0]
	}
	for i := 0; i+2 < len(positions); i += 3 {
		k := g.KeyOf(positions[i], positions[i+1], positions[i+2])
		g.cells[k] = append(g.cells[k], i/3)
	}
	for k, v := range g.cells {
		if len(v) == 0 {
			delete(g.cells, k)
		}
	}
}

// Cell returns the particle indices in cell k. The slice is owned by the grid
// and only valid until the next Rebuild.
func (g *Grid) Cell(k CellKey) []int { return g.cells[k] }

// Occupied returns the number of non-empty cells.
func (g *Grid) Occupied() int { return len(g.cells) }

// Keys returns the occupied cells in lexical (X, Y, Z) order.
func (g *Grid) Keys() []CellKey {
	keys := make([]CellKey, 0, len(g.cells))
	for k := range g.cells {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b CellKey) int {
		if c := cmp.Compare(a.X, b.X); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Y, b.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.Z, b.Z)
	})
	return keys
}

// Gather appends to dst the indices in every cell within radius cells of
// center on each axis. A particle lives in exactly one cell and each scanned
// cell is visited once, so the result holds no duplicates.
func (g *Grid) Gather(center CellKey, radius int, dst []int) []int {
	r := int32(radius)
	for dx := -r; dx <= r; dx++ {
		for dy := -r; dy <= r; dy++ {
			for dz := -r; dz <= r; dz++ {
				k := CellKey{X: center.X + dx, Y: center.Y + dy, Z: center.Z + dz}
				if idx, ok := g.cells[k]; ok {
					dst = append(dst, idx...)
				}
			}
		}
	}
	return dst
}
