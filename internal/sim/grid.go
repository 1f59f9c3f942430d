package sim

// Cell is the content of one grid square.
type Cell int

const (
	Empty Cell = iota
	Obstacle
	Seeker
	Chaser
	Goal
)

func (c Cell) String() string {
	switch c {
	case Empty:
		return "."
	case Obstacle:
		return "#"
	case Seeker:
		return "S"
	case Chaser:
		return "C"
	case Goal:
		return "G"
	}
	return "?"
}

// Grid is an N×N board of cells. It does no invariant enforcement beyond
// bounds checking; entity bookkeeping belongs to the Engine that owns it.
type Grid struct {
	size  int
	cells [][]Cell
}

// NewGrid returns an all-Empty grid of the given size.
func NewGrid(size int) *Grid {
	cells := make([][]Cell, size)
	for i := range cells {
		cells[i] = make([]Cell, size)
	}
	return &Grid{size: size, cells: cells}
}

func (g *Grid) Size() int { return g.size }

// InBounds reports whether p lies on the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.size && p.Col >= 0 && p.Col < g.size
}

// At returns the cell at p, or Obstacle for out-of-bounds reads so that
// callers never walk off the board.
func (g *Grid) At(p Position) Cell {
	if !g.InBounds(p) {
		return Obstacle
	}
	return g.cells[p.Row][p.Col]
}

func (g *Grid) set(p Position, c Cell) {
	if g.InBounds(p) {
		g.cells[p.Row][p.Col] = c
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.size)
	for i := range g.cells {
		copy(c.cells[i], g.cells[i])
	}
	return c
}
