package sim

// Position is a cell coordinate on the grid. Value semantics only.
type Position struct {
	Row int
	Col int
}

// Offset returns the position shifted by (dr, dc).
func (p Position) Offset(dr, dc int) Position {
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// Manhattan returns |Δrow| + |Δcol| to the other position.
func (p Position) Manhattan(o Position) int {
	return abs(p.Row-o.Row) + abs(p.Col-o.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
