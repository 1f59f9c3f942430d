package sim

import "math"

// DefaultChaserPenalty is the score penalty applied in the fallback ladder
// to candidate cells adjacent to a chaser. It is a tie-break weight, not a
// tuned value, and can be overridden per strategy.
const DefaultChaserPenalty = 100

// MovementStrategy computes the next step for an entity at current moving
// toward target. Implementations are pure functions of their inputs: the
// grid is read-only and chasers lists the positions to avoid. Returning
// current means "stay in place this turn".
type MovementStrategy interface {
	NextStep(current, target Position, g *Grid, chasers []Position) Position
}

// Neighbor exploration order: down, up, right, left. Fixed so that ties
// among equally short paths resolve deterministically.
var stepOrder = [4]Position{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// ShortestPath walks the first step of a breadth-first shortest path to the
// target, treating obstacles and chaser-occupied cells as blocked. When no
// path exists it degrades to the greedy fallback ladder.
type ShortestPath struct {
	Penalty int
}

func NewShortestPath(penalty int) *ShortestPath {
	if penalty <= 0 {
		penalty = DefaultChaserPenalty
	}
	return &ShortestPath{Penalty: penalty}
}

func (s *ShortestPath) NextStep(current, target Position, g *Grid, chasers []Position) Position {
	if step, ok := bfsNextStep(current, target, g, chasers); ok {
		return step
	}
	return fallbackStep(current, target, g, chasers, s.Penalty)
}

// HeuristicDirect is the chasers' reactive strategy: it applies the greedy
// fallback ladder directly and never pathfinds around obstacles. The
// asymmetry against ShortestPath is deliberate.
type HeuristicDirect struct {
	Penalty int
}

func NewHeuristicDirect(penalty int) *HeuristicDirect {
	if penalty <= 0 {
		penalty = DefaultChaserPenalty
	}
	return &HeuristicDirect{Penalty: penalty}
}

func (s *HeuristicDirect) NextStep(current, target Position, g *Grid, chasers []Position) Position {
	return fallbackStep(current, target, g, chasers, s.Penalty)
}

// bfsNextStep runs a breadth-first search from start over the 4-connected
// neighbor graph and returns the first step of the shortest path found.
// Each queue entry carries its full path so the first step falls out of the
// entry that reaches the target. ok is false when no path exists.
func bfsNextStep(start, target Position, g *Grid, chasers []Position) (Position, bool) {
	if start == target {
		return start, true
	}
	n := g.Size()
	visited := make([]bool, n*n)
	visited[start.Row*n+start.Col] = true

	blocked := make(map[Position]bool, len(chasers))
	for _, c := range chasers {
		blocked[c] = true
	}

	queue := [][]Position{{start}}
	for len(queue) > 0 {
		path := queue[0]
		queue = queue[1:]
		cur := path[len(path)-1]
		if cur == target {
			return path[1], true
		}
		for _, d := range stepOrder {
			next := cur.Offset(d.Row, d.Col)
			if !g.InBounds(next) || visited[next.Row*n+next.Col] {
				continue
			}
			cell := g.At(next)
			if cell == Obstacle || cell == Seeker || cell == Chaser || blocked[next] {
				continue
			}
			visited[next.Row*n+next.Col] = true
			branch := make([]Position, len(path), len(path)+1)
			copy(branch, path)
			queue = append(queue, append(branch, next))
		}
	}
	return Position{}, false
}

// fallbackStep is the greedy ladder used when no shortest path exists and
// as the whole of HeuristicDirect:
//
//  1. the diagonal-equivalent direct step, if open and not next to a chaser
//  2. the row-axis or column-axis step, preferring the smaller resulting
//     distance to target (row axis wins ties)
//  3. the best-scoring open neighbor, where score is -distance minus the
//     chaser-adjacency penalty; stay in place when everything is blocked
func fallbackStep(current, target Position, g *Grid, chasers []Position, penalty int) Position {
	dr := sign(target.Row - current.Row)
	dc := sign(target.Col - current.Col)

	direct := current.Offset(dr, dc)
	if open(g, direct) && !nextToChaser(direct, chasers) {
		return direct
	}

	rowMove := current.Offset(dr, 0)
	colMove := current.Offset(0, dc)
	canRow := open(g, rowMove) && !nextToChaser(rowMove, chasers)
	canCol := open(g, colMove) && !nextToChaser(colMove, chasers)
	switch {
	case canRow && canCol:
		if rowMove.Manhattan(target) <= colMove.Manhattan(target) {
			return rowMove
		}
		return colMove
	case canRow:
		return rowMove
	case canCol:
		return colMove
	}

	best := current
	bestScore := math.MinInt
	for _, d := range stepOrder {
		alt := current.Offset(d.Row, d.Col)
		if !open(g, alt) {
			continue
		}
		score := -alt.Manhattan(target)
		if nextToChaser(alt, chasers) {
			score -= penalty
		}
		if score > bestScore {
			bestScore = score
			best = alt
		}
	}
	return best
}

// open reports whether a cell can be stepped into: in bounds and neither an
// obstacle nor a chaser. The goal and seeker cells stay enterable; landing
// on them is what ends the run.
func open(g *Grid, p Position) bool {
	if !g.InBounds(p) {
		return false
	}
	c := g.At(p)
	return c != Obstacle && c != Chaser
}

// nextToChaser reports Manhattan distance exactly 1 to some chaser. It is a
// soft avoidance signal, never a hard block on its own.
func nextToChaser(p Position, chasers []Position) bool {
	for _, c := range chasers {
		if p.Manhattan(c) == 1 {
			return true
		}
	}
	return false
}
