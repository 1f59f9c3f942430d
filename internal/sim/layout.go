package sim

import (
	"fmt"
	"math/rand"

	"pursuitsim/internal/config"
)

// obstacleDivisor controls obstacle density: N²/obstacleDivisor cells
// become obstacles during random layout.
const obstacleDivisor = 6

// Layout is a fully resolved starting board: every entity placed, ready to
// hand to NewEngine. Tests build these directly; RandomLayout produces the
// randomized one the CLI uses.
type Layout struct {
	Size      int
	Seeker    Position
	Goal      Position
	Chasers   []Position
	Obstacles []Position
}

// RandomLayout places obstacles, goal and chasers for a scenario. Placement
// order matches the reference behavior: obstacles first, then the goal in a
// random corner distinct from the seeker start, then the seeker on its
// fixed cell, then chasers on random empty cells. Goal and seeker each
// displace an obstacle that happened to land on their cell. If the board
// fills up, remaining obstacle or chaser placements are dropped rather
// than looping.
func RandomLayout(cfg *config.Scenario, rng *rand.Rand) Layout {
	n := cfg.GridSize
	g := NewGrid(n)

	randomEmpty := func() (Position, bool) {
		for i := 0; i < 4*n*n; i++ {
			p := Position{Row: rng.Intn(n), Col: rng.Intn(n)}
			if g.At(p) == Empty {
				return p, true
			}
		}
		// Rejection sampling stalled; scan for any remaining empty cell.
		for r := 0; r < n; r++ {
			for c := 0; c < n; c++ {
				if p := (Position{Row: r, Col: c}); g.At(p) == Empty {
					return p, true
				}
			}
		}
		return Position{}, false
	}

	l := Layout{Size: n, Seeker: Position{Row: cfg.SeekerStart.Row, Col: cfg.SeekerStart.Col}}

	dropObstacle := func(p Position) {
		for i, o := range l.Obstacles {
			if o == p {
				l.Obstacles = append(l.Obstacles[:i], l.Obstacles[i+1:]...)
				return
			}
		}
	}

	for i := 0; i < n*n/obstacleDivisor; i++ {
		p, ok := randomEmpty()
		if !ok {
			break
		}
		g.set(p, Obstacle)
		l.Obstacles = append(l.Obstacles, p)
	}

	corners := [4]Position{
		{0, 0}, {0, n - 1}, {n - 1, 0}, {n - 1, n - 1},
	}
	for {
		l.Goal = corners[rng.Intn(len(corners))]
		if l.Goal != l.Seeker {
			break
		}
	}
	if g.At(l.Goal) == Obstacle {
		dropObstacle(l.Goal)
	}
	g.set(l.Goal, Goal)

	if g.At(l.Seeker) == Obstacle {
		dropObstacle(l.Seeker)
	}
	g.set(l.Seeker, Seeker)

	for i := 0; i < cfg.Chasers; i++ {
		p, ok := randomEmpty()
		if !ok {
			break
		}
		g.set(p, Chaser)
		l.Chasers = append(l.Chasers, p)
	}
	return l
}

// validate rejects layouts that would violate the board invariants from the
// start: out-of-bounds positions, overlapping entities, or a goal on the
// seeker's cell.
func (l Layout) validate() error {
	if l.Size < 2 {
		return fmt.Errorf("layout: size %d too small", l.Size)
	}
	g := NewGrid(l.Size)
	place := func(p Position, c Cell) error {
		if !g.InBounds(p) {
			return fmt.Errorf("layout: %v out of bounds for size %d", p, l.Size)
		}
		if got := g.At(p); got != Empty {
			return fmt.Errorf("layout: %v already holds %s", p, got)
		}
		g.set(p, c)
		return nil
	}
	if err := place(l.Seeker, Seeker); err != nil {
		return err
	}
	if err := place(l.Goal, Goal); err != nil {
		return err
	}
	for _, p := range l.Chasers {
		if err := place(p, Chaser); err != nil {
			return err
		}
	}
	for _, p := range l.Obstacles {
		if err := place(p, Obstacle); err != nil {
			return err
		}
	}
	return nil
}
