package sim

import (
	"sync"

	"github.com/google/uuid"
)

// State is the engine lifecycle. Every state after Running is terminal;
// once the run ends it never resumes.
type State int

const (
	StateInitializing State = iota
	StateRunning
	StateSeekerWon
	StateChaserWon
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateRunning:
		return "running"
	case StateSeekerWon:
		return "seeker_won"
	case StateChaserWon:
		return "chaser_won"
	case StateStopped:
		return "stopped"
	}
	return "unknown"
}

// Engine owns the grid and all entity bookkeeping. One mutex guards the
// entire read-decide-write sequence of every move as well as snapshot
// reads, so concurrent movers always act on a consistent board.
type Engine struct {
	mu      sync.Mutex
	grid    *Grid
	seeker  Position
	goal    Position
	chasers []Position
	state   State
	winner  int

	seekerStrat MovementStrategy
	chaserStrat MovementStrategy

	subs registry
}

// NewEngine builds an engine from a resolved layout. The seeker moves by
// seekerStrat toward the goal; each chaser moves by chaserStrat toward the
// seeker. Handlers passed here are subscribed before the Initialized event
// fires; more can be added later via Subscribe. The engine is Initializing
// while that event is delivered and Running when NewEngine returns, unless
// a handler stopped it first.
func NewEngine(l Layout, seekerStrat, chaserStrat MovementStrategy, handlers ...Handler) (*Engine, error) {
	if err := l.validate(); err != nil {
		return nil, err
	}
	g := NewGrid(l.Size)
	for _, p := range l.Obstacles {
		g.set(p, Obstacle)
	}
	g.set(l.Goal, Goal)
	g.set(l.Seeker, Seeker)
	chasers := make([]Position, len(l.Chasers))
	copy(chasers, l.Chasers)
	for _, p := range chasers {
		g.set(p, Chaser)
	}
	e := &Engine{
		grid:        g,
		seeker:      l.Seeker,
		goal:        l.Goal,
		chasers:     chasers,
		state:       StateInitializing,
		winner:      -1,
		seekerStrat: seekerStrat,
		chaserStrat: chaserStrat,
	}
	for _, fn := range handlers {
		e.subs.add(fn)
	}
	e.dispatch([]Event{{Type: EventInitialized, Payload: map[string]any{
		"size":    l.Size,
		"seeker":  posPayload(l.Seeker),
		"goal":    posPayload(l.Goal),
		"chasers": len(chasers),
	}}}, e.subs.handlers())
	e.mu.Lock()
	if e.state == StateInitializing {
		e.state = StateRunning
	}
	e.mu.Unlock()
	return e, nil
}

func posPayload(p Position) []int { return []int{p.Row, p.Col} }

// Subscribe registers an event handler and returns its handle. Handlers
// are invoked in subscription order, outside the grid lock.
func (e *Engine) Subscribe(fn Handler) uuid.UUID {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.subs.add(fn)
}

// Unsubscribe removes a handler by handle. Unknown handles are ignored.
func (e *Engine) Unsubscribe(id uuid.UUID) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.subs.remove(id)
}

// MoveSeeker advances the seeker one step toward the goal. Reaching the
// goal transitions to SeekerWon and ends the run. No-op unless Running.
func (e *Engine) MoveSeeker() {
	e.mu.Lock()
	events, handlers := e.moveSeekerLocked(), e.subs.handlers()
	e.mu.Unlock()
	e.dispatch(events, handlers)
}

func (e *Engine) moveSeekerLocked() []Event {
	if e.state != StateRunning {
		return nil
	}
	next := e.seekerStrat.NextStep(e.seeker, e.goal, e.grid, e.chasers)
	if next == e.seeker || !e.grid.InBounds(next) || e.grid.At(next) == Chaser {
		return nil
	}

	old := e.seeker
	e.grid.set(old, Empty)

	if next == e.goal {
		// Arrival ends the run; the seeker is never drawn onto the goal cell.
		e.state = StateSeekerWon
		return []Event{{Type: EventSeekerWon, Payload: map[string]any{
			"goal": posPayload(e.goal),
		}}}
	}

	e.seeker = next
	e.grid.set(next, Seeker)
	if old == e.goal {
		e.grid.set(old, Goal)
	}
	return []Event{{Type: EventSeekerMoved, Payload: map[string]any{
		"from": posPayload(old), "to": posPayload(next),
	}}}
}

// MoveChaser advances one chaser toward the seeker. Landing on the seeker
// transitions to ChaserWon. Out-of-range indexes and collisions with other
// chasers are silent no-ops.
func (e *Engine) MoveChaser(index int) {
	e.mu.Lock()
	events, handlers := e.moveChaserLocked(index), e.subs.handlers()
	e.mu.Unlock()
	e.dispatch(events, handlers)
}

func (e *Engine) moveChaserLocked(index int) []Event {
	if e.state != StateRunning || index < 0 || index >= len(e.chasers) {
		return nil
	}
	cur := e.chasers[index]
	next := e.chaserStrat.NextStep(cur, e.seeker, e.grid, e.otherChasers(index))
	if next == cur || !e.grid.InBounds(next) || e.grid.At(next) == Obstacle {
		return nil
	}

	if next == e.seeker {
		// Capture: the seeker's cell is left as is, the run is over.
		e.state = StateChaserWon
		e.winner = index
		return []Event{{Type: EventChaserWon, Payload: map[string]any{
			"chaser": index, "at": posPayload(next),
		}}}
	}

	if c := e.grid.At(next); c != Empty && c != Goal {
		// Another chaser got there first this turn; skip the move.
		return nil
	}

	if cur == e.goal {
		e.grid.set(cur, Goal)
	} else {
		e.grid.set(cur, Empty)
	}
	e.chasers[index] = next
	e.grid.set(next, Chaser)
	return []Event{{Type: EventChaserMoved, Payload: map[string]any{
		"chaser": index, "from": posPayload(cur), "to": posPayload(next),
	}}}
}

// otherChasers returns every tracked chaser except the one that is about
// to move, so a chaser never treats its own cell as a neighbor to avoid.
func (e *Engine) otherChasers(index int) []Position {
	out := make([]Position, 0, len(e.chasers)-1)
	for i, p := range e.chasers {
		if i != index {
			out = append(out, p)
		}
	}
	return out
}

// Stop ends the run externally. Idempotent; calling it after any terminal
// state is a no-op.
func (e *Engine) Stop() {
	e.mu.Lock()
	var events []Event
	if e.state == StateRunning || e.state == StateInitializing {
		e.state = StateStopped
		events = []Event{{Type: EventStopped}}
	}
	handlers := e.subs.handlers()
	e.mu.Unlock()
	e.dispatch(events, handlers)
}

// Running reports whether moves are still accepted.
func (e *Engine) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state == StateRunning
}

// State returns the current lifecycle state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Winner returns the capturing chaser's index, or -1 if no chaser has won.
func (e *Engine) Winner() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.winner
}

// SeekerPosition returns the seeker's current cell.
func (e *Engine) SeekerPosition() Position {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.seeker
}

// GoalPosition returns the goal cell, fixed after construction.
func (e *Engine) GoalPosition() Position {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.goal
}

// ChaserPositions returns a copy of the tracked chaser positions, ordered
// by chaser index.
func (e *Engine) ChaserPositions() []Position {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]Position, len(e.chasers))
	copy(out, e.chasers)
	return out
}

// ChaserCount returns the number of live chasers.
func (e *Engine) ChaserCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.chasers)
}

// Snapshot is a consistent, defensive copy of the whole board taken under
// the grid lock. Safe to read while moves are in flight.
type Snapshot struct {
	Size    int
	Grid    *Grid
	Seeker  Position
	Goal    Position
	Chasers []Position
	State   State
	Winner  int
}

// Distance is the seeker's Manhattan distance to the goal.
func (s Snapshot) Distance() int { return s.Seeker.Manhattan(s.Goal) }

// Snapshot exports the current board state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	chasers := make([]Position, len(e.chasers))
	copy(chasers, e.chasers)
	return Snapshot{
		Size:    e.grid.Size(),
		Grid:    e.grid.Clone(),
		Seeker:  e.seeker,
		Goal:    e.goal,
		Chasers: chasers,
		State:   e.state,
		Winner:  e.winner,
	}
}

// dispatch runs handlers outside the grid lock.
func (e *Engine) dispatch(events []Event, handlers []Handler) {
	for _, ev := range events {
		for _, fn := range handlers {
			fn(ev)
		}
	}
}
