package sim

import (
	"context"
	"time"
)

// RenderFunc receives the board after every completed turn.
type RenderFunc func(turn int, s Snapshot)

// Runner drives the turn cycle: seeker move, chaser moves in ascending
// index order, then render. Ascending order is the capture tie-break — the
// lowest-indexed chaser that can reach the seeker this turn wins, because
// later chasers observe the ended run and no-op.
type Runner struct {
	eng    *Engine
	render RenderFunc
	delay  time.Duration
}

func NewRunner(eng *Engine, render RenderFunc, delay time.Duration) *Runner {
	return &Runner{eng: eng, render: render, delay: delay}
}

// Run loops until the engine leaves Running by any path: arrival, capture,
// external stop, or context cancellation (which stops the engine). It
// returns the number of completed turns.
func (r *Runner) Run(ctx context.Context) int {
	turn := 0
	for r.eng.Running() {
		if ctx.Err() != nil {
			r.eng.Stop()
			break
		}

		r.eng.MoveSeeker()
		if !r.eng.Running() {
			break
		}

		for i := 0; i < r.eng.ChaserCount(); i++ {
			r.eng.MoveChaser(i)
			if !r.eng.Running() {
				break
			}
		}
		if !r.eng.Running() {
			break
		}

		turn++
		if r.render != nil {
			r.render(turn, r.eng.Snapshot())
		}

		if r.delay > 0 {
			select {
			case <-ctx.Done():
				r.eng.Stop()
				return turn
			case <-time.After(r.delay):
			}
		}
	}
	return turn
}
