package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pursuitsim/internal/config"
	"pursuitsim/internal/util"
)

func TestRandomLayout(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Normalize())

	t.Run("same seed reproduces the board", func(t *testing.T) {
		a := RandomLayout(&cfg, util.New(7))
		b := RandomLayout(&cfg, util.New(7))
		assert.Equal(t, a, b)
	})

	t.Run("shape follows the scenario", func(t *testing.T) {
		l := RandomLayout(&cfg, util.New(99))
		assert.Equal(t, 12, l.Size)
		assert.Equal(t, Position{0, 11}, l.Seeker)
		assert.Len(t, l.Chasers, cfg.Chasers)
		// N²/6 obstacles, minus up to two displaced by the seeker's
		// fixed start and the goal corner.
		assert.InDelta(t, 12*12/6, len(l.Obstacles), 2)

		corners := []Position{{0, 0}, {0, 11}, {11, 0}, {11, 11}}
		assert.Contains(t, corners, l.Goal)
		assert.NotEqual(t, l.Seeker, l.Goal)

		require.NoError(t, l.validate())
	})

	t.Run("layouts across seeds always validate", func(t *testing.T) {
		for seed := int64(1); seed <= 200; seed++ {
			l := RandomLayout(&cfg, util.New(seed))
			require.NoError(t, l.validate(), "seed %d", seed)
		}
	})

	t.Run("goal corner displaces a coinciding obstacle", func(t *testing.T) {
		found := false
		for seed := int64(1); seed <= 300; seed++ {
			l := RandomLayout(&cfg, util.New(seed))
			require.NotContains(t, l.Obstacles, l.Goal, "seed %d", seed)
			require.NoError(t, l.validate(), "seed %d", seed)
			if len(l.Obstacles) < 12*12/6 {
				found = true
			}
		}
		assert.True(t, found, "no seed placed an obstacle on the goal corner")
	})

	t.Run("full board terminates with fewer chasers", func(t *testing.T) {
		tiny := config.Scenario{
			GridSize:    2,
			Chasers:     7,
			SeekerStart: &config.GridRef{Row: 0, Col: 1},
		}
		l := RandomLayout(&tiny, util.New(5))
		assert.Len(t, l.Chasers, 2)
		require.NoError(t, l.validate())
	})

	t.Run("engine accepts a random layout", func(t *testing.T) {
		l := RandomLayout(&cfg, util.New(3))
		e, err := NewEngine(l, NewShortestPath(cfg.ChaserPenalty), NewHeuristicDirect(cfg.ChaserPenalty))
		require.NoError(t, err)
		checkInvariants(t, e.Snapshot())
	})
}
