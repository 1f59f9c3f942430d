package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrid(t *testing.T) {
	g := NewGrid(5)

	t.Run("starts all empty", func(t *testing.T) {
		for row := 0; row < 5; row++ {
			for col := 0; col < 5; col++ {
				assert.Equal(t, Empty, g.At(Position{row, col}))
			}
		}
	})

	t.Run("bounds", func(t *testing.T) {
		assert.True(t, g.InBounds(Position{0, 0}))
		assert.True(t, g.InBounds(Position{4, 4}))
		assert.False(t, g.InBounds(Position{-1, 0}))
		assert.False(t, g.InBounds(Position{0, 5}))
		// Out-of-bounds reads as Obstacle so callers cannot walk off.
		assert.Equal(t, Obstacle, g.At(Position{5, 0}))
	})

	t.Run("set and clone are independent", func(t *testing.T) {
		g.set(Position{2, 2}, Seeker)
		c := g.Clone()
		g.set(Position{2, 2}, Empty)
		assert.Equal(t, Seeker, c.At(Position{2, 2}))
		assert.Equal(t, Empty, g.At(Position{2, 2}))
	})

	t.Run("out of bounds writes are dropped", func(t *testing.T) {
		g.set(Position{-1, 9}, Seeker)
		assert.Equal(t, Obstacle, g.At(Position{-1, 9}))
	})
}

func TestCellString(t *testing.T) {
	assert.Equal(t, ".", Empty.String())
	assert.Equal(t, "#", Obstacle.String())
	assert.Equal(t, "S", Seeker.String())
	assert.Equal(t, "C", Chaser.String())
	assert.Equal(t, "G", Goal.String())
}

func TestPositionManhattan(t *testing.T) {
	assert.Equal(t, 0, Position{2, 2}.Manhattan(Position{2, 2}))
	assert.Equal(t, 8, Position{0, 0}.Manhattan(Position{4, 4}))
	assert.Equal(t, 3, Position{1, 4}.Manhattan(Position{2, 2}))
	assert.Equal(t, Position{3, 1}, Position{2, 2}.Offset(1, -1))
}
