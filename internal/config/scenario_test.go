package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Run("default scenario is valid", func(t *testing.T) {
		s := Default()
		require.NoError(t, s.Normalize())
		assert.Equal(t, 12, s.GridSize)
		assert.Equal(t, 3, s.Chasers)
		assert.Equal(t, &GridRef{Row: 0, Col: 11}, s.SeekerStart)
	})

	t.Run("chaser count clamps into range", func(t *testing.T) {
		s := Scenario{GridSize: 12, Chasers: 0}
		require.NoError(t, s.Normalize())
		assert.Equal(t, 1, s.Chasers)

		s = Scenario{GridSize: 12, Chasers: 50}
		require.NoError(t, s.Normalize())
		assert.Equal(t, MaxChasers, s.Chasers)
	})

	t.Run("zero values fill in", func(t *testing.T) {
		var s Scenario
		require.NoError(t, s.Normalize())
		assert.Equal(t, 12, s.GridSize)
		assert.Equal(t, 100, s.ChaserPenalty)
		assert.Equal(t, &GridRef{Row: 0, Col: 11}, s.SeekerStart)
	})

	t.Run("tiny grids are rejected", func(t *testing.T) {
		s := Scenario{GridSize: 3}
		assert.Error(t, s.Normalize())
	})

	t.Run("seeker start must be on the grid", func(t *testing.T) {
		s := Scenario{GridSize: 8, SeekerStart: &GridRef{Row: 8, Col: 0}}
		assert.Error(t, s.Normalize())
	})
}

func TestLoad(t *testing.T) {
	t.Run("partial file keeps defaults for the rest", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scenario.yaml")
		require.NoError(t, os.WriteFile(path, []byte(
			"grid_size: 8\nchasers: 2\nseeker_start: {row: 1, col: 1}\n"), 0o644))

		s, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 8, s.GridSize)
		assert.Equal(t, 2, s.Chasers)
		assert.Equal(t, &GridRef{Row: 1, Col: 1}, s.SeekerStart)
		assert.Equal(t, int64(12345), s.Seed)
		assert.Equal(t, 100, s.ChaserPenalty)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("grid_size: [oops\n"), 0o644))
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("invalid scenario in file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "invalid.yaml")
		require.NoError(t, os.WriteFile(path, []byte("grid_size: 2\n"), 0o644))
		_, err := Load(path)
		assert.Error(t, err)
	})
}
