package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Limits on the scenario shape. MaxChasers matches the hard cap the layout
// was designed around; more pursuers than that just crowd the board.
const (
	MinGridSize = 5
	MaxChasers  = 7
)

// GridRef is a (row, col) reference inside a scenario file.
type GridRef struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// Scenario is the full simulation configuration. Zero values are filled in
// by Normalize, so a partial YAML file or a bare Default() both work.
type Scenario struct {
	GridSize      int      `yaml:"grid_size"`
	Chasers       int      `yaml:"chasers"`
	Seed          int64    `yaml:"seed"`
	SeekerStart   *GridRef `yaml:"seeker_start"`
	ChaserPenalty int      `yaml:"chaser_penalty"`
	TurnDelayMS   int      `yaml:"turn_delay_ms"`
	Note          string   `yaml:"note"`
}

// Default returns the reference scenario: 12×12 board, 3 chasers, seeker
// starting at the top-right corner.
func Default() Scenario {
	return Scenario{
		GridSize:      12,
		Chasers:       3,
		Seed:          12345,
		ChaserPenalty: 100,
		TurnDelayMS:   500,
	}
}

// Load reads a scenario YAML file and normalizes it.
func Load(path string) (*Scenario, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s := Default()
	if err := yaml.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if err := s.Normalize(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return &s, nil
}

// Normalize fills defaults, clamps the chaser count into [1, MaxChasers]
// and rejects shapes the board cannot hold.
func (s *Scenario) Normalize() error {
	if s.GridSize == 0 {
		s.GridSize = 12
	}
	if s.GridSize < MinGridSize {
		return fmt.Errorf("grid_size %d below minimum %d", s.GridSize, MinGridSize)
	}
	if s.Chasers < 1 {
		s.Chasers = 1
	}
	if s.Chasers > MaxChasers {
		s.Chasers = MaxChasers
	}
	if s.ChaserPenalty <= 0 {
		s.ChaserPenalty = 100
	}
	if s.TurnDelayMS < 0 {
		s.TurnDelayMS = 0
	}
	if s.SeekerStart == nil {
		s.SeekerStart = &GridRef{Row: 0, Col: s.GridSize - 1}
	}
	if s.SeekerStart.Row < 0 || s.SeekerStart.Row >= s.GridSize ||
		s.SeekerStart.Col < 0 || s.SeekerStart.Col >= s.GridSize {
		return fmt.Errorf("seeker_start (%d,%d) outside %d×%d grid",
			s.SeekerStart.Row, s.SeekerStart.Col, s.GridSize, s.GridSize)
	}
	return nil
}
