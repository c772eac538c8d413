// Package config provides YAML-based game configuration loading and the
// speed presets for gridsnake.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/gridsnake/internal/snake"
)

// SnakeConfig contains all configuration for a game. Values are fixed at
// startup; nothing here is reconfigurable while a game runs.
type SnakeConfig struct {
	Grid     GridConfig     `yaml:"grid"`
	Speed    SpeedConfig    `yaml:"speed"`
	Boundary BoundaryConfig `yaml:"boundary"`
	Seed     int64          `yaml:"seed"`
}

// GridConfig defines the playing field.
type GridConfig struct {
	Side      int `yaml:"side"`
	CellWidth int `yaml:"cell_width"` // Presentation only
}

// SpeedConfig defines the linear speed ramp, in milliseconds.
type SpeedConfig struct {
	InitialMS int `yaml:"initial_ms"`
	MinMS     int `yaml:"min_ms"`
	StepMS    int `yaml:"step_ms"`
	Every     int `yaml:"every"`
}

// BoundaryConfig defines the starting edge behavior.
type BoundaryConfig struct {
	Wrapping bool `yaml:"wrapping"`
}

// Validate checks every field and reports all problems at once.
func (c SnakeConfig) Validate() error {
	var errs []error
	if c.Grid.Side < 2 {
		errs = append(errs, fmt.Errorf("grid.side must be at least 2, got %d", c.Grid.Side))
	}
	if c.Grid.CellWidth < 1 || c.Grid.CellWidth > 4 {
		errs = append(errs, fmt.Errorf("grid.cell_width must be between 1 and 4, got %d", c.Grid.CellWidth))
	}
	if c.Speed.MinMS <= 0 {
		errs = append(errs, fmt.Errorf("speed.min_ms must be positive, got %d", c.Speed.MinMS))
	}
	if c.Speed.InitialMS < c.Speed.MinMS {
		errs = append(errs, fmt.Errorf("speed.initial_ms (%d) must not be below speed.min_ms (%d)", c.Speed.InitialMS, c.Speed.MinMS))
	}
	if c.Speed.StepMS < 0 {
		errs = append(errs, fmt.Errorf("speed.step_ms must not be negative, got %d", c.Speed.StepMS))
	}
	if c.Speed.Every < 1 {
		errs = append(errs, fmt.Errorf("speed.every must be at least 1, got %d", c.Speed.Every))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// Ramp converts the speed section into the game's speed schedule.
func (c SnakeConfig) Ramp() snake.SpeedRamp {
	return snake.SpeedRamp{
		Initial: time.Duration(c.Speed.InitialMS) * time.Millisecond,
		Min:     time.Duration(c.Speed.MinMS) * time.Millisecond,
		Step:    time.Duration(c.Speed.StepMS) * time.Millisecond,
		Every:   c.Speed.Every,
	}
}

// Settings builds the game settings. seed overrides the configured seed
// when non-zero.
func (c SnakeConfig) Settings(seed int64) snake.Settings {
	if seed == 0 {
		seed = c.Seed
	}
	mode := snake.Bounded
	if c.Boundary.Wrapping {
		mode = snake.Wrapping
	}
	return snake.Settings{
		Grid:     snake.Grid{Side: c.Grid.Side},
		Ramp:     c.Ramp(),
		Boundary: mode,
		Seed:     seed,
	}
}
