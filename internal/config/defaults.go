package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Side:      30,
			CellWidth: 2,
		},
		Speed: SpeedConfig{
			InitialMS: 300,
			MinMS:     120,
			StepMS:    30,
			Every:     3,
		},
		Boundary: BoundaryConfig{
			Wrapping: false,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
