package config

import "fmt"

// Preset is a named starting speed. Presets move the ends of the ramp; the
// ramp itself stays linear.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
)

// ParsePreset validates a preset name. The empty string means no preset.
func ParsePreset(s string) (Preset, error) {
	switch p := Preset(s); p {
	case "", PresetEasy, PresetNormal, PresetHard:
		return p, nil
	}
	return "", fmt.Errorf("config: unknown preset %q (want easy, normal or hard)", s)
}

// ApplyPreset modifies the speed section for a preset.
func ApplyPreset(cfg *SnakeConfig, preset Preset) {
	switch preset {
	case PresetEasy:
		cfg.Speed.InitialMS = 400
		cfg.Speed.MinMS = 180
	case PresetHard:
		cfg.Speed.InitialMS = 200
		cfg.Speed.MinMS = 70
		cfg.Speed.StepMS = 20
	}
}
