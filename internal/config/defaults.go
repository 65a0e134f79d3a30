package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the built-in configuration. It matches the
// embedded defaults/tetris.yaml and is used when that file cannot be parsed.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Gravity: GravityConfig{
			IntervalMS:    500,
			MinIntervalMS: 80,
		},
		Keys: DefaultKeyBindings(),
		Fitness: FitnessConfig{
			Weights: map[string]float64{
				"holes":      -0.36,
				"max_height": -0.51,
				"bumpiness":  -0.18,
			},
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 100,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 4.0,
			},
		},
	}
}

// DefaultKeyBindings returns the default key bindings.
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Left:    []string{"left", "a"},
		Right:   []string{"right", "d"},
		Rotate:  []string{"up", "w"},
		Drop:    []string{"down", "s"},
		Pause:   []string{" ", "p", "esc"},
		Restart: []string{"r"},
		Save:    []string{"ctrl+s"},
		Quit:    []string{"q", "ctrl+c"},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
