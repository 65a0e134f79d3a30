// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

import "fmt"

// TetrisConfig contains all configuration for the game and its tooling.
type TetrisConfig struct {
	Gravity    GravityConfig    `yaml:"gravity"`
	Keys       KeyBindings      `yaml:"keys"`
	Fitness    FitnessConfig    `yaml:"fitness"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GravityConfig controls how often the active piece falls one row.
type GravityConfig struct {
	IntervalMS    int `yaml:"interval_ms"`     // Interval at the lowest difficulty
	MinIntervalMS int `yaml:"min_interval_ms"` // Floor reached at max difficulty
}

// KeyBindings lists the key names (as reported by Bubble Tea) for each action.
type KeyBindings struct {
	Left    []string `yaml:"left"`
	Right   []string `yaml:"right"`
	Rotate  []string `yaml:"rotate"`
	Drop    []string `yaml:"drop"`
	Pause   []string `yaml:"pause"`
	Restart []string `yaml:"restart"`
	Save    []string `yaml:"save"`
	Quit    []string `yaml:"quit"`
}

// FitnessConfig selects the genes used to score boards and their weights.
// Gene names must be registered in the fitness package.
type FitnessConfig struct {
	Weights map[string]float64 `yaml:"weights"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to gravity speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. An empty name is accepted and means
// "keep the configured difficulty".
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
