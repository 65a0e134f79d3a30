package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Sources reported by LoadTetris.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// LoadTetris loads the game configuration and reports where it came from.
// Search order: customPath -> ~/.tetris/configs/tetris.yaml -> ./configs/tetris.yaml -> embedded default.
// Files are merged over the built-in defaults, so partial files are fine.
func LoadTetris(customPath string) (TetrisConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return TetrisConfig{}, "", fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseTetris(data)
		if err != nil {
			return TetrisConfig{}, "", fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory, then the local configs directory.
	// Unreadable or invalid files here are skipped rather than fatal.
	candidates := []string{userConfigPath("tetris.yaml"), filepath.Join("configs", "tetris.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parseTetris(data); err == nil {
			return cfg, path, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseTetris(defaultTetrisYAML)
	if err != nil {
		return DefaultTetrisConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// parseTetris decodes YAML over the built-in defaults and validates the result.
func parseTetris(data []byte) (TetrisConfig, error) {
	cfg := DefaultTetrisConfig()
	// Weights are replaced, not merged, so a file can drop a gene.
	cfg.Fitness.Weights = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return TetrisConfig{}, err
	}
	if cfg.Fitness.Weights == nil {
		cfg.Fitness.Weights = DefaultTetrisConfig().Fitness.Weights
	}
	if err := cfg.Validate(); err != nil {
		return TetrisConfig{}, err
	}
	return cfg, nil
}

// Validate checks value ranges and fills empty key bindings with defaults.
func (c *TetrisConfig) Validate() error {
	if c.Gravity.IntervalMS <= 0 {
		return fmt.Errorf("gravity.interval_ms must be positive, got %d", c.Gravity.IntervalMS)
	}
	if c.Gravity.MinIntervalMS <= 0 || c.Gravity.MinIntervalMS > c.Gravity.IntervalMS {
		return fmt.Errorf("gravity.min_interval_ms must be in (0, %d], got %d",
			c.Gravity.IntervalMS, c.Gravity.MinIntervalMS)
	}
	switch c.Difficulty.Progression.Type {
	case "score", "time", "none":
	default:
		return fmt.Errorf("difficulty.progression.type must be score, time or none, got %q",
			c.Difficulty.Progression.Type)
	}
	if c.Difficulty.InitialLevel < 0 || c.Difficulty.InitialLevel > 1 {
		return fmt.Errorf("difficulty.initial_level must be in [0, 1], got %v", c.Difficulty.InitialLevel)
	}

	def := DefaultKeyBindings()
	fill := func(dst *[]string, fallback []string) {
		if len(*dst) == 0 {
			*dst = fallback
		}
	}
	fill(&c.Keys.Left, def.Left)
	fill(&c.Keys.Right, def.Right)
	fill(&c.Keys.Rotate, def.Rotate)
	fill(&c.Keys.Drop, def.Drop)
	fill(&c.Keys.Pause, def.Pause)
	fill(&c.Keys.Restart, def.Restart)
	fill(&c.Keys.Save, def.Save)
	fill(&c.Keys.Quit, def.Quit)
	return nil
}

// Marshal renders the configuration as YAML.
func (c TetrisConfig) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tetris", "configs", filename)
}

// ApplyTetrisPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config unchanged.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
