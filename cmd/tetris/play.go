package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var (
	flagDifficulty string
	flagBoardDir   string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of Tetris.

Controls (defaults, configurable under "keys"):
  Left/A      - Shift left
  Right/D     - Shift right
  Up/W        - Rotate clockwise
  Down/S      - Hard drop
  Space/P/Esc - Pause
  R           - Restart (after game over)
  Ctrl+S      - Save the board to a YAML file
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Start at lowest speed, speeds up with score
  normal - Start at 30% difficulty, speeds up with score
  hard   - Start at 70% difficulty, speeds up with score
  fixed  - No progression, stays at config's initial level

Examples:
  tetris play
  tetris play --difficulty hard
  tetris play --seed 42 --log-file tetris.log --log-level debug
  tetris play --config ./my-tetris.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags registers the play flags; the root command shares them
// because it plays by default.
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().StringVar(&flagBoardDir, "boards", "", "Directory for saved boards (default: ~/.tetris/boards)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	// The TUI owns the terminal, so logs are dropped unless --log-file is set
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}
	config.ApplyTetrisPreset(&cfg, preset)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	return tui.Run(tui.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Logger:   logger,
		BoardDir: flagBoardDir,
	})
}
