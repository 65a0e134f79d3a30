// tetris is a falling-block puzzle for the terminal, with tooling to score
// saved playfields.
//
// Usage:
//
//	tetris                        - Play (same as "tetris play")
//	tetris play                   - Play a game
//	tetris fitness <board.yaml>   - Score saved boards with the fitness genes
//	tetris genes                  - List fitness genes and their weights
//	tetris config                 - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Custom config YAML
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--log-file <path>   - Write logs to a file
//	--log-level <lvl>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris - falling blocks in your terminal",
	Long: `Tetris is a terminal falling-block puzzle. Without a subcommand it
starts a game.

Available commands:
  play     - Play a game
  fitness  - Score saved boards
  genes    - List fitness genes
  config   - Print the effective configuration

Examples:
  tetris
  tetris play --difficulty hard
  tetris fitness ~/.tetris/boards/*.yaml --csv report.csv
  tetris config > my-tetris.yaml`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(fitnessCmd)
	rootCmd.AddCommand(genesCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the logger for a command. Logs go to --log-file when set,
// otherwise to fallback. The returned close function is never nil.
func newLogger(fallback io.Writer) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w, closeFn := fallback, func() error { return nil }
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closeFn = f, f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetris",
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadConfig loads the configuration named by --config (or the search path)
// and logs where it came from.
func loadConfig(logger *log.Logger) (config.TetrisConfig, error) {
	cfg, source, err := config.LoadTetris(flagConfig)
	if err != nil {
		return config.TetrisConfig{}, err
	}
	logger.Debug("config loaded", "source", source)
	if source == config.SourceBuiltin {
		logger.Warn("embedded config unreadable, using built-in defaults")
	}
	return cfg, nil
}
