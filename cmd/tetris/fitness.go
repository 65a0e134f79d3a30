package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/fitness"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

var flagCSV string

var fitnessCmd = &cobra.Command{
	Use:   "fitness <board.yaml>...",
	Short: "Score saved boards",
	Long: `Evaluates saved boards (written with Ctrl+S during play) with the
fitness genes and weights from the configuration, then prints a table
and a summary. Higher fitness is better with the default negative weights.

Examples:
  tetris fitness ~/.tetris/boards/*.yaml
  tetris fitness board.yaml --csv report.csv`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFitness,
}

func init() {
	fitnessCmd.Flags().StringVar(&flagCSV, "csv", "", "Also write the reports to this CSV file")
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func runFitness(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}
	strategy, err := fitness.NewStrategy(cfg.Fitness.Weights)
	if err != nil {
		return err
	}

	reports := make([]fitness.Report, 0, len(args))
	for _, path := range args {
		grid, score, err := tetris.LoadBoard(path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		r := strategy.Evaluate(filepath.Base(path), score, grid)
		logger.Debug("board evaluated", "board", r.Board, "fitness", r.Fitness)
		reports = append(reports, r)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, reportTable(reports))
	fmt.Fprintln(out)
	printSummary(cmd, fitness.Summarize(reports))

	if flagCSV != "" {
		if err := writeCSV(flagCSV, reports); err != nil {
			return err
		}
		logger.Info("reports written", "path", flagCSV, "boards", len(reports))
	}
	return nil
}

// reportTable renders the reports as a bordered table.
func reportTable(reports []fitness.Report) *table.Table {
	rows := make([][]string, len(reports))
	for i, r := range reports {
		rows[i] = []string{
			r.Board,
			strconv.Itoa(r.Lines),
			formatFloat(r.Holes),
			formatFloat(r.MaxHeight),
			formatFloat(r.Bumpiness),
			formatFloat(r.Fitness),
		}
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("245"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("Board", "Lines", "Holes", "Max height", "Bumpiness", "Fitness").
		Rows(rows...)
}

func printSummary(cmd *cobra.Command, s fitness.Summary) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Boards:  %d\n", s.Count)
	fmt.Fprintf(out, "Mean:    %s\n", formatFloat(s.Mean))
	fmt.Fprintf(out, "Std dev: %s\n", formatFloat(s.StdDev))
	fmt.Fprintf(out, "Best:    %s\n", formatFloat(s.Best))
	fmt.Fprintf(out, "Worst:   %s\n", formatFloat(s.Worst))
}

// writeCSV writes the reports with a header row.
func writeCSV(path string, reports []fitness.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", path, err)
	}
	if err := gocsv.Marshal(reports, f); err != nil {
		f.Close()
		return fmt.Errorf("cannot write %s: %w", path, err)
	}
	return f.Close()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
