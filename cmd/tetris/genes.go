package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/fitness"
)

var genesCmd = &cobra.Command{
	Use:   "genes",
	Short: "List fitness genes",
	Long:  `Shows every registered fitness gene and the weight the configuration gives it.`,
	Args:  cobra.NoArgs,
	RunE:  runGenes,
}

func runGenes(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	names := fitness.Names()
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Available genes:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxLen := 4 // "Gene" header
	for _, name := range names {
		maxLen = max(maxLen, len(name))
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxLen, "Gene", "Weight")
	fmt.Fprintf(out, "  %-*s  %s\n", maxLen, "----", "------")
	for _, name := range names {
		weight := "-"
		if w, ok := cfg.Fitness.Weights[name]; ok {
			weight = fmt.Sprintf("%g", w)
		}
		fmt.Fprintf(out, "  %-*s  %s\n", maxLen, name, weight)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Set weights under fitness.weights in the config.")
	return nil
}
