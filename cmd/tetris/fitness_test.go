package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/fitness"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

func TestFitnessCommand(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir) // keep user configs out of the weights

	var g tetris.Grid
	g.SetCell(0, 0, core.ColorRed)
	tall, err := tetris.SaveBoard(dir, "tall", g, 2)
	require.NoError(t, err)
	flat, err := tetris.SaveBoard(dir, "flat", tetris.Grid{}, 0)
	require.NoError(t, err)

	csvPath := filepath.Join(dir, "report.csv")
	var out strings.Builder
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"fitness", tall, flat, "--csv", csvPath})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		flagCSV = ""
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "tall.yaml")
	assert.Contains(t, out.String(), "flat.yaml")
	assert.Contains(t, out.String(), "Boards:  2")

	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "board,lines,holes,max_height,bumpiness,fitness", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "tall.yaml,2,19,20,20,"), lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "flat.yaml,0,0,0,0,0"), lines[2])
}

func TestFitnessCommandMissingBoard(t *testing.T) {
	rootCmd.SetArgs([]string{"fitness", filepath.Join(t.TempDir(), "missing.yaml")})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	assert.ErrorContains(t, err, "missing.yaml")
}

func TestReportTable(t *testing.T) {
	out := reportTable([]fitness.Report{{Board: "a.yaml", Lines: 1, Fitness: -1.5}}).String()
	assert.Contains(t, out, "Fitness")
	assert.Contains(t, out, "a.yaml")
	assert.Contains(t, out, "-1.50")
}
