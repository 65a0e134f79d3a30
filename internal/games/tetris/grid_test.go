package tetris

import (
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func fillRow(g *Grid, row int, c core.Color) {
	for col := 0; col < Width; col++ {
		g.SetCell(row, col, c)
	}
}

func TestClearFullRowsEmpty(t *testing.T) {
	var g Grid
	if n := g.ClearFullRows(); n != 0 {
		t.Errorf("Expected 0 rows cleared on empty grid, got %d", n)
	}
}

func TestClearFullRowsBottomRow(t *testing.T) {
	var g Grid
	fillRow(&g, Height-1, core.ColorRed)

	if n := g.ClearFullRows(); n != 1 {
		t.Fatalf("Expected 1 row cleared, got %d", n)
	}
	var empty Grid
	if g != empty {
		t.Error("Expected grid to be empty after clearing the only full row")
	}
}

func TestClearFullRowsIdempotent(t *testing.T) {
	var g Grid
	fillRow(&g, 19, core.ColorRed)
	fillRow(&g, 18, core.ColorBlue)
	g.SetCell(17, 3, core.ColorGreen)

	if n := g.ClearFullRows(); n != 2 {
		t.Fatalf("Expected 2 rows cleared, got %d", n)
	}
	after := g
	if n := g.ClearFullRows(); n != 0 {
		t.Errorf("Expected second clear to remove 0 rows, got %d", n)
	}
	if g != after {
		t.Error("Second clear changed the grid")
	}
}

func TestClearFullRowsCascade(t *testing.T) {
	var g Grid
	fillRow(&g, 19, core.ColorRed)
	fillRow(&g, 18, core.ColorBlue)
	g.SetCell(17, 3, core.ColorGreen)
	g.SetCell(16, 3, core.ColorYellow)

	g.ClearFullRows()

	if got := g.Cell(19, 3); got != core.ColorGreen {
		t.Errorf("Expected block from row 17 at row 19, got %v", got)
	}
	if got := g.Cell(18, 3); got != core.ColorYellow {
		t.Errorf("Expected block from row 16 at row 18, got %v", got)
	}
	if g.IsOccupied(17, 3) || g.IsOccupied(16, 3) {
		t.Error("Expected rows above the shifted blocks to be empty")
	}
}

func TestClearFullRowsSeparated(t *testing.T) {
	var g Grid
	fillRow(&g, 15, core.ColorRed)
	fillRow(&g, 19, core.ColorRed)
	g.SetCell(18, 0, core.ColorCyan)

	if n := g.ClearFullRows(); n != 2 {
		t.Fatalf("Expected 2 rows cleared, got %d", n)
	}
	if got := g.Cell(19, 0); got != core.ColorCyan {
		t.Errorf("Expected block to settle on row 19, got %v", got)
	}
	for row := 0; row < Height; row++ {
		if g.RowFull(row) {
			t.Errorf("Row %d still full", row)
		}
	}
}

func TestClearFullRowsMiddleRow(t *testing.T) {
	var g Grid
	g.SetCell(9, 2, core.ColorGreen)
	g.SetCell(9, 5, core.ColorYellow)
	g.SetCell(0, 7, core.ColorRed)
	fillRow(&g, 10, core.ColorBlue)
	g.SetCell(19, 1, core.ColorCyan)
	prev := g

	if n := g.ClearFullRows(); n != 1 {
		t.Fatalf("Expected 1 row cleared, got %d", n)
	}
	for col := 0; col < Width; col++ {
		if got, want := g.Cell(10, col), prev.Cell(9, col); got != want {
			t.Errorf("Row 10 col %d = %v, want old row 9 value %v", col, got, want)
		}
		if g.Cell(0, col) != Empty {
			t.Errorf("Row 0 col %d should be empty after the shift", col)
		}
	}
	if got := g.Cell(1, 7); got != core.ColorRed {
		t.Errorf("Old row 0 block should move to row 1, got %v", got)
	}
	if got := g.Cell(19, 1); got != core.ColorCyan {
		t.Errorf("Rows below the cleared row must not move, got %v", got)
	}
}

func TestColumnHeight(t *testing.T) {
	var g Grid
	if h := g.ColumnHeight(0); h != 0 {
		t.Errorf("Expected empty column height 0, got %d", h)
	}
	g.SetCell(0, 4, core.ColorRed)
	if h := g.ColumnHeight(4); h != Height {
		t.Errorf("Expected top block to give height %d, got %d", Height, h)
	}
	g.SetCell(19, 7, core.ColorRed)
	if h := g.ColumnHeight(7); h != 1 {
		t.Errorf("Expected bottom block to give height 1, got %d", h)
	}
}

func TestInBounds(t *testing.T) {
	var g Grid
	tests := []struct {
		row, col int
		want     bool
	}{
		{0, 0, true},
		{Height - 1, Width - 1, true},
		{-1, 0, false},
		{0, -1, false},
		{Height, 0, false},
		{0, Width, false},
	}
	for _, tt := range tests {
		if got := g.InBounds(tt.row, tt.col); got != tt.want {
			t.Errorf("InBounds(%d, %d) = %v, want %v", tt.row, tt.col, got, tt.want)
		}
	}
}
