// Package fitness scores finished playfields. Each gene is a pure function of
// a grid snapshot; a Strategy combines genes with weights into one fitness
// value for an external search or training process.
package fitness

import (
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

// Gene evaluates one feature of a playfield. The grid is passed by value, so
// a gene cannot modify the caller's board.
type Gene interface {
	Evaluate(g tetris.Grid) float64
}

// Holes counts empty cells that have an occupied cell somewhere above them
// in the same column.
type Holes struct{}

// Evaluate returns the hole count of g.
func (Holes) Evaluate(g tetris.Grid) float64 {
	holes := 0
	for col := 0; col < tetris.Width; col++ {
		covered := false
		for row := 0; row < tetris.Height; row++ {
			if g.IsOccupied(row, col) {
				covered = true
			} else if covered {
				holes++
			}
		}
	}
	return float64(holes)
}

// MaxHeight is the height of the tallest column.
type MaxHeight struct{}

// Evaluate returns the tallest column height of g.
func (MaxHeight) Evaluate(g tetris.Grid) float64 {
	tallest := 0
	for col := 0; col < tetris.Width; col++ {
		tallest = max(tallest, g.ColumnHeight(col))
	}
	return float64(tallest)
}

// Bumpiness sums the absolute height difference of neighbouring columns.
type Bumpiness struct{}

// Evaluate returns the summed height steps between adjacent columns of g.
func (Bumpiness) Evaluate(g tetris.Grid) float64 {
	bumps := 0
	for col := 0; col+1 < tetris.Width; col++ {
		bumps += core.Abs(g.ColumnHeight(col) - g.ColumnHeight(col+1))
	}
	return float64(bumps)
}
