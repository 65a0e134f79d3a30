package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Playfield dimensions.
const (
	Width  = 10
	Height = 20
)

// Empty marks an unoccupied grid cell.
const Empty = core.ColorDefault

// Grid is the playfield. Rows run 0 (top) to Height-1 (bottom), columns
// 0 (left) to Width-1 (right). Each cell holds the color of the piece that
// landed there, or Empty.
//
// Grid is a value type: assigning it copies every cell.
type Grid struct {
	cells [Height][Width]core.Color
}

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < Height && col >= 0 && col < Width
}

// IsOccupied reports whether the cell holds a landed block.
// The position must be in bounds.
func (g *Grid) IsOccupied(row, col int) bool {
	return g.cells[row][col] != Empty
}

// Cell returns the color stored at (row, col). The position must be in bounds.
func (g *Grid) Cell(row, col int) core.Color {
	return g.cells[row][col]
}

// SetCell stores a color (or Empty) at (row, col). The position must be in bounds.
func (g *Grid) SetCell(row, col int, c core.Color) {
	g.cells[row][col] = c
}

// RowFull reports whether every cell in the row is occupied.
func (g *Grid) RowFull(row int) bool {
	for _, c := range g.cells[row] {
		if c == Empty {
			return false
		}
	}
	return true
}

// ColumnHeight returns the distance from the highest occupied cell in the
// column to the bottom of the grid, or 0 for an empty column.
func (g *Grid) ColumnHeight(col int) int {
	for row := 0; row < Height; row++ {
		if g.cells[row][col] != Empty {
			return Height - row
		}
	}
	return 0
}

// ClearFullRows removes every fully occupied row and returns how many were
// removed. When row i is full, rows 0..i-1 move down by one and row 0 is
// emptied; row i is then checked again before the scan moves on.
func (g *Grid) ClearFullRows() int {
	cleared := 0
	for i := 0; i < Height; {
		if !g.RowFull(i) {
			i++
			continue
		}
		cleared++
		for k := i; k > 0; k-- {
			g.cells[k] = g.cells[k-1]
		}
		g.cells[0] = [Width]core.Color{}
	}
	return cleared
}
