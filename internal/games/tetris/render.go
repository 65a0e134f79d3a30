package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

const (
	cellWidth  = 2                   // Each grid cell is drawn as two characters
	boardW     = Width*cellWidth + 2 // Playfield plus side walls
	boardH     = Height + 2          // Playfield plus top and bottom walls
	panelW     = 14                  // Side panel with score and level
	panelGap   = 2
	minScreenW = boardW + panelGap + panelW
	minScreenH = boardH + 1 // Title row above the board
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenW < minScreenW || g.screenH < minScreenH {
		g.renderTooSmall(dst)
		return
	}

	boardX := (g.screenW - minScreenW) / 2
	boardY := 1
	board := core.NewRect(boardX, boardY, boardW, boardH)

	dst.DrawTextCentered(0, g.Title())
	g.renderBoard(dst, board)
	g.renderPanel(dst, board.Right()+panelGap, boardY)

	st := g.State()
	switch {
	case st.GameOver:
		renderOverlay(dst, board, "GAME OVER", fmt.Sprintf("Score: %d", st.Score), "r restart  q quit")
	case st.Paused:
		renderOverlay(dst, board, "PAUSED", "", "space to resume")
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
}

// renderBoard draws the walls, the landed blocks and the active piece.
// The piece is drawn onto a copy of the grid; the engine's grid never
// contains the active piece.
func (g *Game) renderBoard(dst *core.Screen, r core.Rect) {
	dst.DrawBox(r)

	e := g.controls.Engine()
	grid := e.Grid()
	p := e.Piece()
	if !e.Over() {
		for _, c := range p.Cells {
			if grid.InBounds(c.Row, c.Col) {
				grid.SetCell(c.Row, c.Col, p.Color)
			}
		}
	}

	for row := 0; row < Height; row++ {
		y := r.Y + 1 + row
		for col := 0; col < Width; col++ {
			x := r.X + 1 + col*cellWidth
			if c := grid.Cell(row, col); c != Empty {
				dst.SetCell(x, y, '[', c)
				dst.SetCell(x+1, y, ']', c)
			} else {
				dst.SetCell(x+1, y, '.', core.ColorGray)
			}
		}
	}
}

// renderPanel draws score and level next to the board.
func (g *Game) renderPanel(dst *core.Screen, x, y int) {
	st := g.State()
	dst.DrawColorText(x, y+1, "SCORE", core.ColorGray)
	dst.DrawText(x, y+2, fmt.Sprintf("%d", st.Score))
	dst.DrawColorText(x, y+4, "LEVEL", core.ColorGray)
	dst.DrawText(x, y+5, fmt.Sprintf("%d", st.Level))
	dst.DrawColorText(x, y+7, "PIECE", core.ColorGray)

	p := g.controls.Engine().Piece()
	dst.DrawColorText(x, y+8, p.Shape.String(), p.Color)
}

// renderOverlay draws a centered message box over the board.
func renderOverlay(dst *core.Screen, board core.Rect, title, subtitle, hint string) {
	box := board.Centered(board.W-2, 7)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	// Text wider than the box starts right after the left border.
	center := func(y int, text string, c core.Color) {
		x := box.X + (box.W-len(text))/2
		x = core.Clamp(x, box.X+1, max(box.X+1, box.Right()-1-len(text)))
		dst.DrawColorText(x, y, text, c)
	}
	center(box.Y+2, title, core.ColorBrightWhite)
	if subtitle != "" {
		center(box.Y+3, subtitle, core.ColorDefault)
	}
	center(box.Y+5, hint, core.ColorGray)
}
