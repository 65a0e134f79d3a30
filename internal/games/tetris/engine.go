// Package tetris implements the falling-block puzzle: the playfield grid, the
// active piece, the engine state machine that moves, locks and clears, and a
// fixed-step Game adapter the terminal platform drives.
package tetris

import (
	"math/rand"
)

// Command is a discrete instruction applied to the engine.
type Command int

const (
	CmdShiftLeft Command = iota
	CmdShiftRight
	CmdRotate
	CmdHardDrop
	CmdTick
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CmdShiftLeft:
		return "shift-left"
	case CmdShiftRight:
		return "shift-right"
	case CmdRotate:
		return "rotate"
	case CmdHardDrop:
		return "hard-drop"
	case CmdTick:
		return "tick"
	default:
		return "unknown"
	}
}

// TickResult describes what a command did to the playfield.
type TickResult struct {
	Locked  bool // the active piece was merged into the grid
	Cleared int  // rows removed by that lock
}

// Engine owns the grid, the active piece, the score and the over flag.
// It is not safe for concurrent use; the platform drives it from a single
// goroutine.
type Engine struct {
	grid  Grid
	piece Piece
	score int
	over  bool
	rng   *rand.Rand
}

// NewEngine creates an engine with an empty grid and a random first piece.
func NewEngine(rng *rand.Rand) *Engine {
	return &Engine{
		rng:   rng,
		piece: SpawnRandom(rng, Width),
	}
}

// NewEngineWithGrid creates an engine from an existing playfield and active piece.
func NewEngineWithGrid(rng *rand.Rand, grid Grid, piece Piece) *Engine {
	return &Engine{
		grid:  grid,
		piece: piece,
		rng:   rng,
	}
}

// Grid returns a copy of the playfield without the active piece.
func (e *Engine) Grid() Grid {
	return e.grid
}

// Piece returns a copy of the active piece.
func (e *Engine) Piece() Piece {
	return e.piece
}

// Score returns the number of rows cleared so far.
func (e *Engine) Score() int {
	return e.score
}

// Over reports whether a spawned piece collided with the stack.
func (e *Engine) Over() bool {
	return e.over
}

// Apply dispatches a command.
func (e *Engine) Apply(c Command) TickResult {
	switch c {
	case CmdShiftLeft:
		e.Shift(Left)
	case CmdShiftRight:
		e.Shift(Right)
	case CmdRotate:
		e.Turn()
	case CmdHardDrop:
		e.HardDrop()
	case CmdTick:
		return e.Tick()
	}
	return TickResult{}
}

// Touches reports, for each direction, whether moving the active piece one
// step that way would leave the grid or hit an occupied cell.
func (e *Engine) Touches() (left, right, down bool) {
	for _, c := range e.piece.Cells {
		if c.Col == 0 || e.grid.IsOccupied(c.Row, c.Col-1) {
			left = true
		}
		if c.Col == Width-1 || e.grid.IsOccupied(c.Row, c.Col+1) {
			right = true
		}
		if c.Row == Height-1 || e.grid.IsOccupied(c.Row+1, c.Col) {
			down = true
		}
	}
	return left, right, down
}

func (e *Engine) touching(d Direction) bool {
	left, right, down := e.Touches()
	switch d {
	case Left:
		return left
	case Right:
		return right
	default:
		return down
	}
}

// Shift moves the active piece one step unless it is blocked that way.
func (e *Engine) Shift(d Direction) {
	if !e.touching(d) {
		e.piece.Shift(d)
	}
}

// Turn rotates the active piece clockwise if every rotated cell is inside
// the grid and free; otherwise the piece is left as it was.
func (e *Engine) Turn() {
	cells, ok := e.piece.Rotate()
	if !ok || !e.fits(cells) {
		return
	}
	e.piece.Cells = cells
}

func (e *Engine) fits(cells [4]Point) bool {
	for _, c := range cells {
		if !e.grid.InBounds(c.Row, c.Col) || e.grid.IsOccupied(c.Row, c.Col) {
			return false
		}
	}
	return true
}

// HardDrop moves the active piece down until it rests on the floor or the
// stack. Locking is left to the next Tick.
func (e *Engine) HardDrop() {
	for !e.touching(Down) {
		e.piece.Shift(Down)
	}
}

// Tick applies gravity. A piece that can fall moves down one row; a piece
// that rests is merged into the grid, full rows are cleared and scored, and
// the next piece spawns. The game is over when that piece overlaps the stack.
func (e *Engine) Tick() TickResult {
	if !e.touching(Down) {
		e.piece.Shift(Down)
		return TickResult{}
	}

	for _, c := range e.piece.Cells {
		e.grid.SetCell(c.Row, c.Col, e.piece.Color)
	}
	cleared := e.grid.ClearFullRows()
	e.score += cleared

	e.piece = SpawnRandom(e.rng, Width)
	for _, c := range e.piece.Cells {
		if e.grid.IsOccupied(c.Row, c.Col) {
			e.over = true
			break
		}
	}
	return TickResult{Locked: true, Cleared: cleared}
}
