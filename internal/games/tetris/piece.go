package tetris

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Shape is one of the seven tetromino kinds.
type Shape int

const (
	ShapeI Shape = iota
	ShapeO
	ShapeT
	ShapeS
	ShapeZ
	ShapeJ
	ShapeL
)

// Shapes lists every shape in spawn-table order.
var Shapes = [...]Shape{ShapeI, ShapeO, ShapeT, ShapeS, ShapeZ, ShapeJ, ShapeL}

// String returns the shape's letter.
func (s Shape) String() string {
	if s < 0 || int(s) >= len(shapeLetters) {
		return "?"
	}
	return string(shapeLetters[s])
}

// Color returns the color blocks of this shape are drawn with.
func (s Shape) Color() core.Color {
	return shapeColors[s]
}

const shapeLetters = "IOTSZJL"

var shapeColors = [...]core.Color{
	ShapeI: core.ColorCyan,
	ShapeO: core.ColorYellow,
	ShapeT: core.ColorMagenta,
	ShapeS: core.ColorGreen,
	ShapeZ: core.ColorRed,
	ShapeJ: core.ColorBlue,
	ShapeL: core.ColorOrange,
}

// ParseShape converts a letter (I, O, T, S, Z, J, L) back to a Shape.
func ParseShape(r rune) (Shape, error) {
	for i, l := range shapeLetters {
		if l == r {
			return Shape(i), nil
		}
	}
	return 0, fmt.Errorf("tetris: unknown shape %q", r)
}

// ShapeForColor returns the shape drawn with the given color.
func ShapeForColor(c core.Color) (Shape, bool) {
	for i, sc := range shapeColors {
		if sc == c {
			return Shape(i), true
		}
	}
	return 0, false
}

// Point is a grid position.
type Point struct {
	Row, Col int
}

// Direction is a unit move of the active piece.
type Direction int

const (
	Down Direction = iota
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// delta returns the (row, col) offset of a one-step move.
func (d Direction) delta() (int, int) {
	switch d {
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	default:
		return 1, 0
	}
}

// template is the canonical layout of a shape, relative to the spawn origin.
// pivot indexes the cell rotations turn around; -1 means the shape does not rotate.
type template struct {
	cells [4]Point
	pivot int
}

/*
Spawn layouts (origin column is width/2-2):

	I  ####     O   ##    T   #     S   ##    Z  ##     J  #      L    #
	            .   ##       ###       ##        ##       ###        ###
*/
var templates = [...]template{
	ShapeI: {cells: [4]Point{{0, 0}, {0, 1}, {0, 2}, {0, 3}}, pivot: 1},
	ShapeO: {cells: [4]Point{{0, 1}, {0, 2}, {1, 1}, {1, 2}}, pivot: -1},
	ShapeT: {cells: [4]Point{{0, 1}, {1, 0}, {1, 1}, {1, 2}}, pivot: 2},
	ShapeS: {cells: [4]Point{{0, 1}, {0, 2}, {1, 0}, {1, 1}}, pivot: 3},
	ShapeZ: {cells: [4]Point{{0, 0}, {0, 1}, {1, 1}, {1, 2}}, pivot: 2},
	ShapeJ: {cells: [4]Point{{0, 0}, {1, 0}, {1, 1}, {1, 2}}, pivot: 2},
	ShapeL: {cells: [4]Point{{0, 2}, {1, 0}, {1, 1}, {1, 2}}, pivot: 2},
}

// Piece is the active falling tetromino. Cells are absolute grid positions
// and are moved directly; they are not recomputed from a rotation state.
type Piece struct {
	Shape Shape
	Cells [4]Point
	Color core.Color
	pivot int
}

// Spawn places a shape at the spawn position for a grid of the given width.
func Spawn(s Shape, width int) Piece {
	t := templates[s]
	p := Piece{Shape: s, Color: s.Color(), pivot: t.pivot}
	origin := width/2 - 2
	for i, c := range t.cells {
		p.Cells[i] = Point{Row: c.Row, Col: c.Col + origin}
	}
	return p
}

// SpawnRandom spawns a uniformly chosen shape.
func SpawnRandom(rng *rand.Rand, width int) Piece {
	return Spawn(Shapes[rng.Intn(len(Shapes))], width)
}

// Shift moves every cell one step in the given direction. It does not check
// bounds or occupancy.
func (p *Piece) Shift(d Direction) {
	dr, dc := d.delta()
	for i := range p.Cells {
		p.Cells[i].Row += dr
		p.Cells[i].Col += dc
	}
}

// Rotate returns the cells turned 90° clockwise about the pivot without
// changing the piece. ok is false for shapes that do not rotate; the
// returned cells are then the current ones.
func (p *Piece) Rotate() (cells [4]Point, ok bool) {
	if p.pivot < 0 {
		return p.Cells, false
	}
	pv := p.Cells[p.pivot]
	for i, c := range p.Cells {
		dr, dc := c.Row-pv.Row, c.Col-pv.Col
		cells[i] = Point{Row: pv.Row + dc, Col: pv.Col - dr}
	}
	return cells, true
}

// Occupies reports whether one of the piece's cells is at (row, col).
func (p *Piece) Occupies(row, col int) bool {
	for _, c := range p.Cells {
		if c.Row == row && c.Col == col {
			return true
		}
	}
	return false
}
