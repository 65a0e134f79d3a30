package tetris

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Board file cell markers. Occupied cells use the letter of the shape that
// landed there; '#' is accepted for blocks of unknown origin.
const (
	boardEmpty   = '.'
	boardUnknown = '#'
)

// BoardFile is the YAML form of a playfield snapshot.
type BoardFile struct {
	Score int      `yaml:"score"`
	Rows  []string `yaml:"rows"`
}

// EncodeBoard converts a grid to its file form, top row first.
func EncodeBoard(g Grid, score int) BoardFile {
	b := BoardFile{Score: score, Rows: make([]string, Height)}
	for row := 0; row < Height; row++ {
		var sb strings.Builder
		for col := 0; col < Width; col++ {
			c := g.Cell(row, col)
			switch s, ok := ShapeForColor(c); {
			case c == Empty:
				sb.WriteRune(boardEmpty)
			case ok:
				sb.WriteString(s.String())
			default:
				sb.WriteRune(boardUnknown)
			}
		}
		b.Rows[row] = sb.String()
	}
	return b
}

// Grid decodes the rows back into a playfield.
func (b BoardFile) Grid() (Grid, error) {
	var g Grid
	if len(b.Rows) != Height {
		return g, fmt.Errorf("tetris: board has %d rows, want %d", len(b.Rows), Height)
	}
	for row, line := range b.Rows {
		runes := []rune(line)
		if len(runes) != Width {
			return g, fmt.Errorf("tetris: board row %d has %d cells, want %d", row, len(runes), Width)
		}
		for col, r := range runes {
			switch r {
			case boardEmpty:
				continue
			case boardUnknown:
				g.SetCell(row, col, core.ColorGray)
			default:
				s, err := ParseShape(r)
				if err != nil {
					return g, fmt.Errorf("tetris: board row %d col %d: %w", row, col, err)
				}
				g.SetCell(row, col, s.Color())
			}
		}
	}
	return g, nil
}

// WriteBoard encodes a grid as YAML.
func WriteBoard(w io.Writer, g Grid, score int) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(EncodeBoard(g, score)); err != nil {
		return fmt.Errorf("tetris: encode board: %w", err)
	}
	return enc.Close()
}

// ReadBoard decodes a YAML board.
func ReadBoard(r io.Reader) (Grid, int, error) {
	var b BoardFile
	if err := yaml.NewDecoder(r).Decode(&b); err != nil {
		return Grid{}, 0, fmt.Errorf("tetris: decode board: %w", err)
	}
	g, err := b.Grid()
	if err != nil {
		return Grid{}, 0, err
	}
	return g, b.Score, nil
}

// LoadBoard reads a board file from disk.
func LoadBoard(path string) (Grid, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return Grid{}, 0, fmt.Errorf("tetris: open board: %w", err)
	}
	defer f.Close()
	return ReadBoard(f)
}

// SaveBoard writes a board file named name.yaml into dir, creating dir if
// needed, and returns the file path.
func SaveBoard(dir, name string, g Grid, score int) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tetris: cannot create directory %s: %w", dir, err)
	}
	path := filepath.Join(dir, name+".yaml")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return "", fmt.Errorf("tetris: create board: %w", err)
	}
	if err := WriteBoard(f, g, score); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("tetris: close board: %w", err)
	}
	return path, nil
}
