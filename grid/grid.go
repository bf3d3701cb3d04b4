package grid

import (
	"fmt"
	"unicode/utf8"
)

// MaxSize is the largest number of rows or columns a Grid may have.
const MaxSize = 64

// Grid is an immutable R×C matrix of characters.
// cells[r][c] holds the rune at row r, column c.
type Grid struct {
	rows, cols int
	cells      [][]rune
}

// New builds a Grid from rows, one string per row.
// Validation runs in a fixed order: nil input, empty grid, oversized grid,
// an empty row 0, then row length consistency against row 0. Size is
// checked before any row is copied.
// Returns ErrNilInput, ErrEmptyGrid, ErrOversizedGrid or a wrapped
// ErrInconsistentRowLength naming the offending row (1-based).
// Complexity: O(R×C) time and memory.
func New(rows []string) (*Grid, error) {
	if rows == nil {
		return nil, ErrNilInput
	}
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}

	h, w := len(rows), utf8.RuneCountInString(rows[0])
	if h > MaxSize || w > MaxSize {
		return nil, fmt.Errorf("%w: got %dx%d", ErrOversizedGrid, h, w)
	}
	if w == 0 {
		return nil, ErrEmptyGrid
	}

	cells := make([][]rune, h)
	for r, s := range rows {
		cells[r] = []rune(s)
		if len(cells[r]) != w {
			return nil, fmt.Errorf("%w: row 1 has %d characters, row %d has %d characters",
				ErrInconsistentRowLength, w, r+1, len(cells[r]))
		}
	}

	return &Grid{rows: h, cols: w, cells: cells}, nil
}

// Rows returns the number of rows R.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns C.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether (r,c) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

// At returns the character at row r, column c.
// It panics if (r,c) is out of bounds; check with InBounds first.
func (g *Grid) At(r, c int) rune {
	return g.cells[r][c]
}

// Row returns a copy of row r read left to right.
// Complexity: O(C).
func (g *Grid) Row(r int) []rune {
	out := make([]rune, g.cols)
	copy(out, g.cells[r])
	return out
}

// Column returns a copy of column c read top to bottom.
// Complexity: O(R).
func (g *Grid) Column(c int) []rune {
	out := make([]rune, g.rows)
	for r := 0; r < g.rows; r++ {
		out[r] = g.cells[r][c]
	}
	return out
}

// Strings returns the grid as one string per row.
func (g *Grid) Strings() []string {
	out := make([]string, g.rows)
	for r, row := range g.cells {
		out[r] = string(row)
	}
	return out
}
