// Package render draws a character grid and ranked matches for a console.
// It only reads the grid; nothing here mutates what it prints.
package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/wordgrid/wordfinder"
)

// Cells is the read-only view of a grid that Box needs.
// *grid.Grid satisfies it.
type Cells interface {
	Rows() int
	Cols() int
	At(r, c int) rune
}

// Box writes g with box-drawing borders and a separator between every
// pair of cells:
//
//	┌─┬─┐
//	│a│b│
//	├─┼─┤
//	│c│d│
//	└─┴─┘
func Box(w io.Writer, g Cells) error {
	bw := bufio.NewWriter(w)
	rows, cols := g.Rows(), g.Cols()
	if rows == 0 || cols == 0 {
		return nil
	}

	border(bw, cols, '┌', '┬', '┐')
	for r := 0; r < rows; r++ {
		bw.WriteRune('│')
		for c := 0; c < cols; c++ {
			bw.WriteRune(g.At(r, c))
			bw.WriteRune('│')
		}
		bw.WriteByte('\n')
		if r < rows-1 {
			border(bw, cols, '├', '┼', '┤')
		}
	}
	border(bw, cols, '└', '┴', '┘')

	return bw.Flush()
}

// border writes one horizontal rule of cols cells.
func border(bw *bufio.Writer, cols int, left, mid, right rune) {
	bw.WriteRune(left)
	for c := 0; c < cols; c++ {
		bw.WriteRune('─')
		if c < cols-1 {
			bw.WriteRune(mid)
		}
	}
	bw.WriteRune(right)
	bw.WriteByte('\n')
}

// NoMatches is printed by Results when ms is empty.
const NoMatches = "No words found in the matrix."

// Results writes one "- word (count)" line per match, or NoMatches.
func Results(w io.Writer, ms []wordfinder.Match) error {
	bw := bufio.NewWriter(w)
	if len(ms) == 0 {
		fmt.Fprintln(bw, NoMatches)
		return bw.Flush()
	}
	for _, m := range ms {
		fmt.Fprintf(bw, "- %s (%d)\n", m.Word, m.Count)
	}
	return bw.Flush()
}
