package wordfinder

import (
	"github.com/katalvlaran/wordgrid/grid"
)

// Match is one ranked result: a candidate word, in the casing it was first
// seen in the stream, and the number of grid windows it matched.
type Match struct {
	Word  string
	Count int
}

// Finder searches one immutable grid. Build it with New.
// rows and cols hold the lowercased grid read along each direction.
type Finder struct {
	grid *grid.Grid
	rows []line
	cols []line
	opts Options
}

// New validates rows as a grid and indexes it for searching.
// Returns ErrNilInput, ErrEmptyGrid, ErrOversizedGrid or a wrapped
// ErrInconsistentRowLength.
// Complexity: O(R·C) time and memory.
func New(rows []string, opts ...Option) (*Finder, error) {
	g, err := grid.New(rows)
	if err != nil {
		return nil, err
	}
	f := &Finder{
		grid: g,
		rows: make([]line, g.Rows()),
		cols: make([]line, g.Cols()),
		opts: gatherOptions(opts...),
	}
	for r := range f.rows {
		f.rows[r] = newLine(g.Row(r))
	}
	for c := range f.cols {
		f.cols[c] = newLine(g.Column(c))
	}

	return f, nil
}

// Grid returns the grid being searched.
func (f *Finder) Grid() *grid.Grid { return f.grid }

// FindWithCounts returns the most frequent words of the stream found in the
// grid, with their occurrence counts, ordered by count desc then word asc
// and truncated to the configured limit.
//
// A nil stream returns ErrNilInput. An empty stream returns an empty result.
// Complexity: O(W + R·C·L), L = number of distinct candidate lengths.
func (f *Finder) FindWithCounts(words []string) ([]Match, error) {
	if words == nil {
		return nil, ErrNilInput
	}
	if len(words) == 0 {
		return []Match{}, nil
	}

	cs := newCandidates(words)
	tally := make(map[string]int)
	cs.scan(f.rows, tally) // horizontal
	cs.scan(f.cols, tally) // vertical

	return rank(tally, f.opts.limit), nil
}

// Find is FindWithCounts without the counts. Word order is identical.
func (f *Finder) Find(words []string) ([]string, error) {
	ms, err := f.FindWithCounts(words)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.Word
	}
	return out, nil
}
