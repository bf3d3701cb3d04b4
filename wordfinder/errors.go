package wordfinder

import "github.com/katalvlaran/wordgrid/grid"

// Sentinel errors returned by New and the Find methods.
// Grid validation errors are shared with package grid so either name
// matches with errors.Is.
var (
	// ErrNilInput indicates a nil grid or nil word stream.
	ErrNilInput = grid.ErrNilInput
	// ErrEmptyGrid indicates the grid has no rows or no columns.
	ErrEmptyGrid = grid.ErrEmptyGrid
	// ErrOversizedGrid indicates the grid exceeds 64 rows or 64 columns.
	ErrOversizedGrid = grid.ErrOversizedGrid
	// ErrInconsistentRowLength indicates the grid rows are not rectangular.
	ErrInconsistentRowLength = grid.ErrInconsistentRowLength
)
