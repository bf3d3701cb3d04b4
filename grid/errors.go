package grid

import "errors"

var (
	// ErrNilInput indicates a required rows slice was nil.
	ErrNilInput = errors.New("grid: input must not be nil")
	// ErrEmptyGrid indicates the grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrOversizedGrid indicates the grid exceeds MaxSize in either dimension.
	ErrOversizedGrid = errors.New("grid: grid size cannot exceed 64x64")
	// ErrInconsistentRowLength indicates rows of differing lengths.
	ErrInconsistentRowLength = errors.New("grid: all rows must have the same length")
)
