// Package grid holds an immutable rectangular grid of characters, the
// board that wordfinder scans for words.
//
// What:
//
//   - Grid wraps R rows × C columns of runes built from a []string.
//   - Rows are measured in characters (runes), not bytes.
//   - The input is deep-copied; nothing mutates a Grid after New returns.
//
// Limits:
//
//   - 1 ≤ R ≤ MaxSize and 1 ≤ C ≤ MaxSize, where C is the length of row 0.
//
// Complexity:
//
//   - New:          O(R×C) time and memory.
//   - At, InBounds: O(1).
//   - Row, Column:  O(C) and O(R), each returning a fresh copy.
//
// Errors:
//
//   - ErrNilInput: rows slice is nil.
//   - ErrEmptyGrid: no rows, or row 0 has no characters.
//   - ErrOversizedGrid: more than MaxSize rows or columns.
//   - ErrInconsistentRowLength: a row's length differs from row 0.
package grid
