// Package wordfinder counts occurrences of candidate words in a character
// grid and ranks the most frequent ones.
//
// 🚀 What is wordfinder?
//
//	Given a grid of up to 64×64 characters and a stream of candidate words,
//	Finder reports which candidates occur in the grid, read left to right
//	along rows or top to bottom along columns, and how many times:
//	  • matching is case-insensitive (ordinal, after lowercasing)
//	  • repeated candidates collapse into one entry, first casing wins
//	  • every matching window counts once, overlaps included
//	  • results are ordered by count desc, then word asc, top 10 kept
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/wordgrid/wordfinder"
//
//	f, err := wordfinder.New([]string{"hello", "world"})
//	if err != nil {
//	  // ErrNilInput, ErrEmptyGrid, ErrOversizedGrid, ErrInconsistentRowLength
//	}
//	matches, err := f.FindWithCounts([]string{"hello", "world", "notfound"})
//
// Performance:
//
//   - New:            O(R·C)
//   - FindWithCounts: O(W + R·C·L) where W is the stream size and L the
//     number of distinct candidate lengths. Only lengths present in the
//     stream are probed, so a large stream of a few word sizes stays cheap.
//
// Concurrency:
//
//	A Finder is immutable after New. Every search allocates its own
//	candidate index and tally, so one Finder may serve concurrent calls.
package wordfinder
