// Command wordfinder prints a board, searches it for a word stream and
// lists the most frequent matches.
//
// Configuration comes from WORDFINDER_GRID, WORDFINDER_WORDS and
// WORDFINDER_LIMIT; see Config.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/katalvlaran/wordgrid/render"
	"github.com/katalvlaran/wordgrid/wordfinder"
)

func main() {
	log.SetFlags(0)

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	if err := run(os.Stdout, cfg); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

// run searches cfg.Grid for cfg.Words and writes the report to w.
func run(w io.Writer, cfg Config) error {
	f, err := wordfinder.New(cfg.Grid, wordfinder.WithLimit(cfg.Limit))
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "=== WordFinder Challenge Demo ===")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Matrix:")
	if err := render.Box(w, f.Grid()); err != nil {
		return fmt.Errorf("render grid: %w", err)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Word Stream:")
	fmt.Fprintln(w, strings.Join(cfg.Words, ", "))

	ms, err := f.FindWithCounts(cfg.Words)
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Results (Top %d most repeated words found):\n", cfg.Limit)

	return render.Results(w, ms)
}
