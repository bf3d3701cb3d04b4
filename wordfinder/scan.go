package wordfinder

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// line is one lowercased row or column. offs[i] is the byte offset of
// character i in text; offs[n] == len(text), so a window of L characters
// starting at i is text[offs[i]:offs[i+L]] and needs no allocation.
type line struct {
	text string
	offs []int
}

// newLine lowercases chars rune by rune and records character offsets.
func newLine(chars []rune) line {
	var sb strings.Builder
	offs := make([]int, 0, len(chars)+1)
	for _, ch := range chars {
		offs = append(offs, sb.Len())
		sb.WriteRune(unicode.ToLower(ch))
	}
	offs = append(offs, sb.Len())
	return line{text: sb.String(), offs: offs}
}

// size returns the number of characters in the line.
func (l line) size() int { return len(l.offs) - 1 }

// candidates is the per-call index of the word stream.
// words maps the lowercased word to the casing first seen for it;
// lengths holds the distinct character lengths, ascending, zero excluded.
type candidates struct {
	words   map[string]string
	lengths []int
}

// newCandidates indexes the stream in one pass. A later word that
// lowercases to an existing key is ignored, so the first casing wins.
func newCandidates(stream []string) candidates {
	cs := candidates{words: make(map[string]string, len(stream))}
	seen := make(map[int]struct{})
	for _, w := range stream {
		key := strings.ToLower(w)
		if _, ok := cs.words[key]; ok {
			continue
		}
		cs.words[key] = w
		n := utf8.RuneCountInString(key)
		if n == 0 {
			continue
		}
		if _, ok := seen[n]; !ok {
			seen[n] = struct{}{}
			cs.lengths = append(cs.lengths, n)
		}
	}
	sort.Ints(cs.lengths)
	return cs
}

// scan slides every candidate length over every line and bumps the tally
// of each window that equals a candidate.
func (cs candidates) scan(lines []line, tally map[string]int) {
	for _, l := range lines {
		n := l.size()
		for start := 0; start < n; start++ {
			for _, size := range cs.lengths {
				end := start + size
				if end > n {
					break
				}
				if w, ok := cs.words[l.text[l.offs[start]:l.offs[end]]]; ok {
					tally[w]++
				}
			}
		}
	}
}

// rank orders tally entries by count desc, then word asc, keeping at most limit.
func rank(tally map[string]int, limit int) []Match {
	ms := make([]Match, 0, len(tally))
	for w, n := range tally {
		ms = append(ms, Match{Word: w, Count: n})
	}
	sort.Slice(ms, func(i, j int) bool {
		if ms[i].Count != ms[j].Count {
			return ms[i].Count > ms[j].Count
		}
		return ms[i].Word < ms[j].Word
	})
	if len(ms) > limit {
		ms = ms[:limit]
	}
	return ms
}
