package wordfinder_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/wordgrid/wordfinder"
)

// randomBoard returns an n×n grid of lowercase letters from a fixed seed.
func randomBoard(rng *rand.Rand, n int) []string {
	rows := make([]string, n)
	for r := range rows {
		var sb strings.Builder
		for c := 0; c < n; c++ {
			sb.WriteByte(byte('a' + rng.Intn(26)))
		}
		rows[r] = sb.String()
	}
	return rows
}

// randomStream returns count words of 3 to 6 letters.
func randomStream(rng *rand.Rand, count int) []string {
	words := make([]string, count)
	for i := range words {
		n := 3 + rng.Intn(4)
		b := make([]byte, n)
		for j := range b {
			b[j] = byte('a' + rng.Intn(26))
		}
		words[i] = string(b)
	}
	return words
}

// BenchmarkFindWithCounts measures a 64×64 board against 100k candidates
// spanning four distinct lengths.
// Complexity: O(W + R·C·L)
func BenchmarkFindWithCounts(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	f, err := wordfinder.New(randomBoard(rng, 64))
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	stream := randomStream(rng, 100_000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = f.FindWithCounts(stream)
	}
}

// BenchmarkFindWithCountsParallel runs searches concurrently on one Finder.
func BenchmarkFindWithCountsParallel(b *testing.B) {
	rng := rand.New(rand.NewSource(7))
	f, err := wordfinder.New(randomBoard(rng, 64))
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	stream := randomStream(rng, 10_000)

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, _ = f.FindWithCounts(stream)
		}
	})
}
