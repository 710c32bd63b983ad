package align_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/nwalign/align"
)

// benchmarkAlign runs Align on random sequences of lengths n and m in mode.
func benchmarkAlign(b *testing.B, n, m int, mode align.Mode) {
	r := rand.New(rand.NewSource(1))
	seq := randomSeq(r, n, "ACGT")
	ref := randomSeq(r, m, "ACGT")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := align.Align(seq, ref, align.WithMode(mode)); err != nil {
			b.Fatalf("Align failed: %v", err)
		}
	}
}

// BenchmarkAlign_Full100 benchmarks Full mode on 100×100 sequences.
func BenchmarkAlign_Full100(b *testing.B) { benchmarkAlign(b, 100, 100, align.Full) }

// BenchmarkAlign_Full300 benchmarks Full mode on 300×300 sequences.
func BenchmarkAlign_Full300(b *testing.B) { benchmarkAlign(b, 300, 300, align.Full) }

// BenchmarkAlign_Subsequence150x600 benchmarks a read against a 4× longer template.
func BenchmarkAlign_Subsequence150x600(b *testing.B) {
	benchmarkAlign(b, 150, 600, align.Subsequence)
}
