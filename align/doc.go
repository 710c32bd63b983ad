// Package align performs pairwise sequence alignment with Needleman–Wunsch
// dynamic programming and returns an ordered edit script.
//
// What it does:
//
//	An observed sequence seq (rows) is aligned against a reference ref (columns).
//	The result is a Script of Match / Substitution / Insertion / Deletion
//	operations which, replayed left to right, reconstructs both inputs.
//
// Modes:
//   - Full        - classic global alignment, every indel costed.
//   - Subsequence - ref may extend past both ends of seq at no cost; used to
//     locate a read inside a longer template.
//
// Scoring is pluggable through the Scorer interface. DefaultScorer gives
// +1 / -1 / -1 (match / mismatch / indel); LinearScorer and ScorerFuncs cover
// custom constants and per-position costs.
//
// Usage:
//
//	ops, err := align.AlignSubsequence("TTAGACGTC", "CGTTTAGACGTC")
//	// ops.CIGAR() == "3D9="
//
//	a, err := align.Align(seq, ref,
//	  align.WithMode(align.Subsequence),
//	  align.WithScorer(align.NewLinearScorer(2, -1, -2)),
//	  align.WithLogger(logger), align.WithTrace(true))
//
// Determinism:
//
//	Ties resolve diag > left > up, so equal-scoring paths always prefer a
//	match/substitution over an indel, and a deletion over an insertion.
//
// Performance:
//
//   - Time:   O(n·m)
//   - Memory: O(n·m), one packed 8-byte cell per matrix entry
//
// Each call owns its matrix; the package is safe for concurrent use with
// stateless scorers.
package align
