// Package nwalign is a pairwise sequence-alignment toolkit: Needleman–Wunsch
// dynamic programming with pluggable scoring and a free-end subsequence mode.
//
// 🚀 What is it for?
//
//	Given an observed sequence (a read) and a reference (a template that may be
//	longer than the read), produce the ordered edit script
//	MATCH / SUBSTITUTION / INSERTION / DELETION that explains one by the other.
//
// ✨ Key features:
//   - exact O(N·M) dense matrix with a deterministic diag > left > up tie-break
//   - Full (global) and Subsequence (reference overhang is free) modes
//   - pluggable Scorer: default ±1, linear constants or per-position functions
//   - CIGAR / code-string / aligned-lines rendering and script validation
//   - optional debug tracing to any *slog.Logger
//
// Layout:
//
//	align/           - the aligner: scorer, work matrix, fill, traceback, rendering
//	cmd/nwalign/     - command line front end (cobra + viper)
//	internal/config/ - settings for the command line front end
//	examples/        - runnable demonstration
//
//	go get github.com/katalvlaran/nwalign/align
package nwalign
