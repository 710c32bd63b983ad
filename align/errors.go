// SPDX-License-Identifier: MIT
// Package align: sentinel error set.
// Every public entry point returns one of these sentinels (possibly wrapped with
// fmt.Errorf("...: %w", ErrX)); callers match them with errors.Is.
// Precondition errors are returned before any work matrix is allocated.

package align

import "errors"

var (
	// ErrNilScorer is returned when WithScorer(nil) was applied.
	ErrNilScorer = errors.New("align: scorer is nil")

	// ErrBadMode is returned when the requested Mode is neither Full nor Subsequence.
	ErrBadMode = errors.New("align: unknown alignment mode")

	// ErrBadMaxCells is returned when WithMaxCells received a non-positive limit.
	ErrBadMaxCells = errors.New("align: cell limit must be > 0")

	// ErrTooLarge is returned when (len(seq)+1)*(len(ref)+1) exceeds the cell limit.
	ErrTooLarge = errors.New("align: work matrix exceeds cell limit")

	// ErrScriptLength indicates that a Script does not consume exactly
	// len(seq) observed and len(ref) reference characters.
	ErrScriptLength = errors.New("align: script length does not match sequences")

	// ErrScriptMismatch indicates that a Match pairs unequal characters
	// or a Substitution pairs equal ones.
	ErrScriptMismatch = errors.New("align: script disagrees with sequence content")
)
