// SPDX-License-Identifier: MIT

package align

import (
	"context"
	"log/slog"
)

// Align computes the optimal alignment of the observed sequence seq against the
// reference ref in the mode selected by WithMode (Full by default).
//
// Stages:
//  1. Validate options (ErrNilScorer, ErrBadMode, ErrBadMaxCells) and the
//     matrix size (ErrTooLarge). Nothing is allocated on failure.
//  2. Allocate a fresh (len(seq)+1)x(len(ref)+1) work matrix.
//  3. Forward fill with the configured Scorer.
//  4. Trace back from the bottom-right cell and reverse into left-to-right order.
//
// Empty inputs are valid: an empty seq yields all Deletion, an empty ref all
// Insertion, both empty an empty script.
//
// Complexity: O(n·m) time and memory.
func Align(seq, ref string, opts ...Option) (Alignment, error) {
	return run(seq, ref, gatherOptions(opts...))
}

// AlignSequence aligns seq against ref in Full mode: both ends anchored and all
// insertion and deletion costs active.
//
// Example:
//
//	ops, _ := AlignSequence("ACT", "ACGT")
//	fmt.Println(ops.Code()) // ==D=
func AlignSequence(seq, ref string, opts ...Option) (Script, error) {
	o := gatherOptions(opts...)
	o.mode = Full
	a, err := run(seq, ref, o)

	return a.Ops, err
}

// AlignSubsequence aligns seq against a potentially longer ref template in
// Subsequence mode: reference characters before and after the matched region are
// consumed as free deletions.
func AlignSubsequence(seq, ref string, opts ...Option) (Script, error) {
	o := gatherOptions(opts...)
	o.mode = Subsequence
	a, err := run(seq, ref, o)

	return a.Ops, err
}

func run(seq, ref string, o Options) (Alignment, error) {
	if err := o.validate(); err != nil {
		return Alignment{}, err
	}
	w, err := newWorkMatrix(len(seq), len(ref), o.maxCells)
	if err != nil {
		return Alignment{}, err
	}

	fill(w, seq, ref, o.scorer, o.mode)
	a := Alignment{
		Ops:   traceback(w, seq, ref),
		Score: w.at(len(seq), len(ref)).score(),
		Mode:  o.mode,
	}

	if o.trace {
		trace(o.logger, w, seq, ref, a)
	}

	return a, nil
}

// trace emits the matrix dump and the aligned lines at debug level.
func trace(l *slog.Logger, w *workMatrix, seq, ref string, a Alignment) {
	ctx := context.Background()
	if !l.Enabled(ctx, slog.LevelDebug) {
		return
	}
	l.LogAttrs(ctx, slog.LevelDebug, "align: matrix",
		slog.String("mode", a.Mode.String()),
		slog.Int("rows", w.rows),
		slog.Int("cols", w.cols),
		slog.String("dump", dumpMatrix(w, seq, ref)),
	)

	lines, err := Render(seq, ref, a.Ops)
	if err != nil {
		l.LogAttrs(ctx, slog.LevelDebug, "align: render failed", slog.String("err", err.Error()))

		return
	}
	l.LogAttrs(ctx, slog.LevelDebug, "align: result",
		slog.Int("score", a.Score),
		slog.String("cigar", a.Ops.CIGAR()),
		slog.String("seq", lines.Seq),
		slog.String("mid", lines.Mid),
		slog.String("ref", lines.Ref),
		slog.String("code", lines.Code),
	)
}
