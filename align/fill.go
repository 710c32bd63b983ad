// SPDX-License-Identifier: MIT

package align

// fill populates w for seq (rows) against ref (columns).
//
// Initialization:
//
//	cell(0,0) = {0, End}
//	cell(0,y) = cell(0,y-1) + ScoreDelete(0,y-1), Left   (free in Subsequence mode)
//	cell(x,0) = cell(x-1,0) + ScoreInsert(x-1,0), Up     (always costed)
//
// Recurrence for x ≥ 1, y ≥ 1 with i = x-1, j = y-1:
//
//	diag = cell(x-1,y-1) + ScorePair(i, j, seq[i], ref[j])
//	left = cell(x,y-1)   + ScoreDelete(i, j)   (no cost on the last row in Subsequence mode)
//	up   = cell(x-1,y)   + ScoreInsert(i, j)
//
// The maximum wins; ties resolve diag > left > up. Downstream consumers depend
// on this exact precedence.
//
// Only the reference may overhang for free: the observed sequence is anchored,
// so column 0 is costed in both modes.
//
// Complexity: O(n·m) time, one Scorer call per transition.
func fill(w *workMatrix, seq, ref string, s Scorer, mode Mode) {
	n, m := len(seq), len(ref)
	free := mode == Subsequence

	w.set(0, 0, 0, tagEnd)

	// Row 0: leading deletions of ref.
	for y := 1; y <= m; y++ {
		score := w.at(0, y-1).score()
		if !free {
			score += s.ScoreDelete(0, y-1)
		}
		w.set(0, y, score, tagLeft)
	}

	for x := 1; x <= n; x++ {
		i := x - 1
		// Column 0: leading insertions of seq.
		w.set(x, 0, w.at(i, 0).score()+s.ScoreInsert(i, 0), tagUp)

		freeLeft := free && x == n
		base := seq[i]
		for y := 1; y <= m; y++ {
			j := y - 1

			diag := w.at(i, j).score() + s.ScorePair(i, j, base, ref[j])
			left := w.at(x, j).score()
			if !freeLeft {
				left += s.ScoreDelete(i, j)
			}
			up := w.at(i, y).score() + s.ScoreInsert(i, j)

			best, t := diag, tagDiag
			if left > best {
				best, t = left, tagLeft
			}
			if up > best {
				best, t = up, tagUp
			}
			w.set(x, y, best, t)
		}
	}
}
