// SPDX-License-Identifier: MIT

package align

// traceback walks a filled matrix from (len(seq), len(ref)) back to the End cell
// and returns the edit script in left-to-right order.
func traceback(w *workMatrix, seq, ref string) Script {
	x, y := len(seq), len(ref)
	ops := make(Script, 0, x+y)

	for done := false; !done; {
		switch w.at(x, y).tag() {
		case tagDiag:
			x--
			y--
			if seq[x] == ref[y] {
				ops = append(ops, Match)
			} else {
				ops = append(ops, Substitution)
			}
		case tagLeft:
			y--
			ops = append(ops, Deletion)
		case tagUp:
			x--
			ops = append(ops, Insertion)
		default:
			done = true
		}
	}

	// reverse in place: ops were collected end-to-start
	for l, r := 0, len(ops)-1; l < r; l, r = l+1, r-1 {
		ops[l], ops[r] = ops[r], ops[l]
	}

	return ops
}
