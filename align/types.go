// SPDX-License-Identifier: MIT

package align

import "strconv"

// Mode selects how the ends of the reference are scored.
//
//   - Full        - both ends anchored; every insertion and deletion is costed.
//   - Subsequence - leading and trailing reference deletions are free, so seq
//     may match anywhere inside a longer ref template.
type Mode int

const (
	// Full is global Needleman–Wunsch alignment.
	Full Mode = iota

	// Subsequence lets ref overhang both ends of seq without penalty.
	Subsequence
)

// String returns "full", "subsequence" or "Mode(n)".
func (m Mode) String() string {
	switch m {
	case Full:
		return "full"
	case Subsequence:
		return "subsequence"
	default:
		return "Mode(" + strconv.Itoa(int(m)) + ")"
	}
}

func (m Mode) valid() bool { return m == Full || m == Subsequence }

// Alignment is the result of Align.
//
// Fields:
//   - Ops   - left-to-right edit script spanning all of seq and ref.
//   - Score - optimal accumulated score, cell(len(seq), len(ref)).
//   - Mode  - the mode the alignment was computed in.
type Alignment struct {
	Ops   Script
	Score int
	Mode  Mode
}
