// SPDX-License-Identifier: MIT

package align

import "strings"

// Gap is the display character for a missing base in Lines.
const Gap = '-'

// Lines is a human-readable view of an alignment:
//
//	Seq:  AC-T
//	Mid:  || |
//	Ref:  ACGT
//	Code: ==D=
//
// Mid shows '|' for a match, '.' for a substitution and ' ' for a gap.
// The format is informational and carries no compatibility guarantee.
type Lines struct {
	Seq  string
	Mid  string
	Ref  string
	Code string
}

// String joins the four lines with newlines.
func (l Lines) String() string {
	return strings.Join([]string{l.Seq, l.Mid, l.Ref, l.Code}, "\n")
}

// Render builds the aligned display lines for ops.
// The script is validated against seq and ref first; see Script.Validate.
func Render(seq, ref string, ops Script) (Lines, error) {
	if err := ops.Validate(seq, ref); err != nil {
		return Lines{}, err
	}

	s := make([]byte, len(ops))
	mid := make([]byte, len(ops))
	r := make([]byte, len(ops))
	var i, j int
	for k, op := range ops {
		switch op {
		case Match, Substitution:
			s[k], r[k] = seq[i], ref[j]
			mid[k] = '|'
			if op == Substitution {
				mid[k] = '.'
			}
			i++
			j++
		case Insertion:
			s[k], mid[k], r[k] = seq[i], ' ', Gap
			i++
		case Deletion:
			s[k], mid[k], r[k] = Gap, ' ', ref[j]
			j++
		}
	}

	return Lines{Seq: string(s), Mid: string(mid), Ref: string(r), Code: ops.Code()}, nil
}
