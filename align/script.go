// SPDX-License-Identifier: MIT

package align

import (
	"fmt"
	"strconv"
	"strings"
)

// Op is a single edit-script operation. Each Op consumes one matrix step.
type Op uint8

const (
	// Match aligns equal characters of seq and ref.
	Match Op = iota
	// Substitution aligns unequal characters of seq and ref.
	Substitution
	// Insertion consumes a seq character only.
	Insertion
	// Deletion consumes a ref character only.
	Deletion
)

var (
	opNames = [...]string{"MATCH", "SUBSTITUTION", "INSERTION", "DELETION"}
	opCodes = [...]byte{'=', 'X', 'I', 'D'}
)

// String returns the upper-case operation name.
func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}

	return "Op(" + strconv.Itoa(int(o)) + ")"
}

// Code returns the one-character code of o: '=', 'X', 'I' or 'D'.
// Unknown values map to '?'.
func (o Op) Code() byte {
	if int(o) < len(opCodes) {
		return opCodes[o]
	}

	return '?'
}

// consumesSeq reports whether o advances the observed sequence.
func (o Op) consumesSeq() bool { return o != Deletion }

// consumesRef reports whether o advances the reference sequence.
func (o Op) consumesRef() bool { return o != Insertion }

// Script is an ordered, left-to-right edit script turning ref into seq.
type Script []Op

// Counts holds per-kind operation totals of a Script.
type Counts struct {
	Matches       int
	Substitutions int
	Insertions    int
	Deletions     int
}

// Identity returns the fraction of aligned columns that are matches.
// An empty script has identity 0.
func (c Counts) Identity() float64 {
	total := c.Matches + c.Substitutions + c.Insertions + c.Deletions
	if total == 0 {
		return 0
	}

	return float64(c.Matches) / float64(total)
}

// Counts tallies the operations of s.
func (s Script) Counts() Counts {
	var c Counts
	for _, op := range s {
		switch op {
		case Match:
			c.Matches++
		case Substitution:
			c.Substitutions++
		case Insertion:
			c.Insertions++
		case Deletion:
			c.Deletions++
		}
	}

	return c
}

// SeqLen returns the number of observed characters consumed by s.
func (s Script) SeqLen() int {
	c := s.Counts()

	return c.Matches + c.Substitutions + c.Insertions
}

// RefLen returns the number of reference characters consumed by s.
func (s Script) RefLen() int {
	c := s.Counts()

	return c.Matches + c.Substitutions + c.Deletions
}

// Code returns one code character per operation, e.g. "==D=".
func (s Script) Code() string {
	b := make([]byte, len(s))
	for i, op := range s {
		b[i] = op.Code()
	}

	return string(b)
}

// CIGAR returns the run-length encoded extended CIGAR string of s, e.g. "2=1D1=".
// An empty script yields "".
func (s Script) CIGAR() string {
	var sb strings.Builder
	for i := 0; i < len(s); {
		j := i
		for j < len(s) && s[j] == s[i] {
			j++
		}
		sb.WriteString(strconv.Itoa(j - i))
		sb.WriteByte(s[i].Code())
		i = j
	}

	return sb.String()
}

// Core returns s without its leading and trailing Deletion runs: the part of
// the script that covers seq. In Subsequence mode those runs are the free
// reference overhang. The result shares storage with s.
func (s Script) Core() Script {
	l, r := 0, len(s)
	for l < r && s[l] == Deletion {
		l++
	}
	for r > l && s[r-1] == Deletion {
		r--
	}

	return s[l:r]
}

// Validate replays s against seq and ref.
// It returns ErrScriptLength when the consumed lengths differ from the inputs and
// ErrScriptMismatch when a Match or Substitution contradicts the characters it pairs.
func (s Script) Validate(seq, ref string) error {
	if s.SeqLen() != len(seq) || s.RefLen() != len(ref) {
		return fmt.Errorf("seq %d/%d, ref %d/%d: %w",
			s.SeqLen(), len(seq), s.RefLen(), len(ref), ErrScriptLength)
	}

	var i, j int
	for k, op := range s {
		switch op {
		case Match, Substitution:
			if (seq[i] == ref[j]) != (op == Match) {
				return fmt.Errorf("op %d %s at seq[%d]=%q ref[%d]=%q: %w",
					k, op, i, seq[i], j, ref[j], ErrScriptMismatch)
			}
		case Insertion, Deletion:
		default:
			return fmt.Errorf("op %d %s: %w", k, op, ErrScriptMismatch)
		}
		if op.consumesSeq() {
			i++
		}
		if op.consumesRef() {
			j++
		}
	}

	return nil
}
