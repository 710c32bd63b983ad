// SPDX-License-Identifier: MIT

package align

// Scorer evaluates the cost or reward of one alignment transition.
//
// Indices are the 0-based positions immediately preceding the transition:
//   - ScoreInsert(i, j)  - seq[i] is inserted, ref is not consumed.
//   - ScoreDelete(i, j)  - ref[j] is deleted, seq is not consumed.
//   - ScorePair(i, j, …) - seq[i] is aligned against ref[j].
//
// Implementations must be pure functions of their arguments; the aligner
// relies on this for deterministic results and for safe concurrent use.
type Scorer interface {
	ScoreInsert(i, j int) int
	ScoreDelete(i, j int) int
	ScorePair(i, j int, base, refBase byte) int
}

// Default scoring constants used by DefaultScorer.
const (
	DefaultMatch    = 1
	DefaultMismatch = -1
	DefaultGap      = -1
)

// DefaultScorer scores +1 for equal bases, -1 otherwise and -1 for any indel.
type DefaultScorer struct{}

// ScoreInsert implements Scorer.
func (DefaultScorer) ScoreInsert(_, _ int) int { return DefaultGap }

// ScoreDelete implements Scorer.
func (DefaultScorer) ScoreDelete(_, _ int) int { return DefaultGap }

// ScorePair implements Scorer.
func (DefaultScorer) ScorePair(_, _ int, base, refBase byte) int {
	if base == refBase {
		return DefaultMatch
	}

	return DefaultMismatch
}

// LinearScorer applies the same constants at every position.
type LinearScorer struct {
	Match    int // reward for equal bases
	Mismatch int // cost for unequal bases
	Insert   int // cost of an inserted seq base
	Delete   int // cost of a deleted ref base
}

// NewLinearScorer returns a LinearScorer using one gap cost for both
// insertions and deletions.
func NewLinearScorer(match, mismatch, gap int) LinearScorer {
	return LinearScorer{Match: match, Mismatch: mismatch, Insert: gap, Delete: gap}
}

// ScoreInsert implements Scorer.
func (s LinearScorer) ScoreInsert(_, _ int) int { return s.Insert }

// ScoreDelete implements Scorer.
func (s LinearScorer) ScoreDelete(_, _ int) int { return s.Delete }

// ScorePair implements Scorer.
func (s LinearScorer) ScorePair(_, _ int, base, refBase byte) int {
	if base == refBase {
		return s.Match
	}

	return s.Mismatch
}

// ScorerFuncs adapts plain functions to Scorer, allowing per-position costs.
// A nil field falls back to the DefaultScorer behavior for that transition.
type ScorerFuncs struct {
	Insert func(i, j int) int
	Delete func(i, j int) int
	Pair   func(i, j int, base, refBase byte) int
}

// ScoreInsert implements Scorer.
func (f ScorerFuncs) ScoreInsert(i, j int) int {
	if f.Insert == nil {
		return DefaultScorer{}.ScoreInsert(i, j)
	}

	return f.Insert(i, j)
}

// ScoreDelete implements Scorer.
func (f ScorerFuncs) ScoreDelete(i, j int) int {
	if f.Delete == nil {
		return DefaultScorer{}.ScoreDelete(i, j)
	}

	return f.Delete(i, j)
}

// ScorePair implements Scorer.
func (f ScorerFuncs) ScorePair(i, j int, base, refBase byte) int {
	if f.Pair == nil {
		return DefaultScorer{}.ScorePair(i, j, base, refBase)
	}

	return f.Pair(i, j, base, refBase)
}

var (
	_ Scorer = DefaultScorer{}
	_ Scorer = LinearScorer{}
	_ Scorer = ScorerFuncs{}
)
