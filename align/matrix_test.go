package align

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPackCell_RoundTrip verifies score and tag survive packing, including negatives.
func TestPackCell_RoundTrip(t *testing.T) {
	for _, score := range []int{0, 1, -1, 2, -2, 7, -7, 1 << 30, -(1 << 30)} {
		for _, tg := range []tag{tagEnd, tagDiag, tagLeft, tagUp} {
			c := packCell(score, tg)
			assert.Equal(t, score, c.score(), "score %d tag %d", score, tg)
			assert.Equal(t, tg, c.tag(), "score %d tag %d", score, tg)
		}
	}
}

// TestNewWorkMatrix_Limit checks the cell limit, including the overflow guard.
func TestNewWorkMatrix_Limit(t *testing.T) {
	w, err := newWorkMatrix(2, 3, 12)
	require.NoError(t, err)
	assert.Equal(t, 3, w.rows)
	assert.Equal(t, 4, w.cols)
	assert.Len(t, w.cells, 12)

	_, err = newWorkMatrix(2, 3, 11)
	assert.ErrorIs(t, err, ErrTooLarge)

	_, err = newWorkMatrix(1<<20, 1<<20, DefaultMaxCells)
	assert.ErrorIs(t, err, ErrTooLarge, "checked without forming the product")
}

// scoresAndTags unpacks w into two parallel grids for comparison.
func scoresAndTags(w *workMatrix) ([][]int, [][]tag) {
	scores := make([][]int, w.rows)
	tags := make([][]tag, w.rows)
	for x := 0; x < w.rows; x++ {
		scores[x] = make([]int, w.cols)
		tags[x] = make([]tag, w.cols)
		for y := 0; y < w.cols; y++ {
			scores[x][y] = w.at(x, y).score()
			tags[x][y] = w.at(x, y).tag()
		}
	}

	return scores, tags
}

// TestFill_Full checks every cell for a small Full-mode alignment.
func TestFill_Full(t *testing.T) {
	w, err := newWorkMatrix(2, 3, DefaultMaxCells)
	require.NoError(t, err)
	fill(w, "AC", "AGC", DefaultScorer{}, Full)

	scores, tags := scoresAndTags(w)
	assert.Equal(t, [][]int{
		{0, -1, -2, -3},
		{-1, 1, 0, -1},
		{-2, 0, 0, 1},
	}, scores)
	assert.Equal(t, [][]tag{
		{tagEnd, tagLeft, tagLeft, tagLeft},
		{tagUp, tagDiag, tagLeft, tagLeft},
		{tagUp, tagUp, tagDiag, tagDiag},
	}, tags)
}

// TestFill_Subsequence checks the free first row and the free last-row deletions.
func TestFill_Subsequence(t *testing.T) {
	w, err := newWorkMatrix(2, 3, DefaultMaxCells)
	require.NoError(t, err)
	fill(w, "AC", "AGC", DefaultScorer{}, Subsequence)

	scores, tags := scoresAndTags(w)
	assert.Equal(t, [][]int{
		{0, 0, 0, 0},
		{-1, 1, 0, -1},
		{-2, 0, 0, 1},
	}, scores)
	assert.Equal(t, [][]tag{
		{tagEnd, tagLeft, tagLeft, tagLeft},
		{tagUp, tagDiag, tagLeft, tagDiag},
		{tagUp, tagUp, tagDiag, tagDiag},
	}, tags)
}

// TestFill_ColumnZeroAlwaysCosted ensures leading insertions cost in both modes.
func TestFill_ColumnZeroAlwaysCosted(t *testing.T) {
	for _, mode := range []Mode{Full, Subsequence} {
		w, err := newWorkMatrix(3, 0, DefaultMaxCells)
		require.NoError(t, err)
		fill(w, "ACG", "", DefaultScorer{}, mode)
		for x := 0; x <= 3; x++ {
			assert.Equal(t, -x, w.at(x, 0).score(), "mode %s row %d", mode, x)
		}
	}
}

// TestFill_ScorerIndices verifies the indices passed to the scorer.
func TestFill_ScorerIndices(t *testing.T) {
	var inserts, deletes, pairs [][2]int
	s := ScorerFuncs{
		Insert: func(i, j int) int { inserts = append(inserts, [2]int{i, j}); return -1 },
		Delete: func(i, j int) int { deletes = append(deletes, [2]int{i, j}); return -1 },
		Pair: func(i, j int, _, _ byte) int {
			pairs = append(pairs, [2]int{i, j})
			return 1
		},
	}
	w, err := newWorkMatrix(1, 2, DefaultMaxCells)
	require.NoError(t, err)
	fill(w, "A", "AC", s, Full)

	assert.Equal(t, [][2]int{{0, 0}, {0, 0}, {0, 1}}, inserts, "column 0 then each inner cell")
	assert.Equal(t, [][2]int{{0, 0}, {0, 1}, {0, 0}, {0, 1}}, deletes, "row 0 then each inner cell")
	assert.Equal(t, [][2]int{{0, 0}, {0, 1}}, pairs)
}

// TestTraceback_EndOnly checks the both-empty grid.
func TestTraceback_EndOnly(t *testing.T) {
	w, err := newWorkMatrix(0, 0, DefaultMaxCells)
	require.NoError(t, err)
	fill(w, "", "", DefaultScorer{}, Full)
	ops := traceback(w, "", "")
	assert.NotNil(t, ops)
	assert.Empty(t, ops)
}

// TestDumpMatrix checks the header and glyphs of the diagnostic dump.
func TestDumpMatrix(t *testing.T) {
	w, err := newWorkMatrix(1, 1, DefaultMaxCells)
	require.NoError(t, err)
	fill(w, "A", "A", DefaultScorer{}, Full)

	out := dumpMatrix(w, "A", "A")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "A")
	assert.Contains(t, lines[1], "0*")
	assert.Contains(t, lines[1], "-1-")
	assert.Contains(t, lines[2], "-1|")
	assert.Contains(t, lines[2], "1\\")
}
