// SPDX-License-Identifier: MIT

package align

import (
	"fmt"
	"strings"
)

// tag records which neighbor produced a cell's score.
type tag uint8

const (
	tagEnd  tag = iota // origin, traceback stops here
	tagDiag            // from (x-1, y-1): match or substitution
	tagLeft            // from (x, y-1): deletion
	tagUp              // from (x-1, y): insertion
)

const (
	tagBits = 2
	tagMask = 1<<tagBits - 1
)

// tagGlyphs are used by dumpMatrix.
var tagGlyphs = [...]byte{'*', '\\', '-', '|'}

// cell packs a score and its traceback tag into one word: score<<2 | tag.
// Decoding relies on arithmetic right shift, so negative scores round-trip.
type cell int64

func packCell(score int, t tag) cell {
	return cell(int64(score)<<tagBits | int64(t))
}

func (c cell) score() int { return int(int64(c) >> tagBits) }

func (c cell) tag() tag { return tag(c & tagMask) }

// workMatrix is a dense (rows x cols) grid of packed cells in row-major order.
// Row x corresponds to the first x characters of seq, column y to the first y of ref.
// It is owned by a single Align call and discarded when it returns.
type workMatrix struct {
	rows, cols int
	cells      []cell // len == rows*cols
}

// newWorkMatrix allocates the (n+1)x(m+1) grid for sequences of length n and m.
// The size check runs before allocation and guards against int overflow.
func newWorkMatrix(n, m, maxCells int) (*workMatrix, error) {
	rows, cols := n+1, m+1
	if rows > maxCells/cols {
		return nil, fmt.Errorf("%dx%d cells, limit %d: %w", rows, cols, maxCells, ErrTooLarge)
	}

	return &workMatrix{rows: rows, cols: cols, cells: make([]cell, rows*cols)}, nil
}

func (w *workMatrix) at(x, y int) cell { return w.cells[x*w.cols+y] }

func (w *workMatrix) set(x, y, score int, t tag) { w.cells[x*w.cols+y] = packCell(score, t) }

// dumpMatrix renders the grid as text, one row per seq prefix, each cell shown
// as its score followed by the glyph of its traceback tag.
func dumpMatrix(w *workMatrix, seq, ref string) string {
	var sb strings.Builder
	sb.WriteString("      ")
	for y := 0; y < w.cols; y++ {
		ch := byte(' ')
		if y > 0 {
			ch = ref[y-1]
		}
		fmt.Fprintf(&sb, " %5c", ch)
	}
	sb.WriteByte('\n')

	for x := 0; x < w.rows; x++ {
		ch := byte(' ')
		if x > 0 {
			ch = seq[x-1]
		}
		fmt.Fprintf(&sb, "%5c ", ch)
		for y := 0; y < w.cols; y++ {
			c := w.at(x, y)
			fmt.Fprintf(&sb, " %4d%c", c.score(), tagGlyphs[c.tag()])
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
