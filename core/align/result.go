// core/align/result.go
package align

import (
	"errors"
	"fmt"
	"strings"
)

// Result is one pairwise alignment. Aligned1 and Aligned2 always have equal
// length. Start/End are half-open 0-based spans of the inputs covered by
// the alignment; for a global alignment they cover both inputs entirely.
type Result struct {
	Aligned1 string
	Aligned2 string
	Score    int

	Start1, End1 int
	Start2, End2 int
}

// Len is the number of alignment columns.
func (r Result) Len() int { return len(r.Aligned1) }

// Identity is the fraction of columns holding the same real symbol.
func (r Result) Identity() float64 {
	if len(r.Aligned1) == 0 {
		return 0
	}
	same := 0
	for k := 0; k < len(r.Aligned1) && k < len(r.Aligned2); k++ {
		if r.Aligned1[k] != GapChar && r.Aligned1[k] == r.Aligned2[k] {
			same++
		}
	}
	return float64(same) / float64(len(r.Aligned1))
}

// Align runs the variant selected by mode.
func Align(mode Mode, s1, s2 string, sc Scoring) Result {
	if mode == Local {
		return SmithWaterman(s1, s2, sc)
	}
	return NeedlemanWunsch(s1, s2, sc)
}

var (
	ErrLengthMismatch = errors.New("aligned rows differ in length")
	ErrGapColumn      = errors.New("column is a gap in both rows")
)

// ScoreAlignment rescores an alignment column by column.
func ScoreAlignment(a1, a2 string, sc Scoring) (int, error) {
	if len(a1) != len(a2) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(a1), len(a2))
	}
	total := 0
	for k := 0; k < len(a1); k++ {
		x, y := a1[k], a2[k]
		switch {
		case x == GapChar && y == GapChar:
			return 0, fmt.Errorf("%w at %d", ErrGapColumn, k)
		case x == GapChar || y == GapChar:
			total += sc.Gap
		default:
			total += sc.Pair(x, y)
		}
	}
	return total, nil
}

// Strip removes gap symbols from an aligned row.
func Strip(aligned string) string {
	return strings.ReplaceAll(aligned, string(GapChar), "")
}
