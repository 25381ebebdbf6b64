// core/align/scoring.go
package align

import (
	"fmt"
	"strings"
)

// GapChar is the symbol inserted for an indel column.
const GapChar = '-'

// Scoring is a linear (non-affine) scheme: every gap column costs Gap
// regardless of run length.
type Scoring struct {
	Match    int
	Mismatch int
	Gap      int
}

// Defaults used by the lab exercises.
var (
	DefaultGlobal = Scoring{Match: 1, Mismatch: -1, Gap: -2}
	DefaultLocal  = Scoring{Match: 3, Mismatch: -3, Gap: -2}
)

// Pair scores one aligned column of two real symbols. Comparison is exact.
func (sc Scoring) Pair(a, b byte) int {
	if a == b {
		return sc.Match
	}
	return sc.Mismatch
}

func (sc Scoring) String() string {
	return fmt.Sprintf("match=%d mismatch=%d gap=%d", sc.Match, sc.Mismatch, sc.Gap)
}

// Mode selects the alignment variant.
type Mode int

const (
	Global Mode = iota
	Local
)

func (m Mode) String() string {
	switch m {
	case Global:
		return "global"
	case Local:
		return "local"
	default:
		return "unknown"
	}
}

// Algorithm returns the textbook name of the variant.
func (m Mode) Algorithm() string {
	switch m {
	case Global:
		return "Needleman-Wunsch"
	case Local:
		return "Smith-Waterman"
	default:
		return "unknown"
	}
}

// Default returns the default scoring scheme for the mode.
func (m Mode) Default() Scoring {
	if m == Local {
		return DefaultLocal
	}
	return DefaultGlobal
}

// ParseMode accepts the mode name, its short form, or the algorithm name.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "global", "nw", "needleman-wunsch":
		return Global, nil
	case "local", "sw", "smith-waterman":
		return Local, nil
	}
	return Global, fmt.Errorf("invalid alignment mode %q (want global|local)", s)
}
