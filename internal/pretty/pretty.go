// Package pretty renders an alignment as a wrapped, '#'-prefixed ASCII block
// with residue coordinates and a match bar row.
package pretty

import (
	"strconv"
	"strings"

	"biolab-core/align"
)

// Options control the ASCII rendering.
type Options struct {
	// Columns per block. If <=0, the alignment is not wrapped.
	Width int

	// Glyphs for the bar row.
	MatchGlyph    string // default "|"
	MismatchGlyph string // default "."
	GapGlyph      string // default " "
}

// DefaultOptions is the look used by labalign --pretty.
var DefaultOptions = Options{
	Width:         60,
	MatchGlyph:    "|",
	MismatchGlyph: ".",
	GapGlyph:      " ",
}

const linePrefix = "# "

// Bars returns the bar row for two equal-length aligned rows.
func Bars(a1, a2 string, opt Options) string {
	var b strings.Builder
	b.Grow(len(a1))
	for i := 0; i < len(a1) && i < len(a2); i++ {
		switch {
		case a1[i] == align.GapChar || a2[i] == align.GapChar:
			b.WriteString(opt.GapGlyph)
		case a1[i] == a2[i]:
			b.WriteString(opt.MatchGlyph)
		default:
			b.WriteString(opt.MismatchGlyph)
		}
	}
	return b.String()
}

func residues(seg string) int {
	return len(seg) - strings.Count(seg, string(align.GapChar))
}

func padRight(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return s + strings.Repeat(" ", n-len(s))
}

func padLeft(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return strings.Repeat(" ", n-len(s)) + s
}

// Render draws r in blocks of opt.Width columns. Coordinates are 1-based
// positions in the unaligned inputs; a block whose row holds only gaps shows
// an end coordinate one below its start.
func Render(r align.Result, id1, id2 string, opt Options) string {
	cols := r.Len()
	if cols == 0 {
		return ""
	}
	width := opt.Width
	if width <= 0 || width > cols {
		width = cols
	}
	nameW := max(len(id1), len(id2))
	numW := len(strconv.Itoa(max(r.End1, r.End2)))
	indent := strings.Repeat(" ", nameW+1+numW+1)

	var b strings.Builder
	p1, p2 := r.Start1, r.Start2
	row := func(name string, seg string, pos *int) {
		left := *pos + 1
		*pos += residues(seg)
		b.WriteString(linePrefix)
		b.WriteString(padRight(name, nameW))
		b.WriteByte(' ')
		b.WriteString(padLeft(strconv.Itoa(left), numW))
		b.WriteByte(' ')
		b.WriteString(seg)
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(*pos))
		b.WriteByte('\n')
	}
	for c := 0; c < cols; c += width {
		end := min(c+width, cols)
		s1, s2 := r.Aligned1[c:end], r.Aligned2[c:end]
		if c > 0 {
			b.WriteString(strings.TrimRight(linePrefix, " "))
			b.WriteByte('\n')
		}
		row(id1, s1, &p1)
		b.WriteString(strings.TrimRight(linePrefix+indent+Bars(s1, s2, opt), " "))
		b.WriteByte('\n')
		row(id2, s2, &p2)
	}
	return b.String()
}
