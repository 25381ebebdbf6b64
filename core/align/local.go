// core/align/local.go
package align

// SmithWaterman finds the best-scoring pair of substrings of s1 and s2.
//
// Cells are floored at 0, so a prefix that would go negative is dropped and
// the alignment restarts. The endpoint is the first maximum met in
// row-major order; the backtrace stops at the first zero cell or boundary
// and never pads. When nothing scores above 0 the result is empty.
func SmithWaterman(s1, s2 string, sc Scoring) Result {
	m, n := len(s1), len(s2)
	t := newMatrix(m, n)

	best, bi, bj := 0, 0, 0
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			diag, up, left := t.candidates(s1, s2, i, j, sc)
			v := max(0, diag, up, left)
			t.set(i, j, v)
			if v > best {
				best, bi, bj = v, i, j
			}
		}
	}

	b := newBuilder(bi + bj)
	i, j := bi, bj
	for i > 0 && j > 0 && t.at(i, j) > 0 {
		switch t.step(s1, s2, i, j, sc) {
		case moveDiag:
			b.push(s1[i-1], s2[j-1])
			i--
			j--
		case moveUp:
			b.push(s1[i-1], GapChar)
			i--
		default:
			b.push(GapChar, s2[j-1])
			j--
		}
	}

	a1, a2 := b.strings()
	return Result{
		Aligned1: a1,
		Aligned2: a2,
		Score:    best,
		Start1:   i,
		End1:     bi,
		Start2:   j,
		End2:     bj,
	}
}
