// core/align/global.go
package align

// NeedlemanWunsch aligns s1 and s2 end to end.
//
// Boundary cells carry the cost of deleting a whole prefix (i*gap, j*gap),
// so the backtrace always reaches (0,0). The score is the value of the
// bottom-right cell.
func NeedlemanWunsch(s1, s2 string, sc Scoring) Result {
	m, n := len(s1), len(s2)
	t := newMatrix(m, n)

	for i := 1; i <= m; i++ {
		t.set(i, 0, i*sc.Gap)
	}
	for j := 1; j <= n; j++ {
		t.set(0, j, j*sc.Gap)
	}
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			diag, up, left := t.candidates(s1, s2, i, j, sc)
			t.set(i, j, max(diag, up, left))
		}
	}

	b := newBuilder(m + n)
	i, j := m, n
	for i > 0 && j > 0 {
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
	// One side is exhausted; the rest of the other aligns against gaps.
	for ; i > 0; i-- {
		b.push(s1[i-1], GapChar)
	}
	for ; j > 0; j-- {
		b.push(GapChar, s2[j-1])
	}

	a1, a2 := b.strings()
	return Result{
		Aligned1: a1,
		Aligned2: a2,
		Score:    t.at(m, n),
		End1:     m,
		End2:     n,
	}
}
