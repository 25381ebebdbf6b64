// core/align/matrix.go
package align

// matrix is a dense (m+1)×(n+1) score grid in one row-major buffer.
// Row 0 and column 0 are the empty-prefix boundary.
type matrix struct {
	cols  int
	cells []int
}

func newMatrix(m, n int) *matrix {
	return &matrix{cols: n + 1, cells: make([]int, (m+1)*(n+1))}
}

func (t *matrix) at(i, j int) int { return t.cells[i*t.cols+j] }
func (t *matrix) set(i, j, v int) { t.cells[i*t.cols+j] = v }

// candidates recomputes the three predecessor scores of cell (i, j).
// i and j must both be ≥ 1.
func (t *matrix) candidates(s1, s2 string, i, j int, sc Scoring) (diag, up, left int) {
	diag = t.at(i-1, j-1) + sc.Pair(s1[i-1], s2[j-1])
	up = t.at(i-1, j) + sc.Gap
	left = t.at(i, j-1) + sc.Gap
	return diag, up, left
}

// move is one backtrace step.
type move int

const (
	moveDiag move = iota
	moveUp
	moveLeft
)

// step picks the predecessor that produced cell (i, j), preferring
// diagonal, then up, then left when several tie.
func (t *matrix) step(s1, s2 string, i, j int, sc Scoring) move {
	cur := t.at(i, j)
	diag, up, _ := t.candidates(s1, s2, i, j, sc)
	switch cur {
	case diag:
		return moveDiag
	case up:
		return moveUp
	default:
		return moveLeft
	}
}

// builder accumulates aligned columns back to front.
type builder struct {
	a1, a2 []byte
}

func newBuilder(capacity int) *builder {
	return &builder{a1: make([]byte, 0, capacity), a2: make([]byte, 0, capacity)}
}

func (b *builder) push(x, y byte) {
	b.a1 = append(b.a1, x)
	b.a2 = append(b.a2, y)
}

// strings reverses the accumulated columns into reading order.
func (b *builder) strings() (string, string) {
	reverse(b.a1)
	reverse(b.a2)
	return string(b.a1), string(b.a2)
}

func reverse(s []byte) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
