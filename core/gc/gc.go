// Package gc computes base-composition summaries of nucleotide sequences.
package gc

// Counts tallies A/C/G/T symbols, case-insensitively. Other symbols
// (N, IUPAC ambiguity codes, gaps, amino acids) are counted in Other.
type Counts struct {
	A, C, G, T int
	Other      int
}

// Count tallies the symbols of seq.
func Count(seq []byte) Counts {
	var c Counts
	for _, b := range seq {
		switch b | 0x20 {
		case 'a':
			c.A++
		case 'c':
			c.C++
		case 'g':
			c.G++
		case 't':
			c.T++
		default:
			c.Other++
		}
	}
	return c
}

// ACGT is the number of unambiguous nucleotides.
func (c Counts) ACGT() int { return c.A + c.C + c.G + c.T }

// Fraction is (G+C) / (A+C+G+T). Symbols outside ACGT do not count toward
// the denominator; a sequence without any ACGT symbol yields 0.
func (c Counts) Fraction() float64 {
	n := c.ACGT()
	if n == 0 {
		return 0
	}
	return float64(c.G+c.C) / float64(n)
}

// Fraction is a shortcut for Count(seq).Fraction().
func Fraction(seq []byte) float64 {
	return Count(seq).Fraction()
}
