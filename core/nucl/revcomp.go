// Package nucl holds nucleotide helpers shared by the lab tools.
package nucl

var complement [256]byte

func init() {
	pairs := []string{"AT", "CG", "GC", "TA", "UA", "RY", "YR", "SS", "WW", "KM", "MK", "BV", "VB", "DH", "HD", "NN"}
	for _, p := range pairs {
		complement[p[0]] = p[1]
		complement[p[0]|0x20] = p[1] | 0x20
	}
	complement['-'] = '-'
}

// RevComp returns the IUPAC reverse complement of seq. Case and gaps are
// kept; unknown symbols become N (n for lower case input).
func RevComp(seq string) string {
	n := len(seq)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		b := seq[n-1-i]
		c := complement[b]
		if c == 0 {
			c = 'N'
			if b >= 'a' && b <= 'z' {
				c = 'n'
			}
		}
		out[i] = c
	}
	return string(out)
}
