// core/fasta/writer.go
package fasta

import (
	"bufio"
	"io"
)

// DefaultLineWidth is the residue count per sequence line used by Write.
const DefaultLineWidth = 60

// Write emits records as FASTA, wrapping sequence lines at width residues.
// width <= 0 writes each sequence on a single line.
func Write(w io.Writer, recs []Record, width int) error {
	bw := bufio.NewWriter(w)
	for _, r := range recs {
		_, _ = bw.WriteString(">")
		_, _ = bw.WriteString(r.ID)
		if r.Desc != "" {
			_, _ = bw.WriteString(" ")
			_, _ = bw.WriteString(r.Desc)
		}
		_ = bw.WriteByte('\n')
		seq := r.Seq
		for len(seq) > 0 {
			n := width
			if n <= 0 || n > len(seq) {
				n = len(seq)
			}
			_, _ = bw.Write(seq[:n])
			if err := bw.WriteByte('\n'); err != nil {
				return err
			}
			seq = seq[n:]
		}
	}
	return bw.Flush()
}
