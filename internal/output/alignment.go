// internal/output/alignment.go
package output

import (
	"fmt"
	"io"

	"biolab-core/align"
	"biolab-core/fasta"
	"biolab/pkg/api"
)

// Alignment is one finished pairwise alignment with its provenance.
type Alignment struct {
	ID1, ID2 string
	Mode     align.Mode
	Scoring  align.Scoring
	Result   align.Result
}

// ToAPIAlignment converts an Alignment to the stable wire schema (v1).
func ToAPIAlignment(a Alignment) api.AlignmentV1 {
	r := a.Result
	return api.AlignmentV1{
		Mode:      a.Mode.String(),
		Algorithm: a.Mode.Algorithm(),
		ID1:       a.ID1,
		ID2:       a.ID2,
		Aligned1:  r.Aligned1,
		Aligned2:  r.Aligned2,
		Score:     r.Score,
		Start1:    r.Start1,
		End1:      r.End1,
		Start2:    r.Start2,
		End2:      r.End2,
		Length:    r.Len(),
		Identity:  r.Identity(),
		Scoring:   api.ScoringV1{Match: a.Scoring.Match, Mismatch: a.Scoring.Mismatch, Gap: a.Scoring.Gap},
	}
}

// WriteAlignmentText prints the lab text report:
//
//	{id1} vs {id2}
//	{aligned1}
//	{aligned2}
//	Score: {score}
func WriteAlignmentText(w io.Writer, a Alignment, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, AlignmentBanner(a.Mode)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%s vs %s\n%s\n%s\nScore: %d\n",
		a.ID1, a.ID2, a.Result.Aligned1, a.Result.Aligned2, a.Result.Score)
	return err
}

// WriteAlignmentFASTA emits the two gapped rows as FASTA records.
func WriteAlignmentFASTA(w io.Writer, a Alignment, width int) error {
	r := a.Result
	desc := func(start, end int) string {
		return fmt.Sprintf("%s score=%d span=%d-%d", a.Mode, r.Score, start, end)
	}
	recs := []fasta.Record{
		{ID: a.ID1, Desc: desc(r.Start1, r.End1), Seq: []byte(r.Aligned1)},
		{ID: a.ID2, Desc: desc(r.Start2, r.End2), Seq: []byte(r.Aligned2)},
	}
	return fasta.Write(w, recs, width)
}
