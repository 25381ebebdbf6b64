// Package seqsource selects the two FASTA records an alignment runs on and
// enforces the input preconditions before the engine is called.
package seqsource

import (
	"context"
	"errors"
	"fmt"

	"biolab-core/fasta"
)

var (
	ErrTooFewRecords   = errors.New("file must contain at least 2 sequences")
	ErrIndexOutOfRange = errors.New("record index out of range")
)

// Pair is the selected input pair.
type Pair struct {
	ID1, ID2   string
	Seq1, Seq2 string
}

// LoadPair reads path and returns records i1 and i2 (0-based).
func LoadPair(ctx context.Context, path string, i1, i2 int) (Pair, error) {
	recs, err := fasta.ReadAll(ctx, path)
	if err != nil {
		return Pair{}, err
	}
	return Select(recs, i1, i2)
}

// Select applies the record-count and index checks to recs.
func Select(recs []fasta.Record, i1, i2 int) (Pair, error) {
	n := len(recs)
	if n < 2 {
		return Pair{}, fmt.Errorf("%w (found %d)", ErrTooFewRecords, n)
	}
	for _, i := range []int{i1, i2} {
		if i < 0 || i >= n {
			return Pair{}, fmt.Errorf("%w: %d (valid: 0..%d)", ErrIndexOutOfRange, i, n-1)
		}
	}
	a, b := recs[i1], recs[i2]
	return Pair{ID1: a.ID, ID2: b.ID, Seq1: string(a.Seq), Seq2: string(b.Seq)}, nil
}
