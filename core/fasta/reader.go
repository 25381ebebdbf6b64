// core/fasta/reader.go
package fasta

import (
	"context"
	"io"
)

// Record represents a parsed FASTA sequence.
type Record struct {
	ID   string
	Desc string
	Seq  []byte
}

// ReadAll collects every record in path.
func ReadAll(ctx context.Context, path string) ([]Record, error) {
	var recs []Record
	err := StreamPathCtx(ctx, path, func(r Record) error {
		recs = append(recs, r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return recs, nil
}

// ReadAllFrom is ReadAll over an already open reader.
func ReadAllFrom(ctx context.Context, r io.Reader) ([]Record, error) {
	var recs []Record
	err := StreamCtx(ctx, r, func(rec Record) error {
		recs = append(recs, rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return recs, nil
}
