// core/fasta/stream.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
)

// StreamCtx parses FASTA from r and calls emit once per record.
// Blank lines are skipped and sequence lines are concatenated with
// surrounding whitespace removed; letter case is preserved.
//
// It is cancelable: ctx is checked between lines. Return a non-nil error
// from emit to stop early.
func StreamCtx(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var (
		rec    Record
		inside bool
		seq    = make([]byte, 0, 1<<16)
	)

	flush := func() error {
		if !inside {
			return nil
		}
		rec.Seq = append([]byte(nil), seq...)
		return emit(rec)
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := sc.Bytes()
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			rec = parseHeader(line[1:])
			inside = true
			seq = seq[:0]
			continue
		}
		if !inside {
			return fmt.Errorf("fasta: sequence data before first header")
		}
		seq = append(seq, bytes.TrimSpace(line)...)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return flush()
}

// parseHeader splits a header line (without '>') into ID and description.
func parseHeader(hdr []byte) Record {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return Record{ID: string(hdr[:i]), Desc: string(bytes.TrimSpace(hdr[i+1:]))}
	}
	return Record{ID: string(hdr)}
}
