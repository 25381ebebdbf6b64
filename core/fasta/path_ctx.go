// core/fasta/path_ctx.go
package fasta

import (
	"context"
	"fmt"
)

// StreamPathCtx opens path (plain, gzip or "-") and streams its records.
func StreamPathCtx(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := Open(path)
	if err != nil {
		return err
	}
	defer rc.Close()
	if err := StreamCtx(ctx, rc, emit); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
