// internal/cmdutil/run.go
package cmdutil

import (
	"context"
	"runtime"

	"cloudeng.io/errors"
	"cloudeng.io/sync/errgroup"
)

// RunIndexed calls fn for every index in [0, n) with at most threads calls
// in flight and returns the results in index order. Every failure is kept;
// the returned error aggregates them.
func RunIndexed[T any](
	ctx context.Context,
	threads, n int,
	fn func(ctx context.Context, i int) (T, error),
) ([]T, error) {
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	out := make([]T, n)
	sem := make(chan struct{}, threads)

	var g errgroup.T
	for i := 0; i < n; i++ {
		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			return out, errors.NewM(g.Wait(), ctx.Err())
		}
		g.Go(func() error {
			defer func() { <-sem }()
			v, err := fn(ctx, i)
			if err != nil {
				return err
			}
			out[i] = v
			return nil
		})
	}
	return out, g.Wait()
}
