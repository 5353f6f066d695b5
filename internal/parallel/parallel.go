// SPDX-License-Identifier: MIT

// Package parallel runs independent index-addressed jobs on a bounded pool.
package parallel

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// For calls fn(i) for every i in [0, n) using at most workers goroutines and
// returns the first error. workers <= 1 runs the loop on the caller's
// goroutine, in order.
//
// fn must write only to state owned by index i; results are combined by the
// caller after For returns.
func For(n, workers int, fn func(i int) error) error {
	return ForContext(context.Background(), n, workers, func(_ context.Context, i int) error {
		return fn(i)
	})
}

// ForContext is For with cancellation: once a job fails or ctx is done, jobs
// not yet started are skipped and the first error is returned.
func ForContext(ctx context.Context, n, workers int, fn func(ctx context.Context, i int) error) error {
	if workers <= 1 || n <= 1 {
		for i := 0; i < n; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := fn(ctx, i); err != nil {
				return err
			}
		}

		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn(gctx, i)
		})
	}

	return g.Wait()
}
