// Package workers runs independent jobs on a bounded pool of goroutines.
//
// Session files are decoded independently of each other, so the decoding
// step fans out through [Map] and collects results in input order.
package workers

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Job transforms one input item. A returned error stops the pool.
type Job[T, R any] func(ctx context.Context, item T) (R, error)

// Map applies job to every item with at most limit calls in flight and
// returns the results in the order of items. A limit below 1 means one.
//
// The first job error (or the cancellation of ctx) cancels the context
// passed to the remaining jobs; items that have not started yet are
// skipped and Map returns that error.
func Map[T, R any](ctx context.Context, limit int, items []T, job Job[T, R]) ([]R, error) {
	if limit < 1 {
		limit = 1
	}

	results := make([]R, len(items))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, item := range items {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := job(gctx, item)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// the loop may have stopped early on a cancelled parent
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
