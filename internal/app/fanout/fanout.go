// Package fanout runs a function over a slice of items with bounded
// concurrency and returns one result per item in input order. Individual
// failures do not cancel the rest of the batch; use Collect to turn the
// results into a single error.
package fanout

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Result holds the outcome of processing a single item.
// Either Value is populated (on success) or Err is non-nil (on failure).
type Result[R any] struct {
	Value R
	Err   error
}

// Run executes fn for each item using at most maxWorkers goroutines.
// Results are returned in input order. Items that have not started when ctx
// is canceled record ctx.Err() without calling fn. A maxWorkers below 1 is
// treated as 1.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	var g errgroup.Group
	g.SetLimit(max(maxWorkers, 1))

	for i, item := range items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = Result[R]{Err: err}
				return nil
			}
			val, err := fn(ctx, item)
			results[i] = Result[R]{Value: val, Err: err}
			return nil
		})
	}

	_ = g.Wait()
	return results
}

// Collect returns the values of results in order, or the joined errors of
// every failed item, each prefixed with its index.
func Collect[R any](results []Result[R]) ([]R, error) {
	values := make([]R, 0, len(results))
	var errs []error
	for i, r := range results {
		if r.Err != nil {
			errs = append(errs, fmt.Errorf("item %d: %w", i, r.Err))
			continue
		}
		values = append(values, r.Value)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return values, nil
}
