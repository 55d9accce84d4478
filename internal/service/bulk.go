package service

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// bulkConcurrency caps the statements a bulk mutation runs at once
const bulkConcurrency = 8

// Outcome is the result of one id inside a bulk mutation
type Outcome struct {
	Err error
	ID  int64
}

// runEach applies fn to every id independently. A failing id never stops the others;
// outcomes keep the order of ids.
func runEach(ctx context.Context, ids []int64, fn func(ctx context.Context, id int64) error) []Outcome {
	out := make([]Outcome, len(ids))
	var g errgroup.Group
	g.SetLimit(bulkConcurrency)
	for i, id := range ids {
		g.Go(func() error {
			out[i] = Outcome{ID: id, Err: fn(ctx, id)}
			return nil
		})
	}
	_ = g.Wait()
	return out
}
