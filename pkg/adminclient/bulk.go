package adminclient

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DeleteFunc deletes one id
type DeleteFunc func(ctx context.Context, id int64) (Result, error)

// DeleteEach runs fn for every id concurrently and reports each outcome in id order.
// One failure never cancels the others; a transport error becomes a failed item.
func DeleteEach(ctx context.Context, ids []int64, fn DeleteFunc) []ItemResult {
	results := make([]ItemResult, len(ids))
	var g errgroup.Group
	for i, id := range ids {
		g.Go(func() error {
			res, err := fn(ctx, id)
			if err != nil {
				results[i] = ItemResult{
					ID:      id,
					Code:    "INTERNAL_SERVER_ERROR",
					Message: err.Error(),
				}
				return nil
			}
			results[i] = ItemResult{ID: id, OK: res.OK, Code: res.Code, Message: res.Message}
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// Succeeded returns the ids whose item result is ok
func Succeeded(items []ItemResult) []int64 {
	ids := make([]int64, 0, len(items))
	for _, it := range items {
		if it.OK {
			ids = append(ids, it.ID)
		}
	}
	return ids
}

// IsPartial reports whether a bulk answer mixes successes and failures
func IsPartial(r BulkResult) bool {
	return !r.OK && len(Succeeded(r.Results)) > 0
}
