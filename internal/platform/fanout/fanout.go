// Package fanout runs a function across a slice of items with bounded
// concurrency, preserving input order in the results. The readiness registry
// uses it to probe every dependency at once.
package fanout

import (
	"context"
	"sync"
)

// Result holds the outcome of processing a single item.
// Either Value is populated (on success) or Err is non-nil (on failure).
type Result[R any] struct {
	Value R
	Err   error
}

// Run executes fn for each item in items using at most maxWorkers concurrent
// goroutines. Results are returned in the same order as the input items.
//
// A free slot is always taken, even when ctx is already done, so fn sees
// the canceled context and reports it itself. If ctx is canceled while a
// goroutine is still waiting for a slot, that goroutine records ctx.Err()
// and does not call fn.
//
// Run blocks until all goroutines complete. If items is empty, it returns
// an empty non-nil slice immediately.
//
// maxWorkers must be >= 1. If maxWorkers >= len(items), all items run
// concurrently with no semaphore contention.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	if len(items) == 0 {
		return []Result[R]{}
	}

	results := make([]Result[R], len(items))
	sem := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Add(1)
		go func(idx int, it T) {
			defer wg.Done()

			if !acquire(ctx, sem) {
				results[idx] = Result[R]{Err: ctx.Err()}
				return
			}
			defer func() { <-sem }()

			val, err := fn(ctx, it)
			results[idx] = Result[R]{Value: val, Err: err}
		}(i, item)
	}

	wg.Wait()
	return results
}

// acquire takes a semaphore slot, preferring a free slot over a done context.
func acquire(ctx context.Context, sem chan struct{}) bool {
	select {
	case sem <- struct{}{}:
		return true
	default:
	}

	select {
	case sem <- struct{}{}:
		return true
	case <-ctx.Done():
		return false
	}
}
