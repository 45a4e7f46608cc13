package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// EvalTimeout is the default limit for a single evaluation.
const EvalTimeout = 5 * time.Second

// evalResult is the internal type used to pass evaluation results through channels.
type evalResult struct {
	result Result
	err    error
}

// waitWithTimeout waits for a result from ch until ctx is done. It uses a
// generation counter to discard stale results from previous evaluations.
//
// On timeout, the goroutine may still be running; its buffered send
// completes and the result is dropped.
func waitWithTimeout(
	ctx context.Context,
	ch <-chan evalResult,
	gen uint64,
	mu *sync.Mutex,
	currentGen *uint64,
) (Result, error) {
	select {
	case res := <-ch:
		// Check if this result is still relevant (not stale).
		mu.Lock()
		current := *currentGen
		mu.Unlock()

		if gen != current {
			return Result{}, ErrSuperseded
		}
		return res.result, res.err

	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return Result{}, fmt.Errorf("%w: %v", ErrTimeout, ctx.Err())
		}
		return Result{}, fmt.Errorf("engine: evaluation canceled: %w", ctx.Err())
	}
}
