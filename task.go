package pmap

import (
	"context"
	"fmt"
)

// Transform is the function applied to every input.
// It must not mutate state shared with other invocations; the only side effects
// expected are logging and simulated delays.
type Transform[T, R any] func(ctx context.Context, in T) (R, error)

// TransformValue adapts an infallible func(ctx, T) R to Transform.
func TransformValue[T, R any](fn func(context.Context, T) R) Transform[T, R] {
	return func(ctx context.Context, in T) (R, error) { return fn(ctx, in), nil }
}

type workerIDKey struct{}

func withWorkerID(ctx context.Context, id int) context.Context {
	return context.WithValue(ctx, workerIDKey{}, id)
}

// WorkerID returns the identifier of the worker executing the current transform.
// Identifiers start at 1 and are unique within one Map call.
func WorkerID(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(workerIDKey{}).(int)
	return id, ok
}

// callTransform runs fn and converts a panic into an error wrapping ErrTransformPanicked.
func callTransform[T, R any](ctx context.Context, fn Transform[T, R], in T) (result R, err error) {
	defer func() {
		if p := recover(); p != nil {
			var zero R
			result = zero
			err = fmt.Errorf("%w: %v", ErrTransformPanicked, p)
		}
	}()
	return fn(ctx, in)
}
