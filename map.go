package pmap

import "context"

// Map applies fn to every input on e's worker pool and returns the results in input order.
// Semantics:
//   - len(result) == len(inputs) and result[i] == fn(ctx, inputs[i]) on success.
//   - An empty inputs slice returns an empty, non-nil slice without starting any worker.
//   - The first failing item aborts the call: no further items are dispatched, running
//     items finish, and Map returns nil results and the failure wrapped in an ItemError.
//   - A panic in fn is reported as an error wrapping ErrTransformPanicked.
//   - All workers have exited when Map returns.
//
// A nil Executor uses the defaults of New().
func Map[T, R any](ctx context.Context, e *Executor, inputs []T, fn Transform[T, R]) ([]R, error) {
	if fn == nil {
		return nil, ErrNilTransform
	}
	if e == nil {
		var err error
		if e, err = New(); err != nil {
			return nil, err
		}
	}
	if len(inputs) == 0 {
		return []R{}, nil
	}

	items, err := queueItems(inputs, e.config.InputIsolation)
	if err != nil {
		return nil, err
	}
	return newRun[T, R](ctx, e, fn, len(items)).execute(items)
}

// Run is a one-shot helper: it builds an Executor with the requested worker count
// (plus opts) and maps inputs through fn.
func Run[T, R any](ctx context.Context, inputs []T, fn Transform[T, R], workers int, opts ...Option) ([]R, error) {
	e, err := New(append([]Option{WithWorkers(workers)}, opts...)...)
	if err != nil {
		return nil, err
	}
	return Map(ctx, e, inputs, fn)
}
