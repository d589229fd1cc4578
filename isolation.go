package pmap

import (
	"fmt"

	"github.com/mitchellh/copystructure"
)

// queueItems pairs every input with its index. With isolation enabled each input is
// deep-copied first, so no two workers (nor the caller) share reachable mutable memory.
func queueItems[T any](inputs []T, isolate bool) ([]item[T], error) {
	items := make([]item[T], len(inputs))
	for i, in := range inputs {
		if isolate {
			c, err := isolateInput(in)
			if err != nil {
				return nil, newItemError(err, i)
			}
			in = c
		}
		items[i] = item[T]{idx: i, val: in}
	}
	return items, nil
}

func isolateInput[T any](in T) (T, error) {
	c, err := copystructure.Copy(in)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %w", ErrInputCopy, err)
	}
	if c == nil {
		var zero T
		return zero, nil
	}
	return c.(T), nil
}
