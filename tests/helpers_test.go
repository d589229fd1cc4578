package tests

import (
	"context"
	"errors"
)

var errMismatch = errors.New("results mismatch")

func square(_ context.Context, v int) (int, error) { return v * v, nil }

// rangeInts returns n consecutive integers starting at from.
func rangeInts(from, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = from + i
	}
	return out
}

func squares(in []int) []int {
	out := make([]int, len(in))
	for i, v := range in {
		out[i] = v * v
	}
	return out
}
