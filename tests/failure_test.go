package tests

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ygrebnov/pmap"
)

var errSeven = errors.New("seven is not allowed")

func failOnSeven(_ context.Context, v int) (int, error) {
	if v == 7 {
		return 0, errSeven
	}
	return v * v, nil
}

func TestMap_FailureAbortsWithoutPartialResults(t *testing.T) {
	in := rangeInts(1, 299)

	got, err := pmap.Run(context.Background(), in, failOnSeven, 4)
	require.Nil(t, got)
	require.ErrorIs(t, err, errSeven)

	idx, ok := pmap.ExtractItemIndex(err)
	require.True(t, ok)
	require.Equal(t, 6, idx, "input 7 sits at index 6")
}

func TestMap_FailureStopsDispatch(t *testing.T) {
	const n = 200
	var executed atomic.Int32

	_, err := pmap.Run(context.Background(), rangeInts(0, n), func(_ context.Context, v int) (int, error) {
		executed.Add(1)
		if v == 0 {
			return 0, errSeven
		}
		time.Sleep(2 * time.Millisecond)
		return v, nil
	}, 2, pmap.WithMaxParallelism(2))
	require.ErrorIs(t, err, errSeven)
	require.Less(t, int(executed.Load()), n, "items after the failure must not all be dispatched")
}

func TestMap_OnlyFirstFailureReported(t *testing.T) {
	_, err := pmap.Run(context.Background(), rangeInts(0, 50), func(_ context.Context, _ int) (int, error) {
		return 0, errors.New("always")
	}, 4)
	require.Error(t, err)

	_, ok := pmap.ExtractItemIndex(err)
	require.True(t, ok)
	require.NotContains(t, err.Error(), "\n", "errors are not joined")
}

func TestMap_PanicIsReportedAsError(t *testing.T) {
	got, err := pmap.Run(context.Background(), []int{1, 2, 3}, func(_ context.Context, v int) (int, error) {
		if v == 2 {
			panic("bad item")
		}
		return v, nil
	}, 2)
	require.Nil(t, got)
	require.ErrorIs(t, err, pmap.ErrTransformPanicked)
	require.Contains(t, err.Error(), "bad item")

	idx, ok := pmap.ExtractItemIndex(err)
	require.True(t, ok)
	require.Equal(t, 1, idx)
}

func TestMap_ParentContextCanceledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := pmap.Run(ctx, rangeInts(0, 100), func(_ context.Context, v int) (int, error) {
		time.Sleep(time.Millisecond)
		return v, nil
	}, 2, pmap.WithMaxParallelism(2))
	require.Nil(t, got)
	require.ErrorIs(t, err, pmap.ErrRunAborted)
	require.ErrorIs(t, err, context.Canceled)
}

func TestMap_TransformSeesAbortAfterFailure(t *testing.T) {
	started := make(chan struct{})
	observed := make(chan error, 1)

	_, err := pmap.Run(context.Background(), []int{0, 1}, func(ctx context.Context, v int) (int, error) {
		if v == 1 {
			close(started)
			select {
			case <-ctx.Done():
				observed <- ctx.Err()
			case <-time.After(2 * time.Second):
				observed <- nil
			}
			return v, nil
		}
		<-started
		return 0, errSeven
	}, 2, pmap.WithMaxParallelism(2))
	require.ErrorIs(t, err, errSeven)
	require.ErrorIs(t, <-observed, context.Canceled)
}
