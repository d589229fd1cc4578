package squares

import (
	"context"
	"time"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/ygrebnov/pmap"
)

const (
	// InputCount is the number of integers squared, starting at 1.
	InputCount = 299
	// WorkDelay simulates a longer-running task per item.
	WorkDelay = time.Second
	// MainWorker tags lines logged outside the worker pool.
	MainWorker = "main"
)

// Inputs returns 1..InputCount.
func Inputs() []int {
	return lo.RangeFrom(1, InputCount)
}

// Square returns the transform computing n*n. Every call logs the result tagged with
// the executing worker and then sleeps for delay.
func Square(log logrus.FieldLogger, delay time.Duration) pmap.Transform[int, int] {
	return func(ctx context.Context, n int) (int, error) {
		result := n * n
		entry := log.WithField("worker", MainWorker)
		if id, ok := pmap.WorkerID(ctx); ok {
			entry = log.WithField("worker", id)
		}
		entry.Infof("Calculated square of %d: %d", n, result)
		if delay > 0 {
			time.Sleep(delay)
		}
		return result, nil
	}
}
