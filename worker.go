package pmap

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ygrebnov/pmap/metrics"
)

// instruments are the metrics recorded while a run executes.
type instruments struct {
	dispatched metrics.Counter
	completed  metrics.Counter
	failed     metrics.Counter
	inflight   metrics.UpDownCounter
	duration   metrics.Histogram
}

func newInstruments(p metrics.Provider) instruments {
	return instruments{
		dispatched: p.Counter(metrics.ItemsDispatched, metrics.WithDescription("Items handed to a worker."), metrics.WithUnit("1")),
		completed:  p.Counter(metrics.ItemsCompleted, metrics.WithDescription("Items transformed successfully."), metrics.WithUnit("1")),
		failed:     p.Counter(metrics.ItemsFailed, metrics.WithDescription("Items whose transform failed."), metrics.WithUnit("1")),
		inflight:   p.UpDownCounter(metrics.ItemsInflight, metrics.WithDescription("Items currently being transformed."), metrics.WithUnit("1")),
		duration:   p.Histogram(metrics.ItemDuration, metrics.WithDescription("Transform duration per item."), metrics.WithUnit("seconds")),
	}
}

// worker is one execution unit of the pool. It owns no state shared with other workers.
type worker[T, R any] struct {
	id     int
	fn     Transform[T, R]
	events chan<- completionEvent[R]
	errors chan<- error
	log    logrus.FieldLogger
	inst   *instruments
}

func newWorker[T, R any](
	id int,
	fn Transform[T, R],
	events chan<- completionEvent[R],
	errors chan<- error,
	log logrus.FieldLogger,
	inst *instruments,
) *worker[T, R] {
	return &worker[T, R]{id: id, fn: fn, events: events, errors: errors, log: log, inst: inst}
}

func (w *worker[T, R]) execute(ctx context.Context, it item[T]) {
	w.inst.inflight.Add(1)
	start := time.Now()
	result, err := callTransform(withWorkerID(ctx, w.id), w.fn, it.val)
	w.inst.duration.Record(time.Since(start).Seconds())
	w.inst.inflight.Add(-1)

	fields := logrus.Fields{"worker": w.id, "index": it.idx, "input": it.val}

	if err != nil {
		err = newItemError(err, it.idx)
		w.inst.failed.Add(1)
		w.log.WithFields(fields).WithError(err).Debug("item failed")
		w.errors <- err
		w.events <- completionEvent[R]{idx: it.idx, worker: w.id}
		return
	}

	w.inst.completed.Add(1)
	fields["output"] = result
	w.log.WithFields(fields).Debug("item processed")
	w.events <- completionEvent[R]{idx: it.idx, worker: w.id, val: result, present: true}
}
