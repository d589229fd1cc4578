package pmap

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ygrebnov/pmap/pool"
)

// Executor runs ordered parallel maps. It is immutable after New and safe for
// concurrent use; each Map call builds and tears down its own worker pool.
type Executor struct {
	config  *config
	workers int
	inst    instruments
}

// New creates an Executor using functional options.
func New(opts ...Option) (*Executor, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	return &Executor{
		config:  &cfg,
		workers: effectiveWorkers(cfg.Workers, cfg.MaxParallelism),
		inst:    newInstruments(cfg.Metrics),
	}, nil
}

// Workers returns the effective worker count after clamping.
func (e *Executor) Workers() int { return e.workers }

func (e *Executor) queueSize() int {
	if e.config.QueueSize > 0 {
		return int(e.config.QueueSize)
	}
	return e.workers
}

// run holds the state of one Map call.
type run[T, R any] struct {
	exec *Executor
	fn   Transform[T, R]
	log  logrus.FieldLogger

	parent context.Context
	ctx    context.Context
	cancel context.CancelFunc

	queue   chan item[T]
	events  chan completionEvent[R]
	errors  chan error
	results chan R
	pool    pool.Pool[*worker[T, R]]

	inflight     sync.WaitGroup
	dispatcherWG sync.WaitGroup
	forwarderWG  sync.WaitGroup
	reorderWG    sync.WaitGroup

	forwarder *abortForwarder
	lifecycle *lifecycleCoordinator
}

func newRun[T, R any](ctx context.Context, e *Executor, fn Transform[T, R], n int) *run[T, R] {
	r := &run[T, R]{
		exec:    e,
		fn:      fn,
		parent:  ctx,
		log:     e.config.Logger,
		queue:   make(chan item[T], e.queueSize()),
		events:  make(chan completionEvent[R], n),
		errors:  make(chan error, n),
		results: make(chan R, n),
	}
	r.ctx, r.cancel = context.WithCancel(ctx)

	var nextID int
	var idMu sync.Mutex
	r.pool = pool.NewFixed(uint(e.workers), func() *worker[T, R] {
		idMu.Lock()
		nextID++
		id := nextID
		idMu.Unlock()
		r.log.WithField("worker", id).Debug("worker started")
		return newWorker[T, R](id, fn, r.events, r.errors, r.log, &e.inst)
	})

	r.forwarder = newAbortForwarder(r.errors, r.cancel)
	r.lifecycle = newLifecycleCoordinator(
		&r.dispatcherWG,
		&r.inflight,
		func() { close(r.errors) },
		&r.forwarderWG,
		func() { close(r.events) },
		r.reorderWG.Wait,
		func() { close(r.results) },
		r.cancel,
	)
	return r
}

// start launches the abort forwarder, the reorderer and the dispatcher.
func (r *run[T, R]) start() {
	r.forwarderWG.Add(1)
	go func() {
		defer r.forwarderWG.Done()
		r.forwarder.run()
	}()

	r.reorderWG.Add(1)
	ro := newReorderer[R](r.events, r.results)
	go func() {
		defer r.reorderWG.Done()
		ro.run()
	}()

	d := newDispatcher[T, R](r.queue, &r.inflight, r.pool, &r.exec.inst)
	r.dispatcherWG.Add(1)
	go func() {
		defer r.dispatcherWG.Done()
		d.run(r.ctx)
	}()
}

// enqueue feeds items into the work queue until done or until the run is aborted.
func (r *run[T, R]) enqueue(items []item[T]) {
	defer close(r.queue)
	for _, it := range items {
		select {
		case r.queue <- it:
		case <-r.ctx.Done():
			return
		}
	}
}

// execute performs the whole fan-out/fan-in and tears the run down before returning.
func (r *run[T, R]) execute(items []item[T]) ([]R, error) {
	started := time.Now()
	r.log.WithFields(logrus.Fields{"items": len(items), "workers": r.exec.workers}).Debug("map started")

	r.start()
	r.enqueue(items)
	r.lifecycle.Close()

	fields := logrus.Fields{
		"items":           len(items),
		"workers_started": pool.Size(r.pool),
		"elapsed":         time.Since(started),
	}

	if err := r.forwarder.err(); err != nil {
		r.log.WithFields(fields).WithError(err).Debug("map aborted")
		return nil, err
	}

	out := make([]R, 0, len(items))
	for v := range r.results {
		out = append(out, v)
	}

	if len(out) != len(items) {
		if err := r.parent.Err(); err != nil {
			r.log.WithFields(fields).WithError(err).Debug("map aborted")
			return nil, fmt.Errorf("%w: %w", ErrRunAborted, err)
		}
		return nil, fmt.Errorf("%w: got %d, want %d", ErrIncompleteResults, len(out), len(items))
	}

	r.log.WithFields(fields).Debug("map completed")
	return out, nil
}
