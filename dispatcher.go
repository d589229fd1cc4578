package pmap

import (
	"context"
	"sync"

	"github.com/ygrebnov/pmap/pool"
)

// dispatcher pulls items from the work queue and executes each on a worker taken from
// the pool. Pool.Get blocks while all workers are busy, which bounds concurrency to the
// pool size. The dispatcher returns when the queue is closed or ctx is canceled; it
// never closes channels it doesn't own.
type dispatcher[T, R any] struct {
	items    <-chan item[T]
	inflight *sync.WaitGroup
	pool     pool.Pool[*worker[T, R]]
	inst     *instruments
}

func newDispatcher[T, R any](
	items <-chan item[T], inflight *sync.WaitGroup, p pool.Pool[*worker[T, R]], inst *instruments,
) *dispatcher[T, R] {
	return &dispatcher[T, R]{items: items, inflight: inflight, pool: p, inst: inst}
}

func (d *dispatcher[T, R]) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case it, ok := <-d.items:
			if !ok {
				return
			}
			w := d.pool.Get()
			// The run may have been aborted while waiting for a free worker.
			if ctx.Err() != nil {
				d.pool.Put(w)
				return
			}
			d.inst.dispatched.Add(1)
			d.inflight.Add(1)
			go func() {
				defer d.inflight.Done()
				defer d.pool.Put(w)
				w.execute(ctx, it)
			}()
		}
	}
}
