package pmap

import "sync"

// lifecycleCoordinator encapsulates the teardown of one run. It doesn't own
// channels; it orchestrates waits and closures in a deterministic order.
type lifecycleCoordinator struct {
	dispatcherWG  *sync.WaitGroup
	inflight      *sync.WaitGroup
	closeErrors   func()
	forwarderWG   *sync.WaitGroup
	closeEvents   func()
	waitReorderer func()
	closeResults  func()
	cancel        func()

	once sync.Once
}

func newLifecycleCoordinator(
	dispatcherWG *sync.WaitGroup,
	inflight *sync.WaitGroup,
	closeErrors func(),
	forwarderWG *sync.WaitGroup,
	closeEvents func(),
	waitReorderer func(),
	closeResults func(),
	cancel func(),
) *lifecycleCoordinator {
	return &lifecycleCoordinator{
		dispatcherWG:  dispatcherWG,
		inflight:      inflight,
		closeErrors:   closeErrors,
		forwarderWG:   forwarderWG,
		closeEvents:   closeEvents,
		waitReorderer: waitReorderer,
		closeResults:  closeResults,
		cancel:        cancel,
	}
}

// Close executes the teardown sequence exactly once:
// 1) wait for the dispatcher to stop, so no further inflight.Add happens
// 2) wait for in-flight items
// 3) close errors and wait for the abort forwarder
// 4) close events and wait for the reorderer
// 5) close results
// 6) release the run context
func (lc *lifecycleCoordinator) Close() {
	lc.once.Do(func() {
		if lc.dispatcherWG != nil {
			lc.dispatcherWG.Wait()
		}
		if lc.inflight != nil {
			lc.inflight.Wait()
		}
		if lc.closeErrors != nil {
			lc.closeErrors()
		}
		if lc.forwarderWG != nil {
			lc.forwarderWG.Wait()
		}
		if lc.closeEvents != nil {
			lc.closeEvents()
		}
		if lc.waitReorderer != nil {
			lc.waitReorderer()
		}
		if lc.closeResults != nil {
			lc.closeResults()
		}
		if lc.cancel != nil {
			lc.cancel()
		}
	})
}
