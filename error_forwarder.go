package pmap

import "context"

// abortForwarder consumes worker errors. The first error cancels the run's context,
// which stops the dispatcher, and is retained as the run's failure. Later errors are
// drained and dropped. It returns when in is closed; it closes no channels.
type abortForwarder struct {
	in     <-chan error
	cancel context.CancelFunc
	first  error
}

func newAbortForwarder(in <-chan error, cancel context.CancelFunc) *abortForwarder {
	return &abortForwarder{in: in, cancel: cancel}
}

func (f *abortForwarder) run() {
	for e := range f.in {
		if f.first != nil {
			continue
		}
		f.first = e
		f.cancel()
	}
}

// err returns the first forwarded error. Call only after run has returned.
func (f *abortForwarder) err() error { return f.first }
