package pmap

type reorderer[R any] struct {
	events  <-chan completionEvent[R]
	results chan<- R
}

func newReorderer[R any](events <-chan completionEvent[R], results chan<- R) *reorderer[R] {
	return &reorderer[R]{events: events, results: results}
}

// run executes the assembly loop until events is closed.
func (r *reorderer[R]) run() {
	next := 0
	buf := make(map[int]R)
	holes := make(map[int]struct{})

	for ev := range r.events {
		if ev.present {
			buf[ev.idx] = ev.val
		} else {
			holes[ev.idx] = struct{}{}
		}
		next = r.flushContiguous(next, buf, holes)
	}

	r.flushContiguous(next, buf, holes)
}

// flushContiguous emits consecutive results starting from next and returns the advanced cursor.
func (r *reorderer[R]) flushContiguous(next int, buf map[int]R, holes map[int]struct{}) int {
	for {
		if v, ok := buf[next]; ok {
			r.results <- v
			delete(buf, next)
			next++
			continue
		}
		if _, ok := holes[next]; ok {
			delete(holes, next)
			next++
			continue
		}
		return next
	}
}
