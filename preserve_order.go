package pmap

// Reorderer (ordered result assembly)
//
// Responsibility:
// - Consume completion events from workers and emit results strictly in input order,
//   regardless of which worker finished first.
//
// Inputs:
// - events <-chan completionEvent[R]: one event per executed item. Each event carries
//     - idx: input index assigned when the item was queued,
//     - worker: id of the worker that executed it (observability only),
//     - val: the result value (when present == true),
//     - present: false when the transform failed.
// - results chan<- R: sink written in input order.
//
// Semantics:
// - present == true stores val at buf[idx]; present == false marks idx as a hole.
// - After every event the cursor `next` is flushed forward while buf[next] exists
//   (emit, advance) or next is a known hole (advance without emitting).
// - On events close a final contiguous flush is performed; gaps stop the flush.
//
// A hole only occurs on a failed run, whose results are discarded by Map. On a
// successful run every index arrives exactly once and all results are emitted.
//
// Concurrency contracts:
// - Single goroutine reading events and writing results; it closes neither channel.
// - results is buffered to the input length, so emission never blocks.

type completionEvent[R any] struct {
	idx     int
	worker  int
	val     R
	present bool
}

// item is one queued input together with its position.
type item[T any] struct {
	idx int
	val T
}
