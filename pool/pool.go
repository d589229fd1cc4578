// Package pool provides the fixed-size worker pool used by the executor.
package pool

// Pool hands out workers and takes them back.
type Pool[W any] interface {
	// Get returns a worker from the pool, blocking while all workers are checked out.
	Get() W

	// Put returns a worker obtained from Get back to the pool.
	Put(W)
}
