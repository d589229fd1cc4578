// Package pmap provides a deterministic parallel map: a slice of inputs is spread
// across a fixed-size pool of workers, a transform is applied to every item, and the
// results come back in input order.
//
// Constructors
//   - New(opts ...Option): builds an Executor. The Executor is reusable and safe for
//     concurrent Map calls; every call owns a fresh worker pool.
//   - Run(ctx, inputs, fn, workers, opts...): one-shot helper around New + Map.
//
// Defaults
// Unless overridden, the following defaults apply:
//   - Workers: 4
//   - MaxParallelism: runtime.NumCPU()
//   - StrictWorkers: false (non-positive worker counts are raised to 1)
//   - QueueSize: 0 (work queue buffered to the effective worker count; at most MaxQueueSize)
//   - InputIsolation: false
//   - Logger: discarding logrus logger
//   - Metrics: metrics.NoopProvider
//
// Worker count
// The requested worker count is clamped to [1, MaxParallelism]. Requests above the
// available parallelism are reduced silently and are never an error.
//
// Ordering
// Results are assembled by input index, never by completion order: out[i] is always
// fn(ctx, inputs[i]).
//
// Failures
// The first transform failure aborts the call. Items not yet dispatched are skipped,
// items already running finish, and Map returns no results together with the failure
// wrapped in an ItemError carrying the input index.
package pmap
