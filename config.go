package pmap

import (
	"io"
	"runtime"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/pmap/metrics"
)

const (
	// DefaultWorkers is the worker count used when WithWorkers is not supplied.
	DefaultWorkers = 4
	// MaxQueueSize is the largest buffer accepted by WithQueueSize.
	MaxQueueSize = 1 << 20
)

// config holds Executor configuration.
type config struct {
	// Workers is the requested number of concurrent workers.
	// The effective count is clamped to [1, MaxParallelism].
	// Default: 4
	Workers int

	// MaxParallelism is the available parallelism the worker count is clamped to.
	// Default: runtime.NumCPU()
	MaxParallelism int

	// StrictWorkers rejects non-positive worker counts instead of raising them to 1.
	// Oversized counts are always clamped.
	// Default: false
	StrictWorkers bool

	// QueueSize defines the size of the internal work queue buffer.
	// Zero means the queue is buffered to the effective worker count.
	// Default: 0
	QueueSize uint

	// InputIsolation deep-copies every input before it reaches a worker.
	// Default: false
	InputIsolation bool

	// Logger receives run and per-item events.
	// Default: a logger discarding everything.
	Logger logrus.FieldLogger

	// Metrics constructs the instruments recorded by workers.
	// Default: metrics.NoopProvider.
	Metrics metrics.Provider
}

func defaultConfig() config {
	return config{
		Workers:        DefaultWorkers,
		MaxParallelism: runtime.NumCPU(),
		StrictWorkers:  false,
		QueueSize:      0,
		InputIsolation: false,
		Logger:         discardLogger(),
		Metrics:        metrics.NewNoopProvider(),
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// validateConfig checks invariants that depend on more than one option.
func validateConfig(cfg *config) error {
	if cfg.StrictWorkers && cfg.Workers < 1 {
		return errorc.With(
			ErrInvalidConfig,
			errorc.String("workers", strconv.Itoa(cfg.Workers)),
			errorc.String("", "worker count must be positive"),
		)
	}
	return nil
}

// effectiveWorkers clamps the requested worker count to [1, available].
func effectiveWorkers(requested, available int) int {
	if available < 1 {
		available = 1
	}
	switch {
	case requested < 1:
		return 1
	case requested > available:
		return available
	default:
		return requested
	}
}

// Option configures an Executor. Invalid input is reported as an error from New.
type Option func(*config) error

// WithWorkers sets the requested worker count.
func WithWorkers(n int) Option {
	return func(cfg *config) error { cfg.Workers = n; return nil }
}

// WithMaxParallelism overrides the available parallelism used for clamping (must be > 0).
func WithMaxParallelism(n int) Option {
	return func(cfg *config) error {
		if n < 1 {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithMaxParallelism requires n > 0"))
		}
		cfg.MaxParallelism = n
		return nil
	}
}

// WithStrictWorkers makes New fail on a non-positive worker count.
func WithStrictWorkers() Option {
	return func(cfg *config) error { cfg.StrictWorkers = true; return nil }
}

// WithQueueSize sets the size of the internal work queue buffer (at most MaxQueueSize).
func WithQueueSize(size uint) Option {
	return func(cfg *config) error {
		if size > MaxQueueSize {
			return errorc.With(
				ErrInvalidConfig,
				errorc.String("", "WithQueueSize requires size <= "+strconv.Itoa(MaxQueueSize)),
			)
		}
		cfg.QueueSize = size
		return nil
	}
}

// WithInputIsolation deep-copies each input before handing it to a worker, so inputs
// holding pointers, slices or maps never share mutable state between workers.
func WithInputIsolation() Option {
	return func(cfg *config) error { cfg.InputIsolation = true; return nil }
}

// WithLogger sets the observability sink.
func WithLogger(l logrus.FieldLogger) Option {
	return func(cfg *config) error {
		if l == nil {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithLogger requires a non-nil logger"))
		}
		cfg.Logger = l
		return nil
	}
}

// WithMetrics sets the metrics provider.
func WithMetrics(p metrics.Provider) Option {
	return func(cfg *config) error {
		if p == nil {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithMetrics requires a non-nil provider"))
		}
		cfg.Metrics = p
		return nil
	}
}
