package squares

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ygrebnov/pmap"
	"github.com/ygrebnov/pmap/metrics"
)

// App squares Inputs on the parallel executor and stores them in Config.OutputFile.
type App struct {
	cfg       Config
	log       logrus.FieldLogger
	inputs    []int
	transform pmap.Transform[int, int]
	metrics   *metrics.BasicProvider
	opts      []pmap.Option
}

// AppOption customizes an App.
type AppOption func(*App)

// WithInputs replaces the default 1..InputCount inputs.
func WithInputs(in []int) AppOption {
	return func(a *App) { a.inputs = in }
}

// WithTransform replaces the default Square transform.
func WithTransform(fn pmap.Transform[int, int]) AppOption {
	return func(a *App) { a.transform = fn }
}

// WithDelay replaces the default Square transform with one sleeping d per item.
func WithDelay(d time.Duration) AppOption {
	return func(a *App) { a.transform = Square(a.log, d) }
}

// WithExecutorOptions appends options passed to pmap.New.
func WithExecutorOptions(opts ...pmap.Option) AppOption {
	return func(a *App) { a.opts = append(a.opts, opts...) }
}

// NewApp builds an App squaring 1..InputCount with a one second simulated delay per item.
// Lines logged outside the worker pool are tagged worker=main.
func NewApp(cfg Config, log logrus.FieldLogger, opts ...AppOption) *App {
	a := &App{
		cfg:       cfg,
		log:       log.WithField("worker", MainWorker),
		inputs:    Inputs(),
		transform: Square(log, WorkDelay),
		metrics:   metrics.NewBasicProvider(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run computes all results, then writes the CSV. Nothing is written when any item fails.
func (a *App) Run(ctx context.Context) error {
	a.log.Info("Starting the parallel squares run.")

	exec, err := pmap.New(append([]pmap.Option{
		pmap.WithWorkers(a.cfg.Workers),
		pmap.WithLogger(a.log),
		pmap.WithMetrics(a.metrics),
	}, a.opts...)...)
	if err != nil {
		return fmt.Errorf("configure executor: %w", err)
	}
	a.log.Infof("Using %d workers.", exec.Workers())

	results, err := pmap.Map(ctx, exec, a.inputs, a.transform)
	if err != nil {
		return fmt.Errorf("compute squares: %w", err)
	}

	d := a.metrics.HistogramSnapshot(metrics.ItemDuration)
	a.log.WithFields(logrus.Fields{
		"items":        a.metrics.CounterValue(metrics.ItemsCompleted),
		"mean_seconds": d.Mean,
		"max_seconds":  d.Max,
	}).Info("All workers have completed. Writing results to CSV...")

	if err := WriteCSV(a.cfg.OutputFile, a.inputs, results); err != nil {
		return fmt.Errorf("write results: %w", err)
	}

	a.log.Infof("Results written to %s", a.cfg.OutputFile)
	a.log.Info("Done.")
	return nil
}
