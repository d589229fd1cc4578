// Command squares computes the squares of 1..299 across a pool of workers, logging
// progress to stderr, and writes them to a CSV file.
//
//	squares [--cpus N] [--output-file PATH]
package main

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/ygrebnov/pmap/internal/squares"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run executes the command and returns its exit code: 0 on success or --help,
// 1 when the run fails and 2 on invalid flags.
func run(args []string, stderr io.Writer, opts ...squares.AppOption) int {
	cfg, err := squares.ParseFlags(args, stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		return 2
	}

	log := squares.NewLogger(stderr)
	if err := squares.NewApp(cfg, log, opts...).Run(context.Background()); err != nil {
		log.Errorf("%+v", err)
		return 1
	}
	return 0
}
