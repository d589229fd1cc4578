// Package squares is the command-line application computing squares of a fixed range of
// integers on the parallel map executor and storing them as CSV.
package squares

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"
)

const (
	DefaultWorkers    = 4
	DefaultOutputFile = "results.csv"
)

// Config holds the command-line configuration.
type Config struct {
	// Workers is the requested number of workers; it is clamped to the CPU count.
	Workers int
	// OutputFile is the CSV path, overwritten on every successful run.
	OutputFile string
}

// DefaultConfig returns the configuration used when no flags are given.
func DefaultConfig() Config {
	return Config{Workers: DefaultWorkers, OutputFile: DefaultOutputFile}
}

// ParseFlags parses args (without the program name). Usage and parse errors are
// printed to output. pflag.ErrHelp is returned for -h/--help.
func ParseFlags(args []string, output io.Writer) (Config, error) {
	cfg := DefaultConfig()

	fs := pflag.NewFlagSet("squares", pflag.ContinueOnError)
	fs.SetOutput(output)
	fs.IntVar(&cfg.Workers, "cpus", cfg.Workers, "Number of workers to use.")
	fs.StringVar(&cfg.OutputFile, "output-file", cfg.OutputFile, "Path to the CSV file where results will be stored.")

	if err := fs.Parse(args); err != nil {
		if !errors.Is(err, pflag.ErrHelp) {
			fmt.Fprintf(output, "%v\nUsage of squares:\n%s", err, fs.FlagUsages())
		}
		return Config{}, err
	}
	return cfg, nil
}
