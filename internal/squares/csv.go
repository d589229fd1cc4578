package squares

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/samber/lo"
)

var (
	ErrLengthMismatch = errors.New("squares: numbers and results differ in length")
)

// Header is the first CSV line.
var Header = []string{"number", "square"}

// WriteCSV writes the header and one "<number>,<square>" row per input, in input order.
// The file is written next to path and renamed into place, so a failure never leaves
// a truncated file and a previous file stays untouched.
func WriteCSV(path string, numbers, results []int) (err error) {
	if len(numbers) != len(results) {
		return fmt.Errorf("%w: %d numbers, %d results", ErrLengthMismatch, len(numbers), len(results))
	}

	rows := lo.Map(numbers, func(n int, i int) []string {
		return []string{strconv.Itoa(n), strconv.Itoa(results[i])}
	})

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	w := csv.NewWriter(tmp)
	if err = w.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err = w.WriteAll(rows); err != nil {
		return fmt.Errorf("write rows: %w", err)
	}
	if err = tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("chmod output file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close output file: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename output file: %w", err)
	}
	return nil
}
