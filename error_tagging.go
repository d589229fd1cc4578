package pmap

import (
	"errors"
	"fmt"
)

// ItemError reports a failure of the transform for one input.
type ItemError struct {
	err   error
	index int
}

func newItemError(err error, index int) error {
	if err == nil {
		return nil
	}
	return &ItemError{err: err, index: index}
}

func (e *ItemError) Error() string { return fmt.Sprintf("item %d: %s", e.index, e.err) }
func (e *ItemError) Unwrap() error { return e.err }

// Index returns the position of the failed input.
func (e *ItemError) Index() int { return e.index }

func (e *ItemError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = fmt.Fprintf(s, "item(index=%d): %+v", e.index, e.err)
			return
		}
		fallthrough
	case 's':
		_, _ = fmt.Fprint(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	}
}

// ExtractItemIndex returns the input index carried by err if present.
func ExtractItemIndex(err error) (int, bool) {
	var ie *ItemError
	if errors.As(err, &ie) {
		return ie.index, true
	}
	return 0, false
}
