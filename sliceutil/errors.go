package sliceutil

import (
	"errors"
	"fmt"
)

var ErrIndexOutOfBounds = errors.New("index out of bounds")

// IndexError reports an access outside a sequence, or a row that does not fit
// the width expected by Transpose.
type IndexError struct {
	Op     string
	Index  int
	Length int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("sliceutil.%s: index %d out of bounds for length %d", e.Op, e.Index, e.Length)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfBounds
}
