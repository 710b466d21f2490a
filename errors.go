package vector

import "github.com/pkg/errors"

// ErrOutOfRange is returned by the checked accessors when the index is not
// within [0, Len()). Returned errors wrap it; test with errors.Is.
var ErrOutOfRange = errors.New("vector: index out of range")

func outOfRange(i, size int) error {
	return errors.Wrapf(ErrOutOfRange, "index %d, size %d", i, size)
}
