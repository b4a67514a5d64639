package fsops

import (
	"errors"
	"fmt"
	"os"
)

// Sentinel errors classifying every possible primitive failure.
// Each error returned by CreateFile, CreateDirectory, or WriteBytes
// matches exactly one of these via errors.Is.
var (
	// ErrAlreadyExists indicates something already exists at the target path.
	ErrAlreadyExists = errors.New("already exists")

	// ErrUnsupported indicates the operation is not supported by the filesystem.
	ErrUnsupported = errors.New("operation not supported")

	// ErrPermission indicates the operation was denied by permissions.
	ErrPermission = errors.New("permission denied")

	// ErrIO indicates any other I/O failure.
	ErrIO = errors.New("i/o error")
)

// classify wraps err with the sentinel matching its cause.
func classify(err error) error {
	switch {
	case os.IsExist(err):
		return fmt.Errorf("%w: %v", ErrAlreadyExists, err)
	case os.IsPermission(err):
		return fmt.Errorf("%w: %v", ErrPermission, err)
	case errors.Is(err, errors.ErrUnsupported):
		return fmt.Errorf("%w: %v", ErrUnsupported, err)
	default:
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
}
