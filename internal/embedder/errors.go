package embedder

import (
	"errors"
	"fmt"
	"io/fs"
)

// AccessError reports a failure to read an input or to create, write or
// finalize an output.
type AccessError struct {
	// Op is the failed operation (e.g. "read", "create", "write").
	Op string
	// Path is the file the operation was applied to.
	Path string
	Err  error
}

func (e *AccessError) Error() string {
	cause := e.Err
	var pe *fs.PathError
	if errors.As(cause, &pe) {
		cause = pe.Err
	}
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, cause)
}

func (e *AccessError) Unwrap() error { return e.Err }

func accessError(op, path string, err error) error {
	var ae *AccessError
	if errors.As(err, &ae) {
		return err
	}
	return &AccessError{Op: op, Path: path, Err: err}
}
