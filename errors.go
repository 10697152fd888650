package minilog

import (
	"errors"
	"fmt"
)

// ErrTargetAlreadySet is returned when the output target of a Logger has
// already been claimed. The first claim wins; later calls change nothing.
var ErrTargetAlreadySet = errors.New("minilog: output target already set")

// IoError reports a failure to open or read a destination or configuration
// file.
type IoError struct {
	Op   string
	Path string
	Err  error
}

func (e *IoError) Error() string {
	return fmt.Sprintf("minilog: %s %q: %v", e.Op, e.Path, e.Err)
}

func (e *IoError) Unwrap() error {
	return e.Err
}
