package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a path does not exist.
	ErrNotFound = errors.New("path does not exist")
	// ErrIsDirectory is returned when a file operation targets a directory.
	ErrIsDirectory = errors.New("path is a directory")
	// ErrInvalidEncoding is returned when file content is not valid UTF-8.
	ErrInvalidEncoding = errors.New("content is not valid UTF-8")
)

// IOError wraps a failed filesystem operation.
type IOError struct {
	Op    string
	Path  string
	Cause error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Cause)
}

func (e *IOError) Unwrap() error { return e.Cause }
