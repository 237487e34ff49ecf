package handlers

import (
	"errors"
	"io/fs"

	"github.com/chmouel/lazycode/internal/store"
)

var (
	// ErrMalformedRequest is matched by every payload validation failure.
	ErrMalformedRequest = errors.New("malformed request")
	// ErrOutsideWorkspace is returned for paths that escape the workspace root.
	ErrOutsideWorkspace = errors.New("path is outside the workspace")
	// ErrUnknownAction is returned by Dispatch for unregistered actions.
	ErrUnknownAction = errors.New("unknown action")
	// ErrUnreadableBuffer is returned when saving over an open file whose
	// content could not be loaded.
	ErrUnreadableBuffer = errors.New("file could not be read, refusing to overwrite it")
)

// RequestError describes an invalid event payload.
type RequestError struct {
	Msg string
}

func (e *RequestError) Error() string { return e.Msg }

// Is makes every RequestError match ErrMalformedRequest.
func (e *RequestError) Is(target error) bool { return target == ErrMalformedRequest }

// ErrorKind labels an error for callers outside the process.
type ErrorKind string

// Error kinds.
const (
	KindNotFound         ErrorKind = "not_found"
	KindIsDirectory      ErrorKind = "is_directory"
	KindIOError          ErrorKind = "io_error"
	KindMalformedRequest ErrorKind = "malformed_request"
	KindOutsideWorkspace ErrorKind = "outside_workspace"
	KindUnknownAction    ErrorKind = "unknown_action"
	KindUnreadable       ErrorKind = "unreadable"
	KindUnknown          ErrorKind = "unknown"
)

// KindOf classifies err. It returns "" for a nil error.
func KindOf(err error) ErrorKind {
	var ioErr *store.IOError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMalformedRequest):
		return KindMalformedRequest
	case errors.Is(err, ErrUnknownAction):
		return KindUnknownAction
	case errors.Is(err, ErrOutsideWorkspace):
		return KindOutsideWorkspace
	case errors.Is(err, ErrUnreadableBuffer):
		return KindUnreadable
	case errors.Is(err, store.ErrIsDirectory):
		return KindIsDirectory
	case errors.Is(err, store.ErrNotFound), errors.Is(err, fs.ErrNotExist):
		return KindNotFound
	case errors.As(err, &ioErr):
		return KindIOError
	default:
		return KindUnknown
	}
}
