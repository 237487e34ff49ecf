// Package store reads and writes whole text files for the editor.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"
)

// ReadErrorPrefix starts the content returned for an unreadable file.
const ReadErrorPrefix = "Error reading file: "

// ContentStore is the file access used by the event handlers.
// Read never fails: problems are reported inside the returned text.
type ContentStore interface {
	Read(path string) string
	Write(path, content string) error
}

// FileStore is a ContentStore backed by the local filesystem.
type FileStore struct {
	// Atomic writes through a temporary file renamed over the target.
	Atomic bool
	logf   func(string, ...any)
}

// NewFileStore creates a FileStore. logf may be nil.
func NewFileStore(atomic bool, logf func(string, ...any)) *FileStore {
	return &FileStore{Atomic: atomic, logf: logf}
}

// Loader is implemented by stores that can report read failures instead
// of embedding them in the text.
type Loader interface {
	Load(path string) (string, error)
}

// Load returns the whole file as UTF-8 text.
func (s *FileStore) Load(path string) (string, error) {
	// #nosec G304 -- paths come from the workspace scan or are checked by the caller
	data, err := os.ReadFile(path)
	if err == nil && !utf8.Valid(data) {
		err = fmt.Errorf("%s: %w", path, ErrInvalidEncoding)
	}
	if err != nil {
		s.debugf("read %s: %v", path, err)
		return "", err
	}
	return string(data), nil
}

// Read returns the whole file as text, or a ReadErrorPrefix message.
func (s *FileStore) Read(path string) string {
	content, err := s.Load(path)
	if err != nil {
		return ReadErrorMessage(err)
	}
	return content
}

// ReadErrorMessage is the buffer text shown in place of an unreadable file.
func ReadErrorMessage(err error) string {
	return ReadErrorPrefix + err.Error()
}

// Write replaces the file content, creating the file when it is missing.
// Directories are rejected before any write is attempted.
func (s *FileStore) Write(path, content string) error {
	perm := fs.FileMode(0o644)
	info, err := os.Stat(path)
	switch {
	case err == nil && info.IsDir():
		return fmt.Errorf("write %s: %w", path, ErrIsDirectory)
	case err == nil:
		perm = info.Mode().Perm()
	case !errors.Is(err, fs.ErrNotExist):
		return &IOError{Op: "stat", Path: path, Cause: err}
	}

	if s.Atomic {
		err = writeFileAtomic(path, []byte(content), perm)
	} else {
		err = os.WriteFile(path, []byte(content), perm)
	}
	if err != nil {
		s.debugf("write %s: %v", path, err)
		var ioErr *IOError
		if errors.As(err, &ioErr) {
			return err
		}
		return &IOError{Op: "write", Path: path, Cause: err}
	}
	s.debugf("wrote %d bytes to %s", len(content), path)
	return nil
}

// writeFileAtomic writes into a temp file in the target directory and
// renames it over path.
func writeFileAtomic(path string, content []byte, perm fs.FileMode) error {
	dir := filepath.Dir(path)

	tmpFile, err := os.CreateTemp(dir, ".lazycode-*")
	if err != nil {
		return &IOError{Op: "create temp", Path: dir, Cause: err}
	}

	tmpPath := tmpFile.Name()
	needsCleanup := true

	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
		}
		if needsCleanup {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(content); err != nil {
		return &IOError{Op: "write temp", Path: tmpPath, Cause: err}
	}
	if err := tmpFile.Sync(); err != nil {
		return &IOError{Op: "sync temp", Path: tmpPath, Cause: err}
	}
	if err := tmpFile.Close(); err != nil {
		tmpFile = nil
		return &IOError{Op: "close temp", Path: tmpPath, Cause: err}
	}
	tmpFile = nil

	if err := os.Chmod(tmpPath, perm); err != nil {
		return &IOError{Op: "chmod", Path: tmpPath, Cause: err}
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return &IOError{Op: "rename", Path: path, Cause: err}
	}
	needsCleanup = false
	return nil
}

func (s *FileStore) debugf(format string, args ...any) {
	if s.logf != nil {
		s.logf(format, args...)
	}
}
