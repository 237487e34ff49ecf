// Package handlers implements the two editor events and rescans. Every
// mutation of the application state goes through this package.
package handlers

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/mapstructure"

	"github.com/chmouel/lazycode/internal/app/state"
	"github.com/chmouel/lazycode/internal/filetype"
	"github.com/chmouel/lazycode/internal/models"
	"github.com/chmouel/lazycode/internal/store"
	"github.com/chmouel/lazycode/internal/view"
	"github.com/chmouel/lazycode/internal/workspace"
)

// Handlers binds the event operations to one application state.
type Handlers struct {
	State   *state.AppState
	Store   store.ContentStore
	Scanner *workspace.Scanner
	logf    func(string, ...any)
}

// New creates Handlers. logf may be nil.
func New(st *state.AppState, s store.ContentStore, scanner *workspace.Scanner, logf func(string, ...any)) *Handlers {
	return &Handlers{State: st, Store: s, Scanner: scanner, logf: logf}
}

// SelectFile opens a file: it loads the content buffer and sets the
// selection. Directories are rejected without touching the state.
func (h *Handlers) SelectFile(req SelectFileRequest) (*SelectFileResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	path, err := h.resolve(*req.Path)
	if err != nil {
		return nil, err
	}

	kind := filetype.Classify(path)
	if kind == models.KindDirectory {
		return nil, fmt.Errorf("open %s: %w", path, store.ErrIsDirectory)
	}

	h.State.Content, h.State.Unreadable = h.read(path)
	h.State.Selection = path
	h.debugf("selected %s (%s, %d bytes)", path, kind, len(h.State.Content))
	return &SelectFileResult{File: path, Type: kind}, nil
}

// UpdateContent writes the whole file and, on success, replaces the
// content buffer when path is the open file. A failed write leaves the
// buffer untouched, and an open file that could not be read is never
// overwritten.
func (h *Handlers) UpdateContent(req UpdateContentRequest) (*UpdateContentResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	path, err := h.resolve(*req.Path)
	if err != nil {
		return nil, err
	}

	if filetype.Classify(path) == models.KindDirectory {
		return nil, fmt.Errorf("update %s: %w", path, store.ErrIsDirectory)
	}

	selected := path == h.State.Selection
	if selected && h.State.Unreadable {
		return nil, fmt.Errorf("update %s: %w", path, ErrUnreadableBuffer)
	}

	if err := h.Store.Write(path, *req.Content); err != nil {
		h.debugf("update %s failed: %v", path, err)
		return nil, err
	}

	// Only the open file owns the buffer.
	if selected {
		h.State.Content = *req.Content
	}
	h.debugf("updated %s (%d bytes)", path, len(*req.Content))
	return &UpdateContentResult{Success: true, File: path}, nil
}

// Dispatch decodes payload for action and runs the matching handler. The
// returned value is a *SelectFileResult or an *UpdateContentResult.
func (h *Handlers) Dispatch(action string, payload map[string]any) (any, error) {
	if payload == nil {
		payload = map[string]any{}
	}

	switch action {
	case view.ActionSelectFile:
		var req SelectFileRequest
		if err := decode(payload, &req); err != nil {
			return nil, err
		}
		res, err := h.SelectFile(req)
		if err != nil {
			return nil, err
		}
		return res, nil
	case view.ActionUpdateContent:
		var req UpdateContentRequest
		if err := decode(payload, &req); err != nil {
			return nil, err
		}
		res, err := h.UpdateContent(req)
		if err != nil {
			return nil, err
		}
		return res, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}
}

// Failure converts an error returned for action into its result object.
func Failure(action string, err error) ErrorResult {
	kind := KindOf(err)
	msg := err.Error()
	switch kind {
	case KindIsDirectory:
		if action == view.ActionUpdateContent {
			msg = "Cannot update directory"
		} else {
			msg = "Cannot open directory"
		}
	case KindIOError, KindNotFound:
		if action == view.ActionUpdateContent {
			msg = "Error updating file: " + err.Error()
		}
	}
	return ErrorResult{Error: msg, Kind: kind}
}

// Rescan rebuilds the workspace tree. Selection and content are kept.
func (h *Handlers) Rescan() (workspace.Stats, error) {
	tree, err := h.Scanner.Scan(h.State.Root)
	if err != nil {
		h.debugf("rescan %s failed: %v", h.State.Root, err)
		return workspace.Stats{}, err
	}
	h.State.Workspace = tree
	return h.Scanner.LastStats(), nil
}

// OpenDefault selects name, relative to the workspace root, when it is an
// existing regular file. It returns nil when nothing was opened.
func (h *Handlers) OpenDefault(name string) *SelectFileResult {
	if name == "" {
		return nil
	}
	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(h.State.Root, path)
	}
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return nil
	}
	result, err := h.SelectFile(SelectFileRequest{Path: &path})
	if err != nil {
		h.debugf("open default %s: %v", path, err)
		return nil
	}
	return result
}

// read loads path, reporting whether the buffer holds a read error.
func (h *Handlers) read(path string) (string, bool) {
	loader, ok := h.Store.(store.Loader)
	if !ok {
		return h.Store.Read(path), false
	}
	content, err := loader.Load(path)
	if err != nil {
		return store.ReadErrorMessage(err), true
	}
	return content, false
}

// resolve anchors relative paths at the workspace root and rejects paths
// that leave it.
func (h *Handlers) resolve(path string) (string, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(h.State.Root, path)
	}
	path = filepath.Clean(path)
	if h.State.Root != "" && !workspace.Within(h.State.Root, path) {
		return "", fmt.Errorf("%s: %w", path, ErrOutsideWorkspace)
	}
	return path, nil
}

func decode(payload map[string]any, out any) error {
	if err := mapstructure.Decode(payload, out); err != nil {
		return &RequestError{Msg: fmt.Sprintf("invalid event data: %v", err)}
	}
	return nil
}

func (h *Handlers) debugf(format string, args ...any) {
	if h.logf != nil {
		h.logf(format, args...)
	}
}
