package handlers

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chmouel/lazycode/internal/app/state"
	"github.com/chmouel/lazycode/internal/models"
	"github.com/chmouel/lazycode/internal/store"
	"github.com/chmouel/lazycode/internal/view"
	"github.com/chmouel/lazycode/internal/workspace"
)

type failingStore struct {
	store.ContentStore
	err    error
	writes int
}

func (f *failingStore) Write(path, content string) error {
	f.writes++
	return &store.IOError{Op: "write", Path: path, Cause: f.err}
}

func newWorkspace(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "README.md"), []byte("# Hello\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(root, "src", "app.py"), []byte("print('hi')\n"), 0o600))
	return root
}

func newHandlers(t *testing.T, root string, s store.ContentStore) *Handlers {
	t.Helper()
	scanner := workspace.NewScanner(workspace.Options{}, nil)
	tree, err := scanner.Scan(root)
	require.NoError(t, err)
	if s == nil {
		s = store.NewFileStore(false, nil)
	}
	return New(state.New(root, tree), s, scanner, nil)
}

func TestSelectFileLoadsContent(t *testing.T) {
	root := newWorkspace(t)
	h := newHandlers(t, root, nil)
	path := filepath.Join(root, "README.md")

	res, err := h.SelectFile(SelectFileRequest{Path: StringPtr(path)})
	require.NoError(t, err)
	assert.Equal(t, &SelectFileResult{File: path, Type: models.KindMarkdown}, res)
	assert.Equal(t, path, h.State.Selection)
	assert.Equal(t, "# Hello\n", h.State.Content)
}

func TestSelectFileResolvesRelativePaths(t *testing.T) {
	root := newWorkspace(t)
	h := newHandlers(t, root, nil)

	res, err := h.SelectFile(SelectFileRequest{Path: StringPtr("src/app.py")})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "src", "app.py"), res.File)
	assert.Equal(t, models.KindPython, res.Type)
}

func TestSelectFileRejectsDirectory(t *testing.T) {
	root := newWorkspace(t)
	h := newHandlers(t, root, nil)
	h.State.Selection = filepath.Join(root, "README.md")
	h.State.Content = "unchanged"

	_, err := h.SelectFile(SelectFileRequest{Path: StringPtr(filepath.Join(root, "src"))})
	require.Error(t, err)
	assert.True(t, errors.Is(err, store.ErrIsDirectory))
	assert.Equal(t, KindIsDirectory, KindOf(err))
	assert.Equal(t, filepath.Join(root, "README.md"), h.State.Selection)
	assert.Equal(t, "unchanged", h.State.Content)
}

func TestSelectFileMissingPath(t *testing.T) {
	h := newHandlers(t, newWorkspace(t), nil)

	for _, req := range []SelectFileRequest{{}, {Path: StringPtr("")}} {
		_, err := h.SelectFile(req)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMalformedRequest))
		assert.Equal(t, "No path in event data", err.Error())
	}
	assert.False(t, h.State.HasSelection())
}

func TestSelectFileMissingFileEmbedsError(t *testing.T) {
	root := newWorkspace(t)
	h := newHandlers(t, root, nil)
	path := filepath.Join(root, "ghost.txt")

	res, err := h.SelectFile(SelectFileRequest{Path: StringPtr(path)})
	require.NoError(t, err)
	assert.Equal(t, models.KindText, res.Type)
	assert.True(t, strings.HasPrefix(h.State.Content, store.ReadErrorPrefix))
	assert.Equal(t, path, h.State.Selection)
}

func TestSelectFileOutsideWorkspace(t *testing.T) {
	root := newWorkspace(t)
	h := newHandlers(t, root, nil)

	_, err := h.SelectFile(SelectFileRequest{Path: StringPtr("../../etc/passwd")})
	require.Error(t, err)
	assert.Equal(t, KindOutsideWorkspace, KindOf(err))
	assert.False(t, h.State.HasSelection())
}

func TestUpdateContentWritesAndUpdatesBuffer(t *testing.T) {
	root := newWorkspace(t)
	h := newHandlers(t, root, nil)
	path := filepath.Join(root, "README.md")

	_, err := h.SelectFile(SelectFileRequest{Path: StringPtr(path)})
	require.NoError(t, err)

	res, err := h.UpdateContent(UpdateContentRequest{Path: StringPtr(path), Content: StringPtr("X")})
	require.NoError(t, err)
	assert.Equal(t, &UpdateContentResult{Success: true, File: path}, res)
	assert.Equal(t, "X", h.State.Content)

	_, err = h.SelectFile(SelectFileRequest{Path: StringPtr(path)})
	require.NoError(t, err)
	assert.Equal(t, "X", h.State.Content)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "X", string(data))
}

func TestUpdateContentAcceptsEmptyContent(t *testing.T) {
	root := newWorkspace(t)
	h := newHandlers(t, root, nil)
	path := filepath.Join(root, "src", "app.py")

	_, err := h.UpdateContent(UpdateContentRequest{Path: StringPtr(path), Content: StringPtr("")})
	require.NoError(t, err)
	assert.Equal(t, "", h.State.Content)
}

func TestUpdateContentOtherFileKeepsBuffer(t *testing.T) {
	root := newWorkspace(t)
	h := newHandlers(t, root, nil)
	readme := filepath.Join(root, "README.md")
	app := filepath.Join(root, "src", "app.py")

	_, err := h.SelectFile(SelectFileRequest{Path: StringPtr(readme)})
	require.NoError(t, err)

	_, err = h.UpdateContent(UpdateContentRequest{Path: StringPtr(app), Content: StringPtr("print('bye')\n")})
	require.NoError(t, err)
	assert.Equal(t, readme, h.State.Selection)
	assert.Equal(t, "# Hello\n", h.State.Content)

	data, err := os.ReadFile(app)
	require.NoError(t, err)
	assert.Equal(t, "print('bye')\n", string(data))
}

func TestUpdateContentRefusesUnreadableSelection(t *testing.T) {
	root := newWorkspace(t)
	logo := filepath.Join(root, "logo.png")
	png := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a}
	require.NoError(t, os.WriteFile(logo, png, 0o600))
	h := newHandlers(t, root, nil)

	_, err := h.SelectFile(SelectFileRequest{Path: StringPtr(logo)})
	require.NoError(t, err)
	assert.True(t, h.State.Unreadable)
	assert.True(t, strings.HasPrefix(h.State.Content, store.ReadErrorPrefix))

	_, err = h.UpdateContent(UpdateContentRequest{Path: StringPtr(logo), Content: StringPtr(h.State.Content)})
	require.ErrorIs(t, err, ErrUnreadableBuffer)
	assert.Equal(t, KindUnreadable, KindOf(err))

	data, err := os.ReadFile(logo)
	require.NoError(t, err)
	assert.Equal(t, png, data, "the file must not be touched")

	_, err = h.SelectFile(SelectFileRequest{Path: StringPtr(filepath.Join(root, "README.md"))})
	require.NoError(t, err)
	assert.False(t, h.State.Unreadable)
}

func TestUpdateContentValidation(t *testing.T) {
	h := newHandlers(t, newWorkspace(t), nil)
	h.State.Content = "keep"

	for _, req := range []UpdateContentRequest{
		{},
		{Path: StringPtr("README.md")},
		{Content: StringPtr("x")},
	} {
		_, err := h.UpdateContent(req)
		require.Error(t, err)
		assert.Equal(t, KindMalformedRequest, KindOf(err))
		assert.Equal(t, "Missing path or content", err.Error())
	}
	assert.Equal(t, "keep", h.State.Content)
}

func TestUpdateContentRejectsDirectory(t *testing.T) {
	root := newWorkspace(t)
	fs := &failingStore{err: errors.New("unreachable")}
	h := newHandlers(t, root, fs)

	_, err := h.UpdateContent(UpdateContentRequest{Path: StringPtr(filepath.Join(root, "src")), Content: StringPtr("x")})
	require.Error(t, err)
	assert.Equal(t, KindIsDirectory, KindOf(err))
	assert.Zero(t, fs.writes, "no write is attempted for a directory")
}

func TestUpdateContentFailureKeepsBuffer(t *testing.T) {
	root := newWorkspace(t)
	fs := &failingStore{ContentStore: store.NewFileStore(false, nil), err: errors.New("disk full")}
	h := newHandlers(t, root, fs)
	path := filepath.Join(root, "README.md")

	_, err := h.SelectFile(SelectFileRequest{Path: StringPtr(path)})
	require.NoError(t, err)

	_, err = h.UpdateContent(UpdateContentRequest{Path: StringPtr(path), Content: StringPtr("lost")})
	require.Error(t, err)
	assert.Equal(t, KindIOError, KindOf(err))
	assert.Equal(t, "# Hello\n", h.State.Content)

	failure := Failure(view.ActionUpdateContent, err)
	assert.Equal(t, KindIOError, failure.Kind)
	assert.True(t, strings.HasPrefix(failure.Error, "Error updating file: "), failure.Error)
	assert.Contains(t, failure.Error, "disk full")
}

func TestDispatch(t *testing.T) {
	root := newWorkspace(t)
	h := newHandlers(t, root, nil)
	path := filepath.Join(root, "src", "app.py")

	res, err := h.Dispatch(view.ActionSelectFile, map[string]any{"path": path})
	require.NoError(t, err)
	assert.Equal(t, &SelectFileResult{File: path, Type: models.KindPython}, res)

	res, err = h.Dispatch(view.ActionUpdateContent, map[string]any{"path": path, "content": "pass\n"})
	require.NoError(t, err)
	assert.Equal(t, &UpdateContentResult{Success: true, File: path}, res)
	assert.Equal(t, "pass\n", h.State.Content)
}

func TestDispatchErrors(t *testing.T) {
	root := newWorkspace(t)
	h := newHandlers(t, root, nil)

	tests := []struct {
		name    string
		action  string
		payload map[string]any
		kind    ErrorKind
		message string
	}{
		{"nil payload", view.ActionSelectFile, nil, KindMalformedRequest, "No path in event data"},
		{"wrong type", view.ActionSelectFile, map[string]any{"path": 42}, KindMalformedRequest, ""},
		{"missing content", view.ActionUpdateContent, map[string]any{"path": "README.md"}, KindMalformedRequest, "Missing path or content"},
		{"directory select", view.ActionSelectFile, map[string]any{"path": "src"}, KindIsDirectory, "Cannot open directory"},
		{"directory update", view.ActionUpdateContent, map[string]any{"path": "src", "content": "x"}, KindIsDirectory, "Cannot update directory"},
		{"unknown action", "delete_file", map[string]any{"path": "README.md"}, KindUnknownAction, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := h.Dispatch(tt.action, tt.payload)
			require.Error(t, err)
			assert.Nil(t, res)

			failure := Failure(tt.action, err)
			assert.Equal(t, tt.kind, failure.Kind)
			if tt.message != "" {
				assert.Equal(t, tt.message, failure.Error)
			}
		})
	}
	assert.False(t, h.State.HasSelection())
}

func TestRescanKeepsSelection(t *testing.T) {
	root := newWorkspace(t)
	h := newHandlers(t, root, nil)
	path := filepath.Join(root, "README.md")
	_, err := h.SelectFile(SelectFileRequest{Path: StringPtr(path)})
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(root, "new.txt"), []byte("n"), 0o600))
	stats, err := h.Rescan()
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Files)
	assert.NotNil(t, h.State.Workspace.Find(filepath.Join(root, "new.txt")))
	assert.Equal(t, path, h.State.Selection)
	assert.Equal(t, "# Hello\n", h.State.Content)
}

func TestOpenDefault(t *testing.T) {
	root := newWorkspace(t)
	h := newHandlers(t, root, nil)

	assert.Nil(t, h.OpenDefault(""))
	assert.Nil(t, h.OpenDefault("missing.md"))
	assert.Nil(t, h.OpenDefault("src"))
	assert.False(t, h.State.HasSelection())

	res := h.OpenDefault("README.md")
	require.NotNil(t, res)
	assert.Equal(t, filepath.Join(root, "README.md"), h.State.Selection)
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, ErrorKind(""), KindOf(nil))
	assert.Equal(t, KindNotFound, KindOf(store.ErrNotFound))
	assert.Equal(t, KindNotFound, KindOf(os.ErrNotExist))
	assert.Equal(t, KindIOError, KindOf(&store.IOError{Op: "read", Path: "x", Cause: errors.New("boom")}))
	assert.Equal(t, KindUnknown, KindOf(errors.New("other")))
}
