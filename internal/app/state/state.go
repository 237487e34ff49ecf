// Package state holds the application and UI state owned by one runtime.
package state

import "github.com/chmouel/lazycode/internal/models"

// AppState is the editor state mutated by the event handlers.
type AppState struct {
	// Root is the absolute workspace directory.
	Root      string
	Workspace *models.FileNode
	// Selection is the absolute path of the open file, empty when none.
	Selection string
	// Content is the text buffer of the open file.
	Content string
	// Unreadable is set when Content holds a read error instead of the
	// file text. Such a buffer is never written back.
	Unreadable bool
}

// New creates the state for a scanned workspace.
func New(root string, workspace *models.FileNode) *AppState {
	return &AppState{Root: root, Workspace: workspace}
}

// HasSelection reports whether a file is open.
func (s *AppState) HasSelection() bool {
	return s.Selection != ""
}
