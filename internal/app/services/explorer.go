// Package services holds the stateful helpers behind the terminal panes.
package services

import (
	"path/filepath"
	"strings"

	"github.com/chmouel/lazycode/internal/view"
)

// ExplorerRow is one visible line of the explorer pane.
type ExplorerRow struct {
	Path   string       // Absolute path of the file or directory
	Icon   string       // Icon text as built by the view
	Label  string       // Display name
	Depth  int          // Indent level taken from the node style
	Button *view.Button // nil for directory rows
}

// IsDir returns true if this row is a directory.
func (r ExplorerRow) IsDir() bool {
	return r.Button == nil
}

// Selected reports whether the row is the highlighted file.
func (r ExplorerRow) Selected() bool {
	return r.Button != nil && r.Button.Selected
}

// ExplorerService keeps the flattened explorer rows, the collapsed
// directories and the cursor.
type ExplorerService struct {
	Rows          []ExplorerRow
	CollapsedDirs map[string]bool
	Index         int
}

// NewExplorerService creates a new ExplorerService.
func NewExplorerService() *ExplorerService {
	return &ExplorerService{
		CollapsedDirs: make(map[string]bool),
	}
}

// FlattenExplorer returns the visible rows of an explorer node tree in
// display order, skipping the children of collapsed directories.
func FlattenExplorer(node view.Node, collapsed map[string]bool) []ExplorerRow {
	var rows []ExplorerRow
	flatten(node, collapsed, &rows)
	return rows
}

func flatten(node view.Node, collapsed map[string]bool, rows *[]ExplorerRow) {
	switch n := node.(type) {
	case *view.Button:
		*rows = append(*rows, ExplorerRow{
			Path:   n.Intent.Path,
			Icon:   n.Icon,
			Label:  n.Label,
			Depth:  n.Style.Indent,
			Button: n,
		})
	case *view.Container:
		if strings.HasPrefix(n.ID, view.DirPrefix) && !strings.HasPrefix(n.ID, view.DirItemPrefix) && len(n.Children) == 2 {
			*rows = append(*rows, dirRow(n))
			if collapsed[n.Path] {
				return
			}
			flatten(n.Children[1], collapsed, rows)
			return
		}
		for _, child := range n.Children {
			flatten(child, collapsed, rows)
		}
	}
}

func dirRow(dir *view.Container) ExplorerRow {
	row := ExplorerRow{Path: dir.Path}
	header, ok := dir.Children[0].(*view.Container)
	if !ok {
		return row
	}
	row.Depth = header.Style.Indent
	if len(header.Children) == 2 {
		if icon, ok := header.Children[0].(*view.Label); ok {
			row.Icon = icon.Text
		}
		if name, ok := header.Children[1].(*view.Label); ok {
			row.Label = name.Text
		}
	}
	return row
}

// Rebuild re-flattens the explorer node and keeps the cursor on the same
// path when it is still visible.
func (s *ExplorerService) Rebuild(explorer view.Node) {
	if s.CollapsedDirs == nil {
		s.CollapsedDirs = make(map[string]bool)
	}
	current := s.SelectedPath()
	s.Rows = FlattenExplorer(explorer, s.CollapsedDirs)
	s.RestoreSelection(current)
	s.ClampIndex()
}

// ToggleCollapse toggles a directory collapse state. The caller rebuilds.
func (s *ExplorerService) ToggleCollapse(path string) {
	if path == "" {
		return
	}
	if s.CollapsedDirs == nil {
		s.CollapsedDirs = make(map[string]bool)
	}
	s.CollapsedDirs[path] = !s.CollapsedDirs[path]
}

// Current returns the row under the cursor.
func (s *ExplorerService) Current() (ExplorerRow, bool) {
	if s.Index >= 0 && s.Index < len(s.Rows) {
		return s.Rows[s.Index], true
	}
	return ExplorerRow{}, false
}

// SelectedPath returns the path of the row under the cursor.
func (s *ExplorerService) SelectedPath() string {
	row, ok := s.Current()
	if !ok {
		return ""
	}
	return row.Path
}

// RestoreSelection sets Index based on the provided path if it exists.
func (s *ExplorerService) RestoreSelection(path string) bool {
	if path == "" {
		return false
	}
	for i, row := range s.Rows {
		if row.Path == path {
			s.Index = i
			return true
		}
	}
	return false
}

// Reveal expands every collapsed ancestor of path. The caller rebuilds.
func (s *ExplorerService) Reveal(path string) {
	for dir := range s.CollapsedDirs {
		if s.CollapsedDirs[dir] && strings.HasPrefix(path, dir+string(filepath.Separator)) {
			s.CollapsedDirs[dir] = false
		}
	}
}

// Move shifts the cursor by delta rows, clamped to the list.
func (s *ExplorerService) Move(delta int) {
	s.Index += delta
	s.ClampIndex()
}

// Top moves the cursor to the first row.
func (s *ExplorerService) Top() { s.Index = 0 }

// Bottom moves the cursor to the last row.
func (s *ExplorerService) Bottom() {
	s.Index = len(s.Rows) - 1
	s.ClampIndex()
}

// ClampIndex ensures Index is within the valid range for the rows.
func (s *ExplorerService) ClampIndex() {
	if s.Index < 0 {
		s.Index = 0
	}
	if len(s.Rows) > 0 && s.Index >= len(s.Rows) {
		s.Index = len(s.Rows) - 1
	}
	if len(s.Rows) == 0 {
		s.Index = 0
	}
}
