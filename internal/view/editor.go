package view

import (
	"path/filepath"

	"github.com/chmouel/lazycode/internal/filetype"
)

// Editor identifiers.
const (
	EditorID            = "editor"
	EditorPlaceholderID = "editor-placeholder"
	EditorTextAreaID    = "code-editor-textarea"
)

// PlaceholderHint is shown when no file is selected.
const PlaceholderHint = "Select a file from the explorer to start editing"

// Editor renders the editor pane with default options.
func Editor(selected, content string) Node {
	return defaultBuilder.Editor(selected, content)
}

// Editor renders a header and a text area bound to selected, or a
// placeholder when selected is empty.
func (b Builder) Editor(selected, content string) Node {
	if selected == "" {
		return &Container{
			ID:        EditorPlaceholderID,
			Direction: Column,
			Style:     Style{Grow: true, Align: AlignCenter},
			Children: []Node{
				&Label{Text: b.title(), Style: Style{Fg: RoleHeading, Bold: true, Align: AlignCenter}},
				&Label{Text: PlaceholderHint, Style: Style{Fg: RoleMuted, Align: AlignCenter}},
			},
		}
	}

	kind := filetype.ClassifyName(selected)
	return &Container{
		ID:        EditorID,
		Direction: Column,
		Style:     Style{Grow: true},
		Children: []Node{
			&Container{
				ID:        "editor-header",
				Direction: Row,
				Style:     Style{Bg: RolePanel},
				Children: []Node{
					&Label{Text: filetype.IconFor(b.Icons, kind), Style: Style{Fg: RoleAccent}},
					&Label{ID: "editor-filename", Text: filepath.Base(selected), Style: Style{Fg: RoleBright, Bold: true}},
				},
			},
			&TextArea{
				ID:       EditorTextAreaID,
				Value:    content,
				Language: filetype.EditorMode(selected),
				Style:    Style{Grow: true, Fg: RoleText},
				Intent:   Intent{Action: ActionUpdateContent, Path: selected},
			},
		},
	}
}
