package view

import "github.com/chmouel/lazycode/internal/filetype"

// StatusBarID identifies the status bar container.
const StatusBarID = "status-bar"

// StatusBar renders the status bar with default options.
func StatusBar(selected string) Node {
	return defaultBuilder.StatusBar(selected)
}

// StatusBar shows the application name and the kind of the selected file.
func (b Builder) StatusBar(selected string) Node {
	kind := ""
	if selected != "" {
		kind = filetype.ClassifyName(selected).Upper()
	}
	return &Container{
		ID:        StatusBarID,
		Direction: Row,
		Style:     Style{Bg: RoleStatus, Fg: RoleStatusFg},
		Children: []Node{
			&Label{ID: "status-left", Text: b.title()},
			&Label{ID: "status-right", Text: kind, Style: Style{Grow: true, Align: AlignRight}},
		},
	}
}
