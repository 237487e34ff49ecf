package view

import "github.com/chmouel/lazycode/internal/models"

// SidebarWidth is the explorer width hint, in cells or tens of pixels.
const SidebarWidth = 30

// Layout composes explorer, editor and status bar into one tree.
func (b Builder) Layout(root *models.FileNode, selected, content string) Node {
	return &Container{
		ID:        "app",
		Direction: Column,
		Style:     Style{Grow: true},
		Children: []Node{
			&Container{
				ID:        "main",
				Direction: Row,
				Style:     Style{Grow: true},
				Children: []Node{
					&Container{
						ID:        "sidebar",
						Direction: Column,
						Style:     Style{Width: SidebarWidth},
						Children:  []Node{b.Explorer(root, selected)},
					},
					b.Editor(selected, content),
				},
			},
			b.StatusBar(selected),
		},
	}
}
