package view

import (
	"github.com/chmouel/lazycode/internal/filetype"
	"github.com/chmouel/lazycode/internal/models"
)

// Identifier prefixes of explorer entries.
const (
	ExplorerID     = "file-explorer"
	FileItemPrefix = "file-item-"
	DirItemPrefix  = "dir-item-"
	DirPrefix      = "dir-"
)

// Explorer renders the workspace tree with default options.
func Explorer(root *models.FileNode, selected string) Node {
	return defaultBuilder.Explorer(root, selected)
}

// Explorer renders the workspace tree. The file whose path equals selected
// is highlighted.
func (b Builder) Explorer(root *models.FileNode, selected string) Node {
	explorer := &Container{
		ID:        ExplorerID,
		Direction: Column,
		Style:     Style{Bg: RolePanel, Fg: RoleText, Grow: true},
		Children: []Node{
			&Label{
				ID:    "explorer-heading",
				Text:  "EXPLORER",
				Style: Style{Fg: RoleHeading, Bold: true},
			},
		},
	}
	if root != nil {
		explorer.Children = append(explorer.Children, b.treeNode(root, selected, 0))
	}
	return explorer
}

func (b Builder) treeNode(node *models.FileNode, selected string, level int) Node {
	if !node.IsDir() {
		return b.fileItem(node, selected, level)
	}

	children := make([]Node, 0, len(node.Children))
	for _, child := range node.Children {
		children = append(children, b.treeNode(child, selected, level+1))
	}

	return &Container{
		ID:        DirPrefix + pathID(node.Path),
		Direction: Column,
		Path:      node.Path,
		Children: []Node{
			&Container{
				ID:        DirItemPrefix + pathID(node.Path),
				Direction: Row,
				Style:     Style{Indent: level},
				Children: []Node{
					&Label{Text: filetype.IconFor(b.Icons, models.KindDirectory), Style: Style{Fg: RoleText}},
					&Label{Text: node.Name, Style: Style{Fg: RoleText}},
				},
			},
			&Container{
				Direction: Column,
				Children:  children,
			},
		},
	}
}

func (b Builder) fileItem(node *models.FileNode, selected string, level int) *Button {
	isSelected := node.Path == selected

	item := &Button{
		ID:         FileItemPrefix + pathID(node.Path),
		Icon:       filetype.IconFor(b.Icons, node.Kind),
		Label:      node.Name,
		Selected:   isSelected,
		Style:      Style{Indent: level},
		IconStyle:  Style{Fg: RoleText},
		LabelStyle: Style{Fg: RoleText},
		Intent:     Intent{Action: ActionSelectFile, Path: node.Path},
	}
	if isSelected {
		item.Style.Bg = RoleSelection
		item.IconStyle.Fg = RoleAccent
		item.LabelStyle = Style{Fg: RoleBright, Bold: true}
	}
	return item
}
