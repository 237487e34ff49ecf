package view

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chmouel/lazycode/internal/filetype"
	"github.com/chmouel/lazycode/internal/models"
)

func workspaceTree() *models.FileNode {
	root := filepath.FromSlash("/ws")
	return &models.FileNode{
		Name: "ws",
		Path: root,
		Kind: models.KindDirectory,
		Children: []*models.FileNode{
			{
				Name: "src",
				Path: filepath.Join(root, "src"),
				Kind: models.KindDirectory,
				Children: []*models.FileNode{
					{Name: "app.py", Path: filepath.Join(root, "src", "app.py"), Kind: models.KindPython},
				},
			},
			{Name: "README.md", Path: filepath.Join(root, "README.md"), Kind: models.KindMarkdown},
		},
	}
}

func TestExplorerListsFilesInTreeOrder(t *testing.T) {
	tree := workspaceTree()
	node := Explorer(tree, "")

	explorer, ok := node.(*Container)
	require.True(t, ok)
	assert.Equal(t, ExplorerID, explorer.ID)

	heading, ok := explorer.Children[0].(*Label)
	require.True(t, ok)
	assert.Equal(t, "EXPLORER", heading.Text)

	buttons := Buttons(node)
	require.Len(t, buttons, 2)
	assert.Equal(t, "app.py", buttons[0].Label)
	assert.Equal(t, "README.md", buttons[1].Label)
	assert.Equal(t, Intent{Action: ActionSelectFile, Path: tree.Children[0].Children[0].Path}, buttons[0].Intent)
	assert.Equal(t, "🐍", buttons[0].Icon)
	assert.Equal(t, 2, buttons[0].Style.Indent)
	assert.Equal(t, 1, buttons[1].Style.Indent)

	for _, b := range buttons {
		assert.False(t, b.Selected)
		assert.Empty(t, b.Style.Bg)
	}
}

func TestExplorerDirectoryEntries(t *testing.T) {
	tree := workspaceTree()
	node := Explorer(tree, "")

	dir := FindByID(node, DirPrefix+pathID(tree.Children[0].Path))
	require.NotNil(t, dir)
	container := dir.(*Container)
	assert.Equal(t, tree.Children[0].Path, container.Path)
	require.Len(t, container.Children, 2)

	item := container.Children[0].(*Container)
	assert.Equal(t, DirItemPrefix+pathID(tree.Children[0].Path), item.ID)
	assert.Equal(t, "📁", item.Children[0].(*Label).Text)
	assert.Equal(t, "src", item.Children[1].(*Label).Text)

	assert.Len(t, container.Children[1].(*Container).Children, 1)
}

func TestPathIDsAreDistinct(t *testing.T) {
	paths := []string{
		filepath.FromSlash("/ws/a_b"),
		filepath.FromSlash("/ws/a/b"),
		filepath.FromSlash("/ws/a__b"),
		filepath.FromSlash("/ws/a/_b"),
		filepath.FromSlash("/ws/a_/b"),
		filepath.FromSlash("/ws/a_sb"),
	}
	seen := map[string]string{}
	for _, p := range paths {
		id := pathID(p)
		if other, dup := seen[id]; dup {
			t.Errorf("%q and %q share id %q", p, other, id)
		}
		seen[id] = p
	}

	root := &models.FileNode{
		Name: "ws", Path: filepath.FromSlash("/ws"), Kind: models.KindDirectory,
		Children: []*models.FileNode{
			{
				Name: "a", Path: filepath.FromSlash("/ws/a"), Kind: models.KindDirectory,
				Children: []*models.FileNode{
					{Name: "b", Path: filepath.FromSlash("/ws/a/b"), Kind: models.KindText},
				},
			},
			{Name: "a_b", Path: filepath.FromSlash("/ws/a_b"), Kind: models.KindText},
		},
	}
	node := Explorer(root, "")
	found := FindByID(node, FileItemPrefix+pathID(filepath.FromSlash("/ws/a_b")))
	require.NotNil(t, found)
	assert.Equal(t, "a_b", found.(*Button).Label)
}

func TestExplorerHighlightsSelection(t *testing.T) {
	tree := workspaceTree()
	selected := tree.Children[1].Path

	buttons := Buttons(Explorer(tree, selected))
	require.Len(t, buttons, 2)

	assert.False(t, buttons[0].Selected)
	readme := buttons[1]
	assert.True(t, readme.Selected)
	assert.Equal(t, RoleSelection, readme.Style.Bg)
	assert.Equal(t, RoleAccent, readme.IconStyle.Fg)
	assert.Equal(t, RoleBright, readme.LabelStyle.Fg)
	assert.True(t, readme.LabelStyle.Bold)
}

func TestExplorerIsPure(t *testing.T) {
	tree := workspaceTree()
	assert.Equal(t, Explorer(tree, "x"), Explorer(tree, "x"))
	assert.Len(t, Explorer(nil, "").(*Container).Children, 1)
}

func TestExplorerIconStyles(t *testing.T) {
	tree := workspaceTree()

	none := NewBuilder(filetype.IconStyleNone)
	for _, b := range Buttons(none.Explorer(tree, "")) {
		assert.Empty(t, b.Icon)
	}

	nerd := NewBuilder(filetype.IconStyleNerd)
	buttons := Buttons(nerd.Explorer(tree, ""))
	assert.Equal(t, filetype.NerdIcon(models.KindPython), buttons[0].Icon)
}

func TestEditorPlaceholder(t *testing.T) {
	node := Editor("", "ignored")
	container := node.(*Container)
	assert.Equal(t, EditorPlaceholderID, container.ID)
	assert.Equal(t, PlaceholderHint, container.Children[1].(*Label).Text)
	assert.Nil(t, FindByID(node, EditorTextAreaID))
}

func TestEditorWithSelection(t *testing.T) {
	path := filepath.FromSlash("/ws/src/app.py")
	node := Editor(path, "print('hi')")

	name := FindByID(node, "editor-filename").(*Label)
	assert.Equal(t, "app.py", name.Text)

	area := FindByID(node, EditorTextAreaID).(*TextArea)
	assert.Equal(t, "print('hi')", area.Value)
	assert.Equal(t, "python", area.Language)
	assert.Equal(t, Intent{Action: ActionUpdateContent, Path: path}, area.Intent)
}

func TestStatusBar(t *testing.T) {
	right := func(n Node) string {
		return FindByID(n, "status-right").(*Label).Text
	}
	left := FindByID(StatusBar(""), "status-left").(*Label)
	assert.Equal(t, DefaultTitle, left.Text)

	assert.Equal(t, "", right(StatusBar("")))
	assert.Equal(t, "PYTHON", right(StatusBar("/ws/app.py")))
	assert.Equal(t, "MARKDOWN", right(StatusBar("/ws/README.md")))
	assert.Equal(t, "UNKNOWN", right(StatusBar("/ws/Makefile")))

	custom := Builder{Title: "ide"}
	assert.Equal(t, "ide", FindByID(custom.StatusBar(""), "status-left").(*Label).Text)
}

func TestLayoutComposesPanes(t *testing.T) {
	tree := workspaceTree()
	selected := tree.Children[1].Path
	node := defaultBuilder.Layout(tree, selected, "# hi")

	assert.NotNil(t, FindByID(node, ExplorerID))
	assert.NotNil(t, FindByID(node, EditorTextAreaID))
	assert.NotNil(t, FindByID(node, StatusBarID))
}

func TestNodeJSON(t *testing.T) {
	tree := workspaceTree()
	data, err := json.Marshal(Explorer(tree, tree.Children[1].Path))
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "container", raw["type"])
	assert.Equal(t, ExplorerID, raw["id"])

	children := raw["children"].([]any)
	assert.Equal(t, "label", children[0].(map[string]any)["type"])

	data, err = json.Marshal(Editor("/ws/a.md", "x"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"type":"textarea"`)
	assert.Contains(t, string(data), `"action":"update_file_content"`)

	data, err = json.Marshal(&Container{})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"children":[]`)
}
