package workspace

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chmouel/lazycode/internal/models"
	"github.com/chmouel/lazycode/internal/store"
)

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
}

func childNames(node *models.FileNode) []string {
	names := make([]string, 0, len(node.Children))
	for _, child := range node.Children {
		names = append(names, child.Name)
	}
	return names
}

func TestScanReadmeAndSource(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"README.md":  "# hello",
		"src/app.py": "print('hi')",
	})

	tree, err := NewScanner(Options{}, nil).Scan(root)
	require.NoError(t, err)

	assert.Equal(t, filepath.Base(root), tree.Name)
	assert.Equal(t, models.KindDirectory, tree.Kind)
	require.Len(t, tree.Children, 2)

	src := tree.Children[0]
	assert.Equal(t, "src", src.Name)
	assert.Equal(t, models.KindDirectory, src.Kind)
	assert.Equal(t, filepath.Join(root, "src"), src.Path)

	readme := tree.Children[1]
	assert.Equal(t, "README.md", readme.Name)
	assert.Equal(t, models.KindMarkdown, readme.Kind)
	assert.Nil(t, readme.Children)

	require.Len(t, src.Children, 1)
	assert.Equal(t, "app.py", src.Children[0].Name)
	assert.Equal(t, models.KindPython, src.Children[0].Kind)
	assert.Equal(t, filepath.Join(root, "src", "app.py"), src.Children[0].Path)
}

func TestScanOrdersDirectoriesFirstCaseInsensitive(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"b.txt":          "",
		"A.md":           "",
		"c.py":           "",
		"Zeta/z.txt":     "",
		"alpha/a.txt":    "",
		"alpha/B/x.js":   "",
		"alpha/a/y.json": "",
	})

	tree, err := NewScanner(Options{}, nil).Scan(root)
	require.NoError(t, err)

	assert.Equal(t, []string{"alpha", "Zeta", "A.md", "b.txt", "c.py"}, childNames(tree))
	assert.Equal(t, []string{"a", "B", "a.txt"}, childNames(tree.Children[0]))

	tree.Walk(func(n *models.FileNode) bool {
		seenFile := false
		for _, child := range n.Children {
			if child.IsDir() {
				assert.False(t, seenFile, "directory %s listed after a file", child.Path)
			} else {
				seenFile = true
			}
		}
		return true
	})
}

func TestScanEmptyDirectory(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "empty"), 0o755))

	tree, err := NewScanner(Options{}, nil).Scan(root)
	require.NoError(t, err)

	require.Len(t, tree.Children, 1)
	empty := tree.Children[0]
	assert.True(t, empty.IsDir())
	assert.NotNil(t, empty.Children)
	assert.Empty(t, empty.Children)
}

func TestScanRootErrors(t *testing.T) {
	root := t.TempDir()

	_, err := NewScanner(Options{}, nil).Scan(filepath.Join(root, "nope"))
	assert.True(t, errors.Is(err, store.ErrNotFound), "got %v", err)

	file := filepath.Join(root, "file.txt")
	require.NoError(t, os.WriteFile(file, nil, 0o600))
	_, err = NewScanner(Options{}, nil).Scan(file)
	assert.True(t, errors.Is(err, ErrNotDirectory), "got %v", err)
}

func TestScanBreaksSymlinkCycles(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"a/file.txt": ""})
	if err := os.Symlink(root, filepath.Join(root, "a", "loop")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	var logged []string
	scanner := NewScanner(Options{}, func(format string, args ...any) {
		logged = append(logged, format)
	})
	tree, err := scanner.Scan(root)
	require.NoError(t, err)

	a := tree.Children[0]
	require.Equal(t, []string{"loop", "file.txt"}, childNames(a))
	loop := a.Children[0]
	assert.True(t, loop.IsDir())
	assert.Empty(t, loop.Children)
	assert.Equal(t, 1, scanner.LastStats().Skipped)
	assert.NotEmpty(t, logged)
}

func TestScanListsBrokenSymlinkAsFile(t *testing.T) {
	root := t.TempDir()
	if err := os.Symlink(filepath.Join(root, "gone"), filepath.Join(root, "dangling.md")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	tree, err := NewScanner(Options{}, nil).Scan(root)
	require.NoError(t, err)
	require.Len(t, tree.Children, 1)
	assert.Equal(t, models.KindMarkdown, tree.Children[0].Kind)
}

func TestScanDepthLimit(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"a/b/c/deep.txt": "", "a/top.txt": ""})

	scanner := NewScanner(Options{MaxDepth: 2}, nil)
	tree, err := scanner.Scan(root)
	require.NoError(t, err)

	a := tree.Children[0]
	assert.Equal(t, []string{"b", "top.txt"}, childNames(a))
	b := a.Children[0]
	assert.True(t, b.IsDir())
	assert.Empty(t, b.Children)
	assert.Equal(t, 1, scanner.LastStats().Skipped)
}

func TestScanKeepsUnreadableDirectory(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"locked/secret.txt": "", "open.txt": ""})
	locked := filepath.Join(root, "locked")
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) }) //nolint:gosec

	scanner := NewScanner(Options{}, nil)
	tree, err := scanner.Scan(root)
	require.NoError(t, err)

	assert.Equal(t, []string{"locked", "open.txt"}, childNames(tree))
	assert.Empty(t, tree.Children[0].Children)
	assert.Equal(t, 1, scanner.LastStats().Errors)
}

func TestScanRespectsGitignore(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		".gitignore":      "# build output\n*.log\nbuild/\n",
		"app.log":         "",
		"main.py":         "",
		"build/out.txt":   "",
		"src/.gitignore":  "secret.txt\n",
		"src/secret.txt":  "",
		"src/ok.txt":      "",
		"src/nested.log":  "",
		"docs/secret.txt": "",
	})

	t.Run("enabled", func(t *testing.T) {
		scanner := NewScanner(Options{RespectGitignore: true}, nil)
		tree, err := scanner.Scan(root)
		require.NoError(t, err)

		assert.Equal(t, []string{"docs", "src", ".gitignore", "main.py"}, childNames(tree))
		assert.Equal(t, []string{"secret.txt"}, childNames(tree.Children[0]), "nested rules stay scoped")
		assert.Equal(t, []string{".gitignore", "ok.txt"}, childNames(tree.Children[1]))
		assert.Equal(t, 4, scanner.LastStats().Skipped)
	})

	t.Run("disabled", func(t *testing.T) {
		tree, err := NewScanner(Options{}, nil).Scan(root)
		require.NoError(t, err)
		assert.Equal(t, []string{"build", "docs", "src", ".gitignore", "app.log", "main.py"}, childNames(tree))
	})
}

func TestScanSkipHidden(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{".env": "", ".git/HEAD": "", "main.js": ""})

	tree, err := NewScanner(Options{SkipHidden: true}, nil).Scan(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"main.js"}, childNames(tree))
}

func TestScanStats(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"a/x.txt": "", "b/y.txt": "", "z.md": ""})

	scanner := NewScanner(Options{}, nil)
	_, err := scanner.Scan(root)
	require.NoError(t, err)
	assert.Equal(t, Stats{Directories: 2, Files: 3}, scanner.LastStats())
}
