package workspace

import (
	"path/filepath"
	"strings"

	"github.com/chmouel/lazycode/internal/models"
)

// RelPaths returns workspace-relative paths of every file in pre-order.
func RelPaths(root *models.FileNode) []string {
	files := root.Files()
	paths := make([]string, 0, len(files))
	for _, file := range files {
		rel, err := filepath.Rel(root.Path, file.Path)
		if err != nil {
			rel = file.Path
		}
		paths = append(paths, filepath.ToSlash(rel))
	}
	return paths
}

// Within reports whether target lies inside base, base included.
func Within(base, target string) bool {
	rel, err := filepath.Rel(filepath.Clean(base), filepath.Clean(target))
	if err != nil {
		return false
	}
	if rel == "." {
		return true
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
