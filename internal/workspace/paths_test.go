package workspace

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelPaths(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"README.md": "", "src/app.py": "", "src/lib/util.js": ""})

	tree, err := NewScanner(Options{}, nil).Scan(root)
	require.NoError(t, err)

	assert.Equal(t, []string{"src/lib/util.js", "src/app.py", "README.md"}, RelPaths(tree))
}

func TestWithin(t *testing.T) {
	base := filepath.FromSlash("/ws/project")
	tests := []struct {
		target string
		want   bool
	}{
		{"/ws/project", true},
		{"/ws/project/src/app.py", true},
		{"/ws/project/../project/x", true},
		{"/ws/projectile", false},
		{"/ws", false},
		{"/etc/passwd", false},
		{"/ws/project/../other", false},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			assert.Equal(t, tt.want, Within(base, filepath.FromSlash(tt.target)))
		})
	}
}
