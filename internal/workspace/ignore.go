package workspace

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

const (
	gitignoreFile = ".gitignore"
	commentPrefix = "#"
)

// readIgnoreFile parses dir/.gitignore into patterns scoped to domain.
// A missing file yields no patterns.
func readIgnoreFile(dir string, domain []string, logf func(string, ...any)) []gitignore.Pattern {
	path := filepath.Join(dir, gitignoreFile)
	// #nosec G304 -- path is a fixed file name inside a scanned directory
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logf("failed to read %s: %v", path, err)
		}
		return nil
	}

	var patterns []gitignore.Pattern
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}
		patterns = append(patterns, gitignore.ParsePattern(line, domain))
	}
	return patterns
}
