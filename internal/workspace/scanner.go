// Package workspace builds the ordered file tree shown by the explorer.
package workspace

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"

	"github.com/chmouel/lazycode/internal/filetype"
	"github.com/chmouel/lazycode/internal/models"
	"github.com/chmouel/lazycode/internal/store"
)

// DefaultMaxDepth bounds recursion when no depth is configured.
const DefaultMaxDepth = 32

// ErrNotDirectory is returned when the workspace root is not a directory.
var ErrNotDirectory = errors.New("workspace root is not a directory")

// Options tune a scan. The zero value lists everything up to DefaultMaxDepth.
type Options struct {
	MaxDepth         int
	RespectGitignore bool
	SkipHidden       bool
}

// Stats summarises the last scan.
type Stats struct {
	Directories int
	Files       int
	Skipped     int
	Errors      int
}

// Scanner walks a workspace directory into a models.FileNode tree.
type Scanner struct {
	opts  Options
	logf  func(string, ...any)
	stats Stats
}

// NewScanner creates a scanner. logf may be nil.
func NewScanner(opts Options, logf func(string, ...any)) *Scanner {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	return &Scanner{opts: opts, logf: logf}
}

// LastStats returns the counters of the most recent Scan.
func (s *Scanner) LastStats() Stats {
	return s.stats
}

// Scan lists root recursively. Directories come before files at every
// level and each group is ordered by case-insensitive name. Unreadable
// subdirectories are logged and kept with whatever entries were read.
func (s *Scanner) Scan(root string) (*models.FileNode, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, &store.IOError{Op: "resolve", Path: root, Cause: err}
	}
	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("workspace %s: %w", abs, store.ErrNotFound)
		}
		return nil, &store.IOError{Op: "stat", Path: abs, Cause: err}
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("workspace %s: %w", abs, ErrNotDirectory)
	}

	w := &walker{
		opts:    s.opts,
		logf:    s.debugf,
		ancestr: make(map[string]bool),
	}
	node := &models.FileNode{
		Name:     filepath.Base(abs),
		Path:     abs,
		Kind:     models.KindDirectory,
		Children: []*models.FileNode{},
	}
	w.fill(node, nil, nil, 0)

	s.stats = w.stats
	s.debugf("scanned %s: %d directories, %d files, %d skipped, %d errors",
		abs, w.stats.Directories, w.stats.Files, w.stats.Skipped, w.stats.Errors)
	return node, nil
}

func (s *Scanner) debugf(format string, args ...any) {
	if s.logf != nil {
		s.logf(format, args...)
	}
}

type walker struct {
	opts    Options
	logf    func(string, ...any)
	stats   Stats
	ancestr map[string]bool
}

// fill populates node.Children. rel holds the path segments below the root
// and patterns the ignore rules inherited from parent directories.
func (w *walker) fill(node *models.FileNode, rel []string, patterns []gitignore.Pattern, depth int) {
	real, err := filepath.EvalSymlinks(node.Path)
	if err != nil {
		w.stats.Errors++
		w.logf("Error scanning workspace: %v", err)
		return
	}
	if w.ancestr[real] {
		w.stats.Skipped++
		w.logf("skipping %s: symlink cycle back to %s", node.Path, real)
		return
	}
	if depth >= w.opts.MaxDepth {
		w.stats.Skipped++
		w.logf("skipping %s: depth limit %d reached", node.Path, w.opts.MaxDepth)
		return
	}
	w.ancestr[real] = true
	defer delete(w.ancestr, real)

	// ReadDir returns the entries it managed to read alongside the error.
	entries, err := os.ReadDir(node.Path)
	if err != nil {
		w.stats.Errors++
		w.logf("Error scanning workspace: %v", err)
	}

	var matcher gitignore.Matcher
	if w.opts.RespectGitignore {
		patterns = append(slices.Clip(patterns), readIgnoreFile(node.Path, rel, w.logf)...)
		if len(patterns) > 0 {
			matcher = gitignore.NewMatcher(patterns)
		}
	}

	dirs := make([]*models.FileNode, 0)
	files := make([]*models.FileNode, 0)
	for _, entry := range entries {
		name := entry.Name()
		if w.opts.SkipHidden && strings.HasPrefix(name, ".") {
			w.stats.Skipped++
			continue
		}

		childPath := filepath.Join(node.Path, name)
		isDir := entry.IsDir()
		if entry.Type()&fs.ModeSymlink != 0 {
			// broken links stay files
			if info, err := os.Stat(childPath); err == nil {
				isDir = info.IsDir()
			}
		}

		if matcher != nil && matcher.Match(appendSegment(rel, name), isDir) {
			w.stats.Skipped++
			continue
		}

		if isDir {
			dirs = append(dirs, &models.FileNode{
				Name:     name,
				Path:     childPath,
				Kind:     models.KindDirectory,
				Children: []*models.FileNode{},
			})
			continue
		}
		files = append(files, &models.FileNode{
			Name: name,
			Path: childPath,
			Kind: filetype.ClassifyName(name),
		})
	}

	sortByName(dirs)
	sortByName(files)

	for _, dir := range dirs {
		w.stats.Directories++
		w.fill(dir, appendSegment(rel, dir.Name), patterns, depth+1)
	}
	w.stats.Files += len(files)

	node.Children = append(dirs, files...)
}

// sortByName orders nodes case-insensitively, falling back to byte order so
// names differing only in case keep a stable order.
func sortByName(nodes []*models.FileNode) {
	sort.Slice(nodes, func(i, j int) bool {
		a, b := strings.ToLower(nodes[i].Name), strings.ToLower(nodes[j].Name)
		if a != b {
			return a < b
		}
		return nodes[i].Name < nodes[j].Name
	})
}

func appendSegment(rel []string, name string) []string {
	out := make([]string, len(rel), len(rel)+1)
	copy(out, rel)
	return append(out, name)
}
