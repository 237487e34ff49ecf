package services

import (
	"github.com/sahilm/fuzzy"
)

// FinderMatch is one quick-open candidate.
type FinderMatch struct {
	Path    string // Workspace-relative, slash separated
	Index   int    // Position in the candidate list
	Matched []int  // Byte offsets of matched characters in Path
}

// Finder ranks workspace paths against a query.
type Finder struct {
	paths []string
	limit int
}

// NewFinder creates a Finder over the given candidates. A non-positive limit
// returns every match.
func NewFinder(paths []string, limit int) *Finder {
	return &Finder{paths: paths, limit: limit}
}

// Len is the number of candidates.
func (f *Finder) Len() int { return len(f.paths) }

// Find returns matches best first. An empty query lists candidates in order.
func (f *Finder) Find(query string) []FinderMatch {
	var out []FinderMatch
	if query == "" {
		for i, p := range f.paths {
			if f.limit > 0 && len(out) >= f.limit {
				break
			}
			out = append(out, FinderMatch{Path: p, Index: i})
		}
		return out
	}

	for _, m := range fuzzy.Find(query, f.paths) {
		if f.limit > 0 && len(out) >= f.limit {
			break
		}
		out = append(out, FinderMatch{Path: m.Str, Index: m.Index, Matched: m.MatchedIndexes})
	}
	return out
}
