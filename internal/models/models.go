// Package models defines the data objects shared across lazycode packages.
package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FileKind classifies a workspace entry.
type FileKind int

// File kinds, in the order the classifier table lists them.
const (
	KindUnknown FileKind = iota
	KindDirectory
	KindPython
	KindJavaScript
	KindHTML
	KindCSS
	KindJSON
	KindMarkdown
	KindText
	KindImage
)

var kindNames = map[FileKind]string{
	KindUnknown:    "unknown",
	KindDirectory:  "directory",
	KindPython:     "python",
	KindJavaScript: "javascript",
	KindHTML:       "html",
	KindCSS:        "css",
	KindJSON:       "json",
	KindMarkdown:   "markdown",
	KindText:       "text",
	KindImage:      "image",
}

// AllKinds returns every kind, directory first and unknown last.
func AllKinds() []FileKind {
	return []FileKind{
		KindDirectory,
		KindPython,
		KindJavaScript,
		KindHTML,
		KindCSS,
		KindJSON,
		KindMarkdown,
		KindText,
		KindImage,
		KindUnknown,
	}
}

// String returns the lowercase kind name.
func (k FileKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[KindUnknown]
}

// Upper returns the kind name as shown in the status bar.
func (k FileKind) Upper() string {
	return strings.ToUpper(k.String())
}

// ParseFileKind resolves a kind from its name.
func ParseFileKind(name string) (FileKind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for kind, n := range kindNames {
		if n == name {
			return kind, nil
		}
	}
	return KindUnknown, fmt.Errorf("unknown file kind %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (k FileKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *FileKind) UnmarshalText(text []byte) error {
	kind, err := ParseFileKind(string(text))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// FileNode is one entry of the workspace tree.
// Children is non-nil exactly when Kind is KindDirectory.
type FileNode struct {
	Name     string
	Path     string
	Kind     FileKind
	Children []*FileNode
}

// IsDir reports whether the node is a directory.
func (n *FileNode) IsDir() bool {
	return n != nil && n.Kind == KindDirectory
}

type fileJSON struct {
	Name string   `json:"name"`
	Path string   `json:"path"`
	Kind FileKind `json:"type"`
}

type dirJSON struct {
	Name     string      `json:"name"`
	Path     string      `json:"path"`
	Kind     FileKind    `json:"type"`
	Children []*FileNode `json:"children"`
}

// MarshalJSON emits the node with a "children" list for directories only.
func (n *FileNode) MarshalJSON() ([]byte, error) {
	if !n.IsDir() {
		return json.Marshal(fileJSON{Name: n.Name, Path: n.Path, Kind: n.Kind})
	}
	children := n.Children
	if children == nil {
		children = []*FileNode{}
	}
	return json.Marshal(dirJSON{Name: n.Name, Path: n.Path, Kind: n.Kind, Children: children})
}

// UnmarshalJSON reads the form written by MarshalJSON.
func (n *FileNode) UnmarshalJSON(data []byte) error {
	var raw dirJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*n = FileNode{Name: raw.Name, Path: raw.Path, Kind: raw.Kind, Children: raw.Children}
	if n.IsDir() && n.Children == nil {
		n.Children = []*FileNode{}
	}
	return nil
}

// Walk visits the node and its descendants in pre-order.
// Returning false from fn skips the children of that node.
func (n *FileNode) Walk(fn func(*FileNode) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, child := range n.Children {
		child.Walk(fn)
	}
}

// Files returns every file node below n in pre-order.
func (n *FileNode) Files() []*FileNode {
	var files []*FileNode
	n.Walk(func(node *FileNode) bool {
		if !node.IsDir() {
			files = append(files, node)
		}
		return true
	})
	return files
}

// Find returns the node with the given path, or nil.
func (n *FileNode) Find(path string) *FileNode {
	var found *FileNode
	n.Walk(func(node *FileNode) bool {
		if found != nil {
			return false
		}
		if node.Path == path {
			found = node
			return false
		}
		return true
	})
	return found
}

// Count returns the number of directories and files below n, n included.
func (n *FileNode) Count() (dirs, files int) {
	n.Walk(func(node *FileNode) bool {
		if node.IsDir() {
			dirs++
		} else {
			files++
		}
		return true
	})
	return dirs, files
}
