// Package filetype maps workspace entries to file kinds and display icons.
package filetype

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/chmouel/lazycode/internal/models"
)

var extensionKinds = map[string]models.FileKind{
	".py":   models.KindPython,
	".js":   models.KindJavaScript,
	".html": models.KindHTML,
	".css":  models.KindCSS,
	".json": models.KindJSON,
	".md":   models.KindMarkdown,
	".txt":  models.KindText,
	".jpg":  models.KindImage,
	".jpeg": models.KindImage,
	".png":  models.KindImage,
	".gif":  models.KindImage,
	".svg":  models.KindImage,
}

// ClassifyName returns the kind implied by the extension of name.
// It never touches the filesystem, so directories cannot be detected here.
func ClassifyName(name string) models.FileKind {
	ext := strings.ToLower(filepath.Ext(name))
	if kind, ok := extensionKinds[ext]; ok {
		return kind
	}
	return models.KindUnknown
}

// Classify returns KindDirectory for existing directories and falls back to
// ClassifyName for everything else, including paths that cannot be stat'ed.
func Classify(path string) models.FileKind {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return models.KindDirectory
	}
	return ClassifyName(path)
}

var editorModes = map[string]string{
	".py":   "python",
	".js":   "javascript",
	".html": "htmlmixed",
	".css":  "css",
	".json": "javascript",
	".md":   "markdown",
}

// EditorMode returns the language hint attached to the editor for name.
func EditorMode(name string) string {
	if mode, ok := editorModes[strings.ToLower(filepath.Ext(name))]; ok {
		return mode
	}
	return "text"
}
