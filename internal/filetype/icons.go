package filetype

import (
	"io/fs"
	"time"

	devicons "github.com/epilande/go-devicons"

	"github.com/chmouel/lazycode/internal/models"
)

// IconStyle selects the icon table used by renderers.
type IconStyle string

// Icon styles.
const (
	IconStyleEmoji IconStyle = "emoji"
	IconStyleNerd  IconStyle = "nerd"
	IconStyleNone  IconStyle = "none"
)

// ParseIconStyle normalises a configured icon style, defaulting to emoji.
func ParseIconStyle(value string) IconStyle {
	switch IconStyle(value) {
	case IconStyleNerd, IconStyleNone:
		return IconStyle(value)
	default:
		return IconStyleEmoji
	}
}

var emojiIcons = map[models.FileKind]string{
	models.KindDirectory:  "📁",
	models.KindPython:     "🐍",
	models.KindJavaScript: "📜",
	models.KindHTML:       "🌐",
	models.KindCSS:        "🎨",
	models.KindJSON:       "📋",
	models.KindMarkdown:   "📝",
	models.KindText:       "📄",
	models.KindImage:      "🖼️",
	models.KindUnknown:    "📎",
}

// Icon returns the emoji glyph for kind.
func Icon(kind models.FileKind) string {
	if icon, ok := emojiIcons[kind]; ok {
		return icon
	}
	return emojiIcons[models.KindUnknown]
}

// representative names feed the devicons lookup so the glyph depends on the
// kind alone, not on the concrete file name.
var representativeNames = map[models.FileKind]string{
	models.KindDirectory:  "folder",
	models.KindPython:     "main.py",
	models.KindJavaScript: "main.js",
	models.KindHTML:       "index.html",
	models.KindCSS:        "style.css",
	models.KindJSON:       "data.json",
	models.KindMarkdown:   "notes.md",
	models.KindText:       "notes.txt",
	models.KindImage:      "image.png",
	models.KindUnknown:    "file",
}

type iconFileInfo struct {
	name  string
	isDir bool
}

func (i iconFileInfo) Name() string { return i.name }

func (i iconFileInfo) Size() int64 { return 0 }

func (i iconFileInfo) Mode() fs.FileMode {
	if i.isDir {
		return fs.ModeDir | 0o755
	}
	return 0
}

func (i iconFileInfo) ModTime() time.Time { return time.Time{} }

func (i iconFileInfo) IsDir() bool { return i.isDir }

func (i iconFileInfo) Sys() any { return nil }

// NerdIcon returns the Nerd Font glyph for kind.
func NerdIcon(kind models.FileKind) string {
	name, ok := representativeNames[kind]
	if !ok {
		name = representativeNames[models.KindUnknown]
	}
	style := devicons.IconForInfo(iconFileInfo{name: name, isDir: kind == models.KindDirectory})
	return style.Icon
}

// IconFor returns the glyph for kind in the requested style.
func IconFor(style IconStyle, kind models.FileKind) string {
	switch style {
	case IconStyleNone:
		return ""
	case IconStyleNerd:
		return NerdIcon(kind)
	default:
		return Icon(kind)
	}
}
