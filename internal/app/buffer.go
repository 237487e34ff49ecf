package app

import (
	"strings"
	"unicode"
)

// editorBuffer is the content buffer as loaded into the textarea. The
// textarea expands tabs, splits on carriage returns and drops control
// characters, so text it cannot hold unchanged is opened read-only.
type editorBuffer struct {
	text     string
	crlf     bool
	readOnly string // reason, empty when the buffer is editable
}

func newEditorBuffer(content string, unreadable bool) editorBuffer {
	if unreadable {
		return editorBuffer{text: content, readOnly: "the file could not be read"}
	}

	buf := editorBuffer{text: content}
	if crlf := strings.Count(content, "\r\n"); crlf > 0 {
		if crlf != strings.Count(content, "\n") {
			buf.readOnly = "mixed line endings"
			return buf
		}
		buf.crlf = true
		buf.text = strings.ReplaceAll(content, "\r\n", "\n")
	}

	for _, r := range buf.text {
		switch {
		case r == '\t':
			buf.readOnly = "tabs would be expanded"
			return buf
		case r != '\n' && unicode.IsControl(r):
			buf.readOnly = "control characters"
			return buf
		}
	}
	return buf
}

// encode converts an editor value back to the line endings of the file.
func (b editorBuffer) encode(value string) string {
	if b.crlf {
		return strings.ReplaceAll(value, "\n", "\r\n")
	}
	return value
}
