package app

import (
	"strings"
	"testing"
)

func TestNewEditorBuffer(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		text     string
		crlf     bool
		readOnly bool
	}{
		{name: "plain", content: "a\nb\n", text: "a\nb\n"},
		{name: "empty", content: "", text: ""},
		{name: "crlf", content: "a\r\nb\r\n", text: "a\nb\n", crlf: true},
		{name: "mixed endings", content: "a\r\nb\n", readOnly: true},
		{name: "bare carriage return", content: "a\rb\n", readOnly: true},
		{name: "tab", content: "all:\n\tgo build\n", readOnly: true},
		{name: "escape", content: "\x1b[0m\n", readOnly: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := newEditorBuffer(tt.content, false)
			if got := buf.readOnly != ""; got != tt.readOnly {
				t.Fatalf("readOnly = %q, want %v", buf.readOnly, tt.readOnly)
			}
			if tt.readOnly {
				return
			}
			if buf.text != tt.text || buf.crlf != tt.crlf {
				t.Errorf("got text %q crlf %v", buf.text, buf.crlf)
			}
			if got := buf.encode(buf.text); got != tt.content {
				t.Errorf("encode = %q, want %q", got, tt.content)
			}
		})
	}
}

func TestUnreadableBufferIsReadOnly(t *testing.T) {
	buf := newEditorBuffer("Error reading file: boom", true)
	if !strings.Contains(buf.readOnly, "could not be read") {
		t.Errorf("readOnly = %q", buf.readOnly)
	}
}

func TestEditorRefusesBufferItCannotHold(t *testing.T) {
	root := newTestWorkspace(t)
	m := newTestModel(t, root, nil)
	path := writeWorkspaceFile(t, root, "odd.txt", []byte("bad \uFFFD rune\n"))

	m.openPath(path)
	if m.buffer.readOnly == "" {
		t.Fatal("a buffer the textarea rewrites should be read-only")
	}
}
