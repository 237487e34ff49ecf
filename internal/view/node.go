// Package view builds the declarative node trees rendered by the terminal
// and web front ends. Builders are pure: they read only their arguments.
package view

import (
	"encoding/json"
	"os"
	"strings"
)

// Actions carried by interactive nodes.
const (
	ActionSelectFile    = "select_file"
	ActionUpdateContent = "update_file_content"
)

// Role is a semantic colour resolved by each renderer's theme.
type Role string

// Colour roles. The empty role inherits from the parent.
const (
	RoleText      Role = "text"
	RoleBright    Role = "bright"
	RoleMuted     Role = "muted"
	RoleAccent    Role = "accent"
	RoleSelection Role = "selection"
	RolePanel     Role = "panel"
	RoleHeading   Role = "heading"
	RoleStatus    Role = "status"
	RoleStatusFg  Role = "status-fg"
)

// Align positions text inside its box.
type Align string

// Alignments.
const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// Direction lays out container children.
type Direction string

// Directions.
const (
	Column Direction = "column"
	Row    Direction = "row"
)

// Style is the typed presentation record attached to every node.
type Style struct {
	Fg     Role  `json:"fg,omitempty"`
	Bg     Role  `json:"bg,omitempty"`
	Bold   bool  `json:"bold,omitempty"`
	Italic bool  `json:"italic,omitempty"`
	Indent int   `json:"indent,omitempty"`
	Width  int   `json:"width,omitempty"`
	Grow   bool  `json:"grow,omitempty"`
	Align  Align `json:"align,omitempty"`
}

// Intent is the event a node emits when activated.
type Intent struct {
	Action string `json:"action"`
	Path   string `json:"path"`
}

// Node is one element of a view tree.
type Node interface {
	NodeID() string
	isNode()
}

// Container groups children.
type Container struct {
	ID        string    `json:"id,omitempty"`
	Direction Direction `json:"direction"`
	Style     Style     `json:"style"`
	// Path is set on directory entries of the explorer.
	Path     string `json:"path,omitempty"`
	Children []Node `json:"children"`
}

// Label is static text.
type Label struct {
	ID    string `json:"id,omitempty"`
	Text  string `json:"text"`
	Style Style  `json:"style"`
}

// Button is a clickable row with an optional icon.
type Button struct {
	ID         string `json:"id"`
	Icon       string `json:"icon,omitempty"`
	Label      string `json:"label"`
	Selected   bool   `json:"selected,omitempty"`
	Style      Style  `json:"style"`
	IconStyle  Style  `json:"iconStyle"`
	LabelStyle Style  `json:"labelStyle"`
	Intent     Intent `json:"intent"`
}

// TextArea is an editable text buffer.
type TextArea struct {
	ID       string `json:"id"`
	Value    string `json:"value"`
	Language string `json:"language,omitempty"`
	Style    Style  `json:"style"`
	Intent   Intent `json:"intent"`
}

func (c *Container) NodeID() string { return c.ID }
func (l *Label) NodeID() string     { return l.ID }
func (b *Button) NodeID() string    { return b.ID }
func (t *TextArea) NodeID() string  { return t.ID }

func (*Container) isNode() {}
func (*Label) isNode()     {}
func (*Button) isNode()    {}
func (*TextArea) isNode()  {}

// MarshalJSON adds the "container" type tag.
func (c *Container) MarshalJSON() ([]byte, error) {
	type alias Container
	children := c.Children
	if children == nil {
		children = []Node{}
	}
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
		Children []Node `json:"children"`
	}{"container", (*alias)(c), children})
}

// MarshalJSON adds the "label" type tag.
func (l *Label) MarshalJSON() ([]byte, error) {
	type alias Label
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{"label", (*alias)(l)})
}

// MarshalJSON adds the "button" type tag.
func (b *Button) MarshalJSON() ([]byte, error) {
	type alias Button
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{"button", (*alias)(b)})
}

// MarshalJSON adds the "textarea" type tag.
func (t *TextArea) MarshalJSON() ([]byte, error) {
	type alias TextArea
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{"textarea", (*alias)(t)})
}

// Walk visits node and its descendants in pre-order. Returning false skips
// the children of the visited node.
func Walk(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}
	if c, ok := node.(*Container); ok {
		for _, child := range c.Children {
			Walk(child, fn)
		}
	}
}

// Buttons returns every button below node in pre-order.
func Buttons(node Node) []*Button {
	var buttons []*Button
	Walk(node, func(n Node) bool {
		if b, ok := n.(*Button); ok {
			buttons = append(buttons, b)
		}
		return true
	})
	return buttons
}

// FindByID returns the first node with the given id, or nil.
func FindByID(node Node, id string) Node {
	var found Node
	Walk(node, func(n Node) bool {
		if found != nil {
			return false
		}
		if n.NodeID() == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// idEscaper maps "_" to "__" and the separator to "_s", so distinct paths
// keep distinct identifiers.
var idEscaper = strings.NewReplacer("_", "__", string(os.PathSeparator), "_s")

// pathID turns a path into an identifier fragment.
func pathID(path string) string {
	return idEscaper.Replace(path)
}
