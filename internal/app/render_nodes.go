package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/chmouel/lazycode/internal/theme"
	"github.com/chmouel/lazycode/internal/view"
)

const ellipsis = "…"

// nodeRenderer turns view trees into styled terminal text.
type nodeRenderer struct {
	theme *theme.Theme
}

// Render draws node into a box of the given width.
func (r nodeRenderer) Render(node view.Node, width int) string {
	return r.render(node, width, lipgloss.NewStyle(), true)
}

// style maps a node style onto lipgloss, inheriting unset colours from parent.
func (r nodeRenderer) style(s view.Style, parent lipgloss.Style) lipgloss.Style {
	st := lipgloss.NewStyle()
	if s.Fg != "" {
		st = st.Foreground(r.theme.RoleColor(s.Fg))
	}
	if s.Bg != "" {
		st = st.Background(r.theme.RoleColor(s.Bg))
	}
	if s.Bold {
		st = st.Bold(true)
	}
	if s.Italic {
		st = st.Italic(true)
	}
	return st.Inherit(parent)
}

func position(a view.Align) lipgloss.Position {
	switch a {
	case view.AlignCenter:
		return lipgloss.Center
	case view.AlignRight:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}

func grows(node view.Node) bool {
	switch n := node.(type) {
	case *view.Container:
		return n.Style.Grow
	case *view.Label:
		return n.Style.Grow
	case *view.TextArea:
		return n.Style.Grow
	}
	return false
}

func (r nodeRenderer) render(node view.Node, width int, parent lipgloss.Style, fill bool) string {
	width = max(0, width)
	switch n := node.(type) {
	case *view.Label:
		st := r.style(n.Style, parent)
		return fit(st, n.Style, st.Render(n.Text), width, fill)
	case *view.Button:
		st := r.style(n.Style, parent)
		label := r.style(n.LabelStyle, st).Render(n.Label)
		if n.Icon != "" {
			label = r.style(n.IconStyle, st).Render(n.Icon) + st.Render(" ") + label
		}
		return fit(st, n.Style, label, width, fill || n.Style.Bg != "")
	case *view.TextArea:
		st := r.style(n.Style, parent)
		lines := strings.Split(n.Value, "\n")
		for i, line := range lines {
			lines[i] = fit(st, n.Style, st.Render(line), width, fill)
		}
		return strings.Join(lines, "\n")
	case *view.Container:
		if n.Direction == view.Row {
			return r.renderRow(n, width, parent, fill)
		}
		return r.renderColumn(n, width, parent, fill)
	}
	return ""
}

func (r nodeRenderer) renderColumn(c *view.Container, width int, parent lipgloss.Style, fill bool) string {
	st := r.style(c.Style, parent)
	indent := c.Style.Indent * 2
	inner := max(0, width-indent)
	lines := make([]string, 0, len(c.Children))
	for _, child := range c.Children {
		out := r.render(child, inner, st, fill)
		if indent > 0 {
			out = lipgloss.NewStyle().PaddingLeft(indent).Render(out)
		}
		if c.Style.Align != "" && c.Style.Align != view.AlignLeft {
			out = lipgloss.PlaceHorizontal(width, position(c.Style.Align), out)
		}
		lines = append(lines, out)
	}
	return strings.Join(lines, "\n")
}

// renderRow lays children out left to right. Children with Grow share the
// width left over by the others.
func (r nodeRenderer) renderRow(c *view.Container, width int, parent lipgloss.Style, fill bool) string {
	st := r.style(c.Style, parent)
	indent := c.Style.Indent * 2
	inner := max(0, width-indent)
	gap := st.Render(" ")

	parts := make([]string, len(c.Children))
	used := max(0, len(c.Children)-1)
	growers := 0
	for i, child := range c.Children {
		if grows(child) {
			growers++
			continue
		}
		parts[i] = r.render(child, max(0, inner-used), st, false)
		used += lipgloss.Width(parts[i])
	}
	if growers > 0 {
		share := max(0, inner-used) / growers
		for i, child := range c.Children {
			if grows(child) {
				parts[i] = r.render(child, share, st, true)
			}
		}
	}

	line := ansi.Truncate(strings.Join(parts, gap), inner, ellipsis)
	if fill || c.Style.Bg != "" {
		return st.PaddingLeft(indent).Width(width).Render(line)
	}
	return strings.Repeat(" ", indent) + line
}

// fit indents, truncates and optionally pads rendered text to width.
func fit(st lipgloss.Style, s view.Style, text string, width int, fill bool) string {
	indent := min(s.Indent*2, width)
	text = ansi.Truncate(text, width-indent, ellipsis)
	if indent > 0 {
		text = st.Render(strings.Repeat(" ", indent)) + text
	}
	if !fill {
		return text
	}
	if pad := width - lipgloss.Width(text); pad > 0 {
		switch s.Align {
		case view.AlignRight:
			text = st.Render(strings.Repeat(" ", pad)) + text
		case view.AlignCenter:
			left := pad / 2
			text = st.Render(strings.Repeat(" ", left)) + text + st.Render(strings.Repeat(" ", pad-left))
		default:
			text += st.Render(strings.Repeat(" ", pad))
		}
	}
	return text
}
