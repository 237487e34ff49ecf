package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/chmouel/lazycode/internal/app/services"
	"github.com/chmouel/lazycode/internal/app/state"
	"github.com/chmouel/lazycode/internal/view"
)

// renderBody renders the explorer and editor panes side by side.
func (m *Model) renderBody(layout layoutDims) string {
	left := m.renderExplorerPane(layout)
	right := m.renderEditorPane(layout)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (m *Model) renderExplorerPane(layout layoutDims) string {
	focused := m.view.FocusedPane == state.PaneExplorer
	width := layout.leftInnerWidth
	title := m.renderPaneTitle(1, "EXPLORER", focused, width)

	rows := m.ui.explorer.Rows
	height := m.explorerHeight()
	lines := make([]string, 0, height+1)
	lines = append(lines, title)
	if len(rows) == 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(m.theme.MutedFg).Render("Workspace is empty"))
	}
	end := min(len(rows), m.ui.explorerOffset+height)
	for i := m.ui.explorerOffset; i < end; i++ {
		lines = append(lines, m.renderExplorerRow(rows[i], i == m.ui.explorer.Index && focused, width))
	}

	return m.paneStyle(focused).
		Width(layout.leftWidth - 2).
		Height(layout.innerHeight).
		Render(strings.Join(lines, "\n"))
}

// renderExplorerRow draws one tree line. Files go through the node
// renderer so they carry the styles chosen by the view builder.
func (m *Model) renderExplorerRow(row services.ExplorerRow, cursor bool, width int) string {
	indent := strings.Repeat("  ", row.Depth)
	if cursor {
		marker := "  "
		if row.IsDir() {
			marker = m.collapseMarker(row.Path)
		}
		text := ansi.Truncate(indent+marker+row.Icon+" "+row.Label, width, ellipsis)
		return lipgloss.NewStyle().
			Foreground(m.theme.AccentFg).
			Background(m.theme.AccentDim).
			Bold(true).
			Width(width).
			Render(text)
	}

	if row.IsDir() {
		text := ansi.Truncate(indent+m.collapseMarker(row.Path)+row.Icon+" "+row.Label, width, ellipsis)
		return lipgloss.NewStyle().Foreground(m.theme.TextFg).Render(text)
	}

	r := nodeRenderer{theme: m.theme}
	button := *row.Button
	button.Style.Indent = 0
	item := r.render(&button, max(0, width-len(indent)-2), lipgloss.NewStyle(), false)
	return indent + "  " + item
}

func (m *Model) collapseMarker(path string) string {
	if m.ui.explorer.CollapsedDirs[path] {
		return "▸ "
	}
	return "▾ "
}

func (m *Model) renderEditorPane(layout layoutDims) string {
	focused := m.view.FocusedPane == state.PaneEditor
	width := layout.rightInnerWidth
	style := m.paneStyle(focused).Width(layout.rightWidth - 2).Height(layout.innerHeight)

	st := m.handlers.State
	r := nodeRenderer{theme: m.theme}
	if !st.HasSelection() {
		placeholder := r.Render(m.builder.Editor("", ""), width)
		return style.Render(lipgloss.Place(width, layout.innerHeight, lipgloss.Center, lipgloss.Center, placeholder))
	}

	header := m.renderEditorHeader(width)
	var body string
	if m.view.ShowPreview {
		body = m.ui.preview.View()
	} else {
		body = m.ui.editor.View()
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, header, body))
}

// renderEditorHeader renders the file header node with the dirty marker and
// cursor position on the right.
func (m *Model) renderEditorHeader(width int) string {
	st := m.handlers.State
	node := m.builder.Editor(st.Selection, "")
	header := view.FindByID(node, "editor-header")

	mutedStyle := lipgloss.NewStyle().Foreground(m.theme.MutedFg)
	info := mutedStyle.Render(fmt.Sprintf("Ln %d, Col %d", m.ui.editor.Line()+1, m.cursorColumn()))
	if m.view.ShowPreview {
		info = lipgloss.NewStyle().Foreground(m.theme.Accent).Italic(true).Render("Preview")
	}
	if m.dirty() {
		info = lipgloss.NewStyle().Foreground(m.theme.WarnFg).Render("●") + " " + info
	}
	if m.buffer.readOnly != "" {
		info = lipgloss.NewStyle().Foreground(m.theme.WarnFg).Render("Read-only") + "  " + info
	}

	r := nodeRenderer{theme: m.theme}
	left := ""
	if header != nil {
		left = r.render(header, max(0, width-lipgloss.Width(info)-1), lipgloss.NewStyle(), false)
	}
	gap := max(1, width-lipgloss.Width(left)-lipgloss.Width(info))
	return ansi.Truncate(left+strings.Repeat(" ", gap)+info, width, "")
}

func (m *Model) cursorColumn() int {
	li := m.ui.editor.LineInfo()
	return li.StartColumn + li.ColumnOffset + 1
}

// renderPaneTitle renders a pane title with focus indicators.
func (m *Model) renderPaneTitle(index int, title string, focused bool, width int) string {
	numStyle := lipgloss.NewStyle().Foreground(m.theme.MutedFg)
	titleStyle := lipgloss.NewStyle().Foreground(m.theme.RoleColor(view.RoleHeading)).Bold(true)
	if focused {
		numStyle = numStyle.Foreground(m.theme.Accent).Bold(true)
		titleStyle = titleStyle.Foreground(m.theme.TextFg)
	}
	num := numStyle.Render(fmt.Sprintf("[%d]", index))
	if m.config.ShowIcons {
		num = numStyle.Render(fmt.Sprintf("(%d)", index))
	}
	return lipgloss.NewStyle().Width(width).Render(ansi.Truncate(num+" "+titleStyle.Render(title), width, ""))
}

// paneStyle returns a pane style with focus indication.
func (m *Model) paneStyle(focused bool) lipgloss.Style {
	borderColor := m.theme.BorderDim
	borderStyle := lipgloss.NormalBorder()
	if focused {
		borderColor = m.theme.Accent
		borderStyle = lipgloss.RoundedBorder()
	}
	return lipgloss.NewStyle().
		Border(borderStyle).
		BorderForeground(borderColor).
		Padding(0, 1)
}
