package app

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/chmouel/lazycode/internal/app/state"
	"github.com/chmouel/lazycode/internal/filetype"
	"github.com/chmouel/lazycode/internal/models"
	"github.com/chmouel/lazycode/internal/view"
)

// renderStatusBar renders the status bar node across the full width.
func (m *Model) renderStatusBar(layout layoutDims) string {
	r := nodeRenderer{theme: m.theme}
	bar := r.Render(m.builder.StatusBar(m.handlers.State.Selection), max(0, layout.width-2))
	return lipgloss.NewStyle().
		Background(m.theme.RoleColor(view.RoleStatus)).
		Padding(0, 1).
		Width(layout.width).
		Render(bar)
}

// renderFooter renders the last status message, or context-aware hints.
func (m *Model) renderFooter(layout layoutDims) string {
	footerStyle := lipgloss.NewStyle().
		Foreground(m.theme.TextFg).
		Background(m.theme.BorderDim).
		Padding(0, 1).
		Width(layout.width)
	inner := uint(max(0, layout.width-2)) //nolint:gosec

	if m.statusMsg != "" {
		msgStyle := lipgloss.NewStyle().Foreground(m.theme.SuccessFg)
		if m.statusIsError {
			msgStyle = lipgloss.NewStyle().Foreground(m.theme.ErrorFg).Bold(true)
		}
		return footerStyle.Render(truncate.StringWithTail(msgStyle.Render(m.statusMsg), inner, ellipsis))
	}

	var hints []string
	if m.view.FocusedPane == state.PaneEditor {
		hints = []string{
			m.renderKeyHint("Ctrl+S", "Save"),
			m.renderKeyHint("Esc", "Explorer"),
		}
		if m.view.ShowPreview {
			hints = append(hints, m.renderKeyHint("Ctrl+E", "Close Preview"))
		}
		hints = append(hints,
			m.renderKeyHint("Ctrl+P", "Quick Open"),
			m.renderKeyHint("Ctrl+C", "Quit"),
		)
	} else {
		hints = []string{
			m.renderKeyHint("j/k", "Navigate"),
			m.renderKeyHint("Enter", "Open"),
			m.renderKeyHint("Tab", "Editor"),
		}
		if filetype.ClassifyName(m.handlers.State.Selection) == models.KindMarkdown {
			hints = append(hints, m.renderKeyHint("Ctrl+E", "Preview"))
		}
		hints = append(hints,
			m.renderKeyHint("Ctrl+P", "Quick Open"),
			m.renderKeyHint("Ctrl+R", "Rescan"),
			m.renderKeyHint("q", "Quit"),
			m.renderKeyHint("?", "Help"),
		)
	}

	content := strings.Join(hints, "  ")
	if root := m.handlers.State.Root; root != "" {
		content = lipgloss.NewStyle().Foreground(m.theme.MutedFg).Render(filepath.Base(root)) + "  " + content
	}
	return footerStyle.Render(truncate.StringWithTail(content, inner, ellipsis))
}

// renderKeyHint renders a single key hint as a pill.
func (m *Model) renderKeyHint(key, label string) string {
	keyStyle := lipgloss.NewStyle().
		Foreground(m.theme.AccentFg).
		Background(m.theme.Accent).
		Bold(true).
		Padding(0, 1)
	labelStyle := lipgloss.NewStyle().Foreground(m.theme.Accent)
	return fmt.Sprintf("%s %s", keyStyle.Render(key), labelStyle.Render(label))
}
