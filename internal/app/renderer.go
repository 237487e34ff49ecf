package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/chmouel/lazycode/internal/app/screen"
)

// View renders the panes, the footer and the active modal screen.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	layout := m.computeLayout()

	body := truncateToHeight(m.renderBody(layout), layout.bodyHeight)
	baseView := lipgloss.JoinVertical(lipgloss.Left,
		body,
		m.renderStatusBar(layout),
		m.renderFooter(layout),
	)

	if !m.ui.screenManager.IsActive() {
		return baseView
	}
	scr := m.ui.screenManager.Current()
	switch scr.Type() {
	case screen.TypeHelp, screen.TypeQuickOpen:
		return m.overlayPopup(baseView, scr.View(), 2)
	default:
		return m.overlayPopup(baseView, scr.View(), 3)
	}
}

// overlayPopup overlays a popup on top of the base view, preserving
// the portions of the base that fall outside the popup bounds so that
// underlying box borders remain visible.
func (m *Model) overlayPopup(base, popup string, marginTop int) string {
	if base == "" || popup == "" {
		return base
	}

	baseLines := strings.Split(base, "\n")
	popupLines := strings.Split(popup, "\n")

	baseWidth := lipgloss.Width(baseLines[0])
	popupWidth := lipgloss.Width(popupLines[0])
	leftPad := max((baseWidth-popupWidth)/2, 0)

	for i, line := range popupLines {
		row := marginTop + i
		if row >= len(baseLines) {
			break
		}

		leftPart := ansi.Truncate(baseLines[row], leftPad, "")
		if w := lipgloss.Width(leftPart); w < leftPad {
			leftPart += strings.Repeat(" ", leftPad-w)
		}
		rightPart := ansi.TruncateLeft(baseLines[row], leftPad+popupWidth, "")

		newLine := leftPart + line + rightPart
		if w := lipgloss.Width(newLine); w < baseWidth {
			newLine += strings.Repeat(" ", baseWidth-w)
		}
		baseLines[row] = newLine
	}

	return strings.Join(baseLines, "\n")
}

// truncateToHeight ensures output doesn't exceed maxLines.
func truncateToHeight(s string, maxLines int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return strings.Join(lines, "\n")
}
