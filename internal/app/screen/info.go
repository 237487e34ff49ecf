package screen

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/chmouel/lazycode/internal/theme"
)

// InfoScreen displays a modal message with an OK button.
type InfoScreen struct {
	Title   string
	Message string
	IsError bool
	Thm     *theme.Theme

	OnClose func() tea.Cmd
}

// NewInfoScreen creates an informational modal with an OK button.
func NewInfoScreen(message string, thm *theme.Theme) *InfoScreen {
	return &InfoScreen{
		Message: message,
		Thm:     thm,
	}
}

// NewErrorScreen is an InfoScreen titled and coloured for failures.
func NewErrorScreen(title, message string, thm *theme.Theme) *InfoScreen {
	return &InfoScreen{
		Title:   title,
		Message: message,
		IsError: true,
		Thm:     thm,
	}
}

// Type returns the screen type.
func (s *InfoScreen) Type() Type {
	return TypeInfo
}

// Update processes keyboard events for the info dialog.
// Returns nil to signal that the screen should be closed.
func (s *InfoScreen) Update(msg tea.KeyMsg) (Screen, tea.Cmd) {
	switch msg.String() {
	case keyEnter, keyEsc, keyEscRaw, keyQ, keyCtrlC:
		if s.OnClose != nil {
			return nil, s.OnClose()
		}
		return nil, nil
	}
	return s, nil
}

// View renders the informational UI box with a single OK button.
func (s *InfoScreen) View() string {
	accent := s.Thm.Accent
	if s.IsError {
		accent = s.Thm.ErrorFg
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(1, 2).
		Width(dialogWidth).
		Height(dialogHeight)

	messageStyle := lipgloss.NewStyle().
		Width(dialogWidth-4).
		Height(dialogHeight-6).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(s.Thm.TextFg)

	okStyle := lipgloss.NewStyle().
		Width(dialogWidth-6).
		Align(lipgloss.Center).
		Padding(0, 2).
		Foreground(s.Thm.AccentFg).
		Background(accent).
		Bold(true)

	message := wordwrap.String(s.Message, dialogWidth-6)
	if s.Title != "" {
		title := lipgloss.NewStyle().Foreground(accent).Bold(true).Render(s.Title)
		message = title + "\n\n" + message
	}

	content := fmt.Sprintf("%s\n\n%s",
		messageStyle.Render(message),
		okStyle.Render("[OK]"),
	)

	return boxStyle.Render(content)
}
