package screen

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/chmouel/lazycode/internal/theme"
)

const (
	dialogWidth  = 60
	dialogHeight = 11
)

// ConfirmScreen displays a modal confirmation prompt with two buttons.
type ConfirmScreen struct {
	Message        string
	ConfirmLabel   string
	CancelLabel    string
	SelectedButton int // 0 = Confirm, 1 = Cancel
	Thm            *theme.Theme

	OnConfirm func() tea.Cmd
	OnCancel  func() tea.Cmd
}

// NewConfirmScreen creates a confirm screen preloaded with a message.
func NewConfirmScreen(message string, thm *theme.Theme) *ConfirmScreen {
	return &ConfirmScreen{
		Message:      message,
		ConfirmLabel: "Confirm",
		CancelLabel:  "Cancel",
		Thm:          thm,
	}
}

// NewDiscardScreen asks before unsaved editor changes are thrown away.
// Cancel is focused so a stray Enter keeps the buffer.
func NewDiscardScreen(file string, thm *theme.Theme) *ConfirmScreen {
	s := NewConfirmScreen(fmt.Sprintf("%s has unsaved changes. Discard them?", file), thm)
	s.ConfirmLabel = "Discard"
	s.CancelLabel = "Keep editing"
	s.SelectedButton = 1
	return s
}

// Type returns the screen type.
func (s *ConfirmScreen) Type() Type {
	return TypeConfirm
}

func (s *ConfirmScreen) confirm() (Screen, tea.Cmd) {
	if s.OnConfirm != nil {
		return nil, s.OnConfirm()
	}
	return nil, nil
}

func (s *ConfirmScreen) cancel() (Screen, tea.Cmd) {
	if s.OnCancel != nil {
		return nil, s.OnCancel()
	}
	return nil, nil
}

// Update processes keyboard events for the confirmation dialog.
// Returns nil to signal that the screen should be closed.
func (s *ConfirmScreen) Update(msg tea.KeyMsg) (Screen, tea.Cmd) {
	switch msg.String() {
	case keyTab, "right", "l":
		s.SelectedButton = (s.SelectedButton + 1) % 2
	case keyShiftTab, "left", "h":
		s.SelectedButton = (s.SelectedButton + 1) % 2
	case "y", "Y":
		return s.confirm()
	case "n", "N":
		return s.cancel()
	case keyEnter:
		if s.SelectedButton == 0 {
			return s.confirm()
		}
		return s.cancel()
	case keyEsc, keyEscRaw, keyQ, keyCtrlC:
		return s.cancel()
	}
	return s, nil
}

// View renders the confirmation UI box with focused button highlighting.
func (s *ConfirmScreen) View() string {
	buttonWidth := (dialogWidth - 6) / 2

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.Thm.Accent).
		Padding(1, 2).
		Width(dialogWidth).
		Height(dialogHeight)

	messageStyle := lipgloss.NewStyle().
		Width(dialogWidth-4).
		Height(dialogHeight-6).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(s.Thm.TextFg)

	button := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Padding(0, 2)
	focusedConfirm := button.Foreground(s.Thm.AccentFg).Background(s.Thm.ErrorFg).Bold(true)
	focusedCancel := button.Foreground(s.Thm.AccentFg).Background(s.Thm.Accent).Bold(true)
	unfocused := button.Foreground(s.Thm.MutedFg).Background(s.Thm.BorderDim)

	confirmLabel := "[" + s.ConfirmLabel + "]"
	cancelLabel := "[" + s.CancelLabel + "]"
	var confirmButton, cancelButton string
	if s.SelectedButton == 0 {
		confirmButton = focusedConfirm.Render(confirmLabel)
		cancelButton = unfocused.Render(cancelLabel)
	} else {
		confirmButton = unfocused.Render(confirmLabel)
		cancelButton = focusedCancel.Render(cancelLabel)
	}

	content := fmt.Sprintf("%s\n\n%s  %s",
		messageStyle.Render(wordwrap.String(s.Message, dialogWidth-6)),
		confirmButton,
		cancelButton,
	)

	return boxStyle.Render(content)
}
