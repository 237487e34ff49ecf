package screen

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/chmouel/lazycode/internal/app/services"
	"github.com/chmouel/lazycode/internal/theme"
)

const quickOpenLimit = 200

// QuickOpenScreen is the fuzzy file picker.
type QuickOpenScreen struct {
	Input        textinput.Model
	Finder       *services.Finder
	Matches      []services.FinderMatch
	Cursor       int
	ScrollOffset int
	Width        int
	Height       int
	Thm          *theme.Theme

	// OnSelect receives the workspace-relative path of the chosen file.
	OnSelect func(relPath string) tea.Cmd
	OnCancel func() tea.Cmd
}

// NewQuickOpenScreen builds the picker over workspace-relative paths.
func NewQuickOpenScreen(paths []string, maxWidth, maxHeight int, thm *theme.Theme) *QuickOpenScreen {
	ti := textinput.New()
	ti.Placeholder = "Type to search files..."
	ti.CharLimit = 200
	ti.Prompt = "> "
	ti.Focus()

	s := &QuickOpenScreen{
		Input:  ti,
		Finder: services.NewFinder(paths, quickOpenLimit),
		Thm:    thm,
	}
	s.SetSize(maxWidth, maxHeight)
	s.refresh()
	return s
}

// Type returns the screen type identifier.
func (s *QuickOpenScreen) Type() Type {
	return TypeQuickOpen
}

// SetSize sizes the picker to 70% of the terminal width.
func (s *QuickOpenScreen) SetSize(maxWidth, maxHeight int) {
	s.Width = clampInt(int(float64(maxWidth)*0.7), 50, 110)
	s.Height = maxHeight
	s.Input.Width = s.Width - 6
}

func (s *QuickOpenScreen) maxVisible() int {
	if s.Height == 0 {
		return 12
	}
	return clampInt(s.Height-8, 5, 20)
}

func (s *QuickOpenScreen) refresh() {
	s.Matches = s.Finder.Find(s.Input.Value())
	s.Cursor = 0
	s.ScrollOffset = 0
}

// Selected returns the path under the cursor.
func (s *QuickOpenScreen) Selected() (string, bool) {
	if s.Cursor < 0 || s.Cursor >= len(s.Matches) {
		return "", false
	}
	return s.Matches[s.Cursor].Path, true
}

// Update handles keyboard input for the picker.
func (s *QuickOpenScreen) Update(msg tea.KeyMsg) (Screen, tea.Cmd) {
	switch msg.String() {
	case keyEsc, keyEscRaw, keyCtrlC:
		if s.OnCancel != nil {
			return nil, s.OnCancel()
		}
		return nil, nil
	case keyEnter:
		path, ok := s.Selected()
		if !ok {
			return s, nil
		}
		if s.OnSelect != nil {
			return nil, s.OnSelect(path)
		}
		return nil, nil
	case keyUp, "ctrl+k", "ctrl+p":
		if s.Cursor > 0 {
			s.Cursor--
			if s.Cursor < s.ScrollOffset {
				s.ScrollOffset = s.Cursor
			}
		}
		return s, nil
	case keyDown, "ctrl+j", "ctrl+n":
		if s.Cursor < len(s.Matches)-1 {
			s.Cursor++
			if s.Cursor >= s.ScrollOffset+s.maxVisible() {
				s.ScrollOffset = s.Cursor - s.maxVisible() + 1
			}
		}
		return s, nil
	}

	before := s.Input.Value()
	var cmd tea.Cmd
	s.Input, cmd = s.Input.Update(msg)
	if s.Input.Value() != before {
		s.refresh()
	}
	return s, cmd
}

// View renders the picker.
func (s *QuickOpenScreen) View() string {
	width := s.Width
	inner := width - 2

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.Thm.Accent).
		Width(width)
	inputStyle := lipgloss.NewStyle().
		Padding(0, 1).
		Width(inner).
		Foreground(s.Thm.TextFg).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(s.Thm.BorderDim)
	itemStyle := lipgloss.NewStyle().Padding(0, 1).Width(inner).Foreground(s.Thm.TextFg)
	selectedStyle := itemStyle.Background(s.Thm.Accent).Foreground(s.Thm.AccentFg).Bold(true)
	matchStyle := lipgloss.NewStyle().Foreground(s.Thm.Yellow).Bold(true)
	mutedStyle := lipgloss.NewStyle().Padding(0, 1).Width(inner).Foreground(s.Thm.MutedFg).Italic(true)

	rows := []string{inputStyle.Render(s.Input.View())}

	if len(s.Matches) == 0 {
		rows = append(rows, mutedStyle.Render("No matching files"))
	}

	end := min(len(s.Matches), s.ScrollOffset+s.maxVisible())
	for i := s.ScrollOffset; i < end; i++ {
		m := s.Matches[i]
		label := ansi.Truncate(m.Path, inner-2, "…")
		if i == s.Cursor {
			rows = append(rows, selectedStyle.Render(label))
			continue
		}
		rows = append(rows, itemStyle.Render(highlightIndexes(label, m.Matched, matchStyle)))
	}

	footer := lipgloss.NewStyle().Foreground(s.Thm.MutedFg).Padding(0, 1).
		Render("↑/↓: move • enter: open • esc: close")
	rows = append(rows, footer)

	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// highlightIndexes styles the bytes of s at the given offsets. Offsets past
// the end (after truncation) are ignored.
func highlightIndexes(s string, indexes []int, style lipgloss.Style) string {
	if len(indexes) == 0 {
		return s
	}
	hit := make(map[int]bool, len(indexes))
	for _, i := range indexes {
		hit[i] = true
	}
	var out []byte
	for i, r := range s {
		if hit[i] {
			out = append(out, style.Render(string(r))...)
			continue
		}
		out = append(out, string(r)...)
	}
	return string(out)
}
