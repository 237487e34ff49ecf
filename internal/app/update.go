package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/chmouel/lazycode/internal/app/state"
)

// Update handles every Bubble Tea message. All state mutation happens here,
// on the program goroutine.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setWindowSize(msg.Width, msg.Height)
		m.ui.screenManager.Resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if m.ui.screenManager.IsActive() {
			return m, m.ui.screenManager.Handle(msg)
		}
		return m, m.handleKey(msg)

	case discardConfirmedMsg:
		return m, m.runPending()

	case discardCancelledMsg:
		m.pending.Reset()
		return m, nil

	case quickOpenMsg:
		m.openRelative(msg.relPath)
		return m, nil
	}

	if m.view.FocusedPane == state.PaneEditor && !m.view.ShowPreview {
		var cmd tea.Cmd
		m.ui.editor, cmd = m.ui.editor.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey dispatches a key press when no modal screen is open.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	m.statusMsg = ""

	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return m.requestQuit()
	case key.Matches(msg, m.keys.Save):
		m.save()
		return nil
	case key.Matches(msg, m.keys.QuickOpen):
		m.showQuickOpen()
		return nil
	case key.Matches(msg, m.keys.Rescan):
		m.rescan()
		return nil
	case key.Matches(msg, m.keys.Preview) && (m.view.FocusedPane == state.PaneExplorer || m.view.ShowPreview):
		// While editing, ctrl+e stays the textarea's end-of-line key.
		m.togglePreview()
		return nil
	}

	if m.view.FocusedPane == state.PaneEditor {
		return m.handleEditorKey(msg)
	}
	return m.handleExplorerKey(msg)
}

func (m *Model) handleExplorerKey(msg tea.KeyMsg) tea.Cmd {
	exp := m.ui.explorer
	page := max(1, m.explorerHeight()-1)

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.requestQuit()
	case key.Matches(msg, m.keys.Help):
		m.showHelp()
	case key.Matches(msg, m.keys.Up):
		exp.Move(-1)
	case key.Matches(msg, m.keys.Down):
		exp.Move(1)
	case key.Matches(msg, m.keys.Top):
		exp.Top()
	case key.Matches(msg, m.keys.Bottom):
		exp.Bottom()
	case key.Matches(msg, m.keys.PageUp):
		exp.Move(-page)
	case key.Matches(msg, m.keys.PageDown):
		exp.Move(page)
	case key.Matches(msg, m.keys.Open):
		m.activateRow()
	case key.Matches(msg, m.keys.Focus):
		return m.focusEditor()
	}
	m.scrollExplorer()
	return nil
}

func (m *Model) handleEditorKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Focus):
		m.focusExplorer()
		return nil
	}

	if m.view.ShowPreview {
		var cmd tea.Cmd
		m.ui.preview, cmd = m.ui.preview.Update(msg)
		return cmd
	}

	if m.buffer.readOnly != "" && !navigationKey(msg) {
		m.setReadOnlyStatus()
		return nil
	}

	var cmd tea.Cmd
	m.ui.editor, cmd = m.ui.editor.Update(msg)
	return cmd
}

// navigationKey reports keys that move the textarea cursor without editing.
func navigationKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyUp, tea.KeyDown, tea.KeyLeft, tea.KeyRight,
		tea.KeyHome, tea.KeyEnd, tea.KeyPgUp, tea.KeyPgDown,
		tea.KeyCtrlHome, tea.KeyCtrlEnd, tea.KeyCtrlA, tea.KeyCtrlE,
		tea.KeyCtrlF, tea.KeyCtrlB, tea.KeyCtrlN:
		return true
	}
	return false
}

// focusEditor moves focus to the editor when a file is open.
func (m *Model) focusEditor() tea.Cmd {
	if !m.handlers.State.HasSelection() {
		m.setStatus("Open a file first")
		return nil
	}
	m.view.FocusedPane = state.PaneEditor
	return m.ui.editor.Focus()
}

func (m *Model) focusExplorer() {
	m.view.FocusedPane = state.PaneExplorer
	m.ui.editor.Blur()
	m.ui.explorer.RestoreSelection(m.handlers.State.Selection)
	m.scrollExplorer()
}

// scrollExplorer keeps the cursor row inside the visible window.
func (m *Model) scrollExplorer() {
	height := m.explorerHeight()
	idx := m.ui.explorer.Index
	if idx < m.ui.explorerOffset {
		m.ui.explorerOffset = idx
	}
	if idx >= m.ui.explorerOffset+height {
		m.ui.explorerOffset = idx - height + 1
	}
	if maxOffset := max(0, len(m.ui.explorer.Rows)-height); m.ui.explorerOffset > maxOffset {
		m.ui.explorerOffset = maxOffset
	}
}
