package app

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/chmouel/lazycode/internal/app/handlers"
	"github.com/chmouel/lazycode/internal/app/screen"
	"github.com/chmouel/lazycode/internal/app/state"
	"github.com/chmouel/lazycode/internal/filetype"
	"github.com/chmouel/lazycode/internal/models"
	"github.com/chmouel/lazycode/internal/theme"
	"github.com/chmouel/lazycode/internal/view"
	"github.com/chmouel/lazycode/internal/workspace"
)

// activateRow opens the file under the cursor or toggles its directory.
func (m *Model) activateRow() {
	row, ok := m.ui.explorer.Current()
	if !ok {
		return
	}
	if row.IsDir() {
		m.ui.explorer.ToggleCollapse(row.Path)
		m.rebuildExplorer()
		return
	}
	m.emit(row.Button.Intent)
}

// emit routes a node intent to its handler.
func (m *Model) emit(intent view.Intent) {
	switch intent.Action {
	case view.ActionSelectFile:
		m.requestOpen(intent.Path)
	case view.ActionUpdateContent:
		m.save()
	}
}

// requestOpen opens path, asking first when the editor has unsaved edits.
func (m *Model) requestOpen(path string) {
	if path == m.handlers.State.Selection {
		return
	}
	if m.dirty() {
		m.pending.SelectPath = path
		m.confirmDiscard()
		return
	}
	m.openPath(path)
}

// openRelative opens a workspace-relative slash path from quick open.
func (m *Model) openRelative(rel string) {
	path := filepath.Join(m.handlers.State.Root, filepath.FromSlash(rel))
	m.ui.explorer.Reveal(path)
	m.rebuildExplorer()
	m.requestOpen(path)
	m.scrollExplorer()
}

// openPath emits select_file and syncs the editor with the new buffer.
func (m *Model) openPath(path string) {
	res, err := m.handlers.SelectFile(handlers.SelectFileRequest{Path: &path})
	if err != nil {
		m.setError(handlers.Failure(view.ActionSelectFile, err).Error)
		return
	}
	m.seedEditor()
	m.rebuildExplorer()
	m.ui.explorer.RestoreSelection(res.File)
	m.scrollExplorer()
	if m.buffer.readOnly != "" {
		m.setReadOnlyStatus()
		return
	}
	m.setStatus(fmt.Sprintf("Opened %s (%s)", m.relPath(res.File), res.Type))
}

// save emits update_file_content with the editor value.
func (m *Model) save() {
	st := m.handlers.State
	if !st.HasSelection() {
		m.setStatus("No file to save")
		return
	}
	if m.buffer.readOnly != "" {
		m.setReadOnlyStatus()
		return
	}
	if !m.dirty() {
		m.setStatus("No changes to save")
		return
	}
	path := st.Selection
	value := m.ui.editor.Value()
	content := m.buffer.encode(value)
	res, err := m.handlers.UpdateContent(handlers.UpdateContentRequest{Path: &path, Content: &content})
	if err != nil {
		failure := handlers.Failure(view.ActionUpdateContent, err)
		m.setError(failure.Error)
		m.ui.screenManager.Push(screen.NewErrorScreen("Save failed", failure.Error, m.theme))
		return
	}
	m.editorBase = value
	m.setStatus("Saved " + m.relPath(res.File))
}

func (m *Model) setReadOnlyStatus() {
	m.setStatus(fmt.Sprintf("%s is read-only: %s", m.relPath(m.handlers.State.Selection), m.buffer.readOnly))
}

// confirmDiscard pushes the unsaved-changes prompt for the pending action.
func (m *Model) confirmDiscard() {
	name := filepath.Base(m.handlers.State.Selection)
	confirm := screen.NewDiscardScreen(name, m.theme)
	confirm.OnConfirm = func() tea.Cmd {
		return func() tea.Msg { return discardConfirmedMsg{} }
	}
	confirm.OnCancel = func() tea.Cmd {
		return func() tea.Msg { return discardCancelledMsg{} }
	}
	m.ui.screenManager.Push(confirm)
}

// runPending performs the action parked behind the discard prompt.
func (m *Model) runPending() tea.Cmd {
	pending := m.pending
	m.pending.Reset()

	if pending.Quit {
		m.quitting = true
		return tea.Quit
	}
	if pending.SelectPath != "" {
		// Drop the edits so the open below does not prompt again.
		m.editorBase = m.ui.editor.Value()
		m.openPath(pending.SelectPath)
	}
	return nil
}

// requestQuit exits, asking first when the editor has unsaved edits.
func (m *Model) requestQuit() tea.Cmd {
	if m.dirty() {
		m.pending.Quit = true
		m.confirmDiscard()
		return nil
	}
	m.quitting = true
	return tea.Quit
}

// rescan rebuilds the workspace tree from disk.
func (m *Model) rescan() {
	stats, err := m.handlers.Rescan()
	if err != nil {
		m.setError("Error scanning workspace: " + err.Error())
		return
	}
	m.rebuildExplorer()
	m.scrollExplorer()
	m.setStatus(rescanSummary(stats))
}

func rescanSummary(stats workspace.Stats) string {
	msg := fmt.Sprintf("Rescanned: %d directories, %d files", stats.Directories, stats.Files)
	if stats.Skipped > 0 {
		msg += fmt.Sprintf(", %d skipped", stats.Skipped)
	}
	if stats.Errors > 0 {
		msg += fmt.Sprintf(", %d errors", stats.Errors)
	}
	return msg
}

func (m *Model) showQuickOpen() {
	ws := m.handlers.State.Workspace
	if ws == nil {
		return
	}
	qo := screen.NewQuickOpenScreen(workspace.RelPaths(ws), m.view.WindowWidth, m.view.WindowHeight, m.theme)
	qo.OnSelect = func(rel string) tea.Cmd {
		return func() tea.Msg { return quickOpenMsg{relPath: rel} }
	}
	m.ui.screenManager.Push(qo)
}

func (m *Model) showHelp() {
	m.ui.screenManager.Push(screen.NewHelpScreen(m.view.WindowWidth, m.view.WindowHeight, m.theme))
}

// togglePreview switches the editor pane between the textarea and a
// rendered Markdown preview of the editor value.
func (m *Model) togglePreview() {
	if m.view.ShowPreview {
		m.view.ShowPreview = false
		return
	}
	st := m.handlers.State
	if !st.HasSelection() {
		m.setStatus("Open a file first")
		return
	}
	if filetype.ClassifyName(st.Selection) != models.KindMarkdown {
		m.setStatus("Preview is only available for Markdown files")
		return
	}

	layout := m.computeLayout()
	rendered, err := renderMarkdown(m.ui.editor.Value(), m.config.Theme, layout.rightInnerWidth)
	if err != nil {
		m.setError("Preview failed: " + err.Error())
		return
	}
	m.ui.preview.SetContent(rendered)
	m.ui.preview.GotoTop()
	m.view.ShowPreview = true
	m.view.FocusedPane = state.PaneEditor
	m.ui.editor.Blur()
}

// renderMarkdown renders source with the glamour style matching the theme.
func renderMarkdown(source, themeName string, width int) (string, error) {
	style := "dark"
	if theme.IsLight(themeName) {
		style = "light"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(max(20, width-2)),
	)
	if err != nil {
		return "", err
	}
	return r.Render(source)
}

// relPath shortens path for messages.
func (m *Model) relPath(path string) string {
	rel, err := filepath.Rel(m.handlers.State.Root, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}
