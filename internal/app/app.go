// Package app is the terminal front end of lazycode, a Bubble Tea program
// that renders the view trees and feeds key presses to the event handlers.
package app

import (
	"path/filepath"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/chmouel/lazycode/internal/app/handlers"
	"github.com/chmouel/lazycode/internal/app/screen"
	"github.com/chmouel/lazycode/internal/app/services"
	"github.com/chmouel/lazycode/internal/app/state"
	"github.com/chmouel/lazycode/internal/config"
	"github.com/chmouel/lazycode/internal/theme"
	"github.com/chmouel/lazycode/internal/view"
)

// Message types for the Bubble Tea app
type (
	// discardConfirmedMsg runs the action parked in the pending state.
	discardConfirmedMsg struct{}
	// discardCancelledMsg drops it.
	discardCancelledMsg struct{}
	// quickOpenMsg opens a workspace-relative path picked in quick open.
	quickOpenMsg struct{ relPath string }
)

// uiState groups the Bubble Tea components.
type uiState struct {
	screenManager  *screen.Manager
	editor         textarea.Model
	preview        viewport.Model
	explorer       *services.ExplorerService
	explorerOffset int
}

// Model is the Bubble Tea model of the terminal editor.
type Model struct {
	config   *config.AppConfig
	handlers *handlers.Handlers
	theme    *theme.Theme
	builder  view.Builder
	keys     keyMap

	view    state.ViewState
	pending state.PendingState
	ui      uiState

	// editorBase is the editor value right after it was seeded or saved.
	// The textarea normalises tabs and line endings, so dirtiness is measured
	// against it instead of the raw content buffer.
	editorBase string
	// editorPath is the selection the editor was last seeded from.
	editorPath string
	// buffer records how the open file maps onto the textarea.
	buffer editorBuffer

	statusMsg     string
	statusIsError bool
	quitting      bool
	logf          func(string, ...any)
}

// NewModel creates the terminal model over handlers whose state is already
// scanned (and possibly has a default file open).
func NewModel(cfg *config.AppConfig, h *handlers.Handlers, logf func(string, ...any)) *Model {
	thm := theme.GetTheme(cfg.Theme)
	width, height := cfg.TerminalSize()

	m := &Model{
		config:   cfg,
		handlers: h,
		theme:    thm,
		builder:  view.NewBuilder(cfg.Icons()),
		keys:     defaultKeyMap(),
		view: state.ViewState{
			FocusedPane:  state.PaneExplorer,
			WindowWidth:  width,
			WindowHeight: height,
		},
		ui: uiState{
			screenManager: screen.NewManager(),
			editor:        newEditor(thm),
			preview:       viewport.New(0, 0),
			explorer:      services.NewExplorerService(),
		},
		logf: logf,
	}

	m.rebuildExplorer()
	if h.State.HasSelection() {
		m.seedEditor()
		m.ui.explorer.RestoreSelection(h.State.Selection)
	}
	m.applyLayout(m.computeLayout())
	return m
}

// newEditor builds the themed textarea bound to the content buffer.
func newEditor(thm *theme.Theme) textarea.Model {
	ta := textarea.New()
	ta.Prompt = ""
	ta.ShowLineNumbers = true
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.MaxWidth = 0
	ta.Placeholder = view.PlaceholderHint

	focused, _ := textarea.DefaultStyles()
	focused.Base = lipgloss.NewStyle()
	focused.Text = lipgloss.NewStyle().Foreground(thm.TextFg)
	focused.LineNumber = lipgloss.NewStyle().Foreground(thm.MutedFg)
	focused.CursorLineNumber = lipgloss.NewStyle().Foreground(thm.Accent).Bold(true)
	focused.CursorLine = lipgloss.NewStyle().Foreground(thm.TextFg).Background(thm.RoleColor(view.RoleSelection))
	focused.Placeholder = lipgloss.NewStyle().Foreground(thm.MutedFg).Italic(true)
	focused.EndOfBuffer = lipgloss.NewStyle().Foreground(thm.BorderDim)
	blurred := focused
	blurred.CursorLine = lipgloss.NewStyle().Foreground(thm.TextFg)
	blurred.CursorLineNumber = focused.LineNumber
	ta.FocusedStyle = focused
	ta.BlurredStyle = blurred
	return ta
}

// Init sets the terminal title.
func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle(view.DefaultTitle + " - " + filepath.Base(m.handlers.State.Root))
}

// State exposes the application state, mainly for tests.
func (m *Model) State() *state.AppState {
	return m.handlers.State
}

// dirty reports unsaved edits in the editor.
func (m *Model) dirty() bool {
	return m.handlers.State.HasSelection() && m.ui.editor.Value() != m.editorBase
}

// seedEditor loads the content buffer into the textarea.
func (m *Model) seedEditor() {
	st := m.handlers.State
	m.buffer = newEditorBuffer(st.Content, st.Unreadable)
	m.ui.editor.SetValue(m.buffer.text)
	if m.buffer.readOnly == "" && m.ui.editor.Value() != m.buffer.text {
		// Line limit or runes the textarea drops.
		m.buffer.readOnly = "the editor cannot hold it unchanged"
	}
	for m.ui.editor.Line() > 0 {
		m.ui.editor.CursorUp()
	}
	m.ui.editor.CursorStart()
	m.editorBase = m.ui.editor.Value()
	m.editorPath = st.Selection
	m.view.ShowPreview = false
}

// rebuildExplorer re-derives the explorer rows from the current state.
func (m *Model) rebuildExplorer() {
	st := m.handlers.State
	m.ui.explorer.Rebuild(m.builder.Explorer(st.Workspace, st.Selection))
}

func (m *Model) setStatus(msg string) {
	m.statusMsg = msg
	m.statusIsError = false
}

func (m *Model) setError(msg string) {
	m.statusMsg = msg
	m.statusIsError = true
	m.debugf("error: %s", msg)
}

func (m *Model) debugf(format string, args ...any) {
	if m.logf != nil {
		m.logf(format, args...)
	}
}
