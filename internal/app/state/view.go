package state

// Pane identifies a focusable area of the terminal UI.
type Pane int

// Panes.
const (
	PaneExplorer Pane = iota
	PaneEditor
)

// ViewState holds UI-related state for the model.
type ViewState struct {
	FocusedPane  Pane
	ShowPreview  bool
	WindowWidth  int
	WindowHeight int
}
