package app

import "github.com/chmouel/lazycode/internal/view"

const (
	minLeftPaneWidth  = 16
	minRightPaneWidth = 24
	footerHeight      = 2 // status bar + message line
	paneFrame         = 4 // border and horizontal padding
)

// layoutDims holds computed layout dimensions for the UI.
type layoutDims struct {
	width           int
	height          int
	bodyHeight      int
	leftWidth       int
	rightWidth      int
	leftInnerWidth  int
	rightInnerWidth int
	innerHeight     int
}

// setWindowSize updates the window dimensions and applies the layout.
func (m *Model) setWindowSize(width, height int) {
	m.view.WindowWidth = width
	m.view.WindowHeight = height
	m.applyLayout(m.computeLayout())
	m.scrollExplorer()
}

// computeLayout splits the window into the sidebar, the editor and the footer.
func (m *Model) computeLayout() layoutDims {
	width := m.view.WindowWidth
	height := m.view.WindowHeight
	if width <= 0 {
		width = 120
	}
	if height <= 0 {
		height = 40
	}

	bodyHeight := max(4, height-footerHeight)
	leftWidth := min(view.SidebarWidth+paneFrame, width/2)
	leftWidth = max(minLeftPaneWidth, leftWidth)
	rightWidth := max(minRightPaneWidth, width-leftWidth)

	return layoutDims{
		width:           width,
		height:          height,
		bodyHeight:      bodyHeight,
		leftWidth:       leftWidth,
		rightWidth:      rightWidth,
		leftInnerWidth:  leftWidth - paneFrame,
		rightInnerWidth: rightWidth - paneFrame,
		innerHeight:     bodyHeight - 2,
	}
}

// applyLayout sizes the editor components.
func (m *Model) applyLayout(layout layoutDims) {
	contentHeight := max(1, layout.innerHeight-1) // pane title
	m.ui.editor.SetWidth(layout.rightInnerWidth)
	m.ui.editor.SetHeight(contentHeight)
	m.ui.preview.Width = layout.rightInnerWidth
	m.ui.preview.Height = contentHeight
}

// explorerHeight is the number of tree rows visible in the sidebar.
func (m *Model) explorerHeight() int {
	return max(1, m.computeLayout().innerHeight-1)
}
