package screen

import tea "github.com/charmbracelet/bubbletea"

// Manager keeps the stack of modal overlays. The top of the stack receives
// key input and is drawn over the panes.
type Manager struct {
	current Screen
	stack   []Screen
}

// NewManager creates a new screen manager.
func NewManager() *Manager {
	return &Manager{
		stack: make([]Screen, 0),
	}
}

// Push adds a screen to the stack and sets it as the current screen.
func (m *Manager) Push(s Screen) {
	if s == nil {
		return
	}
	if m.current != nil {
		m.stack = append(m.stack, m.current)
	}
	m.current = s
}

// Pop removes the current screen and restores the previous one.
// Returns the screen that was removed, or nil if no screen was active.
func (m *Manager) Pop() Screen {
	removed := m.current
	if len(m.stack) > 0 {
		m.current = m.stack[len(m.stack)-1]
		m.stack = m.stack[:len(m.stack)-1]
	} else {
		m.current = nil
	}
	return removed
}

// Current returns the currently active screen, or nil if none.
func (m *Manager) Current() Screen {
	return m.current
}

// IsActive returns true if there is a screen currently displayed.
func (m *Manager) IsActive() bool {
	return m.current != nil
}

// Type returns the type of the current screen, or TypeNone if no screen is active.
func (m *Manager) Type() Type {
	if m.current == nil {
		return TypeNone
	}
	return m.current.Type()
}

// Clear removes all screens from the stack.
func (m *Manager) Clear() {
	m.current = nil
	m.stack = m.stack[:0]
}

// Handle routes a key to the current screen. A screen returning nil is
// removed, even when its callback already pushed a follow-up screen.
func (m *Manager) Handle(msg tea.KeyMsg) tea.Cmd {
	if m.current == nil {
		return nil
	}
	active := m.current
	next, cmd := active.Update(msg)
	switch {
	case next == nil:
		m.remove(active)
	case m.current == active:
		m.current = next
	}
	return cmd
}

func (m *Manager) remove(s Screen) {
	if m.current == s {
		m.Pop()
		return
	}
	for i, stacked := range m.stack {
		if stacked == s {
			m.stack = append(m.stack[:i], m.stack[i+1:]...)
			return
		}
	}
}

// Resize forwards the terminal size to every stacked screen that cares.
func (m *Manager) Resize(width, height int) {
	for _, s := range append([]Screen{m.current}, m.stack...) {
		if r, ok := s.(Resizable); ok {
			r.SetSize(width, height)
		}
	}
}

// StackDepth returns the number of screens in the stack (excluding current).
func (m *Manager) StackDepth() int {
	return len(m.stack)
}
