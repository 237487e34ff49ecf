package state

// PendingState keeps actions deferred behind a confirmation prompt.
type PendingState struct {
	// SelectPath is opened once unsaved edits are discarded.
	SelectPath string
	Quit       bool
}

// Reset clears every pending action.
func (p *PendingState) Reset() {
	*p = PendingState{}
}
