// Package tui provides a Bubble Tea progress view for stack provisioning.
package tui

// ToolState is the display status of one tool in the install list.
type ToolState int

// Tool display states.
const (
	ToolPending ToolState = iota
	ToolActive
	ToolDone
	ToolSkipped
	ToolWarned
)

// ToolStatusMsg reports a tool changing state.
type ToolStatusMsg struct {
	Tool    string
	State   ToolState
	Message string
}

// HookMsg reports a shell-profile hook outcome.
type HookMsg struct {
	Marker  string
	Applied bool
}

// NoteMsg carries a post-install note.
type NoteMsg struct{ Text string }

// TickMsg is sent periodically to refresh the spinner and ETA.
type TickMsg struct{}

// ErrMsg carries a fatal error.
type ErrMsg struct{ Err error }

// DoneMsg signals that the stack finished provisioning.
type DoneMsg struct{}
