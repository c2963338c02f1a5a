package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/imamik/devsetup/internal/catalog"
	"github.com/imamik/devsetup/internal/provision"
)

// ErrInterrupted reports that the progress view was closed before the
// install finished.
var ErrInterrupted = errors.New("install interrupted before completion")

// RunInstallTUI wraps a stack install with the progress view. installFn runs
// the sequential install flow; it receives an Observer whose events drive the
// display. The install itself stays single-threaded; the extra goroutine only
// ferries events into the program.
func RunInstallTUI(ctx context.Context, stack catalog.Stack, installFn func(obs provision.Observer) error) error {
	m := NewInstallModel(stack)
	p := tea.NewProgram(m, tea.WithContext(ctx))

	go func() {
		if err := installFn(&programObserver{program: p}); err != nil {
			p.Send(ErrMsg{Err: err})
			return
		}
		p.Send(DoneMsg{})
	}()

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return installResult(finalModel.(Model))
}

// installResult maps the final model to the run outcome. A view that closed
// without reaching DoneMsg means the install never completed, whether the
// user quit or the program ended early.
func installResult(m Model) error {
	if m.Err != nil {
		return m.Err
	}
	if !m.Done {
		return ErrInterrupted
	}
	return nil
}

// programObserver translates provisioning events into Bubble Tea messages.
type programObserver struct {
	program *tea.Program
	fields  map[string]string
}

// Printf implements provision.Observer. Free-form lines have no place in the
// structured view; they are dropped.
func (o *programObserver) Printf(string, ...interface{}) {}

// Event implements provision.Observer.
func (o *programObserver) Event(event provision.Event) {
	switch event.Type {
	case provision.EventToolInstalling:
		o.program.Send(ToolStatusMsg{Tool: event.Tool, State: ToolActive})
	case provision.EventToolInstalled:
		o.program.Send(ToolStatusMsg{Tool: event.Tool, State: ToolDone})
	case provision.EventToolSkipped:
		o.program.Send(ToolStatusMsg{Tool: event.Tool, State: ToolSkipped, Message: event.Message})
	case provision.EventToolBestEffortFailed:
		o.program.Send(ToolStatusMsg{Tool: event.Tool, State: ToolWarned, Message: event.Message})
	case provision.EventHookApplied:
		o.program.Send(HookMsg{Marker: event.Fields["marker"], Applied: true})
	case provision.EventHookPresent:
		o.program.Send(HookMsg{Marker: event.Fields["marker"]})
	case provision.EventNote:
		o.program.Send(NoteMsg{Text: event.Message})
	}
}

// Progress implements provision.Observer. The tool list already shows
// position; discrete progress needs no separate message.
func (o *programObserver) Progress(string, int, int) {}

// WithFields implements provision.Observer.
func (o *programObserver) WithFields(fields map[string]string) provision.Observer {
	merged := make(map[string]string, len(o.fields)+len(fields))
	for k, v := range o.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &programObserver{program: o.program, fields: merged}
}
