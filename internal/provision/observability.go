package provision

import (
	"fmt"
	"strings"
	"time"

	"github.com/imamik/devsetup/internal/ui"
)

// Observer is the structured event stream of a run. The console
// implementation prints through the color logger; the TUI implementation
// feeds a Bubble Tea program.
type Observer interface {
	// Printf emits an unstructured progress line.
	Printf(format string, v ...interface{})

	// Event emits a structured event.
	Event(event Event)

	// Progress reports progress within a stage.
	Progress(stage string, current, total int)

	// WithFields returns a new Observer with additional context fields.
	WithFields(fields map[string]string) Observer
}

// Event represents one structured workflow event.
type Event struct {
	Type      EventType
	Stage     string
	Tool      string
	Message   string
	Timestamp time.Time
	Fields    map[string]string
}

// EventType classifies workflow events.
type EventType string

const (
	// EventStageStarted indicates a stage has started.
	EventStageStarted EventType = "stage.started"
	// EventStageCompleted indicates a stage completed successfully.
	EventStageCompleted EventType = "stage.completed"
	// EventStageFailed indicates a stage failed.
	EventStageFailed EventType = "stage.failed"

	// EventToolInstalling indicates a tool install is running.
	EventToolInstalling EventType = "tool.installing"
	// EventToolInstalled indicates a tool install finished.
	EventToolInstalled EventType = "tool.installed"
	// EventToolSkipped indicates a tool was already satisfied and skipped.
	EventToolSkipped EventType = "tool.skipped"
	// EventToolBestEffortFailed indicates a best-effort install failed and
	// was swallowed.
	EventToolBestEffortFailed EventType = "tool.best_effort_failed"

	// EventHookApplied indicates a shell profile hook line was appended.
	EventHookApplied EventType = "hook.applied"
	// EventHookPresent indicates a hook line was already in the profile.
	EventHookPresent EventType = "hook.present"

	// EventNote carries a post-install note for the user.
	EventNote EventType = "note"
)

// ConsoleObserver prints events through the color logger.
type ConsoleObserver struct {
	contextFields map[string]string
}

// NewConsoleObserver creates a console-based observer.
func NewConsoleObserver() *ConsoleObserver {
	return &ConsoleObserver{contextFields: make(map[string]string)}
}

// Printf implements Observer.
func (o *ConsoleObserver) Printf(format string, v ...interface{}) {
	ui.Plain(format+"\n", v...)
}

// Event implements Observer.
func (o *ConsoleObserver) Event(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	if event.Fields == nil {
		event.Fields = make(map[string]string)
	}
	for k, v := range o.contextFields {
		if _, exists := event.Fields[k]; !exists {
			event.Fields[k] = v
		}
	}

	msg := formatEvent(event)
	switch event.Type {
	case EventStageFailed:
		ui.Error("%s\n", msg)
	case EventToolBestEffortFailed:
		ui.Warn("%s\n", msg)
	case EventNote:
		ui.Note("%s\n", msg)
	case EventToolSkipped, EventHookPresent:
		ui.Plain("%s\n", msg)
	default:
		ui.Info("%s\n", msg)
	}
}

// Progress implements Observer.
func (o *ConsoleObserver) Progress(stage string, current, total int) {
	if total == 0 {
		ui.Plain("[%s] %d/%d\n", stage, current, total)
		return
	}
	ui.Plain("[%s] %d/%d (%d%%)\n", stage, current, total, (current*100)/total)
}

// WithFields implements Observer.
func (o *ConsoleObserver) WithFields(fields map[string]string) Observer {
	newFields := make(map[string]string, len(o.contextFields)+len(fields))
	for k, v := range o.contextFields {
		newFields[k] = v
	}
	for k, v := range fields {
		newFields[k] = v
	}
	return &ConsoleObserver{contextFields: newFields}
}

// formatEvent renders an event as one console line.
func formatEvent(event Event) string {
	var parts []string

	if event.Stage != "" {
		parts = append(parts, fmt.Sprintf("[%s]", event.Stage))
	}
	if event.Tool != "" {
		parts = append(parts, event.Tool+":")
	}
	parts = append(parts, event.Message)

	if len(event.Fields) > 0 {
		var fieldParts []string
		for k, v := range event.Fields {
			fieldParts = append(fieldParts, fmt.Sprintf("%s=%s", k, v))
		}
		parts = append(parts, fmt.Sprintf("(%s)", strings.Join(fieldParts, ", ")))
	}

	return strings.Join(parts, " ")
}

// Helper functions for common events.

// LogStageStart emits a stage start event.
func LogStageStart(observer Observer, stage string) {
	observer.Event(Event{Type: EventStageStarted, Stage: stage, Message: "starting"})
}

// LogStageComplete emits a stage completion event.
func LogStageComplete(observer Observer, stage string, duration time.Duration) {
	observer.Event(Event{
		Type:    EventStageCompleted,
		Stage:   stage,
		Message: fmt.Sprintf("completed in %v", duration.Round(time.Millisecond)),
	})
}

// LogStageFailed emits a stage failure event.
func LogStageFailed(observer Observer, stage string, err error) {
	observer.Event(Event{
		Type:    EventStageFailed,
		Stage:   stage,
		Message: fmt.Sprintf("failed: %v", err),
	})
}

// LogToolInstalling emits a tool install start event.
func LogToolInstalling(observer Observer, stage, tool, method string) {
	observer.Event(Event{
		Type:    EventToolInstalling,
		Stage:   stage,
		Tool:    tool,
		Message: "installing",
		Fields:  map[string]string{"method": method},
	})
}

// LogToolInstalled emits a tool install completion event.
func LogToolInstalled(observer Observer, stage, tool string) {
	observer.Event(Event{Type: EventToolInstalled, Stage: stage, Tool: tool, Message: "installed"})
}

// LogToolSkipped emits an event for a tool that was already satisfied.
func LogToolSkipped(observer Observer, stage, tool, reason string) {
	observer.Event(Event{Type: EventToolSkipped, Stage: stage, Tool: tool, Message: reason})
}

// LogBestEffortFailed emits an event for a swallowed best-effort failure.
func LogBestEffortFailed(observer Observer, stage, tool string, err error) {
	observer.Event(Event{
		Type:    EventToolBestEffortFailed,
		Stage:   stage,
		Tool:    tool,
		Message: fmt.Sprintf("failed, continuing: %v", err),
	})
}

// LogHookApplied emits an event for a written profile hook.
func LogHookApplied(observer Observer, stage, marker string) {
	observer.Event(Event{
		Type:    EventHookApplied,
		Stage:   stage,
		Message: "profile hook added",
		Fields:  map[string]string{"marker": marker},
	})
}

// LogHookPresent emits an event for a profile hook that already existed.
func LogHookPresent(observer Observer, stage, marker string) {
	observer.Event(Event{
		Type:    EventHookPresent,
		Stage:   stage,
		Message: "profile hook already present",
		Fields:  map[string]string{"marker": marker},
	})
}

// LogNote emits a post-install note.
func LogNote(observer Observer, stage, note string) {
	observer.Event(Event{Type: EventNote, Stage: stage, Message: note})
}
