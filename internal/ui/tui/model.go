package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/imamik/devsetup/internal/catalog"
	"github.com/imamik/devsetup/internal/ui/benchmarks"
)

// ToolItem is one row of the install list.
type ToolItem struct {
	Name    string
	Method  string
	State   ToolState
	Message string
}

// Model is the Bubble Tea model for the stack provisioning view.
type Model struct {
	Stack catalog.Stack

	Tools []ToolItem
	Hooks []string
	Notes []string

	// ETA
	EstimatedRemaining time.Duration
	StartTime          time.Time
	toolStartTime      time.Time

	// Animation
	SpinnerFrame int

	// UI state
	Width       int
	Height      int
	Err         error
	Done        bool
	Interrupted bool
}

// NewInstallModel creates the model for a stack install.
func NewInstallModel(stack catalog.Stack) Model {
	tools := make([]ToolItem, 0, len(stack.Tools))
	for _, tool := range stack.Tools {
		tools = append(tools, ToolItem{Name: tool.Name, Method: string(tool.Method)})
	}
	now := time.Now()
	return Model{
		Stack:              stack,
		Tools:              tools,
		StartTime:          now,
		toolStartTime:      now,
		EstimatedRemaining: benchmarks.StackEstimate(stack),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.Interrupted = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case ToolStatusMsg:
		m.updateTool(msg)

	case HookMsg:
		if msg.Applied {
			m.Hooks = append(m.Hooks, msg.Marker+" (added)")
		} else {
			m.Hooks = append(m.Hooks, msg.Marker+" (already present)")
		}

	case NoteMsg:
		m.Notes = append(m.Notes, msg.Text)

	case TickMsg:
		m.SpinnerFrame++
		m.updateETA()
		return m, tickCmd()

	case ErrMsg:
		m.Err = msg.Err
		return m, tea.Quit

	case DoneMsg:
		m.Done = true
		return m, tea.Quit
	}

	return m, nil
}

func (m *Model) updateTool(msg ToolStatusMsg) {
	for i := range m.Tools {
		if m.Tools[i].Name != msg.Tool {
			continue
		}
		if msg.State == ToolActive && m.Tools[i].State != ToolActive {
			m.toolStartTime = time.Now()
		}
		m.Tools[i].State = msg.State
		m.Tools[i].Message = msg.Message
		return
	}
}

func (m *Model) updateETA() {
	completed := 0
	for _, tool := range m.Tools {
		if tool.State == ToolDone || tool.State == ToolSkipped || tool.State == ToolWarned {
			completed++
		}
	}
	m.EstimatedRemaining = benchmarks.EstimateRemaining(m.Stack, completed, time.Since(m.toolStartTime))
}

func tickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(time.Time) tea.Msg {
		return TickMsg{}
	})
}
