package tui

import (
	"fmt"
	"strings"
	"time"
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("devsetup") + "  " + subtitleStyle.Render(m.Stack.Name))
	b.WriteString("\n")
	if m.Stack.Description != "" {
		b.WriteString(subtitleStyle.Render(m.Stack.Description))
		b.WriteString("\n")
	}

	b.WriteString(sectionStyle.Render("Tools"))
	b.WriteString("\n")
	for _, tool := range m.Tools {
		b.WriteString(m.renderTool(tool))
		b.WriteString("\n")
	}

	if len(m.Hooks) > 0 {
		b.WriteString(sectionStyle.Render("Shell profile"))
		b.WriteString("\n")
		for _, hook := range m.Hooks {
			b.WriteString("  " + dimStyle.Render(hook))
			b.WriteString("\n")
		}
	}

	if len(m.Notes) > 0 {
		b.WriteString(sectionStyle.Render("Notes"))
		b.WriteString("\n")
		for _, note := range m.Notes {
			b.WriteString("  " + note)
			b.WriteString("\n")
		}
	}

	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderTool(tool ToolItem) string {
	label := fmt.Sprintf("%s %s", tool.Name, dimStyle.Render("("+tool.Method+")"))

	switch tool.State {
	case ToolDone:
		return fmt.Sprintf("  %s %s", doneStyle.Render(checkMark), label)
	case ToolSkipped:
		return fmt.Sprintf("  %s %s %s", dimStyle.Render(skipMark), label, dimStyle.Render(tool.Message))
	case ToolWarned:
		return fmt.Sprintf("  %s %s %s", warningStyle.Render(warnMark), label, warningStyle.Render(tool.Message))
	case ToolActive:
		frame := spinnerFrames[m.SpinnerFrame%len(spinnerFrames)]
		return fmt.Sprintf("  %s %s", activeStyle.Render(frame), activeStyle.Render(label))
	default:
		return fmt.Sprintf("  %s %s", dimStyle.Render(pending), dimStyle.Render(label))
	}
}

func (m Model) renderFooter() string {
	switch {
	case m.Err != nil:
		return footerStyle.Render(failedStyle.Render(crossMark) + " " + m.Err.Error())
	case m.Done:
		return footerStyle.Render(doneStyle.Render(checkMark) + fmt.Sprintf(" done in %v", time.Since(m.StartTime).Round(time.Second)))
	default:
		eta := m.EstimatedRemaining.Round(time.Second)
		return footerStyle.Render(fmt.Sprintf("elapsed %v  -  about %v remaining  -  q to quit",
			time.Since(m.StartTime).Round(time.Second), eta))
	}
}
