package testing

import (
	"context"
	"fmt"
	"strings"

	"github.com/imamik/devsetup/internal/runner"
	"github.com/imamik/devsetup/internal/wizard"
)

// FakeRunner is a scripted runner.Runner that records every command instead
// of executing it. Results are keyed by the command's display string.
type FakeRunner struct {
	// Ran holds every command passed to Run, in order.
	Ran []runner.Command

	// Queried holds every command passed to Output, in order.
	Queried []runner.Command

	runErrs    map[string]error
	outputs    map[string]string
	outputErrs map[string]error
}

// NewFakeRunner returns a FakeRunner where every command succeeds and every
// query returns empty output.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{
		runErrs:    make(map[string]error),
		outputs:    make(map[string]string),
		outputErrs: make(map[string]error),
	}
}

// WithRunError scripts Run to fail for the given command string.
func (f *FakeRunner) WithRunError(command string, err error) *FakeRunner {
	f.runErrs[command] = err
	return f
}

// WithRunFailure scripts Run to fail with a CommandError carrying the given
// exit code.
func (f *FakeRunner) WithRunFailure(command string, exitCode int) *FakeRunner {
	f.runErrs[command] = &runner.CommandError{Command: command, ExitCode: exitCode}
	return f
}

// WithOutput scripts the query result for the given command string.
func (f *FakeRunner) WithOutput(command, output string) *FakeRunner {
	f.outputs[command] = output
	return f
}

// WithOutputError scripts Output to fail for the given command string.
func (f *FakeRunner) WithOutputError(command string, err error) *FakeRunner {
	f.outputErrs[command] = err
	return f
}

// Run records the command and returns its scripted error, if any.
func (f *FakeRunner) Run(_ context.Context, cmd runner.Command) error {
	f.Ran = append(f.Ran, cmd)
	if err, ok := f.runErrs[cmd.String()]; ok {
		return err
	}
	return nil
}

// Output records the query and returns its scripted result.
func (f *FakeRunner) Output(_ context.Context, cmd runner.Command) (string, error) {
	f.Queried = append(f.Queried, cmd)
	if err, ok := f.outputErrs[cmd.String()]; ok {
		return "", err
	}
	return f.outputs[cmd.String()], nil
}

// RanCommands returns the display strings of all executed commands, in order.
func (f *FakeRunner) RanCommands() []string {
	cmds := make([]string, 0, len(f.Ran))
	for _, c := range f.Ran {
		cmds = append(cmds, c.String())
	}
	return cmds
}

// DidRun reports whether any executed command contains the given substring.
func (f *FakeRunner) DidRun(substr string) bool {
	for _, c := range f.Ran {
		if strings.Contains(c.String(), substr) {
			return true
		}
	}
	return false
}

// ScriptedPrompter answers prompts from a fixed list, in order. It implements
// the wizard.Prompter contract: confirm answers are normalized the same way a
// line prompt normalizes them, and choice answers are returned raw so invalid
// selections reach the menu controller.
type ScriptedPrompter struct {
	// Questions records every prompt question asked, in order.
	Questions []string

	answers []string
	next    int
}

// NewScriptedPrompter returns a prompter that replays the given answers.
func NewScriptedPrompter(answers ...string) *ScriptedPrompter {
	return &ScriptedPrompter{answers: answers}
}

// Confirm pops the next answer and treats "y"/"yes" (any case) as true.
func (p *ScriptedPrompter) Confirm(_ context.Context, question string) (bool, error) {
	answer, err := p.pop(question)
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes", nil
}

// Choose pops the next answer and returns it unvalidated.
func (p *ScriptedPrompter) Choose(_ context.Context, question string, _ []wizard.Option) (string, error) {
	return p.pop(question)
}

func (p *ScriptedPrompter) pop(question string) (string, error) {
	p.Questions = append(p.Questions, question)
	if p.next >= len(p.answers) {
		return "", fmt.Errorf("no scripted answer for prompt %q", question)
	}
	answer := p.answers[p.next]
	p.next++
	return answer, nil
}
