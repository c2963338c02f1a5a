// Package wizard implements the interactive prompts and menus of the
// installer.
//
// Prompting is an injected capability: the orchestrator talks to a Prompter
// and never reads stdin directly, so tests (and non-TTY runs) substitute a
// scripted or line-based prompter for the form UI.
package wizard

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"
)

// Option is one selectable menu entry.
type Option struct {
	Key         string
	Label       string
	Description string
}

// Prompter asks the user questions and returns their answers. Choose returns
// the raw key entered so invalid selections reach the menu controller, which
// owns the failure policy.
type Prompter interface {
	// Confirm asks a yes/no question. Only an affirmative answer returns
	// true; the zero value is "no".
	Confirm(ctx context.Context, question string) (bool, error)

	// Choose presents options and returns the selected key.
	Choose(ctx context.Context, question string, options []Option) (string, error)
}

// LinePrompter reads one line per prompt from an io.Reader. It is used on
// non-TTY input, under --plain, and in tests; answers come back raw.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter creates a prompter over the given streams.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

// Confirm implements Prompter.
func (p *LinePrompter) Confirm(_ context.Context, question string) (bool, error) {
	fmt.Fprintf(p.out, "%s [y/n]: ", question)
	answer, err := p.readLine()
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes", nil
}

// Choose implements Prompter. The enumerated options are printed before
// reading; the entered key is returned unvalidated.
func (p *LinePrompter) Choose(_ context.Context, question string, options []Option) (string, error) {
	fmt.Fprintf(p.out, "%s\n", question)
	for _, opt := range options {
		if opt.Description != "" {
			fmt.Fprintf(p.out, "  %s) %s - %s\n", opt.Key, opt.Label, opt.Description)
		} else {
			fmt.Fprintf(p.out, "  %s) %s\n", opt.Key, opt.Label)
		}
	}
	fmt.Fprint(p.out, "> ")
	return p.readLine()
}

func (p *LinePrompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// FormPrompter renders prompts as huh forms on an interactive terminal.
// A form select cannot produce an out-of-range key, so the invalid-selection
// path only exists for line input.
type FormPrompter struct{}

// NewFormPrompter creates a form-based prompter.
func NewFormPrompter() *FormPrompter {
	return &FormPrompter{}
}

// Confirm implements Prompter.
func (p *FormPrompter) Confirm(ctx context.Context, question string) (bool, error) {
	var answer bool
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(question).
				Affirmative("Yes").
				Negative("No").
				Value(&answer),
		),
	).RunWithContext(ctx)
	if err != nil {
		return false, err
	}
	return answer, nil
}

// Choose implements Prompter.
func (p *FormPrompter) Choose(ctx context.Context, question string, options []Option) (string, error) {
	huhOptions := make([]huh.Option[string], 0, len(options))
	for _, opt := range options {
		label := opt.Label
		if opt.Description != "" {
			label = fmt.Sprintf("%s - %s", opt.Label, opt.Description)
		}
		huhOptions = append(huhOptions, huh.NewOption(label, opt.Key))
	}

	var key string
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(question).
				Options(huhOptions...).
				Value(&key),
		),
	).RunWithContext(ctx)
	if err != nil {
		return "", err
	}
	return key, nil
}
