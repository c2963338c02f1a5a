package wizard

import (
	"context"
	"fmt"
	"strings"

	"github.com/imamik/devsetup/internal/catalog"
)

// stackChoice maps one menu key to a stack, or to a nested sub-menu.
type stackChoice struct {
	Option
	Stack   catalog.StackID
	Submenu *menu
}

// menu is a static choice table. Resolution is a lookup, never inference.
type menu struct {
	Question string
	Choices  []stackChoice
}

// topLevelMenu is the fixed top-level stack selection.
var topLevelMenu = menu{
	Question: "What do you want to set this machine up for?",
	Choices: []stackChoice{
		{
			Option: Option{Key: "1", Label: "Academic Writing", Description: "Pandoc, LaTeX, Zotero, Obsidian"},
			Stack:  catalog.StackAcademic,
		},
		{
			Option: Option{Key: "2", Label: "Data Science", Description: "Miniconda, Jupyter, the scientific Python stack"},
			Stack:  catalog.StackDataScience,
		},
		{
			Option:  Option{Key: "3", Label: "Web Development", Description: "Python or JavaScript toolchain"},
			Submenu: &webDevMenu,
		},
	},
}

// webDevMenu is the nested Web Development language selection.
var webDevMenu = menu{
	Question: "Which web stack?",
	Choices: []stackChoice{
		{
			Option: Option{Key: "a", Label: "Python", Description: "pyenv, Flask, Django"},
			Stack:  catalog.StackWebPython,
		},
		{
			Option: Option{Key: "b", Label: "JavaScript", Description: "nvm, Node.js, TypeScript"},
			Stack:  catalog.StackWebJS,
		},
	},
}

// SelectStack runs the menu flow and returns the chosen stack. An
// unrecognized key at either level returns ErrInvalidSelection wrapped with
// the offending input; there is no retry and no default.
func SelectStack(ctx context.Context, p Prompter) (catalog.StackID, error) {
	return selectFrom(ctx, p, topLevelMenu)
}

func selectFrom(ctx context.Context, p Prompter, m menu) (catalog.StackID, error) {
	options := make([]Option, 0, len(m.Choices))
	for _, c := range m.Choices {
		options = append(options, c.Option)
	}

	key, err := p.Choose(ctx, m.Question, options)
	if err != nil {
		return "", err
	}

	choice, ok := m.resolve(key)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidSelection, key)
	}

	if choice.Submenu != nil {
		return selectFrom(ctx, p, *choice.Submenu)
	}
	return choice.Stack, nil
}

// resolve looks up a key case-insensitively.
func (m menu) resolve(key string) (stackChoice, bool) {
	key = strings.ToLower(strings.TrimSpace(key))
	for _, c := range m.Choices {
		if c.Key == key {
			return c, true
		}
	}
	return stackChoice{}, false
}
