package wizard

import "errors"

// Selection errors for the interactive menus.
var (
	// ErrInvalidSelection reports menu input outside the offered choices.
	// The workflow halts on it; there is no correction prompt.
	ErrInvalidSelection = errors.New("invalid selection")
)
