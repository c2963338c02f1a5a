package stages

import (
	"fmt"

	"github.com/imamik/devsetup/internal/provision"
)

// PowerCheck is the confirmation gate before any long-running install. The
// stack downloads are large; losing power mid-install leaves a half-written
// package database to clean up by hand.
type PowerCheck struct{}

// Name implements provision.Stage.
func (PowerCheck) Name() string { return "power check" }

// Provision asks for confirmation. Anything but an affirmative answer halts
// the whole workflow before any installer is invoked.
func (PowerCheck) Provision(ctx *provision.Context) error {
	ok, err := ctx.Prompter.Confirm(ctx, "Is this Mac connected to power?")
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: connect the machine to power first; the install downloads several gigabytes and should not be interrupted", provision.ErrUserDeclined)
	}

	ctx.State.Run = provision.StatePowerConfirmed
	return nil
}
