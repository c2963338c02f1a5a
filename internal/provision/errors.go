package provision

import "errors"

// ErrUserDeclined reports a negative answer to a confirmation gate (the
// power check, or the toolchain-install confirmation). Declining halts the
// workflow with a nonzero exit; it is a deliberate stop, not a malfunction.
var ErrUserDeclined = errors.New("declined by user")
