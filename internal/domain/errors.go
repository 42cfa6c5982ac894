package domain

import "errors"

// ErrInvariantViolation marks a defensive check that must never fire when the
// repair coordinator is implemented correctly. Callers should treat it as
// fatal rather than retry.
var ErrInvariantViolation = errors.New("repair invariant violation")

// ErrNothingToRepair is returned when repair is invoked without gate errors.
var ErrNothingToRepair = errors.New("nothing to repair: no gate errors supplied")
