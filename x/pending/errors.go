package pending

import (
	"github.com/cascade-one/cascade/errors"
)

var (
	// ErrNothingToClaim is returned when claiming an account with a zero
	// pending balance.
	ErrNothingToClaim = errors.Register(1220, "nothing to claim")
)
