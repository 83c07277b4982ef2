package funds

import (
	"github.com/cascade-one/cascade/errors"
)

var (
	// ErrInsufficientFunds is returned when the source wallet does not
	// hold enough to cover a transfer.
	ErrInsufficientFunds = errors.Register(1230, "insufficient funds")
)
