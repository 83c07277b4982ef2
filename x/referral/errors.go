package referral

import (
	"github.com/cascade-one/cascade/errors"
)

var (
	// ErrAlreadyBound is returned when binding a position that already
	// has a sponsor. The sponsor edge is terminal.
	ErrAlreadyBound = errors.Register(1200, "sponsor already bound")

	// ErrSelfReferral is returned when a position is bound to itself.
	ErrSelfReferral = errors.Register(1201, "cannot sponsor itself")

	// ErrCycle is returned when a binding would create a sponsorship
	// loop.
	ErrCycle = errors.Register(1202, "sponsorship cycle")

	// ErrInvalidDepth is returned for upline queries outside of the
	// supported depth range.
	ErrInvalidDepth = errors.Register(1203, "invalid upline depth")

	// ErrUnknownPosition is returned when a binding references a
	// position that does not resolve to a controlling account.
	ErrUnknownPosition = errors.Register(1204, "unknown position")

	// ErrInvalidWeights is returned when split weights do not sum to
	// the full range of basis points.
	ErrInvalidWeights = errors.Register(1205, "invalid distribution weights")
)
