package revenuepool

import (
	"github.com/cascade-one/cascade/errors"
)

var (
	// ErrNoShares is returned when funding a pool that has no shares to
	// distribute the reward over.
	ErrNoShares = errors.Register(1210, "no shares in the pool")
)
