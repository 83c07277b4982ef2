package utils

import (
	"github.com/cascade-one/cascade"
	"github.com/cascade-one/cascade/errors"
)

// Recovery is a decorator to recover from panics in transactions,
// so we can log them as errors
type Recovery struct{}

var _ cascade.Decorator = Recovery{}

// NewRecovery creates a Recovery decorator
func NewRecovery() Recovery {
	return Recovery{}
}

// Check turns panics into normal errors
func (r Recovery) Check(ctx cascade.Context, store cascade.KVStore, tx cascade.Tx, next cascade.Checker) (_ *cascade.CheckResult, err error) {
	defer errors.Recover(&err)
	return next.Check(ctx, store, tx)
}

// Deliver turns panics into normal errors
func (r Recovery) Deliver(ctx cascade.Context, store cascade.KVStore, tx cascade.Tx, next cascade.Deliverer) (_ *cascade.DeliverResult, err error) {
	defer errors.Recover(&err)
	return next.Deliver(ctx, store, tx)
}
