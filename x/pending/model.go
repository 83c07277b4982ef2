package pending

import (
	"github.com/cascade-one/cascade/orm"
)

var _ orm.Model = (*PendingBalance)(nil)

// Validate ensures the pending balance is a valid entity.
func (pb *PendingBalance) Validate() error {
	return nil
}

// NewPendingBucket returns a bucket for keeping pending balances,
// keyed by the beneficiary address.
func NewPendingBucket() orm.ModelBucket {
	return orm.NewModelBucket("pending", &PendingBalance{})
}
