package funds

import (
	"github.com/cascade-one/cascade/orm"
)

var _ orm.Model = (*Wallet)(nil)

// Validate ensures the wallet is a valid entity. Any uint64 balance is
// acceptable, including zero.
func (w *Wallet) Validate() error {
	return nil
}

// NewWalletBucket returns a bucket for keeping wallets, keyed by the
// account address.
func NewWalletBucket() orm.ModelBucket {
	return orm.NewModelBucket("wallet", &Wallet{})
}
