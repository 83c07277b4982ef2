package funds

import (
	"github.com/cascade-one/cascade"
	"github.com/cascade-one/cascade/errors"
)

// Initializer fulfils the Initializer interface to load data from the
// genesis file.
type Initializer struct{}

var _ cascade.Initializer = (*Initializer)(nil)

// FromGenesis will parse initial account balances from genesis and
// save it in the database.
func (Initializer) FromGenesis(opts cascade.Options, db cascade.KVStore) error {
	var accounts []struct {
		Address cascade.Address `json:"address"`
		Balance uint64          `json:"balance"`
	}
	if err := opts.ReadOptions("funds", &accounts); err != nil {
		return errors.Wrap(err, "cannot load funds")
	}
	bucket := NewWalletBucket()
	for i, a := range accounts {
		if err := a.Address.Validate(); err != nil {
			return errors.Wrapf(err, "account #%d address", i)
		}
		w := Wallet{Balance: a.Balance}
		if err := bucket.Put(db, a.Address, &w); err != nil {
			return errors.Wrapf(err, "cannot store account #%d wallet", i)
		}
	}
	return nil
}
