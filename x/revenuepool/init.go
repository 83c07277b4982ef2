package revenuepool

import (
	"github.com/cascade-one/cascade"
	"github.com/cascade-one/cascade/gconf"
)

// Initializer fulfils the Initializer interface to load data from the
// genesis file.
type Initializer struct{}

var _ cascade.Initializer = (*Initializer)(nil)

// FromGenesis will parse initial configuration from genesis and save
// it in the database.
func (Initializer) FromGenesis(opts cascade.Options, db cascade.KVStore) error {
	return gconf.InitConfig(db, opts, "revenuepool", &Configuration{})
}
