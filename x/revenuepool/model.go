package revenuepool

import (
	"math/big"
	"regexp"

	"github.com/cascade-one/cascade"
	"github.com/cascade-one/cascade/errors"
	"github.com/cascade-one/cascade/gconf"
	"github.com/cascade-one/cascade/orm"
)

// isPoolName restricts pool names so they can be embedded in store
// keys and escrow conditions.
var isPoolName = regexp.MustCompile(`^[a-z0-9_\-]{3,10}$`).MatchString

var _ orm.Model = (*Pool)(nil)

// Validate ensures the pool is a valid entity.
func (p *Pool) Validate() error {
	return nil
}

// Acc returns the accumulated reward per share, scaled by 1e18.
func (p *Pool) Acc() *big.Int {
	return new(big.Int).SetBytes(p.AccPerShare)
}

// SetAcc stores the accumulated reward per share counter.
func (p *Pool) SetAcc(acc *big.Int) {
	p.AccPerShare = acc.Bytes()
}

var _ orm.Model = (*Member)(nil)

// Validate ensures the member is a valid entity.
func (m *Member) Validate() error {
	if err := m.Beneficiary.Validate(); err != nil {
		return errors.Wrap(err, "beneficiary")
	}
	return nil
}

var _ gconf.OwnedConfig = (*Configuration)(nil)

// Validate makes sure the configuration is sensible.
func (c *Configuration) Validate() error {
	if err := c.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	if err := c.Admin.Validate(); err != nil {
		return errors.Wrap(err, "admin")
	}
	return nil
}

// NewPoolBucket returns a bucket for keeping pool state, keyed by the
// pool name.
func NewPoolBucket() orm.ModelBucket {
	return orm.NewModelBucket("pool", &Pool{})
}

// NewMemberBucket returns a bucket for keeping pool members, keyed by
// the pool name and the member key.
func NewMemberBucket() orm.ModelBucket {
	return orm.NewModelBucket("member", &Member{})
}

// memberKey builds the member bucket primary key.
func memberKey(pool string, key []byte) []byte {
	return append([]byte(pool+"/"), key...)
}

// PoolAccount returns the address of the escrow holding rewards
// funded into the pool but not yet settled to its members.
func PoolAccount(pool string) cascade.Address {
	return cascade.NewCondition("rpool", "escrow", []byte(pool)).Address()
}
