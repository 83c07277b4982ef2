package revenuepool

import (
	"math/big"

	"github.com/cascade-one/cascade"
	"github.com/cascade-one/cascade/errors"
	"github.com/cascade-one/cascade/orm"
)

// accScale is the fixed point precision of the accumulated reward per
// share counter.
var accScale = big.NewInt(1e18)

// RewardLedger is the subset of the pending extension functionality
// used to settle accrued rewards.
type RewardLedger interface {
	CreditFrom(db cascade.KVStore, src, dest cascade.Address, amount uint64) error
}

// Controller maintains the pool and member state. All reward math is
// done on big integers so the scaled accumulator cannot overflow.
type Controller struct {
	pools   orm.ModelBucket
	members orm.ModelBucket
	ledger  RewardLedger
}

// NewController returns a controller that keeps pool state in the
// given buckets and settles rewards through the ledger.
func NewController(pools, members orm.ModelBucket, ledger RewardLedger) *Controller {
	return &Controller{
		pools:   pools,
		members: members,
		ledger:  ledger,
	}
}

// Fund distributes a reward over all current pool members by raising
// the accumulated reward per share counter. Funding a pool without
// any shares fails, because no member could ever receive the reward.
// The caller is responsible for moving the reward funds into the pool
// escrow account.
func (c *Controller) Fund(db cascade.KVStore, pool string, amount uint64) error {
	if !isPoolName(pool) {
		return errors.Wrapf(errors.ErrInput, "invalid pool name %q", pool)
	}
	if amount == 0 {
		return errors.Wrap(errors.ErrAmount, "funded amount must be positive")
	}

	var p Pool
	if err := c.pools.One(db, []byte(pool), &p); err != nil {
		if errors.ErrNotFound.Is(err) {
			return errors.Wrap(ErrNoShares, "pool does not exist")
		}
		return errors.Wrap(err, "cannot load pool")
	}
	if p.TotalShares == 0 {
		return ErrNoShares
	}

	// acc += amount * scale / totalShares
	delta := new(big.Int).SetUint64(amount)
	delta.Mul(delta, accScale)
	delta.Quo(delta, new(big.Int).SetUint64(p.TotalShares))
	p.SetAcc(new(big.Int).Add(p.Acc(), delta))

	return c.pools.Put(db, []byte(pool), &p)
}

// SetShares adjusts the share count of a single member. Any reward
// accrued under the old share count is settled to the old beneficiary
// first, so the adjustment cannot change what was already earned.
// Setting the share count to zero removes the member.
func (c *Controller) SetShares(db cascade.KVStore, pool string, key []byte, beneficiary cascade.Address, shares uint64) error {
	if !isPoolName(pool) {
		return errors.Wrapf(errors.ErrInput, "invalid pool name %q", pool)
	}
	if len(key) == 0 {
		return errors.Wrap(errors.ErrEmpty, "member key")
	}
	if shares > 0 {
		if err := beneficiary.Validate(); err != nil {
			return errors.Wrap(err, "beneficiary")
		}
	}

	var p Pool
	if err := c.pools.One(db, []byte(pool), &p); err != nil && !errors.ErrNotFound.Is(err) {
		return errors.Wrap(err, "cannot load pool")
	}

	var m Member
	exists := true
	if err := c.members.One(db, memberKey(pool, key), &m); err != nil {
		if !errors.ErrNotFound.Is(err) {
			return errors.Wrap(err, "cannot load member")
		}
		exists = false
	}

	if exists {
		if _, err := c.settle(db, pool, &p, &m); err != nil {
			return errors.Wrap(err, "cannot settle member")
		}
	}

	p.TotalShares = p.TotalShares - m.Shares + shares
	if err := c.pools.Put(db, []byte(pool), &p); err != nil {
		return errors.Wrap(err, "cannot store pool")
	}

	if shares == 0 {
		if !exists {
			return nil
		}
		return c.members.Delete(db, memberKey(pool, key))
	}

	debt, err := grossReward(&p, shares)
	if err != nil {
		return err
	}
	m.Shares = shares
	m.Beneficiary = beneficiary
	m.RewardDebt = debt
	return c.members.Put(db, memberKey(pool, key), &m)
}

// Harvest settles the reward accrued by a member into the pending
// ledger. It returns the settled amount, which can be zero.
func (c *Controller) Harvest(db cascade.KVStore, pool string, key []byte) (uint64, error) {
	var p Pool
	if err := c.pools.One(db, []byte(pool), &p); err != nil {
		return 0, errors.Wrap(err, "cannot load pool")
	}
	var m Member
	if err := c.members.One(db, memberKey(pool, key), &m); err != nil {
		return 0, errors.Wrap(err, "cannot load member")
	}
	accrued, err := c.settle(db, pool, &p, &m)
	if err != nil {
		return 0, err
	}
	if err := c.members.Put(db, memberKey(pool, key), &m); err != nil {
		return 0, errors.Wrap(err, "cannot store member")
	}
	return accrued, nil
}

// SettleAndRekey settles the accrued reward to the current
// beneficiary and assigns a new one. Use this when the ownership of a
// member key changes, so that the reward earned so far stays with the
// previous owner.
func (c *Controller) SettleAndRekey(db cascade.KVStore, pool string, key []byte, beneficiary cascade.Address) error {
	if err := beneficiary.Validate(); err != nil {
		return errors.Wrap(err, "beneficiary")
	}
	var p Pool
	if err := c.pools.One(db, []byte(pool), &p); err != nil {
		return errors.Wrap(err, "cannot load pool")
	}
	var m Member
	if err := c.members.One(db, memberKey(pool, key), &m); err != nil {
		return errors.Wrap(err, "cannot load member")
	}
	if _, err := c.settle(db, pool, &p, &m); err != nil {
		return err
	}
	m.Beneficiary = beneficiary
	return c.members.Put(db, memberKey(pool, key), &m)
}

// Account returns the escrow address of a pool.
func (c *Controller) Account(pool string) cascade.Address {
	return PoolAccount(pool)
}

// Member returns the state of a single pool member.
func (c *Controller) Member(db cascade.ReadOnlyKVStore, pool string, key []byte) (*Member, error) {
	var m Member
	if err := c.members.One(db, memberKey(pool, key), &m); err != nil {
		return nil, errors.Wrap(err, "cannot load member")
	}
	return &m, nil
}

// PendingReward returns the reward accrued by a member since the last
// settlement, without settling it.
func (c *Controller) PendingReward(db cascade.ReadOnlyKVStore, pool string, key []byte) (uint64, error) {
	var p Pool
	if err := c.pools.One(db, []byte(pool), &p); err != nil {
		return 0, errors.Wrap(err, "cannot load pool")
	}
	var m Member
	if err := c.members.One(db, memberKey(pool, key), &m); err != nil {
		return 0, errors.Wrap(err, "cannot load member")
	}
	return accruedReward(&p, &m)
}

// settle credits the accrued reward to the member beneficiary and
// resets the reward debt. The member is not stored, the caller must
// do that after mutating it further.
func (c *Controller) settle(db cascade.KVStore, pool string, p *Pool, m *Member) (uint64, error) {
	accrued, err := accruedReward(p, m)
	if err != nil {
		return 0, err
	}
	if accrued > 0 {
		if err := c.ledger.CreditFrom(db, PoolAccount(pool), m.Beneficiary, accrued); err != nil {
			return 0, errors.Wrap(err, "cannot credit reward")
		}
	}
	debt, err := grossReward(p, m.Shares)
	if err != nil {
		return 0, err
	}
	m.RewardDebt = debt
	return accrued, nil
}

// grossReward returns shares * acc / scale, the total reward assigned
// to this share count over the pool lifetime.
func grossReward(p *Pool, shares uint64) (uint64, error) {
	gross := new(big.Int).SetUint64(shares)
	gross.Mul(gross, p.Acc())
	gross.Quo(gross, accScale)
	if !gross.IsUint64() {
		return 0, errors.Wrap(errors.ErrOverflow, "gross reward")
	}
	return gross.Uint64(), nil
}

// accruedReward returns the reward earned since the last settlement.
func accruedReward(p *Pool, m *Member) (uint64, error) {
	gross, err := grossReward(p, m.Shares)
	if err != nil {
		return 0, err
	}
	if gross < m.RewardDebt {
		return 0, errors.Wrap(errors.ErrState, "reward debt above gross reward")
	}
	return gross - m.RewardDebt, nil
}
