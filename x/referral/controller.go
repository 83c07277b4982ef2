package referral

import (
	"bytes"
	"math"

	"github.com/cascade-one/cascade"
	"github.com/cascade-one/cascade/errors"
	"github.com/cascade-one/cascade/gconf"
	"github.com/cascade-one/cascade/orm"
	"github.com/cascade-one/cascade/x/revenuepool"
)

const (
	// HoldersPool receives the holder bucket of every sale.
	HoldersPool = "holders"
	// PartnersPool receives the partner bucket of every sale.
	PartnersPool = "partners"
)

// OwnershipRegistry resolves a position into its controlling account.
// Implemented by the position extension.
type OwnershipRegistry interface {
	ControllerOf(db cascade.ReadOnlyKVStore, position []byte) (cascade.Address, error)
}

// RewardLedger is the subset of the pending extension functionality
// used to credit level rewards.
type RewardLedger interface {
	CreditFrom(db cascade.KVStore, src, dest cascade.Address, amount uint64) error
}

// RevenuePool is the subset of the revenuepool extension
// functionality used to fund the holder and partner pools.
type RevenuePool interface {
	Fund(db cascade.KVStore, pool string, amount uint64) error
	SetShares(db cascade.KVStore, pool string, key []byte, beneficiary cascade.Address, shares uint64) error
	Account(pool string) cascade.Address
}

// FundsController is the subset of the funds extension functionality
// used to move sale payments between escrows.
type FundsController interface {
	MoveFunds(db cascade.KVStore, src, dest cascade.Address, amount uint64) error
}

// LevelReward describes a single level payout of a distribution.
type LevelReward struct {
	Level    int
	Position []byte
	Account  cascade.Address
	Amount   uint64
}

// LevelForfeit describes a level payout that found no recipient and
// was routed to the treasury instead.
type LevelForfeit struct {
	Level  int
	Amount uint64
	Reason string
}

// Summary describes the outcome of a single distribution. Distributed
// and Remainder always sum exactly to the distributed amount.
type Summary struct {
	Amount      uint64
	Distributed uint64
	Remainder   uint64
	Rewards     []LevelReward
	Forfeited   []LevelForfeit
}

// Controller implements the sponsor graph and the reward
// distribution.
type Controller struct {
	sponsorships orm.ModelBucket
	partners     orm.ModelBucket
	positions    OwnershipRegistry
	ledger       RewardLedger
	pool         RevenuePool
	funds        FundsController
}

// NewController returns a controller wired to the position registry,
// the pending ledger, the revenue pools and the funds mover.
func NewController(positions OwnershipRegistry, ledger RewardLedger, pool RevenuePool, funds FundsController) *Controller {
	return &Controller{
		sponsorships: NewSponsorshipBucket(),
		partners:     NewPartnerBucket(),
		positions:    positions,
		ledger:       ledger,
		pool:         pool,
		funds:        funds,
	}
}

// Bind creates the sponsor edge for a position. The edge is terminal,
// a bound position can never be bound again. Binding fails if either
// position does not resolve to a controlling account, or if the edge
// would create a cycle within MaxDepth hops.
func (c *Controller) Bind(db cascade.KVStore, position, sponsor []byte) error {
	if len(position) == 0 || len(sponsor) == 0 {
		return errors.Wrap(errors.ErrEmpty, "position")
	}
	if bytes.Equal(position, sponsor) {
		return ErrSelfReferral
	}

	switch has, err := c.sponsorships.Has(db, position); {
	case err != nil:
		return errors.Wrap(err, "cannot check sponsorship")
	case has:
		return ErrAlreadyBound
	}

	if _, err := c.positions.ControllerOf(db, position); err != nil {
		if errors.ErrNotFound.Is(err) {
			return errors.Wrapf(ErrUnknownPosition, "position %x", position)
		}
		return errors.Wrap(err, "resolve position")
	}
	if _, err := c.positions.ControllerOf(db, sponsor); err != nil {
		if errors.ErrNotFound.Is(err) {
			return errors.Wrapf(ErrUnknownPosition, "sponsor %x", sponsor)
		}
		return errors.Wrap(err, "resolve sponsor")
	}

	// Walking up from the sponsor must not reach the position being
	// bound. The walk is bounded because every existing chain is.
	next := sponsor
	for i := 0; i < MaxDepth && next != nil; i++ {
		up, err := c.sponsorOf(db, next)
		if err != nil {
			return err
		}
		if bytes.Equal(up, position) {
			return ErrCycle
		}
		next = up
	}

	return c.sponsorships.Put(db, position, &Sponsorship{Sponsor: sponsor})
}

// sponsorOf returns the direct sponsor of a position, or nil when the
// position is a root.
func (c *Controller) sponsorOf(db cascade.ReadOnlyKVStore, position []byte) ([]byte, error) {
	var s Sponsorship
	switch err := c.sponsorships.One(db, position, &s); {
	case err == nil:
		return s.Sponsor, nil
	case errors.ErrNotFound.Is(err):
		return nil, nil
	default:
		return nil, errors.Wrap(err, "cannot load sponsorship")
	}
}

// UplineAt returns the ancestor position the given number of hops up,
// or nil when the chain ends first. Depth must be in [1, MaxDepth].
func (c *Controller) UplineAt(db cascade.ReadOnlyKVStore, position []byte, depth int) ([]byte, error) {
	if depth < 1 || depth > MaxDepth {
		return nil, errors.Wrapf(ErrInvalidDepth, "depth %d", depth)
	}
	current := position
	for i := 0; i < depth; i++ {
		if current == nil {
			return nil, nil
		}
		up, err := c.sponsorOf(db, current)
		if err != nil {
			return nil, err
		}
		current = up
	}
	return current, nil
}

// FullUpline returns all MaxDepth ancestors of a position in order,
// padded with nil entries once the chain ends.
func (c *Controller) FullUpline(db cascade.ReadOnlyKVStore, position []byte) ([][]byte, error) {
	upline := make([][]byte, MaxDepth)
	current := position
	for i := 0; i < MaxDepth; i++ {
		if current == nil {
			break
		}
		up, err := c.sponsorOf(db, current)
		if err != nil {
			return nil, err
		}
		upline[i] = up
		current = up
	}
	return upline, nil
}

// RecordAction increments the qualifying action count of an account.
// Once the count reaches the configured threshold the account becomes
// an active partner and its action count is mirrored as partner pool
// shares.
func (c *Controller) RecordAction(db cascade.KVStore, account cascade.Address) error {
	if err := account.Validate(); err != nil {
		return errors.Wrap(err, "account")
	}
	conf, err := loadConf(db)
	if err != nil {
		return err
	}

	var p Partner
	if err := c.partners.One(db, account, &p); err != nil && !errors.ErrNotFound.Is(err) {
		return errors.Wrap(err, "cannot load partner")
	}
	if p.Actions == math.MaxUint64 {
		return errors.Wrap(errors.ErrOverflow, "action count")
	}
	p.Actions++
	if err := c.partners.Put(db, account, &p); err != nil {
		return errors.Wrap(err, "cannot store partner")
	}

	if p.Actions >= conf.ActivityThreshold {
		if err := c.pool.SetShares(db, PartnersPool, account, account, p.Actions); err != nil {
			return errors.Wrap(err, "cannot update partner shares")
		}
	}
	return nil
}

// IsActivePartner returns true if the account has performed at least
// the configured number of qualifying actions.
func (c *Controller) IsActivePartner(db cascade.ReadOnlyKVStore, account cascade.Address) (bool, error) {
	conf, err := loadConf(db)
	if err != nil {
		return false, err
	}
	var p Partner
	switch err := c.partners.One(db, account, &p); {
	case err == nil:
		return p.Actions >= conf.ActivityThreshold, nil
	case errors.ErrNotFound.Is(err):
		return conf.ActivityThreshold == 0, nil
	default:
		return false, errors.Wrap(err, "cannot load partner")
	}
}

// Distribute walks the upline of the trigger position and pays each
// configured level weight of the amount to the nearest active
// partner. The amount must already be in the distribution escrow.
// Whatever cannot be assigned to a level, including all rounding
// rests, goes to the treasury. The returned summary always satisfies
// Distributed + Remainder == Amount.
func (c *Controller) Distribute(db cascade.KVStore, trigger []byte, amount uint64) (*Summary, error) {
	if amount == 0 {
		return nil, errors.Wrap(errors.ErrAmount, "nothing to distribute")
	}
	if amount > math.MaxUint64/maxBps {
		return nil, errors.Wrap(errors.ErrOverflow, "amount too big to distribute")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}

	if _, err := c.positions.ControllerOf(db, trigger); err != nil {
		if errors.ErrNotFound.Is(err) {
			return nil, errors.Wrapf(ErrUnknownPosition, "position %x", trigger)
		}
		return nil, errors.Wrap(err, "resolve position")
	}

	summary := Summary{Amount: amount}
	for level, weight := range conf.LevelBps {
		levelReward := amount * uint64(weight) / maxBps
		if levelReward == 0 {
			continue
		}
		candidate, err := c.UplineAt(db, trigger, level+1)
		if err != nil {
			return nil, err
		}
		if candidate == nil {
			// Broken chain. All remaining levels are forfeited.
			break
		}
		position, account, err := c.firstActive(db, candidate)
		if err != nil {
			return nil, err
		}
		if account == nil {
			summary.Forfeited = append(summary.Forfeited, LevelForfeit{
				Level:  level + 1,
				Amount: levelReward,
				Reason: "no active partner",
			})
			continue
		}
		if err := c.ledger.CreditFrom(db, DistributionAccount(), account, levelReward); err != nil {
			return nil, errors.Wrapf(err, "cannot credit level %d reward", level+1)
		}
		summary.Distributed += levelReward
		summary.Rewards = append(summary.Rewards, LevelReward{
			Level:    level + 1,
			Position: position,
			Account:  account,
			Amount:   levelReward,
		})
	}

	summary.Remainder = amount - summary.Distributed
	if summary.Remainder > 0 {
		if err := c.funds.MoveFunds(db, DistributionAccount(), conf.Treasury, summary.Remainder); err != nil {
			return nil, errors.Wrap(err, "cannot move remainder to treasury")
		}
	}
	return &summary, nil
}

// firstActive climbs from the candidate position until it finds one
// controlled by an active partner. A position that no longer resolves
// to an account is skipped the same way an inactive one is. Returns
// nils when the climb is exhausted or reaches a root.
func (c *Controller) firstActive(db cascade.ReadOnlyKVStore, candidate []byte) ([]byte, cascade.Address, error) {
	current := candidate
	for hop := 0; hop <= MaxClimb; hop++ {
		if current == nil {
			return nil, nil, nil
		}
		account, err := c.positions.ControllerOf(db, current)
		switch {
		case err == nil:
			active, err := c.IsActivePartner(db, account)
			if err != nil {
				return nil, nil, err
			}
			if active {
				return current, account, nil
			}
		case errors.ErrNotFound.Is(err):
			// Burned position, keep climbing.
		default:
			return nil, nil, errors.Wrap(err, "resolve candidate")
		}
		up, err := c.sponsorOf(db, current)
		if err != nil {
			return nil, nil, err
		}
		current = up
	}
	return nil, nil, nil
}

// ProcessSale splits a sale payment into the four configured buckets.
// The buyer pays into the distribution escrow, then the referral
// bucket is distributed along the upline of the sold position, the
// holder and partner buckets fund their pools and the treasury bucket
// goes to the treasury. A pool without shares cannot accept funding,
// its bucket falls back to the treasury.
func (c *Controller) ProcessSale(db cascade.KVStore, buyer cascade.Address, position []byte, amount uint64) error {
	if amount == 0 {
		return errors.Wrap(errors.ErrAmount, "nothing to process")
	}
	conf, err := loadConf(db)
	if err != nil {
		return err
	}

	if err := c.funds.MoveFunds(db, buyer, DistributionAccount(), amount); err != nil {
		return errors.Wrap(err, "cannot collect payment")
	}

	buckets, err := Split(amount, []uint32{conf.ReferralBps, conf.HoldersBps, conf.PartnersBps, conf.TreasuryBps})
	if err != nil {
		return err
	}
	referral, holders, partners, treasury := buckets[0], buckets[1], buckets[2], buckets[3]

	if referral > 0 {
		if _, err := c.Distribute(db, position, referral); err != nil {
			return errors.Wrap(err, "cannot distribute referral bucket")
		}
	}
	unassigned, err := c.fundPool(db, HoldersPool, holders)
	if err != nil {
		return errors.Wrap(err, "cannot fund holders pool")
	}
	treasury += unassigned
	unassigned, err = c.fundPool(db, PartnersPool, partners)
	if err != nil {
		return errors.Wrap(err, "cannot fund partners pool")
	}
	treasury += unassigned

	if treasury > 0 {
		if err := c.funds.MoveFunds(db, DistributionAccount(), conf.Treasury, treasury); err != nil {
			return errors.Wrap(err, "cannot move treasury bucket")
		}
	}
	return nil
}

// fundPool funds a revenue pool from the distribution escrow. A pool
// without shares cannot accept the reward, in that case the whole
// amount is returned so the caller can route it to the treasury.
func (c *Controller) fundPool(db cascade.KVStore, pool string, amount uint64) (uint64, error) {
	if amount == 0 {
		return 0, nil
	}
	if err := c.pool.Fund(db, pool, amount); err != nil {
		if revenuepool.ErrNoShares.Is(err) {
			return amount, nil
		}
		return 0, err
	}
	if err := c.funds.MoveFunds(db, DistributionAccount(), c.pool.Account(pool), amount); err != nil {
		return 0, err
	}
	return 0, nil
}

// loadConf returns the extension configuration. The configuration
// must be provided via the genesis.
func loadConf(db gconf.ReadStore) (Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, "referral", &conf); err != nil {
		return conf, errors.Wrap(err, "load configuration")
	}
	return conf, nil
}
