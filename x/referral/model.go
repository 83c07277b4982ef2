package referral

import (
	"github.com/cascade-one/cascade"
	"github.com/cascade-one/cascade/errors"
	"github.com/cascade-one/cascade/gconf"
	"github.com/cascade-one/cascade/orm"
)

const (
	// MaxDepth is the number of upline levels a position can have.
	MaxDepth = 7

	// MaxClimb is the number of additional hops past an inactive
	// ancestor when looking for a qualifying reward receiver.
	MaxClimb = 10
)

var _ orm.Model = (*Sponsorship)(nil)

// Validate ensures the sponsorship is a valid entity.
func (s *Sponsorship) Validate() error {
	if len(s.Sponsor) == 0 {
		return errors.Wrap(errors.ErrEmpty, "sponsor")
	}
	return nil
}

var _ orm.Model = (*Partner)(nil)

// Validate ensures the partner is a valid entity.
func (p *Partner) Validate() error {
	return nil
}

var _ gconf.OwnedConfig = (*Configuration)(nil)

// Validate makes sure the configuration is sensible.
func (c *Configuration) Validate() error {
	if err := c.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	if err := c.Authority.Validate(); err != nil {
		return errors.Wrap(err, "authority")
	}
	if err := c.Treasury.Validate(); err != nil {
		return errors.Wrap(err, "treasury")
	}
	sum := uint64(c.ReferralBps) + uint64(c.HoldersBps) + uint64(c.PartnersBps) + uint64(c.TreasuryBps)
	if sum != maxBps {
		return errors.Wrapf(ErrInvalidWeights, "bucket weights sum to %d", sum)
	}
	if len(c.LevelBps) == 0 || len(c.LevelBps) > MaxDepth {
		return errors.Wrapf(ErrInvalidWeights, "%d level weights", len(c.LevelBps))
	}
	var levelSum uint64
	for _, w := range c.LevelBps {
		levelSum += uint64(w)
	}
	if levelSum > maxBps {
		return errors.Wrapf(ErrInvalidWeights, "level weights sum to %d", levelSum)
	}
	return nil
}

// NewSponsorshipBucket returns a bucket for keeping sponsor edges,
// keyed by the referred position ID.
func NewSponsorshipBucket() orm.ModelBucket {
	return orm.NewModelBucket("sponsor", &Sponsorship{})
}

// NewPartnerBucket returns a bucket for keeping partner action counts,
// keyed by the account address.
func NewPartnerBucket() orm.ModelBucket {
	return orm.NewModelBucket("partner", &Partner{})
}

// DistributionAccount returns the address of the escrow holding sale
// payments while they are being distributed.
func DistributionAccount() cascade.Address {
	return cascade.NewCondition("referral", "escrow", []byte("sales")).Address()
}
