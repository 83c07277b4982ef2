package funds

import (
	"math"

	"github.com/cascade-one/cascade"
	"github.com/cascade-one/cascade/errors"
	"github.com/cascade-one/cascade/orm"
)

// Controller provides the balance operations on top of the wallet
// bucket. Other extensions use it instead of accessing the bucket
// directly.
type Controller struct {
	bucket orm.ModelBucket
}

// NewController returns a controller using the given bucket to store
// wallet state.
func NewController(bucket orm.ModelBucket) *Controller {
	return &Controller{bucket: bucket}
}

// Balance returns the amount held by the given account. A missing
// wallet is a zero balance, not an error.
func (c *Controller) Balance(db cascade.ReadOnlyKVStore, src cascade.Address) (uint64, error) {
	var w Wallet
	switch err := c.bucket.One(db, src, &w); {
	case err == nil:
		return w.Balance, nil
	case errors.ErrNotFound.Is(err):
		return 0, nil
	default:
		return 0, errors.Wrap(err, "cannot load wallet")
	}
}

// MoveFunds transfers the amount from the source wallet to the
// destination wallet.
func (c *Controller) MoveFunds(db cascade.KVStore, src, dest cascade.Address, amount uint64) error {
	if amount == 0 {
		return errors.Wrap(errors.ErrAmount, "transfer amount must be positive")
	}

	var source Wallet
	if err := c.bucket.One(db, src, &source); err != nil {
		if errors.ErrNotFound.Is(err) {
			return errors.Wrap(ErrInsufficientFunds, "no source wallet")
		}
		return errors.Wrap(err, "cannot load source wallet")
	}
	if source.Balance < amount {
		return errors.Wrapf(ErrInsufficientFunds, "balance %d, needed %d", source.Balance, amount)
	}

	var destination Wallet
	if err := c.bucket.One(db, dest, &destination); err != nil && !errors.ErrNotFound.Is(err) {
		return errors.Wrap(err, "cannot load destination wallet")
	}
	if destination.Balance > math.MaxUint64-amount {
		return errors.Wrap(errors.ErrOverflow, "destination balance")
	}

	source.Balance -= amount
	destination.Balance += amount

	if err := c.bucket.Put(db, src, &source); err != nil {
		return errors.Wrap(err, "cannot store source wallet")
	}
	if err := c.bucket.Put(db, dest, &destination); err != nil {
		return errors.Wrap(err, "cannot store destination wallet")
	}
	return nil
}

// IssueFunds mints the amount into the destination wallet. This is
// used by the genesis initializer and by tests.
func (c *Controller) IssueFunds(db cascade.KVStore, dest cascade.Address, amount uint64) error {
	if amount == 0 {
		return errors.Wrap(errors.ErrAmount, "issued amount must be positive")
	}
	var w Wallet
	if err := c.bucket.One(db, dest, &w); err != nil && !errors.ErrNotFound.Is(err) {
		return errors.Wrap(err, "cannot load wallet")
	}
	if w.Balance > math.MaxUint64-amount {
		return errors.Wrap(errors.ErrOverflow, "wallet balance")
	}
	w.Balance += amount
	return c.bucket.Put(db, dest, &w)
}
