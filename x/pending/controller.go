package pending

import (
	"math"

	"github.com/cascade-one/cascade"
	"github.com/cascade-one/cascade/errors"
	"github.com/cascade-one/cascade/orm"
)

// FundsController is the subset of the funds extension functionality
// used to pay out claimed rewards.
type FundsController interface {
	MoveFunds(db cascade.KVStore, src, dest cascade.Address, amount uint64) error
}

// PaymentAccount returns the address of the escrow holding the funds
// backing all pending balances.
func PaymentAccount() cascade.Address {
	return cascade.NewCondition("pending", "escrow", []byte("payout")).Address()
}

// Controller maintains the pending balance ledger.
type Controller struct {
	bucket orm.ModelBucket
	funds  FundsController
}

// NewController returns a controller that keeps pending balances in
// the given bucket and pays claims through the funds controller.
func NewController(bucket orm.ModelBucket, funds FundsController) *Controller {
	return &Controller{
		bucket: bucket,
		funds:  funds,
	}
}

// Credit increases the pending balance of the given account. The
// caller is responsible for moving the matching funds into the
// payment escrow.
func (c *Controller) Credit(db cascade.KVStore, dest cascade.Address, amount uint64) error {
	if amount == 0 {
		return errors.Wrap(errors.ErrAmount, "credited amount must be positive")
	}
	var pb PendingBalance
	if err := c.bucket.One(db, dest, &pb); err != nil && !errors.ErrNotFound.Is(err) {
		return errors.Wrap(err, "cannot load pending balance")
	}
	if pb.Amount > math.MaxUint64-amount {
		return errors.Wrap(errors.ErrOverflow, "pending balance")
	}
	pb.Amount += amount
	return c.bucket.Put(db, dest, &pb)
}

// CreditFrom credits the destination account and moves the matching
// funds from the source account into the payment escrow.
func (c *Controller) CreditFrom(db cascade.KVStore, src, dest cascade.Address, amount uint64) error {
	if err := c.funds.MoveFunds(db, src, PaymentAccount(), amount); err != nil {
		return errors.Wrap(err, "cannot fund escrow")
	}
	return c.Credit(db, dest, amount)
}

// Pending returns the claimable balance of the given account. A
// missing ledger entry is a zero balance.
func (c *Controller) Pending(db cascade.ReadOnlyKVStore, dest cascade.Address) (uint64, error) {
	var pb PendingBalance
	switch err := c.bucket.One(db, dest, &pb); {
	case err == nil:
		return pb.Amount, nil
	case errors.ErrNotFound.Is(err):
		return 0, nil
	default:
		return 0, errors.Wrap(err, "cannot load pending balance")
	}
}

// Claim zeroes the pending balance of the beneficiary and pays the
// whole amount out of the payment escrow. The balance is zeroed
// before the transfer so the operation cannot pay twice.
func (c *Controller) Claim(db cascade.KVStore, beneficiary cascade.Address) (uint64, error) {
	var pb PendingBalance
	if err := c.bucket.One(db, beneficiary, &pb); err != nil {
		if errors.ErrNotFound.Is(err) {
			return 0, errors.Wrap(ErrNothingToClaim, "no pending balance")
		}
		return 0, errors.Wrap(err, "cannot load pending balance")
	}
	if pb.Amount == 0 {
		return 0, errors.Wrap(ErrNothingToClaim, "zero pending balance")
	}

	amount := pb.Amount
	pb.Amount = 0
	if err := c.bucket.Put(db, beneficiary, &pb); err != nil {
		return 0, errors.Wrap(err, "cannot zero pending balance")
	}
	if err := c.funds.MoveFunds(db, PaymentAccount(), beneficiary, amount); err != nil {
		return 0, errors.Wrap(err, "cannot pay out")
	}
	return amount, nil
}
