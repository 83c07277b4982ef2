package position

import (
	"github.com/cascade-one/cascade"
	"github.com/cascade-one/cascade/errors"
	"github.com/cascade-one/cascade/x"
)

const (
	issueCost    = 500
	transferCost = 200
	burnCost     = 200
)

// HoldersPool is the name of the revenue pool that distributes to
// position holders.
const HoldersPool = "holders"

// SponsorBinder is the subset of the referral extension functionality
// used when issuing a position.
type SponsorBinder interface {
	Bind(db cascade.KVStore, position, sponsor []byte) error
	RecordAction(db cascade.KVStore, account cascade.Address) error
}

// Distributor pushes a position sale payment through the reward
// split. Implemented by the referral extension.
type Distributor interface {
	ProcessSale(db cascade.KVStore, buyer cascade.Address, position []byte, amount uint64) error
}

// SharePool is the subset of the revenuepool extension functionality
// used to keep holder shares in sync with position state.
type SharePool interface {
	SetShares(db cascade.KVStore, pool string, key []byte, beneficiary cascade.Address, shares uint64) error
	SettleAndRekey(db cascade.KVStore, pool string, key []byte, beneficiary cascade.Address) error
}

// RegisterRoutes registers handlers for position message processing.
func RegisterRoutes(r cascade.Registry, auth x.Authenticator, ctrl *Controller, binder SponsorBinder, dist Distributor, pool SharePool) {
	r.Handle("position/issue", &issueHandler{
		auth:   auth,
		ctrl:   ctrl,
		binder: binder,
		dist:   dist,
		pool:   pool,
	})
	r.Handle("position/transfer", &transferHandler{
		auth: auth,
		ctrl: ctrl,
		pool: pool,
	})
	r.Handle("position/burn", &burnHandler{
		auth: auth,
		ctrl: ctrl,
		pool: pool,
	})
}

type issueHandler struct {
	auth   x.Authenticator
	ctrl   *Controller
	binder SponsorBinder
	dist   Distributor
	pool   SharePool
}

var _ cascade.Handler = (*issueHandler)(nil)

func (h *issueHandler) Check(ctx cascade.Context, db cascade.KVStore, tx cascade.Tx) (*cascade.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &cascade.CheckResult{GasAllocated: issueCost}, nil
}

func (h *issueHandler) Deliver(ctx cascade.Context, db cascade.KVStore, tx cascade.Tx) (*cascade.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	id, err := h.ctrl.Create(db, msg.Owner)
	if err != nil {
		return nil, err
	}
	// The sponsor edge must exist before the sale is processed, so
	// the reward walk can already climb it.
	if len(msg.Sponsor) != 0 {
		if err := h.binder.Bind(db, id, msg.Sponsor); err != nil {
			return nil, errors.Wrap(err, "bind sponsor")
		}
	}
	if err := h.binder.RecordAction(db, msg.Owner); err != nil {
		return nil, errors.Wrap(err, "record action")
	}
	if err := h.pool.SetShares(db, HoldersPool, id, msg.Owner, msg.Shares); err != nil {
		return nil, errors.Wrap(err, "set holder shares")
	}
	if err := h.dist.ProcessSale(db, msg.Owner, id, msg.Price); err != nil {
		return nil, errors.Wrap(err, "process sale")
	}
	return &cascade.DeliverResult{Data: id}, nil
}

func (h *issueHandler) validate(ctx cascade.Context, db cascade.KVStore, tx cascade.Tx) (*IssueMsg, error) {
	var msg IssueMsg
	if err := cascade.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Owner) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "owner signature missing")
	}
	return &msg, nil
}

type transferHandler struct {
	auth x.Authenticator
	ctrl *Controller
	pool SharePool
}

var _ cascade.Handler = (*transferHandler)(nil)

func (h *transferHandler) Check(ctx cascade.Context, db cascade.KVStore, tx cascade.Tx) (*cascade.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &cascade.CheckResult{GasAllocated: transferCost}, nil
}

func (h *transferHandler) Deliver(ctx cascade.Context, db cascade.KVStore, tx cascade.Tx) (*cascade.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	// Settle the reward accrued so far to the previous owner before
	// the shares start earning for the new one.
	if err := h.pool.SettleAndRekey(db, HoldersPool, msg.PositionID, msg.NewOwner); err != nil {
		return nil, errors.Wrap(err, "rekey holder shares")
	}
	if err := h.ctrl.Transfer(db, msg.PositionID, msg.NewOwner); err != nil {
		return nil, err
	}
	return &cascade.DeliverResult{}, nil
}

func (h *transferHandler) validate(ctx cascade.Context, db cascade.KVStore, tx cascade.Tx) (*TransferMsg, error) {
	var msg TransferMsg
	if err := cascade.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	owner, err := h.ctrl.ControllerOf(db, msg.PositionID)
	if err != nil {
		return nil, err
	}
	if !h.auth.HasAddress(ctx, owner) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "owner signature missing")
	}
	return &msg, nil
}

type burnHandler struct {
	auth x.Authenticator
	ctrl *Controller
	pool SharePool
}

var _ cascade.Handler = (*burnHandler)(nil)

func (h *burnHandler) Check(ctx cascade.Context, db cascade.KVStore, tx cascade.Tx) (*cascade.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &cascade.CheckResult{GasAllocated: burnCost}, nil
}

func (h *burnHandler) Deliver(ctx cascade.Context, db cascade.KVStore, tx cascade.Tx) (*cascade.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	// Removing the shares settles any accrued reward to the owner.
	if err := h.pool.SetShares(db, HoldersPool, msg.PositionID, nil, 0); err != nil {
		return nil, errors.Wrap(err, "remove holder shares")
	}
	if err := h.ctrl.Burn(db, msg.PositionID); err != nil {
		return nil, err
	}
	return &cascade.DeliverResult{}, nil
}

func (h *burnHandler) validate(ctx cascade.Context, db cascade.KVStore, tx cascade.Tx) (*BurnMsg, error) {
	var msg BurnMsg
	if err := cascade.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	owner, err := h.ctrl.ControllerOf(db, msg.PositionID)
	if err != nil {
		return nil, err
	}
	if !h.auth.HasAddress(ctx, owner) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "owner signature missing")
	}
	return &msg, nil
}
