package referral

import (
	"fmt"
	"strconv"

	"github.com/cascade-one/cascade"
	"github.com/cascade-one/cascade/errors"
	"github.com/cascade-one/cascade/gconf"
	"github.com/cascade-one/cascade/x"
	"github.com/tendermint/tendermint/libs/common"
)

const (
	bindCost          = 300
	distributeCost    = 1000
	perLevelClimbCost = 50
)

// Tag keys under which the per-transition records of this extension
// are indexed. External indexers depend on them, do not change.
const (
	BindTagKey       = "referral:bind"
	RewardTagKey     = "referral:reward"
	UnassignedTagKey = "referral:unassigned"
	SummaryTagKey    = "referral:summary"
)

// RegisterRoutes registers handlers for referral message processing.
func RegisterRoutes(r cascade.Registry, auth x.Authenticator, ctrl *Controller) {
	r.Handle("referral/bind", &bindHandler{
		auth: auth,
		ctrl: ctrl,
	})
	r.Handle("referral/distribute", &distributeHandler{
		auth: auth,
		ctrl: ctrl,
	})
	r.Handle("referral/update_configuration",
		gconf.NewUpdateConfigurationHandler("referral", &Configuration{}, auth, nil))
}

type bindHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

var _ cascade.Handler = (*bindHandler)(nil)

func (h *bindHandler) Check(ctx cascade.Context, db cascade.KVStore, tx cascade.Tx) (*cascade.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &cascade.CheckResult{GasAllocated: bindCost}, nil
}

func (h *bindHandler) Deliver(ctx cascade.Context, db cascade.KVStore, tx cascade.Tx) (*cascade.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.Bind(db, msg.Position, msg.Sponsor); err != nil {
		return nil, err
	}
	return &cascade.DeliverResult{
		Tags: []common.KVPair{
			{
				Key:   []byte(BindTagKey),
				Value: []byte(fmt.Sprintf("%X:%X", msg.Position, msg.Sponsor)),
			},
		},
	}, nil
}

// validate ensures the transaction is signed by the account
// controlling the position being bound.
func (h *bindHandler) validate(ctx cascade.Context, db cascade.KVStore, tx cascade.Tx) (*BindSponsorMsg, error) {
	var msg BindSponsorMsg
	if err := cascade.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	owner, err := h.ctrl.positions.ControllerOf(db, msg.Position)
	if err != nil {
		if errors.ErrNotFound.Is(err) {
			return nil, errors.Wrapf(ErrUnknownPosition, "position %x", msg.Position)
		}
		return nil, errors.Wrap(err, "resolve position")
	}
	if !h.auth.HasAddress(ctx, owner) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "position controller signature missing")
	}
	return &msg, nil
}

type distributeHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

var _ cascade.Handler = (*distributeHandler)(nil)

func (h *distributeHandler) Check(ctx cascade.Context, db cascade.KVStore, tx cascade.Tx) (*cascade.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &cascade.CheckResult{GasAllocated: distributeCost + MaxDepth*perLevelClimbCost}, nil
}

func (h *distributeHandler) Deliver(ctx cascade.Context, db cascade.KVStore, tx cascade.Tx) (*cascade.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	// The authority pays the distributed amount into the escrow.
	signer := x.MainSigner(ctx, h.auth)
	if err := h.ctrl.funds.MoveFunds(db, signer.Address(), DistributionAccount(), msg.Amount); err != nil {
		return nil, errors.Wrap(err, "cannot collect payment")
	}
	summary, err := h.ctrl.Distribute(db, msg.Position, msg.Amount)
	if err != nil {
		return nil, err
	}
	res := &cascade.DeliverResult{
		Log: "distributed " + strconv.FormatUint(summary.Distributed, 10) +
			", treasury " + strconv.FormatUint(summary.Remainder, 10),
	}
	for _, r := range summary.Rewards {
		res.Tags = append(res.Tags, common.KVPair{
			Key:   []byte(RewardTagKey),
			Value: []byte(fmt.Sprintf("%d:%X:%X:%d", r.Level, r.Position, r.Account, r.Amount)),
		})
	}
	for _, f := range summary.Forfeited {
		res.Tags = append(res.Tags, common.KVPair{
			Key:   []byte(UnassignedTagKey),
			Value: []byte(fmt.Sprintf("%d:%d:%s", f.Level, f.Amount, f.Reason)),
		})
	}
	res.Tags = append(res.Tags, common.KVPair{
		Key:   []byte(SummaryTagKey),
		Value: []byte(fmt.Sprintf("%X:%d:%d:%d", msg.Position, summary.Amount, summary.Distributed, summary.Remainder)),
	})
	return res, nil
}

// validate ensures the transaction is signed by the configured
// distribution authority.
func (h *distributeHandler) validate(ctx cascade.Context, db cascade.KVStore, tx cascade.Tx) (*DistributeMsg, error) {
	var msg DistributeMsg
	if err := cascade.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	if !h.auth.HasAddress(ctx, conf.Authority) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "authority signature missing")
	}
	return &msg, nil
}
