package revenuepool

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
	fundCost      = 200
	setSharesCost = 200
	harvestCost   = 100
)

// SettleTagKey indexes the settlement record of every harvest. A
// record is emitted even when nothing was accrued. External indexers
// depend on it, do not change.
const SettleTagKey = "revenuepool:settle"

// FundsController is the subset of the funds extension functionality
// used to move the funded reward into the pool escrow.
type FundsController interface {
	MoveFunds(db cascade.KVStore, src, dest cascade.Address, amount uint64) error
}

// RegisterRoutes registers handlers for revenue pool message
// processing.
func RegisterRoutes(r cascade.Registry, auth x.Authenticator, ctrl *Controller, funds FundsController) {
	r.Handle("revenuepool/fund", &fundHandler{
		auth:  auth,
		ctrl:  ctrl,
		funds: funds,
	})
	r.Handle("revenuepool/setshares", &setSharesHandler{
		auth: auth,
		ctrl: ctrl,
	})
	r.Handle("revenuepool/harvest", &harvestHandler{
		auth: auth,
		ctrl: ctrl,
	})
	r.Handle("revenuepool/update_configuration",
		gconf.NewUpdateConfigurationHandler("revenuepool", &Configuration{}, auth, nil))
}

// mustLoadConf returns the extension configuration. The configuration
// must be provided via the genesis.
func mustLoadConf(db gconf.ReadStore) (Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, "revenuepool", &conf); err != nil {
		return conf, errors.Wrap(err, "load configuration")
	}
	return conf, nil
}

type fundHandler struct {
	auth  x.Authenticator
	ctrl  *Controller
	funds FundsController
}

var _ cascade.Handler = (*fundHandler)(nil)

func (h *fundHandler) Check(ctx cascade.Context, db cascade.KVStore, tx cascade.Tx) (*cascade.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &cascade.CheckResult{GasAllocated: fundCost}, nil
}

func (h *fundHandler) Deliver(ctx cascade.Context, db cascade.KVStore, tx cascade.Tx) (*cascade.DeliverResult, error) {
	msg, payer, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.Fund(db, msg.Pool, msg.Amount); err != nil {
		return nil, err
	}
	if err := h.funds.MoveFunds(db, payer, PoolAccount(msg.Pool), msg.Amount); err != nil {
		return nil, err
	}
	return &cascade.DeliverResult{}, nil
}

func (h *fundHandler) validate(ctx cascade.Context, db cascade.KVStore, tx cascade.Tx) (*FundMsg, cascade.Address, error) {
	var msg FundMsg
	if err := cascade.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	signer := x.MainSigner(ctx, h.auth)
	if signer == nil {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "signature required")
	}
	return &msg, signer.Address(), nil
}

type setSharesHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

var _ cascade.Handler = (*setSharesHandler)(nil)

func (h *setSharesHandler) Check(ctx cascade.Context, db cascade.KVStore, tx cascade.Tx) (*cascade.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &cascade.CheckResult{GasAllocated: setSharesCost}, nil
}

func (h *setSharesHandler) Deliver(ctx cascade.Context, db cascade.KVStore, tx cascade.Tx) (*cascade.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.SetShares(db, msg.Pool, msg.Key, msg.Beneficiary, msg.Shares); err != nil {
		return nil, err
	}
	return &cascade.DeliverResult{}, nil
}

func (h *setSharesHandler) validate(ctx cascade.Context, db cascade.KVStore, tx cascade.Tx) (*SetSharesMsg, error) {
	var msg SetSharesMsg
	if err := cascade.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	conf, err := mustLoadConf(db)
	if err != nil {
		return nil, err
	}
	if !h.auth.HasAddress(ctx, conf.Admin) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "admin signature missing")
	}
	return &msg, nil
}

type harvestHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

var _ cascade.Handler = (*harvestHandler)(nil)

func (h *harvestHandler) Check(ctx cascade.Context, db cascade.KVStore, tx cascade.Tx) (*cascade.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &cascade.CheckResult{GasAllocated: harvestCost}, nil
}

func (h *harvestHandler) Deliver(ctx cascade.Context, db cascade.KVStore, tx cascade.Tx) (*cascade.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	amount, err := h.ctrl.Harvest(db, msg.Pool, msg.Key)
	if err != nil {
		return nil, err
	}
	return &cascade.DeliverResult{
		Log: "harvested " + strconv.FormatUint(amount, 10),
		Tags: []common.KVPair{
			{
				Key:   []byte(SettleTagKey),
				Value: []byte(fmt.Sprintf("%s:%X:%d", msg.Pool, msg.Key, amount)),
			},
		},
	}, nil
}

func (h *harvestHandler) validate(ctx cascade.Context, db cascade.KVStore, tx cascade.Tx) (*HarvestMsg, error) {
	var msg HarvestMsg
	if err := cascade.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	member, err := h.ctrl.Member(db, msg.Pool, msg.Key)
	if err != nil {
		return nil, err
	}
	if !h.auth.HasAddress(ctx, member.Beneficiary) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "beneficiary signature missing")
	}
	return &msg, nil
}
