package pending

import (
	"fmt"
	"strconv"

	"github.com/cascade-one/cascade"
	"github.com/cascade-one/cascade/errors"
	"github.com/cascade-one/cascade/x"
	"github.com/tendermint/tendermint/libs/common"
)

const claimCost = 100

// ClaimTagKey indexes the payout record of every claim. External
// indexers depend on it, do not change.
const ClaimTagKey = "pending:claim"

// RegisterRoutes registers handlers for pending balance message
// processing.
func RegisterRoutes(r cascade.Registry, auth x.Authenticator, ctrl *Controller) {
	r.Handle("pending/claim", &claimHandler{
		auth: auth,
		ctrl: ctrl,
	})
}

type claimHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

var _ cascade.Handler = (*claimHandler)(nil)

func (h *claimHandler) Check(ctx cascade.Context, db cascade.KVStore, tx cascade.Tx) (*cascade.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &cascade.CheckResult{GasAllocated: claimCost}, nil
}

func (h *claimHandler) Deliver(ctx cascade.Context, db cascade.KVStore, tx cascade.Tx) (*cascade.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	amount, err := h.ctrl.Claim(db, msg.Beneficiary)
	if err != nil {
		return nil, err
	}
	return &cascade.DeliverResult{
		Log: "claimed " + strconv.FormatUint(amount, 10),
		Tags: []common.KVPair{
			{
				Key:   []byte(ClaimTagKey),
				Value: []byte(fmt.Sprintf("%X:%d", msg.Beneficiary, amount)),
			},
		},
	}, nil
}

func (h *claimHandler) validate(ctx cascade.Context, db cascade.KVStore, tx cascade.Tx) (*ClaimMsg, error) {
	var msg ClaimMsg
	if err := cascade.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Beneficiary) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "beneficiary signature missing")
	}
	return &msg, nil
}
