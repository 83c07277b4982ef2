package funds

import (
	"github.com/cascade-one/cascade"
	"github.com/cascade-one/cascade/errors"
	"github.com/cascade-one/cascade/x"
)

const sendCost = 100

// RegisterRoutes registers handlers for wallet message processing.
func RegisterRoutes(r cascade.Registry, auth x.Authenticator, ctrl *Controller) {
	r.Handle("funds/send", &sendHandler{
		auth: auth,
		ctrl: ctrl,
	})
}

type sendHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

var _ cascade.Handler = (*sendHandler)(nil)

func (h *sendHandler) Check(ctx cascade.Context, db cascade.KVStore, tx cascade.Tx) (*cascade.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &cascade.CheckResult{GasAllocated: sendCost}, nil
}

func (h *sendHandler) Deliver(ctx cascade.Context, db cascade.KVStore, tx cascade.Tx) (*cascade.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.MoveFunds(db, msg.Source, msg.Destination, msg.Amount); err != nil {
		return nil, err
	}
	return &cascade.DeliverResult{}, nil
}

func (h *sendHandler) validate(ctx cascade.Context, db cascade.KVStore, tx cascade.Tx) (*SendMsg, error) {
	var msg SendMsg
	if err := cascade.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Source) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "source signature missing")
	}
	return &msg, nil
}
