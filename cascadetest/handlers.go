package cascadetest

import "github.com/cascade-one/cascade"

// Handler is a mock implementation of the cascade.Handler interface.
//
// Each method call is counted.
type Handler struct {
	checkCall   int
	CheckResult cascade.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult cascade.DeliverResult
	DeliverErr    error
}

var _ cascade.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx cascade.Context, db cascade.KVStore, tx cascade.Tx) (*cascade.CheckResult, error) {
	h.checkCall++
	return &h.CheckResult, h.CheckErr
}

func (h *Handler) Deliver(ctx cascade.Context, db cascade.KVStore, tx cascade.Tx) (*cascade.DeliverResult, error) {
	h.deliverCall++
	return &h.DeliverResult, h.DeliverErr
}

func (h *Handler) CheckCallCount() int {
	return h.checkCall
}

func (h *Handler) DeliverCallCount() int {
	return h.deliverCall
}

func (h *Handler) CallCount() int {
	return h.checkCall + h.deliverCall
}
