package cascadetest

import "github.com/cascade-one/cascade"

// Decorator is a mock implementation of the cascade.Decorator interface.
//
// Set CheckErr or DeliverErr to force error response for corresponding method.
// If error attributes are not set then wrapped handler method is called and
// its result returned.
// Each method call is counted. Regardless of the method call result the
// counter is incremented.
type Decorator struct {
	checkCall int
	// CheckErr if set is returned by the Check method before calling
	// the wrapped handler.
	CheckErr error

	deliverCall int
	// DeliverErr if set is returned by the Deliver method before calling
	// the wrapped handler.
	DeliverErr error
}

var _ cascade.Decorator = (*Decorator)(nil)

func (d *Decorator) Check(ctx cascade.Context, db cascade.KVStore, tx cascade.Tx, next cascade.Checker) (*cascade.CheckResult, error) {
	d.checkCall++

	if d.CheckErr != nil {
		return &cascade.CheckResult{}, d.CheckErr
	}
	return next.Check(ctx, db, tx)
}

func (d *Decorator) Deliver(ctx cascade.Context, db cascade.KVStore, tx cascade.Tx, next cascade.Deliverer) (*cascade.DeliverResult, error) {
	d.deliverCall++

	if d.DeliverErr != nil {
		return &cascade.DeliverResult{}, d.DeliverErr
	}
	return next.Deliver(ctx, db, tx)
}

func (d *Decorator) CheckCallCount() int {
	return d.checkCall
}

func (d *Decorator) DeliverCallCount() int {
	return d.deliverCall
}

func (d *Decorator) CallCount() int {
	return d.checkCall + d.deliverCall
}

// Decorate wraps given handler with a decorator, returning a single handler.
func Decorate(h cascade.Handler, d cascade.Decorator) cascade.Handler {
	return &decoratedHandler{hn: h, dc: d}
}

type decoratedHandler struct {
	hn cascade.Handler
	dc cascade.Decorator
}

var _ cascade.Handler = (*decoratedHandler)(nil)

func (d *decoratedHandler) Check(ctx cascade.Context, db cascade.KVStore, tx cascade.Tx) (*cascade.CheckResult, error) {
	return d.dc.Check(ctx, db, tx, d.hn)
}

func (d *decoratedHandler) Deliver(ctx cascade.Context, db cascade.KVStore, tx cascade.Tx) (*cascade.DeliverResult, error) {
	return d.dc.Deliver(ctx, db, tx, d.hn)
}
