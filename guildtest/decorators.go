package guildtest

import "github.com/guild-net/guild"

// Decorator is a mock implementation of the guild.Decorator interface.
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

var _ guild.Decorator = (*Decorator)(nil)

func (d *Decorator) Check(ctx guild.Context, db guild.KVStore, tx guild.Tx, next guild.Checker) (*guild.CheckResult, error) {
	d.checkCall++

	if d.CheckErr != nil {
		return &guild.CheckResult{}, d.CheckErr
	}
	return next.Check(ctx, db, tx)
}

func (d *Decorator) Deliver(ctx guild.Context, db guild.KVStore, tx guild.Tx, next guild.Deliverer) (*guild.DeliverResult, error) {
	d.deliverCall++

	if d.DeliverErr != nil {
		return &guild.DeliverResult{}, d.DeliverErr
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

func Decorate(h guild.Handler, d guild.Decorator) guild.Handler {
	return &decoratedHandler{hn: h, dc: d}
}

type decoratedHandler struct {
	hn guild.Handler
	dc guild.Decorator
}

var _ guild.Handler = (*decoratedHandler)(nil)

func (d *decoratedHandler) Check(ctx guild.Context, db guild.KVStore, tx guild.Tx) (*guild.CheckResult, error) {
	return d.dc.Check(ctx, db, tx, d.hn)
}

func (d *decoratedHandler) Deliver(ctx guild.Context, db guild.KVStore, tx guild.Tx) (*guild.DeliverResult, error) {
	return d.dc.Deliver(ctx, db, tx, d.hn)
}
