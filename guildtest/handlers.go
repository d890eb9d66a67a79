package guildtest

import "github.com/guild-net/guild"

type Handler struct {
	checkCall int
	// CheckResult is returned by the Check method.
	CheckResult guild.CheckResult
	// CheckErr if set is returned by the Check method.
	CheckErr error

	deliverCall int
	// DeliverResult is returned by the Deliver method.
	DeliverResult guild.DeliverResult
	// DeliverErr if set is returned by the Deliver method.
	DeliverErr error
}

var _ guild.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx guild.Context, db guild.KVStore, tx guild.Tx) (*guild.CheckResult, error) {
	h.checkCall++
	return &h.CheckResult, h.CheckErr
}

func (h *Handler) Deliver(ctx guild.Context, db guild.KVStore, tx guild.Tx) (*guild.DeliverResult, error) {
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
