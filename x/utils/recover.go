package utils

import (
	"github.com/guild-net/guild"
	"github.com/guild-net/guild/errors"
)

// Recovery is a decorator to recover from panics in transactions,
// so we can log them as errors
type Recovery struct{}

var _ guild.Decorator = Recovery{}

// NewRecovery creates a Recovery decorator
func NewRecovery() Recovery {
	return Recovery{}
}

// Check turns panics into normal errors
func (r Recovery) Check(ctx guild.Context, store guild.KVStore, tx guild.Tx, next guild.Checker) (_ *guild.CheckResult, err error) {
	defer errors.Recover(&err)
	return next.Check(ctx, store, tx)
}

// Deliver turns panics into normal errors
func (r Recovery) Deliver(ctx guild.Context, store guild.KVStore, tx guild.Tx, next guild.Deliverer) (_ *guild.DeliverResult, err error) {
	defer errors.Recover(&err)
	return next.Deliver(ctx, store, tx)
}
