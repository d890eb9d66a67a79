package treasury

import (
	"github.com/guild-net/guild"
	"github.com/guild-net/guild/errors"
	"github.com/guild-net/guild/gconf"
	"github.com/guild-net/guild/migration"
	"github.com/guild-net/guild/x"
)

// Blocklist vetoes transfers to addresses that must not receive funds
// directly, for example custody accounts that are managed by another
// extension. A nil error means the destination accepts transfers.
type Blocklist interface {
	BlocksSend(db guild.KVStore, dest guild.Address) error
}

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r guild.Registry, auth x.Authenticator, control Controller, block Blocklist) {
	r = migration.SchemaMigratingRegistry("treasury", r)

	r.Handle(&SendMsg{}, NewSendHandler(auth, control, block))
	r.Handle(&UpdateConfigurationMsg{}, NewConfigHandler(auth))
}

// RegisterQuery will register this bucket as "/wallets"
func RegisterQuery(qr guild.QueryRouter) {
	NewBucket().Register("wallets", qr)
}

// SendHandler will handle sending coins
type SendHandler struct {
	auth    x.Authenticator
	control Controller
	block   Blocklist
}

var _ guild.Handler = SendHandler{}

// NewSendHandler creates a handler for SendMsg. Blocklist is optional
// and may be nil.
func NewSendHandler(auth x.Authenticator, control Controller, block Blocklist) SendHandler {
	return SendHandler{
		auth:    auth,
		control: control,
		block:   block,
	}
}

// Check just verifies it is properly formed and returns
// the cost of executing it
func (h SendHandler) Check(ctx guild.Context, store guild.KVStore, tx guild.Tx) (*guild.CheckResult, error) {
	var msg SendMsg
	if err := guild.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}

	// Make sure we have permission from the source
	if !h.auth.HasAddress(ctx, msg.Source) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "wallet owner signature missing")
	}

	if h.block != nil {
		if err := h.block.BlocksSend(store, msg.Destination); err != nil {
			return nil, errors.Wrap(err, "destination")
		}
	}

	res := guild.CheckResult{
		GasAllocated: sendTxCost,
	}
	return &res, nil
}

// Deliver moves the tokens from source to destination if
// all preconditions are met
func (h SendHandler) Deliver(ctx guild.Context, store guild.KVStore, tx guild.Tx) (*guild.DeliverResult, error) {
	var msg SendMsg
	if err := guild.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}

	// Make sure we have permission from the source
	if !h.auth.HasAddress(ctx, msg.Source) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "wallet owner signature missing")
	}

	if h.block != nil {
		if err := h.block.BlocksSend(store, msg.Destination); err != nil {
			return nil, errors.Wrap(err, "destination")
		}
	}

	if err := h.control.MoveCoins(store, msg.Source, msg.Destination, *msg.Amount); err != nil {
		return nil, err
	}
	return &guild.DeliverResult{}, nil
}

func NewConfigHandler(auth x.Authenticator) guild.Handler {
	var conf Configuration
	return gconf.NewUpdateConfigurationHandler("treasury", &conf, auth, migration.CurrentAdmin)
}
