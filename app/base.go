package app

import (
	"github.com/guild-net/guild"
	"github.com/guild-net/guild/errors"
	abci "github.com/tendermint/tendermint/abci/types"
)

// BaseApp adds DeliverTx, CheckTx, and BeginBlock
// handlers to the storage and query functionality of StoreApp
type BaseApp struct {
	*StoreApp
	decoder guild.TxDecoder
	handler guild.Handler
	debug   bool
}

var _ abci.Application = BaseApp{}

// NewBaseApp constructs a basic abci application
func NewBaseApp(
	store *StoreApp,
	decoder guild.TxDecoder,
	handler guild.Handler,
	debug bool,
) BaseApp {
	return BaseApp{
		StoreApp: store,
		decoder:  decoder,
		handler:  handler,
		debug:    debug,
	}
}

// DeliverTx - ABCI - dispatches to the handler
func (b BaseApp) DeliverTx(txBytes []byte) abci.ResponseDeliverTx {
	tx, err := b.loadTx(txBytes)
	if err != nil {
		return guild.DeliverTxError(err, b.debug)
	}

	// ignore error here, allow it to be logged
	ctx := guild.WithLogInfo(b.BlockContext(),
		"call", "deliver_tx",
		"path", guild.GetPath(tx))

	res, err := b.handler.Deliver(ctx, b.DeliverStore(), tx)
	return guild.DeliverOrError(res, err, b.debug)
}

// CheckTx - ABCI - dispatches to the handler
func (b BaseApp) CheckTx(txBytes []byte) abci.ResponseCheckTx {
	tx, err := b.loadTx(txBytes)
	if err != nil {
		return guild.CheckTxError(err, b.debug)
	}

	ctx := guild.WithLogInfo(b.BlockContext(),
		"call", "check_tx",
		"path", guild.GetPath(tx))

	res, err := b.handler.Check(ctx, b.CheckStore(), tx)
	return guild.CheckOrError(res, err, b.debug)
}

// loadTx calls the decoder, and capture any panics
func (b BaseApp) loadTx(txBytes []byte) (tx guild.Tx, err error) {
	defer errors.Recover(&err)
	tx, err = b.decoder(txBytes)
	return
}
