/*
Package batch provides batch transaction support
middleware to support multiple operations in one
transaction
*/
package batch

import (
	"strings"

	"github.com/guild-net/guild"
	"github.com/guild-net/guild/errors"
	"github.com/tendermint/go-amino"
	"github.com/tendermint/tendermint/libs/common"
)

//----------------- Decorator ----------------
//
// This is just a binding from the functionality into the
// Application stack, not much business logic here.

// Decorator iterates through batch transaction messages and passes them down the stack
type Decorator struct {
}

var _ guild.Decorator = Decorator{}

// NewDecorator returns a batch transaction decorator
func NewDecorator() Decorator {
	return Decorator{}
}

// BatchTx wraps the original transaction, overwriting its message with a
// single message of the batch.
type BatchTx struct {
	guild.Tx
	Msg guild.Msg
}

func (tx *BatchTx) GetMsg() (guild.Msg, error) {
	return tx.Msg, nil
}

// Check iterates through messages in a batch transaction and passes them
// down the stack
func (d Decorator) Check(ctx guild.Context, store guild.KVStore, tx guild.Tx, next guild.Checker) (*guild.CheckResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}

	batchMsg, ok := msg.(Msg)
	if !ok {
		return next.Check(ctx, store, tx)
	}
	if err := Validate(batchMsg); err != nil {
		return nil, err
	}
	msgList, err := batchMsg.MsgList()
	if err != nil {
		return nil, errors.Wrap(err, "cannot retrieve batch messages")
	}

	checks := make([]*guild.CheckResult, len(msgList))
	for i, m := range msgList {
		checks[i], err = next.Check(ctx, store, &BatchTx{Tx: tx, Msg: m})
		if err != nil {
			return nil, err
		}
	}
	return combineChecks(checks)
}

// combineChecks combines all data bytes as a go-amino array
// and joins all log messages with \n
func combineChecks(checks []*guild.CheckResult) (*guild.CheckResult, error) {
	datas := make([][]byte, len(checks))
	logs := make([]string, len(checks))
	var allocated, payments int64
	for i, r := range checks {
		datas[i] = r.Data
		logs[i] = r.Log
		allocated += r.GasAllocated
		payments += r.GasPayment
	}

	data, err := amino.MarshalBinaryBare(datas)
	if err != nil {
		return nil, errors.Wrap(err, "cannot marshal data")
	}

	return &guild.CheckResult{
		Data:         data,
		Log:          strings.Join(logs, "\n"),
		GasAllocated: allocated,
		GasPayment:   payments,
	}, nil
}

// Deliver iterates through messages in a batch transaction and passes them
// down the stack
func (d Decorator) Deliver(ctx guild.Context, store guild.KVStore, tx guild.Tx, next guild.Deliverer) (*guild.DeliverResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}

	batchMsg, ok := msg.(Msg)
	if !ok {
		return next.Deliver(ctx, store, tx)
	}
	if err := Validate(batchMsg); err != nil {
		return nil, err
	}
	msgList, err := batchMsg.MsgList()
	if err != nil {
		return nil, errors.Wrap(err, "cannot retrieve batch messages")
	}

	delivers := make([]*guild.DeliverResult, len(msgList))
	for i, m := range msgList {
		delivers[i], err = next.Deliver(ctx, store, &BatchTx{Tx: tx, Msg: m})
		if err != nil {
			return nil, err
		}
	}
	return combineDelivers(delivers)
}

// combineDelivers combines all data bytes as a go-amino array
// and joins all log messages with \n
func combineDelivers(delivers []*guild.DeliverResult) (*guild.DeliverResult, error) {
	datas := make([][]byte, len(delivers))
	logs := make([]string, len(delivers))
	var used int64
	var diffs []guild.ValidatorUpdate
	var tags []common.KVPair
	for i, r := range delivers {
		datas[i] = r.Data
		logs[i] = r.Log
		used += r.GasUsed
		if len(r.Diff) > 0 {
			diffs = append(diffs, r.Diff...)
		}
		if len(r.Tags) > 0 {
			tags = append(tags, r.Tags...)
		}
	}

	data, err := amino.MarshalBinaryBare(datas)
	if err != nil {
		return nil, errors.Wrap(err, "cannot marshal data")
	}

	return &guild.DeliverResult{
		Data:    data,
		Log:     strings.Join(logs, "\n"),
		GasUsed: used,
		Diff:    diffs,
		Tags:    tags,
	}, nil
}
