package app

import (
	"github.com/guild-net/guild"
	"github.com/guild-net/guild/coin"
	"github.com/guild-net/guild/x/batch"
	"github.com/guild-net/guild/x/treasury"
)

// Fee sets the FeeInfo for this tx
func (tx *Tx) Fee(payer guild.Address, fee coin.Coin) {
	tx.Fees = &treasury.FeeInfo{
		Payer: payer,
		Fees:  &fee,
	}
}

// Boiler-plate needed to bridge the ExecuteBatchMsg protobuf type into
// something usable by the batch extension

var _ batch.Msg = (*ExecuteBatchMsg)(nil)

func (*ExecuteBatchMsg) Path() string {
	return batch.PathExecuteBatchMsg
}

func (msg *ExecuteBatchMsg) Validate() error {
	return batch.Validate(msg)
}

func (msg *ExecuteBatchMsg) MsgList() ([]guild.Msg, error) {
	var err error
	messages := make([]guild.Msg, len(msg.Messages))
	for i, m := range msg.Messages {
		messages[i], err = guild.ExtractMsgFromSum(m.GetSum())
		if err != nil {
			return nil, err
		}
	}
	return messages, nil
}
