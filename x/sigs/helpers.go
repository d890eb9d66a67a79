package sigs

import (
	"github.com/guild-net/guild"
	"github.com/guild-net/guild/guildtest"
)

//----- mock objects for testing...

type StdTx struct {
	guild.Tx
	Signatures []*StdSignature
}

var _ SignedTx = (*StdTx)(nil)
var _ guild.Tx = (*StdTx)(nil)

func NewStdTx(payload []byte) *StdTx {
	msg := &guildtest.Msg{Serialized: payload}
	tx := &guildtest.Tx{Msg: msg}
	return &StdTx{Tx: tx}
}

func (tx StdTx) GetSignatures() []*StdSignature {
	return tx.Signatures
}

func (tx StdTx) GetSignBytes() ([]byte, error) {
	// marshal self w/o sigs
	s := tx.Signatures
	tx.Signatures = nil
	defer func() { tx.Signatures = s }()

	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}
	return msg.Marshal()
}
