package app

import (
	"github.com/guild-net/guild"
	"github.com/guild-net/guild/x/sigs"
	"github.com/guild-net/guild/x/treasury"
)

// TxDecoder creates a Tx and unmarshals bytes into it
func TxDecoder(bz []byte) (guild.Tx, error) {
	tx := new(Tx)
	err := tx.Unmarshal(bz)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

// make sure tx fulfills all interfaces
var _ guild.Tx = (*Tx)(nil)
var _ treasury.FeeTx = (*Tx)(nil)
var _ sigs.SignedTx = (*Tx)(nil)

// GetMsg switches over all types defined in the protobuf file
func (tx *Tx) GetMsg() (guild.Msg, error) {
	return guild.ExtractMsgFromSum(tx.GetSum())
}

// GetSignBytes returns the bytes to sign...
func (tx *Tx) GetSignBytes() ([]byte, error) {
	// temporarily unset the signatures, as the sign bytes
	// should only come from the data itself, not previous signatures
	sig := tx.Signatures
	tx.Signatures = nil

	bz, err := tx.Marshal()

	// reset the signatures after calculating the bytes
	tx.Signatures = sig
	return bz, err
}
