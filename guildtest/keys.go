package guildtest

import (
	"github.com/guild-net/guild"
	"github.com/guild-net/guild/crypto"
)

func NewKey() crypto.Signer {
	return crypto.GenPrivKeyEd25519()
}

func NewCondition() guild.Condition {
	return NewKey().PublicKey().Condition()
}
