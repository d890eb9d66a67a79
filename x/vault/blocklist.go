package vault

import (
	"github.com/guild-net/guild"
	"github.com/guild-net/guild/errors"
	"github.com/guild-net/guild/orm"
	"github.com/guild-net/guild/x/treasury"
)

// Blocklist refuses direct coin transfers to the derived accounts of
// any vault. There is no withdrawal path for fungible value, so coins
// sent there would be locked forever.
type Blocklist struct {
	vaults orm.ModelBucket
}

var _ treasury.Blocklist = Blocklist{}

func NewBlocklist() Blocklist {
	return Blocklist{vaults: NewVaultBucket()}
}

// BlocksSend returns ErrDirectValue when the destination is the
// custody or pooled owner account of an existing vault.
func (b Blocklist) BlocksSend(db guild.KVStore, dest guild.Address) error {
	keys, err := b.vaults.ByIndex(db, "custody", dest, &[]Vault{})
	if err != nil {
		return errors.Wrap(err, "cannot check custody accounts")
	}
	if len(keys) != 0 {
		return errors.Wrap(ErrDirectValue, "vault custody account")
	}
	keys, err = b.vaults.ByIndex(db, "guild", dest, &[]Vault{})
	if err != nil {
		return errors.Wrap(err, "cannot check pooled accounts")
	}
	if len(keys) != 0 {
		return errors.Wrap(ErrDirectValue, "vault pooled account")
	}
	return nil
}
