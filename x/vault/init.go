package vault

import (
	"encoding/binary"

	"github.com/guild-net/guild"
	"github.com/guild-net/guild/errors"
	"github.com/guild-net/guild/x/charter"
)

// genesisVault is used to parse a vault declaration from the genesis
// file. The charter is referenced by its sequence number.
type genesisVault struct {
	Charter int64         `json:"charter"`
	Admin   guild.Address `json:"admin"`
}

// Initializer fulfils the Initializer interface to load data from the
// genesis file
type Initializer struct{}

var _ guild.Initializer = (*Initializer)(nil)

// FromGenesis will parse initial vaults from genesis and save them to
// the database. The referenced charters must be declared in the same
// genesis, so the charter initializer has to run first.
func (*Initializer) FromGenesis(opts guild.Options, params guild.GenesisParams, kv guild.KVStore) error {
	var decls []genesisVault
	if err := opts.ReadOptions("vault", &decls); err != nil {
		return errors.Wrap(err, "cannot load vaults")
	}
	vaults := NewVaultBucket()
	charters := charter.NewCharterBucket()
	for i, d := range decls {
		if d.Charter <= 0 {
			return errors.Wrapf(errors.ErrInput, "vault #%d charter reference", i)
		}
		charterID := make([]byte, 8)
		binary.BigEndian.PutUint64(charterID, uint64(d.Charter))
		if err := charters.Has(kv, charterID); err != nil {
			return errors.Wrapf(err, "vault #%d charter", i)
		}
		v := Vault{
			Metadata: &guild.Metadata{},
			Charter:  charterID,
			Admin:    d.Admin,
		}
		if _, err := vaults.Put(kv, charterID, &v); err != nil {
			return errors.Wrapf(err, "cannot store vault #%d", i)
		}
	}
	return nil
}
