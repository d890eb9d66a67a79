package treasury

import (
	"github.com/guild-net/guild"
	"github.com/guild-net/guild/coin"
	"github.com/guild-net/guild/errors"
	"github.com/guild-net/guild/gconf"
)

// GenesisAccount is used to parse the json from genesis file
// use guild.Address, so address in hex, not base64
type GenesisAccount struct {
	Address guild.Address `json:"address"`
	Coins   coin.Coins    `json:"coins"`
}

// Initializer fulfils the Initializer interface to load data from the genesis
// file
type Initializer struct{}

var _ guild.Initializer = (*Initializer)(nil)

// FromGenesis will parse initial account info from genesis and save it to the
// database
func (*Initializer) FromGenesis(opts guild.Options, params guild.GenesisParams, kv guild.KVStore) error {
	if err := gconf.InitConfig(kv, opts, "treasury", &Configuration{}); err != nil {
		return errors.Wrap(err, "init config")
	}

	// The account list is the one genesis array that can grow with the
	// member base, so avoid deserializing it all at once.
	stream, err := opts.Stream("treasury")
	if err != nil {
		if errors.ErrEmpty.Is(err) {
			return nil
		}
		return errors.Wrap(err, "cannot load accounts")
	}
	bucket := NewBucket()
	for i := 0; ; i++ {
		var acct GenesisAccount
		if err := stream(&acct); err != nil {
			if errors.ErrEmpty.Is(err) {
				return nil
			}
			return errors.Wrapf(err, "cannot load account #%d", i)
		}
		if err := acct.Address.Validate(); err != nil {
			return errors.Wrapf(err, "account #%d address", i)
		}
		wallet, err := WalletWith(acct.Address, acct.Coins...)
		if err != nil {
			return errors.Wrapf(err, "account #%d wallet", i)
		}
		if err := bucket.Save(kv, wallet); err != nil {
			return errors.Wrapf(err, "cannot store #%d wallet", i)
		}
	}
}
