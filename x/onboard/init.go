package onboard

import (
	"github.com/guild-net/guild"
	"github.com/guild-net/guild/errors"
	"github.com/guild-net/guild/gconf"
)

// Initializer fulfils the Initializer interface to load data from the
// genesis file
type Initializer struct{}

var _ guild.Initializer = (*Initializer)(nil)

// FromGenesis will parse initial account info from genesis and save it
// to the database
func (*Initializer) FromGenesis(opts guild.Options, params guild.GenesisParams, kv guild.KVStore) error {
	if err := gconf.InitConfig(kv, opts, "onboard", &Configuration{}); err != nil {
		return errors.Wrap(err, "init config")
	}
	return nil
}
