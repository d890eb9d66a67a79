package app

import (
	"github.com/guild-net/guild"
)

// ChainInitializers lets you initialize many extensions with one function
func ChainInitializers(inits ...guild.Initializer) guild.Initializer {
	return chainInitializer{inits}
}

type chainInitializer struct {
	inits []guild.Initializer
}

// FromGenesis will pass opts to all Initializers in the list,
// aborting at the first error.
func (c chainInitializer) FromGenesis(opts guild.Options, params guild.GenesisParams, kv guild.KVStore) error {
	for _, i := range c.inits {
		if i == nil {
			continue
		}
		err := i.FromGenesis(opts, params, kv)
		if err != nil {
			return err
		}
	}
	return nil
}
