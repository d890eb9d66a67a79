package server

import (
	"encoding/json"
	"io/ioutil"

	"github.com/guild-net/guild"
	"github.com/guild-net/guild/errors"
	"github.com/guild-net/guild/store"
)

// ValidateGenesis checks that each given genesis file can initialize
// a fresh application state.
func ValidateGenesis(ini guild.Initializer, genesisPaths []string) error {
	for _, path := range genesisPaths {
		if err := validateGenesis(ini, path); err != nil {
			return errors.Wrap(err, path)
		}
	}
	return nil
}

func validateGenesis(ini guild.Initializer, genesisPath string) error {
	b, err := ioutil.ReadFile(genesisPath)
	if err != nil {
		return errors.Wrap(err, "cannot read genesis file")
	}

	var genesis struct {
		State guild.Options `json:"app_state"`
	}
	if err := json.Unmarshal(b, &genesis); err != nil {
		return errors.Wrap(err, "cannot JSON deserialize genesis")
	}

	// Use in memory store because we want to discard the result.
	db := store.MemStore()

	if err := ini.FromGenesis(genesis.State, guild.GenesisParams{}, db); err != nil {
		return errors.Wrap(err, "cannot initialize from genesis")
	}

	return nil
}
