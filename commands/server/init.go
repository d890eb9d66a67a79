package server

import (
	"encoding/json"
	"io/ioutil"
	"path/filepath"

	"github.com/tendermint/tendermint/libs/log"

	"github.com/guild-net/guild/errors"
)

// GenOptions can parse command-line and flag to
// generate default app_options for the genesis file.
// This is application-specific
type GenOptions func(args []string) (json.RawMessage, error)

// InitCmd fills in the app_state of an already initialized genesis file.
// Run `tendermint init` first to create the file itself.
// The application passes in a function to generate proper options.
func InitCmd(gen GenOptions, logger log.Logger, home string, args []string) error {
	// no app_options, leave like tendermint
	if gen == nil {
		return nil
	}

	options, err := gen(args)
	if err != nil {
		return err
	}

	genFile := filepath.Join(home, "config", "genesis.json")
	logger.Info("Writing app options to genesis file", "path", genFile)
	return addGenesisOptions(genFile, options)
}

// GenesisDoc involves some tendermint-specific structures we don't
// want to parse, so we just grab it into a raw object format,
// so we can add one line.
type GenesisDoc map[string]json.RawMessage

func addGenesisOptions(filename string, options json.RawMessage) error {
	bz, err := ioutil.ReadFile(filename)
	if err != nil {
		return errors.Wrap(err, "cannot read genesis file")
	}

	var doc GenesisDoc
	if err := json.Unmarshal(bz, &doc); err != nil {
		return errors.Wrap(err, "cannot deserialize genesis file")
	}

	doc["app_state"] = options
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(err, "cannot serialize genesis file")
	}

	err = ioutil.WriteFile(filename, out, 0600)
	return errors.Wrap(err, "cannot write genesis file")
}
