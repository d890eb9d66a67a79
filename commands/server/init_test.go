package server

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/guild-net/guild/guildtest/assert"
	"github.com/tendermint/tendermint/libs/log"
)

func TestInitCmd(t *testing.T) {
	home, err := ioutil.TempDir("", "guildd-init")
	assert.Nil(t, err)
	defer os.RemoveAll(home)

	assert.Nil(t, os.Mkdir(filepath.Join(home, "config"), 0755))
	genFile := filepath.Join(home, "config", "genesis.json")
	genesis := `{"chain_id": "test-chain-fX7B2c", "validators": [{"power": "10"}]}`
	assert.Nil(t, ioutil.WriteFile(genFile, []byte(genesis), 0600))

	gen := func(args []string) (json.RawMessage, error) {
		return json.RawMessage(`{"initial": "state"}`), nil
	}
	assert.Nil(t, InitCmd(gen, log.NewNopLogger(), home, nil))

	bz, err := ioutil.ReadFile(genFile)
	assert.Nil(t, err)
	var doc GenesisDoc
	assert.Nil(t, json.Unmarshal(bz, &doc))

	// old values survive and app_state is added
	assert.Equal(t, json.RawMessage(`"test-chain-fX7B2c"`), doc["chain_id"])
	var state map[string]string
	assert.Nil(t, json.Unmarshal(doc["app_state"], &state))
	assert.Equal(t, "state", state["initial"])
	if len(doc["validators"]) == 0 {
		t.Fatal("validators dropped from the genesis file")
	}
}

func TestInitCmdWithoutGenerator(t *testing.T) {
	// a nil generator leaves the genesis file alone
	assert.Nil(t, InitCmd(nil, log.NewNopLogger(), "/does/not/exist", nil))
}
