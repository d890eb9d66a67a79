package app

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/guild-net/guild"
	"github.com/guild-net/guild/app"
	"github.com/guild-net/guild/coin"
	"github.com/guild-net/guild/crypto"
	"github.com/guild-net/guild/errors"
	"github.com/guild-net/guild/migration"
	"github.com/guild-net/guild/x/charter"
	"github.com/guild-net/guild/x/onboard"
	"github.com/guild-net/guild/x/treasury"
	"github.com/guild-net/guild/x/vault"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// GenInitOptions will produce some basic options for one rich
// account, to use for dev mode.
//
// The first argument overrides the native ticker, the second the
// funded address. Without an address one is generated and its keys
// are printed out.
func GenInitOptions(args []string) (json.RawMessage, error) {
	code := "GLD"
	if len(args) > 0 {
		code = args[0]
		// The wrapped form carries a W prefix, so only a three
		// letter code leaves room for it.
		if !coin.IsCC(code) || len(code) != 3 {
			return nil, errors.Wrapf(errors.ErrCurrency, "invalid ticker: %q", code)
		}
	}
	wrapped := "W" + code

	var addr guild.Address
	if len(args) > 1 {
		a, err := guild.ParseAddress(args[1])
		if err != nil {
			return nil, errors.Wrap(err, "address")
		}
		addr = a
	} else {
		// if no address provided, auto-generate one
		// and print out the keys
		bz, keys, err := GenerateCoinKey()
		if err != nil {
			return nil, err
		}
		addr = bz
		fmt.Println(keys)
	}

	type (
		dict  map[string]interface{}
		array []interface{}
	)
	return json.Marshal(dict{
		"treasury": array{
			dict{
				"address": addr,
				"coins": array{
					dict{"whole": 123456789, "ticker": code},
					dict{"whole": 123456789, "ticker": wrapped},
				},
			},
		},
		"conf": dict{
			"migration": dict{
				"admin": addr,
			},
			"treasury": treasury.Configuration{
				Metadata:  &guild.Metadata{Schema: 1},
				Collector: addr,
				// no fee
				MinimalFee: coin.Coin{},
			},
			"onboard": onboard.Configuration{
				Metadata:      &guild.Metadata{Schema: 1},
				NativeTicker:  code,
				WrappedTicker: wrapped,
				UnitTicker:    "SEAT",
			},
		},
		"initialize_schema": []string{
			"sigs",
			"treasury",
			"charter",
			"onboard",
			"collectibles",
			"vault",
		},
	})
}

// Initializers returns the genesis initializers of all extensions.
// The charter initializer must run before the vault one, because
// genesis vaults reference charters by sequence number.
func Initializers() guild.Initializer {
	return app.ChainInitializers(
		&migration.Initializer{},
		&treasury.Initializer{},
		&charter.Initializer{},
		&onboard.Initializer{},
		&vault.Initializer{},
	)
}

// GenerateApp is used to create a stub for server/start.go command
func GenerateApp(home string, logger log.Logger, debug bool) (abci.Application, error) {
	// db goes in a subdir, but "" -> "" for memdb
	var dbPath string
	if home != "" {
		dbPath = filepath.Join(home, "guild.db")
	}

	stack := Stack()
	application, err := Application("guildd", stack, TxDecoder, dbPath, debug)
	if err != nil {
		return nil, err
	}
	application.WithInit(Initializers())

	// set the logger and return
	application.WithLogger(logger)
	return application, nil
}

// InlineApp constructs the application over an existing store. The
// retry command uses it to re-run a block against captured state.
func InlineApp(kv guild.CommitKVStore, logger log.Logger, debug bool) abci.Application {
	ctx := context.Background()
	store := app.NewStoreApp("guildd", kv, QueryRouter(), ctx)
	store.WithInit(Initializers())
	store.WithLogger(logger)
	return app.NewBaseApp(store, TxDecoder, Stack(), debug)
}

type output struct {
	Pubkey *crypto.PublicKey  `json:"pub_key"`
	Secret *crypto.PrivateKey `json:"secret"`
}

// GenerateCoinKey returns the address of a public key, along with a
// json representation of the keys. You can give coins to this address
// and import the keys in a client to spend them.
func GenerateCoinKey() (guild.Address, string, error) {
	privKey := crypto.GenPrivKeyEd25519()
	pubKey := privKey.PublicKey()
	addr := pubKey.Address()

	out := output{Pubkey: pubKey, Secret: privKey}
	keys, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, "", err
	}

	return addr, string(keys), nil
}
