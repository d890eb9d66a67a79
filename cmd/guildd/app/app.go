/*
Package app links together all the various components
to construct the guildd app.
*/
package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/guild-net/guild"
	"github.com/guild-net/guild/app"
	"github.com/guild-net/guild/migration"
	"github.com/guild-net/guild/store/iavl"
	"github.com/guild-net/guild/x"
	"github.com/guild-net/guild/x/batch"
	"github.com/guild-net/guild/x/charter"
	"github.com/guild-net/guild/x/collectibles"
	"github.com/guild-net/guild/x/onboard"
	"github.com/guild-net/guild/x/sigs"
	"github.com/guild-net/guild/x/treasury"
	"github.com/guild-net/guild/x/utils"
	"github.com/guild-net/guild/x/vault"
)

// Authenticator returns the typical authentication,
// just using public key signatures
func Authenticator() x.Authenticator {
	return sigs.Authenticate{}
}

// Chain returns a chain of decorators, to handle authentication,
// fees, logging, and recovery
func Chain(authFn x.Authenticator) app.Decorators {
	return app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		utils.NewKeyTagger(),
		// on CheckTx, bad tx don't affect state
		utils.NewSavepoint().OnCheck(),
		sigs.NewDecorator(),
		batch.NewDecorator(),
		treasury.NewFeeDecorator(authFn, treasury.NewController(treasury.NewBucket())),
		// on DeliverTx, bad tx will increment nonce and take fee
		// even if the message fails
		utils.NewSavepoint().OnDeliver(),
	)
}

// Router returns a default router with all message handlers
// registered.
func Router(authFn x.Authenticator) *app.Router {
	r := app.NewRouter()

	ctrl := treasury.NewController(treasury.NewBucket())
	gate := charter.NewGatekeeper()
	tokens := collectibles.NewController()

	treasury.RegisterRoutes(r, authFn, ctrl, vault.NewBlocklist())
	charter.RegisterRoutes(r, authFn)
	onboard.RegisterRoutes(r, authFn, gate, ctrl)
	collectibles.RegisterRoutes(r, authFn)
	vault.RegisterRoutes(r, authFn, gate, tokens)
	sigs.RegisterRoutes(r, authFn)
	migration.RegisterRoutes(r, authFn)
	return r
}

// QueryRouter returns a default query router, allowing access to
// "/wallets", "/charters", "/members", "/officers", "/nonces",
// "/collections", "/tokens", "/vaults", "/auth" and schema versions.
func QueryRouter() guild.QueryRouter {
	r := guild.NewQueryRouter()

	r.RegisterAll(
		treasury.RegisterQuery,
		charter.RegisterQuery,
		onboard.RegisterQuery,
		collectibles.RegisterQuery,
		vault.RegisterQuery,
		sigs.RegisterQuery,
		migration.RegisterQuery,
	)
	return r
}

// Stack wires up a standard router with a standard decorator
// chain. This can be passed into BaseApp.
func Stack() guild.Handler {
	authFn := Authenticator()
	return Chain(authFn).
		WithHandler(Router(authFn))
}

// Application constructs a basic ABCI application with
// the given arguments. If you are not sure what to use
// for the Handler, just use Stack().
func Application(name string, h guild.Handler,
	tx guild.TxDecoder, dbPath string, debug bool) (app.BaseApp, error) {

	ctx := context.Background()
	kv, err := CommitKVStore(dbPath)
	if err != nil {
		return app.BaseApp{}, err
	}
	store := app.NewStoreApp(name, kv, QueryRouter(), ctx)
	base := app.NewBaseApp(store, tx, h, debug)
	return base, nil
}

// CommitKVStore returns an initialized KVStore that persists
// the data to the named path.
func CommitKVStore(dbPath string) (guild.CommitKVStore, error) {
	// memory backed case, just for testing
	if dbPath == "" {
		return iavl.MockCommitStore(), nil
	}

	// Expand the path fully
	path, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, fmt.Errorf("invalid database name: %s", path)
	}

	// Some external calls accidently add a ".db", which is now removed
	path = strings.TrimSuffix(path, filepath.Ext(path))

	// Split the database name into it's components (dir, name)
	dir := filepath.Dir(path)
	name := filepath.Base(path)
	return iavl.NewCommitStore(dir, name), nil
}
