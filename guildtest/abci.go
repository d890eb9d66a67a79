package guildtest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/guild-net/guild"
	"github.com/guild-net/guild/app"
	"github.com/guild-net/guild/errors"
	"github.com/guild-net/guild/store"
	abci "github.com/tendermint/tendermint/abci/types"
)

// Tester is implemented by both *testing.T and *testing.B. Use it instead of
// the pointer type to allow notation to accept both objects.
type Tester interface {
	Helper()
	Errorf(string, ...interface{})
	Fatalf(string, ...interface{})
	Logf(string, ...interface{})
}

// AppRunner provides a translation layer between an ABCI interface and an
// application. It takes care of serializing messages and creating blocks.
type AppRunner struct {
	chainID string
	height  int64
	t       Tester
	app     abci.Application
}

// NewAppRunner creates an AppRunner instance that can be used to process
// deliver and check transaction requests. This runner expects all operations
// to succeed. Any error results in test failure.
func NewAppRunner(t Tester, app abci.Application, chainID string) *AppRunner {
	return &AppRunner{
		chainID: chainID,
		height:  0,
		t:       t,
		app:     app,
	}
}

// App is the minimal interface required by the AppRunner to be able to
// connect the ABCI and the application APIs together.
type App interface {
	DeliverTx(guild.Tx) error
	CheckTx(guild.Tx) error
	// we also allow standard queries... wrap into a bucket for ease of use
	guild.ReadOnlyKVStore
}

var _ App = (*AppRunner)(nil)

// InitChain serialize to JSON given genesis and loads it. Loading a genesis is
// causing a block creation.
func (w *AppRunner) InitChain(genesis interface{}) {
	raw, err := json.MarshalIndent(genesis, "", "  ")
	if err != nil {
		w.t.Fatalf("cannot JSON serialize genesis: %s", err)
	}

	// Load the genesis in a separate block.
	changed := w.InBlock(func(App) error {
		w.app.InitChain(abci.RequestInitChain{
			Time:          time.Now(),
			ChainId:       w.chainID,
			AppStateBytes: raw,
		})
		return nil
	})

	if !changed {
		w.t.Fatalf("genesis did not change the state")
	}
}

// CheckTx translates given transaction into ABCI interface and executes.
func (w *AppRunner) CheckTx(tx guild.Tx) error {
	raw, err := tx.Marshal()
	if err != nil {
		return errors.Wrap(err, "cannot marshal transaction")
	}
	if resp := w.app.CheckTx(raw); resp.Code != 0 {
		return fmt.Errorf("%d: %s", resp.Code, resp.Log)
	}
	return nil
}

// DeliverTx translates given transaction into ABCI interface and executes.
func (w *AppRunner) DeliverTx(tx guild.Tx) error {
	raw, err := tx.Marshal()
	if err != nil {
		return errors.Wrap(err, "cannot marshal transaction")
	}
	if resp := w.app.DeliverTx(raw); resp.Code != 0 {
		return fmt.Errorf("%d: %s", resp.Code, resp.Log)
	}
	return nil
}

// InBlock begins a block and runs given function. All transactions executed
// withing given function are part of newly created block. Upon success the
// block is finished and changes commited.
// InBlock returns true if the application state was modified by this block.
//
// Any failure is ending the test instantly.
func (w *AppRunner) InBlock(executeTx func(App) error) bool {
	w.t.Helper()

	w.height++

	initialHash := w.app.Info(abci.RequestInfo{}).LastBlockAppHash

	// BeginBlock will panic on error. The header must carry a non
	// zero time, because handlers read the block time from it.
	w.app.BeginBlock(abci.RequestBeginBlock{
		Header: abci.Header{
			ChainID: w.chainID,
			Height:  w.height,
			Time:    time.Unix(1500000000+w.height, 0),
		},
	})

	if err := executeTx(w); err != nil {
		w.t.Fatalf("operation failed with %+v", err)
	}

	// EndBlock returns Validator diffs mainly,
	// but not important for benchmarks just tests
	w.app.EndBlock(abci.RequestEndBlock{
		Height: w.height,
	})

	// Commit data contains the new app hash. It differs from the initial
	// hash only if the state was modified.
	finalHash := w.app.Commit().Data
	return !bytes.Equal(initialHash, finalHash)
}

var _ guild.ReadOnlyKVStore = (*AppRunner)(nil)

func (w *AppRunner) Get(key []byte) ([]byte, error) {
	query := w.app.Query(abci.RequestQuery{
		Path: "/",
		Data: key,
	})
	if query.Code != 0 {
		return nil, errors.Wrapf(errors.ErrDatabase, "query failed: %s", query.Log)
	}
	var value app.ResultSet
	if err := value.Unmarshal(query.Value); err != nil {
		return nil, errors.Wrap(err, "cannot parse values")
	}

	if len(value.Results) == 0 {
		return nil, nil
	}
	return value.Results[0], nil
}

func (w *AppRunner) Has(key []byte) (bool, error) {
	value, err := w.Get(key)
	if err != nil {
		return false, err
	}
	return len(value) > 0, nil
}

func (w *AppRunner) Iterator(start, end []byte) (guild.Iterator, error) {
	// Iteration over the ABCI query interface is supported only for the
	// full key range.
	if start != nil || end != nil {
		return nil, errors.Wrap(errors.ErrHuman, "iterator only implemented for entire range")
	}

	query := w.app.Query(abci.RequestQuery{
		Path: "/?prefix",
		Data: nil,
	})
	if query.Code != 0 {
		return nil, errors.Wrapf(errors.ErrDatabase, "query failed: %s", query.Log)
	}
	models, err := toModels(query.Key, query.Value)
	if err != nil {
		return nil, errors.Wrap(err, "cannot parse values")
	}

	return store.NewSliceIterator(models), nil
}

func (w *AppRunner) ReverseIterator(start, end []byte) (guild.Iterator, error) {
	return nil, errors.Wrap(errors.ErrHuman, "not implemented")
}

func toModels(keys []byte, values []byte) ([]guild.Model, error) {
	var k, v app.ResultSet
	if err := k.Unmarshal(keys); err != nil {
		return nil, errors.Wrap(err, "cannot parse keys")
	}
	if err := v.Unmarshal(values); err != nil {
		return nil, errors.Wrap(err, "cannot parse values")
	}
	return app.JoinResults(&k, &v)
}
