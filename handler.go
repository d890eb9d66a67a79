package guild

import (
	"bytes"
	"encoding/json"

	"github.com/guild-net/guild/errors"
	abci "github.com/tendermint/tendermint/abci/types"
)

// Handler is a core engine that can process a few specific messages
// This could represent "send tokens", or "redeem an onboarding coupon"
type Handler interface {
	Checker
	Deliverer
}

// Checker is a subset of Handler to verify the validity of a transaction.
// It is its own interface to allow better type controls in the next
// arguments in Decorator
type Checker interface {
	Check(ctx Context, store KVStore, tx Tx) (*CheckResult, error)
}

// Deliverer is a subset of Handler to execute a transaction.
// It is its own interface to allow better type controls in the next
// arguments in Decorator
type Deliverer interface {
	Deliver(ctx Context, store KVStore, tx Tx) (*DeliverResult, error)
}

// Decorator wraps a Handler to provide common functionality
// like authentication, or fee-handling, to many Handlers
type Decorator interface {
	Check(ctx Context, store KVStore, tx Tx, next Checker) (*CheckResult, error)
	Deliver(ctx Context, store KVStore, tx Tx, next Deliverer) (*DeliverResult, error)
}

// Registry is an interface to register your handler,
// the setup side of a Router
type Registry interface {
	// Handle assigns given handler to handle processing of every message
	// of provided type.
	// Using a message with an invalid path panics.
	// Registering a handler for a message type more than once panics.
	Handle(Msg, Handler)
}

// Options are the app options
// Each extension can look up it's key and parse the json as desired
type Options map[string]json.RawMessage

// ReadOptions reads the values stored under a given key,
// and parses the json into the given obj.
// Returns an error if it cannot parse.
// Noop and no error if key is missing
func (o Options) ReadOptions(key string, obj interface{}) error {
	msg := o[key]
	if len(msg) == 0 {
		return nil
	}
	return json.Unmarshal(msg, obj)
}

// Stream expects an array of json elements under the given key and returns
// a function that deserializes the next element of that array with each
// call. Once all elements are consumed, errors.ErrEmpty is returned. Any
// call after the stream was terminated returns errors.ErrState.
// When there is no data under the given key, errors.ErrEmpty is returned
// instead of a stream.
//
// Use this instead of ReadOptions when the array can be too big to be
// deserialized at once.
func (o Options) Stream(key string) (func(obj interface{}) error, error) {
	raw := o[key]
	if len(raw) == 0 {
		return nil, errors.Wrapf(errors.ErrEmpty, "no data under %q key", key)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	var started, done bool
	return func(obj interface{}) error {
		if done {
			return errors.Wrap(errors.ErrState, "stream depleted")
		}
		if !started {
			started = true
			tok, err := dec.Token()
			if err != nil {
				done = true
				return errors.Wrapf(errors.ErrInput, "invalid json: %s", err)
			}
			if delim, ok := tok.(json.Delim); !ok || delim != '[' {
				done = true
				return errors.Wrapf(errors.ErrInput, "expected an array, got %v", tok)
			}
		}
		if !dec.More() {
			done = true
			if _, err := dec.Token(); err != nil {
				return errors.Wrapf(errors.ErrInput, "invalid json: %s", err)
			}
			return errors.Wrap(errors.ErrEmpty, "no more elements")
		}
		if err := dec.Decode(obj); err != nil {
			done = true
			return errors.Wrapf(errors.ErrInput, "cannot decode element: %s", err)
		}
		return nil
	}, nil
}

// Initializer implementations are used to initialize
// extensions from genesis file contents
type Initializer interface {
	FromGenesis(Options, GenesisParams, KVStore) error
}

// GenesisParams represents parameters set in genesis that could be useful
// for some of the extensions.
type GenesisParams struct {
	Validators []abci.ValidatorUpdate
}

// FromInitChain initialises GenesisParams from abci.RequestInitChain data.
func FromInitChain(req abci.RequestInitChain) GenesisParams {
	return GenesisParams{
		Validators: req.Validators,
	}
}
