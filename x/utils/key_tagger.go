package utils

import (
	"fmt"

	"github.com/tendermint/tendermint/libs/common"

	"github.com/guild-net/guild"
	"github.com/guild-net/guild/store"
)

// KeyTagger is a decorator that records all Set/Delete
// operations performed by its children and adds all those keys
// as DeliverTx tags.
//
// Tags are only added on DeliverTx, not on CheckTx, as only
// deliveries are indexed by tendermint.
type KeyTagger struct{}

var _ guild.Decorator = KeyTagger{}

// NewKeyTagger creates a KeyTagger decorator
func NewKeyTagger() KeyTagger {
	return KeyTagger{}
}

// Check does nothing
func (KeyTagger) Check(ctx guild.Context, db guild.KVStore, tx guild.Tx, next guild.Checker) (*guild.CheckResult, error) {
	return next.Check(ctx, db, tx)
}

// Deliver passes in a recording KVStore into the child and
// uses that to calculate tags to add to DeliverResult
func (KeyTagger) Deliver(ctx guild.Context, db guild.KVStore, tx guild.Tx, next guild.Deliverer) (*guild.DeliverResult, error) {
	record := store.NewRecordingStore(db)
	res, err := next.Deliver(ctx, record, tx)
	if err != nil {
		return res, err
	}

	res.Tags = append(res.Tags, kvPairs(record)...)
	return res, nil
}

var (
	recordSet    = []byte("s")
	recordDelete = []byte("d")
)

// kvPairs will get the kvpairs from an underlying store if possible
// use this, so we can use interface for recordingStore
func kvPairs(db guild.KVStore) common.KVPairs {
	r, ok := db.(store.Recorder)
	if !ok {
		return nil
	}
	return changesToTags(r.KVPairs())
}

// changesToTags hex-encodes the keys, as tendermint requires
// tags to be valid utf-8 strings to index them.
func changesToTags(changes map[string][]byte) common.KVPairs {
	l := len(changes)
	if l == 0 {
		return nil
	}
	res := make(common.KVPairs, 0, l)
	for k, v := range changes {
		tag := recordSet
		if v == nil {
			tag = recordDelete
		}
		pair := common.KVPair{
			Key:   []byte(fmt.Sprintf("%X", k)),
			Value: tag,
		}
		res = append(res, pair)
	}
	res.Sort()
	return res
}
