package iavl

import (
	"github.com/tendermint/iavl"
	dbm "github.com/tendermint/tendermint/libs/db"

	"github.com/guild-net/guild/errors"
	"github.com/guild-net/guild/store"
)

// DefaultCacheSize is the number of recently used tree nodes the
// iavl tree holds in memory.
const DefaultCacheSize = 10000

// CommitStore manages a iavl committed state
type CommitStore struct {
	tree *iavl.MutableTree
	// numHistory is the number of past versions kept on disk. On
	// every commit one version beyond this horizon is released.
	// Zero means all history is kept.
	numHistory int64
}

var _ store.CommitKVStore = CommitStore{}

// NewCommitStore creates a new store with disk backing.
// Call LoadLatestVersion before use to restore committed state.
func NewCommitStore(path, name string) CommitStore {
	db := dbm.NewDB(name, dbm.GoLevelDBBackend, path)
	tree := iavl.NewMutableTree(db, DefaultCacheSize)
	return CommitStore{tree: tree}
}

// MockCommitStore returns a store that is only backed by memory,
// useful for tests.
func MockCommitStore() CommitStore {
	tree := iavl.NewMutableTree(dbm.NewMemDB(), DefaultCacheSize)
	return CommitStore{tree: tree}
}

// NewCommitStoreFromTree adapts an already loaded tree. Used by tooling
// that rolls back and re-runs blocks.
func NewCommitStoreFromTree(tree *iavl.MutableTree) CommitStore {
	return CommitStore{tree: tree}
}

// Get returns the value at last committed state
// returns nil iff key doesn't exist.
func (s CommitStore) Get(key []byte) ([]byte, error) {
	_, value := s.tree.GetVersioned(key, s.tree.Version())
	return value, nil
}

// Commit the next version to disk, and returns info
func (s CommitStore) Commit() (store.CommitID, error) {
	hash, version, err := s.tree.SaveVersion()
	if err != nil {
		return store.CommitID{}, errors.Wrap(err, "cannot save tree version")
	}

	// release an old version to keep the database size bounded
	if s.numHistory > 0 && version > s.numHistory {
		if err := s.tree.DeleteVersion(version - s.numHistory); err != nil {
			return store.CommitID{}, errors.Wrapf(err, "cannot release version %d", version-s.numHistory)
		}
	}
	return store.CommitID{Version: version, Hash: hash}, nil
}

// LoadLatestVersion loads the latest persisted version.
// If there was a crash during the last commit, it is guaranteed
// to return a stable state, even if older.
func (s CommitStore) LoadLatestVersion() error {
	_, err := s.tree.Load()
	return err
}

// LatestVersion returns info on the latest version saved to disk
func (s CommitStore) LatestVersion() (store.CommitID, error) {
	return store.CommitID{
		Version: s.tree.Version(),
		Hash:    s.tree.Hash(),
	}, nil
}

// Adapter returns the working tree as a cacheable kv store.
func (s CommitStore) Adapter() store.CacheableKVStore {
	return treeStore{tree: s.tree}
}

// CacheWrap gives us a savepoint to perform actions
func (s CommitStore) CacheWrap() store.KVCacheWrap {
	return s.Adapter().CacheWrap()
}

// treeStore exposes the working tree under the usual kv store
// interface. Writes modify the tree in place but are only persisted
// once the owning CommitStore commits.
type treeStore struct {
	tree *iavl.MutableTree
}

var _ store.CacheableKVStore = treeStore{}

// Get returns nil iff key doesn't exist.
func (t treeStore) Get(key []byte) ([]byte, error) {
	_, value := t.tree.Get(key)
	return value, nil
}

// Has checks if a key exists.
func (t treeStore) Has(key []byte) (bool, error) {
	return t.tree.Has(key), nil
}

// Set adds a new value to the working tree.
func (t treeStore) Set(key, value []byte) error {
	t.tree.Set(key, value)
	return nil
}

// Delete removes from the working tree.
func (t treeStore) Delete(key []byte) error {
	t.tree.Remove(key)
	return nil
}

// NewBatch returns a batch that can write multiple ops atomically.
func (t treeStore) NewBatch() store.Batch {
	return store.NewNonAtomicBatch(t)
}

// CacheWrap layers a btree cache on top of the tree. All reads pass
// through to the tree until the cache is written back.
func (t treeStore) CacheWrap() store.KVCacheWrap {
	return store.NewBTreeCacheWrap(t, t.NewBatch(), nil)
}

// Iterator over a domain of keys in ascending order. End is exclusive.
// CONTRACT: No writes may happen within a domain while an iterator exists over it.
func (t treeStore) Iterator(start, end []byte) (store.Iterator, error) {
	iter := newLazyIterator()
	go func() {
		t.tree.IterateRange(start, end, true, iter.add)
		close(iter.read)
	}()
	return iter, nil
}

// ReverseIterator over a domain of keys in descending order. End is exclusive.
// CONTRACT: No writes may happen within a domain while an iterator exists over it.
func (t treeStore) ReverseIterator(start, end []byte) (store.Iterator, error) {
	iter := newLazyIterator()
	go func() {
		t.tree.IterateRange(start, end, false, iter.add)
		close(iter.read)
	}()
	return iter, nil
}
