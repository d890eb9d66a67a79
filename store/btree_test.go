package store

import (
	"testing"
)

// Generic KVStore behaviour is covered by the shared test suite, run
// here against the btree cache over an empty base.
var suite = NewTestSuite(func() (CacheableKVStore, func()) {
	return MemStore(), func() {}
})

func TestBTreeCacheGetSet(t *testing.T) {
	suite.GetSet(t)
}

func TestBTreeCacheConflicts(t *testing.T) {
	suite.CacheConflicts(t)
}

func TestBTreeFuzzIterator(t *testing.T) {
	suite.FuzzIterator(t)
}

func TestBTreeIteratorWithConflicts(t *testing.T) {
	suite.IteratorWithConflicts(t)
}
