//nolint
package store

import "github.com/guild-net/guild"

// Move references for all storage types into this package
// for shorter names everywhere

type ReadOnlyKVStore = guild.ReadOnlyKVStore
type KVStore = guild.KVStore
type SetDeleter = guild.SetDeleter
type Batch = guild.Batch
type Iterator = guild.Iterator
type CacheableKVStore = guild.CacheableKVStore
type KVCacheWrap = guild.KVCacheWrap
type CommitKVStore = guild.CommitKVStore
type CommitID = guild.CommitID

// Model groups together key and value to help build Iterators
type Model = guild.Model
