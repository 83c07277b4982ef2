//nolint
package store

import "github.com/cascade-one/cascade"

// Move references for all storage types into this package
// for shorter names everywhere

type ReadOnlyKVStore = cascade.ReadOnlyKVStore
type KVStore = cascade.KVStore
type SetDeleter = cascade.SetDeleter
type Batch = cascade.Batch
type CacheableKVStore = cascade.CacheableKVStore
type KVCacheWrap = cascade.KVCacheWrap

// Model groups together key and value to return
type Model struct {
	Key   []byte
	Value []byte
}
