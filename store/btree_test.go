package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBTreeCacheGetSet(t *testing.T) {
	base := MemStore()

	k, v := []byte("french"), []byte("fry")

	// empty at beginning
	has, err := base.Has(k)
	require.NoError(t, err)
	assert.False(t, has)

	// set and read it back
	require.NoError(t, base.Set(k, v))
	got, err := base.Get(k)
	require.NoError(t, err)
	assert.Equal(t, v, got)

	// cache sees the backing data
	cache := base.CacheWrap()
	got, err = cache.Get(k)
	require.NoError(t, err)
	assert.Equal(t, v, got)

	// write in cache is invisible below until Write
	k2, v2 := []byte("LA"), []byte("Dodgers")
	require.NoError(t, cache.Set(k2, v2))
	got, err = base.Get(k2)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, cache.Write())
	got, err = base.Get(k2)
	require.NoError(t, err)
	assert.Equal(t, v2, got)
}

func TestBTreeCacheConflicts(t *testing.T) {
	k1, v1 := []byte("a"), []byte("1")
	k2, v2 := []byte("b"), []byte("2")
	v3 := []byte("3")

	cases := map[string]struct {
		parentOps   []Op
		childOps    []Op
		parentQuery []byte
		parentWant  []byte // nil means miss
		childQuery  []byte
		childWant   []byte
		writeWant   []byte // parent result for childQuery after Write
	}{
		"child overwrites parent": {
			parentOps:   []Op{SetOp(k1, v1)},
			childOps:    []Op{SetOp(k1, v3)},
			parentQuery: k1,
			parentWant:  v1,
			childQuery:  k1,
			childWant:   v3,
			writeWant:   v3,
		},
		"child deletes parent": {
			parentOps:   []Op{SetOp(k1, v1)},
			childOps:    []Op{DelOp(k1)},
			parentQuery: k1,
			parentWant:  v1,
			childQuery:  k1,
			childWant:   nil,
			writeWant:   nil,
		},
		"child sets new key": {
			parentOps:   []Op{SetOp(k1, v1)},
			childOps:    []Op{SetOp(k2, v2)},
			parentQuery: k2,
			parentWant:  nil,
			childQuery:  k2,
			childWant:   v2,
			writeWant:   v2,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			parent := MemStore()
			for _, op := range tc.parentOps {
				require.NoError(t, op.Apply(parent))
			}
			child := parent.CacheWrap()
			for _, op := range tc.childOps {
				require.NoError(t, op.Apply(child))
			}

			got, err := parent.Get(tc.parentQuery)
			require.NoError(t, err)
			assert.Equal(t, tc.parentWant, got)

			got, err = child.Get(tc.childQuery)
			require.NoError(t, err)
			assert.Equal(t, tc.childWant, got)

			require.NoError(t, child.Write())
			got, err = parent.Get(tc.childQuery)
			require.NoError(t, err)
			assert.Equal(t, tc.writeWant, got)
		})
	}
}

func TestBTreeCacheDiscard(t *testing.T) {
	parent := MemStore()
	k, v := []byte("key"), []byte("value")
	require.NoError(t, parent.Set(k, v))

	child := parent.CacheWrap()
	require.NoError(t, child.Delete(k))
	require.NoError(t, child.Set([]byte("other"), []byte("data")))

	child.Discard()

	// parent untouched
	got, err := parent.Get(k)
	require.NoError(t, err)
	assert.Equal(t, v, got)
	got, err = parent.Get([]byte("other"))
	require.NoError(t, err)
	assert.Nil(t, got)
}
