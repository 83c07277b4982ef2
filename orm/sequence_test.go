package orm

import (
	"bytes"
	"testing"

	"github.com/cascade-one/cascade/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequence(t *testing.T) {
	db := store.MemStore()

	s := NewSequence("positions", "id")

	// generated values increase monotonically
	var lastVal []byte
	for i := int64(1); i <= 10; i++ {
		val, err := s.NextVal(db)
		require.NoError(t, err)
		assert.Len(t, val, 8)
		assert.Equal(t, i, DecodeSequence(val))
		if lastVal != nil {
			assert.True(t, bytes.Compare(lastVal, val) < 0)
		}
		lastVal = val
	}

	// Latest does not modify the state
	latest, raw, err := s.Latest(db)
	require.NoError(t, err)
	assert.EqualValues(t, 10, latest)
	assert.Equal(t, lastVal, raw)
	latest, _, err = s.Latest(db)
	require.NoError(t, err)
	assert.EqualValues(t, 10, latest)

	// sequences with different names are independent
	other := NewSequence("positions", "other")
	n, err := other.NextInt(db)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}
