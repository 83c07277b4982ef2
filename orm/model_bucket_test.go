package orm

import (
	"encoding/binary"
	"testing"

	"github.com/cascade-one/cascade/errors"
	"github.com/cascade-one/cascade/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counter is a trivial model for testing the bucket implementation.
type counter struct {
	Count int64
}

func (c *counter) Marshal() ([]byte, error) {
	raw := make([]byte, 8)
	binary.BigEndian.PutUint64(raw, uint64(c.Count))
	return raw, nil
}

func (c *counter) Unmarshal(raw []byte) error {
	if len(raw) != 8 {
		return errors.Wrapf(errors.ErrInput, "invalid length: %d", len(raw))
	}
	c.Count = int64(binary.BigEndian.Uint64(raw))
	return nil
}

func (c *counter) Validate() error {
	if c.Count < 0 {
		return errors.Wrap(errors.ErrModel, "negative count")
	}
	return nil
}

// badModel is a model of another type, to test type checks.
type badModel struct{}

func (badModel) Marshal() ([]byte, error)    { return []byte("m"), nil }
func (*badModel) Unmarshal(raw []byte) error { return nil }
func (badModel) Validate() error             { return nil }

func TestModelBucket(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &counter{})

	err := b.Put(db, []byte("c1"), &counter{Count: 1})
	require.NoError(t, err)

	var c counter
	require.NoError(t, b.One(db, []byte("c1"), &c))
	assert.EqualValues(t, 1, c.Count)

	ok, err := b.Has(db, []byte("c1"))
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, b.Delete(db, []byte("c1")))
	if err := b.Delete(db, []byte("c1")); !errors.ErrNotFound.Is(err) {
		t.Fatalf("got error: %+v", err)
	}
	if err := b.One(db, []byte("c1"), &c); !errors.ErrNotFound.Is(err) {
		t.Fatalf("got error: %+v", err)
	}
}

func TestModelBucketPutValidates(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &counter{})

	err := b.Put(db, []byte("c1"), &counter{Count: -1})
	if !errors.ErrModel.Is(err) {
		t.Fatalf("got error: %+v", err)
	}

	err = b.Put(db, nil, &counter{Count: 1})
	if !errors.ErrEmpty.Is(err) {
		t.Fatalf("got error: %+v", err)
	}
}

func TestModelBucketTypeCheck(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &counter{})

	require.NoError(t, b.Put(db, []byte("c1"), &counter{Count: 1}))

	var bad badModel
	if err := b.One(db, []byte("c1"), &bad); !errors.ErrType.Is(err) {
		t.Fatalf("got error: %+v", err)
	}
	if err := b.Put(db, []byte("c2"), &bad); !errors.ErrType.Is(err) {
		t.Fatalf("got error: %+v", err)
	}
}

func TestModelBucketPrefix(t *testing.T) {
	db := store.MemStore()
	a := NewModelBucket("aaa", &counter{})
	b := NewModelBucket("bbb", &counter{})

	require.NoError(t, a.Put(db, []byte("k"), &counter{Count: 1}))

	// same key in another bucket must not collide
	var c counter
	if err := b.One(db, []byte("k"), &c); !errors.ErrNotFound.Is(err) {
		t.Fatalf("got error: %+v", err)
	}
}
