package cascadetest

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/cascade-one/cascade"
)

// NewCondition returns a random condition. Each call returns a unique
// instance, which makes it a cheap way to get a fresh address for tests.
func NewCondition() cascade.Condition {
	data := make([]byte, 16)
	if _, err := rand.Read(data); err != nil {
		panic(err)
	}
	return cascade.NewCondition("test", "rand", data)
}

// SequenceID returns an ID encoded as if it was generated by an
// orm.Sequence instance.
func SequenceID(n uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, n)
	return b
}
