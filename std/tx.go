package std

import (
	"github.com/cascade-one/cascade"
	"github.com/cascade-one/cascade/errors"
)

var _ cascade.Tx = (*Tx)(nil)

// GetMsg returns a single message instance that this transaction
// wraps. Exactly one message attribute must be set.
func (tx *Tx) GetMsg() (cascade.Msg, error) {
	return cascade.ExtractMsgFromSum(tx)
}

// TxDecoder unmarshals a transaction from its binary representation.
func TxDecoder(bz []byte) (cascade.Tx, error) {
	tx := &Tx{}
	if err := tx.Unmarshal(bz); err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return tx, nil
}
