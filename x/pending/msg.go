package pending

import (
	"github.com/cascade-one/cascade"
	"github.com/cascade-one/cascade/errors"
)

var _ cascade.Msg = (*ClaimMsg)(nil)

// Path returns the routing path for this message.
func (ClaimMsg) Path() string {
	return "pending/claim"
}

// Validate makes sure that this is sensible.
func (m *ClaimMsg) Validate() error {
	if err := m.Beneficiary.Validate(); err != nil {
		return errors.Wrap(err, "beneficiary")
	}
	return nil
}
