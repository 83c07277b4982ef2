package position

import (
	"github.com/cascade-one/cascade"
	"github.com/cascade-one/cascade/errors"
)

var _ cascade.Msg = (*IssueMsg)(nil)

// Path returns the routing path for this message.
func (IssueMsg) Path() string {
	return "position/issue"
}

// Validate makes sure that this is sensible.
func (m *IssueMsg) Validate() error {
	if err := m.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	if m.Price == 0 {
		return errors.Wrap(errors.ErrAmount, "price must be positive")
	}
	if m.Shares == 0 {
		return errors.Wrap(errors.ErrAmount, "shares must be positive")
	}
	return nil
}

var _ cascade.Msg = (*TransferMsg)(nil)

// Path returns the routing path for this message.
func (TransferMsg) Path() string {
	return "position/transfer"
}

// Validate makes sure that this is sensible.
func (m *TransferMsg) Validate() error {
	if len(m.PositionID) == 0 {
		return errors.Wrap(errors.ErrEmpty, "position id")
	}
	if err := m.NewOwner.Validate(); err != nil {
		return errors.Wrap(err, "new owner")
	}
	return nil
}

var _ cascade.Msg = (*BurnMsg)(nil)

// Path returns the routing path for this message.
func (BurnMsg) Path() string {
	return "position/burn"
}

// Validate makes sure that this is sensible.
func (m *BurnMsg) Validate() error {
	if len(m.PositionID) == 0 {
		return errors.Wrap(errors.ErrEmpty, "position id")
	}
	return nil
}
