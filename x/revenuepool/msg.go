package revenuepool

import (
	"github.com/cascade-one/cascade"
	"github.com/cascade-one/cascade/errors"
)

var _ cascade.Msg = (*FundMsg)(nil)

// Path returns the routing path for this message.
func (FundMsg) Path() string {
	return "revenuepool/fund"
}

// Validate makes sure that this is sensible.
func (m *FundMsg) Validate() error {
	if !isPoolName(m.Pool) {
		return errors.Wrapf(errors.ErrInput, "invalid pool name %q", m.Pool)
	}
	if m.Amount == 0 {
		return errors.Wrap(errors.ErrAmount, "funded amount must be positive")
	}
	return nil
}

var _ cascade.Msg = (*SetSharesMsg)(nil)

// Path returns the routing path for this message.
func (SetSharesMsg) Path() string {
	return "revenuepool/setshares"
}

// Validate makes sure that this is sensible.
func (m *SetSharesMsg) Validate() error {
	if !isPoolName(m.Pool) {
		return errors.Wrapf(errors.ErrInput, "invalid pool name %q", m.Pool)
	}
	if len(m.Key) == 0 {
		return errors.Wrap(errors.ErrEmpty, "member key")
	}
	if m.Shares > 0 {
		if err := m.Beneficiary.Validate(); err != nil {
			return errors.Wrap(err, "beneficiary")
		}
	}
	return nil
}

var _ cascade.Msg = (*HarvestMsg)(nil)

// Path returns the routing path for this message.
func (HarvestMsg) Path() string {
	return "revenuepool/harvest"
}

// Validate makes sure that this is sensible.
func (m *HarvestMsg) Validate() error {
	if !isPoolName(m.Pool) {
		return errors.Wrapf(errors.ErrInput, "invalid pool name %q", m.Pool)
	}
	if len(m.Key) == 0 {
		return errors.Wrap(errors.ErrEmpty, "member key")
	}
	return nil
}

var _ cascade.Msg = (*UpdateConfigurationMsg)(nil)

// Path returns the routing path for this message.
func (UpdateConfigurationMsg) Path() string {
	return "revenuepool/update_configuration"
}

// Validate makes sure that this is sensible.
func (m *UpdateConfigurationMsg) Validate() error {
	if m.Patch == nil {
		return errors.Wrap(errors.ErrEmpty, "patch")
	}
	return nil
}
