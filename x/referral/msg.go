package referral

import (
	"bytes"

	"github.com/cascade-one/cascade"
	"github.com/cascade-one/cascade/errors"
)

var _ cascade.Msg = (*BindSponsorMsg)(nil)

// Path returns the routing path for this message.
func (BindSponsorMsg) Path() string {
	return "referral/bind"
}

// Validate makes sure that this is sensible.
func (m *BindSponsorMsg) Validate() error {
	if len(m.Position) == 0 {
		return errors.Wrap(errors.ErrEmpty, "position")
	}
	if len(m.Sponsor) == 0 {
		return errors.Wrap(errors.ErrEmpty, "sponsor")
	}
	if bytes.Equal(m.Position, m.Sponsor) {
		return ErrSelfReferral
	}
	return nil
}

var _ cascade.Msg = (*DistributeMsg)(nil)

// Path returns the routing path for this message.
func (DistributeMsg) Path() string {
	return "referral/distribute"
}

// Validate makes sure that this is sensible.
func (m *DistributeMsg) Validate() error {
	if len(m.Position) == 0 {
		return errors.Wrap(errors.ErrEmpty, "position")
	}
	if m.Amount == 0 {
		return errors.Wrap(errors.ErrAmount, "distributed amount must be positive")
	}
	return nil
}

var _ cascade.Msg = (*UpdateConfigurationMsg)(nil)

// Path returns the routing path for this message.
func (UpdateConfigurationMsg) Path() string {
	return "referral/update_configuration"
}

// Validate makes sure that this is sensible.
func (m *UpdateConfigurationMsg) Validate() error {
	if m.Patch == nil {
		return errors.Wrap(errors.ErrEmpty, "patch")
	}
	return nil
}
