package position

import (
	"github.com/cascade-one/cascade/errors"
	"github.com/cascade-one/cascade/orm"
)

var _ orm.Model = (*Position)(nil)

// Validate ensures the position is a valid entity.
func (p *Position) Validate() error {
	if err := p.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	return nil
}

// NewPositionBucket returns a bucket for keeping positions, keyed by
// the sequence generated position ID.
func NewPositionBucket() orm.ModelBucket {
	return orm.NewModelBucket("position", &Position{})
}
