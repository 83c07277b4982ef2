package position

import (
	"github.com/cascade-one/cascade"
	"github.com/cascade-one/cascade/errors"
	"github.com/cascade-one/cascade/orm"
)

// Controller maintains the position registry. Other extensions use it
// to resolve a position ID into its current owner.
type Controller struct {
	bucket orm.ModelBucket
	seq    orm.Sequence
}

// NewController returns a controller that keeps positions in the
// given bucket and allocates IDs from the "id" sequence.
func NewController(bucket orm.ModelBucket) *Controller {
	return &Controller{
		bucket: bucket,
		seq:    orm.NewSequence("position", "id"),
	}
}

// Create registers a new position and returns its ID.
func (c *Controller) Create(db cascade.KVStore, owner cascade.Address) ([]byte, error) {
	if err := owner.Validate(); err != nil {
		return nil, errors.Wrap(err, "owner")
	}
	id, err := c.seq.NextVal(db)
	if err != nil {
		return nil, errors.Wrap(err, "cannot acquire ID")
	}
	p := Position{Owner: owner}
	if err := c.bucket.Put(db, id, &p); err != nil {
		return nil, errors.Wrap(err, "cannot store position")
	}
	return id, nil
}

// ControllerOf returns the address currently controlling the given
// position. A burned or unknown position returns ErrNotFound.
func (c *Controller) ControllerOf(db cascade.ReadOnlyKVStore, id []byte) (cascade.Address, error) {
	var p Position
	if err := c.bucket.One(db, id, &p); err != nil {
		return nil, errors.Wrapf(err, "position %x", id)
	}
	return p.Owner, nil
}

// Transfer assigns the position to a new owner.
func (c *Controller) Transfer(db cascade.KVStore, id []byte, newOwner cascade.Address) error {
	if err := newOwner.Validate(); err != nil {
		return errors.Wrap(err, "new owner")
	}
	var p Position
	if err := c.bucket.One(db, id, &p); err != nil {
		return errors.Wrapf(err, "position %x", id)
	}
	p.Owner = newOwner
	return c.bucket.Put(db, id, &p)
}

// Burn removes the position from the registry. The position ID is
// never reused.
func (c *Controller) Burn(db cascade.KVStore, id []byte) error {
	return c.bucket.Delete(db, id)
}
