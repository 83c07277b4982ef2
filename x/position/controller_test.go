package position

import (
	"bytes"
	"testing"

	"github.com/cascade-one/cascade/cascadetest"
	"github.com/cascade-one/cascade/errors"
	"github.com/cascade-one/cascade/store"
)

func TestControllerLifecycle(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController(NewPositionBucket())

	alice := cascadetest.NewCondition().Address()
	bob := cascadetest.NewCondition().Address()

	first, err := ctrl.Create(db, alice)
	if err != nil {
		t.Fatalf("cannot create position: %+v", err)
	}
	second, err := ctrl.Create(db, alice)
	if err != nil {
		t.Fatalf("cannot create position: %+v", err)
	}
	if bytes.Equal(first, second) {
		t.Fatal("position IDs must be unique")
	}

	if owner, err := ctrl.ControllerOf(db, first); err != nil {
		t.Fatalf("cannot resolve owner: %+v", err)
	} else if !owner.Equals(alice) {
		t.Fatalf("want alice as the owner, got %s", owner)
	}

	if err := ctrl.Transfer(db, first, bob); err != nil {
		t.Fatalf("cannot transfer: %+v", err)
	}
	if owner, _ := ctrl.ControllerOf(db, first); !owner.Equals(bob) {
		t.Fatalf("want bob as the owner, got %s", owner)
	}

	if err := ctrl.Burn(db, first); err != nil {
		t.Fatalf("cannot burn: %+v", err)
	}
	if _, err := ctrl.ControllerOf(db, first); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want not found for a burned position, got %+v", err)
	}

	// Burning must not proceed twice.
	if err := ctrl.Burn(db, first); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want not found, got %+v", err)
	}

	// Other positions are not affected.
	if owner, err := ctrl.ControllerOf(db, second); err != nil || !owner.Equals(alice) {
		t.Fatalf("second position must survive: %s, %+v", owner, err)
	}
}

func TestControllerUnknownPosition(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController(NewPositionBucket())

	if _, err := ctrl.ControllerOf(db, cascadetest.SequenceID(123)); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want not found, got %+v", err)
	}
}
