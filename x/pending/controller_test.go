package pending

import (
	"testing"

	"github.com/cascade-one/cascade/cascadetest"
	"github.com/cascade-one/cascade/errors"
	"github.com/cascade-one/cascade/store"
	"github.com/cascade-one/cascade/x/funds"
)

func TestCreditAndPending(t *testing.T) {
	db := store.MemStore()
	fctrl := funds.NewController(funds.NewWalletBucket())
	ctrl := NewController(NewPendingBucket(), fctrl)

	alice := cascadetest.NewCondition().Address()

	if p, err := ctrl.Pending(db, alice); err != nil || p != 0 {
		t.Fatalf("want zero pending, got %d, %+v", p, err)
	}

	if err := ctrl.Credit(db, alice, 30); err != nil {
		t.Fatalf("cannot credit: %+v", err)
	}
	if err := ctrl.Credit(db, alice, 12); err != nil {
		t.Fatalf("cannot credit: %+v", err)
	}

	if p, err := ctrl.Pending(db, alice); err != nil || p != 42 {
		t.Fatalf("want 42 pending, got %d, %+v", p, err)
	}
}

func TestCreditZeroAmount(t *testing.T) {
	db := store.MemStore()
	fctrl := funds.NewController(funds.NewWalletBucket())
	ctrl := NewController(NewPendingBucket(), fctrl)

	alice := cascadetest.NewCondition().Address()
	if err := ctrl.Credit(db, alice, 0); !errors.ErrAmount.Is(err) {
		t.Fatalf("want amount error, got %+v", err)
	}
}

func TestClaim(t *testing.T) {
	db := store.MemStore()
	fctrl := funds.NewController(funds.NewWalletBucket())
	ctrl := NewController(NewPendingBucket(), fctrl)

	alice := cascadetest.NewCondition().Address()

	// The escrow must be funded before any credit is claimable.
	if err := fctrl.IssueFunds(db, PaymentAccount(), 50); err != nil {
		t.Fatalf("cannot fund escrow: %+v", err)
	}
	if err := ctrl.Credit(db, alice, 50); err != nil {
		t.Fatalf("cannot credit: %+v", err)
	}

	amount, err := ctrl.Claim(db, alice)
	if err != nil {
		t.Fatalf("cannot claim: %+v", err)
	}
	if amount != 50 {
		t.Fatalf("want 50 claimed, got %d", amount)
	}
	if b, _ := fctrl.Balance(db, alice); b != 50 {
		t.Fatalf("want 50 in the wallet, got %d", b)
	}
	if p, _ := ctrl.Pending(db, alice); p != 0 {
		t.Fatalf("want zero pending after claim, got %d", p)
	}

	// A second claim must not pay again.
	if _, err := ctrl.Claim(db, alice); !ErrNothingToClaim.Is(err) {
		t.Fatalf("want nothing to claim, got %+v", err)
	}
}

func TestClaimNothing(t *testing.T) {
	db := store.MemStore()
	fctrl := funds.NewController(funds.NewWalletBucket())
	ctrl := NewController(NewPendingBucket(), fctrl)

	alice := cascadetest.NewCondition().Address()
	if _, err := ctrl.Claim(db, alice); !ErrNothingToClaim.Is(err) {
		t.Fatalf("want nothing to claim, got %+v", err)
	}
}
