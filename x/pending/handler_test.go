package pending

import (
	"context"
	"fmt"
	"testing"

	"github.com/cascade-one/cascade"
	"github.com/cascade-one/cascade/app"
	"github.com/cascade-one/cascade/cascadetest"
	"github.com/cascade-one/cascade/errors"
	"github.com/cascade-one/cascade/store"
	"github.com/cascade-one/cascade/x/funds"
)

func TestClaimHandler(t *testing.T) {
	aliceCond := cascadetest.NewCondition()
	bobCond := cascadetest.NewCondition()

	cases := map[string]struct {
		conditions []cascade.Condition
		msg        *ClaimMsg
		pending    uint64
		wantErr    *errors.Error
	}{
		"beneficiary claims own balance": {
			conditions: []cascade.Condition{aliceCond},
			msg:        &ClaimMsg{Beneficiary: aliceCond.Address()},
			pending:    77,
		},
		"beneficiary signature is required": {
			conditions: []cascade.Condition{bobCond},
			msg:        &ClaimMsg{Beneficiary: aliceCond.Address()},
			pending:    77,
			wantErr:    errors.ErrUnauthorized,
		},
		"empty balance cannot be claimed": {
			conditions: []cascade.Condition{aliceCond},
			msg:        &ClaimMsg{Beneficiary: aliceCond.Address()},
			pending:    0,
			wantErr:    ErrNothingToClaim,
		},
		"invalid beneficiary address": {
			conditions: []cascade.Condition{aliceCond},
			msg:        &ClaimMsg{Beneficiary: []byte("x")},
			wantErr:    errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			fctrl := funds.NewController(funds.NewWalletBucket())
			ctrl := NewController(NewPendingBucket(), fctrl)

			if tc.pending > 0 {
				if err := fctrl.IssueFunds(db, PaymentAccount(), tc.pending); err != nil {
					t.Fatalf("cannot fund escrow: %+v", err)
				}
				if err := ctrl.Credit(db, aliceCond.Address(), tc.pending); err != nil {
					t.Fatalf("cannot credit: %+v", err)
				}
			}

			auth := &cascadetest.Auth{Signers: tc.conditions}
			rt := app.NewRouter()
			RegisterRoutes(rt, auth, ctrl)

			tx := &cascadetest.Tx{Msg: tc.msg}
			ctx := cascade.WithHeight(context.Background(), 100)

			if _, err := rt.Deliver(ctx, db, tx); !tc.wantErr.Is(err) {
				t.Fatalf("deliver returned unexpected error: %+v", err)
			}
			if tc.wantErr != nil {
				return
			}

			if b, _ := fctrl.Balance(db, tc.msg.Beneficiary); b != tc.pending {
				t.Fatalf("want wallet balance %d, got %d", tc.pending, b)
			}
		})
	}
}

func TestClaimEmitsPayoutRecord(t *testing.T) {
	aliceCond := cascadetest.NewCondition()

	db := store.MemStore()
	fctrl := funds.NewController(funds.NewWalletBucket())
	ctrl := NewController(NewPendingBucket(), fctrl)

	if err := fctrl.IssueFunds(db, PaymentAccount(), 77); err != nil {
		t.Fatalf("cannot fund escrow: %+v", err)
	}
	if err := ctrl.Credit(db, aliceCond.Address(), 77); err != nil {
		t.Fatalf("cannot credit: %+v", err)
	}

	rt := app.NewRouter()
	RegisterRoutes(rt, &cascadetest.Auth{Signer: aliceCond}, ctrl)

	tx := &cascadetest.Tx{Msg: &ClaimMsg{Beneficiary: aliceCond.Address()}}
	ctx := cascade.WithHeight(context.Background(), 100)
	res, err := rt.Deliver(ctx, db, tx)
	if err != nil {
		t.Fatalf("cannot claim: %+v", err)
	}

	if len(res.Tags) != 1 || string(res.Tags[0].Key) != ClaimTagKey {
		t.Fatalf("want a payout record, got %+v", res.Tags)
	}
	if want := fmt.Sprintf("%X:77", aliceCond.Address()); string(res.Tags[0].Value) != want {
		t.Fatalf("want payout record %q, got %q", want, res.Tags[0].Value)
	}
}
