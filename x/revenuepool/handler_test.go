package revenuepool

import (
	"context"
	"fmt"
	"testing"

	"github.com/cascade-one/cascade"
	"github.com/cascade-one/cascade/app"
	"github.com/cascade-one/cascade/cascadetest"
	"github.com/cascade-one/cascade/errors"
	"github.com/cascade-one/cascade/gconf"
	"github.com/cascade-one/cascade/store"
	"github.com/cascade-one/cascade/x/funds"
	"github.com/cascade-one/cascade/x/pending"
)

func TestHandlers(t *testing.T) {
	adminCond := cascadetest.NewCondition()
	aliceCond := cascadetest.NewCondition()
	bobCond := cascadetest.NewCondition()

	cases := map[string]struct {
		conditions []cascade.Condition
		msg        cascade.Msg
		wantErr    *errors.Error
	}{
		"anyone can fund": {
			conditions: []cascade.Condition{aliceCond},
			msg:        &FundMsg{Pool: "holders", Amount: 50},
		},
		"funding requires a signer": {
			conditions: nil,
			msg:        &FundMsg{Pool: "holders", Amount: 50},
			wantErr:    errors.ErrUnauthorized,
		},
		"funding an empty pool fails": {
			conditions: []cascade.Condition{aliceCond},
			msg:        &FundMsg{Pool: "partners", Amount: 50},
			wantErr:    ErrNoShares,
		},
		"admin can set shares": {
			conditions: []cascade.Condition{adminCond},
			msg: &SetSharesMsg{
				Pool:        "holders",
				Key:         []byte("p2"),
				Beneficiary: bobCond.Address(),
				Shares:      4,
			},
		},
		"set shares is admin gated": {
			conditions: []cascade.Condition{aliceCond},
			msg: &SetSharesMsg{
				Pool:        "holders",
				Key:         []byte("p2"),
				Beneficiary: bobCond.Address(),
				Shares:      4,
			},
			wantErr: errors.ErrUnauthorized,
		},
		"beneficiary can harvest": {
			conditions: []cascade.Condition{aliceCond},
			msg:        &HarvestMsg{Pool: "holders", Key: []byte("p1")},
		},
		"harvest requires the beneficiary signature": {
			conditions: []cascade.Condition{bobCond},
			msg:        &HarvestMsg{Pool: "holders", Key: []byte("p1")},
			wantErr:    errors.ErrUnauthorized,
		},
		"owner can update configuration": {
			conditions: []cascade.Condition{adminCond},
			msg: &UpdateConfigurationMsg{
				Patch: &Configuration{Admin: bobCond.Address()},
			},
		},
		"configuration update is owner gated": {
			conditions: []cascade.Condition{aliceCond},
			msg: &UpdateConfigurationMsg{
				Patch: &Configuration{Admin: bobCond.Address()},
			},
			wantErr: errors.ErrUnauthorized,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			fctrl := funds.NewController(funds.NewWalletBucket())
			pctrl := pending.NewController(pending.NewPendingBucket(), fctrl)
			ctrl := NewController(NewPoolBucket(), NewMemberBucket(), pctrl)

			conf := Configuration{
				Owner: adminCond.Address(),
				Admin: adminCond.Address(),
			}
			if err := gconf.Save(db, "revenuepool", &conf); err != nil {
				t.Fatalf("cannot save configuration: %+v", err)
			}

			// One member with funded rewards, so harvest has work to do.
			if err := ctrl.SetShares(db, "holders", []byte("p1"), aliceCond.Address(), 10); err != nil {
				t.Fatalf("cannot set shares: %+v", err)
			}
			if err := fctrl.IssueFunds(db, PoolAccount("holders"), 100); err != nil {
				t.Fatalf("cannot fund escrow: %+v", err)
			}
			if err := ctrl.Fund(db, "holders", 100); err != nil {
				t.Fatalf("cannot fund pool: %+v", err)
			}
			// The funding signer needs a wallet.
			if err := fctrl.IssueFunds(db, aliceCond.Address(), 1000); err != nil {
				t.Fatalf("cannot fund wallet: %+v", err)
			}

			auth := &cascadetest.Auth{Signers: tc.conditions}
			rt := app.NewRouter()
			RegisterRoutes(rt, auth, ctrl, fctrl)

			tx := &cascadetest.Tx{Msg: tc.msg}
			ctx := cascade.WithHeight(context.Background(), 100)

			if _, err := rt.Deliver(ctx, db, tx); !tc.wantErr.Is(err) {
				t.Fatalf("deliver returned unexpected error: %+v", err)
			}
		})
	}
}

func TestHarvestEmitsSettlementRecord(t *testing.T) {
	aliceCond := cascadetest.NewCondition()

	db := store.MemStore()
	fctrl := funds.NewController(funds.NewWalletBucket())
	pctrl := pending.NewController(pending.NewPendingBucket(), fctrl)
	ctrl := NewController(NewPoolBucket(), NewMemberBucket(), pctrl)

	if err := ctrl.SetShares(db, "holders", []byte("p1"), aliceCond.Address(), 10); err != nil {
		t.Fatalf("cannot set shares: %+v", err)
	}
	if err := fctrl.IssueFunds(db, PoolAccount("holders"), 100); err != nil {
		t.Fatalf("cannot fund escrow: %+v", err)
	}
	if err := ctrl.Fund(db, "holders", 100); err != nil {
		t.Fatalf("cannot fund pool: %+v", err)
	}

	rt := app.NewRouter()
	RegisterRoutes(rt, &cascadetest.Auth{Signer: aliceCond}, ctrl, fctrl)

	tx := &cascadetest.Tx{Msg: &HarvestMsg{Pool: "holders", Key: []byte("p1")}}
	ctx := cascade.WithHeight(context.Background(), 100)
	res, err := rt.Deliver(ctx, db, tx)
	if err != nil {
		t.Fatalf("cannot harvest: %+v", err)
	}
	if len(res.Tags) != 1 || string(res.Tags[0].Key) != SettleTagKey {
		t.Fatalf("want a settlement record, got %+v", res.Tags)
	}
	if want := fmt.Sprintf("holders:%X:100", []byte("p1")); string(res.Tags[0].Value) != want {
		t.Fatalf("want settlement record %q, got %q", want, res.Tags[0].Value)
	}

	// A second harvest has nothing accrued but is still recorded.
	res, err = rt.Deliver(ctx, db, tx)
	if err != nil {
		t.Fatalf("cannot harvest: %+v", err)
	}
	if want := fmt.Sprintf("holders:%X:0", []byte("p1")); len(res.Tags) != 1 || string(res.Tags[0].Value) != want {
		t.Fatalf("want settlement record %q, got %+v", want, res.Tags)
	}
}
