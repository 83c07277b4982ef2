package funds

import (
	"context"
	"testing"

	"github.com/cascade-one/cascade"
	"github.com/cascade-one/cascade/app"
	"github.com/cascade-one/cascade/cascadetest"
	"github.com/cascade-one/cascade/errors"
	"github.com/cascade-one/cascade/store"
)

func TestSendHandler(t *testing.T) {
	aliceCond := cascadetest.NewCondition()
	bobCond := cascadetest.NewCondition()

	cases := map[string]struct {
		conditions     []cascade.Condition
		msg            *SendMsg
		wantCheckErr   *errors.Error
		wantDeliverErr *errors.Error
	}{
		"signed transfer succeeds": {
			conditions: []cascade.Condition{aliceCond},
			msg: &SendMsg{
				Source:      aliceCond.Address(),
				Destination: bobCond.Address(),
				Amount:      40,
			},
		},
		"source signature is required": {
			conditions: []cascade.Condition{bobCond},
			msg: &SendMsg{
				Source:      aliceCond.Address(),
				Destination: bobCond.Address(),
				Amount:      40,
			},
			wantCheckErr:   errors.ErrUnauthorized,
			wantDeliverErr: errors.ErrUnauthorized,
		},
		"zero amount is rejected": {
			conditions: []cascade.Condition{aliceCond},
			msg: &SendMsg{
				Source:      aliceCond.Address(),
				Destination: bobCond.Address(),
				Amount:      0,
			},
			wantCheckErr:   errors.ErrAmount,
			wantDeliverErr: errors.ErrAmount,
		},
		"invalid destination is rejected": {
			conditions: []cascade.Condition{aliceCond},
			msg: &SendMsg{
				Source:      aliceCond.Address(),
				Destination: []byte("too short"),
				Amount:      40,
			},
			wantCheckErr:   errors.ErrInput,
			wantDeliverErr: errors.ErrInput,
		},
		"transfer above the balance fails": {
			conditions: []cascade.Condition{aliceCond},
			msg: &SendMsg{
				Source:      aliceCond.Address(),
				Destination: bobCond.Address(),
				Amount:      1000,
			},
			// Check does not inspect balances, only delivery moves
			// funds and can fail on an insufficient balance.
			wantDeliverErr: ErrInsufficientFunds,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			ctrl := NewController(NewWalletBucket())
			if err := ctrl.IssueFunds(db, aliceCond.Address(), 100); err != nil {
				t.Fatalf("cannot set up initial balance: %+v", err)
			}

			auth := &cascadetest.Auth{Signers: tc.conditions}
			rt := app.NewRouter()
			RegisterRoutes(rt, auth, ctrl)

			tx := &cascadetest.Tx{Msg: tc.msg}
			ctx := cascade.WithHeight(context.Background(), 100)

			cache := db.CacheWrap()
			if _, err := rt.Check(ctx, cache, tx); !tc.wantCheckErr.Is(err) {
				t.Fatalf("check returned unexpected error: %+v", err)
			}
			cache.Discard()

			if _, err := rt.Deliver(ctx, db, tx); !tc.wantDeliverErr.Is(err) {
				t.Fatalf("deliver returned unexpected error: %+v", err)
			}
			if tc.wantDeliverErr != nil {
				return
			}

			if b, _ := ctrl.Balance(db, tc.msg.Destination); b != tc.msg.Amount {
				t.Fatalf("want destination balance %d, got %d", tc.msg.Amount, b)
			}
		})
	}
}
