package std

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/cascade-one/cascade"
	"github.com/cascade-one/cascade/cascadetest"
	"github.com/cascade-one/cascade/store"
	"github.com/cascade-one/cascade/x/funds"
	"github.com/cascade-one/cascade/x/pending"
	"github.com/cascade-one/cascade/x/position"
	"github.com/cascade-one/cascade/x/referral"
	"github.com/cascade-one/cascade/x/revenuepool"
)

func TestStackSaleLifecycle(t *testing.T) {
	var (
		alice     = cascadetest.NewCondition()
		bob       = cascadetest.NewCondition()
		authority = cascadetest.NewCondition()
		treasury  = cascadetest.NewCondition()
	)

	db := store.MemStore()

	genesis := fmt.Sprintf(`{
		"funds": [
			{"address": %q, "balance": 2000},
			{"address": %q, "balance": 1000}
		],
		"conf": {
			"revenuepool": {
				"owner": %q,
				"admin": %q
			},
			"referral": {
				"owner": %q,
				"authority": %q,
				"treasury": %q,
				"referral_bps": 5000,
				"holders_bps": 2000,
				"partners_bps": 2000,
				"treasury_bps": 1000,
				"level_bps": [5000, 700, 700, 700, 700, 700, 700],
				"activity_threshold": 1
			}
		}
	}`,
		hex.EncodeToString(alice.Address()),
		hex.EncodeToString(bob.Address()),
		hex.EncodeToString(authority.Address()),
		hex.EncodeToString(authority.Address()),
		hex.EncodeToString(authority.Address()),
		hex.EncodeToString(authority.Address()),
		hex.EncodeToString(treasury.Address()),
	)
	var opts cascade.Options
	if err := json.Unmarshal([]byte(genesis), &opts); err != nil {
		t.Fatalf("cannot unmarshal genesis: %s", err)
	}
	for _, ini := range Initializers() {
		if err := ini.FromGenesis(opts, db); err != nil {
			t.Fatalf("cannot initialize from genesis: %s", err)
		}
	}

	auth := &cascadetest.CtxAuth{Key: "auth"}
	stack := Stack(auth)

	deliver := func(t *testing.T, signer cascade.Condition, tx *Tx) *cascade.DeliverResult {
		t.Helper()
		ctx := cascade.WithHeight(context.Background(), 100)
		ctx = auth.SetConditions(ctx, signer)

		cache := db.CacheWrap()
		if _, err := stack.Check(ctx, cache, tx); err != nil {
			t.Fatalf("check failed: %+v", err)
		}
		cache.Discard()

		res, err := stack.Deliver(ctx, db, tx)
		if err != nil {
			t.Fatalf("deliver failed: %+v", err)
		}
		return res
	}

	fundsCtrl := funds.NewController(funds.NewWalletBucket())
	pendingCtrl := pending.NewController(pending.NewPendingBucket(), fundsCtrl)

	assertBalance := func(t *testing.T, addr cascade.Address, want uint64) {
		t.Helper()
		got, err := fundsCtrl.Balance(db, addr)
		if err != nil {
			t.Fatalf("cannot get balance: %s", err)
		}
		if got != want {
			t.Fatalf("want balance %d, got %d", want, got)
		}
	}
	assertPending := func(t *testing.T, addr cascade.Address, want uint64) {
		t.Helper()
		got, err := pendingCtrl.Pending(db, addr)
		if err != nil {
			t.Fatalf("cannot get pending balance: %s", err)
		}
		if got != want {
			t.Fatalf("want pending %d, got %d", want, got)
		}
	}

	// The first sale has no sponsor, so the whole referral share of
	// the price is forfeited to the treasury.
	res := deliver(t, alice, &Tx{PositionIssueMsg: &position.IssueMsg{
		Owner:  alice.Address(),
		Price:  1000,
		Shares: 10,
	}})
	root := res.Data
	if !bytes.Equal(root, cascadetest.SequenceID(1)) {
		t.Fatalf("unexpected position id: %x", root)
	}
	assertBalance(t, alice.Address(), 1000)
	assertBalance(t, treasury.Address(), 600)

	// The second sale is sponsored by the first position. Level one
	// pays 50% of the referral share, the remaining levels have no
	// ancestors and go to the treasury.
	deliver(t, bob, &Tx{PositionIssueMsg: &position.IssueMsg{
		Owner:   bob.Address(),
		Sponsor: root,
		Price:   1000,
		Shares:  10,
	}})
	assertBalance(t, bob.Address(), 0)
	assertPending(t, alice.Address(), 250)
	assertBalance(t, treasury.Address(), 950)

	deliver(t, alice, &Tx{PendingClaimMsg: &pending.ClaimMsg{
		Beneficiary: alice.Address(),
	}})
	assertBalance(t, alice.Address(), 1250)
	assertPending(t, alice.Address(), 0)

	// Harvesting the holders pool settles the share of both sales.
	// The first sale was funded to alice alone, the second is split
	// between both positions.
	deliver(t, alice, &Tx{RevenuepoolHarvestMsg: &revenuepool.HarvestMsg{
		Pool: position.HoldersPool,
		Key:  root,
	}})
	assertPending(t, alice.Address(), 300)

	deliver(t, alice, &Tx{PendingClaimMsg: &pending.ClaimMsg{
		Beneficiary: alice.Address(),
	}})
	assertBalance(t, alice.Address(), 1550)
}

func TestTxDecoder(t *testing.T) {
	tx := &Tx{
		ReferralBindSponsorMsg: &referral.BindSponsorMsg{
			Position: cascadetest.SequenceID(2),
			Sponsor:  cascadetest.SequenceID(1),
		},
	}
	raw, err := tx.Marshal()
	if err != nil {
		t.Fatalf("cannot marshal transaction: %s", err)
	}
	got, err := TxDecoder(raw)
	if err != nil {
		t.Fatalf("cannot decode transaction: %s", err)
	}
	msg, err := got.GetMsg()
	if err != nil {
		t.Fatalf("cannot get message: %s", err)
	}
	if want := "referral/bind"; msg.Path() != want {
		t.Fatalf("want %q message path, got %q", want, msg.Path())
	}

	if _, err := TxDecoder([]byte("garbage, not a transaction")); err == nil {
		t.Fatal("decoding garbage must fail")
	}
}

func TestGetMsgRequiresMessage(t *testing.T) {
	var tx Tx
	if _, err := tx.GetMsg(); err == nil {
		t.Fatal("empty transaction must not provide a message")
	}
}

func TestGenInitOptions(t *testing.T) {
	raw, err := GenInitOptions(nil)
	if err != nil {
		t.Fatalf("cannot generate init options: %s", err)
	}
	var opts cascade.Options
	if err := json.Unmarshal(raw, &opts); err != nil {
		t.Fatalf("cannot unmarshal generated options: %s", err)
	}
	db := store.MemStore()
	for _, ini := range Initializers() {
		if err := ini.FromGenesis(opts, db); err != nil {
			t.Fatalf("cannot initialize from generated options: %s", err)
		}
	}
}
