package revenuepool

import (
	"math/big"
	"testing"

	"github.com/cascade-one/cascade"
	"github.com/cascade-one/cascade/cascadetest"
	"github.com/cascade-one/cascade/errors"
	"github.com/cascade-one/cascade/store"
	"github.com/cascade-one/cascade/x/funds"
	"github.com/cascade-one/cascade/x/pending"
)

type testEnv struct {
	db      cascade.CacheableKVStore
	funds   *funds.Controller
	pending *pending.Controller
	pool    *Controller
}

func newTestEnv() *testEnv {
	fctrl := funds.NewController(funds.NewWalletBucket())
	pctrl := pending.NewController(pending.NewPendingBucket(), fctrl)
	return &testEnv{
		db:      store.MemStore(),
		funds:   fctrl,
		pending: pctrl,
		pool:    NewController(NewPoolBucket(), NewMemberBucket(), pctrl),
	}
}

// fund funds the pool together with its escrow, the way the fund
// handler does it.
func (e *testEnv) fund(t *testing.T, pool string, amount uint64) {
	t.Helper()
	if err := e.funds.IssueFunds(e.db, PoolAccount(pool), amount); err != nil {
		t.Fatalf("cannot fund pool escrow: %+v", err)
	}
	if err := e.pool.Fund(e.db, pool, amount); err != nil {
		t.Fatalf("cannot fund pool: %+v", err)
	}
}

func TestFundRequiresShares(t *testing.T) {
	e := newTestEnv()

	if err := e.pool.Fund(e.db, "holders", 100); !ErrNoShares.Is(err) {
		t.Fatalf("want no shares error, got %+v", err)
	}

	alice := cascadetest.NewCondition().Address()
	if err := e.pool.SetShares(e.db, "holders", []byte("p1"), alice, 1); err != nil {
		t.Fatalf("cannot set shares: %+v", err)
	}
	if err := e.pool.SetShares(e.db, "holders", []byte("p1"), alice, 0); err != nil {
		t.Fatalf("cannot remove shares: %+v", err)
	}
	if err := e.pool.Fund(e.db, "holders", 100); !ErrNoShares.Is(err) {
		t.Fatalf("want no shares error after removal, got %+v", err)
	}
}

func TestFundRaisesAccumulator(t *testing.T) {
	e := newTestEnv()
	alice := cascadetest.NewCondition().Address()

	if err := e.pool.SetShares(e.db, "holders", []byte("p1"), alice, 10); err != nil {
		t.Fatalf("cannot set shares: %+v", err)
	}
	e.fund(t, "holders", 100)

	var p Pool
	if err := NewPoolBucket().One(e.db, []byte("holders"), &p); err != nil {
		t.Fatalf("cannot load pool: %+v", err)
	}
	want := new(big.Int).Mul(big.NewInt(10), big.NewInt(1e18))
	if p.Acc().Cmp(want) != 0 {
		t.Fatalf("want accumulator %s, got %s", want, p.Acc())
	}
}

func TestPendingRewardProportional(t *testing.T) {
	e := newTestEnv()
	alice := cascadetest.NewCondition().Address()
	bob := cascadetest.NewCondition().Address()

	if err := e.pool.SetShares(e.db, "holders", []byte("p1"), alice, 3); err != nil {
		t.Fatalf("cannot set shares: %+v", err)
	}
	if err := e.pool.SetShares(e.db, "holders", []byte("p2"), bob, 7); err != nil {
		t.Fatalf("cannot set shares: %+v", err)
	}
	e.fund(t, "holders", 100)

	if r, err := e.pool.PendingReward(e.db, "holders", []byte("p1")); err != nil || r != 30 {
		t.Fatalf("want 30 pending, got %d, %+v", r, err)
	}
	if r, err := e.pool.PendingReward(e.db, "holders", []byte("p2")); err != nil || r != 70 {
		t.Fatalf("want 70 pending, got %d, %+v", r, err)
	}
}

func TestFundSplitEqualsFundWhole(t *testing.T) {
	alice := cascadetest.NewCondition().Address()
	bob := cascadetest.NewCondition().Address()

	whole := newTestEnv()
	split := newTestEnv()
	for _, e := range []*testEnv{whole, split} {
		if err := e.pool.SetShares(e.db, "holders", []byte("p1"), alice, 3); err != nil {
			t.Fatalf("cannot set shares: %+v", err)
		}
		if err := e.pool.SetShares(e.db, "holders", []byte("p2"), bob, 7); err != nil {
			t.Fatalf("cannot set shares: %+v", err)
		}
	}

	whole.fund(t, "holders", 130)
	split.fund(t, "holders", 60)
	split.fund(t, "holders", 70)

	for _, key := range [][]byte{[]byte("p1"), []byte("p2")} {
		a, err := whole.pool.PendingReward(whole.db, "holders", key)
		if err != nil {
			t.Fatalf("cannot get pending reward: %+v", err)
		}
		b, err := split.pool.PendingReward(split.db, "holders", key)
		if err != nil {
			t.Fatalf("cannot get pending reward: %+v", err)
		}
		if a != b {
			t.Fatalf("fund split changes the reward of %q: %d != %d", key, a, b)
		}
	}
}

func TestSetSharesSettlesFirst(t *testing.T) {
	e := newTestEnv()
	alice := cascadetest.NewCondition().Address()

	if err := e.pool.SetShares(e.db, "holders", []byte("p1"), alice, 10); err != nil {
		t.Fatalf("cannot set shares: %+v", err)
	}
	e.fund(t, "holders", 100)

	// Share increase must not change what was already earned.
	if err := e.pool.SetShares(e.db, "holders", []byte("p1"), alice, 20); err != nil {
		t.Fatalf("cannot update shares: %+v", err)
	}
	if p, err := e.pending.Pending(e.db, alice); err != nil || p != 100 {
		t.Fatalf("want 100 settled, got %d, %+v", p, err)
	}
	if r, err := e.pool.PendingReward(e.db, "holders", []byte("p1")); err != nil || r != 0 {
		t.Fatalf("want zero pending after settlement, got %d, %+v", r, err)
	}

	// New shares only earn from new funding.
	e.fund(t, "holders", 40)
	if r, err := e.pool.PendingReward(e.db, "holders", []byte("p1")); err != nil || r != 40 {
		t.Fatalf("want 40 pending, got %d, %+v", r, err)
	}
}

func TestRemovedMemberForfeitsNothing(t *testing.T) {
	e := newTestEnv()
	alice := cascadetest.NewCondition().Address()
	bob := cascadetest.NewCondition().Address()

	if err := e.pool.SetShares(e.db, "holders", []byte("p1"), alice, 5); err != nil {
		t.Fatalf("cannot set shares: %+v", err)
	}
	if err := e.pool.SetShares(e.db, "holders", []byte("p2"), bob, 5); err != nil {
		t.Fatalf("cannot set shares: %+v", err)
	}
	e.fund(t, "holders", 100)

	// Removing a member settles the accrued reward first.
	if err := e.pool.SetShares(e.db, "holders", []byte("p1"), nil, 0); err != nil {
		t.Fatalf("cannot remove member: %+v", err)
	}
	if p, err := e.pending.Pending(e.db, alice); err != nil || p != 50 {
		t.Fatalf("want 50 settled, got %d, %+v", p, err)
	}

	// The remaining member receives everything funded later.
	e.fund(t, "holders", 100)
	if r, err := e.pool.PendingReward(e.db, "holders", []byte("p2")); err != nil || r != 150 {
		t.Fatalf("want 150 pending, got %d, %+v", r, err)
	}
}

func TestHarvest(t *testing.T) {
	e := newTestEnv()
	alice := cascadetest.NewCondition().Address()

	if err := e.pool.SetShares(e.db, "holders", []byte("p1"), alice, 10); err != nil {
		t.Fatalf("cannot set shares: %+v", err)
	}
	e.fund(t, "holders", 100)

	amount, err := e.pool.Harvest(e.db, "holders", []byte("p1"))
	if err != nil {
		t.Fatalf("cannot harvest: %+v", err)
	}
	if amount != 100 {
		t.Fatalf("want 100 harvested, got %d", amount)
	}
	if p, _ := e.pending.Pending(e.db, alice); p != 100 {
		t.Fatalf("want 100 pending, got %d", p)
	}

	// A second harvest settles nothing.
	if amount, err := e.pool.Harvest(e.db, "holders", []byte("p1")); err != nil || amount != 0 {
		t.Fatalf("want zero harvest, got %d, %+v", amount, err)
	}
}

func TestHarvestUnknownMember(t *testing.T) {
	e := newTestEnv()
	alice := cascadetest.NewCondition().Address()

	if err := e.pool.SetShares(e.db, "holders", []byte("p1"), alice, 10); err != nil {
		t.Fatalf("cannot set shares: %+v", err)
	}
	if _, err := e.pool.Harvest(e.db, "holders", []byte("unknown")); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want not found, got %+v", err)
	}
}

func TestSettleAndRekey(t *testing.T) {
	e := newTestEnv()
	alice := cascadetest.NewCondition().Address()
	bob := cascadetest.NewCondition().Address()

	if err := e.pool.SetShares(e.db, "holders", []byte("p1"), alice, 10); err != nil {
		t.Fatalf("cannot set shares: %+v", err)
	}
	e.fund(t, "holders", 100)

	if err := e.pool.SettleAndRekey(e.db, "holders", []byte("p1"), bob); err != nil {
		t.Fatalf("cannot rekey: %+v", err)
	}

	// The reward accrued before the handover stays with alice.
	if p, _ := e.pending.Pending(e.db, alice); p != 100 {
		t.Fatalf("want 100 pending for the old beneficiary, got %d", p)
	}

	e.fund(t, "holders", 30)
	if _, err := e.pool.Harvest(e.db, "holders", []byte("p1")); err != nil {
		t.Fatalf("cannot harvest: %+v", err)
	}
	if p, _ := e.pending.Pending(e.db, bob); p != 30 {
		t.Fatalf("want 30 pending for the new beneficiary, got %d", p)
	}
}

func TestRoundingLossStaysInEscrow(t *testing.T) {
	e := newTestEnv()
	alice := cascadetest.NewCondition().Address()
	bob := cascadetest.NewCondition().Address()
	carl := cascadetest.NewCondition().Address()

	for i, addr := range []cascade.Address{alice, bob, carl} {
		key := []byte{byte('a' + i)}
		if err := e.pool.SetShares(e.db, "holders", key, addr, 1); err != nil {
			t.Fatalf("cannot set shares: %+v", err)
		}
	}
	e.fund(t, "holders", 100)

	// 100 / 3 truncates. Each member gets 33, one token stays in the
	// escrow until future funding makes it payable.
	var sum uint64
	for i := 0; i < 3; i++ {
		r, err := e.pool.PendingReward(e.db, "holders", []byte{byte('a' + i)})
		if err != nil {
			t.Fatalf("cannot get pending reward: %+v", err)
		}
		if r != 33 {
			t.Fatalf("want 33 pending, got %d", r)
		}
		sum += r
	}
	if sum > 100 {
		t.Fatalf("distributed more than funded: %d", sum)
	}
}
