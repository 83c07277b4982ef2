package referral

import (
	"bytes"
	"testing"

	"github.com/cascade-one/cascade"
	"github.com/cascade-one/cascade/cascadetest"
	"github.com/cascade-one/cascade/errors"
	"github.com/cascade-one/cascade/gconf"
	"github.com/cascade-one/cascade/store"
	"github.com/cascade-one/cascade/x/funds"
	"github.com/cascade-one/cascade/x/pending"
	"github.com/cascade-one/cascade/x/position"
	"github.com/cascade-one/cascade/x/revenuepool"
)

type testEnv struct {
	db        cascade.CacheableKVStore
	funds     *funds.Controller
	pending   *pending.Controller
	pools     *revenuepool.Controller
	positions *position.Controller
	ctrl      *Controller
	treasury  cascade.Address
}

func newTestEnv(t *testing.T, conf *Configuration) *testEnv {
	t.Helper()
	db := store.MemStore()
	fctrl := funds.NewController(funds.NewWalletBucket())
	pctrl := pending.NewController(pending.NewPendingBucket(), fctrl)
	pools := revenuepool.NewController(revenuepool.NewPoolBucket(), revenuepool.NewMemberBucket(), pctrl)
	positions := position.NewController(position.NewPositionBucket())

	treasury := cascadetest.NewCondition().Address()
	if conf == nil {
		conf = &Configuration{
			ReferralBps: 10000,
			LevelBps:    []uint32{5000, 700, 700, 700, 700, 700, 700},
		}
	}
	conf.Owner = cascadetest.NewCondition().Address()
	conf.Authority = conf.Owner
	conf.Treasury = treasury
	if conf.ActivityThreshold == 0 {
		conf.ActivityThreshold = 1
	}
	if err := gconf.Save(db, "referral", conf); err != nil {
		t.Fatalf("cannot save configuration: %+v", err)
	}

	return &testEnv{
		db:        db,
		funds:     fctrl,
		pending:   pctrl,
		pools:     pools,
		positions: positions,
		ctrl:      NewController(positions, pctrl, pools, fctrl),
		treasury:  treasury,
	}
}

// chain creates n positions with distinct active owners, each
// sponsored by the next one, and returns the IDs and owner addresses
// in chain order. The first position is the chain bottom.
func (e *testEnv) chain(t *testing.T, n int) ([][]byte, []cascade.Address) {
	t.Helper()
	ids := make([][]byte, n)
	owners := make([]cascade.Address, n)
	for i := 0; i < n; i++ {
		owners[i] = cascadetest.NewCondition().Address()
		id, err := e.positions.Create(e.db, owners[i])
		if err != nil {
			t.Fatalf("cannot create position: %+v", err)
		}
		ids[i] = id
	}
	for i := 0; i < n-1; i++ {
		if err := e.ctrl.Bind(e.db, ids[i], ids[i+1]); err != nil {
			t.Fatalf("cannot bind %d to %d: %+v", i, i+1, err)
		}
	}
	for _, owner := range owners {
		if err := e.ctrl.RecordAction(e.db, owner); err != nil {
			t.Fatalf("cannot record action: %+v", err)
		}
	}
	return ids, owners
}

func TestBind(t *testing.T) {
	e := newTestEnv(t, nil)
	alice := cascadetest.NewCondition().Address()

	a, err := e.positions.Create(e.db, alice)
	if err != nil {
		t.Fatalf("cannot create position: %+v", err)
	}
	b, err := e.positions.Create(e.db, alice)
	if err != nil {
		t.Fatalf("cannot create position: %+v", err)
	}

	if err := e.ctrl.Bind(e.db, a, a); !ErrSelfReferral.Is(err) {
		t.Fatalf("want self referral, got %+v", err)
	}
	if err := e.ctrl.Bind(e.db, a, cascadetest.SequenceID(999)); !ErrUnknownPosition.Is(err) {
		t.Fatalf("want unknown position, got %+v", err)
	}
	if err := e.ctrl.Bind(e.db, cascadetest.SequenceID(999), a); !ErrUnknownPosition.Is(err) {
		t.Fatalf("want unknown position, got %+v", err)
	}

	if err := e.ctrl.Bind(e.db, a, b); err != nil {
		t.Fatalf("cannot bind: %+v", err)
	}
	// The edge is terminal.
	if err := e.ctrl.Bind(e.db, a, b); !ErrAlreadyBound.Is(err) {
		t.Fatalf("want already bound, got %+v", err)
	}
	// Binding the other way closes a loop.
	if err := e.ctrl.Bind(e.db, b, a); !ErrCycle.Is(err) {
		t.Fatalf("want cycle, got %+v", err)
	}
}

func TestBindLongCycle(t *testing.T) {
	e := newTestEnv(t, nil)
	ids, _ := e.chain(t, 5)

	// ids[0] -> ids[1] -> ... -> ids[4]. Closing the loop from the
	// top must be detected.
	if err := e.ctrl.Bind(e.db, ids[4], ids[0]); !ErrCycle.Is(err) {
		t.Fatalf("want cycle, got %+v", err)
	}
}

func TestUplineAt(t *testing.T) {
	e := newTestEnv(t, nil)
	ids, _ := e.chain(t, 3)

	if _, err := e.ctrl.UplineAt(e.db, ids[0], 0); !ErrInvalidDepth.Is(err) {
		t.Fatalf("want invalid depth, got %+v", err)
	}
	if _, err := e.ctrl.UplineAt(e.db, ids[0], MaxDepth+1); !ErrInvalidDepth.Is(err) {
		t.Fatalf("want invalid depth, got %+v", err)
	}

	if up, err := e.ctrl.UplineAt(e.db, ids[0], 1); err != nil || !bytes.Equal(up, ids[1]) {
		t.Fatalf("want ids[1], got %x, %+v", up, err)
	}
	if up, err := e.ctrl.UplineAt(e.db, ids[0], 2); err != nil || !bytes.Equal(up, ids[2]) {
		t.Fatalf("want ids[2], got %x, %+v", up, err)
	}
	// The chain ends before this depth.
	if up, err := e.ctrl.UplineAt(e.db, ids[0], 3); err != nil || up != nil {
		t.Fatalf("want root sentinel, got %x, %+v", up, err)
	}
}

func TestFullUpline(t *testing.T) {
	e := newTestEnv(t, nil)
	ids, _ := e.chain(t, 3)

	upline, err := e.ctrl.FullUpline(e.db, ids[0])
	if err != nil {
		t.Fatalf("cannot get full upline: %+v", err)
	}
	if len(upline) != MaxDepth {
		t.Fatalf("want %d entries, got %d", MaxDepth, len(upline))
	}
	if !bytes.Equal(upline[0], ids[1]) || !bytes.Equal(upline[1], ids[2]) {
		t.Fatalf("unexpected upline: %x", upline)
	}
	for i := 2; i < MaxDepth; i++ {
		if upline[i] != nil {
			t.Fatalf("entry %d must be the root sentinel, got %x", i, upline[i])
		}
	}
}

func TestRecordActionActivation(t *testing.T) {
	conf := &Configuration{
		ReferralBps:       10000,
		LevelBps:          []uint32{5000, 700, 700, 700, 700, 700, 700},
		ActivityThreshold: 2,
	}
	e := newTestEnv(t, conf)
	alice := cascadetest.NewCondition().Address()

	if err := e.ctrl.RecordAction(e.db, alice); err != nil {
		t.Fatalf("cannot record action: %+v", err)
	}
	if active, err := e.ctrl.IsActivePartner(e.db, alice); err != nil || active {
		t.Fatalf("one action must not activate: %v, %+v", active, err)
	}

	if err := e.ctrl.RecordAction(e.db, alice); err != nil {
		t.Fatalf("cannot record action: %+v", err)
	}
	if active, err := e.ctrl.IsActivePartner(e.db, alice); err != nil || !active {
		t.Fatalf("two actions must activate: %v, %+v", active, err)
	}

	// Action count is mirrored as partner pool shares.
	m, err := e.pools.Member(e.db, PartnersPool, alice)
	if err != nil {
		t.Fatalf("cannot load partner pool member: %+v", err)
	}
	if m.Shares != 2 {
		t.Fatalf("want 2 partner shares, got %d", m.Shares)
	}
}

func TestDistributeFullChain(t *testing.T) {
	e := newTestEnv(t, nil)
	ids, owners := e.chain(t, 8)

	if err := e.funds.IssueFunds(e.db, DistributionAccount(), 1000); err != nil {
		t.Fatalf("cannot fund escrow: %+v", err)
	}
	summary, err := e.ctrl.Distribute(e.db, ids[0], 1000)
	if err != nil {
		t.Fatalf("cannot distribute: %+v", err)
	}

	if summary.Distributed != 920 {
		t.Fatalf("want 920 distributed, got %d", summary.Distributed)
	}
	if summary.Remainder != 80 {
		t.Fatalf("want 80 remainder, got %d", summary.Remainder)
	}

	wantRewards := []uint64{500, 70, 70, 70, 70, 70, 70}
	for level, want := range wantRewards {
		p, err := e.pending.Pending(e.db, owners[level+1])
		if err != nil {
			t.Fatalf("cannot get pending: %+v", err)
		}
		if p != want {
			t.Fatalf("level %d: want %d pending, got %d", level+1, want, p)
		}
	}
	if b, _ := e.funds.Balance(e.db, e.treasury); b != 80 {
		t.Fatalf("want 80 in the treasury, got %d", b)
	}
	// The escrow is fully drained.
	if b, _ := e.funds.Balance(e.db, DistributionAccount()); b != 0 {
		t.Fatalf("escrow must be drained, got %d", b)
	}
}

func TestDistributeBrokenChain(t *testing.T) {
	e := newTestEnv(t, nil)
	ids, owners := e.chain(t, 3)

	if err := e.funds.IssueFunds(e.db, DistributionAccount(), 1000); err != nil {
		t.Fatalf("cannot fund escrow: %+v", err)
	}
	summary, err := e.ctrl.Distribute(e.db, ids[0], 1000)
	if err != nil {
		t.Fatalf("cannot distribute: %+v", err)
	}

	// Levels 1 and 2 pay, levels 3 to 7 are forfeited.
	if summary.Distributed != 570 {
		t.Fatalf("want 570 distributed, got %d", summary.Distributed)
	}
	if summary.Remainder != 430 {
		t.Fatalf("want 430 remainder, got %d", summary.Remainder)
	}
	if p, _ := e.pending.Pending(e.db, owners[1]); p != 500 {
		t.Fatalf("want 500 pending, got %d", p)
	}
	if p, _ := e.pending.Pending(e.db, owners[2]); p != 70 {
		t.Fatalf("want 70 pending, got %d", p)
	}
	if b, _ := e.funds.Balance(e.db, e.treasury); b != 430 {
		t.Fatalf("want 430 in the treasury, got %d", b)
	}
}

func TestDistributeClimbsPastInactive(t *testing.T) {
	e := newTestEnv(t, nil)
	ids, owners := e.chain(t, 3)

	// Make the direct sponsor inactive by resetting its actions. The
	// level 1 reward must climb to the next active ancestor.
	if err := e.ctrl.partners.Delete(e.db, owners[1]); err != nil {
		t.Fatalf("cannot deactivate partner: %+v", err)
	}

	if err := e.funds.IssueFunds(e.db, DistributionAccount(), 1000); err != nil {
		t.Fatalf("cannot fund escrow: %+v", err)
	}
	summary, err := e.ctrl.Distribute(e.db, ids[0], 1000)
	if err != nil {
		t.Fatalf("cannot distribute: %+v", err)
	}

	if summary.Distributed != 570 {
		t.Fatalf("want 570 distributed, got %d", summary.Distributed)
	}
	if p, _ := e.pending.Pending(e.db, owners[1]); p != 0 {
		t.Fatalf("inactive sponsor must not earn, got %d", p)
	}
	// Level 1 (500, climbed) and level 2 (70, nominal) both land on
	// the same active ancestor.
	if p, _ := e.pending.Pending(e.db, owners[2]); p != 570 {
		t.Fatalf("want 570 pending, got %d", p)
	}
}

func TestDistributeClimbsPastBurned(t *testing.T) {
	e := newTestEnv(t, nil)
	ids, owners := e.chain(t, 3)

	// A burned position no longer resolves, the climb must skip it.
	if err := e.positions.Burn(e.db, ids[1]); err != nil {
		t.Fatalf("cannot burn position: %+v", err)
	}

	if err := e.funds.IssueFunds(e.db, DistributionAccount(), 1000); err != nil {
		t.Fatalf("cannot fund escrow: %+v", err)
	}
	summary, err := e.ctrl.Distribute(e.db, ids[0], 1000)
	if err != nil {
		t.Fatalf("cannot distribute: %+v", err)
	}
	if summary.Distributed != 570 {
		t.Fatalf("want 570 distributed, got %d", summary.Distributed)
	}
	if p, _ := e.pending.Pending(e.db, owners[2]); p != 570 {
		t.Fatalf("want 570 pending, got %d", p)
	}
}

func TestDistributeZeroAmount(t *testing.T) {
	e := newTestEnv(t, nil)
	ids, _ := e.chain(t, 2)

	if _, err := e.ctrl.Distribute(e.db, ids[0], 0); !errors.ErrAmount.Is(err) {
		t.Fatalf("want amount error, got %+v", err)
	}
}

func TestDistributeConservation(t *testing.T) {
	for _, amount := range []uint64{1, 3, 999, 10001, 123457} {
		e := newTestEnv(t, nil)
		ids, _ := e.chain(t, 4)

		if err := e.funds.IssueFunds(e.db, DistributionAccount(), amount); err != nil {
			t.Fatalf("cannot fund escrow: %+v", err)
		}
		summary, err := e.ctrl.Distribute(e.db, ids[0], amount)
		if err != nil {
			t.Fatalf("amount %d: cannot distribute: %+v", amount, err)
		}
		if summary.Distributed+summary.Remainder != amount {
			t.Fatalf("amount %d: conservation violated: %d + %d",
				amount, summary.Distributed, summary.Remainder)
		}
		if b, _ := e.funds.Balance(e.db, DistributionAccount()); b != 0 {
			t.Fatalf("amount %d: escrow not drained: %d", amount, b)
		}
	}
}

func TestProcessSale(t *testing.T) {
	conf := &Configuration{
		ReferralBps: 5000,
		HoldersBps:  2000,
		PartnersBps: 2000,
		TreasuryBps: 1000,
		LevelBps:    []uint32{5000, 700, 700, 700, 700, 700, 700},
	}
	e := newTestEnv(t, conf)
	ids, owners := e.chain(t, 2)

	// Give both pools a member so their buckets can be funded.
	if err := e.pools.SetShares(e.db, HoldersPool, ids[0], owners[0], 10); err != nil {
		t.Fatalf("cannot set holder shares: %+v", err)
	}

	buyer := cascadetest.NewCondition().Address()
	if err := e.funds.IssueFunds(e.db, buyer, 1000); err != nil {
		t.Fatalf("cannot fund buyer: %+v", err)
	}

	if err := e.ctrl.ProcessSale(e.db, buyer, ids[0], 1000); err != nil {
		t.Fatalf("cannot process sale: %+v", err)
	}

	// Referral bucket 500: level 1 pays 250 to the sponsor owner,
	// the rest of the levels is forfeited (no deeper ancestors).
	if p, _ := e.pending.Pending(e.db, owners[1]); p != 250 {
		t.Fatalf("want 250 pending for the sponsor, got %d", p)
	}
	// Holders bucket 200 is in the holders pool escrow.
	if b, _ := e.funds.Balance(e.db, e.pools.Account(HoldersPool)); b != 200 {
		t.Fatalf("want 200 in the holders pool, got %d", b)
	}
	// Partners pool has members, the chain owners became partners
	// through their recorded actions.
	if b, _ := e.funds.Balance(e.db, e.pools.Account(PartnersPool)); b != 200 {
		t.Fatalf("want 200 in the partners pool, got %d", b)
	}
	// Treasury bucket 100, forfeited referral levels 250 and nothing
	// from the pools.
	if b, _ := e.funds.Balance(e.db, e.treasury); b != 350 {
		t.Fatalf("want 350 in the treasury, got %d", b)
	}
	if b, _ := e.funds.Balance(e.db, buyer); b != 0 {
		t.Fatalf("buyer must have paid everything, got %d", b)
	}
	if b, _ := e.funds.Balance(e.db, DistributionAccount()); b != 0 {
		t.Fatalf("escrow must be drained, got %d", b)
	}
}

func TestProcessSaleEmptyPoolsFallBack(t *testing.T) {
	conf := &Configuration{
		ReferralBps: 5000,
		HoldersBps:  2000,
		PartnersBps: 2000,
		TreasuryBps: 1000,
		LevelBps:    []uint32{5000, 700, 700, 700, 700, 700, 700},
		// Nobody qualifies as an active partner.
		ActivityThreshold: 1000,
	}
	e := newTestEnv(t, conf)
	ids, _ := e.chain(t, 2)

	buyer := cascadetest.NewCondition().Address()
	if err := e.funds.IssueFunds(e.db, buyer, 1000); err != nil {
		t.Fatalf("cannot fund buyer: %+v", err)
	}
	if err := e.ctrl.ProcessSale(e.db, buyer, ids[0], 1000); err != nil {
		t.Fatalf("cannot process sale: %+v", err)
	}

	// No active partners, no pool members. Everything ends up in the
	// treasury.
	if b, _ := e.funds.Balance(e.db, e.treasury); b != 1000 {
		t.Fatalf("want 1000 in the treasury, got %d", b)
	}
}

func TestDistributeUnknownTrigger(t *testing.T) {
	e := newTestEnv(t, nil)

	if _, err := e.ctrl.Distribute(e.db, []byte("no such position"), 1000); !ErrUnknownPosition.Is(err) {
		t.Fatalf("want unknown position, got %+v", err)
	}
}

func TestDistributeForfeitRecorded(t *testing.T) {
	e := newTestEnv(t, nil)
	ids, owners := e.chain(t, 2)

	// The only ancestor is inactive and has no upline to climb to, so
	// the level 1 reward is forfeited to the treasury.
	if err := e.ctrl.partners.Delete(e.db, owners[1]); err != nil {
		t.Fatalf("cannot deactivate partner: %+v", err)
	}

	if err := e.funds.IssueFunds(e.db, DistributionAccount(), 1000); err != nil {
		t.Fatalf("cannot fund escrow: %+v", err)
	}
	summary, err := e.ctrl.Distribute(e.db, ids[0], 1000)
	if err != nil {
		t.Fatalf("cannot distribute: %+v", err)
	}

	if summary.Distributed != 0 {
		t.Fatalf("want nothing distributed, got %d", summary.Distributed)
	}
	if len(summary.Forfeited) != 1 {
		t.Fatalf("want one forfeit record, got %+v", summary.Forfeited)
	}
	f := summary.Forfeited[0]
	if f.Level != 1 || f.Amount != 500 || f.Reason != "no active partner" {
		t.Fatalf("unexpected forfeit record: %+v", f)
	}
	if b, _ := e.funds.Balance(e.db, e.treasury); b != 1000 {
		t.Fatalf("want 1000 in the treasury, got %d", b)
	}
}
