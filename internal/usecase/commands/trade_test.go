//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"coupon-swap/internal/domain/coupon"
	"coupon-swap/internal/domain/trade"
	"coupon-swap/internal/domain/user"
	"coupon-swap/internal/infra"
	sqlc "coupon-swap/internal/infra/sqlc/generated"
	"coupon-swap/internal/pkg/clock"
	"coupon-swap/internal/pkg/errs"
	"coupon-swap/internal/usecase/commands"
	"coupon-swap/internal/usecase/queries"
	"coupon-swap/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory store standing in for Postgres. Within snapshots the state and
// restores it when the function fails, mirroring a transaction rollback.
type fakeStore struct {
	trades  map[uuid.UUID]*trade.Trade
	wallet  map[uuid.UUID]uuid.UUID // coupon -> current owner
	catalog map[uuid.UUID]uuid.UUID // coupon -> display owner

	// forceConflicts makes the next N conditional updates report a lost
	// version race without applying anything.
	forceConflicts int
	updateCalls    int
	moveCalls      int

	// staleReads are served by FindByID before the live row, simulating a
	// reader that raced a concurrent commit.
	staleReads []*trade.Trade

	couponCreateErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		trades:  make(map[uuid.UUID]*trade.Trade),
		wallet:  make(map[uuid.UUID]uuid.UUID),
		catalog: make(map[uuid.UUID]uuid.UUID),
	}
}

func (s *fakeStore) snapshot() *fakeStore {
	copied := newFakeStore()
	for k, v := range s.trades {
		copied.trades[k] = v
	}
	for k, v := range s.wallet {
		copied.wallet[k] = v
	}
	for k, v := range s.catalog {
		copied.catalog[k] = v
	}
	return copied
}

func (s *fakeStore) restore(snap *fakeStore) {
	s.trades = snap.trades
	s.wallet = snap.wallet
	s.catalog = snap.catalog
}

func (s *fakeStore) putTrade(t *trade.Trade) {
	s.trades[t.ID()] = t
}

type fakeUoW struct {
	store *fakeStore
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	snap := u.store.snapshot()
	if err := fn(ctx, &fakeTx{store: u.store}); err != nil {
		u.store.restore(snap)
		return err
	}
	return nil
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

type fakeTx struct {
	store *fakeStore
}

func (t *fakeTx) DB() sqlc.DBTX                    { return nil }
func (t *fakeTx) Trades() shared.TradeRepository   { return &fakeTradeRepo{store: t.store} }
func (t *fakeTx) Wallets() shared.WalletRepository { return &fakeWalletRepo{store: t.store} }
func (t *fakeTx) Coupons() shared.CouponRepository { return &fakeCouponRepo{store: t.store} }
func (t *fakeTx) Users() shared.UserRepository     { return &fakeUserRepo{} }

type fakeTradeRepo struct {
	store *fakeStore
}

func (r *fakeTradeRepo) Create(_ context.Context, _ sqlc.DBTX, tr *trade.Trade) error {
	r.store.putTrade(tr)
	return nil
}

func (r *fakeTradeRepo) FindByID(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*trade.Trade, error) {
	if len(r.store.staleReads) > 0 {
		stale := r.store.staleReads[0]
		r.store.staleReads = r.store.staleReads[1:]
		return stale, nil
	}
	stored, ok := r.store.trades[id]
	if !ok {
		return nil, infra.WrapRepoErr("trade not found", nil, infra.KindNotFound)
	}
	// fresh copy so callers cannot mutate the stored entity
	return trade.ReconstructTrade(
		stored.ID(), stored.PartyA(), stored.PartyB(),
		stored.CouponFromA(), stored.CouponFromB(),
		stored.RoomID().String(), stored.Status(), stored.ConfirmedBy(),
		stored.Version(), stored.CreatedAt(), stored.ConfirmedAt(),
	)
}

func (r *fakeTradeRepo) ConditionalUpdate(_ context.Context, _ sqlc.DBTX, tr *trade.Trade, expectedVersion int32) (bool, error) {
	r.store.updateCalls++
	if r.store.forceConflicts > 0 {
		r.store.forceConflicts--
		return false, nil
	}
	stored, ok := r.store.trades[tr.ID()]
	if !ok || stored.Version() != expectedVersion {
		return false, nil
	}
	updated, err := trade.ReconstructTrade(
		tr.ID(), tr.PartyA(), tr.PartyB(),
		tr.CouponFromA(), tr.CouponFromB(),
		tr.RoomID().String(), tr.Status(), tr.ConfirmedBy(),
		expectedVersion+1, tr.CreatedAt(), tr.ConfirmedAt(),
	)
	if err != nil {
		return false, err
	}
	r.store.trades[tr.ID()] = updated
	return true, nil
}

type fakeWalletRepo struct {
	store *fakeStore
}

func (r *fakeWalletRepo) Add(_ context.Context, _ sqlc.DBTX, couponID, userID uuid.UUID) error {
	r.store.wallet[couponID] = userID
	return nil
}

func (r *fakeWalletRepo) Move(_ context.Context, _ sqlc.DBTX, couponID, fromUserID, toUserID uuid.UUID) (bool, error) {
	r.store.moveCalls++
	if r.store.wallet[couponID] != fromUserID {
		return false, nil
	}
	r.store.wallet[couponID] = toUserID
	return true, nil
}

type fakeCouponRepo struct {
	store *fakeStore
}

func (r *fakeCouponRepo) Create(context.Context, sqlc.DBTX, *coupon.Coupon) error {
	return r.store.couponCreateErr
}

func (r *fakeCouponRepo) SetOwner(_ context.Context, _ sqlc.DBTX, couponID, ownerID uuid.UUID) error {
	r.store.catalog[couponID] = ownerID
	return nil
}

type fakeUserRepo struct{}

func (r *fakeUserRepo) Create(context.Context, sqlc.DBTX, *user.User, time.Time) error {
	return nil
}

func (r *fakeUserRepo) UpdatePreferences(context.Context, sqlc.DBTX, uuid.UUID, []string, []string) (bool, error) {
	return false, nil
}

type fakeTradeQueries struct {
	store *fakeStore
}

func (q *fakeTradeQueries) GetByID(_ context.Context, id uuid.UUID) (*queries.TradeView, error) {
	stored, ok := q.store.trades[id]
	if !ok {
		return nil, errs.ErrTradeNotFound
	}
	return &queries.TradeView{
		ID:          stored.ID(),
		PartyA:      stored.PartyA(),
		PartyB:      stored.PartyB(),
		CouponFromA: stored.CouponFromA(),
		CouponFromB: stored.CouponFromB(),
		RoomID:      stored.RoomID().String(),
		Status:      stored.Status().String(),
		ConfirmedBy: stored.ConfirmedBy(),
		Version:     stored.Version(),
		CreatedAt:   stored.CreatedAt(),
		ConfirmedAt: stored.ConfirmedAt(),
	}, nil
}

func (q *fakeTradeQueries) ListOpenByUser(context.Context, uuid.UUID) ([]*queries.TradeView, error) {
	return nil, nil
}

type notifierSpy struct {
	rooms []string
	views []*queries.TradeView
}

func (n *notifierSpy) TradeUpdated(roomID string, view *queries.TradeView) {
	n.rooms = append(n.rooms, roomID)
	n.views = append(n.views, view)
}

type tradeFixture struct {
	store    *fakeStore
	notifier *notifierSpy
	cmds     commands.TradeCommands
	partyA   uuid.UUID
	partyB   uuid.UUID
	couponA  uuid.UUID
	couponB  uuid.UUID
	tradeID  uuid.UUID
}

func newTradeFixture(t *testing.T) *tradeFixture {
	t.Helper()

	store := newFakeStore()
	notifier := &notifierSpy{}
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	cmds := commands.NewTradeCommands(&fakeUoW{store: store}, &fakeTradeQueries{store: store}, notifier, clk)

	f := &tradeFixture{
		store:    store,
		notifier: notifier,
		cmds:     cmds,
		partyA:   uuid.New(),
		partyB:   uuid.New(),
		couponA:  uuid.New(),
		couponB:  uuid.New(),
	}

	tr, err := trade.NewTrade(f.partyA, f.partyB, f.couponA, f.couponB, "room-1", clk.Now())
	require.NoError(t, err)
	store.putTrade(tr)
	f.tradeID = tr.ID()

	store.wallet[f.couponA] = f.partyA
	store.wallet[f.couponB] = f.partyB
	store.catalog[f.couponA] = f.partyA
	store.catalog[f.couponB] = f.partyB
	return f
}

func TestCreateTrade(t *testing.T) {
	t.Run("stores the trade and notifies the room", func(t *testing.T) {
		f := newTradeFixture(t)

		view, err := f.cmds.CreateTrade(context.Background(), commands.CreateTradeCommand{
			PartyA:      f.partyA,
			PartyB:      f.partyB,
			CouponFromA: f.couponA,
			CouponFromB: f.couponB,
			RoomID:      "room-2",
		})
		require.NoError(t, err)
		assert.Equal(t, "pending", view.Status)
		assert.Equal(t, "room-2", view.RoomID)
		assert.Empty(t, view.ConfirmedBy)

		require.Len(t, f.notifier.views, 1)
		assert.Equal(t, "room-2", f.notifier.rooms[0])
	})

	t.Run("rejects invalid trades without touching the store", func(t *testing.T) {
		f := newTradeFixture(t)
		before := len(f.store.trades)

		_, err := f.cmds.CreateTrade(context.Background(), commands.CreateTradeCommand{
			PartyA:      f.partyA,
			PartyB:      f.partyA,
			CouponFromA: f.couponA,
			CouponFromB: f.couponB,
			RoomID:      "room-2",
		})
		require.True(t, errs.Is(err, errs.ErrDomainValidation))
		assert.Len(t, f.store.trades, before)
		assert.Empty(t, f.notifier.views)
	})
}

func TestConfirmTrade(t *testing.T) {
	ctx := context.Background()

	t.Run("first confirmation moves the trade to waiting", func(t *testing.T) {
		f := newTradeFixture(t)

		view, err := f.cmds.ConfirmTrade(ctx, f.tradeID, f.partyA)
		require.NoError(t, err)
		assert.Equal(t, "waiting", view.Status)
		assert.Equal(t, []uuid.UUID{f.partyA}, view.ConfirmedBy)
		assert.Equal(t, int32(2), view.Version)

		// no settlement yet
		assert.Equal(t, f.partyA, f.store.wallet[f.couponA])
		assert.Equal(t, f.partyB, f.store.wallet[f.couponB])
		require.Len(t, f.notifier.views, 1)
		assert.Equal(t, "room-1", f.notifier.rooms[0])
	})

	t.Run("second confirmation settles and swaps both wallets", func(t *testing.T) {
		f := newTradeFixture(t)

		_, err := f.cmds.ConfirmTrade(ctx, f.tradeID, f.partyA)
		require.NoError(t, err)

		view, err := f.cmds.ConfirmTrade(ctx, f.tradeID, f.partyB)
		require.NoError(t, err)
		assert.Equal(t, "confirmed", view.Status)
		assert.ElementsMatch(t, []uuid.UUID{f.partyA, f.partyB}, view.ConfirmedBy)
		require.NotNil(t, view.ConfirmedAt)

		assert.Equal(t, f.partyB, f.store.wallet[f.couponA])
		assert.Equal(t, f.partyA, f.store.wallet[f.couponB])
		assert.Equal(t, f.partyB, f.store.catalog[f.couponA])
		assert.Equal(t, f.partyA, f.store.catalog[f.couponB])
		assert.Equal(t, 2, f.store.moveCalls)
		assert.Len(t, f.notifier.views, 2)
	})

	t.Run("duplicate confirmation is idempotent and silent", func(t *testing.T) {
		f := newTradeFixture(t)

		_, err := f.cmds.ConfirmTrade(ctx, f.tradeID, f.partyA)
		require.NoError(t, err)
		updatesAfterFirst := f.store.updateCalls

		view, err := f.cmds.ConfirmTrade(ctx, f.tradeID, f.partyA)
		require.NoError(t, err)
		assert.Equal(t, "waiting", view.Status)
		assert.Equal(t, updatesAfterFirst, f.store.updateCalls)
		assert.Len(t, f.notifier.views, 1)
	})

	t.Run("confirming a settled trade does not move wallets again", func(t *testing.T) {
		f := newTradeFixture(t)

		_, err := f.cmds.ConfirmTrade(ctx, f.tradeID, f.partyA)
		require.NoError(t, err)
		_, err = f.cmds.ConfirmTrade(ctx, f.tradeID, f.partyB)
		require.NoError(t, err)

		view, err := f.cmds.ConfirmTrade(ctx, f.tradeID, f.partyA)
		require.NoError(t, err)
		assert.Equal(t, "confirmed", view.Status)
		assert.Equal(t, 2, f.store.moveCalls)
		assert.Len(t, f.notifier.views, 2)
	})

	t.Run("non-participant is rejected", func(t *testing.T) {
		f := newTradeFixture(t)

		_, err := f.cmds.ConfirmTrade(ctx, f.tradeID, uuid.New())
		require.True(t, errs.Is(err, errs.ErrNotTradeParty))
		assert.Empty(t, f.notifier.views)
	})

	t.Run("unknown trade is rejected", func(t *testing.T) {
		f := newTradeFixture(t)

		_, err := f.cmds.ConfirmTrade(ctx, uuid.New(), f.partyA)
		require.ErrorIs(t, err, errs.ErrTradeNotFound)
	})

	t.Run("lost version race is retried and converges", func(t *testing.T) {
		f := newTradeFixture(t)
		f.store.forceConflicts = 1

		view, err := f.cmds.ConfirmTrade(ctx, f.tradeID, f.partyA)
		require.NoError(t, err)
		assert.Equal(t, "waiting", view.Status)
		assert.Equal(t, 2, f.store.updateCalls)
		assert.Len(t, f.notifier.views, 1)
	})

	t.Run("persistent conflicts give up with a conflict error", func(t *testing.T) {
		f := newTradeFixture(t)
		f.store.forceConflicts = 10

		_, err := f.cmds.ConfirmTrade(ctx, f.tradeID, f.partyA)
		require.ErrorIs(t, err, errs.ErrTradeConflict)
		assert.Empty(t, f.notifier.views)
	})

	t.Run("losing a settlement race converges to the confirmed snapshot", func(t *testing.T) {
		f := newTradeFixture(t)

		_, err := f.cmds.ConfirmTrade(ctx, f.tradeID, f.partyA)
		require.NoError(t, err)

		waiting := f.store.trades[f.tradeID]
		stale, err := trade.ReconstructTrade(
			waiting.ID(), waiting.PartyA(), waiting.PartyB(),
			waiting.CouponFromA(), waiting.CouponFromB(),
			waiting.RoomID().String(), waiting.Status(), waiting.ConfirmedBy(),
			waiting.Version(), waiting.CreatedAt(), waiting.ConfirmedAt(),
		)
		require.NoError(t, err)

		_, err = f.cmds.ConfirmTrade(ctx, f.tradeID, f.partyB)
		require.NoError(t, err)
		movesAfterSettle := f.store.moveCalls

		// a concurrent confirm read the trade before the settlement landed;
		// it must come back with the committed snapshot, not an error
		f.store.staleReads = append(f.store.staleReads, stale)

		view, err := f.cmds.ConfirmTrade(ctx, f.tradeID, f.partyB)
		require.NoError(t, err)
		assert.Equal(t, "confirmed", view.Status)
		assert.Equal(t, movesAfterSettle, f.store.moveCalls)
		assert.Equal(t, f.partyB, f.store.wallet[f.couponA])
		assert.Equal(t, f.partyA, f.store.wallet[f.couponB])
		assert.Len(t, f.notifier.views, 2)
	})

	t.Run("settlement aborts atomically when a coupon was traded away", func(t *testing.T) {
		f := newTradeFixture(t)

		_, err := f.cmds.ConfirmTrade(ctx, f.tradeID, f.partyA)
		require.NoError(t, err)

		// party B's coupon left their wallet through another trade
		thief := uuid.New()
		f.store.wallet[f.couponB] = thief

		_, err = f.cmds.ConfirmTrade(ctx, f.tradeID, f.partyB)
		require.ErrorIs(t, err, errs.ErrCouponNotOwned)

		// the first move rolled back with the transaction
		assert.Equal(t, f.partyA, f.store.wallet[f.couponA])
		assert.Equal(t, thief, f.store.wallet[f.couponB])
		assert.Equal(t, "waiting", f.store.trades[f.tradeID].Status().String())
		assert.Len(t, f.notifier.views, 1)
	})
}
