package commands

import (
	"context"

	"coupon-swap/internal/domain/trade"
	"coupon-swap/internal/infra"
	"coupon-swap/internal/pkg/clock"
	"coupon-swap/internal/pkg/errs"
	"coupon-swap/internal/usecase/queries"
	"coupon-swap/internal/usecase/shared"

	"github.com/google/uuid"
)

// A confirmation that loses the version race re-reads and recomputes; two
// parties confirming simultaneously converge within one extra round trip,
// so a small bound is enough.
const maxConfirmAttempts = 3

type TradeCommands interface {
	CreateTrade(ctx context.Context, cmd CreateTradeCommand) (*queries.TradeView, error)
	// ConfirmTrade records uid's agreement. When both parties have
	// confirmed it also settles the trade: both wallet moves and the
	// terminal status transition commit as one transaction, exactly once.
	// Confirming an already confirmed trade is an idempotent no-op.
	ConfirmTrade(ctx context.Context, tradeID, uid uuid.UUID) (*queries.TradeView, error)
}

type tradeUseCaseImpl struct {
	uow          shared.UnitOfWork
	tradeQueries queries.TradeQueries
	notifier     TradeNotifier
	clock        clock.Clock
}

func NewTradeCommands(
	uow shared.UnitOfWork,
	tradeQueries queries.TradeQueries,
	notifier TradeNotifier,
	clock clock.Clock,
) TradeCommands {
	return &tradeUseCaseImpl{
		uow:          uow,
		tradeQueries: tradeQueries,
		notifier:     notifier,
		clock:        clock,
	}
}

func (u *tradeUseCaseImpl) CreateTrade(ctx context.Context, cmd CreateTradeCommand) (*queries.TradeView, error) {
	entity, err := trade.NewTrade(
		cmd.PartyA,
		cmd.PartyB,
		cmd.CouponFromA,
		cmd.CouponFromB,
		cmd.RoomID,
		u.clock.Now(),
	)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Trades().Create(ctx, tx.DB(), entity)
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	// Read-after-write: return the stored snapshot, not the in-memory one
	view, err := u.tradeQueries.GetByID(ctx, entity.ID())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	u.notifier.TradeUpdated(view.RoomID, view)
	return view, nil
}

func (u *tradeUseCaseImpl) ConfirmTrade(ctx context.Context, tradeID, uid uuid.UUID) (*queries.TradeView, error) {
	for attempt := 0; attempt < maxConfirmAttempts; attempt++ {
		view, changed, err := u.confirmOnce(ctx, tradeID, uid)
		if err != nil {
			if errs.Is(err, errs.ErrTradeConflict) {
				// Lost the version race; re-read and recompute. If the
				// other confirmation settled the trade, the next pass
				// resolves into the idempotent no-op.
				continue
			}
			return nil, err
		}
		if changed {
			u.notifier.TradeUpdated(view.RoomID, view)
		}
		return view, nil
	}
	return nil, errs.ErrTradeConflict
}

func (u *tradeUseCaseImpl) confirmOnce(ctx context.Context, tradeID, uid uuid.UUID) (*queries.TradeView, bool, error) {
	var changed bool

	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Trades().FindByID(ctx, tx.DB(), tradeID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrTradeNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		expectedVersion := entity.Version()

		changed, err = entity.Confirm(uid, u.clock.Now())
		if err != nil {
			return errs.Mark(err, errs.ErrNotTradeParty)
		}
		if !changed {
			// Duplicate confirmation or already settled: nothing to write
			return nil
		}

		// The version CAS goes first. It elects a single winner per
		// transition, so a confirm racing an in-flight settlement fails
		// here with a conflict and converges through the retry re-read
		// instead of tripping over already-moved wallets.
		applied, err := tx.Trades().ConditionalUpdate(ctx, tx.DB(), entity, expectedVersion)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if !applied {
			return errs.ErrTradeConflict
		}

		if entity.IsConfirmed() {
			if err := u.settle(ctx, tx, entity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	view, err := u.tradeQueries.GetByID(ctx, tradeID)
	if err != nil {
		return nil, false, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, changed, nil
}

// settle swaps coupon ownership between the two wallets. It runs inside the
// same transaction as the trade's terminal transition, after the version
// CAS has claimed it, so either both moves and the status flip commit or
// none do. Each move is guarded by the expected current owner: a coupon
// that was traded away through another trade aborts the settlement instead
// of double-spending.
func (u *tradeUseCaseImpl) settle(ctx context.Context, tx shared.Tx, entity *trade.Trade) error {
	moved, err := tx.Wallets().Move(ctx, tx.DB(), entity.CouponFromA(), entity.PartyA(), entity.PartyB())
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !moved {
		return errs.ErrCouponNotOwned
	}

	moved, err = tx.Wallets().Move(ctx, tx.DB(), entity.CouponFromB(), entity.PartyB(), entity.PartyA())
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !moved {
		return errs.ErrCouponNotOwned
	}

	// Keep the catalog's display owner in sync with the wallet store
	if err := tx.Coupons().SetOwner(ctx, tx.DB(), entity.CouponFromA(), entity.PartyB()); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if err := tx.Coupons().SetOwner(ctx, tx.DB(), entity.CouponFromB(), entity.PartyA()); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
