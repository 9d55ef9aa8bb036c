package repository

import (
	"context"

	"coupon-swap/internal/domain/trade"
	"coupon-swap/internal/infra"
	"coupon-swap/internal/infra/repository/converter"
	sqlc "coupon-swap/internal/infra/sqlc/generated"
	"coupon-swap/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type TradeWriteQueries interface {
	CreateTrade(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateTradeParams) (sqlc.Trades, error)
	GetTradeByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Trades, error)
	UpdateTradeConfirmation(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateTradeConfirmationParams) (int64, error)
}

type TradeRepository struct {
	queries TradeWriteQueries
}

func NewTradeRepository(queries *sqlc.Queries) *TradeRepository {
	return &TradeRepository{queries: queries}
}

func (r *TradeRepository) Create(ctx context.Context, tx sqlc.DBTX, t *trade.Trade) error {
	params := converter.TradeToInfra(t)
	if _, err := r.queries.CreateTrade(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create trade", err)
	}
	return nil
}

func (r *TradeRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*trade.Trade, error) {
	row, err := r.queries.GetTradeByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("trade not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find trade by ID", err)
	}

	entity, err := converter.TradeFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert trade row", err)
	}
	return entity, nil
}

func (r *TradeRepository) ConditionalUpdate(ctx context.Context, tx sqlc.DBTX, t *trade.Trade, expectedVersion int32) (bool, error) {
	confirmedAt := pgtype.Timestamptz{}
	if t.ConfirmedAt() != nil {
		confirmedAt = pgconv.TimeToPgtype(*t.ConfirmedAt())
	}

	rows, err := r.queries.UpdateTradeConfirmation(ctx, tx, sqlc.UpdateTradeConfirmationParams{
		ID:              t.ID(),
		Status:          t.Status().String(),
		ConfirmedBy:     converter.ConfirmedByToStrings(t.ConfirmedBy()),
		ConfirmedAt:     confirmedAt,
		ExpectedVersion: expectedVersion,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to update trade confirmation", err)
	}
	return rows == 1, nil
}
