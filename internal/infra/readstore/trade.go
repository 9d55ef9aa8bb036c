package readstore

import (
	"context"

	"coupon-swap/internal/infra"
	"coupon-swap/internal/infra/repository/converter"
	sqlc "coupon-swap/internal/infra/sqlc/generated"
	"coupon-swap/internal/pkg/pgconv"
	"coupon-swap/internal/usecase/queries"

	"github.com/google/uuid"
)

type TradeViewQueries interface {
	GetTradeByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Trades, error)
	GetOpenTradesByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.Trades, error)
}

type TradeReadStore struct {
	queries TradeViewQueries
	db      sqlc.DBTX
}

func NewTradeReadStore(queries *sqlc.Queries, db sqlc.DBTX) *TradeReadStore {
	return &TradeReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *TradeReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.TradeView, error) {
	row, err := r.queries.GetTradeByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("trade not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find trade by ID", err)
	}
	return rowToTradeView(row)
}

func (r *TradeReadStore) FindOpenByUser(ctx context.Context, userID uuid.UUID) ([]*queries.TradeView, error) {
	rows, err := r.queries.GetOpenTradesByUser(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find open trades", err)
	}

	result := make([]*queries.TradeView, 0, len(rows))
	for _, row := range rows {
		view, err := rowToTradeView(row)
		if err != nil {
			return nil, err
		}
		result = append(result, view)
	}
	return result, nil
}

func rowToTradeView(row sqlc.Trades) (*queries.TradeView, error) {
	confirmedBy, err := converter.ConfirmedByFromStrings(row.ConfirmedBy)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert trade row", err)
	}
	if confirmedBy == nil {
		confirmedBy = []uuid.UUID{}
	}
	return &queries.TradeView{
		ID:          row.ID,
		PartyA:      row.PartyA,
		PartyB:      row.PartyB,
		CouponFromA: row.CouponFromA,
		CouponFromB: row.CouponFromB,
		RoomID:      row.RoomID,
		Status:      row.Status,
		ConfirmedBy: confirmedBy,
		Version:     row.Version,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		ConfirmedAt: pgconv.TimePtrFromPgtype(row.ConfirmedAt),
	}, nil
}
