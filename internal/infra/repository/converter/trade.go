package converter

import (
	"coupon-swap/internal/domain/trade"
	sqlc "coupon-swap/internal/infra/sqlc/generated"
	"coupon-swap/internal/pkg/pgconv"

	"github.com/google/uuid"
)

func TradeToInfra(t *trade.Trade) sqlc.CreateTradeParams {
	return sqlc.CreateTradeParams{
		ID:          t.ID(),
		PartyA:      t.PartyA(),
		PartyB:      t.PartyB(),
		CouponFromA: t.CouponFromA(),
		CouponFromB: t.CouponFromB(),
		RoomID:      t.RoomID().String(),
		Status:      t.Status().String(),
		ConfirmedBy: ConfirmedByToStrings(t.ConfirmedBy()),
		Version:     t.Version(),
		CreatedAt:   pgconv.TimeToPgtype(t.CreatedAt()),
	}
}

func TradeFromRow(row sqlc.Trades) (*trade.Trade, error) {
	confirmedBy, err := ConfirmedByFromStrings(row.ConfirmedBy)
	if err != nil {
		return nil, err
	}
	return trade.ReconstructTrade(
		row.ID,
		row.PartyA,
		row.PartyB,
		row.CouponFromA,
		row.CouponFromB,
		row.RoomID,
		trade.Status(row.Status),
		confirmedBy,
		row.Version,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimePtrFromPgtype(row.ConfirmedAt),
	)
}

// confirmed_by persists as text[] so the set round-trips in insertion order.
func ConfirmedByToStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

func ConfirmedByFromStrings(raw []string) ([]uuid.UUID, error) {
	out := make([]uuid.UUID, len(raw))
	for i, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, err
		}
		out[i] = id
	}
	return out, nil
}
