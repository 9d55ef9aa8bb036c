//go:build unit || e2e

package builder

import (
	"time"

	domtrade "coupon-swap/internal/domain/trade"
	reqdto "coupon-swap/internal/handler/dto/request"
	sqlc "coupon-swap/internal/infra/sqlc/generated"
	"coupon-swap/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type TradeBuilder struct {
	ID          uuid.UUID
	PartyA      uuid.UUID
	PartyB      uuid.UUID
	CouponFromA uuid.UUID
	CouponFromB uuid.UUID
	RoomID      string
	Status      string
	ConfirmedBy []uuid.UUID
	Version     int32
	CreatedAt   time.Time
}

func NewTradeBuilder() *TradeBuilder {
	return &TradeBuilder{
		ID:          uuid.New(),
		PartyA:      uuid.New(),
		PartyB:      uuid.New(),
		CouponFromA: uuid.New(),
		CouponFromB: uuid.New(),
		RoomID:      "room-1",
		Status:      string(domtrade.StatusPending),
		ConfirmedBy: []uuid.UUID{},
		Version:     1,
		CreatedAt:   time.Now(),
	}
}

func (b *TradeBuilder) With(mutate func(*TradeBuilder)) *TradeBuilder {
	mutate(b)
	return b
}

func (b *TradeBuilder) BuildDomain() (*domtrade.Trade, error) {
	return domtrade.NewTrade(b.PartyA, b.PartyB, b.CouponFromA, b.CouponFromB, b.RoomID, b.CreatedAt)
}

func (b *TradeBuilder) BuildInfra() sqlc.Trades {
	confirmedBy := make([]string, len(b.ConfirmedBy))
	for i, id := range b.ConfirmedBy {
		confirmedBy[i] = id.String()
	}
	return sqlc.Trades{
		ID:          b.ID,
		PartyA:      b.PartyA,
		PartyB:      b.PartyB,
		CouponFromA: b.CouponFromA,
		CouponFromB: b.CouponFromB,
		RoomID:      b.RoomID,
		Status:      b.Status,
		ConfirmedBy: confirmedBy,
		Version:     b.Version,
		CreatedAt:   pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func (b *TradeBuilder) BuildView() *queries.TradeView {
	confirmedBy := b.ConfirmedBy
	if confirmedBy == nil {
		confirmedBy = []uuid.UUID{}
	}
	return &queries.TradeView{
		ID:          b.ID,
		PartyA:      b.PartyA,
		PartyB:      b.PartyB,
		CouponFromA: b.CouponFromA,
		CouponFromB: b.CouponFromB,
		RoomID:      b.RoomID,
		Status:      b.Status,
		ConfirmedBy: confirmedBy,
		Version:     b.Version,
		CreatedAt:   b.CreatedAt,
	}
}

func (b *TradeBuilder) BuildCreateRequestDTO() reqdto.CreateTradeRequest {
	return reqdto.CreateTradeRequest{
		PartyA:      b.PartyA,
		PartyB:      b.PartyB,
		CouponFromA: b.CouponFromA,
		CouponFromB: b.CouponFromB,
		RoomID:      b.RoomID,
	}
}
