package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type TradeView struct {
	ID          uuid.UUID   `json:"id"`
	PartyA      uuid.UUID   `json:"party_a"`
	PartyB      uuid.UUID   `json:"party_b"`
	CouponFromA uuid.UUID   `json:"coupon_from_a"`
	CouponFromB uuid.UUID   `json:"coupon_from_b"`
	RoomID      string      `json:"room_id"`
	Status      string      `json:"status"`
	ConfirmedBy []uuid.UUID `json:"confirmed_by"`
	Version     int32       `json:"version"`
	CreatedAt   time.Time   `json:"created_at"`
	ConfirmedAt *time.Time  `json:"confirmed_at,omitempty"`
}

type TradeQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*TradeView, error)
	// ListOpenByUser is the reconnect/catch-up path: every pending or
	// waiting trade the user participates in, newest first.
	ListOpenByUser(ctx context.Context, userID uuid.UUID) ([]*TradeView, error)
}

type TradeReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*TradeView, error)
	FindOpenByUser(ctx context.Context, userID uuid.UUID) ([]*TradeView, error)
}

type tradeQueriesImpl struct {
	store TradeReadStore
}

func NewTradeQueries(store TradeReadStore) TradeQueries {
	return &tradeQueriesImpl{store: store}
}

func (q *tradeQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*TradeView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *tradeQueriesImpl) ListOpenByUser(ctx context.Context, userID uuid.UUID) ([]*TradeView, error) {
	return q.store.FindOpenByUser(ctx, userID)
}
