package response

import (
	"time"

	"coupon-swap/internal/usecase/queries"

	"github.com/google/uuid"
)

type TradeResponse struct {
	ID          uuid.UUID   `json:"id"`
	PartyA      uuid.UUID   `json:"partyA"`
	PartyB      uuid.UUID   `json:"partyB"`
	CouponFromA uuid.UUID   `json:"couponFromA"`
	CouponFromB uuid.UUID   `json:"couponFromB"`
	RoomID      string      `json:"roomId"`
	Status      string      `json:"status"`
	ConfirmedBy []uuid.UUID `json:"confirmedBy"`
	Version     int32       `json:"version"`
	CreatedAt   time.Time   `json:"createdAt"`
	ConfirmedAt *time.Time  `json:"confirmedAt,omitempty"`
}

func FromTradeView(v *queries.TradeView) *TradeResponse {
	confirmedBy := v.ConfirmedBy
	if confirmedBy == nil {
		confirmedBy = []uuid.UUID{}
	}
	return &TradeResponse{
		ID:          v.ID,
		PartyA:      v.PartyA,
		PartyB:      v.PartyB,
		CouponFromA: v.CouponFromA,
		CouponFromB: v.CouponFromB,
		RoomID:      v.RoomID,
		Status:      v.Status,
		ConfirmedBy: confirmedBy,
		Version:     v.Version,
		CreatedAt:   v.CreatedAt,
		ConfirmedAt: v.ConfirmedAt,
	}
}

func FromTradeList(views []*queries.TradeView) []*TradeResponse {
	result := make([]*TradeResponse, len(views))
	for i, v := range views {
		result[i] = FromTradeView(v)
	}
	return result
}
