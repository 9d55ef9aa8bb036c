package request

import (
	"coupon-swap/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateTradeRequest struct {
	PartyA      uuid.UUID `json:"party_a" binding:"required"`
	PartyB      uuid.UUID `json:"party_b" binding:"required"`
	CouponFromA uuid.UUID `json:"coupon_from_a" binding:"required"`
	CouponFromB uuid.UUID `json:"coupon_from_b" binding:"required"`
	RoomID      string    `json:"room_id" binding:"required"`
}

func (r CreateTradeRequest) ToCommand() commands.CreateTradeCommand {
	return commands.CreateTradeCommand{
		PartyA:      r.PartyA,
		PartyB:      r.PartyB,
		CouponFromA: r.CouponFromA,
		CouponFromB: r.CouponFromB,
		RoomID:      r.RoomID,
	}
}

type ConfirmTradeRequest struct {
	UserID uuid.UUID `json:"user_id" binding:"required"`
}
