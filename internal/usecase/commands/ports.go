package commands

import (
	"coupon-swap/internal/usecase/queries"

	"github.com/google/uuid"
)

// TradeNotifier fans trade snapshots out to everyone subscribed to the
// trade's room. Delivery is at-least-once and unordered; implementations
// must never fail the calling command (broadcast problems are logged, a
// committed trade is recoverable through the open-trades query).
type TradeNotifier interface {
	TradeUpdated(roomID string, view *queries.TradeView)
}

type CreateTradeCommand struct {
	PartyA      uuid.UUID
	PartyB      uuid.UUID
	CouponFromA uuid.UUID
	CouponFromB uuid.UUID
	RoomID      string
}

type UploadCouponCommand struct {
	OwnerID     uuid.UUID
	Platform    string
	Category    string
	ValueCents  int64
	Code        string
	Description string
	ImageURL    string
	ExpiresAt   string // RFC3339
}

type SignupUserCommand struct {
	Name  string
	Email string
}

type UpdatePreferencesCommand struct {
	UserID              uuid.UUID
	PreferredPlatforms  []string
	PreferredCategories []string
}
