package sqlc

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Trades struct {
	ID          uuid.UUID
	PartyA      uuid.UUID
	PartyB      uuid.UUID
	CouponFromA uuid.UUID
	CouponFromB uuid.UUID
	RoomID      string
	Status      string
	ConfirmedBy []string
	Version     int32
	CreatedAt   pgtype.Timestamptz
	ConfirmedAt pgtype.Timestamptz
}

type Coupons struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Platform    string
	Category    string
	ValueCents  int64
	Code        pgtype.Text
	Description string
	ImageUrl    string
	ExpiresAt   pgtype.Timestamptz
	CreatedAt   pgtype.Timestamptz
}

type Users struct {
	ID                  uuid.UUID
	Name                string
	Email               string
	PreferredPlatforms  []string
	PreferredCategories []string
	CreatedAt           pgtype.Timestamptz
}

type WalletItems struct {
	CouponID uuid.UUID
	UserID   uuid.UUID
}
