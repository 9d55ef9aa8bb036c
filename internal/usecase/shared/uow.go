package shared

import (
	"context"
	"time"

	"coupon-swap/internal/domain/coupon"
	"coupon-swap/internal/domain/trade"
	"coupon-swap/internal/domain/user"
	sqlc "coupon-swap/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
}

type Tx interface {
	Trades() TradeRepository
	Wallets() WalletRepository
	Coupons() CouponRepository
	Users() UserRepository
	DB() sqlc.DBTX
}

type TradeRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, t *trade.Trade) error
	FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*trade.Trade, error)
	// ConditionalUpdate writes the trade's confirmation state only when the
	// stored version still matches expectedVersion. applied=false means the
	// caller lost a race and must re-read.
	ConditionalUpdate(ctx context.Context, tx sqlc.DBTX, t *trade.Trade, expectedVersion int32) (applied bool, err error)
}

type WalletRepository interface {
	Add(ctx context.Context, tx sqlc.DBTX, couponID, userID uuid.UUID) error
	// Move transfers a coupon between wallets, guarded by the expected
	// current owner. moved=false means ownership changed underneath.
	Move(ctx context.Context, tx sqlc.DBTX, couponID, fromUserID, toUserID uuid.UUID) (moved bool, err error)
}

type CouponRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, c *coupon.Coupon) error
	SetOwner(ctx context.Context, tx sqlc.DBTX, couponID, ownerID uuid.UUID) error
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User, now time.Time) error
	UpdatePreferences(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, platforms, categories []string) (updated bool, err error)
}
