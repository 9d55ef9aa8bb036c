package repository

import (
	"context"
	"errors"

	"coupon-swap/internal/infra"
	sqlc "coupon-swap/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgErrCodeUniqueViolation = "23505"

type WalletWriteQueries interface {
	InsertWalletItem(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertWalletItemParams) error
	MoveWalletItem(ctx context.Context, db sqlc.DBTX, arg sqlc.MoveWalletItemParams) (int64, error)
}

type WalletRepository struct {
	queries WalletWriteQueries
}

func NewWalletRepository(queries *sqlc.Queries) *WalletRepository {
	return &WalletRepository{queries: queries}
}

func (r *WalletRepository) Add(ctx context.Context, tx sqlc.DBTX, couponID, userID uuid.UUID) error {
	err := r.queries.InsertWalletItem(ctx, tx, sqlc.InsertWalletItemParams{
		CouponID: couponID,
		UserID:   userID,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation {
			return infra.WrapRepoErr("coupon already has an owner", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to add coupon to wallet", err)
	}
	return nil
}

func (r *WalletRepository) Move(ctx context.Context, tx sqlc.DBTX, couponID, fromUserID, toUserID uuid.UUID) (bool, error) {
	rows, err := r.queries.MoveWalletItem(ctx, tx, sqlc.MoveWalletItemParams{
		CouponID:   couponID,
		FromUserID: fromUserID,
		ToUserID:   toUserID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to move coupon between wallets", err)
	}
	return rows == 1, nil
}
