package sqlc

import (
	"context"

	"github.com/google/uuid"
)

const insertWalletItem = `
INSERT INTO wallet_items (coupon_id, user_id)
VALUES ($1, $2)
`

type InsertWalletItemParams struct {
	CouponID uuid.UUID
	UserID   uuid.UUID
}

func (q *Queries) InsertWalletItem(ctx context.Context, db DBTX, arg InsertWalletItemParams) error {
	_, err := db.Exec(ctx, insertWalletItem, arg.CouponID, arg.UserID)
	return err
}

const moveWalletItem = `
UPDATE wallet_items
SET user_id = $3
WHERE coupon_id = $1
  AND user_id = $2
`

type MoveWalletItemParams struct {
	CouponID   uuid.UUID
	FromUserID uuid.UUID
	ToUserID   uuid.UUID
}

// MoveWalletItem transfers ownership only if FromUserID still owns the
// coupon. coupon_id is the table's primary key, so a coupon can never end up
// in two wallets; a zero row count means the expected owner no longer holds it.
func (q *Queries) MoveWalletItem(ctx context.Context, db DBTX, arg MoveWalletItemParams) (int64, error) {
	result, err := db.Exec(ctx, moveWalletItem, arg.CouponID, arg.FromUserID, arg.ToUserID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getWalletCouponIDs = `
SELECT coupon_id
FROM wallet_items
WHERE user_id = $1
ORDER BY coupon_id
`

func (q *Queries) GetWalletCouponIDs(ctx context.Context, db DBTX, userID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := db.Query(ctx, getWalletCouponIDs, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []uuid.UUID
	for rows.Next() {
		var couponID uuid.UUID
		if err := rows.Scan(&couponID); err != nil {
			return nil, err
		}
		items = append(items, couponID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getWalletItem = `
SELECT coupon_id, user_id
FROM wallet_items
WHERE coupon_id = $1
`

func (q *Queries) GetWalletItem(ctx context.Context, db DBTX, couponID uuid.UUID) (WalletItems, error) {
	row := db.QueryRow(ctx, getWalletItem, couponID)
	var i WalletItems
	err := row.Scan(&i.CouponID, &i.UserID)
	return i, err
}
