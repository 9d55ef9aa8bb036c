package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createTrade = `
INSERT INTO trades (id, party_a, party_b, coupon_from_a, coupon_from_b, room_id, status, confirmed_by, version, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id, party_a, party_b, coupon_from_a, coupon_from_b, room_id, status, confirmed_by, version, created_at, confirmed_at
`

type CreateTradeParams struct {
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
}

func (q *Queries) CreateTrade(ctx context.Context, db DBTX, arg CreateTradeParams) (Trades, error) {
	row := db.QueryRow(ctx, createTrade,
		arg.ID,
		arg.PartyA,
		arg.PartyB,
		arg.CouponFromA,
		arg.CouponFromB,
		arg.RoomID,
		arg.Status,
		arg.ConfirmedBy,
		arg.Version,
		arg.CreatedAt,
	)
	var i Trades
	err := row.Scan(
		&i.ID,
		&i.PartyA,
		&i.PartyB,
		&i.CouponFromA,
		&i.CouponFromB,
		&i.RoomID,
		&i.Status,
		&i.ConfirmedBy,
		&i.Version,
		&i.CreatedAt,
		&i.ConfirmedAt,
	)
	return i, err
}

const getTradeByID = `
SELECT id, party_a, party_b, coupon_from_a, coupon_from_b, room_id, status, confirmed_by, version, created_at, confirmed_at
FROM trades
WHERE id = $1
`

func (q *Queries) GetTradeByID(ctx context.Context, db DBTX, id uuid.UUID) (Trades, error) {
	row := db.QueryRow(ctx, getTradeByID, id)
	var i Trades
	err := row.Scan(
		&i.ID,
		&i.PartyA,
		&i.PartyB,
		&i.CouponFromA,
		&i.CouponFromB,
		&i.RoomID,
		&i.Status,
		&i.ConfirmedBy,
		&i.Version,
		&i.CreatedAt,
		&i.ConfirmedAt,
	)
	return i, err
}

const getOpenTradesByUser = `
SELECT id, party_a, party_b, coupon_from_a, coupon_from_b, room_id, status, confirmed_by, version, created_at, confirmed_at
FROM trades
WHERE (party_a = $1 OR party_b = $1)
  AND status IN ('pending', 'waiting')
ORDER BY created_at DESC
`

func (q *Queries) GetOpenTradesByUser(ctx context.Context, db DBTX, userID uuid.UUID) ([]Trades, error) {
	rows, err := db.Query(ctx, getOpenTradesByUser, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Trades
	for rows.Next() {
		var i Trades
		if err := rows.Scan(
			&i.ID,
			&i.PartyA,
			&i.PartyB,
			&i.CouponFromA,
			&i.CouponFromB,
			&i.RoomID,
			&i.Status,
			&i.ConfirmedBy,
			&i.Version,
			&i.CreatedAt,
			&i.ConfirmedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateTradeConfirmation = `
UPDATE trades
SET status = $2,
    confirmed_by = $3,
    confirmed_at = $4,
    version = version + 1
WHERE id = $1
  AND version = $5
`

type UpdateTradeConfirmationParams struct {
	ID              uuid.UUID
	Status          string
	ConfirmedBy     []string
	ConfirmedAt     pgtype.Timestamptz
	ExpectedVersion int32
}

// UpdateTradeConfirmation is the conditional write every trade mutation goes
// through: it only applies when the stored version matches the version the
// caller read. Returns the number of rows updated (0 means a lost race).
func (q *Queries) UpdateTradeConfirmation(ctx context.Context, db DBTX, arg UpdateTradeConfirmationParams) (int64, error) {
	result, err := db.Exec(ctx, updateTradeConfirmation,
		arg.ID,
		arg.Status,
		arg.ConfirmedBy,
		arg.ConfirmedAt,
		arg.ExpectedVersion,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
