package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createCoupon = `
INSERT INTO coupons (id, owner_id, platform, category, value_cents, code, description, image_url, expires_at, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id, owner_id, platform, category, value_cents, code, description, image_url, expires_at, created_at
`

type CreateCouponParams struct {
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

func (q *Queries) CreateCoupon(ctx context.Context, db DBTX, arg CreateCouponParams) (Coupons, error) {
	row := db.QueryRow(ctx, createCoupon,
		arg.ID,
		arg.OwnerID,
		arg.Platform,
		arg.Category,
		arg.ValueCents,
		arg.Code,
		arg.Description,
		arg.ImageUrl,
		arg.ExpiresAt,
		arg.CreatedAt,
	)
	var i Coupons
	err := row.Scan(
		&i.ID,
		&i.OwnerID,
		&i.Platform,
		&i.Category,
		&i.ValueCents,
		&i.Code,
		&i.Description,
		&i.ImageUrl,
		&i.ExpiresAt,
		&i.CreatedAt,
	)
	return i, err
}

const getCouponByID = `
SELECT id, owner_id, platform, category, value_cents, code, description, image_url, expires_at, created_at
FROM coupons
WHERE id = $1
`

func (q *Queries) GetCouponByID(ctx context.Context, db DBTX, id uuid.UUID) (Coupons, error) {
	row := db.QueryRow(ctx, getCouponByID, id)
	var i Coupons
	err := row.Scan(
		&i.ID,
		&i.OwnerID,
		&i.Platform,
		&i.Category,
		&i.ValueCents,
		&i.Code,
		&i.Description,
		&i.ImageUrl,
		&i.ExpiresAt,
		&i.CreatedAt,
	)
	return i, err
}

const listCoupons = `
SELECT id, owner_id, platform, category, value_cents, code, description, image_url, expires_at, created_at
FROM coupons
ORDER BY created_at DESC
`

func (q *Queries) ListCoupons(ctx context.Context, db DBTX) ([]Coupons, error) {
	rows, err := db.Query(ctx, listCoupons)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Coupons
	for rows.Next() {
		var i Coupons
		if err := rows.Scan(
			&i.ID,
			&i.OwnerID,
			&i.Platform,
			&i.Category,
			&i.ValueCents,
			&i.Code,
			&i.Description,
			&i.ImageUrl,
			&i.ExpiresAt,
			&i.CreatedAt,
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

const updateCouponOwner = `
UPDATE coupons
SET owner_id = $2
WHERE id = $1
`

type UpdateCouponOwnerParams struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
}

// UpdateCouponOwner keeps the catalog's display owner in sync with the
// wallet store after a settlement.
func (q *Queries) UpdateCouponOwner(ctx context.Context, db DBTX, arg UpdateCouponOwnerParams) error {
	_, err := db.Exec(ctx, updateCouponOwner, arg.ID, arg.OwnerID)
	return err
}
