package readstore

import (
	"context"
	"time"

	"coupon-swap/internal/infra"
	sqlc "coupon-swap/internal/infra/sqlc/generated"
	"coupon-swap/internal/pkg/pgconv"
	"coupon-swap/internal/usecase/queries"

	"github.com/google/uuid"
)

type CouponViewQueries interface {
	GetCouponByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Coupons, error)
	ListCoupons(ctx context.Context, db sqlc.DBTX) ([]sqlc.Coupons, error)
}

type CouponReadStore struct {
	queries CouponViewQueries
	db      sqlc.DBTX
}

func NewCouponReadStore(queries *sqlc.Queries, db sqlc.DBTX) *CouponReadStore {
	return &CouponReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CouponReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CouponView, error) {
	row, err := r.queries.GetCouponByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by ID", err)
	}
	return rowToCouponView(row), nil
}

func (r *CouponReadStore) FindAll(ctx context.Context) ([]*queries.CouponView, error) {
	rows, err := r.queries.ListCoupons(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list coupons", err)
	}

	result := make([]*queries.CouponView, len(rows))
	for i, row := range rows {
		result[i] = rowToCouponView(row)
	}
	return result, nil
}

func rowToCouponView(row sqlc.Coupons) *queries.CouponView {
	return &queries.CouponView{
		ID:          row.ID,
		OwnerID:     row.OwnerID,
		Platform:    row.Platform,
		Category:    row.Category,
		ValueCents:  row.ValueCents,
		Code:        pgconv.StringPtrFromPgtype(row.Code),
		Description: row.Description,
		ImageURL:    row.ImageUrl,
		ExpiresAt:   pgconv.TimeFromPgtype(row.ExpiresAt).UTC().Format(time.RFC3339),
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt).UTC().Format(time.RFC3339),
	}
}
