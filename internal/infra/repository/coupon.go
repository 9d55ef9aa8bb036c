package repository

import (
	"context"
	"errors"

	"coupon-swap/internal/domain/coupon"
	"coupon-swap/internal/infra"
	sqlc "coupon-swap/internal/infra/sqlc/generated"
	"coupon-swap/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgErrCodeForeignKeyViolation = "23503"

type CouponWriteQueries interface {
	CreateCoupon(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCouponParams) (sqlc.Coupons, error)
	UpdateCouponOwner(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateCouponOwnerParams) error
}

type CouponRepository struct {
	queries CouponWriteQueries
}

func NewCouponRepository(queries *sqlc.Queries) *CouponRepository {
	return &CouponRepository{queries: queries}
}

func (r *CouponRepository) Create(ctx context.Context, tx sqlc.DBTX, c *coupon.Coupon) error {
	var code *string
	if c.Code() != "" {
		v := c.Code()
		code = &v
	}

	_, err := r.queries.CreateCoupon(ctx, tx, sqlc.CreateCouponParams{
		ID:          c.ID(),
		OwnerID:     c.OwnerID(),
		Platform:    c.Platform(),
		Category:    c.Category(),
		ValueCents:  c.ValueCents(),
		Code:        pgconv.StringPtrToPgtype(code),
		Description: c.Description(),
		ImageUrl:    c.ImageURL(),
		ExpiresAt:   pgconv.TimeToPgtype(c.ExpiresAt()),
		CreatedAt:   pgconv.TimeToPgtype(c.CreatedAt()),
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeForeignKeyViolation {
			return infra.WrapRepoErr("coupon owner does not exist", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to create coupon", err)
	}
	return nil
}

func (r *CouponRepository) SetOwner(ctx context.Context, tx sqlc.DBTX, couponID, ownerID uuid.UUID) error {
	err := r.queries.UpdateCouponOwner(ctx, tx, sqlc.UpdateCouponOwnerParams{
		ID:      couponID,
		OwnerID: ownerID,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update coupon owner", err)
	}
	return nil
}
