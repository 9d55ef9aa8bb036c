package commands

import (
	"context"
	"time"

	"coupon-swap/internal/domain/coupon"
	"coupon-swap/internal/infra"
	"coupon-swap/internal/pkg/clock"
	"coupon-swap/internal/pkg/errs"
	"coupon-swap/internal/usecase/queries"
	"coupon-swap/internal/usecase/shared"
)

type CouponCommands interface {
	// UploadCoupon registers a coupon in the catalog and places it into the
	// owner's wallet in the same transaction.
	UploadCoupon(ctx context.Context, cmd UploadCouponCommand) (*queries.CouponView, error)
}

type couponUseCaseImpl struct {
	uow           shared.UnitOfWork
	couponQueries queries.CouponQueries
	clock         clock.Clock
}

func NewCouponCommands(uow shared.UnitOfWork, couponQueries queries.CouponQueries, clock clock.Clock) CouponCommands {
	return &couponUseCaseImpl{
		uow:           uow,
		couponQueries: couponQueries,
		clock:         clock,
	}
}

func (u *couponUseCaseImpl) UploadCoupon(ctx context.Context, cmd UploadCouponCommand) (*queries.CouponView, error) {
	expiresAt, err := time.Parse(time.RFC3339, cmd.ExpiresAt)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "invalid expiry date"), errs.ErrDomainValidation)
	}

	now := u.clock.Now()
	entity, err := coupon.NewCoupon(
		cmd.OwnerID,
		cmd.Platform,
		cmd.Category,
		cmd.ValueCents,
		cmd.Code,
		cmd.Description,
		cmd.ImageURL,
		expiresAt,
		now,
	)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	if err := entity.ValidateUsage(now); err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Coupons().Create(ctx, tx.DB(), entity); err != nil {
			return err
		}
		return tx.Wallets().Add(ctx, tx.DB(), entity.ID(), entity.OwnerID())
	})
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			// the owner row is gone, not the database
			return nil, errs.Mark(err, errs.ErrUserNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	view, err := u.couponQueries.GetByID(ctx, entity.ID())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}
