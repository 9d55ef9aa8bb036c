//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"coupon-swap/internal/infra"
	"coupon-swap/internal/pkg/clock"
	"coupon-swap/internal/pkg/errs"
	"coupon-swap/internal/usecase/commands"
	"coupon-swap/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCouponQueries struct{}

func (fakeCouponQueries) GetByID(_ context.Context, id uuid.UUID) (*queries.CouponView, error) {
	return &queries.CouponView{ID: id}, nil
}

func (fakeCouponQueries) ListAll(context.Context) ([]*queries.CouponView, error) {
	return nil, nil
}

func (fakeCouponQueries) MatchesForUser(context.Context, uuid.UUID) ([]*queries.CouponMatchView, error) {
	return nil, nil
}

func (fakeCouponQueries) Search(context.Context, string, queries.SortOrder) ([]*queries.CouponView, error) {
	return nil, nil
}

func newCouponFixture() (*fakeStore, commands.CouponCommands) {
	store := newFakeStore()
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	return store, commands.NewCouponCommands(&fakeUoW{store: store}, fakeCouponQueries{}, clk)
}

func uploadCommand(ownerID uuid.UUID) commands.UploadCouponCommand {
	return commands.UploadCouponCommand{
		OwnerID:     ownerID,
		Platform:    "amazon",
		Category:    "electronics",
		ValueCents:  2500,
		Code:        "SAVE25",
		Description: "25% off electronics",
		ImageURL:    "https://example.com/coupon.png",
		ExpiresAt:   "2025-12-31T00:00:00Z",
	}
}

func TestUploadCoupon(t *testing.T) {
	ctx := context.Background()

	t.Run("registers the coupon and its wallet row", func(t *testing.T) {
		store, cmds := newCouponFixture()
		ownerID := uuid.New()

		view, err := cmds.UploadCoupon(ctx, uploadCommand(ownerID))
		require.NoError(t, err)
		assert.Equal(t, ownerID, store.wallet[view.ID])
	})

	t.Run("unknown owner maps to user not found", func(t *testing.T) {
		store, cmds := newCouponFixture()
		store.couponCreateErr = infra.WrapRepoErr("coupon owner does not exist", nil, infra.KindForeignKeyViolated)

		_, err := cmds.UploadCoupon(ctx, uploadCommand(uuid.New()))
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrUserNotFound))
		assert.False(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
	})

	t.Run("malformed expiry is a validation error", func(t *testing.T) {
		_, cmds := newCouponFixture()

		cmd := uploadCommand(uuid.New())
		cmd.ExpiresAt = "soon"
		_, err := cmds.UploadCoupon(ctx, cmd)
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
	})

	t.Run("expired coupons are rejected", func(t *testing.T) {
		_, cmds := newCouponFixture()

		cmd := uploadCommand(uuid.New())
		cmd.ExpiresAt = "2025-01-01T00:00:00Z"
		_, err := cmds.UploadCoupon(ctx, cmd)
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
	})
}
