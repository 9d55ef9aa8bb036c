//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"coupon-swap/internal/pkg/errs"
	"coupon-swap/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCouponStore struct {
	coupons []*queries.CouponView
}

func (s *stubCouponStore) FindByID(_ context.Context, id uuid.UUID) (*queries.CouponView, error) {
	for _, c := range s.coupons {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, errs.ErrCouponNotFound
}

func (s *stubCouponStore) FindAll(context.Context) ([]*queries.CouponView, error) {
	return s.coupons, nil
}

type stubUserStore struct {
	users map[uuid.UUID]*queries.UserView
}

func (s *stubUserStore) FindByID(_ context.Context, id uuid.UUID) (*queries.UserView, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, errs.ErrUserNotFound
	}
	return u, nil
}

func (s *stubUserStore) FindWallet(context.Context, uuid.UUID) ([]uuid.UUID, error) {
	return nil, nil
}

func viewFor(owner uuid.UUID, platform, category string, expiresAt time.Time) *queries.CouponView {
	return &queries.CouponView{
		ID:          uuid.New(),
		OwnerID:     owner,
		Platform:    platform,
		Category:    category,
		ValueCents:  1500,
		Description: platform + " " + category + " voucher",
		ImageURL:    "https://example.com/c.png",
		ExpiresAt:   expiresAt.UTC().Format(time.RFC3339),
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}
}

func TestMatchesForUser(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	other := uuid.New()
	base := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	bothMatch := viewFor(other, "amazon", "electronics", base.AddDate(0, 2, 0))
	platformOnly := viewFor(other, "Amazon", "books", base.AddDate(0, 1, 0))
	categoryOnly := viewFor(other, "rakuten", "Electronics", base.AddDate(0, 3, 0))
	noMatch := viewFor(other, "uber", "food", base)
	ownCoupon := viewFor(userID, "amazon", "electronics", base)

	couponStore := &stubCouponStore{coupons: []*queries.CouponView{
		bothMatch, platformOnly, categoryOnly, noMatch, ownCoupon,
	}}
	userStore := &stubUserStore{users: map[uuid.UUID]*queries.UserView{
		userID: {
			ID:                  userID,
			PreferredPlatforms:  []string{"amazon"},
			PreferredCategories: []string{"electronics"},
		},
	}}

	q := queries.NewCouponQueries(couponStore, userStore)

	t.Run("scores and sorts by soonest expiry", func(t *testing.T) {
		matches, err := q.MatchesForUser(ctx, userID)
		require.NoError(t, err)
		require.Len(t, matches, 3)

		// soonest expiry first, case-insensitive matching
		assert.Equal(t, platformOnly.ID, matches[0].ID)
		assert.Equal(t, 80, matches[0].Score)
		assert.Equal(t, bothMatch.ID, matches[1].ID)
		assert.Equal(t, 95, matches[1].Score)
		assert.Equal(t, categoryOnly.ID, matches[2].ID)
		assert.Equal(t, 15, matches[2].Score)
	})

	t.Run("no preferences yields no matches", func(t *testing.T) {
		plainUser := uuid.New()
		userStore.users[plainUser] = &queries.UserView{ID: plainUser}

		matches, err := q.MatchesForUser(ctx, plainUser)
		require.NoError(t, err)
		assert.Empty(t, matches)
	})

	t.Run("unknown user propagates not found", func(t *testing.T) {
		_, err := q.MatchesForUser(ctx, uuid.New())
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}

func TestSearch(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	base := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	amazon := viewFor(owner, "amazon", "electronics", base.AddDate(0, 2, 0))
	rakuten := viewFor(owner, "rakuten", "books", base.AddDate(0, 1, 0))

	q := queries.NewCouponQueries(
		&stubCouponStore{coupons: []*queries.CouponView{amazon, rakuten}},
		&stubUserStore{},
	)

	t.Run("matches platform keyword case-insensitively", func(t *testing.T) {
		results, err := q.Search(ctx, "AMAZON", queries.SortNone)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, amazon.ID, results[0].ID)
	})

	t.Run("any keyword hit is enough", func(t *testing.T) {
		results, err := q.Search(ctx, "books nothing-else", queries.SortNone)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, rakuten.ID, results[0].ID)
	})

	t.Run("matches on value", func(t *testing.T) {
		results, err := q.Search(ctx, "1500", queries.SortNone)
		require.NoError(t, err)
		assert.Len(t, results, 2)
	})

	t.Run("sorts by expiry when requested", func(t *testing.T) {
		results, err := q.Search(ctx, "voucher", queries.SortAsc)
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, rakuten.ID, results[0].ID)

		results, err = q.Search(ctx, "voucher", queries.SortDesc)
		require.NoError(t, err)
		assert.Equal(t, amazon.ID, results[0].ID)
	})

	t.Run("blank query is a validation error", func(t *testing.T) {
		_, err := q.Search(ctx, "   ", queries.SortNone)
		assert.ErrorIs(t, err, errs.ErrDomainValidation)
	})
}
