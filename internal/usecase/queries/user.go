package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type UserView struct {
	ID                  uuid.UUID `json:"id"`
	Name                string    `json:"name"`
	Email               string    `json:"email"`
	PreferredPlatforms  []string  `json:"preferred_platforms"`
	PreferredCategories []string  `json:"preferred_categories"`
	CreatedAt           time.Time `json:"created_at"`
}

type WalletView struct {
	UserID    uuid.UUID   `json:"user_id"`
	CouponIDs []uuid.UUID `json:"coupon_ids"`
}

type UserQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*UserView, error)
	Wallet(ctx context.Context, userID uuid.UUID) (*WalletView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
	FindWallet(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

type userQueriesImpl struct {
	store UserReadStore
}

func NewUserQueries(store UserReadStore) UserQueries {
	return &userQueriesImpl{store: store}
}

func (q *userQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*UserView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *userQueriesImpl) Wallet(ctx context.Context, userID uuid.UUID) (*WalletView, error) {
	couponIDs, err := q.store.FindWallet(ctx, userID)
	if err != nil {
		return nil, err
	}
	if couponIDs == nil {
		couponIDs = []uuid.UUID{}
	}
	return &WalletView{UserID: userID, CouponIDs: couponIDs}, nil
}
