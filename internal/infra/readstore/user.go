package readstore

import (
	"context"

	"coupon-swap/internal/infra"
	sqlc "coupon-swap/internal/infra/sqlc/generated"
	"coupon-swap/internal/pkg/pgconv"
	"coupon-swap/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserViewQueries interface {
	GetUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error)
	GetWalletCouponIDs(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]uuid.UUID, error)
}

type UserReadStore struct {
	queries UserViewQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries *sqlc.Queries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	row, err := r.queries.GetUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &queries.UserView{
		ID:                  row.ID,
		Name:                row.Name,
		Email:               row.Email,
		PreferredPlatforms:  emptyIfNil(row.PreferredPlatforms),
		PreferredCategories: emptyIfNil(row.PreferredCategories),
		CreatedAt:           pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}

func (r *UserReadStore) FindWallet(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	couponIDs, err := r.queries.GetWalletCouponIDs(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read wallet", err)
	}
	return couponIDs, nil
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
