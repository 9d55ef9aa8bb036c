package repository

import (
	"context"
	"errors"
	"time"

	"coupon-swap/internal/domain/user"
	"coupon-swap/internal/infra"
	sqlc "coupon-swap/internal/infra/sqlc/generated"
	"coupon-swap/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (sqlc.Users, error)
	UpdateUserPreferences(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserPreferencesParams) (int64, error)
}

type UserRepository struct {
	queries UserWriteQueries
}

func NewUserRepository(queries *sqlc.Queries) *UserRepository {
	return &UserRepository{queries: queries}
}

func (r *UserRepository) Create(ctx context.Context, tx sqlc.DBTX, u *user.User, now time.Time) error {
	_, err := r.queries.CreateUser(ctx, tx, sqlc.CreateUserParams{
		ID:                  u.ID(),
		Name:                u.Name(),
		Email:               u.Email(),
		PreferredPlatforms:  []string{},
		PreferredCategories: []string{},
		CreatedAt:           pgconv.TimeToPgtype(now),
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation {
			return infra.WrapRepoErr("user already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) UpdatePreferences(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, platforms, categories []string) (bool, error) {
	rows, err := r.queries.UpdateUserPreferences(ctx, tx, sqlc.UpdateUserPreferencesParams{
		ID:                  id,
		PreferredPlatforms:  platforms,
		PreferredCategories: categories,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to update user preferences", err)
	}
	return rows == 1, nil
}
