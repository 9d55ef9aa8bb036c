package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createUser = `
INSERT INTO users (id, name, email, preferred_platforms, preferred_categories, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, name, email, preferred_platforms, preferred_categories, created_at
`

type CreateUserParams struct {
	ID                  uuid.UUID
	Name                string
	Email               string
	PreferredPlatforms  []string
	PreferredCategories []string
	CreatedAt           pgtype.Timestamptz
}

func (q *Queries) CreateUser(ctx context.Context, db DBTX, arg CreateUserParams) (Users, error) {
	row := db.QueryRow(ctx, createUser,
		arg.ID,
		arg.Name,
		arg.Email,
		arg.PreferredPlatforms,
		arg.PreferredCategories,
		arg.CreatedAt,
	)
	var i Users
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Email,
		&i.PreferredPlatforms,
		&i.PreferredCategories,
		&i.CreatedAt,
	)
	return i, err
}

const getUserByID = `
SELECT id, name, email, preferred_platforms, preferred_categories, created_at
FROM users
WHERE id = $1
`

func (q *Queries) GetUserByID(ctx context.Context, db DBTX, id uuid.UUID) (Users, error) {
	row := db.QueryRow(ctx, getUserByID, id)
	var i Users
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Email,
		&i.PreferredPlatforms,
		&i.PreferredCategories,
		&i.CreatedAt,
	)
	return i, err
}

const updateUserPreferences = `
UPDATE users
SET preferred_platforms = $2,
    preferred_categories = $3
WHERE id = $1
`

type UpdateUserPreferencesParams struct {
	ID                  uuid.UUID
	PreferredPlatforms  []string
	PreferredCategories []string
}

func (q *Queries) UpdateUserPreferences(ctx context.Context, db DBTX, arg UpdateUserPreferencesParams) (int64, error) {
	result, err := db.Exec(ctx, updateUserPreferences, arg.ID, arg.PreferredPlatforms, arg.PreferredCategories)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
