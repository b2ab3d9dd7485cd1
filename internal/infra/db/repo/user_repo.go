package repo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/vitrinehq/vitrine-backend/internal/infra/db"
)

type UserRepo struct {
	tx pgx.Tx
}

func NewUserRepo(tx pgx.Tx) *UserRepo {
	return &UserRepo{tx: tx}
}

func (u *UserRepo) GetUser(ctx context.Context, id string) (*db.User, error) {
	var user db.User
	query := `SELECT id, email, first_name, last_name, profile_image_url, created_at, updated_at
		FROM vitrine.users WHERE id = $1`
	err := u.tx.QueryRow(ctx, query, id).Scan(&user.ID, &user.Email, &user.FirstName,
		&user.LastName, &user.ProfileImageURL, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpsertUser refreshes the profile row from the identity provider's claims on
// every login.
func (u *UserRepo) UpsertUser(ctx context.Context, user db.User) (*db.User, error) {
	var stored db.User
	query := `INSERT INTO vitrine.users(id, email, first_name, last_name, profile_image_url, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$6)
		ON CONFLICT (id) DO UPDATE SET email = $2, first_name = $3, last_name = $4,
			profile_image_url = $5, updated_at = $6
		RETURNING id, email, first_name, last_name, profile_image_url, created_at, updated_at`
	err := u.tx.QueryRow(ctx, query, user.ID, user.Email, user.FirstName, user.LastName,
		user.ProfileImageURL, user.UpdatedAt).Scan(&stored.ID, &stored.Email, &stored.FirstName,
		&stored.LastName, &stored.ProfileImageURL, &stored.CreatedAt, &stored.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}
