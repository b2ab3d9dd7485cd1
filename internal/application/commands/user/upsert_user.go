package user

import (
	"context"
	"time"

	"github.com/vitrinehq/vitrine-backend/internal/infra/auth"
	"github.com/vitrinehq/vitrine-backend/internal/infra/db"
	"github.com/vitrinehq/vitrine-backend/internal/infra/db/repo"
	dbs "github.com/vitrinehq/vitrine-backend/pkg/db"
)

type UpsertUser struct {
	uowFactory *dbs.UOWFactory
}

func NewUpsertUser(factory *dbs.UOWFactory) *UpsertUser {
	return &UpsertUser{uowFactory: factory}
}

// Execute refreshes the caller's profile row from identity claims and returns
// it. Called on every /auth/user hit, which stands in for a login hook.
func (c *UpsertUser) Execute(ctx context.Context, identity *auth.Identity) (*db.User, error) {
	uow := c.uowFactory.GetUoW()
	tx, err := uow.Begin()
	if err != nil {
		return nil, err
	}
	defer uow.Finalize(&err)

	stored, err := repo.NewUserRepo(tx).UpsertUser(ctx, db.User{
		ID:              identity.UserID,
		Email:           identity.Email,
		FirstName:       identity.FirstName,
		LastName:        identity.LastName,
		ProfileImageURL: identity.ProfileImageURL,
		UpdatedAt:       time.Now(),
	})
	return stored, err
}
