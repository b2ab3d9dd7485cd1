package query

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/vitrinehq/vitrine-backend/internal/application/errs"
	"github.com/vitrinehq/vitrine-backend/internal/infra/auth"
	"github.com/vitrinehq/vitrine-backend/internal/infra/db"
	"github.com/vitrinehq/vitrine-backend/internal/infra/db/repo"
	dbs "github.com/vitrinehq/vitrine-backend/pkg/db"
)

type GetSite struct {
	uowFactory *dbs.UOWFactory
}

func NewGetSite(factory *dbs.UOWFactory) *GetSite {
	return &GetSite{uowFactory: factory}
}

func (c *GetSite) Query(ctx context.Context, id uuid.UUID, identity *auth.Identity) (*db.Site, error) {
	uow := c.uowFactory.GetUoW()
	tx, err := uow.Begin()
	if err != nil {
		return nil, err
	}
	defer uow.Finalize(&err)

	site, err := repo.NewSiteRepo(tx).GetSite(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NotFoundError{Resource: "site"}
		}
		return nil, err
	}
	if site.UserID != identity.UserID {
		return nil, errs.NotFoundError{Resource: "site"}
	}
	return site, nil
}

// QueryBySlug backs the public slug resolver. Callers decide whether to gate
// on IsActive.
func (c *GetSite) QueryBySlug(ctx context.Context, slug string) (*db.Site, error) {
	uow := c.uowFactory.GetUoW()
	tx, err := uow.Begin()
	if err != nil {
		return nil, err
	}
	defer uow.Finalize(&err)

	site, err := repo.NewSiteRepo(tx).GetSiteBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NotFoundError{Resource: "site"}
		}
		return nil, err
	}
	return site, nil
}
