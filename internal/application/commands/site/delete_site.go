package site

import (
	"context"

	"github.com/google/uuid"
	"github.com/vitrinehq/vitrine-backend/internal/infra/auth"
	"github.com/vitrinehq/vitrine-backend/internal/infra/db/repo"
	dbs "github.com/vitrinehq/vitrine-backend/pkg/db"
)

type DeleteSite struct {
	uowFactory *dbs.UOWFactory
}

func NewDeleteSite(factory *dbs.UOWFactory) *DeleteSite {
	return &DeleteSite{uowFactory: factory}
}

// Execute removes the site and everything hanging off it. Orders are part of
// the cascade: a deleted site keeps no history.
func (c *DeleteSite) Execute(ctx context.Context, id uuid.UUID, identity *auth.Identity) error {
	uow := c.uowFactory.GetUoW()
	tx, err := uow.Begin()
	if err != nil {
		return err
	}
	defer uow.Finalize(&err)

	siteRepo := repo.NewSiteRepo(tx)
	if _, err = getOwnedSite(ctx, siteRepo, id, identity); err != nil {
		return err
	}

	err = siteRepo.DeleteSite(ctx, id)
	return err
}
