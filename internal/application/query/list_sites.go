package query

import (
	"context"

	"github.com/vitrinehq/vitrine-backend/internal/infra/auth"
	"github.com/vitrinehq/vitrine-backend/internal/infra/db"
	"github.com/vitrinehq/vitrine-backend/internal/infra/db/repo"
	dbs "github.com/vitrinehq/vitrine-backend/pkg/db"
)

type ListSites struct {
	uowFactory *dbs.UOWFactory
}

func NewListSites(factory *dbs.UOWFactory) *ListSites {
	return &ListSites{uowFactory: factory}
}

// Query returns the caller's sites, newest first. No pagination: a tenant
// owns a handful of sites at most.
func (c *ListSites) Query(ctx context.Context, identity *auth.Identity) ([]db.Site, error) {
	uow := c.uowFactory.GetUoW()
	tx, err := uow.Begin()
	if err != nil {
		return nil, err
	}
	defer uow.Finalize(&err)

	sites, err := repo.NewSiteRepo(tx).GetSitesByUser(ctx, identity.UserID)
	return sites, err
}
