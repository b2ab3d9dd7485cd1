package query

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/vitrinehq/vitrine-backend/internal/application/dto"
	"github.com/vitrinehq/vitrine-backend/internal/application/errs"
	"github.com/vitrinehq/vitrine-backend/internal/infra/db/repo"
	dbs "github.com/vitrinehq/vitrine-backend/pkg/db"
)

type GetPublicSite struct {
	uowFactory *dbs.UOWFactory
}

func NewGetPublicSite(factory *dbs.UOWFactory) *GetPublicSite {
	return &GetPublicSite{uowFactory: factory}
}

// Query resolves a storefront: the site by slug, gated on IsActive, bundled
// with its catalog. Inactive and missing sites are indistinguishable.
func (c *GetPublicSite) Query(ctx context.Context, slug string) (*dto.PublicSiteResponse, error) {
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
	if !site.IsActive {
		return nil, errs.NotFoundError{Resource: "site"}
	}

	products, err := repo.NewProductRepo(tx).GetProductsBySite(ctx, site.ID)
	if err != nil {
		return nil, err
	}
	return &dto.PublicSiteResponse{Site: *site, Products: products}, nil
}
