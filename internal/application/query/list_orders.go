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

type ListOrders struct {
	uowFactory *dbs.UOWFactory
}

func NewListOrders(factory *dbs.UOWFactory) *ListOrders {
	return &ListOrders{uowFactory: factory}
}

func (c *ListOrders) Query(ctx context.Context, siteID uuid.UUID, identity *auth.Identity) ([]db.Order, error) {
	uow := c.uowFactory.GetUoW()
	tx, err := uow.Begin()
	if err != nil {
		return nil, err
	}
	defer uow.Finalize(&err)

	site, err := repo.NewSiteRepo(tx).GetSite(ctx, siteID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NotFoundError{Resource: "site"}
		}
		return nil, err
	}
	if site.UserID != identity.UserID {
		return nil, errs.NotFoundError{Resource: "site"}
	}

	orders, err := repo.NewOrderRepo(tx).GetOrdersBySite(ctx, siteID)
	return orders, err
}
