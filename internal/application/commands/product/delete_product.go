package product

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/vitrinehq/vitrine-backend/internal/application/errs"
	"github.com/vitrinehq/vitrine-backend/internal/infra/auth"
	"github.com/vitrinehq/vitrine-backend/internal/infra/db/repo"
	dbs "github.com/vitrinehq/vitrine-backend/pkg/db"
)

type DeleteProduct struct {
	uowFactory *dbs.UOWFactory
}

func NewDeleteProduct(factory *dbs.UOWFactory) *DeleteProduct {
	return &DeleteProduct{uowFactory: factory}
}

// Execute removes the catalog row only. Item snapshots on past orders keep
// the product's name and price as they were sold.
func (c *DeleteProduct) Execute(ctx context.Context, id int, identity *auth.Identity) error {
	uow := c.uowFactory.GetUoW()
	tx, err := uow.Begin()
	if err != nil {
		return err
	}
	defer uow.Finalize(&err)

	productRepo := repo.NewProductRepo(tx)
	product, err := productRepo.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return errs.NotFoundError{Resource: "product"}
		}
		return err
	}
	if err = checkSiteOwner(ctx, tx, product.SiteID, identity); err != nil {
		return err
	}

	err = productRepo.DeleteProduct(ctx, id)
	return err
}
