package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/vitrinehq/vitrine-backend/internal/infra/db"
	"github.com/vitrinehq/vitrine-backend/internal/infra/db/repo"
	dbs "github.com/vitrinehq/vitrine-backend/pkg/db"
)

type ListProducts struct {
	uowFactory *dbs.UOWFactory
}

func NewListProducts(factory *dbs.UOWFactory) *ListProducts {
	return &ListProducts{uowFactory: factory}
}

// Query is public: the storefront renders the catalog without auth. An
// unknown site yields an empty list, same as a site with no products.
func (c *ListProducts) Query(ctx context.Context, siteID uuid.UUID) ([]db.Product, error) {
	uow := c.uowFactory.GetUoW()
	tx, err := uow.Begin()
	if err != nil {
		return nil, err
	}
	defer uow.Finalize(&err)

	products, err := repo.NewProductRepo(tx).GetProductsBySite(ctx, siteID)
	return products, err
}
