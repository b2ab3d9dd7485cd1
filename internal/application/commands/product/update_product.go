package product

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/vitrinehq/vitrine-backend/internal/application/dto"
	"github.com/vitrinehq/vitrine-backend/internal/application/errs"
	"github.com/vitrinehq/vitrine-backend/internal/infra/auth"
	"github.com/vitrinehq/vitrine-backend/internal/infra/db"
	"github.com/vitrinehq/vitrine-backend/internal/infra/db/repo"
	dbs "github.com/vitrinehq/vitrine-backend/pkg/db"
)

type UpdateProduct struct {
	uowFactory *dbs.UOWFactory
}

func NewUpdateProduct(factory *dbs.UOWFactory) *UpdateProduct {
	return &UpdateProduct{uowFactory: factory}
}

func (c *UpdateProduct) Execute(ctx context.Context, id int, req *dto.UpdateProductRequest, identity *auth.Identity) (*db.Product, error) {
	if req.Price != nil && req.Price.IsNegative() {
		return nil, errs.ValidationError{Err: errors.New("price can't be negative")}
	}

	uow := c.uowFactory.GetUoW()
	tx, err := uow.Begin()
	if err != nil {
		return nil, err
	}
	defer uow.Finalize(&err)

	productRepo := repo.NewProductRepo(tx)
	product, err := productRepo.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NotFoundError{Resource: "product"}
		}
		return nil, err
	}
	if err = checkSiteOwner(ctx, tx, product.SiteID, identity); err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.ImageURL != nil {
		product.ImageURL = *req.ImageURL
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.IsAvailable != nil {
		product.IsAvailable = *req.IsAvailable
	}

	if err = productRepo.UpdateProduct(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}
