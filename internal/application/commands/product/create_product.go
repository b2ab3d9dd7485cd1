package product

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/vitrinehq/vitrine-backend/internal/application/dto"
	"github.com/vitrinehq/vitrine-backend/internal/application/errs"
	"github.com/vitrinehq/vitrine-backend/internal/infra/auth"
	"github.com/vitrinehq/vitrine-backend/internal/infra/db"
	"github.com/vitrinehq/vitrine-backend/internal/infra/db/repo"
	dbs "github.com/vitrinehq/vitrine-backend/pkg/db"
)

type CreateProduct struct {
	uowFactory *dbs.UOWFactory
}

func NewCreateProduct(factory *dbs.UOWFactory) *CreateProduct {
	return &CreateProduct{uowFactory: factory}
}

func (c *CreateProduct) Execute(ctx context.Context, siteID uuid.UUID, req *dto.CreateProductRequest, identity *auth.Identity) (*db.Product, error) {
	if req.Price.IsNegative() {
		return nil, errs.ValidationError{Err: errors.New("price can't be negative")}
	}

	uow := c.uowFactory.GetUoW()
	tx, err := uow.Begin()
	if err != nil {
		return nil, err
	}
	defer uow.Finalize(&err)

	if err = checkSiteOwner(ctx, tx, siteID, identity); err != nil {
		return nil, err
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}
	productRepo := repo.NewProductRepo(tx)
	id, err := productRepo.InsertProduct(ctx, db.Product{
		SiteID:      siteID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
		IsAvailable: isAvailable,
		CreatedAt:   time.Now(),
	})
	if err != nil {
		return nil, err
	}

	created, err := productRepo.GetProduct(ctx, id)
	return created, err
}

func checkSiteOwner(ctx context.Context, tx pgx.Tx, siteID uuid.UUID, identity *auth.Identity) error {
	site, err := repo.NewSiteRepo(tx).GetSite(ctx, siteID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return errs.NotFoundError{Resource: "site"}
		}
		return err
	}
	if site.UserID != identity.UserID {
		return errs.NotFoundError{Resource: "site"}
	}
	return nil
}
