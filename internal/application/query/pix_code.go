package query

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/vitrinehq/vitrine-backend/internal/application/dto"
	"github.com/vitrinehq/vitrine-backend/internal/application/errs"
	"github.com/vitrinehq/vitrine-backend/internal/domain/pix"
	"github.com/vitrinehq/vitrine-backend/internal/infra/db/repo"
	dbs "github.com/vitrinehq/vitrine-backend/pkg/db"
)

type GetPixCode struct {
	uowFactory *dbs.UOWFactory
}

func NewGetPixCode(factory *dbs.UOWFactory) *GetPixCode {
	return &GetPixCode{uowFactory: factory}
}

// Query encodes a copy-paste PIX charge for a storefront checkout.
func (c *GetPixCode) Query(ctx context.Context, slug string, amount decimal.Decimal) (*dto.PixCodeResponse, error) {
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
	if site.PixKey == "" {
		return nil, errs.ValidationError{Err: errors.New("site has no pix key configured")}
	}

	code, err := pix.Payload{
		Key:          site.PixKey,
		MerchantName: site.Name,
		Amount:       amount,
	}.Encode()
	if err != nil {
		return nil, errs.ValidationError{Err: err}
	}
	return &dto.PixCodeResponse{Code: code}, nil
}
