package site

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vitrinehq/vitrine-backend/internal/application/dto"
	"github.com/vitrinehq/vitrine-backend/internal/infra/auth"
	"github.com/vitrinehq/vitrine-backend/internal/infra/db"
	"github.com/vitrinehq/vitrine-backend/internal/infra/db/repo"
	dbs "github.com/vitrinehq/vitrine-backend/pkg/db"
)

type UpdateSite struct {
	uowFactory *dbs.UOWFactory
}

func NewUpdateSite(factory *dbs.UOWFactory) *UpdateSite {
	return &UpdateSite{uowFactory: factory}
}

func (c *UpdateSite) Execute(ctx context.Context, id uuid.UUID, req *dto.UpdateSiteRequest, identity *auth.Identity) (*db.Site, error) {
	uow := c.uowFactory.GetUoW()
	tx, err := uow.Begin()
	if err != nil {
		return nil, err
	}
	defer uow.Finalize(&err)

	siteRepo := repo.NewSiteRepo(tx)
	site, err := getOwnedSite(ctx, siteRepo, id, identity)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		site.Name = *req.Name
	}
	if req.WhatsappNumber != nil {
		site.WhatsappNumber = *req.WhatsappNumber
	}
	if req.Address != nil {
		site.Address = *req.Address
	}
	if req.Config != nil {
		site.Config = db.MapToRawMessage(*req.Config)
	}
	if req.PixKey != nil {
		site.PixKey = *req.PixKey
	}
	if req.PixKeyType != nil {
		site.PixKeyType = *req.PixKeyType
	}
	if req.IsActive != nil {
		site.IsActive = *req.IsActive
	}
	site.UpdatedAt = time.Now()

	if err = siteRepo.UpdateSite(ctx, site); err != nil {
		return nil, err
	}
	return site, nil
}
