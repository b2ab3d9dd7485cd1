package site

import (
	"context"

	"github.com/google/uuid"
	"github.com/vitrinehq/vitrine-backend/internal/application/dto"
	"github.com/vitrinehq/vitrine-backend/internal/infra/auth"
	"github.com/vitrinehq/vitrine-backend/internal/infra/db/repo"
	"github.com/vitrinehq/vitrine-backend/internal/infra/deploy"
	dbs "github.com/vitrinehq/vitrine-backend/pkg/db"
)

type DeploySite struct {
	uowFactory *dbs.UOWFactory
	deployer   *deploy.Deployer
}

func NewDeploySite(factory *dbs.UOWFactory, deployer *deploy.Deployer) *DeploySite {
	return &DeploySite{uowFactory: factory, deployer: deployer}
}

func (c *DeploySite) Execute(ctx context.Context, id uuid.UUID, identity *auth.Identity) (*dto.DeploySiteResponse, error) {
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

	url, deployID := c.deployer.Deploy(site.Slug)
	if err = siteRepo.UpdateSiteDeploy(ctx, site.ID, url, deployID); err != nil {
		return nil, err
	}

	return &dto.DeploySiteResponse{
		Success: true,
		URL:     url,
		Message: "Site deployed successfully!",
	}, nil
}
