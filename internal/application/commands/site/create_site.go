package site

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/vitrinehq/vitrine-backend/internal/application/dto"
	"github.com/vitrinehq/vitrine-backend/internal/application/errs"
	"github.com/vitrinehq/vitrine-backend/internal/infra/auth"
	"github.com/vitrinehq/vitrine-backend/internal/infra/db"
	"github.com/vitrinehq/vitrine-backend/internal/infra/db/repo"
	dbs "github.com/vitrinehq/vitrine-backend/pkg/db"
)

type CreateSite struct {
	uowFactory *dbs.UOWFactory
}

func NewCreateSite(factory *dbs.UOWFactory) *CreateSite {
	return &CreateSite{uowFactory: factory}
}

func (c *CreateSite) Execute(ctx context.Context, req *dto.CreateSiteRequest, identity *auth.Identity) (*db.Site, error) {
	uow := c.uowFactory.GetUoW()
	tx, err := uow.Begin()
	if err != nil {
		return nil, err
	}
	defer uow.Finalize(&err)

	siteRepo := repo.NewSiteRepo(tx)
	newSite := db.Site{
		UserID:         identity.UserID,
		TemplateID:     req.TemplateID,
		Name:           req.Name,
		Slug:           req.Slug,
		WhatsappNumber: req.WhatsappNumber,
		Address:        req.Address,
		Config:         db.MapToRawMessage(req.Config),
		PixKey:         req.PixKey,
		PixKeyType:     req.PixKeyType,
		IsActive:       true,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
	if req.Config == nil {
		newSite.Config = []byte("{}")
	}

	id, err := siteRepo.InsertSite(ctx, newSite)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			err = errs.ConflictError{Err: fmt.Errorf("slug %q is taken", req.Slug)}
			return nil, err
		}
		return nil, fmt.Errorf("insert failed: %v", err)
	}

	created, err := siteRepo.GetSite(ctx, id)
	return created, err
}
