package query

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/vitrinehq/vitrine-backend/internal/application/errs"
	"github.com/vitrinehq/vitrine-backend/internal/infra/db"
	"github.com/vitrinehq/vitrine-backend/internal/infra/db/repo"
	dbs "github.com/vitrinehq/vitrine-backend/pkg/db"
)

type GetTemplate struct {
	uowFactory *dbs.UOWFactory
}

func NewGetTemplate(factory *dbs.UOWFactory) *GetTemplate {
	return &GetTemplate{uowFactory: factory}
}

func (c *GetTemplate) Query(ctx context.Context, id int) (*db.Template, error) {
	uow := c.uowFactory.GetUoW()
	tx, err := uow.Begin()
	if err != nil {
		return nil, err
	}
	defer uow.Finalize(&err)

	template, err := repo.NewTemplateRepo(tx).GetTemplate(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NotFoundError{Resource: "template"}
		}
		return nil, err
	}
	return template, nil
}

type ListTemplates struct {
	uowFactory *dbs.UOWFactory
}

func NewListTemplates(factory *dbs.UOWFactory) *ListTemplates {
	return &ListTemplates{uowFactory: factory}
}

func (c *ListTemplates) Query(ctx context.Context) ([]db.Template, error) {
	uow := c.uowFactory.GetUoW()
	tx, err := uow.Begin()
	if err != nil {
		return nil, err
	}
	defer uow.Finalize(&err)

	templates, err := repo.NewTemplateRepo(tx).GetTemplates(ctx)
	return templates, err
}
