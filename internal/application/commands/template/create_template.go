package template

import (
	"context"
	"time"

	"github.com/vitrinehq/vitrine-backend/internal/application/dto"
	"github.com/vitrinehq/vitrine-backend/internal/infra/db"
	"github.com/vitrinehq/vitrine-backend/internal/infra/db/repo"
	dbs "github.com/vitrinehq/vitrine-backend/pkg/db"
)

type CreateTemplate struct {
	uowFactory *dbs.UOWFactory
}

func NewCreateTemplate(factory *dbs.UOWFactory) *CreateTemplate {
	return &CreateTemplate{uowFactory: factory}
}

func (c *CreateTemplate) Execute(ctx context.Context, req *dto.CreateTemplateRequest) (*db.Template, error) {
	uow := c.uowFactory.GetUoW()
	tx, err := uow.Begin()
	if err != nil {
		return nil, err
	}
	defer uow.Finalize(&err)

	templateRepo := repo.NewTemplateRepo(tx)
	id, err := templateRepo.InsertTemplate(ctx, db.Template{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		HTMLContent: req.HTMLContent,
		CSSContent:  req.CSSContent,
		JSContent:   req.JSContent,
		Config:      db.MapToRawMessage(req.Config),
		CreatedAt:   time.Now(),
	})
	if err != nil {
		return nil, err
	}

	created, err := templateRepo.GetTemplate(ctx, id)
	return created, err
}
