package analytics

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/vitrinehq/vitrine-backend/internal/application/errs"
	"github.com/vitrinehq/vitrine-backend/internal/infra/db/repo"
	dbs "github.com/vitrinehq/vitrine-backend/pkg/db"
)

type TrackView struct {
	uowFactory *dbs.UOWFactory
	loc        *time.Location
}

func NewTrackView(factory *dbs.UOWFactory, loc *time.Location) *TrackView {
	return &TrackView{uowFactory: factory, loc: loc}
}

// Execute bumps today's view counter for the site. Day buckets are keyed on
// midnight in the configured timezone, not the viewer's.
func (c *TrackView) Execute(ctx context.Context, siteID uuid.UUID) error {
	uow := c.uowFactory.GetUoW()
	tx, err := uow.Begin()
	if err != nil {
		return err
	}
	defer uow.Finalize(&err)

	if _, err = repo.NewSiteRepo(tx).GetSite(ctx, siteID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return errs.NotFoundError{Resource: "site"}
		}
		return err
	}

	now := time.Now().In(c.loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, c.loc)
	err = repo.NewAnalyticsRepo(tx).IncrementViews(ctx, siteID, today)
	return err
}

// ExecuteBySlug is the public variant addressed by slug.
func (c *TrackView) ExecuteBySlug(ctx context.Context, slug string) error {
	uow := c.uowFactory.GetUoW()
	tx, err := uow.Begin()
	if err != nil {
		return err
	}
	defer uow.Finalize(&err)

	site, err := repo.NewSiteRepo(tx).GetSiteBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return errs.NotFoundError{Resource: "site"}
		}
		return err
	}

	now := time.Now().In(c.loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, c.loc)
	err = repo.NewAnalyticsRepo(tx).IncrementViews(ctx, site.ID, today)
	return err
}
