package query

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/vitrinehq/vitrine-backend/internal/application/consts"
	"github.com/vitrinehq/vitrine-backend/internal/application/errs"
	"github.com/vitrinehq/vitrine-backend/internal/infra/auth"
	"github.com/vitrinehq/vitrine-backend/internal/infra/db"
	"github.com/vitrinehq/vitrine-backend/internal/infra/db/repo"
	dbs "github.com/vitrinehq/vitrine-backend/pkg/db"
)

type GetAnalytics struct {
	uowFactory *dbs.UOWFactory
}

func NewGetAnalytics(factory *dbs.UOWFactory) *GetAnalytics {
	return &GetAnalytics{uowFactory: factory}
}

// Query returns day buckets inside [startDate, endDate], ascending.
func (c *GetAnalytics) Query(ctx context.Context, siteID uuid.UUID, startDate, endDate time.Time, identity *auth.Identity) ([]db.Analytics, error) {
	uow := c.uowFactory.GetUoW()
	tx, err := uow.Begin()
	if err != nil {
		return nil, err
	}
	defer uow.Finalize(&err)

	if err = checkOwner(ctx, tx, siteID, identity); err != nil {
		return nil, err
	}

	rows, err := repo.NewAnalyticsRepo(tx).GetAnalytics(ctx, siteID, startDate, endDate)
	return rows, err
}

// QueryPeriod resolves a 7d/30d/90d window ending now.
func (c *GetAnalytics) QueryPeriod(ctx context.Context, siteID uuid.UUID, period string, identity *auth.Identity) ([]db.Analytics, error) {
	endDate := time.Now()
	startDate := endDate.AddDate(0, 0, -consts.PeriodDays(period))
	return c.Query(ctx, siteID, startDate, endDate, identity)
}

func checkOwner(ctx context.Context, tx pgx.Tx, siteID uuid.UUID, identity *auth.Identity) error {
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
