package analytics

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/vitrinehq/vitrine-backend/internal/application/dto"
	"github.com/vitrinehq/vitrine-backend/internal/application/errs"
	"github.com/vitrinehq/vitrine-backend/internal/infra/db"
	"github.com/vitrinehq/vitrine-backend/internal/infra/db/repo"
	dbs "github.com/vitrinehq/vitrine-backend/pkg/db"
)

type RecordAnalytics struct {
	uowFactory *dbs.UOWFactory
}

func NewRecordAnalytics(factory *dbs.UOWFactory) *RecordAnalytics {
	return &RecordAnalytics{uowFactory: factory}
}

// Execute upserts a day bucket with the legacy merge semantics (see
// repo.UpsertAnalytics). Kept for compatibility with existing storefront
// scripts; view tracking uses TrackView instead.
func (c *RecordAnalytics) Execute(ctx context.Context, siteID uuid.UUID, req *dto.RecordAnalyticsRequest) (*db.Analytics, error) {
	uow := c.uowFactory.GetUoW()
	tx, err := uow.Begin()
	if err != nil {
		return nil, err
	}
	defer uow.Finalize(&err)

	if _, err = repo.NewSiteRepo(tx).GetSite(ctx, siteID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NotFoundError{Resource: "site"}
		}
		return nil, err
	}

	row, err := repo.NewAnalyticsRepo(tx).UpsertAnalytics(ctx, db.Analytics{
		SiteID:         siteID,
		Date:           req.Date,
		Views:          req.Views,
		Orders:         req.Orders,
		Revenue:        req.Revenue,
		ConversionRate: req.ConversionRate,
	})
	return row, err
}
