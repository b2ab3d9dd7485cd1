package query

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/vitrinehq/vitrine-backend/internal/application/dto"
	"github.com/vitrinehq/vitrine-backend/internal/infra/auth"
	"github.com/vitrinehq/vitrine-backend/internal/infra/db/repo"
	dbs "github.com/vitrinehq/vitrine-backend/pkg/db"
)

type GetDashboardStats struct {
	uowFactory *dbs.UOWFactory
}

func NewGetDashboardStats(factory *dbs.UOWFactory) *GetDashboardStats {
	return &GetDashboardStats{uowFactory: factory}
}

// Query totals orders, revenue and views across the caller's sites. One
// round of scalar aggregates per site; fine at this scale, revisit if tenants
// ever hold more than a handful of sites.
func (c *GetDashboardStats) Query(ctx context.Context, identity *auth.Identity) (*dto.DashboardStats, error) {
	uow := c.uowFactory.GetUoW()
	tx, err := uow.Begin()
	if err != nil {
		return nil, err
	}
	defer uow.Finalize(&err)

	sites, err := repo.NewSiteRepo(tx).GetSitesByUser(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}

	stats := &dto.DashboardStats{TotalSites: len(sites), TotalRevenue: decimal.Zero}
	orderRepo := repo.NewOrderRepo(tx)
	analyticsRepo := repo.NewAnalyticsRepo(tx)
	for _, site := range sites {
		count, err := orderRepo.CountOrdersBySite(ctx, site.ID)
		if err != nil {
			return nil, err
		}
		revenue, err := orderRepo.SumRevenueBySite(ctx, site.ID)
		if err != nil {
			return nil, err
		}
		views, err := analyticsRepo.SumViewsBySite(ctx, site.ID)
		if err != nil {
			return nil, err
		}
		stats.TotalOrders += count
		stats.TotalRevenue = stats.TotalRevenue.Add(revenue)
		stats.TotalViews += views
	}
	return stats, nil
}
