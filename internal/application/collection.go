package application

import (
	"github.com/vitrinehq/vitrine-backend/internal/application/commands/analytics"
	"github.com/vitrinehq/vitrine-backend/internal/application/commands/order"
	"github.com/vitrinehq/vitrine-backend/internal/application/commands/product"
	"github.com/vitrinehq/vitrine-backend/internal/application/commands/site"
	"github.com/vitrinehq/vitrine-backend/internal/application/commands/template"
	"github.com/vitrinehq/vitrine-backend/internal/application/commands/user"
	"github.com/vitrinehq/vitrine-backend/internal/application/query"
)

type Collection struct {
	CreateSite        *site.CreateSite
	UpdateSite        *site.UpdateSite
	DeleteSite        *site.DeleteSite
	DeploySite        *site.DeploySite
	CreateProduct     *product.CreateProduct
	UpdateProduct     *product.UpdateProduct
	DeleteProduct     *product.DeleteProduct
	CreateOrder       *order.CreateOrder
	UpdateOrderStatus *order.UpdateOrderStatus
	RecordAnalytics   *analytics.RecordAnalytics
	TrackView         *analytics.TrackView
	CreateTemplate    *template.CreateTemplate
	UpsertUser        *user.UpsertUser

	GetSite           *query.GetSite
	ListSites         *query.ListSites
	GetPublicSite     *query.GetPublicSite
	GetTemplate       *query.GetTemplate
	ListTemplates     *query.ListTemplates
	ListProducts      *query.ListProducts
	ListOrders        *query.ListOrders
	GetAnalytics      *query.GetAnalytics
	GetDashboardStats *query.GetDashboardStats
	GetPixCode        *query.GetPixCode
}
