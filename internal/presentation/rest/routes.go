package rest

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vitrinehq/vitrine-backend/internal/infra/auth"
)

// RegisterRoutes mounts the API under /api. Storefront routes stay open,
// everything touching a merchant's own data goes behind the bearer check.
func RegisterRoutes(app *fiber.App, s *Server, provider *auth.IdentityProvider) {
	api := app.Group("/api")

	// public storefront surface
	api.Get("/templates", s.ListTemplates)
	api.Get("/templates/:id", s.GetTemplate)
	api.Get("/sites/by-slug/:slug", s.GetSiteBySlug)
	api.Get("/public/sites/:slug", s.GetPublicSite)
	api.Get("/public/sites/:slug/pix-code", s.GetPixCode)
	api.Post("/public/sites/:slug/view", s.TrackViewBySlug)
	api.Get("/sites/:siteId/products", s.ListProducts)
	api.Post("/sites/:siteId/orders", s.CreateOrder)
	api.Post("/sites/:siteId/analytics", s.RecordAnalytics)
	api.Post("/sites/:id/track-view", s.TrackView)

	// everything registered below passes the bearer check first
	api.Use(Authenticate(provider))
	api.Get("/auth/user", s.GetAuthUser)
	api.Get("/dashboard/stats", s.GetDashboardStats)
	api.Post("/templates", s.CreateTemplate)
	api.Get("/sites", s.ListSites)
	api.Post("/sites", s.CreateSite)
	api.Get("/sites/:id", s.GetSite)
	api.Put("/sites/:id", s.UpdateSite)
	api.Delete("/sites/:id", s.DeleteSite)
	api.Post("/sites/:id/deploy", s.DeploySite)
	api.Post("/sites/:siteId/products", s.CreateProduct)
	api.Put("/products/:id", s.UpdateProduct)
	api.Delete("/products/:id", s.DeleteProduct)
	api.Get("/sites/:siteId/orders", s.ListOrders)
	api.Put("/orders/:id/status", s.UpdateOrderStatus)
	api.Get("/sites/:siteId/analytics/:period?", s.GetAnalytics)
}
