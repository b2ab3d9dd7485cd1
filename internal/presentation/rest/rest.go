package rest

import (
	"errors"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vitrinehq/vitrine-backend/internal/application"
	"github.com/vitrinehq/vitrine-backend/internal/application/dto"
	"github.com/vitrinehq/vitrine-backend/internal/application/errs"
	"github.com/vitrinehq/vitrine-backend/internal/infra/auth"
)

type Server struct {
	commands *application.Collection
	validate *validator.Validate
}

func NewServer(commands *application.Collection) *Server {
	return &Server{
		commands: commands,
		validate: validator.New(),
	}
}

func identity(c *fiber.Ctx) *auth.Identity {
	return c.Locals(identityKey).(*auth.Identity)
}

func (s *Server) parseBody(c *fiber.Ctx, req interface{}) error {
	if err := c.BodyParser(req); err != nil {
		return err
	}
	return s.validate.Struct(req)
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
}

// respondError maps application errors onto statuses. Ownership failures
// arrive as NotFoundError already, so foreign and missing resources are
// answered identically.
func respondError(c *fiber.Ctx, operation string, err error) error {
	var notFound errs.NotFoundError
	var invalid errs.ValidationError
	var conflict errs.ConflictError
	switch {
	case errors.As(err, &notFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: err.Error()})
	case errors.As(err, &invalid):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	case errors.As(err, &conflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	slog.Error("unexpected failure", "operation", operation, "err", err)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
}

func parseUUIDParam(c *fiber.Ctx, name, resource string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, errs.NotFoundError{Resource: resource}
	}
	return id, nil
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

// --- auth & dashboard

func (s *Server) GetAuthUser(c *fiber.Ctx) error {
	user, err := s.commands.UpsertUser.Execute(c.UserContext(), identity(c))
	if err != nil {
		return respondError(c, "auth user", err)
	}
	return c.JSON(user)
}

func (s *Server) GetDashboardStats(c *fiber.Ctx) error {
	stats, err := s.commands.GetDashboardStats.Query(c.UserContext(), identity(c))
	if err != nil {
		return respondError(c, "dashboard stats", err)
	}
	return c.JSON(stats)
}

// --- templates

func (s *Server) ListTemplates(c *fiber.Ctx) error {
	templates, err := s.commands.ListTemplates.Query(c.UserContext())
	if err != nil {
		return respondError(c, "list templates", err)
	}
	return c.JSON(templates)
}

func (s *Server) GetTemplate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "template not found"})
	}
	template, err := s.commands.GetTemplate.Query(c.UserContext(), id)
	if err != nil {
		return respondError(c, "get template", err)
	}
	return c.JSON(template)
}

func (s *Server) CreateTemplate(c *fiber.Ctx) error {
	var req dto.CreateTemplateRequest
	if err := s.parseBody(c, &req); err != nil {
		return badRequest(c, err)
	}
	template, err := s.commands.CreateTemplate.Execute(c.UserContext(), &req)
	if err != nil {
		return respondError(c, "create template", err)
	}
	return c.Status(fiber.StatusCreated).JSON(template)
}

// --- sites

func (s *Server) ListSites(c *fiber.Ctx) error {
	sites, err := s.commands.ListSites.Query(c.UserContext(), identity(c))
	if err != nil {
		return respondError(c, "list sites", err)
	}
	return c.JSON(sites)
}

func (s *Server) GetSite(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id", "site")
	if err != nil {
		return respondError(c, "get site", err)
	}
	site, err := s.commands.GetSite.Query(c.UserContext(), id, identity(c))
	if err != nil {
		return respondError(c, "get site", err)
	}
	return c.JSON(site)
}

func (s *Server) GetSiteBySlug(c *fiber.Ctx) error {
	site, err := s.commands.GetSite.QueryBySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return respondError(c, "get site by slug", err)
	}
	return c.JSON(site)
}

func (s *Server) CreateSite(c *fiber.Ctx) error {
	var req dto.CreateSiteRequest
	if err := s.parseBody(c, &req); err != nil {
		return badRequest(c, err)
	}
	site, err := s.commands.CreateSite.Execute(c.UserContext(), &req, identity(c))
	if err != nil {
		return respondError(c, "create site", err)
	}
	return c.Status(fiber.StatusCreated).JSON(site)
}

func (s *Server) UpdateSite(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id", "site")
	if err != nil {
		return respondError(c, "update site", err)
	}
	var req dto.UpdateSiteRequest
	if err := s.parseBody(c, &req); err != nil {
		return badRequest(c, err)
	}
	site, err := s.commands.UpdateSite.Execute(c.UserContext(), id, &req, identity(c))
	if err != nil {
		return respondError(c, "update site", err)
	}
	return c.JSON(site)
}

func (s *Server) DeleteSite(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id", "site")
	if err != nil {
		return respondError(c, "delete site", err)
	}
	if err := s.commands.DeleteSite.Execute(c.UserContext(), id, identity(c)); err != nil {
		return respondError(c, "delete site", err)
	}
	return c.JSON(fiber.Map{"message": "Site deleted successfully"})
}

func (s *Server) DeploySite(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id", "site")
	if err != nil {
		return respondError(c, "deploy site", err)
	}
	resp, err := s.commands.DeploySite.Execute(c.UserContext(), id, identity(c))
	if err != nil {
		return respondError(c, "deploy site", err)
	}
	return c.JSON(resp)
}

// --- products

func (s *Server) ListProducts(c *fiber.Ctx) error {
	siteID, err := parseUUIDParam(c, "siteId", "site")
	if err != nil {
		return respondError(c, "list products", err)
	}
	products, err := s.commands.ListProducts.Query(c.UserContext(), siteID)
	if err != nil {
		return respondError(c, "list products", err)
	}
	return c.JSON(products)
}

func (s *Server) CreateProduct(c *fiber.Ctx) error {
	siteID, err := parseUUIDParam(c, "siteId", "site")
	if err != nil {
		return respondError(c, "create product", err)
	}
	var req dto.CreateProductRequest
	if err := s.parseBody(c, &req); err != nil {
		return badRequest(c, err)
	}
	product, err := s.commands.CreateProduct.Execute(c.UserContext(), siteID, &req, identity(c))
	if err != nil {
		return respondError(c, "create product", err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

func (s *Server) UpdateProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "product not found"})
	}
	var req dto.UpdateProductRequest
	if err := s.parseBody(c, &req); err != nil {
		return badRequest(c, err)
	}
	product, err := s.commands.UpdateProduct.Execute(c.UserContext(), id, &req, identity(c))
	if err != nil {
		return respondError(c, "update product", err)
	}
	return c.JSON(product)
}

func (s *Server) DeleteProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "product not found"})
	}
	if err := s.commands.DeleteProduct.Execute(c.UserContext(), id, identity(c)); err != nil {
		return respondError(c, "delete product", err)
	}
	return c.JSON(fiber.Map{"message": "Product deleted successfully"})
}

// --- orders

func (s *Server) ListOrders(c *fiber.Ctx) error {
	siteID, err := parseUUIDParam(c, "siteId", "site")
	if err != nil {
		return respondError(c, "list orders", err)
	}
	orders, err := s.commands.ListOrders.Query(c.UserContext(), siteID, identity(c))
	if err != nil {
		return respondError(c, "list orders", err)
	}
	return c.JSON(orders)
}

func (s *Server) CreateOrder(c *fiber.Ctx) error {
	siteID, err := parseUUIDParam(c, "siteId", "site")
	if err != nil {
		return respondError(c, "create order", err)
	}
	var req dto.CreateOrderRequest
	if err := s.parseBody(c, &req); err != nil {
		return badRequest(c, err)
	}
	resp, err := s.commands.CreateOrder.Execute(c.UserContext(), siteID, &req)
	if err != nil {
		return respondError(c, "create order", err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (s *Server) UpdateOrderStatus(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id", "order")
	if err != nil {
		return respondError(c, "update order status", err)
	}
	var req dto.UpdateOrderStatusRequest
	if err := s.parseBody(c, &req); err != nil {
		return badRequest(c, err)
	}
	order, err := s.commands.UpdateOrderStatus.Execute(c.UserContext(), id, req.Status, identity(c))
	if err != nil {
		return respondError(c, "update order status", err)
	}
	return c.JSON(order)
}

// --- analytics

// GetAnalytics serves both forms of the analytics route: an explicit
// startDate/endDate window, or a named period segment (7d/30d/90d) that
// defaults to 30d when absent.
func (s *Server) GetAnalytics(c *fiber.Ctx) error {
	siteID, err := parseUUIDParam(c, "siteId", "site")
	if err != nil {
		return respondError(c, "get analytics", err)
	}
	if start := c.Query("startDate"); start != "" {
		startDate, err := parseDate(start)
		if err != nil {
			return badRequest(c, errors.New("invalid startDate"))
		}
		endDate, err := parseDate(c.Query("endDate"))
		if err != nil {
			return badRequest(c, errors.New("invalid endDate"))
		}
		rows, err := s.commands.GetAnalytics.Query(c.UserContext(), siteID, startDate, endDate, identity(c))
		if err != nil {
			return respondError(c, "get analytics", err)
		}
		return c.JSON(rows)
	}
	rows, err := s.commands.GetAnalytics.QueryPeriod(c.UserContext(), siteID, c.Params("period"), identity(c))
	if err != nil {
		return respondError(c, "get analytics", err)
	}
	return c.JSON(rows)
}

func (s *Server) RecordAnalytics(c *fiber.Ctx) error {
	siteID, err := parseUUIDParam(c, "siteId", "site")
	if err != nil {
		return respondError(c, "record analytics", err)
	}
	var req dto.RecordAnalyticsRequest
	if err := s.parseBody(c, &req); err != nil {
		return badRequest(c, err)
	}
	row, err := s.commands.RecordAnalytics.Execute(c.UserContext(), siteID, &req)
	if err != nil {
		return respondError(c, "record analytics", err)
	}
	return c.JSON(row)
}

func (s *Server) TrackView(c *fiber.Ctx) error {
	siteID, err := parseUUIDParam(c, "id", "site")
	if err != nil {
		return respondError(c, "track view", err)
	}
	if err := s.commands.TrackView.Execute(c.UserContext(), siteID); err != nil {
		return respondError(c, "track view", err)
	}
	return c.JSON(dto.TrackViewResponse{Success: true})
}

func (s *Server) TrackViewBySlug(c *fiber.Ctx) error {
	if err := s.commands.TrackView.ExecuteBySlug(c.UserContext(), c.Params("slug")); err != nil {
		return respondError(c, "track view", err)
	}
	return c.JSON(dto.TrackViewResponse{Success: true})
}

// --- public storefront

func (s *Server) GetPublicSite(c *fiber.Ctx) error {
	resp, err := s.commands.GetPublicSite.Query(c.UserContext(), c.Params("slug"))
	if err != nil {
		return respondError(c, "public site", err)
	}
	return c.JSON(resp)
}

func (s *Server) GetPixCode(c *fiber.Ctx) error {
	amount, err := decimal.NewFromString(c.Query("amount", "0"))
	if err != nil {
		return badRequest(c, errors.New("invalid amount"))
	}
	resp, err := s.commands.GetPixCode.Query(c.UserContext(), c.Params("slug"), amount)
	if err != nil {
		return respondError(c, "pix code", err)
	}
	return c.JSON(resp)
}
