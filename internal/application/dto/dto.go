package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vitrinehq/vitrine-backend/internal/infra/db"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type CreateSiteRequest struct {
	TemplateID     int                    `json:"templateId" validate:"required"`
	Name           string                 `json:"name" validate:"required"`
	Slug           string                 `json:"slug" validate:"required,min=3,max=60"`
	WhatsappNumber string                 `json:"whatsappNumber"`
	Address        string                 `json:"address"`
	Config         map[string]interface{} `json:"config"`
	PixKey         string                 `json:"pixKey"`
	PixKeyType     string                 `json:"pixKeyType" validate:"omitempty,oneof=cpf cnpj email phone random"`
}

// UpdateSiteRequest applies only the fields present in the payload.
type UpdateSiteRequest struct {
	Name           *string                 `json:"name"`
	WhatsappNumber *string                 `json:"whatsappNumber"`
	Address        *string                 `json:"address"`
	Config         *map[string]interface{} `json:"config"`
	PixKey         *string                 `json:"pixKey"`
	PixKeyType     *string                 `json:"pixKeyType" validate:"omitempty,oneof=cpf cnpj email phone random"`
	IsActive       *bool                   `json:"isActive"`
}

type DeploySiteResponse struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
	Message string `json:"message"`
}

type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	ImageURL    string          `json:"imageUrl"`
	Category    string          `json:"category"`
	IsAvailable *bool           `json:"isAvailable"`
}

type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	ImageURL    *string          `json:"imageUrl"`
	Category    *string          `json:"category"`
	IsAvailable *bool            `json:"isAvailable"`
}

type OrderItemRequest struct {
	Name         string          `json:"name" validate:"required"`
	Price        decimal.Decimal `json:"price" validate:"required"`
	Quantity     int             `json:"quantity" validate:"required,gt=0"`
	Observations string          `json:"observations"`
}

type CreateOrderRequest struct {
	CustomerName    string             `json:"customerName" validate:"required"`
	CustomerPhone   string             `json:"customerPhone" validate:"required"`
	CustomerAddress string             `json:"customerAddress"`
	DeliveryType    string             `json:"deliveryType" validate:"required,oneof=delivery pickup"`
	Items           []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	TotalAmount     decimal.Decimal    `json:"totalAmount" validate:"required"`
	Notes           string             `json:"notes"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new preparing ready delivered cancelled"`
}

type CreateTemplateRequest struct {
	Name        string                 `json:"name" validate:"required"`
	Category    string                 `json:"category" validate:"required"`
	Description string                 `json:"description"`
	ImageURL    string                 `json:"imageUrl"`
	HTMLContent string                 `json:"htmlContent" validate:"required"`
	CSSContent  string                 `json:"cssContent" validate:"required"`
	JSContent   string                 `json:"jsContent"`
	Config      map[string]interface{} `json:"config" validate:"required"`
}

type RecordAnalyticsRequest struct {
	Date           time.Time       `json:"date" validate:"required"`
	Views          int             `json:"views"`
	Orders         int             `json:"orders"`
	Revenue        decimal.Decimal `json:"revenue"`
	ConversionRate decimal.Decimal `json:"conversionRate"`
}

type DashboardStats struct {
	TotalSites   int             `json:"totalSites"`
	TotalOrders  int             `json:"totalOrders"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	TotalViews   int             `json:"totalViews"`
}

type CreateOrderResponse struct {
	Order db.Order `json:"order"`
	// WhatsappURL is the wa.me handoff for the merchant, empty when the site
	// has no number configured.
	WhatsappURL string `json:"whatsappUrl,omitempty"`
}

type PublicSiteResponse struct {
	Site     db.Site      `json:"site"`
	Products []db.Product `json:"products"`
}

type TrackViewResponse struct {
	Success bool `json:"success"`
}

type PixCodeResponse struct {
	Code string `json:"code"`
}
