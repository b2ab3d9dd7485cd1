package db

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vitrinehq/vitrine-backend/internal/application/consts"
)

type User struct {
	ID              string    `db:"id" json:"id"`
	Email           string    `db:"email" json:"email"`
	FirstName       string    `db:"first_name" json:"firstName"`
	LastName        string    `db:"last_name" json:"lastName"`
	ProfileImageURL string    `db:"profile_image_url" json:"profileImageUrl"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `db:"updated_at" json:"updatedAt"`
}

type Template struct {
	ID          int             `db:"id" json:"id"`
	Name        string          `db:"name" json:"name"`
	Category    string          `db:"category" json:"category"`
	Description string          `db:"description" json:"description"`
	ImageURL    string          `db:"image_url" json:"imageUrl"`
	HTMLContent string          `db:"html_content" json:"htmlContent"`
	CSSContent  string          `db:"css_content" json:"cssContent"`
	JSContent   string          `db:"js_content" json:"jsContent"`
	Config      json.RawMessage `db:"config" json:"config"`
	CreatedAt   time.Time       `db:"created_at" json:"createdAt"`
}

type Site struct {
	ID             uuid.UUID       `db:"id" json:"id"`
	UserID         string          `db:"user_id" json:"userId"`
	TemplateID     int             `db:"template_id" json:"templateId"`
	Name           string          `db:"name" json:"name"`
	Slug           string          `db:"slug" json:"slug"`
	WhatsappNumber string          `db:"whatsapp_number" json:"whatsappNumber"`
	Address        string          `db:"address" json:"address"`
	Config         json.RawMessage `db:"config" json:"config"`
	DeployURL      string          `db:"deploy_url" json:"deployUrl"`
	DeployID       string          `db:"deploy_id" json:"deployId"`
	PixKey         string          `db:"pix_key" json:"pixKey"`
	PixKeyType     string          `db:"pix_key_type" json:"pixKeyType"`
	IsActive       bool            `db:"is_active" json:"isActive"`
	CreatedAt      time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time       `db:"updated_at" json:"updatedAt"`
}

type Product struct {
	ID          int             `db:"id" json:"id"`
	SiteID      uuid.UUID       `db:"site_id" json:"siteId"`
	Name        string          `db:"name" json:"name"`
	Description string          `db:"description" json:"description"`
	Price       decimal.Decimal `db:"price" json:"price"`
	ImageURL    string          `db:"image_url" json:"imageUrl"`
	Category    string          `db:"category" json:"category"`
	IsAvailable bool            `db:"is_available" json:"isAvailable"`
	CreatedAt   time.Time       `db:"created_at" json:"createdAt"`
}

// OrderItem is one line of the immutable cart snapshot stored on an order.
// Later product edits or deletions never touch it.
type OrderItem struct {
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	Quantity     int             `json:"quantity"`
	Observations string          `json:"observations,omitempty"`
}

type Order struct {
	ID              uuid.UUID           `db:"id" json:"id"`
	SiteID          uuid.UUID           `db:"site_id" json:"siteId"`
	CustomerName    string              `db:"customer_name" json:"customerName"`
	CustomerPhone   string              `db:"customer_phone" json:"customerPhone"`
	CustomerAddress string              `db:"customer_address" json:"customerAddress"`
	DeliveryType    consts.DeliveryType `db:"delivery_type" json:"deliveryType"`
	Items           []OrderItem         `db:"items" json:"items"`
	TotalAmount     decimal.Decimal     `db:"total_amount" json:"totalAmount"`
	Status          consts.OrderStatus  `db:"status" json:"status"`
	Notes           string              `db:"notes" json:"notes"`
	CreatedAt       time.Time           `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time           `db:"updated_at" json:"updatedAt"`
}

// Analytics is the per-(site, calendar day) rollup bucket.
type Analytics struct {
	ID             int             `db:"id" json:"id"`
	SiteID         uuid.UUID       `db:"site_id" json:"siteId"`
	Date           time.Time       `db:"date" json:"date"`
	Views          int             `db:"views" json:"views"`
	Orders         int             `db:"orders" json:"orders"`
	Revenue        decimal.Decimal `db:"revenue" json:"revenue"`
	ConversionRate decimal.Decimal `db:"conversion_rate" json:"conversionRate"`
}
