package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/vitrinehq/vitrine-backend/internal/application/consts"
	"github.com/vitrinehq/vitrine-backend/internal/application/dto"
	"github.com/vitrinehq/vitrine-backend/internal/application/errs"
	"github.com/vitrinehq/vitrine-backend/internal/domain/whatsapp"
	"github.com/vitrinehq/vitrine-backend/internal/infra/db"
	"github.com/vitrinehq/vitrine-backend/internal/infra/db/repo"
	dbs "github.com/vitrinehq/vitrine-backend/pkg/db"
)

type CreateOrder struct {
	uowFactory *dbs.UOWFactory
}

func NewCreateOrder(factory *dbs.UOWFactory) *CreateOrder {
	return &CreateOrder{uowFactory: factory}
}

// Execute takes an unauthenticated storefront submission. The items array is
// snapshotted verbatim; the claimed total is recomputed server-side and a
// mismatch rejects the order.
func (c *CreateOrder) Execute(ctx context.Context, siteID uuid.UUID, req *dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
	items := make([]db.OrderItem, len(req.Items))
	sum := decimal.Zero
	for i, item := range req.Items {
		if item.Price.IsNegative() {
			return nil, errs.ValidationError{Err: fmt.Errorf("item %q has a negative price", item.Name)}
		}
		items[i] = db.OrderItem{
			Name:         item.Name,
			Price:        item.Price,
			Quantity:     item.Quantity,
			Observations: item.Observations,
		}
		sum = sum.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	if !sum.Equal(req.TotalAmount) {
		return nil, errs.ValidationError{
			Err: fmt.Errorf("totalAmount %s doesn't match items sum %s", req.TotalAmount, sum),
		}
	}

	uow := c.uowFactory.GetUoW()
	tx, err := uow.Begin()
	if err != nil {
		return nil, err
	}
	defer uow.Finalize(&err)

	site, err := repo.NewSiteRepo(tx).GetSite(ctx, siteID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NotFoundError{Resource: "site"}
		}
		return nil, err
	}

	orderRepo := repo.NewOrderRepo(tx)
	newOrder := db.Order{
		SiteID:          siteID,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		DeliveryType:    consts.DeliveryType(req.DeliveryType),
		Items:           items,
		TotalAmount:     req.TotalAmount,
		Status:          consts.OrderStatusNew,
		Notes:           req.Notes,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
	id, err := orderRepo.InsertOrder(ctx, newOrder)
	if err != nil {
		return nil, err
	}
	created, err := orderRepo.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := &dto.CreateOrderResponse{Order: *created}
	if site.WhatsappNumber != "" {
		message := whatsapp.OrderMessage(site.Name, *created, site.PixKey)
		resp.WhatsappURL = whatsapp.Link(site.WhatsappNumber, message)
	}
	return resp, nil
}
