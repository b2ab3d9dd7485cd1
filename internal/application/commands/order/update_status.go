package order

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/vitrinehq/vitrine-backend/internal/application/consts"
	"github.com/vitrinehq/vitrine-backend/internal/application/errs"
	"github.com/vitrinehq/vitrine-backend/internal/infra/auth"
	"github.com/vitrinehq/vitrine-backend/internal/infra/db"
	"github.com/vitrinehq/vitrine-backend/internal/infra/db/repo"
	dbs "github.com/vitrinehq/vitrine-backend/pkg/db"
)

type UpdateOrderStatus struct {
	uowFactory *dbs.UOWFactory
}

func NewUpdateOrderStatus(factory *dbs.UOWFactory) *UpdateOrderStatus {
	return &UpdateOrderStatus{uowFactory: factory}
}

// Execute sets the status unconditionally. The enumeration is enforced, the
// ordering of transitions is not.
func (c *UpdateOrderStatus) Execute(ctx context.Context, id uuid.UUID, status string, identity *auth.Identity) (*db.Order, error) {
	if !consts.ValidOrderStatus(status) {
		return nil, errs.ValidationError{Err: errors.New("unknown order status " + status)}
	}

	uow := c.uowFactory.GetUoW()
	tx, err := uow.Begin()
	if err != nil {
		return nil, err
	}
	defer uow.Finalize(&err)

	orderRepo := repo.NewOrderRepo(tx)
	existing, err := orderRepo.GetOrder(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NotFoundError{Resource: "order"}
		}
		return nil, err
	}

	site, err := repo.NewSiteRepo(tx).GetSite(ctx, existing.SiteID)
	if err != nil {
		return nil, err
	}
	if site.UserID != identity.UserID {
		return nil, errs.NotFoundError{Resource: "order"}
	}

	updated, err := orderRepo.UpdateOrderStatus(ctx, id, consts.OrderStatus(status))
	return updated, err
}
