package repo

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/vitrinehq/vitrine-backend/internal/application/consts"
	"github.com/vitrinehq/vitrine-backend/internal/infra/db"
)

const orderColumns = `id, site_id, customer_name, customer_phone, customer_address, delivery_type,
		items, total_amount, status, notes, created_at, updated_at`

type OrderRepo struct {
	tx pgx.Tx
}

func NewOrderRepo(tx pgx.Tx) *OrderRepo {
	return &OrderRepo{tx: tx}
}

func scanOrder(row pgx.Row) (*db.Order, error) {
	var order db.Order
	var items json.RawMessage
	err := row.Scan(&order.ID, &order.SiteID, &order.CustomerName, &order.CustomerPhone,
		&order.CustomerAddress, &order.DeliveryType, &items, &order.TotalAmount,
		&order.Status, &order.Notes, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return nil, err
	}
	order.Items = db.RawMessageToItems(items)
	return &order, nil
}

func (o *OrderRepo) GetOrder(ctx context.Context, id uuid.UUID) (*db.Order, error) {
	query := "SELECT " + orderColumns + " FROM vitrine.orders WHERE id = $1"
	return scanOrder(o.tx.QueryRow(ctx, query, id))
}

func (o *OrderRepo) GetOrdersBySite(ctx context.Context, siteID uuid.UUID) ([]db.Order, error) {
	query := "SELECT " + orderColumns + " FROM vitrine.orders WHERE site_id = $1 ORDER BY created_at DESC"
	rows, err := o.tx.Query(ctx, query, siteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []db.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err()
}

func (o *OrderRepo) InsertOrder(ctx context.Context, order db.Order) (uuid.UUID, error) {
	query := `INSERT INTO vitrine.orders(site_id, customer_name, customer_phone, customer_address,
			delivery_type, items, total_amount, status, notes, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11) RETURNING id`
	var id uuid.UUID
	err := o.tx.QueryRow(ctx, query, order.SiteID, order.CustomerName, order.CustomerPhone,
		order.CustomerAddress, order.DeliveryType, db.ItemsToRawMessage(order.Items),
		order.TotalAmount, order.Status, order.Notes, order.CreatedAt, order.UpdatedAt).Scan(&id)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// UpdateOrderStatus is an unconditional set: there is no transition table,
// any known status may follow any other.
func (o *OrderRepo) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status consts.OrderStatus) (*db.Order, error) {
	query := "UPDATE vitrine.orders SET status = $2, updated_at = $3 WHERE id = $1 RETURNING " + orderColumns
	return scanOrder(o.tx.QueryRow(ctx, query, id, status, time.Now()))
}

func (o *OrderRepo) CountOrdersBySite(ctx context.Context, siteID uuid.UUID) (int, error) {
	var count int
	err := o.tx.QueryRow(ctx, "SELECT count(*) FROM vitrine.orders WHERE site_id = $1", siteID).Scan(&count)
	return count, err
}

func (o *OrderRepo) SumRevenueBySite(ctx context.Context, siteID uuid.UUID) (decimal.Decimal, error) {
	var revenue decimal.Decimal
	err := o.tx.QueryRow(ctx, "SELECT COALESCE(sum(total_amount), 0) FROM vitrine.orders WHERE site_id = $1",
		siteID).Scan(&revenue)
	return revenue, err
}
