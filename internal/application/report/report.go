// Package report holds the dashboard derivations every analytics view shares.
// All functions are pure folds over fetched rows: no I/O, no clock reads —
// callers pass "now" and the timezone explicitly.
package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vitrinehq/vitrine-backend/internal/application/consts"
	"github.com/vitrinehq/vitrine-backend/internal/infra/db"
)

// StatusCounts buckets orders by status. Other catches statuses outside the
// known enumeration so the buckets always sum to len(orders).
type StatusCounts struct {
	New       int `json:"new"`
	Preparing int `json:"preparing"`
	Ready     int `json:"ready"`
	Delivered int `json:"delivered"`
	Cancelled int `json:"cancelled"`
	Other     int `json:"other"`
}

func (s StatusCounts) Total() int {
	return s.New + s.Preparing + s.Ready + s.Delivered + s.Cancelled + s.Other
}

func CountByStatus(orders []db.Order) StatusCounts {
	var counts StatusCounts
	for _, order := range orders {
		switch order.Status {
		case consts.OrderStatusNew:
			counts.New++
		case consts.OrderStatusPreparing:
			counts.Preparing++
		case consts.OrderStatusReady:
			counts.Ready++
		case consts.OrderStatusDelivered:
			counts.Delivered++
		case consts.OrderStatusCancelled:
			counts.Cancelled++
		default:
			counts.Other++
		}
	}
	return counts
}

// DayTotals sums the orders created on the calendar day of now in loc.
func DayTotals(orders []db.Order, now time.Time, loc *time.Location) (count int, revenue decimal.Decimal) {
	year, month, day := now.In(loc).Date()
	for _, order := range orders {
		y, m, d := order.CreatedAt.In(loc).Date()
		if y == year && m == month && d == day {
			count++
			revenue = revenue.Add(order.TotalAmount)
		}
	}
	return count, revenue
}

// ProductStat aggregates order items keyed by product name. Keying by name
// follows the item snapshots, which carry no product id.
type ProductStat struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
}

// TopProducts returns up to limit products by descending revenue; ties break
// by name so the ranking is deterministic.
func TopProducts(orders []db.Order, limit int) []ProductStat {
	byName := make(map[string]*ProductStat)
	for _, order := range orders {
		for _, item := range order.Items {
			stat, ok := byName[item.Name]
			if !ok {
				stat = &ProductStat{Name: item.Name, Revenue: decimal.Zero}
				byName[item.Name] = stat
			}
			stat.Quantity += item.Quantity
			stat.Revenue = stat.Revenue.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}
	}

	stats := make([]ProductStat, 0, len(byName))
	for _, stat := range byName {
		stats = append(stats, *stat)
	}
	sort.Slice(stats, func(i, j int) bool {
		if !stats[i].Revenue.Equal(stats[j].Revenue) {
			return stats[i].Revenue.GreaterThan(stats[j].Revenue)
		}
		return stats[i].Name < stats[j].Name
	})
	if len(stats) > limit {
		stats = stats[:limit]
	}
	return stats
}

// PeakHours buckets orders into the 24 hours of the day in loc. Every slot is
// present, empty ones as zero.
func PeakHours(orders []db.Order, loc *time.Location) [24]int {
	var hours [24]int
	for _, order := range orders {
		hours[order.CreatedAt.In(loc).Hour()]++
	}
	return hours
}

type DeliverySplit struct {
	Delivery int `json:"delivery"`
	Pickup   int `json:"pickup"`
}

func CountByDeliveryType(orders []db.Order) DeliverySplit {
	var split DeliverySplit
	for _, order := range orders {
		switch order.DeliveryType {
		case consts.DeliveryTypeDelivery:
			split.Delivery++
		case consts.DeliveryTypePickup:
			split.Pickup++
		}
	}
	return split
}

// AverageOrderValue is zero when there are no orders, never a division error.
func AverageOrderValue(totalRevenue decimal.Decimal, totalOrders int) decimal.Decimal {
	if totalOrders == 0 {
		return decimal.Zero
	}
	return totalRevenue.DivRound(decimal.NewFromInt(int64(totalOrders)), 2)
}

// RangeTotals folds a fetched analytics range into the header numbers shown
// above the charts.
type RangeTotals struct {
	Views              int             `json:"views"`
	Orders             int             `json:"orders"`
	Revenue            decimal.Decimal `json:"revenue"`
	MeanConversionRate decimal.Decimal `json:"meanConversionRate"`
}

func TotalsForRange(rows []db.Analytics) RangeTotals {
	totals := RangeTotals{Revenue: decimal.Zero, MeanConversionRate: decimal.Zero}
	if len(rows) == 0 {
		return totals
	}
	sumRate := decimal.Zero
	for _, row := range rows {
		totals.Views += row.Views
		totals.Orders += row.Orders
		totals.Revenue = totals.Revenue.Add(row.Revenue)
		sumRate = sumRate.Add(row.ConversionRate)
	}
	totals.MeanConversionRate = sumRate.DivRound(decimal.NewFromInt(int64(len(rows))), 2)
	return totals
}
