package report_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/vitrinehq/vitrine-backend/internal/application/consts"
	"github.com/vitrinehq/vitrine-backend/internal/application/report"
	"github.com/vitrinehq/vitrine-backend/internal/infra/db"
)

func orderWith(status consts.OrderStatus) db.Order {
	return db.Order{Status: status, TotalAmount: decimal.Zero}
}

func Test_CountByStatus_When_Unknown_Status_Then_Total_Still_Matches_Len(t *testing.T) {
	orders := []db.Order{
		orderWith(consts.OrderStatusNew),
		orderWith(consts.OrderStatusNew),
		orderWith(consts.OrderStatusPreparing),
		orderWith(consts.OrderStatusDelivered),
		orderWith(consts.OrderStatus("shipped")),
	}

	counts := report.CountByStatus(orders)

	require.Equal(t, 2, counts.New)
	require.Equal(t, 1, counts.Preparing)
	require.Equal(t, 1, counts.Delivered)
	require.Equal(t, 1, counts.Other)
	require.Equal(t, len(orders), counts.Total())
}

func Test_DayTotals_When_Orders_Span_Midnight_Then_Only_Local_Today_Counted(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	// 01:30 UTC on the 2nd is still 22:30 on the 1st in Sao Paulo
	now := time.Date(2025, 6, 2, 1, 30, 0, 0, time.UTC)
	orders := []db.Order{
		{CreatedAt: time.Date(2025, 6, 2, 0, 15, 0, 0, time.UTC), TotalAmount: decimal.NewFromInt(30)},
		{CreatedAt: time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC), TotalAmount: decimal.NewFromInt(20)},
		{CreatedAt: time.Date(2025, 5, 30, 12, 0, 0, 0, time.UTC), TotalAmount: decimal.NewFromInt(99)},
	}

	count, revenue := report.DayTotals(orders, now, loc)

	require.Equal(t, 2, count)
	require.True(t, revenue.Equal(decimal.NewFromInt(50)))
}

func Test_TopProducts_When_Same_Name_Across_Orders_Then_Aggregated(t *testing.T) {
	orders := []db.Order{
		{Items: []db.OrderItem{
			{Name: "X-Salada", Price: decimal.NewFromInt(10), Quantity: 2},
			{Name: "Suco", Price: decimal.NewFromInt(5), Quantity: 1},
		}},
		{Items: []db.OrderItem{
			{Name: "X-Salada", Price: decimal.NewFromInt(10), Quantity: 2},
		}},
	}

	stats := report.TopProducts(orders, 5)

	require.Len(t, stats, 2)
	require.Equal(t, "X-Salada", stats[0].Name)
	require.Equal(t, 4, stats[0].Quantity)
	require.True(t, stats[0].Revenue.Equal(decimal.NewFromInt(40)))
	require.Equal(t, "Suco", stats[1].Name)
}

func Test_TopProducts_When_Revenue_Ties_Then_Name_Order_And_Limit_Applied(t *testing.T) {
	orders := []db.Order{
		{Items: []db.OrderItem{
			{Name: "B", Price: decimal.NewFromInt(10), Quantity: 1},
			{Name: "A", Price: decimal.NewFromInt(10), Quantity: 1},
			{Name: "C", Price: decimal.NewFromInt(10), Quantity: 1},
		}},
	}

	stats := report.TopProducts(orders, 2)

	require.Len(t, stats, 2)
	require.Equal(t, "A", stats[0].Name)
	require.Equal(t, "B", stats[1].Name)
}

func Test_PeakHours_When_Orders_In_Different_Hours_Then_Bucketed_In_Location(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	orders := []db.Order{
		// 22:00 UTC is 19:00 in Sao Paulo
		{CreatedAt: time.Date(2025, 6, 1, 22, 0, 0, 0, time.UTC)},
		{CreatedAt: time.Date(2025, 6, 1, 22, 30, 0, 0, time.UTC)},
		{CreatedAt: time.Date(2025, 6, 1, 15, 0, 0, 0, time.UTC)},
	}

	hours := report.PeakHours(orders, loc)

	require.Equal(t, 2, hours[19])
	require.Equal(t, 1, hours[12])
	require.Equal(t, 0, hours[22])
}

func Test_CountByDeliveryType_Then_Split_Matches(t *testing.T) {
	orders := []db.Order{
		{DeliveryType: consts.DeliveryTypeDelivery},
		{DeliveryType: consts.DeliveryTypeDelivery},
		{DeliveryType: consts.DeliveryTypePickup},
	}

	split := report.CountByDeliveryType(orders)

	require.Equal(t, 2, split.Delivery)
	require.Equal(t, 1, split.Pickup)
}

func Test_AverageOrderValue_When_No_Orders_Then_Zero(t *testing.T) {
	require.True(t, report.AverageOrderValue(decimal.Zero, 0).IsZero())
}

func Test_AverageOrderValue_When_Orders_Then_Rounded_To_Cents(t *testing.T) {
	avg := report.AverageOrderValue(decimal.NewFromInt(100), 3)

	require.Equal(t, "33.33", avg.StringFixed(2))
}

func Test_TotalsForRange_When_Rows_Present_Then_Sums_And_Mean_Rate(t *testing.T) {
	rows := []db.Analytics{
		{Views: 10, Orders: 2, Revenue: decimal.NewFromInt(50), ConversionRate: decimal.NewFromInt(20)},
		{Views: 30, Orders: 1, Revenue: decimal.NewFromInt(25), ConversionRate: decimal.NewFromInt(10)},
	}

	totals := report.TotalsForRange(rows)

	require.Equal(t, 40, totals.Views)
	require.Equal(t, 3, totals.Orders)
	require.True(t, totals.Revenue.Equal(decimal.NewFromInt(75)))
	require.Equal(t, "15.00", totals.MeanConversionRate.StringFixed(2))
}

func Test_TotalsForRange_When_Empty_Then_All_Zero(t *testing.T) {
	totals := report.TotalsForRange(nil)

	require.Equal(t, 0, totals.Views)
	require.True(t, totals.Revenue.IsZero())
	require.True(t, totals.MeanConversionRate.IsZero())
}
