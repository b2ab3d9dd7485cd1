package query_test

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/vitrinehq/vitrine-backend/internal/application/commands/analytics"
	"github.com/vitrinehq/vitrine-backend/internal/application/commands/order"
	"github.com/vitrinehq/vitrine-backend/internal/application/commands/product"
	"github.com/vitrinehq/vitrine-backend/internal/application/commands/site"
	"github.com/vitrinehq/vitrine-backend/internal/application/dto"
	"github.com/vitrinehq/vitrine-backend/internal/application/errs"
	"github.com/vitrinehq/vitrine-backend/internal/application/query"
	"github.com/vitrinehq/vitrine-backend/internal/domain/pix"
	"github.com/vitrinehq/vitrine-backend/internal/infra/auth"
	"github.com/vitrinehq/vitrine-backend/internal/infra/db"
	"github.com/vitrinehq/vitrine-backend/internal/testinfra"
	dbs "github.com/vitrinehq/vitrine-backend/pkg/db"
)

var uowFactory *dbs.UOWFactory
var owner = &auth.Identity{UserID: "query-owner"}

func TestMain(m *testing.M) {
	ctx := context.Background()

	uowFactory = dbs.NewUoWFactory(testinfra.Pool)
	code := m.Run()

	cleanup(ctx)

	os.Exit(code)
}

func cleanup(ctx context.Context) {
	_, err := testinfra.Pool.Exec(ctx,
		"TRUNCATE vitrine.analytics, vitrine.orders, vitrine.products, vitrine.sites CASCADE")
	if err != nil {
		log.Printf("cleanup: %v", err)
	}
}

func createSite(t *testing.T, identity *auth.Identity, slug string, req dto.CreateSiteRequest) *db.Site {
	t.Helper()
	req.TemplateID = 1
	req.Slug = slug
	if req.Name == "" {
		req.Name = "Loja " + slug
	}
	created, err := site.NewCreateSite(uowFactory).Execute(context.Background(), &req, identity)
	require.NoError(t, err)
	return created
}

func Test_GetDashboardStats_When_No_Sites_Then_All_Zero(t *testing.T) {
	stats, err := query.NewGetDashboardStats(uowFactory).Query(context.Background(),
		&auth.Identity{UserID: "nobody"})
	require.NoError(t, err)

	require.Equal(t, 0, stats.TotalSites)
	require.Equal(t, 0, stats.TotalOrders)
	require.Equal(t, 0, stats.TotalViews)
	require.True(t, stats.TotalRevenue.IsZero())
}

func Test_GetDashboardStats_When_Orders_And_Views_Exist_Then_Summed_Across_Sites(t *testing.T) {
	me := &auth.Identity{UserID: "dash-owner"}
	first := createSite(t, me, "dash-um", dto.CreateSiteRequest{})
	second := createSite(t, me, "dash-dois", dto.CreateSiteRequest{})

	createOrder := order.NewCreateOrder(uowFactory)
	for _, s := range []*db.Site{first, second} {
		_, err := createOrder.Execute(context.Background(), s.ID, &dto.CreateOrderRequest{
			CustomerName:  "Cliente",
			CustomerPhone: "11999990000",
			DeliveryType:  "pickup",
			Items:         []dto.OrderItemRequest{{Name: "Item", Price: decimal.NewFromInt(20), Quantity: 1}},
			TotalAmount:   decimal.NewFromInt(20),
		})
		require.NoError(t, err)
	}

	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	trackView := analytics.NewTrackView(uowFactory, loc)
	require.NoError(t, trackView.Execute(context.Background(), first.ID))
	require.NoError(t, trackView.Execute(context.Background(), first.ID))
	require.NoError(t, trackView.ExecuteBySlug(context.Background(), "dash-dois"))

	stats, err := query.NewGetDashboardStats(uowFactory).Query(context.Background(), me)
	require.NoError(t, err)

	require.Equal(t, 2, stats.TotalSites)
	require.Equal(t, 2, stats.TotalOrders)
	require.True(t, stats.TotalRevenue.Equal(decimal.NewFromInt(40)))
	require.Equal(t, 3, stats.TotalViews)
}

func Test_GetPublicSite_When_Active_Then_Site_With_Catalog(t *testing.T) {
	created := createSite(t, owner, "vitrine-aberta", dto.CreateSiteRequest{})
	_, err := product.NewCreateProduct(uowFactory).Execute(context.Background(), created.ID,
		&dto.CreateProductRequest{Name: "Brigadeiro", Price: decimal.NewFromInt(3)}, owner)
	require.NoError(t, err)

	resp, err := query.NewGetPublicSite(uowFactory).Query(context.Background(), "vitrine-aberta")
	require.NoError(t, err)

	require.Equal(t, created.ID, resp.Site.ID)
	require.Len(t, resp.Products, 1)
	require.Equal(t, "Brigadeiro", resp.Products[0].Name)
}

func Test_GetPublicSite_When_Inactive_Then_NotFound(t *testing.T) {
	created := createSite(t, owner, "vitrine-fechada", dto.CreateSiteRequest{})
	inactive := false
	_, err := site.NewUpdateSite(uowFactory).Execute(context.Background(), created.ID,
		&dto.UpdateSiteRequest{IsActive: &inactive}, owner)
	require.NoError(t, err)

	_, err = query.NewGetPublicSite(uowFactory).Query(context.Background(), "vitrine-fechada")

	var notFound errs.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func Test_GetAnalytics_When_Caller_Is_Not_Owner_Then_NotFound(t *testing.T) {
	created := createSite(t, owner, "vitrine-numeros", dto.CreateSiteRequest{})

	_, err := query.NewGetAnalytics(uowFactory).QueryPeriod(context.Background(), created.ID,
		"7d", &auth.Identity{UserID: "intruso"})

	var notFound errs.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func Test_GetAnalytics_When_Rows_Recorded_Then_Period_Window_Returned(t *testing.T) {
	created := createSite(t, owner, "vitrine-periodo", dto.CreateSiteRequest{})

	record := analytics.NewRecordAnalytics(uowFactory)
	recent := time.Now().AddDate(0, 0, -2).Truncate(24 * time.Hour)
	old := time.Now().AddDate(0, 0, -40).Truncate(24 * time.Hour)
	for _, date := range []time.Time{recent, old} {
		_, err := record.Execute(context.Background(), created.ID, &dto.RecordAnalyticsRequest{
			Date: date, Views: 5,
		})
		require.NoError(t, err)
	}

	rows, err := query.NewGetAnalytics(uowFactory).QueryPeriod(context.Background(), created.ID, "7d", owner)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, 5, rows[0].Views)

	rows, err = query.NewGetAnalytics(uowFactory).QueryPeriod(context.Background(), created.ID, "90d", owner)
	require.NoError(t, err)
	require.Len(t, rows, 2)
}

func Test_GetPixCode_When_Site_Has_Key_Then_Valid_Payload_With_Amount(t *testing.T) {
	createSite(t, owner, "vitrine-pix", dto.CreateSiteRequest{
		Name:       "Doceria da Ana",
		PixKey:     "ana@pix.com",
		PixKeyType: "email",
	})

	resp, err := query.NewGetPixCode(uowFactory).Query(context.Background(), "vitrine-pix",
		decimal.NewFromFloat(12.30))
	require.NoError(t, err)

	require.True(t, pix.Validate(resp.Code))
	require.Contains(t, resp.Code, "ana@pix.com")
	require.Contains(t, resp.Code, "540512.30")
	require.Contains(t, resp.Code, "Doceria da Ana")
}

func Test_GetPixCode_When_Site_Has_No_Key_Then_Validation_Error(t *testing.T) {
	createSite(t, owner, "vitrine-sem-pix", dto.CreateSiteRequest{})

	_, err := query.NewGetPixCode(uowFactory).Query(context.Background(), "vitrine-sem-pix", decimal.Zero)

	var invalid errs.ValidationError
	require.ErrorAs(t, err, &invalid)
}
