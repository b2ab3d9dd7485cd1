package order_test

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/vitrinehq/vitrine-backend/internal/application/commands/order"
	"github.com/vitrinehq/vitrine-backend/internal/application/commands/site"
	"github.com/vitrinehq/vitrine-backend/internal/application/consts"
	"github.com/vitrinehq/vitrine-backend/internal/application/dto"
	"github.com/vitrinehq/vitrine-backend/internal/application/errs"
	"github.com/vitrinehq/vitrine-backend/internal/infra/auth"
	"github.com/vitrinehq/vitrine-backend/internal/infra/db"
	"github.com/vitrinehq/vitrine-backend/internal/testinfra"
	dbs "github.com/vitrinehq/vitrine-backend/pkg/db"
)

var uowFactory *dbs.UOWFactory

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

func createSite(t *testing.T, slug, whatsapp, pixKey string) *db.Site {
	t.Helper()
	created, err := site.NewCreateSite(uowFactory).Execute(context.Background(), &dto.CreateSiteRequest{
		TemplateID:     1,
		Name:           "Lanchonete Teste",
		Slug:           slug,
		WhatsappNumber: whatsapp,
		PixKey:         pixKey,
	}, &auth.Identity{UserID: "merchant-1"})
	require.NoError(t, err)
	return created
}

func orderRequest(total decimal.Decimal) *dto.CreateOrderRequest {
	return &dto.CreateOrderRequest{
		CustomerName:  "Maria",
		CustomerPhone: "11999990000",
		DeliveryType:  "pickup",
		Items: []dto.OrderItemRequest{
			{Name: "X-Salada", Price: decimal.NewFromFloat(25.50), Quantity: 2},
			{Name: "Suco", Price: decimal.NewFromInt(8), Quantity: 1},
		},
		TotalAmount: total,
	}
}

func Test_CreateOrder_When_Total_Matches_Items_Then_Created_With_Whatsapp_Link(t *testing.T) {
	created := createSite(t, "pedidos-ok", "+55 11 98888-0000", "chave@pix.com")
	SUT := order.NewCreateOrder(uowFactory)

	resp, err := SUT.Execute(context.Background(), created.ID, orderRequest(decimal.NewFromInt(59)))
	require.NoError(t, err)

	require.Equal(t, consts.OrderStatusNew, resp.Order.Status)
	require.Len(t, resp.Order.Items, 2)
	require.True(t, resp.Order.TotalAmount.Equal(decimal.NewFromInt(59)))
	require.Contains(t, resp.WhatsappURL, "https://wa.me/5511988880000?text=")
	require.Contains(t, resp.WhatsappURL, "Maria")
}

func Test_CreateOrder_When_Total_Mismatches_Then_Validation_Error(t *testing.T) {
	created := createSite(t, "pedidos-total", "", "")
	SUT := order.NewCreateOrder(uowFactory)

	_, err := SUT.Execute(context.Background(), created.ID, orderRequest(decimal.NewFromInt(10)))

	var invalid errs.ValidationError
	require.ErrorAs(t, err, &invalid)
}

func Test_CreateOrder_When_Site_Has_No_Whatsapp_Then_Link_Empty(t *testing.T) {
	created := createSite(t, "pedidos-sem-zap", "", "")
	SUT := order.NewCreateOrder(uowFactory)

	resp, err := SUT.Execute(context.Background(), created.ID, orderRequest(decimal.NewFromInt(59)))
	require.NoError(t, err)

	require.Empty(t, resp.WhatsappURL)
}

func Test_CreateOrder_When_Site_Missing_Then_NotFound(t *testing.T) {
	SUT := order.NewCreateOrder(uowFactory)

	_, err := SUT.Execute(context.Background(), uuid.New(), orderRequest(decimal.NewFromInt(59)))

	var notFound errs.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func Test_UpdateOrderStatus_When_Caller_Is_Not_Owner_Then_NotFound(t *testing.T) {
	created := createSite(t, "pedidos-dono", "", "")
	resp, err := order.NewCreateOrder(uowFactory).Execute(context.Background(), created.ID,
		orderRequest(decimal.NewFromInt(59)))
	require.NoError(t, err)

	SUT := order.NewUpdateOrderStatus(uowFactory)

	_, err = SUT.Execute(context.Background(), resp.Order.ID, "preparing", &auth.Identity{UserID: "someone-else"})
	var notFound errs.NotFoundError
	require.ErrorAs(t, err, &notFound)

	updated, err := SUT.Execute(context.Background(), resp.Order.ID, "preparing", &auth.Identity{UserID: "merchant-1"})
	require.NoError(t, err)
	require.Equal(t, consts.OrderStatusPreparing, updated.Status)
}

func Test_UpdateOrderStatus_When_Status_Unknown_Then_Validation_Error(t *testing.T) {
	created := createSite(t, "pedidos-status", "", "")
	resp, err := order.NewCreateOrder(uowFactory).Execute(context.Background(), created.ID,
		orderRequest(decimal.NewFromInt(59)))
	require.NoError(t, err)

	_, err = order.NewUpdateOrderStatus(uowFactory).Execute(context.Background(), resp.Order.ID,
		"shipped", &auth.Identity{UserID: "merchant-1"})

	var invalid errs.ValidationError
	require.ErrorAs(t, err, &invalid)
}
