package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vitrinehq/vitrine-backend/internal/application"
	"github.com/vitrinehq/vitrine-backend/internal/application/commands/analytics"
	"github.com/vitrinehq/vitrine-backend/internal/application/commands/order"
	"github.com/vitrinehq/vitrine-backend/internal/application/commands/product"
	"github.com/vitrinehq/vitrine-backend/internal/application/commands/site"
	"github.com/vitrinehq/vitrine-backend/internal/application/commands/template"
	"github.com/vitrinehq/vitrine-backend/internal/application/commands/user"
	"github.com/vitrinehq/vitrine-backend/internal/application/query"
	"github.com/vitrinehq/vitrine-backend/internal/infra/auth"
	"github.com/vitrinehq/vitrine-backend/internal/infra/config"
	"github.com/vitrinehq/vitrine-backend/internal/infra/deploy"
	"github.com/vitrinehq/vitrine-backend/internal/presentation/rest"
	"github.com/vitrinehq/vitrine-backend/pkg/db"
)

func Init() {
	// DB
	dbConfig := db.NewConfig()
	pool, err := pgxpool.New(context.Background(), dbConfig.GetDSN())
	if err != nil {
		log.Panicf("failed to create pool: %v", err)
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Panicf("failed to connect to db: %v", err)
	}
	uowFactory := db.NewUoWFactory(pool)

	// Configs
	serverConfig := config.NewServerConfig()
	oidcConfig := auth.NewOIDCConfig()
	deployer := deploy.NewDeployer(deploy.NewConfig())

	provider, err := auth.NewIdentityProvider(context.Background(), oidcConfig)
	if err != nil {
		log.Panicf("failed to init identity provider: %v", err)
	}

	loc, err := time.LoadLocation(serverConfig.Timezone)
	if err != nil {
		log.Panicf("unknown timezone %v: %v", serverConfig.Timezone, err)
	}

	commands := &application.Collection{
		CreateSite:        site.NewCreateSite(uowFactory),
		UpdateSite:        site.NewUpdateSite(uowFactory),
		DeleteSite:        site.NewDeleteSite(uowFactory),
		DeploySite:        site.NewDeploySite(uowFactory, deployer),
		CreateProduct:     product.NewCreateProduct(uowFactory),
		UpdateProduct:     product.NewUpdateProduct(uowFactory),
		DeleteProduct:     product.NewDeleteProduct(uowFactory),
		CreateOrder:       order.NewCreateOrder(uowFactory),
		UpdateOrderStatus: order.NewUpdateOrderStatus(uowFactory),
		RecordAnalytics:   analytics.NewRecordAnalytics(uowFactory),
		TrackView:         analytics.NewTrackView(uowFactory, loc),
		CreateTemplate:    template.NewCreateTemplate(uowFactory),
		UpsertUser:        user.NewUpsertUser(uowFactory),

		GetSite:           query.NewGetSite(uowFactory),
		ListSites:         query.NewListSites(uowFactory),
		GetPublicSite:     query.NewGetPublicSite(uowFactory),
		GetTemplate:       query.NewGetTemplate(uowFactory),
		ListTemplates:     query.NewListTemplates(uowFactory),
		ListProducts:      query.NewListProducts(uowFactory),
		ListOrders:        query.NewListOrders(uowFactory),
		GetAnalytics:      query.NewGetAnalytics(uowFactory),
		GetDashboardStats: query.NewGetDashboardStats(uowFactory),
		GetPixCode:        query.NewGetPixCode(uowFactory),
	}

	server := rest.NewServer(commands)
	app := fiber.New(fiber.Config{
		IdleTimeout: 5 * time.Second,
	})
	app.Use(cors.New(cors.Config{
		AllowOrigins:     serverConfig.CORSOrigin,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))
	rest.RegisterRoutes(app, server, provider)

	go func() {
		if err := app.Listen(fmt.Sprintf(":%v", serverConfig.Port)); err != nil {
			log.Panic(err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c
	fmt.Println("Gracefully shutting down...")
	_ = app.Shutdown()

	fmt.Println("Running cleanup tasks...")

	uowFactory.Pool.Close()
	fmt.Println("Fiber was successfully shutdown.")
}
