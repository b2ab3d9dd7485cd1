package testinfra

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var Pool *pgxpool.Pool

func init() {
	Pool = SetupDB()
}

func SetupDB() *pgxpool.Pool {

	ctx := context.Background()

	pgReq := testcontainers.ContainerRequest{
		Image:        "postgres:17.2-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_PASSWORD": "password",
			"POSTGRES_USER":     "postgres",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections"),
	}
	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: pgReq,
		Started:          true,
	})
	if err != nil {
		log.Panicf("start postgres: %v", err)
	}

	pgHostPort, err := pgC.Endpoint(ctx, "")
	if err != nil {
		log.Panicf("postgres endpoint: %v", err)
	}
	pgDSN := fmt.Sprintf("postgres://postgres:password@%s/testdb?sslmode=disable", pgHostPort)

	pool, err := pgxpool.New(ctx, pgDSN)
	if err != nil {
		log.Panicf("pgxpool connect: %v", err)
	}

	ok := false
	for i := 0; i < 20; i++ {
		slog.Info("ping db", "try", i)
		ctxPing, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
		err = pool.Ping(ctxPing)
		cancel()
		if err == nil {
			ok = true
			break
		}
		time.Sleep(100 * time.Millisecond)
	}
	if !ok {
		log.Panic("db did not respond after 20 attempts")
	}

	_, err = pool.Exec(ctx, `
		CREATE SCHEMA IF NOT EXISTS vitrine;
		CREATE TABLE IF NOT EXISTS vitrine.users (
		  id VARCHAR(255) PRIMARY KEY,
		  email VARCHAR(255) UNIQUE NOT NULL DEFAULT '',
		  first_name VARCHAR(255) NOT NULL DEFAULT '',
		  last_name VARCHAR(255) NOT NULL DEFAULT '',
		  profile_image_url TEXT NOT NULL DEFAULT '',
		  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE TABLE IF NOT EXISTS vitrine.templates (
		  id SERIAL PRIMARY KEY,
		  name VARCHAR(255) NOT NULL,
		  category VARCHAR(100) NOT NULL DEFAULT '',
		  description TEXT NOT NULL DEFAULT '',
		  image_url TEXT NOT NULL DEFAULT '',
		  html_content TEXT NOT NULL DEFAULT '',
		  css_content TEXT NOT NULL DEFAULT '',
		  js_content TEXT NOT NULL DEFAULT '',
		  config JSONB NOT NULL DEFAULT '{}',
		  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE TABLE IF NOT EXISTS vitrine.sites (
		  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		  user_id VARCHAR(255) NOT NULL,
		  template_id INT NOT NULL DEFAULT 0,
		  name VARCHAR(255) NOT NULL,
		  slug VARCHAR(255) UNIQUE NOT NULL,
		  whatsapp_number VARCHAR(30) NOT NULL DEFAULT '',
		  address TEXT NOT NULL DEFAULT '',
		  config JSONB NOT NULL DEFAULT '{}',
		  deploy_url TEXT NOT NULL DEFAULT '',
		  deploy_id VARCHAR(100) NOT NULL DEFAULT '',
		  pix_key VARCHAR(100) NOT NULL DEFAULT '',
		  pix_key_type VARCHAR(20) NOT NULL DEFAULT '',
		  is_active BOOLEAN NOT NULL DEFAULT true,
		  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE TABLE IF NOT EXISTS vitrine.products (
		  id SERIAL PRIMARY KEY,
		  site_id UUID NOT NULL REFERENCES vitrine.sites(id),
		  name VARCHAR(255) NOT NULL,
		  description TEXT NOT NULL DEFAULT '',
		  price NUMERIC(10,2) NOT NULL CHECK (price >= 0),
		  image_url TEXT NOT NULL DEFAULT '',
		  category VARCHAR(100) NOT NULL DEFAULT '',
		  is_available BOOLEAN NOT NULL DEFAULT true,
		  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE TABLE IF NOT EXISTS vitrine.orders (
		  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		  site_id UUID NOT NULL REFERENCES vitrine.sites(id),
		  customer_name VARCHAR(255) NOT NULL,
		  customer_phone VARCHAR(30) NOT NULL,
		  customer_address TEXT NOT NULL DEFAULT '',
		  delivery_type VARCHAR(20) NOT NULL DEFAULT 'pickup',
		  items JSONB NOT NULL,
		  total_amount NUMERIC(10,2) NOT NULL,
		  status VARCHAR(20) NOT NULL DEFAULT 'new',
		  notes TEXT NOT NULL DEFAULT '',
		  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE TABLE IF NOT EXISTS vitrine.analytics (
		  id SERIAL PRIMARY KEY,
		  site_id UUID NOT NULL REFERENCES vitrine.sites(id),
		  date TIMESTAMPTZ NOT NULL,
		  views INT NOT NULL DEFAULT 0,
		  orders INT NOT NULL DEFAULT 0,
		  revenue NUMERIC(10,2) NOT NULL DEFAULT 0,
		  conversion_rate NUMERIC(5,2) NOT NULL DEFAULT 0,
		  UNIQUE(site_id, date)
		);
	`)
	if err != nil {
		log.Panicf("create tables: %v", err)
	}

	return pool
}
