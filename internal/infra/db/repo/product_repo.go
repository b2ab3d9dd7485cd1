package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/vitrinehq/vitrine-backend/internal/infra/db"
)

const productColumns = "id, site_id, name, description, price, image_url, category, is_available, created_at"

type ProductRepo struct {
	tx pgx.Tx
}

func NewProductRepo(tx pgx.Tx) *ProductRepo {
	return &ProductRepo{tx: tx}
}

func scanProduct(row pgx.Row) (*db.Product, error) {
	var product db.Product
	err := row.Scan(&product.ID, &product.SiteID, &product.Name, &product.Description,
		&product.Price, &product.ImageURL, &product.Category, &product.IsAvailable, &product.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (p *ProductRepo) GetProduct(ctx context.Context, id int) (*db.Product, error) {
	query := "SELECT " + productColumns + " FROM vitrine.products WHERE id = $1"
	return scanProduct(p.tx.QueryRow(ctx, query, id))
}

func (p *ProductRepo) GetProductsBySite(ctx context.Context, siteID uuid.UUID) ([]db.Product, error) {
	query := "SELECT " + productColumns + " FROM vitrine.products WHERE site_id = $1 ORDER BY name"
	rows, err := p.tx.Query(ctx, query, siteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []db.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *product)
	}
	return products, rows.Err()
}

func (p *ProductRepo) InsertProduct(ctx context.Context, product db.Product) (int, error) {
	query := `INSERT INTO vitrine.products(site_id, name, description, price, image_url, category, is_available, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8) RETURNING id`
	var id int
	err := p.tx.QueryRow(ctx, query, product.SiteID, product.Name, product.Description,
		product.Price, product.ImageURL, product.Category, product.IsAvailable, product.CreatedAt).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (p *ProductRepo) UpdateProduct(ctx context.Context, product *db.Product) error {
	query := `UPDATE vitrine.products SET name = $2, description = $3, price = $4, image_url = $5,
			category = $6, is_available = $7
		WHERE id = $1`
	_, err := p.tx.Exec(ctx, query, product.ID, product.Name, product.Description,
		product.Price, product.ImageURL, product.Category, product.IsAvailable)
	return err
}

func (p *ProductRepo) DeleteProduct(ctx context.Context, id int) error {
	_, err := p.tx.Exec(ctx, "DELETE FROM vitrine.products WHERE id = $1", id)
	return err
}
