package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/vitrinehq/vitrine-backend/internal/infra/db"
)

const siteColumns = `id, user_id, template_id, name, slug, whatsapp_number, address, config,
		deploy_url, deploy_id, pix_key, pix_key_type, is_active, created_at, updated_at`

type SiteRepo struct {
	tx pgx.Tx
}

func NewSiteRepo(tx pgx.Tx) *SiteRepo {
	return &SiteRepo{tx: tx}
}

func scanSite(row pgx.Row) (*db.Site, error) {
	var site db.Site
	err := row.Scan(&site.ID, &site.UserID, &site.TemplateID, &site.Name, &site.Slug,
		&site.WhatsappNumber, &site.Address, &site.Config, &site.DeployURL, &site.DeployID,
		&site.PixKey, &site.PixKeyType, &site.IsActive, &site.CreatedAt, &site.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &site, nil
}

func (s *SiteRepo) GetSite(ctx context.Context, id uuid.UUID) (*db.Site, error) {
	query := "SELECT " + siteColumns + " FROM vitrine.sites WHERE id = $1"
	return scanSite(s.tx.QueryRow(ctx, query, id))
}

func (s *SiteRepo) GetSiteBySlug(ctx context.Context, slug string) (*db.Site, error) {
	query := "SELECT " + siteColumns + " FROM vitrine.sites WHERE slug = $1"
	return scanSite(s.tx.QueryRow(ctx, query, slug))
}

func (s *SiteRepo) GetSitesByUser(ctx context.Context, userID string) ([]db.Site, error) {
	query := "SELECT " + siteColumns + " FROM vitrine.sites WHERE user_id = $1 ORDER BY created_at DESC"
	rows, err := s.tx.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sites []db.Site
	for rows.Next() {
		site, err := scanSite(rows)
		if err != nil {
			return nil, err
		}
		sites = append(sites, *site)
	}
	return sites, rows.Err()
}

func (s *SiteRepo) InsertSite(ctx context.Context, site db.Site) (uuid.UUID, error) {
	query := `INSERT INTO vitrine.sites(user_id, template_id, name, slug, whatsapp_number, address, config,
			pix_key, pix_key_type, is_active, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12) RETURNING id`
	var id uuid.UUID
	err := s.tx.QueryRow(ctx, query, site.UserID, site.TemplateID, site.Name, site.Slug,
		site.WhatsappNumber, site.Address, site.Config, site.PixKey, site.PixKeyType,
		site.IsActive, site.CreatedAt, site.UpdatedAt).Scan(&id)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (s *SiteRepo) UpdateSite(ctx context.Context, site *db.Site) error {
	query := `UPDATE vitrine.sites SET name = $2, whatsapp_number = $3, address = $4, config = $5,
			pix_key = $6, pix_key_type = $7, is_active = $8, updated_at = $9
		WHERE id = $1`
	_, err := s.tx.Exec(ctx, query, site.ID, site.Name, site.WhatsappNumber, site.Address,
		site.Config, site.PixKey, site.PixKeyType, site.IsActive, site.UpdatedAt)
	return err
}

func (s *SiteRepo) UpdateSiteDeploy(ctx context.Context, id uuid.UUID, deployURL, deployID string) error {
	query := "UPDATE vitrine.sites SET deploy_url = $2, deploy_id = $3, updated_at = now() WHERE id = $1"
	_, err := s.tx.Exec(ctx, query, id, deployURL, deployID)
	return err
}

// DeleteSite removes the site together with its products, orders and
// analytics rows. Runs inside the caller's transaction, so either everything
// goes or nothing does.
func (s *SiteRepo) DeleteSite(ctx context.Context, id uuid.UUID) error {
	for _, query := range []string{
		"DELETE FROM vitrine.products WHERE site_id = $1",
		"DELETE FROM vitrine.orders WHERE site_id = $1",
		"DELETE FROM vitrine.analytics WHERE site_id = $1",
		"DELETE FROM vitrine.sites WHERE id = $1",
	} {
		if _, err := s.tx.Exec(ctx, query, id); err != nil {
			return err
		}
	}
	return nil
}
