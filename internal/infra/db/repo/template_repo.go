package repo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/vitrinehq/vitrine-backend/internal/infra/db"
)

const templateColumns = "id, name, category, description, image_url, html_content, css_content, js_content, config, created_at"

type TemplateRepo struct {
	tx pgx.Tx
}

func NewTemplateRepo(tx pgx.Tx) *TemplateRepo {
	return &TemplateRepo{tx: tx}
}

func scanTemplate(row pgx.Row) (*db.Template, error) {
	var t db.Template
	err := row.Scan(&t.ID, &t.Name, &t.Category, &t.Description, &t.ImageURL,
		&t.HTMLContent, &t.CSSContent, &t.JSContent, &t.Config, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (t *TemplateRepo) GetTemplate(ctx context.Context, id int) (*db.Template, error) {
	query := "SELECT " + templateColumns + " FROM vitrine.templates WHERE id = $1"
	return scanTemplate(t.tx.QueryRow(ctx, query, id))
}

func (t *TemplateRepo) GetTemplates(ctx context.Context) ([]db.Template, error) {
	query := "SELECT " + templateColumns + " FROM vitrine.templates ORDER BY name"
	rows, err := t.tx.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []db.Template
	for rows.Next() {
		template, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		templates = append(templates, *template)
	}
	return templates, rows.Err()
}

func (t *TemplateRepo) InsertTemplate(ctx context.Context, template db.Template) (int, error) {
	query := `INSERT INTO vitrine.templates(name, category, description, image_url, html_content,
			css_content, js_content, config, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9) RETURNING id`
	var id int
	err := t.tx.QueryRow(ctx, query, template.Name, template.Category, template.Description,
		template.ImageURL, template.HTMLContent, template.CSSContent, template.JSContent,
		template.Config, template.CreatedAt).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}
