package site

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/vitrinehq/vitrine-backend/internal/application/errs"
	"github.com/vitrinehq/vitrine-backend/internal/infra/auth"
	"github.com/vitrinehq/vitrine-backend/internal/infra/db"
	"github.com/vitrinehq/vitrine-backend/internal/infra/db/repo"
)

// getOwnedSite loads a site and checks it belongs to the caller. A foreign
// site and a missing site produce the same NotFoundError on purpose.
func getOwnedSite(ctx context.Context, siteRepo *repo.SiteRepo, id uuid.UUID, identity *auth.Identity) (*db.Site, error) {
	site, err := siteRepo.GetSite(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NotFoundError{Resource: "site"}
		}
		return nil, err
	}
	if site.UserID != identity.UserID {
		return nil, errs.NotFoundError{Resource: "site"}
	}
	return site, nil
}
