package site_test

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/vitrinehq/vitrine-backend/internal/application/commands/site"
	"github.com/vitrinehq/vitrine-backend/internal/application/dto"
	"github.com/vitrinehq/vitrine-backend/internal/application/errs"
	"github.com/vitrinehq/vitrine-backend/internal/infra/auth"
	"github.com/vitrinehq/vitrine-backend/internal/infra/db"
	"github.com/vitrinehq/vitrine-backend/internal/infra/deploy"
	"github.com/vitrinehq/vitrine-backend/internal/testinfra"
	dbs "github.com/vitrinehq/vitrine-backend/pkg/db"
)

var uowFactory *dbs.UOWFactory
var owner = &auth.Identity{UserID: "owner-1"}
var stranger = &auth.Identity{UserID: "stranger-1"}

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

func createSite(t *testing.T, slug string) *db.Site {
	t.Helper()
	created, err := site.NewCreateSite(uowFactory).Execute(context.Background(), &dto.CreateSiteRequest{
		TemplateID: 1,
		Name:       "Loja " + slug,
		Slug:       slug,
	}, owner)
	require.NoError(t, err)
	return created
}

func Test_CreateSite_When_Valid_Then_Active_With_Defaults(t *testing.T) {
	created := createSite(t, "loja-nova")

	require.Equal(t, owner.UserID, created.UserID)
	require.True(t, created.IsActive)
	require.Equal(t, "{}", string(created.Config))
	require.Empty(t, created.DeployURL)
}

func Test_CreateSite_When_Slug_Taken_Then_Conflict(t *testing.T) {
	createSite(t, "loja-repetida")

	_, err := site.NewCreateSite(uowFactory).Execute(context.Background(), &dto.CreateSiteRequest{
		TemplateID: 1,
		Name:       "Outra",
		Slug:       "loja-repetida",
	}, stranger)

	var conflict errs.ConflictError
	require.ErrorAs(t, err, &conflict)
}

func Test_UpdateSite_When_Caller_Is_Not_Owner_Then_Same_NotFound_As_Missing(t *testing.T) {
	created := createSite(t, "loja-alheia")
	SUT := site.NewUpdateSite(uowFactory)
	name := "Novo Nome"

	_, errForeign := SUT.Execute(context.Background(), created.ID, &dto.UpdateSiteRequest{Name: &name}, stranger)
	_, errMissing := SUT.Execute(context.Background(), uuid.New(), &dto.UpdateSiteRequest{Name: &name}, owner)

	var notFound errs.NotFoundError
	require.ErrorAs(t, errForeign, &notFound)
	require.ErrorAs(t, errMissing, &notFound)
	require.Equal(t, errForeign.Error(), errMissing.Error())
}

func Test_UpdateSite_When_Partial_Payload_Then_Only_Sent_Fields_Change(t *testing.T) {
	created := createSite(t, "loja-parcial")
	pixKey := "dono@pix.com"
	pixKeyType := "email"

	updated, err := site.NewUpdateSite(uowFactory).Execute(context.Background(), created.ID,
		&dto.UpdateSiteRequest{PixKey: &pixKey, PixKeyType: &pixKeyType}, owner)
	require.NoError(t, err)

	require.Equal(t, "dono@pix.com", updated.PixKey)
	require.Equal(t, "email", updated.PixKeyType)
	require.Equal(t, created.Name, updated.Name)
	require.Equal(t, created.Slug, updated.Slug)
}

func Test_DeploySite_Then_URL_Persisted_On_Site(t *testing.T) {
	created := createSite(t, "loja-deploy")
	deployer := deploy.NewDeployer(deploy.NewConfig())

	resp, err := site.NewDeploySite(uowFactory, deployer).Execute(context.Background(), created.ID, owner)
	require.NoError(t, err)

	require.True(t, resp.Success)
	require.Equal(t, "https://loja-deploy.netlify.app", resp.URL)

	var deployURL string
	err = testinfra.Pool.QueryRow(context.Background(),
		"SELECT deploy_url FROM vitrine.sites WHERE id = $1", created.ID).Scan(&deployURL)
	require.NoError(t, err)
	require.Equal(t, resp.URL, deployURL)
}

func Test_DeleteSite_When_Owner_Then_Row_Gone(t *testing.T) {
	created := createSite(t, "loja-excluida")

	require.NoError(t, site.NewDeleteSite(uowFactory).Execute(context.Background(), created.ID, owner))

	var count int
	err := testinfra.Pool.QueryRow(context.Background(),
		"SELECT count(*) FROM vitrine.sites WHERE id = $1", created.ID).Scan(&count)
	require.NoError(t, err)
	require.Equal(t, 0, count)
}

func Test_DeleteSite_When_Not_Owner_Then_NotFound_And_Row_Stays(t *testing.T) {
	created := createSite(t, "loja-protegida")

	err := site.NewDeleteSite(uowFactory).Execute(context.Background(), created.ID, stranger)

	var notFound errs.NotFoundError
	require.ErrorAs(t, err, &notFound)

	var count int
	err = testinfra.Pool.QueryRow(context.Background(),
		"SELECT count(*) FROM vitrine.sites WHERE id = $1", created.ID).Scan(&count)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}
